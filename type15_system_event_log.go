package smbios

// SystemEventLog decodes a System Event Log structure (type 15). Only the
// log location and status are decoded; event record parsing is a consumer
// concern.
type SystemEventLog struct {
	s *Structure
}

func (l *SystemEventLog) Structure() *Structure { return l.s }

func (l *SystemEventLog) LogAreaLength() (uint16, bool) {
	return l.s.WordAt(0x04)
}

func (l *SystemEventLog) LogHeaderStartOffset() (uint16, bool) {
	return l.s.WordAt(0x06)
}

func (l *SystemEventLog) LogDataStartOffset() (uint16, bool) {
	return l.s.WordAt(0x08)
}

func (l *SystemEventLog) AccessMethod() (EventLogAccessMethod, bool) {
	v, ok := l.s.ByteAt(0x0A)
	return EventLogAccessMethod(v), ok
}

// LogValid reports bit 0 of the status byte.
func (l *SystemEventLog) LogValid() (bool, bool) {
	v, ok := l.s.ByteAt(0x0B)
	return v&0x01 != 0, ok
}

// LogFull reports bit 1 of the status byte.
func (l *SystemEventLog) LogFull() (bool, bool) {
	v, ok := l.s.ByteAt(0x0B)
	return v&0x02 != 0, ok
}

func (l *SystemEventLog) ChangeToken() (uint32, bool) {
	return l.s.DwordAt(0x0C)
}

// AccessMethodAddress returns the raw address dword whose interpretation
// depends on the access method.
func (l *SystemEventLog) AccessMethodAddress() (uint32, bool) {
	return l.s.DwordAt(0x10)
}

func (l *SystemEventLog) LogHeaderFormat() (uint8, bool) {
	return l.s.ByteAt(0x14)
}

// EventLogAccessMethod describes how the log area is reached.
type EventLogAccessMethod uint8

const (
	EventLogAccessIndexedIO1x8 EventLogAccessMethod = iota
	EventLogAccessIndexedIO2x8
	EventLogAccessIndexedIO1x16
	EventLogAccessMemoryMapped
	EventLogAccessGPNV
)

var eventLogAccessStrings = map[EventLogAccessMethod]string{
	EventLogAccessIndexedIO1x8:  "Indexed I/O, one 8-bit index port, one 8-bit data port",
	EventLogAccessIndexedIO2x8:  "Indexed I/O, two 8-bit index ports, one 8-bit data port",
	EventLogAccessIndexedIO1x16: "Indexed I/O, one 16-bit index port, one 8-bit data port",
	EventLogAccessMemoryMapped:  "Memory-mapped physical 32-bit address",
	EventLogAccessGPNV:          "Available through General-Purpose NonVolatile Data functions",
}

func (m EventLogAccessMethod) String() string {
	if s, ok := eventLogAccessStrings[m]; ok {
		return s
	}
	return unrecognized(uint8(m))
}
