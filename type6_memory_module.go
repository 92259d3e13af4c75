package smbios

// MemoryModule decodes a Memory Module Information structure (type 6).
// Obsolete since SMBIOS 2.1; superseded by Memory Device (type 17).
type MemoryModule struct {
	s *Structure
}

func (m *MemoryModule) Structure() *Structure { return m.s }

func (m *MemoryModule) SocketDesignation() (string, bool) {
	return m.s.StringAt(0x04)
}

func (m *MemoryModule) BankConnections() (uint8, bool) {
	return m.s.ByteAt(0x05)
}

// CurrentSpeed returns the module speed in nanoseconds. Zero means unknown.
func (m *MemoryModule) CurrentSpeed() (uint8, bool) {
	v, ok := m.s.ByteAt(0x06)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

func (m *MemoryModule) CurrentMemoryType() (uint16, bool) {
	return m.s.WordAt(0x07)
}

// InstalledSize returns the installed module size in bytes. The low seven
// bits hold a power-of-two exponent of megabytes; 0x7D-0x7F are sentinels
// for not-determinable, not-enabled and not-installed.
func (m *MemoryModule) InstalledSize() (uint64, bool) {
	return m.moduleSize(0x09)
}

// EnabledSize returns the enabled module size in bytes.
func (m *MemoryModule) EnabledSize() (uint64, bool) {
	return m.moduleSize(0x0A)
}

func (m *MemoryModule) moduleSize(off int) (uint64, bool) {
	v, ok := m.s.ByteAt(off)
	if !ok {
		return 0, false
	}
	exp := v & 0x7F
	if exp >= 0x7D {
		return 0, false
	}
	return (1 << exp) * 1024 * 1024, true
}

func (m *MemoryModule) ErrorStatus() (uint8, bool) {
	return m.s.ByteAt(0x0B)
}
