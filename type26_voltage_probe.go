package smbios

// VoltageProbe decodes a Voltage Probe structure (type 26).
type VoltageProbe struct {
	s *Structure
}

func (p *VoltageProbe) Structure() *Structure { return p.s }

func (p *VoltageProbe) Description() (string, bool) {
	return p.s.StringAt(0x04)
}

// Location returns bits 4-0 of the location and status byte.
func (p *VoltageProbe) Location() (ProbeLocation, bool) {
	return probeLocation(p.s)
}

// Status returns bits 7-5 of the location and status byte.
func (p *VoltageProbe) Status() (ProbeStatus, bool) {
	return probeStatus(p.s)
}

// MaximumValue returns the maximum readable value in millivolts. 0x8000
// means unknown.
func (p *VoltageProbe) MaximumValue() (uint16, bool) {
	return probeReading(p.s, 0x06)
}

// MinimumValue returns the minimum readable value in millivolts. 0x8000
// means unknown.
func (p *VoltageProbe) MinimumValue() (uint16, bool) {
	return probeReading(p.s, 0x08)
}

// Resolution returns the probe resolution in tenths of millivolts. 0x8000
// means unknown.
func (p *VoltageProbe) Resolution() (uint16, bool) {
	return probeReading(p.s, 0x0A)
}

// Tolerance returns the probe tolerance in +/- millivolts. 0x8000 means
// unknown.
func (p *VoltageProbe) Tolerance() (uint16, bool) {
	return probeReading(p.s, 0x0C)
}

// Accuracy returns the probe accuracy in hundredths of a percent. 0x8000
// means unknown.
func (p *VoltageProbe) Accuracy() (uint16, bool) {
	return probeReading(p.s, 0x0E)
}

func (p *VoltageProbe) OEMDefined() (uint32, bool) {
	return p.s.DwordAt(0x10)
}

// NominalValue returns the nominal reading in millivolts. 0x8000 means
// unknown.
func (p *VoltageProbe) NominalValue() (uint16, bool) {
	return probeReading(p.s, 0x14)
}

// probeLocation and probeStatus split the shared location-and-status byte
// at offset 0x05 used by the probe structures (types 26, 28, 29).
func probeLocation(s *Structure) (ProbeLocation, bool) {
	v, ok := s.ByteAt(0x05)
	return ProbeLocation(v & 0x1F), ok
}

func probeStatus(s *Structure) (ProbeStatus, bool) {
	v, ok := s.ByteAt(0x05)
	return ProbeStatus(v >> 5), ok
}

// probeReading reads one probe measurement word where 0x8000 means the
// value is unknown.
func probeReading(s *Structure, off int) (uint16, bool) {
	v, ok := s.WordAt(off)
	if !ok || v == 0x8000 {
		return 0, false
	}
	return v, true
}

// ProbeLocation is the physical location of a voltage, temperature or
// current probe.
type ProbeLocation uint8

var probeLocationStrings = map[ProbeLocation]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Processor",
	0x04: "Disk",
	0x05: "Peripheral Bay",
	0x06: "System Management Module",
	0x07: "Motherboard",
	0x08: "Memory Module",
	0x09: "Processor Module",
	0x0A: "Power Unit",
	0x0B: "Add-in Card",
	0x0C: "Front Panel Board",
	0x0D: "Back Panel Board",
	0x0E: "Power System Board",
	0x0F: "Drive Back Plane",
}

func (l ProbeLocation) String() string {
	if s, ok := probeLocationStrings[l]; ok {
		return s
	}
	return unrecognized(uint8(l))
}

// ProbeStatus is the operational status of a probe or cooling device.
type ProbeStatus uint8

var probeStatusStrings = map[ProbeStatus]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "OK",
	0x04: "Non-critical",
	0x05: "Critical",
	0x06: "Non-recoverable",
}

func (s ProbeStatus) String() string {
	if str, ok := probeStatusStrings[s]; ok {
		return str
	}
	return unrecognized(uint8(s))
}
