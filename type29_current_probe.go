package smbios

// ElectricalCurrentProbe decodes an Electrical Current Probe structure
// (type 29).
type ElectricalCurrentProbe struct {
	s *Structure
}

func (p *ElectricalCurrentProbe) Structure() *Structure { return p.s }

func (p *ElectricalCurrentProbe) Description() (string, bool) {
	return p.s.StringAt(0x04)
}

func (p *ElectricalCurrentProbe) Location() (ProbeLocation, bool) {
	return probeLocation(p.s)
}

func (p *ElectricalCurrentProbe) Status() (ProbeStatus, bool) {
	return probeStatus(p.s)
}

// MaximumValue returns the maximum readable value in milliamps. 0x8000
// means unknown.
func (p *ElectricalCurrentProbe) MaximumValue() (uint16, bool) {
	return probeReading(p.s, 0x06)
}

// MinimumValue returns the minimum readable value in milliamps. 0x8000
// means unknown.
func (p *ElectricalCurrentProbe) MinimumValue() (uint16, bool) {
	return probeReading(p.s, 0x08)
}

// Resolution returns the resolution in tenths of milliamps. 0x8000 means
// unknown.
func (p *ElectricalCurrentProbe) Resolution() (uint16, bool) {
	return probeReading(p.s, 0x0A)
}

// Tolerance returns the tolerance in +/- milliamps. 0x8000 means unknown.
func (p *ElectricalCurrentProbe) Tolerance() (uint16, bool) {
	return probeReading(p.s, 0x0C)
}

// Accuracy returns the accuracy in hundredths of a percent. 0x8000 means
// unknown.
func (p *ElectricalCurrentProbe) Accuracy() (uint16, bool) {
	return probeReading(p.s, 0x0E)
}

func (p *ElectricalCurrentProbe) OEMDefined() (uint32, bool) {
	return p.s.DwordAt(0x10)
}

// NominalValue returns the nominal reading in milliamps. 0x8000 means
// unknown.
func (p *ElectricalCurrentProbe) NominalValue() (uint16, bool) {
	return probeReading(p.s, 0x14)
}
