package smbios

// TemperatureProbe decodes a Temperature Probe structure (type 28).
type TemperatureProbe struct {
	s *Structure
}

func (p *TemperatureProbe) Structure() *Structure { return p.s }

func (p *TemperatureProbe) Description() (string, bool) {
	return p.s.StringAt(0x04)
}

func (p *TemperatureProbe) Location() (ProbeLocation, bool) {
	return probeLocation(p.s)
}

func (p *TemperatureProbe) Status() (ProbeStatus, bool) {
	return probeStatus(p.s)
}

// MaximumValue returns the maximum readable value in tenths of degrees
// Celsius. 0x8000 means unknown.
func (p *TemperatureProbe) MaximumValue() (uint16, bool) {
	return probeReading(p.s, 0x06)
}

// MinimumValue returns the minimum readable value in tenths of degrees
// Celsius. 0x8000 means unknown.
func (p *TemperatureProbe) MinimumValue() (uint16, bool) {
	return probeReading(p.s, 0x08)
}

// Resolution returns the resolution in thousandths of a degree Celsius.
// 0x8000 means unknown.
func (p *TemperatureProbe) Resolution() (uint16, bool) {
	return probeReading(p.s, 0x0A)
}

// Tolerance returns the tolerance in +/- tenths of degrees Celsius.
// 0x8000 means unknown.
func (p *TemperatureProbe) Tolerance() (uint16, bool) {
	return probeReading(p.s, 0x0C)
}

// Accuracy returns the accuracy in hundredths of a percent. 0x8000 means
// unknown.
func (p *TemperatureProbe) Accuracy() (uint16, bool) {
	return probeReading(p.s, 0x0E)
}

func (p *TemperatureProbe) OEMDefined() (uint32, bool) {
	return p.s.DwordAt(0x10)
}

// NominalValue returns the nominal reading in tenths of degrees Celsius.
// 0x8000 means unknown.
func (p *TemperatureProbe) NominalValue() (uint16, bool) {
	return probeReading(p.s, 0x14)
}
