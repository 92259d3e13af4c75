package smbios

// CoolingDevice decodes a Cooling Device structure (type 27).
type CoolingDevice struct {
	s *Structure
}

func (c *CoolingDevice) Structure() *Structure { return c.s }

// TemperatureProbeHandle returns the handle of the temperature probe
// monitoring this device. 0xFFFF means no probe is associated.
func (c *CoolingDevice) TemperatureProbeHandle() (Handle, bool) {
	v, ok := c.s.HandleAt(0x04)
	if !ok || v == 0xFFFF {
		return 0, false
	}
	return v, true
}

// DeviceType returns bits 4-0 of the device type and status byte.
func (c *CoolingDevice) DeviceType() (CoolingType, bool) {
	v, ok := c.s.ByteAt(0x06)
	return CoolingType(v & 0x1F), ok
}

// Status returns bits 7-5 of the device type and status byte.
func (c *CoolingDevice) Status() (ProbeStatus, bool) {
	v, ok := c.s.ByteAt(0x06)
	return ProbeStatus(v >> 5), ok
}

// CoolingUnitGroup returns the group this device belongs to. Zero means
// the device is not a member of a redundant set.
func (c *CoolingDevice) CoolingUnitGroup() (uint8, bool) {
	v, ok := c.s.ByteAt(0x07)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

func (c *CoolingDevice) OEMDefined() (uint32, bool) {
	return c.s.DwordAt(0x08)
}

// NominalSpeed returns the nominal speed in RPM. 0x8000 means unknown.
func (c *CoolingDevice) NominalSpeed() (uint16, bool) {
	return probeReading(c.s, 0x0C)
}

// Description returns the description string added in 2.7.
func (c *CoolingDevice) Description() (string, bool) {
	return c.s.StringAt(0x0E)
}

// CoolingType is the cooling device type enumeration.
type CoolingType uint8

var coolingTypeStrings = map[CoolingType]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Fan",
	0x04: "Centrifugal Blower",
	0x05: "Chip Fan",
	0x06: "Cabinet Fan",
	0x07: "Power Supply Fan",
	0x08: "Heat Pipe",
	0x09: "Integrated Refrigeration",
	0x10: "Active Cooling",
	0x11: "Passive Cooling",
}

func (t CoolingType) String() string {
	if s, ok := coolingTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}
