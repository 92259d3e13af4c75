package smbios

// SystemPowerSupply decodes a System Power Supply structure (type 39).
type SystemPowerSupply struct {
	s *Structure
}

func (p *SystemPowerSupply) Structure() *Structure { return p.s }

// PowerUnitGroup returns the group this supply belongs to. Zero means the
// supply is not a member of a redundant set.
func (p *SystemPowerSupply) PowerUnitGroup() (uint8, bool) {
	v, ok := p.s.ByteAt(0x04)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

func (p *SystemPowerSupply) Location() (string, bool) {
	return p.s.StringAt(0x05)
}

func (p *SystemPowerSupply) DeviceName() (string, bool) {
	return p.s.StringAt(0x06)
}

func (p *SystemPowerSupply) Manufacturer() (string, bool) {
	return p.s.StringAt(0x07)
}

func (p *SystemPowerSupply) SerialNumber() (string, bool) {
	return p.s.StringAt(0x08)
}

func (p *SystemPowerSupply) AssetTagNumber() (string, bool) {
	return p.s.StringAt(0x09)
}

func (p *SystemPowerSupply) ModelPartNumber() (string, bool) {
	return p.s.StringAt(0x0A)
}

func (p *SystemPowerSupply) RevisionLevel() (string, bool) {
	return p.s.StringAt(0x0B)
}

// MaxPowerCapacity returns the maximum sustained output in watts. 0x8000
// means unknown.
func (p *SystemPowerSupply) MaxPowerCapacity() (uint16, bool) {
	return probeReading(p.s, 0x0C)
}

// Characteristics returns the raw characteristics word.
func (p *SystemPowerSupply) Characteristics() (uint16, bool) {
	return p.s.WordAt(0x0E)
}

// HotReplaceable reports characteristics bit 0.
func (p *SystemPowerSupply) HotReplaceable() (bool, bool) {
	v, ok := p.s.WordAt(0x0E)
	return v&0x0001 != 0, ok
}

// Present reports characteristics bit 1.
func (p *SystemPowerSupply) Present() (bool, bool) {
	v, ok := p.s.WordAt(0x0E)
	return v&0x0002 != 0, ok
}

// Unplugged reports characteristics bit 2: the supply is unplugged from
// the wall.
func (p *SystemPowerSupply) Unplugged() (bool, bool) {
	v, ok := p.s.WordAt(0x0E)
	return v&0x0004 != 0, ok
}

// InputVoltageRangeSwitching returns characteristics bits 6-3.
func (p *SystemPowerSupply) InputVoltageRangeSwitching() (PowerSupplyInputSwitching, bool) {
	v, ok := p.s.WordAt(0x0E)
	return PowerSupplyInputSwitching(v >> 3 & 0x0F), ok
}

// SupplyStatus returns characteristics bits 9-7.
func (p *SystemPowerSupply) SupplyStatus() (ProbeStatus, bool) {
	v, ok := p.s.WordAt(0x0E)
	return ProbeStatus(v >> 7 & 0x07), ok
}

// SupplyType returns characteristics bits 13-10.
func (p *SystemPowerSupply) SupplyType() (PowerSupplyType, bool) {
	v, ok := p.s.WordAt(0x0E)
	return PowerSupplyType(v >> 10 & 0x0F), ok
}

// InputVoltageProbeHandle returns the handle of the voltage probe
// monitoring this supply's input. 0xFFFF means no probe is associated.
func (p *SystemPowerSupply) InputVoltageProbeHandle() (Handle, bool) {
	return p.probeHandle(0x10)
}

// CoolingDeviceHandle returns the handle of the cooling device associated
// with this supply. 0xFFFF means none.
func (p *SystemPowerSupply) CoolingDeviceHandle() (Handle, bool) {
	return p.probeHandle(0x12)
}

// InputCurrentProbeHandle returns the handle of the current probe
// monitoring this supply's input. 0xFFFF means no probe is associated.
func (p *SystemPowerSupply) InputCurrentProbeHandle() (Handle, bool) {
	return p.probeHandle(0x14)
}

func (p *SystemPowerSupply) probeHandle(off int) (Handle, bool) {
	v, ok := p.s.HandleAt(off)
	if !ok || v == 0xFFFF {
		return 0, false
	}
	return v, true
}

// PowerSupplyType is the DMTF power supply type enumeration.
type PowerSupplyType uint8

var powerSupplyTypeStrings = map[PowerSupplyType]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Linear",
	0x04: "Switching",
	0x05: "Battery",
	0x06: "UPS",
	0x07: "Converter",
	0x08: "Regulator",
}

func (t PowerSupplyType) String() string {
	if s, ok := powerSupplyTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}

// PowerSupplyInputSwitching is the input voltage range switching
// enumeration.
type PowerSupplyInputSwitching uint8

var powerSupplyInputSwitchingStrings = map[PowerSupplyInputSwitching]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Manual",
	0x04: "Auto-switch",
	0x05: "Wide range",
	0x06: "Not applicable",
}

func (s PowerSupplyInputSwitching) String() string {
	if str, ok := powerSupplyInputSwitchingStrings[s]; ok {
		return str
	}
	return unrecognized(uint8(s))
}
