package smbios

// PortableBattery decodes a Portable Battery structure (type 22).
type PortableBattery struct {
	s *Structure
}

func (b *PortableBattery) Structure() *Structure { return b.s }

func (b *PortableBattery) Location() (string, bool) {
	return b.s.StringAt(0x04)
}

func (b *PortableBattery) Manufacturer() (string, bool) {
	return b.s.StringAt(0x05)
}

// ManufactureDate returns the manufacture date string. Absent when the
// SBDS date field (2.2+) carries the value instead.
func (b *PortableBattery) ManufactureDate() (string, bool) {
	return b.s.StringAt(0x06)
}

// SerialNumber returns the serial number string. Absent when the SBDS
// serial field carries the value instead.
func (b *PortableBattery) SerialNumber() (string, bool) {
	return b.s.StringAt(0x07)
}

func (b *PortableBattery) DeviceName() (string, bool) {
	return b.s.StringAt(0x08)
}

func (b *PortableBattery) Chemistry() (BatteryChemistry, bool) {
	v, ok := b.s.ByteAt(0x09)
	return BatteryChemistry(v), ok
}

// DesignCapacity returns the design capacity in milliwatt-hours, scaled by
// the capacity multiplier when present (2.2+). Zero means unknown.
func (b *PortableBattery) DesignCapacity() (uint32, bool) {
	v, ok := b.s.WordAt(0x0A)
	if !ok || v == 0 {
		return 0, false
	}
	mult, ok := b.s.ByteAt(0x15)
	if !ok || mult == 0 {
		mult = 1
	}
	return uint32(v) * uint32(mult), true
}

// DesignVoltage returns the design voltage in millivolts. Zero means
// unknown.
func (b *PortableBattery) DesignVoltage() (uint16, bool) {
	v, ok := b.s.WordAt(0x0C)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

func (b *PortableBattery) SBDSVersionNumber() (string, bool) {
	return b.s.StringAt(0x0E)
}

// MaximumErrorPercent returns the maximum error in battery data. 0xFF
// means unknown.
func (b *PortableBattery) MaximumErrorPercent() (uint8, bool) {
	v, ok := b.s.ByteAt(0x0F)
	if !ok || v == 0xFF {
		return 0, false
	}
	return v, true
}

func (b *PortableBattery) SBDSSerialNumber() (uint16, bool) {
	return b.s.WordAt(0x10)
}

// SBDSManufactureDate returns the packed SBDS date: year since 1980
// (bits 15-9), month (bits 8-5), day (bits 4-0).
func (b *PortableBattery) SBDSManufactureDate() (year uint16, month, day uint8, ok bool) {
	v, ok := b.s.WordAt(0x12)
	if !ok || v == 0 {
		return 0, 0, 0, false
	}
	return 1980 + (v >> 9), uint8(v >> 5 & 0x0F), uint8(v & 0x1F), true
}

func (b *PortableBattery) SBDSDeviceChemistry() (string, bool) {
	return b.s.StringAt(0x14)
}

func (b *PortableBattery) OEMSpecific() (uint32, bool) {
	return b.s.DwordAt(0x16)
}

// BatteryChemistry is the chemistry enumeration at offset 0x09.
type BatteryChemistry uint8

const (
	BatteryChemistryOther BatteryChemistry = iota + 1
	BatteryChemistryUnknown
	BatteryChemistryLeadAcid
	BatteryChemistryNickelCadmium
	BatteryChemistryNickelMetalHydride
	BatteryChemistryLithiumIon
	BatteryChemistryZincAir
	BatteryChemistryLithiumPolymer
)

var batteryChemistryStrings = map[BatteryChemistry]string{
	BatteryChemistryOther:              "Other",
	BatteryChemistryUnknown:            "Unknown",
	BatteryChemistryLeadAcid:           "Lead Acid",
	BatteryChemistryNickelCadmium:      "Nickel Cadmium",
	BatteryChemistryNickelMetalHydride: "Nickel metal hydride",
	BatteryChemistryLithiumIon:         "Lithium-ion",
	BatteryChemistryZincAir:            "Zinc air",
	BatteryChemistryLithiumPolymer:     "Lithium Polymer",
}

func (c BatteryChemistry) String() string {
	if s, ok := batteryChemistryStrings[c]; ok {
		return s
	}
	return unrecognized(uint8(c))
}
