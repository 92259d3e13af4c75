package smbios

// SystemSlot decodes a System Slot structure (type 9).
type SystemSlot struct {
	s *Structure
}

func (sl *SystemSlot) Structure() *Structure { return sl.s }

func (sl *SystemSlot) Designation() (string, bool) {
	return sl.s.StringAt(0x04)
}

func (sl *SystemSlot) SlotType() (SlotType, bool) {
	v, ok := sl.s.ByteAt(0x05)
	return SlotType(v), ok
}

func (sl *SystemSlot) DataBusWidth() (SlotDataBusWidth, bool) {
	v, ok := sl.s.ByteAt(0x06)
	return SlotDataBusWidth(v), ok
}

func (sl *SystemSlot) CurrentUsage() (SlotUsage, bool) {
	v, ok := sl.s.ByteAt(0x07)
	return SlotUsage(v), ok
}

func (sl *SystemSlot) Length() (SlotLength, bool) {
	v, ok := sl.s.ByteAt(0x08)
	return SlotLength(v), ok
}

func (sl *SystemSlot) ID() (uint16, bool) {
	return sl.s.WordAt(0x09)
}

func (sl *SystemSlot) Characteristics1() (uint8, bool) {
	return sl.s.ByteAt(0x0B)
}

func (sl *SystemSlot) Characteristics2() (uint8, bool) {
	return sl.s.ByteAt(0x0C)
}

// SegmentGroupNumber returns the PCI segment group (2.6+). 0xFFFF means the
// slot is not a PCI Express slot or the value is unavailable.
func (sl *SystemSlot) SegmentGroupNumber() (uint16, bool) {
	v, ok := sl.s.WordAt(0x0D)
	if !ok || v == 0xFFFF {
		return 0, false
	}
	return v, true
}

func (sl *SystemSlot) BusNumber() (uint8, bool) {
	v, ok := sl.s.ByteAt(0x0F)
	if !ok || v == 0xFF {
		return 0, false
	}
	return v, true
}

// DeviceFunctionNumber returns the PCI device number (bits 7-3) and
// function number (bits 2-0).
func (sl *SystemSlot) DeviceFunctionNumber() (device, function uint8, ok bool) {
	v, ok := sl.s.ByteAt(0x10)
	if !ok || v == 0xFF {
		return 0, 0, false
	}
	return v >> 3, v & 0x07, true
}

// SlotType is the slot type enumeration at offset 0x05.
type SlotType uint8

var slotTypeStrings = map[SlotType]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "ISA",
	0x04: "MCA",
	0x05: "EISA",
	0x06: "PCI",
	0x07: "PC Card (PCMCIA)",
	0x08: "VL-VESA",
	0x09: "Proprietary",
	0x0F: "PCI-66MHz Capable",
	0x10: "AGP",
	0x11: "AGP 2X",
	0x12: "AGP 4X",
	0x13: "PCI-X",
	0x14: "AGP 8X",
	0x15: "M.2 Socket 1-DP",
	0x16: "M.2 Socket 1-SD",
	0x17: "M.2 Socket 2",
	0x18: "M.2 Socket 3",
	0xA5: "PCI Express",
	0xA6: "PCI Express x1",
	0xA7: "PCI Express x2",
	0xA8: "PCI Express x4",
	0xA9: "PCI Express x8",
	0xAA: "PCI Express x16",
	0xAB: "PCI Express Gen 2",
	0xB1: "PCI Express Gen 3",
	0xB8: "PCI Express Gen 4",
	0xBE: "PCI Express Gen 5",
	0xC4: "PCI Express Gen 6 and Beyond",
}

func (t SlotType) String() string {
	if s, ok := slotTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}

// SlotDataBusWidth is the data bus width enumeration at offset 0x06.
type SlotDataBusWidth uint8

var slotDataBusWidthStrings = map[SlotDataBusWidth]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "8 bit",
	0x04: "16 bit",
	0x05: "32 bit",
	0x06: "64 bit",
	0x07: "128 bit",
	0x08: "x1",
	0x09: "x2",
	0x0A: "x4",
	0x0B: "x8",
	0x0C: "x12",
	0x0D: "x16",
	0x0E: "x32",
}

func (w SlotDataBusWidth) String() string {
	if s, ok := slotDataBusWidthStrings[w]; ok {
		return s
	}
	return unrecognized(uint8(w))
}

// SlotUsage is the current usage enumeration at offset 0x07.
type SlotUsage uint8

const (
	SlotUsageOther SlotUsage = iota + 1
	SlotUsageUnknown
	SlotUsageAvailable
	SlotUsageInUse
	SlotUsageUnavailable
)

var slotUsageStrings = map[SlotUsage]string{
	SlotUsageOther:       "Other",
	SlotUsageUnknown:     "Unknown",
	SlotUsageAvailable:   "Available",
	SlotUsageInUse:       "In Use",
	SlotUsageUnavailable: "Unavailable",
}

func (u SlotUsage) String() string {
	if s, ok := slotUsageStrings[u]; ok {
		return s
	}
	return unrecognized(uint8(u))
}

// SlotLength is the slot length enumeration at offset 0x08.
type SlotLength uint8

const (
	SlotLengthOther SlotLength = iota + 1
	SlotLengthUnknown
	SlotLengthShort
	SlotLengthLong
	SlotLength25Drive
	SlotLength35Drive
)

var slotLengthStrings = map[SlotLength]string{
	SlotLengthOther:   "Other",
	SlotLengthUnknown: "Unknown",
	SlotLengthShort:   "Short Length",
	SlotLengthLong:    "Long Length",
	SlotLength25Drive: "2.5\" drive form factor",
	SlotLength35Drive: "3.5\" drive form factor",
}

func (l SlotLength) String() string {
	if s, ok := slotLengthStrings[l]; ok {
		return s
	}
	return unrecognized(uint8(l))
}
