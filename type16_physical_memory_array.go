package smbios

// PhysicalMemoryArray decodes a Physical Memory Array structure (type 16):
// one collection of memory devices that operate together.
type PhysicalMemoryArray struct {
	s *Structure
}

func (a *PhysicalMemoryArray) Structure() *Structure { return a.s }

func (a *PhysicalMemoryArray) Location() (MemoryArrayLocation, bool) {
	v, ok := a.s.ByteAt(0x04)
	return MemoryArrayLocation(v), ok
}

func (a *PhysicalMemoryArray) Use() (MemoryArrayUse, bool) {
	v, ok := a.s.ByteAt(0x05)
	return MemoryArrayUse(v), ok
}

func (a *PhysicalMemoryArray) ErrorCorrection() (MemoryArrayErrorCorrection, bool) {
	v, ok := a.s.ByteAt(0x06)
	return MemoryArrayErrorCorrection(v), ok
}

// MaximumCapacity returns the maximum installable memory in bytes. The
// dword holds kilobytes; the sentinel 0x80000000 redirects to the extended
// qword field (2.7+).
func (a *PhysicalMemoryArray) MaximumCapacity() (uint64, bool) {
	v, ok := a.s.DwordAt(0x07)
	if !ok {
		return 0, false
	}
	if v == 0x80000000 {
		q, ok := a.s.QwordAt(0x0F)
		return q, ok
	}
	return uint64(v) * 1024, true
}

// ErrorInformationHandle references a Memory Error Information structure.
// 0xFFFE means not provided; 0xFFFF means no errors detected.
func (a *PhysicalMemoryArray) ErrorInformationHandle() (Handle, bool) {
	h, ok := a.s.HandleAt(0x0B)
	if !ok || h == 0xFFFE || h == 0xFFFF {
		return 0, false
	}
	return h, true
}

// NumberOfMemoryDevices returns how many Memory Device structures belong
// to this array.
func (a *PhysicalMemoryArray) NumberOfMemoryDevices() (uint16, bool) {
	return a.s.WordAt(0x0D)
}

// MemoryArrayLocation is the array location enumeration at offset 0x04.
type MemoryArrayLocation uint8

var memoryArrayLocationStrings = map[MemoryArrayLocation]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "System board or motherboard",
	0x04: "ISA add-on card",
	0x05: "EISA add-on card",
	0x06: "PCI add-on card",
	0x07: "MCA add-on card",
	0x08: "PCMCIA add-on card",
	0x09: "Proprietary add-on card",
	0x0A: "NuBus",
	0xA0: "PC-98/C20 add-on card",
	0xA1: "PC-98/C24 add-on card",
	0xA2: "PC-98/E add-on card",
	0xA3: "PC-98/Local bus add-on card",
	0xA4: "CXL add-on card",
}

func (l MemoryArrayLocation) String() string {
	if s, ok := memoryArrayLocationStrings[l]; ok {
		return s
	}
	return unrecognized(uint8(l))
}

// MemoryArrayUse is the array function enumeration at offset 0x05.
type MemoryArrayUse uint8

const (
	MemoryArrayUseOther MemoryArrayUse = iota + 1
	MemoryArrayUseUnknown
	MemoryArrayUseSystemMemory
	MemoryArrayUseVideoMemory
	MemoryArrayUseFlashMemory
	MemoryArrayUseNonVolatileRAM
	MemoryArrayUseCacheMemory
)

var memoryArrayUseStrings = map[MemoryArrayUse]string{
	MemoryArrayUseOther:          "Other",
	MemoryArrayUseUnknown:        "Unknown",
	MemoryArrayUseSystemMemory:   "System memory",
	MemoryArrayUseVideoMemory:    "Video memory",
	MemoryArrayUseFlashMemory:    "Flash memory",
	MemoryArrayUseNonVolatileRAM: "Non-volatile RAM",
	MemoryArrayUseCacheMemory:    "Cache memory",
}

func (u MemoryArrayUse) String() string {
	if s, ok := memoryArrayUseStrings[u]; ok {
		return s
	}
	return unrecognized(uint8(u))
}

// MemoryArrayErrorCorrection is the ECC enumeration at offset 0x06.
type MemoryArrayErrorCorrection uint8

const (
	MemoryArrayECCOther MemoryArrayErrorCorrection = iota + 1
	MemoryArrayECCUnknown
	MemoryArrayECCNone
	MemoryArrayECCParity
	MemoryArrayECCSingleBit
	MemoryArrayECCMultiBit
	MemoryArrayECCCRC
)

var memoryArrayECCStrings = map[MemoryArrayErrorCorrection]string{
	MemoryArrayECCOther:     "Other",
	MemoryArrayECCUnknown:   "Unknown",
	MemoryArrayECCNone:      "None",
	MemoryArrayECCParity:    "Parity",
	MemoryArrayECCSingleBit: "Single-bit ECC",
	MemoryArrayECCMultiBit:  "Multi-bit ECC",
	MemoryArrayECCCRC:       "CRC",
}

func (e MemoryArrayErrorCorrection) String() string {
	if s, ok := memoryArrayECCStrings[e]; ok {
		return s
	}
	return unrecognized(uint8(e))
}
