package smbios

import "strings"

// MemoryDevice decodes a Memory Device structure (type 17): one socket on
// a Physical Memory Array, populated or not.
type MemoryDevice struct {
	s *Structure
}

func (m *MemoryDevice) Structure() *Structure { return m.s }

// PhysicalMemoryArrayHandle references the Physical Memory Array this
// device belongs to.
func (m *MemoryDevice) PhysicalMemoryArrayHandle() (Handle, bool) {
	return m.s.HandleAt(0x04)
}

// ErrorInformationHandle references a Memory Error Information structure.
// 0xFFFE means not provided; 0xFFFF means no errors detected.
func (m *MemoryDevice) ErrorInformationHandle() (Handle, bool) {
	h, ok := m.s.HandleAt(0x06)
	if !ok || h == 0xFFFE || h == 0xFFFF {
		return 0, false
	}
	return h, true
}

// TotalWidth returns the total bus width in bits, including any ECC bits.
// 0xFFFF means unknown.
func (m *MemoryDevice) TotalWidth() (uint16, bool) {
	v, ok := m.s.WordAt(0x08)
	if !ok || v == 0xFFFF {
		return 0, false
	}
	return v, true
}

// DataWidth returns the data bus width in bits. 0xFFFF means unknown.
func (m *MemoryDevice) DataWidth() (uint16, bool) {
	v, ok := m.s.WordAt(0x0A)
	if !ok || v == 0xFFFF {
		return 0, false
	}
	return v, true
}

// Size returns the device size in bytes. Zero means the socket is empty
// and 0xFFFF means unknown; both report absent. The word sentinel 0x7FFF
// redirects to the extended dword field (2.7+); bit 15 selects kilobyte
// granularity.
func (m *MemoryDevice) Size() (uint64, bool) {
	v, ok := m.s.WordAt(0x0C)
	if !ok || v == 0 || v == 0xFFFF {
		return 0, false
	}
	if v == 0x7FFF {
		ext, ok := m.s.DwordAt(0x1C)
		if !ok {
			return 0, false
		}
		return uint64(ext&0x7FFFFFFF) * 1024 * 1024, true
	}
	if v&0x8000 != 0 {
		return uint64(v&0x7FFF) * 1024, true
	}
	return uint64(v) * 1024 * 1024, true
}

// Populated reports whether the socket holds a device (size field nonzero).
func (m *MemoryDevice) Populated() (bool, bool) {
	v, ok := m.s.WordAt(0x0C)
	return v != 0, ok
}

func (m *MemoryDevice) FormFactor() (MemoryFormFactor, bool) {
	v, ok := m.s.ByteAt(0x0E)
	return MemoryFormFactor(v), ok
}

// DeviceSet groups devices that must be populated together. Zero means the
// device is not part of a set; 0xFF means unknown.
func (m *MemoryDevice) DeviceSet() (uint8, bool) {
	v, ok := m.s.ByteAt(0x0F)
	if !ok || v == 0 || v == 0xFF {
		return 0, false
	}
	return v, true
}

func (m *MemoryDevice) DeviceLocator() (string, bool) {
	return m.s.StringAt(0x10)
}

func (m *MemoryDevice) BankLocator() (string, bool) {
	return m.s.StringAt(0x11)
}

func (m *MemoryDevice) MemoryType() (MemoryType, bool) {
	v, ok := m.s.ByteAt(0x12)
	return MemoryType(v), ok
}

func (m *MemoryDevice) TypeDetail() (MemoryTypeDetail, bool) {
	v, ok := m.s.WordAt(0x13)
	return MemoryTypeDetail(v), ok
}

// Speed returns the maximum capable speed in MT/s (2.3+). Zero means
// unknown; 0xFFFF redirects to the extended dword field (3.3+).
func (m *MemoryDevice) Speed() (uint32, bool) {
	return m.speedField(0x15, 0x54)
}

func (m *MemoryDevice) Manufacturer() (string, bool) {
	return m.s.StringAt(0x17)
}

func (m *MemoryDevice) SerialNumber() (string, bool) {
	return m.s.StringAt(0x18)
}

func (m *MemoryDevice) AssetTag() (string, bool) {
	return m.s.StringAt(0x19)
}

func (m *MemoryDevice) PartNumber() (string, bool) {
	return m.s.StringAt(0x1A)
}

// Rank returns the device rank (2.6+), bits 3-0 of the attributes byte.
// Zero means unknown.
func (m *MemoryDevice) Rank() (uint8, bool) {
	v, ok := m.s.ByteAt(0x1B)
	if !ok || v&0x0F == 0 {
		return 0, false
	}
	return v & 0x0F, true
}

// ConfiguredSpeed returns the configured operating speed in MT/s (2.7+).
// Zero means unknown; 0xFFFF redirects to the extended dword field (3.3+).
func (m *MemoryDevice) ConfiguredSpeed() (uint32, bool) {
	return m.speedField(0x20, 0x58)
}

func (m *MemoryDevice) speedField(off, extOff int) (uint32, bool) {
	v, ok := m.s.WordAt(off)
	if !ok || v == 0 {
		return 0, false
	}
	if v == 0xFFFF {
		ext, ok := m.s.DwordAt(extOff)
		if !ok || ext == 0 {
			return 0, false
		}
		return ext, true
	}
	return uint32(v), true
}

// MinimumVoltage returns the minimum operating voltage in millivolts
// (2.8+). Zero means unknown.
func (m *MemoryDevice) MinimumVoltage() (uint16, bool) {
	return m.voltageField(0x22)
}

// MaximumVoltage returns the maximum operating voltage in millivolts.
func (m *MemoryDevice) MaximumVoltage() (uint16, bool) {
	return m.voltageField(0x24)
}

// ConfiguredVoltage returns the configured voltage in millivolts.
func (m *MemoryDevice) ConfiguredVoltage() (uint16, bool) {
	return m.voltageField(0x26)
}

func (m *MemoryDevice) voltageField(off int) (uint16, bool) {
	v, ok := m.s.WordAt(off)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// Technology returns the memory technology enumeration (3.2+).
func (m *MemoryDevice) Technology() (MemoryTechnology, bool) {
	v, ok := m.s.ByteAt(0x28)
	return MemoryTechnology(v), ok
}

// FirmwareVersion returns the device firmware version string (3.2+).
func (m *MemoryDevice) FirmwareVersion() (string, bool) {
	return m.s.StringAt(0x2B)
}

// ModuleManufacturerID returns the JEDEC manufacturer ID (3.2+). Zero
// means unknown.
func (m *MemoryDevice) ModuleManufacturerID() (uint16, bool) {
	v, ok := m.s.WordAt(0x2C)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// ModuleProductID returns the module product ID (3.2+). Zero means
// unknown.
func (m *MemoryDevice) ModuleProductID() (uint16, bool) {
	v, ok := m.s.WordAt(0x2E)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// NonVolatileSize returns the non-volatile portion size in bytes (3.2+).
func (m *MemoryDevice) NonVolatileSize() (uint64, bool) {
	return m.portionSize(0x34)
}

// VolatileSize returns the volatile portion size in bytes (3.2+).
func (m *MemoryDevice) VolatileSize() (uint64, bool) {
	return m.portionSize(0x3C)
}

// CacheSize returns the cache portion size in bytes (3.2+).
func (m *MemoryDevice) CacheSize() (uint64, bool) {
	return m.portionSize(0x44)
}

// LogicalSize returns the logical portion size in bytes (3.2+).
func (m *MemoryDevice) LogicalSize() (uint64, bool) {
	return m.portionSize(0x4C)
}

func (m *MemoryDevice) portionSize(off int) (uint64, bool) {
	v, ok := m.s.QwordAt(off)
	if !ok || v == 0xFFFFFFFFFFFFFFFF {
		return 0, false
	}
	return v, true
}

// MemoryFormFactor is the form factor enumeration at offset 0x0E.
type MemoryFormFactor uint8

var memoryFormFactorStrings = map[MemoryFormFactor]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "SIMM",
	0x04: "SIP",
	0x05: "Chip",
	0x06: "DIP",
	0x07: "ZIP",
	0x08: "Proprietary Card",
	0x09: "DIMM",
	0x0A: "TSOP",
	0x0B: "Row of chips",
	0x0C: "RIMM",
	0x0D: "SODIMM",
	0x0E: "SRIMM",
	0x0F: "FB-DIMM",
	0x10: "Die",
	0x11: "CAMM",
}

func (f MemoryFormFactor) String() string {
	if s, ok := memoryFormFactorStrings[f]; ok {
		return s
	}
	return unrecognized(uint8(f))
}

// MemoryType is the memory type enumeration at offset 0x12.
type MemoryType uint8

var memoryTypeStrings = map[MemoryType]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "DRAM",
	0x04: "EDRAM",
	0x05: "VRAM",
	0x06: "SRAM",
	0x07: "RAM",
	0x08: "ROM",
	0x09: "FLASH",
	0x0A: "EEPROM",
	0x0B: "FEPROM",
	0x0C: "EPROM",
	0x0D: "CDRAM",
	0x0E: "3DRAM",
	0x0F: "SDRAM",
	0x10: "SGRAM",
	0x11: "RDRAM",
	0x12: "DDR",
	0x13: "DDR2",
	0x14: "DDR2 FB-DIMM",
	0x18: "DDR3",
	0x19: "FBD2",
	0x1A: "DDR4",
	0x1B: "LPDDR",
	0x1C: "LPDDR2",
	0x1D: "LPDDR3",
	0x1E: "LPDDR4",
	0x1F: "Logical non-volatile device",
	0x20: "HBM",
	0x21: "HBM2",
	0x22: "DDR5",
	0x23: "LPDDR5",
	0x24: "HBM3",
}

func (t MemoryType) String() string {
	if s, ok := memoryTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}

// MemoryTypeDetail is the type detail flag word at offset 0x13.
type MemoryTypeDetail uint16

const (
	MemoryDetailReserved MemoryTypeDetail = 1 << iota
	MemoryDetailOther
	MemoryDetailUnknown
	MemoryDetailFastPaged
	MemoryDetailStaticColumn
	MemoryDetailPseudoStatic
	MemoryDetailRAMBUS
	MemoryDetailSynchronous
	MemoryDetailCMOS
	MemoryDetailEDO
	MemoryDetailWindowDRAM
	MemoryDetailCacheDRAM
	MemoryDetailNonVolatile
	MemoryDetailRegistered
	MemoryDetailUnbuffered
	MemoryDetailLRDIMM
)

var memoryDetailStrings = map[MemoryTypeDetail]string{
	MemoryDetailReserved:     "Reserved",
	MemoryDetailOther:        "Other",
	MemoryDetailUnknown:      "Unknown",
	MemoryDetailFastPaged:    "Fast-paged",
	MemoryDetailStaticColumn: "Static column",
	MemoryDetailPseudoStatic: "Pseudo-static",
	MemoryDetailRAMBUS:       "RAMBUS",
	MemoryDetailSynchronous:  "Synchronous",
	MemoryDetailCMOS:         "CMOS",
	MemoryDetailEDO:          "EDO",
	MemoryDetailWindowDRAM:   "Window DRAM",
	MemoryDetailCacheDRAM:    "Cache DRAM",
	MemoryDetailNonVolatile:  "Non-volatile",
	MemoryDetailRegistered:   "Registered (Buffered)",
	MemoryDetailUnbuffered:   "Unbuffered (Unregistered)",
	MemoryDetailLRDIMM:       "LRDIMM",
}

func (d MemoryTypeDetail) String() string {
	var ss []string
	for i := 0; i < 16; i++ {
		if d&(1<<i) != 0 {
			ss = append(ss, memoryDetailStrings[1<<i])
		}
	}
	return strings.Join(ss, ", ")
}

// MemoryTechnology is the memory technology enumeration at offset 0x28.
type MemoryTechnology uint8

const (
	MemoryTechnologyOther MemoryTechnology = iota + 1
	MemoryTechnologyUnknown
	MemoryTechnologyDRAM
	MemoryTechnologyNVDIMMN
	MemoryTechnologyNVDIMMF
	MemoryTechnologyNVDIMMP
	MemoryTechnologyIntelOptane
)

var memoryTechnologyStrings = map[MemoryTechnology]string{
	MemoryTechnologyOther:       "Other",
	MemoryTechnologyUnknown:     "Unknown",
	MemoryTechnologyDRAM:        "DRAM",
	MemoryTechnologyNVDIMMN:     "NVDIMM-N",
	MemoryTechnologyNVDIMMF:     "NVDIMM-F",
	MemoryTechnologyNVDIMMP:     "NVDIMM-P",
	MemoryTechnologyIntelOptane: "Intel Optane persistent memory",
}

func (t MemoryTechnology) String() string {
	if s, ok := memoryTechnologyStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}
