package smbios

import (
	"fmt"
	"strings"
)

// ProcessorInformation decodes a Processor Information structure (type 4),
// one per socket.
type ProcessorInformation struct {
	s *Structure
}

func (p *ProcessorInformation) Structure() *Structure { return p.s }

func (p *ProcessorInformation) SocketDesignation() (string, bool) {
	return p.s.StringAt(0x04)
}

func (p *ProcessorInformation) ProcessorType() (ProcessorType, bool) {
	v, ok := p.s.ByteAt(0x05)
	return ProcessorType(v), ok
}

// Family returns the processor family. The byte value 0xFE redirects to the
// Family2 word (2.6+).
func (p *ProcessorInformation) Family() (ProcessorFamily, bool) {
	v, ok := p.s.ByteAt(0x06)
	if !ok {
		return 0, false
	}
	if v == 0xFE {
		w, ok := p.s.WordAt(0x28)
		return ProcessorFamily(w), ok
	}
	return ProcessorFamily(v), true
}

func (p *ProcessorInformation) Manufacturer() (string, bool) {
	return p.s.StringAt(0x07)
}

// ID returns the raw 8-byte processor identification data (CPUID on x86).
func (p *ProcessorInformation) ID() (uint64, bool) {
	return p.s.QwordAt(0x08)
}

func (p *ProcessorInformation) Version() (string, bool) {
	return p.s.StringAt(0x10)
}

// Voltage returns the socket voltage in volts. Legacy encodings (bit 7
// clear) enumerate fixed levels and ambiguous ones are reported as absent.
func (p *ProcessorInformation) Voltage() (float64, bool) {
	v, ok := p.s.ByteAt(0x11)
	if !ok {
		return 0, false
	}
	if v&0x80 != 0 {
		return float64(v&0x7F) / 10, true
	}
	switch v {
	case 0x01:
		return 5.0, true
	case 0x02:
		return 3.3, true
	case 0x04:
		return 2.9, true
	}
	return 0, false
}

// ExternalClock returns the external clock frequency in MHz. Zero means
// unknown.
func (p *ProcessorInformation) ExternalClock() (uint16, bool) {
	v, ok := p.s.WordAt(0x12)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// MaxSpeed returns the maximum supported speed in MHz. Zero means unknown.
func (p *ProcessorInformation) MaxSpeed() (uint16, bool) {
	v, ok := p.s.WordAt(0x14)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// CurrentSpeed returns the speed at boot time in MHz. Zero means unknown.
func (p *ProcessorInformation) CurrentSpeed() (uint16, bool) {
	v, ok := p.s.WordAt(0x16)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// SocketPopulated reports bit 6 of the status byte.
func (p *ProcessorInformation) SocketPopulated() (bool, bool) {
	v, ok := p.s.ByteAt(0x18)
	return v&0x40 != 0, ok
}

func (p *ProcessorInformation) Status() (ProcessorStatus, bool) {
	v, ok := p.s.ByteAt(0x18)
	return ProcessorStatus(v & 0x07), ok
}

func (p *ProcessorInformation) Upgrade() (ProcessorUpgrade, bool) {
	v, ok := p.s.ByteAt(0x19)
	return ProcessorUpgrade(v), ok
}

// L1CacheHandle references the Cache Information structure for the L1
// cache (2.1+). 0xFFFF means no cache structure is provided.
func (p *ProcessorInformation) L1CacheHandle() (Handle, bool) {
	return p.cacheHandle(0x1A)
}

func (p *ProcessorInformation) L2CacheHandle() (Handle, bool) {
	return p.cacheHandle(0x1C)
}

func (p *ProcessorInformation) L3CacheHandle() (Handle, bool) {
	return p.cacheHandle(0x1E)
}

func (p *ProcessorInformation) cacheHandle(off int) (Handle, bool) {
	h, ok := p.s.HandleAt(off)
	if !ok || h == 0xFFFF {
		return 0, false
	}
	return h, true
}

func (p *ProcessorInformation) SerialNumber() (string, bool) {
	return p.s.StringAt(0x20)
}

func (p *ProcessorInformation) AssetTag() (string, bool) {
	return p.s.StringAt(0x21)
}

func (p *ProcessorInformation) PartNumber() (string, bool) {
	return p.s.StringAt(0x22)
}

// CoreCount returns the number of cores per socket (2.5+). The byte value
// 0xFF redirects to the CoreCount2 word (3.0+); zero means unknown.
func (p *ProcessorInformation) CoreCount() (uint16, bool) {
	return p.countField(0x23, 0x2A)
}

// CoresEnabled returns the number of enabled cores per socket (2.5+).
func (p *ProcessorInformation) CoresEnabled() (uint16, bool) {
	return p.countField(0x24, 0x2C)
}

// ThreadCount returns the number of threads per socket (2.5+).
func (p *ProcessorInformation) ThreadCount() (uint16, bool) {
	return p.countField(0x25, 0x2E)
}

func (p *ProcessorInformation) countField(off, off2 int) (uint16, bool) {
	v, ok := p.s.ByteAt(off)
	if !ok || v == 0 {
		return 0, false
	}
	if v == 0xFF {
		w, ok := p.s.WordAt(off2)
		if !ok || w == 0 {
			return 0, false
		}
		return w, true
	}
	return uint16(v), true
}

func (p *ProcessorInformation) Characteristics() (ProcessorCharacteristics, bool) {
	v, ok := p.s.WordAt(0x26)
	return ProcessorCharacteristics(v), ok
}

// ProcessorType is the processor type enumeration at offset 0x05.
type ProcessorType uint8

const (
	ProcessorTypeOther ProcessorType = iota + 1
	ProcessorTypeUnknown
	ProcessorTypeCentralProcessor
	ProcessorTypeMathProcessor
	ProcessorTypeDSPProcessor
	ProcessorTypeVideoProcessor
)

var processorTypeStrings = map[ProcessorType]string{
	ProcessorTypeOther:            "Other",
	ProcessorTypeUnknown:          "Unknown",
	ProcessorTypeCentralProcessor: "Central Processor",
	ProcessorTypeMathProcessor:    "Math Processor",
	ProcessorTypeDSPProcessor:     "DSP Processor",
	ProcessorTypeVideoProcessor:   "Video Processor",
}

func (t ProcessorType) String() string {
	if s, ok := processorTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}

// ProcessorFamily is the (possibly extended) processor family enumeration.
// Only the families commonly seen in the field carry names; everything else
// renders as its raw value.
type ProcessorFamily uint16

var processorFamilyStrings = map[ProcessorFamily]string{
	1:   "Other",
	2:   "Unknown",
	3:   "8086",
	4:   "80286",
	5:   "Intel386 processor",
	6:   "Intel486 processor",
	11:  "Pentium processor family",
	15:  "Pentium 4",
	16:  "Pentium Xeon",
	28:  "AMD Athlon",
	40:  "AMD Opteron",
	107: "AMD Ryzen",
	179: "Intel Pentium III",
	191: "Intel Core 2 Duo",
	198: "Intel Core i7",
	199: "Intel Core i5",
	200: "IBM z/Architecture family",
	201: "Intel Core i3",
	205: "Intel Core i9",
	256: "ARMv7",
	257: "ARMv8",
	258: "ARMv9",
	512: "RISC-V RV32",
	513: "RISC-V RV64",
}

func (f ProcessorFamily) String() string {
	if s, ok := processorFamilyStrings[f]; ok {
		return s
	}
	return fmt.Sprintf("Unrecognized (%#x)", uint16(f))
}

// ProcessorStatus is the low three bits of the status byte.
type ProcessorStatus uint8

const (
	ProcessorStatusUnknown ProcessorStatus = iota
	ProcessorStatusEnabled
	ProcessorStatusDisabledByUser
	ProcessorStatusDisabledByBIOS
	ProcessorStatusIdle
	_
	_
	ProcessorStatusOther
)

var processorStatusStrings = map[ProcessorStatus]string{
	ProcessorStatusUnknown:        "Unknown",
	ProcessorStatusEnabled:        "Enabled",
	ProcessorStatusDisabledByUser: "Disabled By User",
	ProcessorStatusDisabledByBIOS: "Disabled By BIOS",
	ProcessorStatusIdle:           "Idle",
	ProcessorStatusOther:          "Other",
}

func (s ProcessorStatus) String() string {
	if str, ok := processorStatusStrings[s]; ok {
		return str
	}
	return unrecognized(uint8(s))
}

// ProcessorUpgrade is the socket upgrade enumeration at offset 0x19. Only
// sockets in current circulation carry names.
type ProcessorUpgrade uint8

var processorUpgradeStrings = map[ProcessorUpgrade]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Daughter Board",
	0x04: "ZIF Socket",
	0x05: "Replaceable Piggy Back",
	0x06: "None",
	0x07: "LIF Socket",
	0x20: "Socket LGA1156",
	0x24: "Socket LGA1155",
	0x2C: "Socket LGA2011",
	0x32: "Socket LGA1150",
	0x36: "Socket LGA1151",
	0x38: "Socket AM4",
	0x3B: "Socket LGA3647-1",
	0x3C: "Socket SP3",
	0x3E: "Socket LGA2066",
	0x43: "Socket LGA1200",
	0x48: "Socket LGA4189",
	0x49: "Socket LGA1700",
	0x4C: "Socket AM5",
	0x4D: "Socket SP5",
	0x4F: "Socket LGA4677",
}

func (u ProcessorUpgrade) String() string {
	if s, ok := processorUpgradeStrings[u]; ok {
		return s
	}
	return unrecognized(uint8(u))
}

// ProcessorCharacteristics is the characteristics word at offset 0x26.
type ProcessorCharacteristics uint16

const (
	ProcessorCharReserved ProcessorCharacteristics = 1 << iota
	ProcessorCharUnknown
	ProcessorChar64Bit
	ProcessorCharMultiCore
	ProcessorCharHardwareThread
	ProcessorCharExecuteProtection
	ProcessorCharEnhancedVirtualization
	ProcessorCharPowerPerformanceControl
	ProcessorChar128Bit
	ProcessorCharArm64SocID
)

var processorCharStrings = map[ProcessorCharacteristics]string{
	ProcessorCharReserved:                "Reserved",
	ProcessorCharUnknown:                 "Unknown",
	ProcessorChar64Bit:                   "64-bit capable",
	ProcessorCharMultiCore:               "Multi-Core",
	ProcessorCharHardwareThread:          "Hardware Thread",
	ProcessorCharExecuteProtection:       "Execute Protection",
	ProcessorCharEnhancedVirtualization:  "Enhanced Virtualization",
	ProcessorCharPowerPerformanceControl: "Power/Performance Control",
	ProcessorChar128Bit:                  "128-bit capable",
	ProcessorCharArm64SocID:              "Arm64 SoC ID",
}

func (c ProcessorCharacteristics) String() string {
	var ss []string
	for i := 0; i < 16; i++ {
		if c&(1<<i) != 0 {
			ss = append(ss, processorCharStrings[1<<i])
		}
	}
	return strings.Join(ss, ", ")
}
