package smbios

import (
	"fmt"
	"strings"
)

// BIOSInformation decodes a BIOS Information structure (type 0).
type BIOSInformation struct {
	s *Structure
}

func (b *BIOSInformation) Structure() *Structure { return b.s }

func (b *BIOSInformation) Vendor() (string, bool) {
	return b.s.StringAt(0x04)
}

func (b *BIOSInformation) Version() (string, bool) {
	return b.s.StringAt(0x05)
}

func (b *BIOSInformation) StartingAddressSegment() (uint16, bool) {
	return b.s.WordAt(0x06)
}

func (b *BIOSInformation) ReleaseDate() (string, bool) {
	return b.s.StringAt(0x08)
}

// ROMSize returns the physical ROM size in bytes. For sizes of 16 MB and
// above the byte at 0x09 holds 0xFF and the extended ROM size word (3.1+)
// carries the value instead.
func (b *BIOSInformation) ROMSize() (uint64, bool) {
	raw, ok := b.s.ByteAt(0x09)
	if !ok {
		return 0, false
	}
	if raw != 0xFF {
		return (uint64(raw) + 1) * 64 * 1024, true
	}

	ext, ok := b.s.WordAt(0x18)
	if !ok {
		return 0, false
	}
	size := uint64(ext & 0x3FFF)
	switch ext >> 14 {
	case 0:
		return size * 1024 * 1024, true
	case 1:
		return size * 1024 * 1024 * 1024, true
	default:
		return 0, false
	}
}

func (b *BIOSInformation) Characteristics() (BIOSCharacteristics, bool) {
	q, ok := b.s.QwordAt(0x0A)
	return BIOSCharacteristics(q), ok
}

func (b *BIOSInformation) CharacteristicsExt1() (BIOSCharacteristicsExt1, bool) {
	v, ok := b.s.ByteAt(0x12)
	return BIOSCharacteristicsExt1(v), ok
}

func (b *BIOSInformation) CharacteristicsExt2() (BIOSCharacteristicsExt2, bool) {
	v, ok := b.s.ByteAt(0x13)
	return BIOSCharacteristicsExt2(v), ok
}

// SystemBIOSRelease returns the system BIOS major and minor release.
// 0xFF.0xFF means the release is not reported.
func (b *BIOSInformation) SystemBIOSRelease() (major, minor uint8, ok bool) {
	major, ok = b.s.ByteAt(0x14)
	if !ok {
		return 0, 0, false
	}
	minor, ok = b.s.ByteAt(0x15)
	if !ok || (major == 0xFF && minor == 0xFF) {
		return 0, 0, false
	}
	return major, minor, true
}

// ECFirmwareRelease returns the embedded controller firmware release.
// 0xFF.0xFF means the system has no field-upgradeable EC firmware.
func (b *BIOSInformation) ECFirmwareRelease() (major, minor uint8, ok bool) {
	major, ok = b.s.ByteAt(0x16)
	if !ok {
		return 0, 0, false
	}
	minor, ok = b.s.ByteAt(0x17)
	if !ok || (major == 0xFF && minor == 0xFF) {
		return 0, 0, false
	}
	return major, minor, true
}

// BIOSCharacteristics is the 64-bit characteristics flag set at offset 0x0A.
type BIOSCharacteristics uint64

const (
	BIOSCharReserved BIOSCharacteristics = 1 << iota
	BIOSCharReserved2
	BIOSCharUnknown
	BIOSCharNotSupported
	BIOSCharISA
	BIOSCharMCA
	BIOSCharEISA
	BIOSCharPCI
	BIOSCharPCMCIA
	BIOSCharPlugAndPlay
	BIOSCharAPM
	BIOSCharUpgradeable
	BIOSCharShadowingAllowed
	BIOSCharVLVESA
	BIOSCharESCD
	BIOSCharBootFromCD
	BIOSCharSelectableBoot
	BIOSCharROMSocketed
	BIOSCharBootFromPCMCIA
	BIOSCharEDD
	BIOSCharJapaneseFloppyNEC
	BIOSCharJapaneseFloppyToshiba
	BIOSChar360KBFloppy
	BIOSChar12MBFloppy
	BIOSChar720KBFloppy
	BIOSChar288MBFloppy
	BIOSCharInt5h
	BIOSCharInt9h
	BIOSCharInt14h
	BIOSCharInt17h
	BIOSCharInt10h
	BIOSCharNECPC98
)

var biosCharStrings = map[BIOSCharacteristics]string{
	BIOSCharReserved:              "Reserved",
	BIOSCharReserved2:             "Reserved",
	BIOSCharUnknown:               "Unknown",
	BIOSCharNotSupported:          "BIOS characteristics not supported",
	BIOSCharISA:                   "ISA is supported",
	BIOSCharMCA:                   "MCA is supported",
	BIOSCharEISA:                  "EISA is supported",
	BIOSCharPCI:                   "PCI is supported",
	BIOSCharPCMCIA:                "PC Card (PCMCIA) is supported",
	BIOSCharPlugAndPlay:           "PNP is supported",
	BIOSCharAPM:                   "APM is supported",
	BIOSCharUpgradeable:           "BIOS is upgradeable",
	BIOSCharShadowingAllowed:      "BIOS shadowing is allowed",
	BIOSCharVLVESA:                "VLB is supported",
	BIOSCharESCD:                  "ESCD support is available",
	BIOSCharBootFromCD:            "Boot from CD is supported",
	BIOSCharSelectableBoot:        "Selectable boot is supported",
	BIOSCharROMSocketed:           "BIOS ROM is socketed",
	BIOSCharBootFromPCMCIA:        "Boot from PC Card (PCMCIA) is supported",
	BIOSCharEDD:                   "EDD is supported",
	BIOSCharJapaneseFloppyNEC:     "Japanese floppy for NEC 9800 1.2 MB is supported (int 13h)",
	BIOSCharJapaneseFloppyToshiba: "Japanese floppy for Toshiba 1.2 MB is supported (int 13h)",
	BIOSChar360KBFloppy:           "5.25\"/360 kB floppy services are supported (int 13h)",
	BIOSChar12MBFloppy:            "5.25\"/1.2 MB floppy services are supported (int 13h)",
	BIOSChar720KBFloppy:           "3.5\"/720 kB floppy services are supported (int 13h)",
	BIOSChar288MBFloppy:           "3.5\"/2.88 MB floppy services are supported (int 13h)",
	BIOSCharInt5h:                 "Print screen service is supported (int 5h)",
	BIOSCharInt9h:                 "8042 keyboard services are supported (int 9h)",
	BIOSCharInt14h:                "Serial services are supported (int 14h)",
	BIOSCharInt17h:                "Printer services are supported (int 17h)",
	BIOSCharInt10h:                "CGA/mono video services are supported (int 10h)",
	BIOSCharNECPC98:               "NEC PC-98",
}

func (b BIOSCharacteristics) String() string {
	var ss []string
	for i := 0; i < 32; i++ {
		if b&(1<<i) != 0 {
			ss = append(ss, biosCharStrings[1<<i])
		}
	}
	return strings.Join(ss, ", ")
}

// BIOSCharacteristicsExt1 is the first characteristics extension byte.
type BIOSCharacteristicsExt1 uint8

const (
	BIOSCharExt1ACPI BIOSCharacteristicsExt1 = 1 << iota
	BIOSCharExt1USBLegacy
	BIOSCharExt1AGP
	BIOSCharExt1I2OBoot
	BIOSCharExt1LS120Boot
	BIOSCharExt1ATAPIZIPBoot
	BIOSCharExt11394Boot
	BIOSCharExt1SmartBattery
)

var biosCharExt1Strings = map[BIOSCharacteristicsExt1]string{
	BIOSCharExt1ACPI:         "ACPI is supported",
	BIOSCharExt1USBLegacy:    "USB legacy is supported",
	BIOSCharExt1AGP:          "AGP is supported",
	BIOSCharExt1I2OBoot:      "I2O boot is supported",
	BIOSCharExt1LS120Boot:    "LS-120 boot is supported",
	BIOSCharExt1ATAPIZIPBoot: "ATAPI Zip drive boot is supported",
	BIOSCharExt11394Boot:     "IEEE 1394 boot is supported",
	BIOSCharExt1SmartBattery: "Smart battery is supported",
}

func (b BIOSCharacteristicsExt1) String() string {
	var ss []string
	for i := 0; i < 8; i++ {
		if b&(1<<i) != 0 {
			ss = append(ss, biosCharExt1Strings[1<<i])
		}
	}
	return strings.Join(ss, ", ")
}

// BIOSCharacteristicsExt2 is the second characteristics extension byte.
type BIOSCharacteristicsExt2 uint8

const (
	BIOSCharExt2BootSpecification BIOSCharacteristicsExt2 = 1 << iota
	BIOSCharExt2FnNetworkBoot
	BIOSCharExt2TargetedContent
	BIOSCharExt2UEFI
	BIOSCharExt2VirtualMachine
)

var biosCharExt2Strings = map[BIOSCharacteristicsExt2]string{
	BIOSCharExt2BootSpecification: "BIOS Boot Specification is supported",
	BIOSCharExt2FnNetworkBoot:     "Function key-initiated network service boot is supported",
	BIOSCharExt2TargetedContent:   "Enable targeted content distribution",
	BIOSCharExt2UEFI:              "UEFI Specification is supported",
	BIOSCharExt2VirtualMachine:    "SMBIOS table describes a virtual machine",
}

func (b BIOSCharacteristicsExt2) String() string {
	var ss []string
	for i := 0; i < 8; i++ {
		if b&(1<<i) != 0 {
			ss = append(ss, biosCharExt2Strings[1<<i])
		}
	}
	return strings.Join(ss, ", ")
}

func unrecognized(v uint8) string {
	return fmt.Sprintf("Unrecognized (%#x)", v)
}
