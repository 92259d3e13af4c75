package smbios

// SystemBoot decodes a System Boot Information structure (type 32).
type SystemBoot struct {
	s *Structure
}

func (b *SystemBoot) Structure() *Structure { return b.s }

func (b *SystemBoot) BootStatus() (BootStatus, bool) {
	v, ok := b.s.ByteAt(0x0A)
	return BootStatus(v), ok
}

// BootStatusData returns the vendor or product specific data following
// the status byte.
func (b *SystemBoot) BootStatusData() ([]byte, bool) {
	n := int(b.s.Length) - 0x0B
	if n <= 0 {
		return nil, false
	}
	return b.s.BytesAt(0x0B, n)
}

// BootStatus is the system boot status enumeration.
type BootStatus uint8

const (
	BootStatusNoErrors BootStatus = iota
	BootStatusNoBootableMedia
	BootStatusOSFailedToLoad
	BootStatusFirmwareHardwareFailure
	BootStatusOSHardwareFailure
	BootStatusUserRequestedBoot
	BootStatusSecurityViolation
	BootStatusPreviouslyRequestedImage
	BootStatusWatchdogExpired
)

var bootStatusStrings = map[BootStatus]string{
	BootStatusNoErrors:                 "No errors detected",
	BootStatusNoBootableMedia:          "No bootable media",
	BootStatusOSFailedToLoad:           "Operating system failed to load",
	BootStatusFirmwareHardwareFailure:  "Firmware-detected hardware failure",
	BootStatusOSHardwareFailure:        "Operating system-detected hardware failure",
	BootStatusUserRequestedBoot:        "User-requested boot",
	BootStatusSecurityViolation:        "System security violation",
	BootStatusPreviouslyRequestedImage: "Previously-requested image",
	BootStatusWatchdogExpired:          "System watchdog timer expired",
}

func (s BootStatus) String() string {
	if str, ok := bootStatusStrings[s]; ok {
		return str
	}
	if s >= 128 && s <= 191 {
		return "OEM-specific"
	}
	if s >= 192 {
		return "Product-specific"
	}
	return unrecognized(uint8(s))
}
