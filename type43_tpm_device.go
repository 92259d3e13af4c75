package smbios

import "strings"

// TPMDevice decodes a TPM Device structure (type 43).
type TPMDevice struct {
	s *Structure
}

func (t *TPMDevice) Structure() *Structure { return t.s }

// VendorID returns the four-character vendor ID assigned by the Trusted
// Computing Group. Trailing NUL padding is stripped.
func (t *TPMDevice) VendorID() (string, bool) {
	b, ok := t.s.BytesAt(0x04, 4)
	if !ok {
		return "", false
	}
	return strings.TrimRight(string(b), "\x00"), true
}

// SpecVersion returns the major and minor TPM specification version,
// for example 1.2 or 2.0.
func (t *TPMDevice) SpecVersion() (major, minor uint8, ok bool) {
	major, ok = t.s.ByteAt(0x08)
	if !ok {
		return 0, 0, false
	}
	minor, ok = t.s.ByteAt(0x09)
	return major, minor, ok
}

// FirmwareVersion1 returns the first firmware version dword. Its layout
// depends on the spec version.
func (t *TPMDevice) FirmwareVersion1() (uint32, bool) {
	return t.s.DwordAt(0x0A)
}

// FirmwareVersion2 returns the second firmware version dword.
func (t *TPMDevice) FirmwareVersion2() (uint32, bool) {
	return t.s.DwordAt(0x0E)
}

func (t *TPMDevice) Description() (string, bool) {
	return t.s.StringAt(0x12)
}

// Characteristics returns the raw characteristics qword.
func (t *TPMDevice) Characteristics() (TPMCharacteristics, bool) {
	v, ok := t.s.QwordAt(0x13)
	return TPMCharacteristics(v), ok
}

func (t *TPMDevice) OEMDefined() (uint32, bool) {
	return t.s.DwordAt(0x1B)
}

// TPMCharacteristics is the TPM device characteristics bitfield.
type TPMCharacteristics uint64

const (
	TPMCharacteristicsNotSupported         TPMCharacteristics = 1 << 2
	TPMConfigurableViaFirmwareUpdate       TPMCharacteristics = 1 << 3
	TPMConfigurableViaPlatformSoftware     TPMCharacteristics = 1 << 4
	TPMConfigurableViaOEMProprietaryMethod TPMCharacteristics = 1 << 5
)
