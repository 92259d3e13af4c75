package smbios

import (
	"bytes"

	"github.com/google/uuid"
)

// SystemInformation decodes a System Information structure (type 1).
// Well-formed tables contain exactly one.
type SystemInformation struct {
	s *Structure
}

func (si *SystemInformation) Structure() *Structure { return si.s }

func (si *SystemInformation) Manufacturer() (string, bool) {
	return si.s.StringAt(0x04)
}

func (si *SystemInformation) ProductName() (string, bool) {
	return si.s.StringAt(0x05)
}

func (si *SystemInformation) Version() (string, bool) {
	return si.s.StringAt(0x06)
}

func (si *SystemInformation) SerialNumber() (string, bool) {
	return si.s.StringAt(0x07)
}

// UUIDBytes returns the 16 UUID bytes exactly as the firmware stores them
// (2.1+). All-zero means the ID is not present but settable; all-FF means it
// is not present and not settable — both are reported as absent, use
// RawUUIDBytes when the sentinel itself matters.
func (si *SystemInformation) UUIDBytes() ([16]byte, bool) {
	raw, ok := si.RawUUIDBytes()
	if !ok {
		return raw, false
	}
	if bytes.Equal(raw[:], make([]byte, 16)) ||
		bytes.Equal(raw[:], bytes.Repeat([]byte{0xFF}, 16)) {
		return raw, false
	}
	return raw, true
}

// RawUUIDBytes returns the UUID field bytes without sentinel translation.
func (si *SystemInformation) RawUUIDBytes() ([16]byte, bool) {
	var out [16]byte
	b, ok := si.s.BytesAt(0x08, 16)
	if !ok {
		return out, false
	}
	copy(out[:], b)
	return out, true
}

// UUID returns the system UUID in RFC 4122 form. From SMBIOS 2.6 the first
// three fields are stored little-endian (wire format), so they are byte
// swapped before conversion.
func (si *SystemInformation) UUID() (uuid.UUID, bool) {
	raw, ok := si.UUIDBytes()
	if !ok {
		return uuid.UUID{}, false
	}
	swapped := [16]byte{
		raw[3], raw[2], raw[1], raw[0],
		raw[5], raw[4],
		raw[7], raw[6],
		raw[8], raw[9],
		raw[10], raw[11], raw[12], raw[13], raw[14], raw[15],
	}
	id, err := uuid.FromBytes(swapped[:])
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

func (si *SystemInformation) WakeUpType() (WakeUpType, bool) {
	v, ok := si.s.ByteAt(0x18)
	return WakeUpType(v), ok
}

// SKUNumber returns the product SKU (2.4+).
func (si *SystemInformation) SKUNumber() (string, bool) {
	return si.s.StringAt(0x19)
}

// Family returns the computer family string (2.4+).
func (si *SystemInformation) Family() (string, bool) {
	return si.s.StringAt(0x1A)
}

// WakeUpType identifies the event that caused the system to power up.
type WakeUpType uint8

const (
	WakeUpReserved WakeUpType = iota
	WakeUpOther
	WakeUpUnknown
	WakeUpAPMTimer
	WakeUpModemRing
	WakeUpLANRemote
	WakeUpPowerSwitch
	WakeUpPCIPME
	WakeUpACPowerRestored
)

var wakeUpStrings = map[WakeUpType]string{
	WakeUpReserved:        "Reserved",
	WakeUpOther:           "Other",
	WakeUpUnknown:         "Unknown",
	WakeUpAPMTimer:        "APM Timer",
	WakeUpModemRing:       "Modem Ring",
	WakeUpLANRemote:       "LAN Remote",
	WakeUpPowerSwitch:     "Power Switch",
	WakeUpPCIPME:          "PCI PME#",
	WakeUpACPowerRestored: "AC Power Restored",
}

func (w WakeUpType) String() string {
	if s, ok := wakeUpStrings[w]; ok {
		return s
	}
	return unrecognized(uint8(w))
}
