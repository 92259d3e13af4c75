package smbios

// HardwareSecurity decodes a Hardware Security structure (type 24).
type HardwareSecurity struct {
	s *Structure
}

func (h *HardwareSecurity) Structure() *Structure { return h.s }

// PowerOnPasswordStatus returns bits 7-6 of the settings byte.
func (h *HardwareSecurity) PowerOnPasswordStatus() (SecurityStatus, bool) {
	return h.statusField(6)
}

// KeyboardPasswordStatus returns bits 5-4 of the settings byte.
func (h *HardwareSecurity) KeyboardPasswordStatus() (SecurityStatus, bool) {
	return h.statusField(4)
}

// AdministratorPasswordStatus returns bits 3-2 of the settings byte.
func (h *HardwareSecurity) AdministratorPasswordStatus() (SecurityStatus, bool) {
	return h.statusField(2)
}

// FrontPanelResetStatus returns bits 1-0 of the settings byte.
func (h *HardwareSecurity) FrontPanelResetStatus() (SecurityStatus, bool) {
	return h.statusField(0)
}

func (h *HardwareSecurity) statusField(shift uint) (SecurityStatus, bool) {
	v, ok := h.s.ByteAt(0x04)
	return SecurityStatus(v >> shift & 0x03), ok
}

// SecurityStatus is one 2-bit password/reset status field.
type SecurityStatus uint8

const (
	SecurityStatusDisabled SecurityStatus = iota
	SecurityStatusEnabled
	SecurityStatusNotImplemented
	SecurityStatusUnknown
)

var securityStatusStrings = map[SecurityStatus]string{
	SecurityStatusDisabled:       "Disabled",
	SecurityStatusEnabled:        "Enabled",
	SecurityStatusNotImplemented: "Not Implemented",
	SecurityStatusUnknown:        "Unknown",
}

func (s SecurityStatus) String() string {
	if str, ok := securityStatusStrings[s]; ok {
		return str
	}
	return unrecognized(uint8(s))
}
