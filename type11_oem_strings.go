package smbios

// OEMStrings decodes an OEM Strings structure (type 11): free-form strings
// the system vendor chose to embed.
type OEMStrings struct {
	s *Structure
}

func (o *OEMStrings) Structure() *Structure { return o.s }

// Count returns the string count the structure declares.
func (o *OEMStrings) Count() (uint8, bool) {
	return o.s.ByteAt(0x04)
}

// Strings returns the OEM strings. Firmware sometimes declares a count that
// disagrees with the string-set; the actual strings win.
func (o *OEMStrings) Strings() []string {
	return o.s.Strings
}
