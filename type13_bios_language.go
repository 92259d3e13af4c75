package smbios

// BIOSLanguage decodes a BIOS Language Information structure (type 13).
type BIOSLanguage struct {
	s *Structure
}

func (b *BIOSLanguage) Structure() *Structure { return b.s }

// InstallableLanguages returns the number of languages available.
func (b *BIOSLanguage) InstallableLanguages() (uint8, bool) {
	return b.s.ByteAt(0x04)
}

// AbbreviatedFormat reports bit 0 of the flags byte: language strings use
// the abbreviated format (e.g. "enUS") instead of the long one
// (e.g. "en|US|iso8859-1").
func (b *BIOSLanguage) AbbreviatedFormat() (bool, bool) {
	v, ok := b.s.ByteAt(0x05)
	return v&0x01 != 0, ok
}

// CurrentLanguage returns the language currently in use.
func (b *BIOSLanguage) CurrentLanguage() (string, bool) {
	return b.s.StringAt(0x15)
}

// Languages returns every available language string.
func (b *BIOSLanguage) Languages() []string {
	return b.s.Strings
}
