package smbios

// BootIntegrityServices decodes a Boot Integrity Services Entry Point
// structure (type 31). The structure is reserved and carries no decodable
// fields beyond checksums and entry addresses.
type BootIntegrityServices struct {
	s *Structure
}

func (b *BootIntegrityServices) Structure() *Structure { return b.s }

func (b *BootIntegrityServices) Checksum() (uint8, bool) {
	return b.s.ByteAt(0x04)
}

func (b *BootIntegrityServices) BISEntry16() (uint32, bool) {
	return b.s.DwordAt(0x08)
}

func (b *BootIntegrityServices) BISEntry32() (uint32, bool) {
	return b.s.DwordAt(0x0C)
}
