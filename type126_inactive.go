package smbios

// InactiveStructure marks a structure that firmware has disabled
// (type 126). The underlying bytes describe what the structure would be
// if active; only the raw form is exposed.
type InactiveStructure struct {
	s *Structure
}

func (i *InactiveStructure) Structure() *Structure { return i.s }
