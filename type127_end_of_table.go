package smbios

// EndOfTableStructure terminates the structure table (type 127).
type EndOfTableStructure struct {
	s *Structure
}

func (e *EndOfTableStructure) Structure() *Structure { return e.s }
