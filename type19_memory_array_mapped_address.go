package smbios

// MemoryArrayMappedAddress decodes a Memory Array Mapped Address structure
// (type 19): the address range a Physical Memory Array is mapped into.
type MemoryArrayMappedAddress struct {
	s *Structure
}

func (m *MemoryArrayMappedAddress) Structure() *Structure { return m.s }

// StartingAddress returns the range start in bytes. The dword fields hold
// kilobytes; the 0xFFFFFFFF sentinel redirects to the extended qword
// fields (2.7+), which hold bytes.
func (m *MemoryArrayMappedAddress) StartingAddress() (uint64, bool) {
	return mappedAddress(m.s, 0x04, 0x0F)
}

// EndingAddress returns the range end in bytes.
func (m *MemoryArrayMappedAddress) EndingAddress() (uint64, bool) {
	return mappedAddress(m.s, 0x08, 0x17)
}

// MemoryArrayHandle references the Physical Memory Array mapped here.
func (m *MemoryArrayMappedAddress) MemoryArrayHandle() (Handle, bool) {
	return m.s.HandleAt(0x0C)
}

// PartitionWidth returns the number of memory devices that form one row of
// the address partition.
func (m *MemoryArrayMappedAddress) PartitionWidth() (uint8, bool) {
	return m.s.ByteAt(0x0E)
}

func mappedAddress(s *Structure, off, extOff int) (uint64, bool) {
	v, ok := s.DwordAt(off)
	if !ok {
		return 0, false
	}
	if v == 0xFFFFFFFF {
		q, ok := s.QwordAt(extOff)
		return q, ok
	}
	return uint64(v) * 1024, true
}
