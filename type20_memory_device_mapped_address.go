package smbios

// MemoryDeviceMappedAddress decodes a Memory Device Mapped Address
// structure (type 20): the address range of one Memory Device within a
// mapped array range.
type MemoryDeviceMappedAddress struct {
	s *Structure
}

func (m *MemoryDeviceMappedAddress) Structure() *Structure { return m.s }

func (m *MemoryDeviceMappedAddress) StartingAddress() (uint64, bool) {
	return mappedAddress(m.s, 0x04, 0x13)
}

func (m *MemoryDeviceMappedAddress) EndingAddress() (uint64, bool) {
	return mappedAddress(m.s, 0x08, 0x1B)
}

// MemoryDeviceHandle references the Memory Device mapped here.
func (m *MemoryDeviceMappedAddress) MemoryDeviceHandle() (Handle, bool) {
	return m.s.HandleAt(0x0C)
}

// MemoryArrayMappedAddressHandle references the enclosing array range.
func (m *MemoryDeviceMappedAddress) MemoryArrayMappedAddressHandle() (Handle, bool) {
	return m.s.HandleAt(0x0E)
}

// PartitionRowPosition returns the device's row position in the interleave.
// 0xFF means unknown.
func (m *MemoryDeviceMappedAddress) PartitionRowPosition() (uint8, bool) {
	v, ok := m.s.ByteAt(0x10)
	if !ok || v == 0xFF {
		return 0, false
	}
	return v, true
}

// InterleavePosition returns the device's interleave position. Zero means
// non-interleaved; 0xFF means unknown.
func (m *MemoryDeviceMappedAddress) InterleavePosition() (uint8, bool) {
	v, ok := m.s.ByteAt(0x11)
	if !ok || v == 0xFF {
		return 0, false
	}
	return v, true
}

// InterleavedDataDepth returns the rows covered per interleave transfer.
// 0xFF means unknown.
func (m *MemoryDeviceMappedAddress) InterleavedDataDepth() (uint8, bool) {
	v, ok := m.s.ByteAt(0x12)
	if !ok || v == 0xFF {
		return 0, false
	}
	return v, true
}
