package smbios

// MemoryController decodes a Memory Controller Information structure
// (type 5). Obsolete since SMBIOS 2.1; decoded for older firmware.
type MemoryController struct {
	s *Structure
}

func (m *MemoryController) Structure() *Structure { return m.s }

func (m *MemoryController) ErrorDetectingMethod() (uint8, bool) {
	return m.s.ByteAt(0x04)
}

func (m *MemoryController) ErrorCorrectingCapability() (uint8, bool) {
	return m.s.ByteAt(0x05)
}

func (m *MemoryController) SupportedInterleave() (uint8, bool) {
	return m.s.ByteAt(0x06)
}

func (m *MemoryController) CurrentInterleave() (uint8, bool) {
	return m.s.ByteAt(0x07)
}

// MaximumModuleSize returns the largest supported module size in bytes,
// stored as a power-of-two exponent of megabytes.
func (m *MemoryController) MaximumModuleSize() (uint64, bool) {
	v, ok := m.s.ByteAt(0x08)
	if !ok || v > 62 {
		return 0, false
	}
	return (1 << v) * 1024 * 1024, true
}

func (m *MemoryController) SupportedSpeeds() (uint16, bool) {
	return m.s.WordAt(0x09)
}

func (m *MemoryController) SupportedTypes() (uint16, bool) {
	return m.s.WordAt(0x0B)
}

func (m *MemoryController) ModuleVoltage() (uint8, bool) {
	return m.s.ByteAt(0x0D)
}

// AssociatedSlotHandles lists the Memory Module structures this controller
// drives.
func (m *MemoryController) AssociatedSlotHandles() ([]Handle, bool) {
	n, ok := m.s.ByteAt(0x0E)
	if !ok {
		return nil, false
	}
	handles := make([]Handle, 0, n)
	for i := 0; i < int(n); i++ {
		h, ok := m.s.HandleAt(0x0F + i*2)
		if !ok {
			return nil, false
		}
		handles = append(handles, h)
	}
	return handles, true
}
