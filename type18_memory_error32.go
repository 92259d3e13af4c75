package smbios

// MemoryError32 decodes a 32-Bit Memory Error Information structure
// (type 18).
type MemoryError32 struct {
	s *Structure
}

func (e *MemoryError32) Structure() *Structure { return e.s }

func (e *MemoryError32) ErrorType() (MemoryErrorType, bool) {
	v, ok := e.s.ByteAt(0x04)
	return MemoryErrorType(v), ok
}

func (e *MemoryError32) Granularity() (MemoryErrorGranularity, bool) {
	v, ok := e.s.ByteAt(0x05)
	return MemoryErrorGranularity(v), ok
}

func (e *MemoryError32) Operation() (MemoryErrorOperation, bool) {
	v, ok := e.s.ByteAt(0x06)
	return MemoryErrorOperation(v), ok
}

// VendorSyndrome returns the vendor-specific ECC syndrome. Zero means
// unknown.
func (e *MemoryError32) VendorSyndrome() (uint32, bool) {
	v, ok := e.s.DwordAt(0x07)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// ArrayErrorAddress returns the 32-bit physical address of the error
// relative to the memory array. 0x80000000 means unknown.
func (e *MemoryError32) ArrayErrorAddress() (uint32, bool) {
	return e.addressField(0x0B)
}

// DeviceErrorAddress returns the 32-bit address relative to the device.
func (e *MemoryError32) DeviceErrorAddress() (uint32, bool) {
	return e.addressField(0x0F)
}

// Resolution returns the range in bytes within which the error can be
// determined. 0x80000000 means unknown.
func (e *MemoryError32) Resolution() (uint32, bool) {
	return e.addressField(0x13)
}

func (e *MemoryError32) addressField(off int) (uint32, bool) {
	v, ok := e.s.DwordAt(off)
	if !ok || v == 0x80000000 {
		return 0, false
	}
	return v, true
}

// MemoryErrorType is the error type enumeration shared by the 32-bit and
// 64-bit memory error structures.
type MemoryErrorType uint8

var memoryErrorTypeStrings = map[MemoryErrorType]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "OK",
	0x04: "Bad read",
	0x05: "Parity error",
	0x06: "Single-bit error",
	0x07: "Double-bit error",
	0x08: "Multi-bit error",
	0x09: "Nibble error",
	0x0A: "Checksum error",
	0x0B: "CRC error",
	0x0C: "Corrected single-bit error",
	0x0D: "Corrected error",
	0x0E: "Uncorrectable error",
}

func (t MemoryErrorType) String() string {
	if s, ok := memoryErrorTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}

// MemoryErrorGranularity narrows the error to a device or partition level.
type MemoryErrorGranularity uint8

var memoryErrorGranularityStrings = map[MemoryErrorGranularity]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Device level",
	0x04: "Memory partition level",
}

func (g MemoryErrorGranularity) String() string {
	if s, ok := memoryErrorGranularityStrings[g]; ok {
		return s
	}
	return unrecognized(uint8(g))
}

// MemoryErrorOperation is the memory access that caused the error.
type MemoryErrorOperation uint8

var memoryErrorOperationStrings = map[MemoryErrorOperation]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Read",
	0x04: "Write",
	0x05: "Partial write",
}

func (o MemoryErrorOperation) String() string {
	if s, ok := memoryErrorOperationStrings[o]; ok {
		return s
	}
	return unrecognized(uint8(o))
}
