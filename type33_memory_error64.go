package smbios

// MemoryError64 decodes a 64-Bit Memory Error Information structure
// (type 33). Enumerations are shared with the 32-bit variant (type 18).
type MemoryError64 struct {
	s *Structure
}

func (e *MemoryError64) Structure() *Structure { return e.s }

func (e *MemoryError64) ErrorType() (MemoryErrorType, bool) {
	v, ok := e.s.ByteAt(0x04)
	return MemoryErrorType(v), ok
}

func (e *MemoryError64) Granularity() (MemoryErrorGranularity, bool) {
	v, ok := e.s.ByteAt(0x05)
	return MemoryErrorGranularity(v), ok
}

func (e *MemoryError64) Operation() (MemoryErrorOperation, bool) {
	v, ok := e.s.ByteAt(0x06)
	return MemoryErrorOperation(v), ok
}

// VendorSyndrome returns the vendor-specific ECC syndrome. Zero means
// unknown.
func (e *MemoryError64) VendorSyndrome() (uint32, bool) {
	v, ok := e.s.DwordAt(0x07)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// MemoryArrayErrorAddress returns the 64-bit physical address of the
// error. 0x8000000000000000 means unknown.
func (e *MemoryError64) MemoryArrayErrorAddress() (uint64, bool) {
	return e.errorAddress(0x0B)
}

// DeviceErrorAddress returns the 64-bit device-relative address of the
// error. 0x8000000000000000 means unknown.
func (e *MemoryError64) DeviceErrorAddress() (uint64, bool) {
	return e.errorAddress(0x13)
}

// ErrorResolution returns the range in bytes within which the error can
// be determined. 0x80000000 means unknown.
func (e *MemoryError64) ErrorResolution() (uint32, bool) {
	v, ok := e.s.DwordAt(0x1B)
	if !ok || v == 0x80000000 {
		return 0, false
	}
	return v, true
}

func (e *MemoryError64) errorAddress(off int) (uint64, bool) {
	v, ok := e.s.QwordAt(off)
	if !ok || v == 0x8000000000000000 {
		return 0, false
	}
	return v, true
}
