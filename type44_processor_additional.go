package smbios

// ProcessorAdditional decodes a Processor Additional Information
// structure (type 44).
type ProcessorAdditional struct {
	s *Structure
}

func (p *ProcessorAdditional) Structure() *Structure { return p.s }

// ReferencedHandle returns the handle of the type 4 structure this block
// extends.
func (p *ProcessorAdditional) ReferencedHandle() (Handle, bool) {
	return p.s.HandleAt(0x04)
}

// BlockLength returns the length of the processor-specific block.
func (p *ProcessorAdditional) BlockLength() (uint8, bool) {
	return p.s.ByteAt(0x06)
}

// ProcessorType returns the architecture type of the processor-specific
// block.
func (p *ProcessorAdditional) ProcessorType() (ProcessorArchitectureType, bool) {
	v, ok := p.s.ByteAt(0x07)
	return ProcessorArchitectureType(v), ok
}

// BlockData returns the raw processor-specific data.
func (p *ProcessorAdditional) BlockData() ([]byte, bool) {
	n, ok := p.s.ByteAt(0x06)
	if !ok || n < 2 {
		return nil, false
	}
	return p.s.BytesAt(0x08, int(n)-2)
}

// ProcessorArchitectureType identifies the architecture of a
// processor-specific block.
type ProcessorArchitectureType uint8

var processorArchitectureTypeStrings = map[ProcessorArchitectureType]string{
	0x01: "IA32 (x86)",
	0x02: "x64 (x86-64, Intel64, AMD64, EM64T)",
	0x03: "Intel Itanium architecture",
	0x04: "32-bit ARM (aarch32)",
	0x05: "64-bit ARM (aarch64)",
	0x06: "32-bit RISC-V (RV32)",
	0x07: "64-bit RISC-V (RV64)",
	0x08: "128-bit RISC-V (RV128)",
	0x09: "LoongArch32",
	0x0A: "LoongArch64",
}

func (t ProcessorArchitectureType) String() string {
	if s, ok := processorArchitectureTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}
