package smbios

// ManagementControllerHost decodes a Management Controller Host Interface
// structure (type 42).
type ManagementControllerHost struct {
	s *Structure
}

func (m *ManagementControllerHost) Structure() *Structure { return m.s }

func (m *ManagementControllerHost) InterfaceType() (HostInterfaceType, bool) {
	v, ok := m.s.ByteAt(0x04)
	return HostInterfaceType(v), ok
}

// InterfaceTypeSpecificData returns the interface-specific data block
// that follows the data length byte at 0x05.
func (m *ManagementControllerHost) InterfaceTypeSpecificData() ([]byte, bool) {
	n, ok := m.s.ByteAt(0x05)
	if !ok {
		return nil, false
	}
	return m.s.BytesAt(0x06, int(n))
}

// HostInterfaceType is the MCTP host interface type enumeration.
type HostInterfaceType uint8

var hostInterfaceTypeStrings = map[HostInterfaceType]string{
	0x02: "KCS: Keyboard Controller Style",
	0x03: "8250 UART Register Compatible",
	0x04: "16450 UART Register Compatible",
	0x05: "16550/16550A UART Register Compatible",
	0x06: "16650/16650A UART Register Compatible",
	0x07: "16750/16750A UART Register Compatible",
	0x08: "16850/16850A UART Register Compatible",
	0x40: "Network Host Interface",
	0xF0: "OEM-defined",
}

func (t HostInterfaceType) String() string {
	if s, ok := hostInterfaceTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}
