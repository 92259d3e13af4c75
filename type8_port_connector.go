package smbios

// PortConnector decodes a Port Connector Information structure (type 8).
type PortConnector struct {
	s *Structure
}

func (p *PortConnector) Structure() *Structure { return p.s }

func (p *PortConnector) InternalReferenceDesignator() (string, bool) {
	return p.s.StringAt(0x04)
}

func (p *PortConnector) InternalConnectorType() (uint8, bool) {
	return p.s.ByteAt(0x05)
}

func (p *PortConnector) ExternalReferenceDesignator() (string, bool) {
	return p.s.StringAt(0x06)
}

func (p *PortConnector) ExternalConnectorType() (uint8, bool) {
	return p.s.ByteAt(0x07)
}

func (p *PortConnector) PortType() (PortType, bool) {
	v, ok := p.s.ByteAt(0x08)
	return PortType(v), ok
}

// PortType is the port function enumeration at offset 0x08.
type PortType uint8

var portTypeStrings = map[PortType]string{
	0x00: "None",
	0x01: "Parallel Port XT/AT Compatible",
	0x05: "Serial Port XT/AT Compatible",
	0x08: "Serial Port 16550A Compatible",
	0x09: "SCSI Port",
	0x0A: "MIDI Port",
	0x0D: "Keyboard Port",
	0x0E: "Mouse Port",
	0x0F: "SSA SCSI",
	0x10: "USB",
	0x11: "FireWire (IEEE P1394)",
	0x16: "Video Port",
	0x17: "Audio Port",
	0x18: "Modem Port",
	0x1F: "Network Port",
	0x20: "SATA",
	0x21: "SAS",
	0x22: "MFDP (Multi-Function Display Port)",
	0x23: "Thunderbolt",
	0xFF: "Other",
}

func (t PortType) String() string {
	if s, ok := portTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}
