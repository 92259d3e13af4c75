package smbios

// BuiltInPointingDevice decodes a Built-in Pointing Device structure
// (type 21).
type BuiltInPointingDevice struct {
	s *Structure
}

func (p *BuiltInPointingDevice) Structure() *Structure { return p.s }

func (p *BuiltInPointingDevice) DeviceType() (PointingDeviceType, bool) {
	v, ok := p.s.ByteAt(0x04)
	return PointingDeviceType(v), ok
}

func (p *BuiltInPointingDevice) Interface() (PointingDeviceInterface, bool) {
	v, ok := p.s.ByteAt(0x05)
	return PointingDeviceInterface(v), ok
}

func (p *BuiltInPointingDevice) NumberOfButtons() (uint8, bool) {
	return p.s.ByteAt(0x06)
}

// PointingDeviceType is the device type enumeration at offset 0x04.
type PointingDeviceType uint8

var pointingDeviceTypeStrings = map[PointingDeviceType]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Mouse",
	0x04: "Track Ball",
	0x05: "Track Point",
	0x06: "Glide Point",
	0x07: "Touch Pad",
	0x08: "Touch Screen",
	0x09: "Optical Sensor",
}

func (t PointingDeviceType) String() string {
	if s, ok := pointingDeviceTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}

// PointingDeviceInterface is the interface enumeration at offset 0x05.
type PointingDeviceInterface uint8

var pointingDeviceInterfaceStrings = map[PointingDeviceInterface]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Serial",
	0x04: "PS/2",
	0x05: "Infrared",
	0x06: "HP-HIL",
	0x07: "Bus mouse",
	0x08: "ADB (Apple Desktop Bus)",
	0xA0: "Bus mouse DB-9",
	0xA1: "Bus mouse micro-DIN",
	0xA2: "USB",
	0xA3: "I2C",
	0xA4: "SPI",
}

func (i PointingDeviceInterface) String() string {
	if s, ok := pointingDeviceInterfaceStrings[i]; ok {
		return s
	}
	return unrecognized(uint8(i))
}
