package smbios

// ManagementDevice decodes a Management Device structure (type 34).
type ManagementDevice struct {
	s *Structure
}

func (d *ManagementDevice) Structure() *Structure { return d.s }

func (d *ManagementDevice) Description() (string, bool) {
	return d.s.StringAt(0x04)
}

func (d *ManagementDevice) DeviceType() (MonitoringDeviceType, bool) {
	v, ok := d.s.ByteAt(0x05)
	return MonitoringDeviceType(v), ok
}

func (d *ManagementDevice) Address() (uint32, bool) {
	return d.s.DwordAt(0x06)
}

func (d *ManagementDevice) AddressType() (ManagementDeviceAddressType, bool) {
	v, ok := d.s.ByteAt(0x0A)
	return ManagementDeviceAddressType(v), ok
}

// MonitoringDeviceType is the management device type enumeration.
type MonitoringDeviceType uint8

var monitoringDeviceTypeStrings = map[MonitoringDeviceType]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "National Semiconductor LM75",
	0x04: "National Semiconductor LM78",
	0x05: "National Semiconductor LM79",
	0x06: "National Semiconductor LM80",
	0x07: "National Semiconductor LM81",
	0x08: "Analog Devices ADM9240",
	0x09: "Dallas Semiconductor DS1780",
	0x0A: "Maxim 1617",
	0x0B: "Genesys GL518SM",
	0x0C: "Winbond W83781D",
	0x0D: "Holtek HT82H791",
}

func (t MonitoringDeviceType) String() string {
	if s, ok := monitoringDeviceTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}

// ManagementDeviceAddressType is the address type enumeration.
type ManagementDeviceAddressType uint8

var managementDeviceAddressTypeStrings = map[ManagementDeviceAddressType]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "I/O Port",
	0x04: "Memory",
	0x05: "SM Bus",
}

func (t ManagementDeviceAddressType) String() string {
	if s, ok := managementDeviceAddressTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}
