package smbios

// OnBoardDevicesExtended decodes an Onboard Devices Extended Information
// structure (type 41): one onboard device with its PCI location.
type OnBoardDevicesExtended struct {
	s *Structure
}

func (o *OnBoardDevicesExtended) Structure() *Structure { return o.s }

func (o *OnBoardDevicesExtended) ReferenceDesignation() (string, bool) {
	return o.s.StringAt(0x04)
}

// DeviceType returns bits 6-0 of the device type byte. The enumeration is
// shared with type 10.
func (o *OnBoardDevicesExtended) DeviceType() (OnBoardDeviceType, bool) {
	v, ok := o.s.ByteAt(0x05)
	return OnBoardDeviceType(v & 0x7F), ok
}

// Enabled reports bit 7 of the device type byte.
func (o *OnBoardDevicesExtended) Enabled() (bool, bool) {
	v, ok := o.s.ByteAt(0x05)
	return v&0x80 != 0, ok
}

func (o *OnBoardDevicesExtended) DeviceTypeInstance() (uint8, bool) {
	return o.s.ByteAt(0x06)
}

func (o *OnBoardDevicesExtended) SegmentGroupNumber() (uint16, bool) {
	return o.s.WordAt(0x07)
}

func (o *OnBoardDevicesExtended) BusNumber() (uint8, bool) {
	return o.s.ByteAt(0x09)
}

// DeviceNumber returns bits 7-3 of the device/function byte.
func (o *OnBoardDevicesExtended) DeviceNumber() (uint8, bool) {
	v, ok := o.s.ByteAt(0x0A)
	return v >> 3, ok
}

// FunctionNumber returns bits 2-0 of the device/function byte.
func (o *OnBoardDevicesExtended) FunctionNumber() (uint8, bool) {
	v, ok := o.s.ByteAt(0x0A)
	return v & 0x07, ok
}
