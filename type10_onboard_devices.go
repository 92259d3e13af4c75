package smbios

// OnBoardDevices decodes an On Board Devices Information structure
// (type 10). Obsolete since SMBIOS 2.6; superseded by type 41.
type OnBoardDevices struct {
	s *Structure
}

func (o *OnBoardDevices) Structure() *Structure { return o.s }

// OnBoardDevice is one device entry: its type, whether it is enabled, and
// its description string.
type OnBoardDevice struct {
	DeviceType  OnBoardDeviceType
	Enabled     bool
	Description string
}

// Devices returns every device entry. The entry count is implied by the
// structure length: two bytes per device after the header.
func (o *OnBoardDevices) Devices() []OnBoardDevice {
	n := (len(o.s.Formatted) - headerLength) / 2
	devices := make([]OnBoardDevice, 0, n)
	for i := 0; i < n; i++ {
		raw, ok := o.s.ByteAt(headerLength + i*2)
		if !ok {
			break
		}
		desc, _ := o.s.StringAt(headerLength + i*2 + 1)
		devices = append(devices, OnBoardDevice{
			DeviceType:  OnBoardDeviceType(raw & 0x7F),
			Enabled:     raw&0x80 != 0,
			Description: desc,
		})
	}
	return devices
}

// OnBoardDeviceType is the device type enumeration (status bit masked off).
type OnBoardDeviceType uint8

const (
	OnBoardDeviceOther OnBoardDeviceType = iota + 1
	OnBoardDeviceUnknown
	OnBoardDeviceVideo
	OnBoardDeviceSCSIController
	OnBoardDeviceEthernet
	OnBoardDeviceTokenRing
	OnBoardDeviceSound
	OnBoardDevicePATAController
	OnBoardDeviceSATAController
	OnBoardDeviceSASController
)

var onBoardDeviceTypeStrings = map[OnBoardDeviceType]string{
	OnBoardDeviceOther:          "Other",
	OnBoardDeviceUnknown:        "Unknown",
	OnBoardDeviceVideo:          "Video",
	OnBoardDeviceSCSIController: "SCSI Controller",
	OnBoardDeviceEthernet:       "Ethernet",
	OnBoardDeviceTokenRing:      "Token Ring",
	OnBoardDeviceSound:          "Sound",
	OnBoardDevicePATAController: "PATA Controller",
	OnBoardDeviceSATAController: "SATA Controller",
	OnBoardDeviceSASController:  "SAS Controller",
}

func (t OnBoardDeviceType) String() string {
	if s, ok := onBoardDeviceTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}
