package smbios

// IPMIDevice decodes an IPMI Device Information structure (type 38).
type IPMIDevice struct {
	s *Structure
}

func (d *IPMIDevice) Structure() *Structure { return d.s }

func (d *IPMIDevice) InterfaceType() (IPMIInterfaceType, bool) {
	v, ok := d.s.ByteAt(0x04)
	return IPMIInterfaceType(v), ok
}

// SpecificationRevision returns the IPMI revision, major in the high
// nibble and minor in the low.
func (d *IPMIDevice) SpecificationRevision() (major, minor uint8, ok bool) {
	v, ok := d.s.ByteAt(0x05)
	return v >> 4, v & 0x0F, ok
}

// I2CTargetAddress returns the 7-bit target address of the BMC on the
// I2C bus.
func (d *IPMIDevice) I2CTargetAddress() (uint8, bool) {
	v, ok := d.s.ByteAt(0x06)
	return v >> 1, ok
}

// NVStorageDeviceAddress returns the bus ID of the NV storage device.
// 0xFF means no such device exists.
func (d *IPMIDevice) NVStorageDeviceAddress() (uint8, bool) {
	v, ok := d.s.ByteAt(0x07)
	if !ok || v == 0xFF {
		return 0, false
	}
	return v, true
}

// BaseAddress returns the base address of the BMC registers. Bit 0
// selects I/O space (1) versus memory-mapped (0); the address proper is
// aligned and the bit must be masked by the caller when forming it.
func (d *IPMIDevice) BaseAddress() (uint64, bool) {
	return d.s.QwordAt(0x08)
}

// BaseAddressModifier returns the register spacing and interrupt info
// byte added in 2.5.
func (d *IPMIDevice) BaseAddressModifier() (uint8, bool) {
	return d.s.ByteAt(0x10)
}

// InterruptNumber returns the interrupt line used by the BMC. Zero means
// unspecified or unsupported.
func (d *IPMIDevice) InterruptNumber() (uint8, bool) {
	v, ok := d.s.ByteAt(0x11)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// IPMIInterfaceType is the BMC interface type enumeration.
type IPMIInterfaceType uint8

const (
	IPMIInterfaceUnknown IPMIInterfaceType = iota
	IPMIInterfaceKCS
	IPMIInterfaceSMIC
	IPMIInterfaceBT
	IPMIInterfaceSSIF
)

var ipmiInterfaceTypeStrings = map[IPMIInterfaceType]string{
	IPMIInterfaceUnknown: "Unknown",
	IPMIInterfaceKCS:     "KCS: Keyboard Controller Style",
	IPMIInterfaceSMIC:    "SMIC: Server Management Interface Chip",
	IPMIInterfaceBT:      "BT: Block Transfer",
	IPMIInterfaceSSIF:    "SSIF: SMBus System Interface",
}

func (t IPMIInterfaceType) String() string {
	if s, ok := ipmiInterfaceTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}
