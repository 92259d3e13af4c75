package smbios

// SystemChassis decodes a System Enclosure or Chassis structure (type 3).
type SystemChassis struct {
	s *Structure
}

func (c *SystemChassis) Structure() *Structure { return c.s }

func (c *SystemChassis) Manufacturer() (string, bool) {
	return c.s.StringAt(0x04)
}

// ChassisType returns the enclosure type. Bit 7 of the raw byte flags a
// chassis lock and is masked off here; see HasLock.
func (c *SystemChassis) ChassisType() (ChassisType, bool) {
	v, ok := c.s.ByteAt(0x05)
	return ChassisType(v & 0x7F), ok
}

func (c *SystemChassis) HasLock() (bool, bool) {
	v, ok := c.s.ByteAt(0x05)
	return v&0x80 != 0, ok
}

func (c *SystemChassis) Version() (string, bool) {
	return c.s.StringAt(0x06)
}

func (c *SystemChassis) SerialNumber() (string, bool) {
	return c.s.StringAt(0x07)
}

func (c *SystemChassis) AssetTag() (string, bool) {
	return c.s.StringAt(0x08)
}

func (c *SystemChassis) BootUpState() (ChassisState, bool) {
	v, ok := c.s.ByteAt(0x09)
	return ChassisState(v), ok
}

func (c *SystemChassis) PowerSupplyState() (ChassisState, bool) {
	v, ok := c.s.ByteAt(0x0A)
	return ChassisState(v), ok
}

func (c *SystemChassis) ThermalState() (ChassisState, bool) {
	v, ok := c.s.ByteAt(0x0B)
	return ChassisState(v), ok
}

func (c *SystemChassis) SecurityStatus() (ChassisSecurityStatus, bool) {
	v, ok := c.s.ByteAt(0x0C)
	return ChassisSecurityStatus(v), ok
}

func (c *SystemChassis) OEMDefined() (uint32, bool) {
	return c.s.DwordAt(0x0D)
}

// Height returns the enclosure height in rack units. Zero means the height
// is unspecified and is reported as absent.
func (c *SystemChassis) Height() (uint8, bool) {
	v, ok := c.s.ByteAt(0x11)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// NumberOfPowerCords reports how many power cords are associated with the
// enclosure. Zero means unspecified.
func (c *SystemChassis) NumberOfPowerCords() (uint8, bool) {
	v, ok := c.s.ByteAt(0x12)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// SKUNumber returns the chassis SKU string (2.7+). Its offset floats behind
// the variable-length contained element list.
func (c *SystemChassis) SKUNumber() (string, bool) {
	n, ok := c.s.ByteAt(0x13)
	if !ok {
		return "", false
	}
	m, ok := c.s.ByteAt(0x14)
	if !ok {
		return "", false
	}
	return c.s.StringAt(0x15 + int(n)*int(m))
}

// ContainedElements returns the raw contained element records; each record
// is ContainedElementRecordLength bytes.
func (c *SystemChassis) ContainedElements() ([]byte, bool) {
	n, ok := c.s.ByteAt(0x13)
	if !ok {
		return nil, false
	}
	m, ok := c.s.ByteAt(0x14)
	if !ok {
		return nil, false
	}
	return c.s.BytesAt(0x15, int(n)*int(m))
}

// ChassisType is the enclosure type enumeration (lock bit masked off).
type ChassisType uint8

const (
	ChassisOther ChassisType = iota + 1
	ChassisUnknown
	ChassisDesktop
	ChassisLowProfileDesktop
	ChassisPizzaBox
	ChassisMiniTower
	ChassisTower
	ChassisPortable
	ChassisLaptop
	ChassisNotebook
	ChassisHandHeld
	ChassisDockingStation
	ChassisAllInOne
	ChassisSubNotebook
	ChassisSpaceSaving
	ChassisLunchBox
	ChassisMainServerChassis
	ChassisExpansionChassis
	ChassisSubChassis
	ChassisBusExpansionChassis
	ChassisPeripheralChassis
	ChassisRAIDChassis
	ChassisRackMountChassis
	ChassisSealedCasePC
	ChassisMultiSystemChassis
	ChassisCompactPCI
	ChassisAdvancedTCA
	ChassisBlade
	ChassisBladeEnclosure
	ChassisTablet
	ChassisConvertible
	ChassisDetachable
	ChassisIoTGateway
	ChassisEmbeddedPC
	ChassisMiniPC
	ChassisStickPC
)

var chassisTypeStrings = map[ChassisType]string{
	ChassisOther:               "Other",
	ChassisUnknown:             "Unknown",
	ChassisDesktop:             "Desktop",
	ChassisLowProfileDesktop:   "Low Profile Desktop",
	ChassisPizzaBox:            "Pizza Box",
	ChassisMiniTower:           "Mini Tower",
	ChassisTower:               "Tower",
	ChassisPortable:            "Portable",
	ChassisLaptop:              "Laptop",
	ChassisNotebook:            "Notebook",
	ChassisHandHeld:            "Hand Held",
	ChassisDockingStation:      "Docking Station",
	ChassisAllInOne:            "All In One",
	ChassisSubNotebook:         "Sub Notebook",
	ChassisSpaceSaving:         "Space-saving",
	ChassisLunchBox:            "Lunch Box",
	ChassisMainServerChassis:   "Main Server Chassis",
	ChassisExpansionChassis:    "Expansion Chassis",
	ChassisSubChassis:          "Sub Chassis",
	ChassisBusExpansionChassis: "Bus Expansion Chassis",
	ChassisPeripheralChassis:   "Peripheral Chassis",
	ChassisRAIDChassis:         "RAID Chassis",
	ChassisRackMountChassis:    "Rack Mount Chassis",
	ChassisSealedCasePC:        "Sealed-case PC",
	ChassisMultiSystemChassis:  "Multi-system Chassis",
	ChassisCompactPCI:          "Compact PCI",
	ChassisAdvancedTCA:         "Advanced TCA",
	ChassisBlade:               "Blade",
	ChassisBladeEnclosure:      "Blade Enclosure",
	ChassisTablet:              "Tablet",
	ChassisConvertible:         "Convertible",
	ChassisDetachable:          "Detachable",
	ChassisIoTGateway:          "IoT Gateway",
	ChassisEmbeddedPC:          "Embedded PC",
	ChassisMiniPC:              "Mini PC",
	ChassisStickPC:             "Stick PC",
}

func (t ChassisType) String() string {
	if s, ok := chassisTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}

// ChassisState describes the boot-up, power supply, and thermal state
// fields.
type ChassisState uint8

const (
	ChassisStateOther ChassisState = iota + 1
	ChassisStateUnknown
	ChassisStateSafe
	ChassisStateWarning
	ChassisStateCritical
	ChassisStateNonRecoverable
)

var chassisStateStrings = map[ChassisState]string{
	ChassisStateOther:          "Other",
	ChassisStateUnknown:        "Unknown",
	ChassisStateSafe:           "Safe",
	ChassisStateWarning:        "Warning",
	ChassisStateCritical:       "Critical",
	ChassisStateNonRecoverable: "Non-recoverable",
}

func (s ChassisState) String() string {
	if str, ok := chassisStateStrings[s]; ok {
		return str
	}
	return unrecognized(uint8(s))
}

// ChassisSecurityStatus is the physical security state of the enclosure.
type ChassisSecurityStatus uint8

const (
	ChassisSecurityOther ChassisSecurityStatus = iota + 1
	ChassisSecurityUnknown
	ChassisSecurityNone
	ChassisSecurityExternalInterfaceLockedOut
	ChassisSecurityExternalInterfaceEnabled
)

var chassisSecurityStrings = map[ChassisSecurityStatus]string{
	ChassisSecurityOther:                      "Other",
	ChassisSecurityUnknown:                    "Unknown",
	ChassisSecurityNone:                       "None",
	ChassisSecurityExternalInterfaceLockedOut: "External interface locked out",
	ChassisSecurityExternalInterfaceEnabled:   "External interface enabled",
}

func (s ChassisSecurityStatus) String() string {
	if str, ok := chassisSecurityStrings[s]; ok {
		return str
	}
	return unrecognized(uint8(s))
}
