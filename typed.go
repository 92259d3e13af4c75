package smbios

// TypedStructure is one variant of the closed set of structure kinds the
// catalog knows about. Concrete implementations wrap the raw structure
// without copying it and expose lazy, length-gated field accessors.
type TypedStructure interface {
	// Structure returns the raw structure backing this variant.
	Structure() *Structure
}

// Undefined carries any structure the catalog does not recognize: the OEM
// range 128-255 and reserved types with no decoder. The raw bytes and
// strings remain retrievable unchanged through Structure().
type Undefined struct {
	s *Structure
}

func (u *Undefined) Structure() *Structure { return u.s }

// As downcasts a table entry to a concrete structure kind. It reports false
// when the entry is of a different kind; it never panics.
func As[T TypedStructure](ts TypedStructure) (T, bool) {
	v, ok := ts.(T)
	return v, ok
}

// classify maps a raw structure to its typed wrapper. Classification is
// total: unknown type bytes fall through to Undefined.
func classify(s *Structure) TypedStructure {
	switch StructureType(s.Header.Type) {
	case BIOSInformationType:
		return &BIOSInformation{s}
	case SystemInformationType:
		return &SystemInformation{s}
	case BaseboardInformationType:
		return &BaseboardInformation{s}
	case SystemChassisType:
		return &SystemChassis{s}
	case ProcessorInformationType:
		return &ProcessorInformation{s}
	case MemoryControllerType:
		return &MemoryController{s}
	case MemoryModuleType:
		return &MemoryModule{s}
	case CacheInformationType:
		return &CacheInformation{s}
	case PortConnectorType:
		return &PortConnector{s}
	case SystemSlotType:
		return &SystemSlot{s}
	case OnBoardDevicesType:
		return &OnBoardDevices{s}
	case OEMStringsType:
		return &OEMStrings{s}
	case SystemConfigurationOptionsType:
		return &SystemConfigurationOptions{s}
	case BIOSLanguageType:
		return &BIOSLanguage{s}
	case GroupAssociationsType:
		return &GroupAssociations{s}
	case SystemEventLogType:
		return &SystemEventLog{s}
	case PhysicalMemoryArrayType:
		return &PhysicalMemoryArray{s}
	case MemoryDeviceType:
		return &MemoryDevice{s}
	case MemoryError32Type:
		return &MemoryError32{s}
	case MemoryArrayMappedAddressType:
		return &MemoryArrayMappedAddress{s}
	case MemoryDeviceMappedAddressType:
		return &MemoryDeviceMappedAddress{s}
	case BuiltInPointingDeviceType:
		return &BuiltInPointingDevice{s}
	case PortableBatteryType:
		return &PortableBattery{s}
	case SystemResetType:
		return &SystemReset{s}
	case HardwareSecurityType:
		return &HardwareSecurity{s}
	case SystemPowerControlsType:
		return &SystemPowerControls{s}
	case VoltageProbeType:
		return &VoltageProbe{s}
	case CoolingDeviceType:
		return &CoolingDevice{s}
	case TemperatureProbeType:
		return &TemperatureProbe{s}
	case ElectricalCurrentProbeType:
		return &ElectricalCurrentProbe{s}
	case OutOfBandRemoteAccessType:
		return &OutOfBandRemoteAccess{s}
	case BootIntegrityServicesType:
		return &BootIntegrityServices{s}
	case SystemBootType:
		return &SystemBoot{s}
	case MemoryError64Type:
		return &MemoryError64{s}
	case ManagementDeviceType:
		return &ManagementDevice{s}
	case ManagementDeviceComponentType:
		return &ManagementDeviceComponent{s}
	case ManagementDeviceThresholdType:
		return &ManagementDeviceThreshold{s}
	case MemoryChannelType:
		return &MemoryChannel{s}
	case IPMIDeviceType:
		return &IPMIDevice{s}
	case SystemPowerSupplyType:
		return &SystemPowerSupply{s}
	case AdditionalInformationType:
		return &AdditionalInformation{s}
	case OnBoardDevicesExtendedType:
		return &OnBoardDevicesExtended{s}
	case ManagementControllerHostType:
		return &ManagementControllerHost{s}
	case TPMDeviceType:
		return &TPMDevice{s}
	case ProcessorAdditionalType:
		return &ProcessorAdditional{s}
	case Inactive:
		return &InactiveStructure{s}
	case EndOfTable:
		return &EndOfTableStructure{s}
	default:
		return &Undefined{s}
	}
}
