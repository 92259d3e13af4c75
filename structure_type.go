package smbios

import "fmt"

// StructureType classifies a structure by its header type byte. Values
// 0-127 are reserved by the specification; 128-255 are OEM extensions and
// always decode through Undefined.
type StructureType uint8

const (
	BIOSInformationType StructureType = iota
	SystemInformationType
	BaseboardInformationType
	SystemChassisType
	ProcessorInformationType
	MemoryControllerType
	MemoryModuleType
	CacheInformationType
	PortConnectorType
	SystemSlotType
	OnBoardDevicesType
	OEMStringsType
	SystemConfigurationOptionsType
	BIOSLanguageType
	GroupAssociationsType
	SystemEventLogType
	PhysicalMemoryArrayType
	MemoryDeviceType
	MemoryError32Type
	MemoryArrayMappedAddressType
	MemoryDeviceMappedAddressType
	BuiltInPointingDeviceType
	PortableBatteryType
	SystemResetType
	HardwareSecurityType
	SystemPowerControlsType
	VoltageProbeType
	CoolingDeviceType
	TemperatureProbeType
	ElectricalCurrentProbeType
	OutOfBandRemoteAccessType
	BootIntegrityServicesType
	SystemBootType
	MemoryError64Type
	ManagementDeviceType
	ManagementDeviceComponentType
	ManagementDeviceThresholdType
	MemoryChannelType
	IPMIDeviceType
	SystemPowerSupplyType
	AdditionalInformationType
	OnBoardDevicesExtendedType
	ManagementControllerHostType
	TPMDeviceType
	ProcessorAdditionalType /* 44 */

	Inactive   StructureType = 126
	EndOfTable StructureType = 127
)

var structureTypeStrings = map[StructureType]string{
	BIOSInformationType:            "BIOS Information",
	SystemInformationType:          "System Information",
	BaseboardInformationType:       "Baseboard Information",
	SystemChassisType:              "System Chassis",
	ProcessorInformationType:       "Processor Information",
	MemoryControllerType:           "Memory Controller Information",
	MemoryModuleType:               "Memory Module Information",
	CacheInformationType:           "Cache Information",
	PortConnectorType:              "Port Connector Information",
	SystemSlotType:                 "System Slot",
	OnBoardDevicesType:             "On Board Devices Information",
	OEMStringsType:                 "OEM Strings",
	SystemConfigurationOptionsType: "System Configuration Options",
	BIOSLanguageType:               "BIOS Language Information",
	GroupAssociationsType:          "Group Associations",
	SystemEventLogType:             "System Event Log",
	PhysicalMemoryArrayType:        "Physical Memory Array",
	MemoryDeviceType:               "Memory Device",
	MemoryError32Type:              "32-Bit Memory Error Information",
	MemoryArrayMappedAddressType:   "Memory Array Mapped Address",
	MemoryDeviceMappedAddressType:  "Memory Device Mapped Address",
	BuiltInPointingDeviceType:      "Built-in Pointing Device",
	PortableBatteryType:            "Portable Battery",
	SystemResetType:                "System Reset",
	HardwareSecurityType:           "Hardware Security",
	SystemPowerControlsType:        "System Power Controls",
	VoltageProbeType:               "Voltage Probe",
	CoolingDeviceType:              "Cooling Device",
	TemperatureProbeType:           "Temperature Probe",
	ElectricalCurrentProbeType:     "Electrical Current Probe",
	OutOfBandRemoteAccessType:      "Out-of-Band Remote Access",
	BootIntegrityServicesType:      "Boot Integrity Services",
	SystemBootType:                 "System Boot Information",
	MemoryError64Type:              "64-Bit Memory Error Information",
	ManagementDeviceType:           "Management Device",
	ManagementDeviceComponentType:  "Management Device Component",
	ManagementDeviceThresholdType:  "Management Device Threshold Data",
	MemoryChannelType:              "Memory Channel",
	IPMIDeviceType:                 "IPMI Device Information",
	SystemPowerSupplyType:          "System Power Supply",
	AdditionalInformationType:      "Additional Information",
	OnBoardDevicesExtendedType:     "Onboard Devices Extended Information",
	ManagementControllerHostType:   "Management Controller Host Interface",
	TPMDeviceType:                  "TPM Device",
	ProcessorAdditionalType:        "Processor Additional Information",
	Inactive:                       "Inactive",
	EndOfTable:                     "End-of-Table",
}

func (t StructureType) String() string {
	if s, ok := structureTypeStrings[t]; ok {
		return s
	}
	if t >= 128 {
		return fmt.Sprintf("OEM-specific (%d)", uint8(t))
	}
	return fmt.Sprintf("Unsupported (%d)", uint8(t))
}
