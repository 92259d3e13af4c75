package smbios

import "strings"

// BaseboardInformation decodes a Baseboard (or Module) Information
// structure (type 2).
type BaseboardInformation struct {
	s *Structure
}

func (b *BaseboardInformation) Structure() *Structure { return b.s }

func (b *BaseboardInformation) Manufacturer() (string, bool) {
	return b.s.StringAt(0x04)
}

func (b *BaseboardInformation) Product() (string, bool) {
	return b.s.StringAt(0x05)
}

func (b *BaseboardInformation) Version() (string, bool) {
	return b.s.StringAt(0x06)
}

func (b *BaseboardInformation) SerialNumber() (string, bool) {
	return b.s.StringAt(0x07)
}

func (b *BaseboardInformation) AssetTag() (string, bool) {
	return b.s.StringAt(0x08)
}

func (b *BaseboardInformation) FeatureFlags() (BaseboardFeatures, bool) {
	v, ok := b.s.ByteAt(0x09)
	return BaseboardFeatures(v), ok
}

func (b *BaseboardInformation) LocationInChassis() (string, bool) {
	return b.s.StringAt(0x0A)
}

// ChassisHandle references the System Chassis structure containing this
// board. Resolve it through Table.FindByHandle.
func (b *BaseboardInformation) ChassisHandle() (Handle, bool) {
	return b.s.HandleAt(0x0B)
}

func (b *BaseboardInformation) BoardType() (BoardType, bool) {
	v, ok := b.s.ByteAt(0x0D)
	return BoardType(v), ok
}

// ContainedObjectHandles lists the handles of structures contained on this
// board, such as processors or ports.
func (b *BaseboardInformation) ContainedObjectHandles() ([]Handle, bool) {
	n, ok := b.s.ByteAt(0x0E)
	if !ok {
		return nil, false
	}
	handles := make([]Handle, 0, n)
	for i := 0; i < int(n); i++ {
		h, ok := b.s.HandleAt(0x0F + i*2)
		if !ok {
			return nil, false
		}
		handles = append(handles, h)
	}
	return handles, true
}

// BaseboardFeatures is the feature flags byte at offset 0x09.
type BaseboardFeatures uint8

const (
	BaseboardIsHostingBoard BaseboardFeatures = 1 << iota
	BaseboardRequiresDaughterBoard
	BaseboardIsRemovable
	BaseboardIsReplaceable
	BaseboardIsHotSwappable
)

var baseboardFeatureStrings = map[BaseboardFeatures]string{
	BaseboardIsHostingBoard:        "Board is a hosting board",
	BaseboardRequiresDaughterBoard: "Board requires at least one daughter board",
	BaseboardIsRemovable:           "Board is removable",
	BaseboardIsReplaceable:         "Board is replaceable",
	BaseboardIsHotSwappable:        "Board is hot swappable",
}

func (f BaseboardFeatures) String() string {
	var ss []string
	for i := 0; i < 8; i++ {
		if f&(1<<i) != 0 {
			ss = append(ss, baseboardFeatureStrings[1<<i])
		}
	}
	return strings.Join(ss, ", ")
}

// BoardType is the board type enumeration at offset 0x0D.
type BoardType uint8

const (
	BoardUnknown BoardType = iota + 1
	BoardOther
	BoardServerBlade
	BoardConnectivitySwitch
	BoardSystemManagementModule
	BoardProcessorModule
	BoardIOModule
	BoardMemoryModule
	BoardDaughterBoard
	BoardMotherboard
	BoardProcessorMemoryModule
	BoardProcessorIOModule
	BoardInterconnectBoard
)

var boardTypeStrings = map[BoardType]string{
	BoardUnknown:                "Unknown",
	BoardOther:                  "Other",
	BoardServerBlade:            "Server Blade",
	BoardConnectivitySwitch:     "Connectivity Switch",
	BoardSystemManagementModule: "System Management Module",
	BoardProcessorModule:        "Processor Module",
	BoardIOModule:               "I/O Module",
	BoardMemoryModule:           "Memory Module",
	BoardDaughterBoard:          "Daughter Board",
	BoardMotherboard:            "Motherboard",
	BoardProcessorMemoryModule:  "Processor/Memory Module",
	BoardProcessorIOModule:      "Processor/IO Module",
	BoardInterconnectBoard:      "Interconnect Board",
}

func (t BoardType) String() string {
	if s, ok := boardTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}
