package smbios

// SystemConfigurationOptions decodes a System Configuration Options
// structure (type 12): jumper and switch descriptions.
type SystemConfigurationOptions struct {
	s *Structure
}

func (o *SystemConfigurationOptions) Structure() *Structure { return o.s }

func (o *SystemConfigurationOptions) Count() (uint8, bool) {
	return o.s.ByteAt(0x04)
}

func (o *SystemConfigurationOptions) Options() []string {
	return o.s.Strings
}
