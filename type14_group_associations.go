package smbios

// GroupAssociations decodes a Group Associations structure (type 14),
// which groups otherwise unrelated structures under a name.
type GroupAssociations struct {
	s *Structure
}

func (g *GroupAssociations) Structure() *Structure { return g.s }

func (g *GroupAssociations) GroupName() (string, bool) {
	return g.s.StringAt(0x04)
}

// GroupMember is one (structure type, handle) item of the group.
type GroupMember struct {
	ItemType StructureType
	Handle   Handle
}

// Members returns the group items. The item count is implied by the
// structure length: three bytes per item after the group name byte.
func (g *GroupAssociations) Members() []GroupMember {
	n := (len(g.s.Formatted) - 0x05) / 3
	members := make([]GroupMember, 0, n)
	for i := 0; i < n; i++ {
		t, ok := g.s.ByteAt(0x05 + i*3)
		if !ok {
			break
		}
		h, ok := g.s.HandleAt(0x05 + i*3 + 1)
		if !ok {
			break
		}
		members = append(members, GroupMember{ItemType: StructureType(t), Handle: h})
	}
	return members
}
