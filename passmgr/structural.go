package passmgr

import "fmt"

// AppendSubPass appends a new sub-pass of typeName to this group,
// named name (or typeName, if name is empty), with opts applied before
// construction (§4.6 "append_sub_pass(type?, name?, opts) — append to
// this group").
func (p *Pass) AppendSubPass(typeName, name string, opts map[string]string) (*Pass, error) {
	child, err := p.mgr.newChild(p, ChildSpec{TypeName: typeName, Name: name, Options: opts})
	if err != nil {
		return nil, err
	}
	p.children = append(p.children, child)
	return child, nil
}

// PrefixSubPass prepends a new sub-pass to this group (§4.6
// "prefix_sub_pass(...) — prepend to this group").
func (p *Pass) PrefixSubPass(typeName, name string, opts map[string]string) (*Pass, error) {
	child, err := p.mgr.newChild(p, ChildSpec{TypeName: typeName, Name: name, Options: opts})
	if err != nil {
		return nil, err
	}
	p.children = append([]*Pass{child}, p.children...)
	return child, nil
}

// InsertSubPassBefore splices a new sub-pass immediately before target
// (§4.6 "insert_sub_pass_before(target, ...) — splice at a position").
func (p *Pass) InsertSubPassBefore(target, typeName, name string, opts map[string]string) (*Pass, error) {
	return p.insertAt(target, 0, typeName, name, opts)
}

// InsertSubPassAfter splices a new sub-pass immediately after target.
func (p *Pass) InsertSubPassAfter(target, typeName, name string, opts map[string]string) (*Pass, error) {
	return p.insertAt(target, 1, typeName, name, opts)
}

func (p *Pass) insertAt(target string, offset int, typeName, name string, opts map[string]string) (*Pass, error) {
	m, err := resolveOne(p, target)
	if err != nil {
		return nil, err
	}
	child, err := p.mgr.newChild(m.parent, ChildSpec{TypeName: typeName, Name: name, Options: opts})
	if err != nil {
		return nil, err
	}
	at := m.index + offset
	siblings := m.parent.children
	out := make([]*Pass, 0, len(siblings)+1)
	out = append(out, siblings[:at]...)
	out = append(out, child)
	out = append(out, siblings[at:]...)
	m.parent.children = out
	return child, nil
}

// GroupSubPass wraps target, a leaf, in a new singleton group: the
// group takes target's old name and target itself is renamed to
// subName (§4.6 "group_sub_pass(target, sub_name)").
func (p *Pass) GroupSubPass(target, subName string) error {
	m, err := resolveOne(p, target)
	if err != nil {
		return err
	}
	group := &Pass{mgr: p.mgr, parent: m.parent, name: m.node.name}
	m.node.name = subName
	m.node.parent = group
	group.children = []*Pass{m.node}
	m.parent.children[m.index] = group
	return nil
}

// GroupSubPasses wraps the inclusive sibling range [from, to] in a new
// group named groupName; from and to must resolve to siblings sharing
// the same parent (§4.6 "group_sub_passes(from, to, group_name) — wrap
// an inclusive range; from and to must share a hierarchical prefix").
func (p *Pass) GroupSubPasses(from, to, groupName string) error {
	mFrom, err := resolveOne(p, from)
	if err != nil {
		return err
	}
	mTo, err := resolveOne(p, to)
	if err != nil {
		return err
	}
	if mFrom.parent != mTo.parent {
		return fmt.Errorf("passmgr: %q and %q do not share a hierarchical prefix", from, to)
	}
	if mFrom.index > mTo.index {
		return fmt.Errorf("passmgr: %q comes after %q", from, to)
	}

	parent := mFrom.parent
	wrapped := append([]*Pass(nil), parent.children[mFrom.index:mTo.index+1]...)
	group := &Pass{mgr: p.mgr, parent: parent, name: groupName, children: wrapped}
	for _, c := range wrapped {
		c.parent = group
	}

	out := make([]*Pass, 0, len(parent.children)-len(wrapped)+1)
	out = append(out, parent.children[:mFrom.index]...)
	out = append(out, group)
	out = append(out, parent.children[mTo.index+1:]...)
	parent.children = out
	return nil
}

// FlattenSubgroup inlines target's children into its parent, each
// renamed with prefix prepended, then removes target itself (§4.6
// "flatten_subgroup(target, prefix) — inline a group into its parent...
// Reject if the group is conditional"). target is constructed first
// (if it has not been already) since a self-expanding pass only gains
// its children at construction time.
func (p *Pass) FlattenSubgroup(target, prefix string) error {
	m, err := resolveOne(p, target)
	if err != nil {
		return err
	}
	if err := m.node.Construct(); err != nil {
		return err
	}
	if m.node.condition != nil {
		return fmt.Errorf("passmgr: %q is a conditional group, cannot flatten", target)
	}

	inlined := make([]*Pass, len(m.node.children))
	for i, c := range m.node.children {
		c.parent = m.parent
		c.name = prefix + c.name
		inlined[i] = c
	}

	out := make([]*Pass, 0, len(m.parent.children)-1+len(inlined))
	out = append(out, m.parent.children[:m.index]...)
	out = append(out, inlined...)
	out = append(out, m.parent.children[m.index+1:]...)
	m.parent.children = out
	return nil
}

// RemoveSubPass removes target from its parent (§4.6
// "remove_sub_pass(target)").
func (p *Pass) RemoveSubPass(target string) error {
	m, err := resolveOne(p, target)
	if err != nil {
		return err
	}
	m.parent.children = append(m.parent.children[:m.index], m.parent.children[m.index+1:]...)
	return nil
}

// ClearSubPasses removes every sub-pass of p (§4.6 "clear_sub_passes()").
func (p *Pass) ClearSubPasses() {
	p.children = nil
}
