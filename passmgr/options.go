package passmgr

import "fmt"

// SetOption resolves dottedPath as `<pass-path>.<option-name>` and
// sets that option on every sub-pass the pass-path prefix matches
// (§4.6 "set_option("mapper.*.verbosity", "1")" sets verbosity on
// every immediate sub-pass of mapper"). An empty pass-path sets the
// option on p itself.
func (p *Pass) SetOption(dottedPath, value string) error {
	segs := splitPath(dottedPath)
	if len(segs) == 0 {
		return fmt.Errorf("passmgr: empty option path")
	}
	optName := segs[len(segs)-1]
	passSegs := segs[:len(segs)-1]

	matches := resolveMatches(p, passSegs)
	if len(matches) == 0 {
		return fmt.Errorf("passmgr: no pass matches %q", dottedPath)
	}
	for _, m := range matches {
		if m.node.opts == nil {
			continue
		}
		if err := m.node.opts.Set(optName, value); err != nil {
			return fmt.Errorf("passmgr: %s: %w", m.node.FullName(), err)
		}
	}
	return nil
}

// SetOptionRecursively sets optionName on every descendant of p that
// declares it, silently skipping those that don't (§4.6
// "set_option_recursively("verbosity", "1") sets it on every
// descendant that has such an option").
func (p *Pass) SetOptionRecursively(optionName, value string) error {
	return p.walkSetRecursively(optionName, value)
}

func (p *Pass) walkSetRecursively(optionName, value string) error {
	if p.opts != nil && p.opts.Has(optionName) {
		if err := p.opts.Set(optionName, value); err != nil {
			return fmt.Errorf("passmgr: %s: %w", p.FullName(), err)
		}
	}
	for _, c := range p.children {
		if err := c.walkSetRecursively(optionName, value); err != nil {
			return err
		}
	}
	return nil
}
