package pass

import (
	"fmt"
	"strconv"
)

// Kind tags an option's value shape (§4.5: "bool, int with bounds, enum
// with allowed values, or string").
type Kind int

const (
	Bool Kind = iota
	Int
	Enum
	String
)

// Spec declares one option a pass supports: its name, one-line
// description, default, value kind, and (for Int/Enum) the bounds or
// allowed-values list that Set validates against.
type Spec struct {
	Name        string
	Description string
	Kind        Kind
	Default     string
	Min, Max    int      // Int bounds, inclusive; both zero means unbounded
	Allowed     []string // Enum's allowed values
}

// entry pairs a Spec with its current value and whether Set has ever
// been called for it ("was set" flag, §4.5).
type entry struct {
	spec  Spec
	value string
	wasSet bool
}

// Options is one pass instance's option set: constructed from its
// Specs with every value at its declared default, then optionally
// customized via Set before the owning pass is constructed, at which
// point Freeze locks it (§4.5 "Options freeze when the pass is
// constructed").
type Options struct {
	entries map[string]*entry
	order   []string
	frozen  bool
}

// NewOptions builds an option set from specs, every value starting at
// its declared default.
func NewOptions(specs ...Spec) *Options {
	o := &Options{entries: make(map[string]*entry, len(specs))}
	for _, s := range specs {
		o.entries[s.Name] = &entry{spec: s, value: s.Default}
		o.order = append(o.order, s.Name)
	}
	return o
}

// Freeze locks the option set against further Set calls (§4.6
// "After construct() the option set is frozen").
func (o *Options) Freeze() { o.frozen = true }

// Frozen reports whether Freeze has been called.
func (o *Options) Frozen() bool { return o.frozen }

// Set validates and stores value for name, marking it explicitly set.
// It fails if the option set is frozen, name is undeclared, or value
// doesn't fit the option's Kind.
func (o *Options) Set(name, value string) error {
	if o.frozen {
		return fmt.Errorf("%w: %s", ErrOptionFrozen, name)
	}
	e, ok := o.entries[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	if err := validate(e.spec, value); err != nil {
		return err
	}
	e.value = value
	e.wasSet = true
	return nil
}

func validate(s Spec, value string) error {
	switch s.Kind {
	case Bool:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%w: %s must be a bool, got %q", ErrBadValue, s.Name, value)
		}
	case Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an int, got %q", ErrBadValue, s.Name, value)
		}
		if s.Min != 0 || s.Max != 0 {
			if n < s.Min || n > s.Max {
				return fmt.Errorf("%w: %s=%d out of range [%d,%d]", ErrBadValue, s.Name, n, s.Min, s.Max)
			}
		}
	case Enum:
		ok := false
		for _, a := range s.Allowed {
			if a == value {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: %s=%q not in %v", ErrBadValue, s.Name, value, s.Allowed)
		}
	case String:
		// any value is acceptable
	}
	return nil
}

// String returns name's current raw value.
func (o *Options) String(name string) (string, error) {
	e, ok := o.entries[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	return e.value, nil
}

// Bool returns name's value parsed as a bool.
func (o *Options) Bool(name string) (bool, error) {
	v, err := o.String(name)
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(v)
}

// Int returns name's value parsed as an int.
func (o *Options) Int(name string) (int, error) {
	v, err := o.String(name)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}

// WasSet reports whether name was ever explicitly Set (as opposed to
// still holding its declared default).
func (o *Options) WasSet(name string) bool {
	e, ok := o.entries[name]
	return ok && e.wasSet
}

// Has reports whether name is a declared option on this set.
func (o *Options) Has(name string) bool {
	_, ok := o.entries[name]
	return ok
}

// Names returns every declared option name, in declaration order.
func (o *Options) Names() []string {
	return append([]string(nil), o.order...)
}
