package cmdline

import "slices"

type switchKind int

const (
	optionKind switchKind = iota
	flagKind
)

// switchSpec is an unresolved option or flag. Its settings are resolved
// against builder defaults only when the builder is built.
type switchSpec struct {
	kind     switchKind
	name     string
	value    string
	settings settings
}

// optionState is the option and flag concern shared by Builder and
// SubcommandBuilder. Every method returns a new value; the specs slice is
// clipped before appending so generations never share a backing array.
type optionState struct {
	specs    []switchSpec
	defaults optionDefaults
}

func (s optionState) add(spec switchSpec) optionState {
	s.specs = append(slices.Clip(s.specs), spec)
	return s
}

func (s optionState) withOption(name, value string, opts []Setting) optionState {
	if value == "" {
		return s
	}
	return s.add(switchSpec{
		kind:     optionKind,
		name:     name,
		value:    value,
		settings: newSettings(opts),
	})
}

func (s optionState) withOptions(specs []OptionSpec) optionState {
	for _, spec := range specs {
		s = s.withOption(spec.Name, spec.Value, spec.Settings)
	}
	return s
}

func (s optionState) withRepeatedOption(name string, values []string, opts []Setting) optionState {
	for _, value := range values {
		s = s.withOption(name, value, opts)
	}
	return s
}

func (s optionState) withFlag(flag string, opts []Setting) optionState {
	if flag == "" {
		return s
	}
	return s.add(switchSpec{
		kind:     flagKind,
		name:     flag,
		settings: newSettings(opts),
	})
}

func (s optionState) withFlags(flags []string) optionState {
	for _, flag := range flags {
		s = s.withFlag(flag, nil)
	}
	return s
}

func (s optionState) withSeparator(separator string) optionState {
	if separator == "" {
		return s
	}
	s.defaults.separator = &separator
	return s
}

func (s optionState) withQuoting(quoting string) optionState {
	if quoting == "" {
		return s
	}
	s.defaults.quoting = &quoting
	return s
}

func (s optionState) withPlacement(placement Placement) optionState {
	if !placement.Valid() {
		return s
	}
	s.defaults.placement = placement
	return s
}

// build resolves every spec. Defaults not set on this state are inherited
// from parent.
func (s optionState) build(parent optionDefaults) []Switch {
	if len(s.specs) == 0 {
		return nil
	}

	defaults := s.defaults.inherit(parent)
	switches := make([]Switch, 0, len(s.specs))
	for _, spec := range s.specs {
		separator, quoting, placement := resolve(spec.settings, defaults)
		if spec.kind == flagKind {
			switches = append(switches, Flag{flag: spec.name, placement: placement})
			continue
		}
		switches = append(switches, Option{
			name:      spec.name,
			value:     spec.value,
			separator: separator,
			quoting:   quoting,
			placement: placement,
		})
	}
	return switches
}
