package cmdline

// DefaultSeparator joins an option name and its value when no separator has
// been configured.
const DefaultSeparator = " "

// DefaultEnvironmentQuoting wraps environment variable values in the string
// form when no quoting has been configured.
const DefaultEnvironmentQuoting = `"`

// settings holds per-item overrides. A nil pointer or empty placement means
// "not set" so that resolution falls through to the next level.
type settings struct {
	separator *string
	quoting   *string
	placement Placement
}

// Setting overrides how a single option, flag or environment variable is
// rendered. Settings supplied for an item always take precedence over the
// builder-level defaults.
type Setting func(*settings)

// WithSeparator sets the string placed between an option name and its value.
// An empty separator is honoured and renders "namevalue".
func WithSeparator(separator string) Setting {
	return func(s *settings) {
		s.separator = &separator
	}
}

// WithQuoting sets the quoting string wrapped around a value in the string
// form. An empty quoting string disables quoting.
func WithQuoting(quoting string) Setting {
	return func(s *settings) {
		s.quoting = &quoting
	}
}

// WithPlacement sets the anchor at which an option or flag is rendered.
// Unknown placements are ignored.
func WithPlacement(placement Placement) Setting {
	return func(s *settings) {
		if placement.Valid() {
			s.placement = placement
		}
	}
}

func newSettings(opts []Setting) settings {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// optionDefaults are the builder-level defaults consulted for any item that
// does not carry its own setting.
type optionDefaults struct {
	separator *string
	quoting   *string
	placement Placement
}

// inherit fills every unset field of d from parent.
func (d optionDefaults) inherit(parent optionDefaults) optionDefaults {
	if d.separator == nil {
		d.separator = parent.separator
	}
	if d.quoting == nil {
		d.quoting = parent.quoting
	}
	if d.placement == "" {
		d.placement = parent.placement
	}
	return d
}

// resolve applies precedence: item setting, then builder default, then the
// hard-coded default.
func resolve(item settings, defaults optionDefaults) (separator, quoting string, placement Placement) {
	separator = firstString(item.separator, defaults.separator, DefaultSeparator)
	quoting = firstString(item.quoting, defaults.quoting, "")

	switch {
	case item.placement != "":
		placement = item.placement
	case defaults.placement != "":
		placement = defaults.placement
	default:
		placement = DefaultPlacement
	}

	return separator, quoting, placement
}

func firstString(item, fallback *string, def string) string {
	if item != nil {
		return *item
	}
	if fallback != nil {
		return *fallback
	}
	return def
}
