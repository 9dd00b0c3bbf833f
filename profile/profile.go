package profile

import (
	"github.com/jmgilman/go/cmdline"
	"github.com/jmgilman/go/errors"
)

var _ cmdline.Appliable[cmdline.Builder] = Profile{}

// Profile describes a command line declaratively. Field names follow the
// camelCase keys used in profile files.
type Profile struct {
	// Command is the executable name. Required by Builder, ignored by Apply.
	Command string `json:"command" yaml:"command"`

	// WorkingDirectory is the directory the command runs in
	WorkingDirectory string `json:"workingDirectory,omitempty" yaml:"workingDirectory,omitempty"`

	// OptionSeparator is the default separator for options without their own
	OptionSeparator string `json:"optionSeparator,omitempty" yaml:"optionSeparator,omitempty"`

	// OptionQuoting is the default quoting for options without their own
	OptionQuoting string `json:"optionQuoting,omitempty" yaml:"optionQuoting,omitempty"`

	// OptionPlacement is the default placement for options and flags
	OptionPlacement string `json:"optionPlacement,omitempty" yaml:"optionPlacement,omitempty"`

	Options     []Option      `json:"options,omitempty" yaml:"options,omitempty"`
	Flags       []Flag        `json:"flags,omitempty" yaml:"flags,omitempty"`
	Subcommands []Subcommand  `json:"subcommands,omitempty" yaml:"subcommands,omitempty"`
	Arguments   []string      `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Environment []Environment `json:"environment,omitempty" yaml:"environment,omitempty"`
}

// Option is a named option. Exactly one of Value or Values must be set;
// Values repeats the option once per entry.
type Option struct {
	Name   string   `json:"name" yaml:"name"`
	Value  string   `json:"value,omitempty" yaml:"value,omitempty"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`

	// Separator overrides the default separator. A pointer so that an empty
	// separator can be distinguished from an unset one.
	Separator *string `json:"separator,omitempty" yaml:"separator,omitempty"`
	Quoting   *string `json:"quoting,omitempty" yaml:"quoting,omitempty"`
	Placement string  `json:"placement,omitempty" yaml:"placement,omitempty"`
}

// Flag is a bare switch.
type Flag struct {
	Flag      string `json:"flag" yaml:"flag"`
	Placement string `json:"placement,omitempty" yaml:"placement,omitempty"`
}

// Subcommand is a subcommand with its own options and defaults. Defaults it
// leaves unset are inherited from the profile.
type Subcommand struct {
	Name            string   `json:"name" yaml:"name"`
	OptionSeparator string   `json:"optionSeparator,omitempty" yaml:"optionSeparator,omitempty"`
	OptionQuoting   string   `json:"optionQuoting,omitempty" yaml:"optionQuoting,omitempty"`
	OptionPlacement string   `json:"optionPlacement,omitempty" yaml:"optionPlacement,omitempty"`
	Options         []Option `json:"options,omitempty" yaml:"options,omitempty"`
	Flags           []Flag   `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Environment is an environment variable.
type Environment struct {
	Name    string  `json:"name" yaml:"name"`
	Value   string  `json:"value" yaml:"value"`
	Quoting *string `json:"quoting,omitempty" yaml:"quoting,omitempty"`
}

// Validate checks the profile for values the builder would silently drop.
// It returns a PlatformError with errors.CodeInvalidConfig describing the
// first problem found.
func (p Profile) Validate() error {
	if p.Command == "" {
		return invalid("command is required", "field", "command")
	}
	if err := validatePlacement("optionPlacement", p.OptionPlacement); err != nil {
		return err
	}
	if err := validateOptions("options", p.Options); err != nil {
		return err
	}
	if err := validateFlags("flags", p.Flags); err != nil {
		return err
	}

	for _, sub := range p.Subcommands {
		if sub.Name == "" {
			return invalid("subcommand name is required", "field", "subcommands")
		}
		if err := validatePlacement("subcommands."+sub.Name+".optionPlacement", sub.OptionPlacement); err != nil {
			return err
		}
		if err := validateOptions("subcommands."+sub.Name+".options", sub.Options); err != nil {
			return err
		}
		if err := validateFlags("subcommands."+sub.Name+".flags", sub.Flags); err != nil {
			return err
		}
	}

	for _, env := range p.Environment {
		if env.Name == "" {
			return invalid("environment variable name is required", "field", "environment")
		}
	}

	return nil
}

// Apply adds the profile's components to b. The profile's command is not
// applied; use Builder to start from it.
func (p Profile) Apply(b cmdline.Builder) cmdline.Builder {
	b = b.WithOptionSeparator(p.OptionSeparator).
		WithOptionQuoting(p.OptionQuoting).
		WithOptionPlacement(placement(p.OptionPlacement)).
		WithWorkingDirectory(p.WorkingDirectory)

	for _, o := range p.Options {
		b = applyOption(b, o)
	}
	for _, f := range p.Flags {
		b = b.WithFlag(f.Flag, placementSettings(f.Placement)...)
	}
	for _, sub := range p.Subcommands {
		b = b.WithSubcommand(sub.Name, sub.configure)
	}

	b = b.WithArguments(cmdline.Args(p.Arguments)...)

	for _, env := range p.Environment {
		var settings []cmdline.Setting
		if env.Quoting != nil {
			settings = append(settings, cmdline.WithQuoting(*env.Quoting))
		}
		b = b.WithEnvironmentVariables(cmdline.NewEnvironmentVariable(env.Name, env.Value, settings...))
	}

	return b
}

// Builder validates the profile and returns a Builder for its command that
// carries cfg and the profile's components.
func (p Profile) Builder(cfg cmdline.Config) (cmdline.Builder, error) {
	if err := p.Validate(); err != nil {
		return cmdline.Builder{}, err
	}
	return cfg.BuilderForCommand(p.Command).WithAppliable(p), nil
}

func (s Subcommand) configure(b cmdline.SubcommandBuilder) cmdline.SubcommandBuilder {
	b = b.WithOptionSeparator(s.OptionSeparator).
		WithOptionQuoting(s.OptionQuoting).
		WithOptionPlacement(placement(s.OptionPlacement))

	for _, o := range s.Options {
		b = applyOption(b, o)
	}
	for _, f := range s.Flags {
		b = b.WithFlag(f.Flag, placementSettings(f.Placement)...)
	}
	return b
}

// applyOption adds o to any option-bearing builder.
func applyOption[B cmdline.OptionBearer[B]](b B, o Option) B {
	settings := placementSettings(o.Placement)
	if o.Separator != nil {
		settings = append(settings, cmdline.WithSeparator(*o.Separator))
	}
	if o.Quoting != nil {
		settings = append(settings, cmdline.WithQuoting(*o.Quoting))
	}

	if len(o.Values) > 0 {
		return b.WithRepeatedOption(o.Name, o.Values, settings...)
	}
	return b.WithOption(o.Name, o.Value, settings...)
}

// placement parses s, returning the empty placement when s is empty or
// unknown. Builders ignore the empty placement.
func placement(s string) cmdline.Placement {
	if s == "" {
		return ""
	}
	p, err := cmdline.ParsePlacement(s)
	if err != nil {
		return ""
	}
	return p
}

func placementSettings(s string) []cmdline.Setting {
	p := placement(s)
	if p == "" {
		return nil
	}
	return []cmdline.Setting{cmdline.WithPlacement(p)}
}

func validatePlacement(field, s string) error {
	if s == "" {
		return nil
	}
	if _, err := cmdline.ParsePlacement(s); err != nil {
		return errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "unknown placement"),
			"field", field,
		)
	}
	return nil
}

func validateOptions(field string, options []Option) error {
	for _, o := range options {
		if o.Name == "" {
			return invalid("option name is required", "field", field)
		}
		if o.Value == "" && len(o.Values) == 0 {
			return errors.WithContext(
				invalid("option requires a value or values", "field", field),
				"option", o.Name,
			)
		}
		if o.Value != "" && len(o.Values) > 0 {
			return errors.WithContext(
				invalid("option cannot set both value and values", "field", field),
				"option", o.Name,
			)
		}
		if err := validatePlacement(field+"."+o.Name+".placement", o.Placement); err != nil {
			return err
		}
	}
	return nil
}

func validateFlags(field string, flags []Flag) error {
	for _, f := range flags {
		if f.Flag == "" {
			return invalid("flag is required", "field", field)
		}
		if err := validatePlacement(field+"."+f.Flag+".placement", f.Placement); err != nil {
			return err
		}
	}
	return nil
}

func invalid(message, key string, value interface{}) errors.PlatformError {
	return errors.WithContext(errors.New(errors.CodeInvalidConfig, message), key, value)
}
