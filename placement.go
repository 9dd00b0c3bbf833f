package cmdline

import "github.com/jmgilman/go/errors"

// Placement identifies the anchor at which a command-level option or flag is
// rendered relative to the other components of a command line.
type Placement string

const (
	// AfterCommand renders the switch immediately after the command name.
	AfterCommand Placement = "after_command"

	// AfterSubcommands renders the switch after the last subcommand.
	AfterSubcommands Placement = "after_subcommands"

	// AfterArguments renders the switch after the last positional argument.
	AfterArguments Placement = "after_arguments"
)

// DefaultPlacement is used when neither the switch nor the builder specify a
// placement.
const DefaultPlacement = AfterCommand

// Valid reports whether p is one of the known placements.
func (p Placement) Valid() bool {
	switch p {
	case AfterCommand, AfterSubcommands, AfterArguments:
		return true
	}
	return false
}

// ParsePlacement converts a textual placement into a Placement.
// Both the canonical form ("after_command") and the kebab-case form
// ("after-command") are accepted.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "after_command", "after-command":
		return AfterCommand, nil
	case "after_subcommands", "after-subcommands":
		return AfterSubcommands, nil
	case "after_arguments", "after-arguments":
		return AfterArguments, nil
	}
	return "", errors.Newf(errors.CodeInvalidInput, "unknown placement %q", s)
}

// groupByPlacement buckets switches by their resolved placement. Order within
// each bucket follows insertion order.
func groupByPlacement(switches []Switch) map[Placement][]Switch {
	groups := make(map[Placement][]Switch, 3)
	for _, s := range switches {
		p := s.Placement()
		if p == "" {
			p = DefaultPlacement
		}
		groups[p] = append(groups[p], s)
	}
	return groups
}
