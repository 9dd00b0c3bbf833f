package profile

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/jmgilman/go/errors"
)

// schemaSource constrains CUE and JSON profiles. Definitions are closed, so
// unknown fields are rejected.
const schemaSource = `
#Placement: =~"^after[_-](command|subcommands|arguments)$"

#Option: {
	name:       string & !=""
	value?:     string
	values?:    [...string]
	separator?: string
	quoting?:   string
	placement?: #Placement

	if values != _|_ {
		value?: _|_
	}
}

#Flag: {
	flag:       string & !=""
	placement?: #Placement
}

#Subcommand: {
	name:             string & !=""
	optionSeparator?: string
	optionQuoting?:   string
	optionPlacement?: #Placement
	options?:         [...#Option]
	flags?:           [...#Flag]
}

#Environment: {
	name:     string & !=""
	value:    string
	quoting?: string
}

#Profile: {
	command:           string & !=""
	workingDirectory?: string
	optionSeparator?:  string
	optionQuoting?:    string
	optionPlacement?:  #Placement
	options?:          [...#Option]
	flags?:            [...#Flag]
	subcommands?:      [...#Subcommand]
	arguments?:        [...string]
	environment?:      [...#Environment]
}
`

// decodeCUE compiles src, unifies it with the profile schema and decodes the
// result.
func decodeCUE(src []byte, filename string) (*Profile, error) {
	cueCtx := cuecontext.New()

	schema := cueCtx.CompileString(schemaSource, cue.Filename("profile.schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "profile schema is invalid")
	}

	data := cueCtx.CompileBytes(src, cue.Filename(filename))
	if err := data.Err(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeCUEBuildFailed, "failed to compile profile", map[string]interface{}{
			"file_path": filename,
			"details":   cueerrors.Details(err, nil),
		})
	}

	unified := schema.LookupPath(cue.ParsePath("#Profile")).Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeCUEValidationFailed, "profile does not match schema", map[string]interface{}{
			"file_path": filename,
			"issues":    issues(err),
		})
	}

	var p Profile
	if err := unified.Decode(&p); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeCUEDecodeFailed, "failed to decode profile", map[string]interface{}{
			"file_path": filename,
		})
	}

	return &p, nil
}

// issues flattens a CUE error into "path: message" strings.
func issues(err error) []string {
	var out []string
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path := e.Path(); len(path) > 0 {
			msg = strings.Join(path, ".") + ": " + msg
		}
		out = append(out, msg)
	}
	return out
}
