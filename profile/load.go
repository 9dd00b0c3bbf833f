package profile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/errors"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a profile file.
type Format string

const (
	// FormatYAML decodes with gopkg.in/yaml.v3. Unknown keys are rejected.
	FormatYAML Format = "yaml"

	// FormatCUE compiles with CUE and validates against the profile schema.
	FormatCUE Format = "cue"

	// FormatJSON is compiled as CUE, of which JSON is a subset.
	FormatJSON Format = "json"
)

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.WithContext(
		errors.New(errors.CodeInvalidInput, "unsupported profile extension"),
		"file_path", path,
	)
}

// Load reads the profile at path from fs, decodes it according to its
// extension and validates it.
//
// Returns CodeNotFound when the file does not exist, CodeInvalidInput for an
// unsupported extension, and the decoding and validation codes of Parse
// otherwise.
func Load(ctx context.Context, fs billy.Filesystem, path string) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "context cancelled", map[string]interface{}{
			"file_path": path,
		})
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := util.ReadFile(fs, path)
	if err != nil {
		code := errors.CodeInvalidConfig
		if os.IsNotExist(err) {
			code = errors.CodeNotFound
		}
		return nil, errors.WrapWithContext(err, code, "failed to read profile", map[string]interface{}{
			"file_path": path,
		})
	}

	return parse(data, format, path)
}

// Parse decodes and validates a profile from data.
func Parse(data []byte, format Format) (*Profile, error) {
	return parse(data, format, "profile."+string(format))
}

func parse(data []byte, format Format, filename string) (*Profile, error) {
	var (
		p   *Profile
		err error
	)

	switch format {
	case FormatYAML:
		p, err = decodeYAML(data, filename)
	case FormatCUE, FormatJSON:
		p, err = decodeCUE(data, filename)
	default:
		err = errors.WithContext(
			errors.New(errors.CodeInvalidInput, "unsupported profile format"),
			"format", string(format),
		)
	}
	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, errors.WithContext(err, "file_path", filename)
	}

	return p, nil
}

func decodeYAML(data []byte, filename string) (*Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to decode profile", map[string]interface{}{
			"file_path": filename,
		})
	}

	return &p, nil
}
