// Package recipe loads declarative Dockerfile recipes from YAML or TOML and
// turns them into rendered Dockerfiles.
//
// A recipe names the base image, optional parser directives and leading ARGs,
// and an ordered list of instructions, each a single keyword/payload pair:
//
//	from: rust:1.30-slim
//	directives: ["escape=`"]
//	args: [TEST, OTHER=1]
//	instructions:
//	  - copy: /static ./static
//	  - run: apt-get update -yy
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tinyrange/dockerfile"
)

// Format is a recipe file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DefaultFilename is the recipe file name used when none is given.
const DefaultFilename = "dockerfile.yaml"

// Recipe describes a Dockerfile declaratively.
type Recipe struct {
	From         string   `yaml:"from" toml:"from"`
	Directives   []string `yaml:"directives,omitempty" toml:"directives,omitempty"`
	Args         []string `yaml:"args,omitempty" toml:"args,omitempty"`
	Instructions []Step   `yaml:"instructions,omitempty" toml:"instructions,omitempty"`
}

// Step is one instruction, written as a single keyword: payload entry.
type Step map[string]string

// ParseFormat resolves a format name such as "yaml", "yml" or "toml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Decode parses a recipe document.
func Decode(data []byte, format Format) (*Recipe, error) {
	var r Recipe
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document leaves the recipe zero-valued.
		if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml recipe: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("parse toml recipe: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &r, nil
}

// Load reads and decodes the recipe at path, choosing the format from its
// extension.
func Load(path string) (*Recipe, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe: %w", err)
	}
	r, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Encode serializes a recipe.
func Encode(r *Recipe, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("encode yaml recipe: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml recipe: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("encode toml recipe: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Template returns a starter recipe.
func Template() *Recipe {
	return &Recipe{
		From:       "alpine:3.19",
		Directives: []string{"syntax=docker/dockerfile:1"},
		Instructions: []Step{
			{"workdir": "/app"},
			{"run": "apk add --no-cache ca-certificates"},
			{"copy": ". ."},
			{"cmd": dockerfile.ExecForm("/app/run")},
		},
	}
}

// WriteTemplate writes the starter recipe to path in the format implied by
// its extension. Existing files are only replaced when overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(Template(), format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create recipe dir: %w", err)
		}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Dockerfile assembles the recipe through a dockerfile.Builder. Leading
// directives and args keep their listed order; FROM steps in the instruction
// list start further stages.
func (r *Recipe) Dockerfile() (*dockerfile.Dockerfile, error) {
	if strings.TrimSpace(r.From) == "" {
		return nil, ErrNoBase
	}

	insts := make([]dockerfile.Instruction, 0, len(r.Instructions))
	for i, step := range r.Instructions {
		inst, err := step.Instruction()
		if err != nil {
			return nil, &StepError{Index: i, Err: err}
		}
		insts = append(insts, inst)
	}

	b := dockerfile.NewBuilder(r.From)
	for _, d := range r.Directives {
		b.Directive(dockerfile.Directive(d))
	}
	for _, a := range r.Args {
		b.Arg(dockerfile.Arg(a))
	}
	return b.Append(insts...).Finish(), nil
}

// Instruction converts the step into its typed instruction.
func (s Step) Instruction() (dockerfile.Instruction, error) {
	if len(s) != 1 {
		return nil, fmt.Errorf("%w: got %d entries", ErrStepShape, len(s))
	}
	var keyword, payload string
	for keyword, payload = range s {
	}
	kind, err := dockerfile.ParseKind(keyword)
	if err != nil {
		return nil, err
	}
	return dockerfile.New(kind, payload), nil
}
