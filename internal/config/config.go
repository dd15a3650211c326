// Package config reads and writes chain definition files.
//
// A chain file holds an optional input text and the ordered list of steps. TOML and YAML are supported, picked from
// the file extension:
//
//	text = "HELLO WORLD"
//
//	[[steps]]
//	type = "vigenere"
//	key  = "KEY"
//	mode = "encode"
//
//	[[steps]]
//	type    = "caesar"
//	shift   = 3
//	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
//	mode    = "decode"
//
// The CIPHERCHAIN_TEXT environment variable, when set, replaces the text read from the file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-cipherchain/pkg/chain"
	"github.com/askiada/go-cipherchain/pkg/cipher"
)

// TextEnv overrides the text of a loaded chain file.
const TextEnv = "CIPHERCHAIN_TEXT"

// DefaultShift is used by caesar steps that do not set a shift.
const DefaultShift = 3

var ErrUnsupportedFormat = errors.New("unsupported chain file format")

type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", path)
	}
}

// StepConfig is one step of a chain file. Field names follow the cipher settings: key for vigenere, shift and
// letters for caesar, mode for both.
type StepConfig struct {
	Type    string  `toml:"type" yaml:"type"`
	Key     string  `toml:"key,omitempty" yaml:"key,omitempty"`
	Shift   any     `toml:"shift,omitempty" yaml:"shift,omitempty"`
	Letters *string `toml:"letters,omitempty" yaml:"letters,omitempty"`
	Mode    string  `toml:"mode,omitempty" yaml:"mode,omitempty"`
}

// File is the content of a chain file.
type File struct {
	Text  string       `toml:"text,omitempty" yaml:"text,omitempty"`
	Steps []StepConfig `toml:"steps" yaml:"steps"`
}

// Load reads the chain file at path and applies the environment override.
func Load(path string) (File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return File{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "unable to read chain file %s", path)
	}

	file, err := Decode(bytes.NewReader(raw), format)
	if err != nil {
		return File{}, errors.Wrapf(err, "unable to decode chain file %s", path)
	}

	if v := os.Getenv(TextEnv); v != "" {
		file.Text = v
	}

	return file, nil
}

// Decode reads a chain file in the given format.
func Decode(rdr io.Reader, format Format) (File, error) {
	var file File

	switch format {
	case TOML:
		_, err := toml.NewDecoder(rdr).Decode(&file)
		if err != nil {
			return File{}, errors.Wrap(err, "unable to decode toml")
		}
	case YAML:
		err := yaml.NewDecoder(rdr).Decode(&file)
		if err != nil && !errors.Is(err, io.EOF) {
			return File{}, errors.Wrap(err, "unable to decode yaml")
		}
	default:
		return File{}, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}

	return file, nil
}

type encodedStep struct {
	Type    string  `toml:"type" yaml:"type"`
	Key     string  `toml:"key,omitempty" yaml:"key,omitempty"`
	Shift   *int    `toml:"shift,omitempty" yaml:"shift,omitempty"`
	Letters *string `toml:"letters,omitempty" yaml:"letters,omitempty"`
	Mode    string  `toml:"mode,omitempty" yaml:"mode,omitempty"`
}

type encodedFile struct {
	Text  string        `toml:"text,omitempty" yaml:"text,omitempty"`
	Steps []encodedStep `toml:"steps" yaml:"steps"`
}

func toEncoded(file File) (encodedFile, error) {
	out := encodedFile{Text: file.Text, Steps: make([]encodedStep, 0, len(file.Steps))}

	for idx, step := range file.Steps {
		encoded := encodedStep{Type: step.Type, Key: step.Key, Letters: step.Letters, Mode: step.Mode}

		if step.Shift != nil {
			shift, err := parseShift(step.Shift)
			if err != nil {
				return encodedFile{}, errors.Wrapf(err, "step %d", idx+1)
			}

			encoded.Shift = &shift
		}

		out.Steps = append(out.Steps, encoded)
	}

	return out, nil
}

// Encode writes file in the given format.
func Encode(wrt io.Writer, file File, format Format) error {
	encoded, err := toEncoded(file)
	if err != nil {
		return err
	}

	switch format {
	case TOML:
		err := toml.NewEncoder(wrt).Encode(encoded)
		if err != nil {
			return errors.Wrap(err, "unable to encode toml")
		}
	case YAML:
		enc := yaml.NewEncoder(wrt)
		enc.SetIndent(2)

		err := enc.Encode(encoded)
		if err != nil {
			return errors.Wrap(err, "unable to encode yaml")
		}

		err = enc.Close()
		if err != nil {
			return errors.Wrap(err, "unable to flush yaml")
		}
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}

	return nil
}

// Save writes file to path, creating parent directories as needed.
func Save(path string, file File) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	err = Encode(&buf, file, format)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return errors.Wrapf(err, "unable to create directory for %s", path)
	}

	err = os.WriteFile(path, buf.Bytes(), 0o644)
	if err != nil {
		return errors.Wrapf(err, "unable to write chain file %s", path)
	}

	return nil
}

// Chain builds the chain described by the file.
func (f File) Chain() (chain.Chain, error) {
	steps := make([]chain.Step, 0, len(f.Steps))

	for idx, stepCfg := range f.Steps {
		step, err := stepCfg.Step()
		if err != nil {
			return chain.Chain{}, errors.Wrapf(err, "step %d", idx+1)
		}

		steps = append(steps, step)
	}

	return chain.New(steps...), nil
}

// Step builds the chain step described by the configuration.
func (s StepConfig) Step() (chain.Step, error) {
	direction, err := cipher.ParseDirection(s.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", chain.ErrInvalidConfiguration, err)
	}

	switch strings.ToLower(strings.TrimSpace(s.Type)) {
	case string(chain.Vigenere{}.Kind()):
		step, err := chain.NewVigenere(s.Key, direction)
		if err != nil {
			return nil, err
		}

		return step, nil
	case string(chain.Caesar{}.Kind()):
		shift, err := parseShift(s.Shift)
		if err != nil {
			return nil, err
		}

		letters := cipher.LatinUpper
		if s.Letters != nil {
			letters = cipher.Alphabet(*s.Letters)
		}

		step, err := chain.NewCaesar(shift, letters, direction)
		if err != nil {
			return nil, err
		}

		return step, nil
	default:
		return nil, errors.Wrapf(chain.ErrInvalidConfiguration, "unknown cipher type %q", s.Type)
	}
}

func parseShift(value any) (int, error) {
	switch v := value.(type) {
	case nil:
		return DefaultShift, nil
	case int:
		return v, nil
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, errors.Wrapf(chain.ErrInvalidConfiguration, "shift %d is out of range", v)
		}

		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, errors.Wrapf(chain.ErrInvalidConfiguration, "shift %d is out of range", v)
		}

		return int(v), nil
	case float64:
		return chain.ShiftFromFloat(v)
	default:
		return 0, errors.Wrapf(chain.ErrInvalidConfiguration, "shift must be an integer, got %v", value)
	}
}

// FromChain describes chn as a chain file.
func FromChain(text string, chn chain.Chain) File {
	file := File{Text: text, Steps: make([]StepConfig, 0, chn.Len())}

	for _, step := range chn.Steps() {
		switch s := step.(type) {
		case chain.Vigenere:
			file.Steps = append(file.Steps, StepConfig{
				Type: string(s.Kind()),
				Key:  s.Keyword,
				Mode: s.Direction.String(),
			})
		case chain.Caesar:
			letters := string(s.Alphabet)
			file.Steps = append(file.Steps, StepConfig{
				Type:    string(s.Kind()),
				Shift:   s.Shift,
				Letters: &letters,
				Mode:    s.Direction.String(),
			})
		}
	}

	return file
}
