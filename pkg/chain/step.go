package chain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-cipherchain/pkg/chain/model"
	"github.com/askiada/go-cipherchain/pkg/cipher"
)

// Step is one position of a chain. It is implemented by Vigenere and Caesar only.
type Step interface {
	Kind() model.StepKind
	// Validate reports a configuration that cannot be executed.
	Validate() error
	isStep()
}

// Vigenere is a Vigenère cipher step.
type Vigenere struct {
	Keyword   string
	Direction cipher.Direction
}

func (Vigenere) isStep() {}

func (Vigenere) Kind() model.StepKind { return model.VigenereStepKind }

func (v Vigenere) Validate() error {
	err := validateDirection(v.Direction)
	if err != nil {
		return err
	}

	_, err = cipher.NormalizeKeyword(v.Keyword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return nil
}

// Caesar is a Caesar cipher step over a custom alphabet.
type Caesar struct {
	Alphabet  cipher.Alphabet
	Shift     int
	Direction cipher.Direction
}

func (Caesar) isStep() {}

func (Caesar) Kind() model.StepKind { return model.CaesarStepKind }

func (c Caesar) Validate() error {
	return validateDirection(c.Direction)
}

// NewVigenere returns a validated Vigenere step.
func NewVigenere(keyword string, direction cipher.Direction) (Vigenere, error) {
	step := Vigenere{Keyword: keyword, Direction: direction}

	return step, step.Validate()
}

// NewCaesar returns a validated Caesar step.
func NewCaesar(shift int, alphabet cipher.Alphabet, direction cipher.Direction) (Caesar, error) {
	step := Caesar{Shift: shift, Alphabet: alphabet, Direction: direction}

	return step, step.Validate()
}

// ShiftFromFloat converts a decoded number into a shift.
// NaN, infinities, fractions and values outside the int range are rejected.
func ShiftFromFloat(f float64) (int, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, errors.Wrapf(ErrInvalidConfiguration, "shift must be finite, got %v", f)
	case f != math.Trunc(f):
		return 0, errors.Wrapf(ErrInvalidConfiguration, "shift must be an integer, got %v", f)
	case f < math.MinInt || f >= math.MaxInt:
		return 0, errors.Wrapf(ErrInvalidConfiguration, "shift %v is out of range", f)
	}

	return int(f), nil
}

func validateDirection(direction cipher.Direction) error {
	if direction != cipher.Encode && direction != cipher.Decode {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, cipher.ErrInvalidDirection)
	}

	return nil
}

type vigenereConfig struct {
	Key  string `json:"key"`
	Mode string `json:"mode"`
}

type caesarConfig struct {
	Shift   int    `json:"shift"`
	Letters string `json:"letters"`
	Mode    string `json:"mode"`
}

// Config renders the settings of step as JSON.
func Config(step Step) string {
	var cfg any

	switch s := step.(type) {
	case Vigenere:
		cfg = vigenereConfig{Key: s.Keyword, Mode: s.Direction.String()}
	case Caesar:
		cfg = caesarConfig{Shift: s.Shift, Letters: string(s.Alphabet), Mode: s.Direction.String()}
	default:
		return "{}"
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(cfg)
	if err != nil {
		return "{}"
	}

	return strings.TrimSpace(buf.String())
}

// Describe renders step the way a chain is listed: the upper-cased kind followed by its settings.
func Describe(step Step) string {
	return strings.ToUpper(string(step.Kind())) + ": " + Config(step)
}

func direction(step Step) cipher.Direction {
	switch s := step.(type) {
	case Vigenere:
		return s.Direction
	case Caesar:
		return s.Direction
	default:
		return cipher.Encode
	}
}

func stepInfo(idx int, step Step) *model.StepInfo {
	return &model.StepInfo{
		Kind:      step.Kind(),
		Name:      fmt.Sprintf("step %d", idx+1),
		Direction: direction(step).String(),
		Config:    Config(step),
		Index:     idx,
	}
}
