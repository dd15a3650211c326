package config_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-cipherchain/internal/config"
	"github.com/askiada/go-cipherchain/pkg/chain"
	"github.com/askiada/go-cipherchain/pkg/cipher"
)

func TestLoad(t *testing.T) {
	for _, name := range []string{"chain.toml", "chain.yaml"} {
		t.Run(name, func(t *testing.T) {
			file, err := config.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, "HELLO WORLD", file.Text)

			chn, err := file.Chain()
			require.NoError(t, err)

			res, err := chain.Execute(file.Text, chn)
			require.NoError(t, err)
			assert.Equal(t, chain.Result{"RIJVS UYVJN", "ULMYV XBYMQ"}, res)
		})
	}
}

func TestLoadTextOverride(t *testing.T) {
	t.Setenv(config.TextEnv, "ATTACK AT DAWN")

	file, err := config.Load(filepath.Join("testdata", "chain.toml"))
	require.NoError(t, err)
	assert.Equal(t, "ATTACK AT DAWN", file.Text)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "chain.json"))
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join("testdata", "missing.toml"))
	require.Error(t, err)
}

func TestStepConfig(t *testing.T) {
	t.Parallel()

	latin := string(cipher.LatinUpper)
	empty := ""

	tcs := map[string]struct {
		cfg  config.StepConfig
		want chain.Step
	}{
		"vigenere default mode": {
			cfg:  config.StepConfig{Type: "vigenere", Key: "key"},
			want: chain.Vigenere{Keyword: "key", Direction: cipher.Encode},
		},
		"vigenere decode": {
			cfg:  config.StepConfig{Type: "Vigenere", Key: "KEY", Mode: "decode"},
			want: chain.Vigenere{Keyword: "KEY", Direction: cipher.Decode},
		},
		"caesar defaults": {
			cfg:  config.StepConfig{Type: "caesar"},
			want: chain.Caesar{Shift: config.DefaultShift, Alphabet: cipher.LatinUpper, Direction: cipher.Encode},
		},
		"caesar int64 shift": {
			cfg:  config.StepConfig{Type: "caesar", Shift: int64(-5), Letters: &latin},
			want: chain.Caesar{Shift: -5, Alphabet: cipher.LatinUpper, Direction: cipher.Encode},
		},
		"caesar integral float shift": {
			cfg:  config.StepConfig{Type: "caesar", Shift: 4.0, Letters: &latin, Mode: "decode"},
			want: chain.Caesar{Shift: 4, Alphabet: cipher.LatinUpper, Direction: cipher.Decode},
		},
		"caesar empty letters": {
			cfg:  config.StepConfig{Type: "caesar", Shift: 1, Letters: &empty},
			want: chain.Caesar{Shift: 1, Alphabet: "", Direction: cipher.Encode},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.cfg.Step()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStepConfigInvalid(t *testing.T) {
	t.Parallel()

	tcs := map[string]config.StepConfig{
		"unknown type":      {Type: "rot13"},
		"unknown mode":      {Type: "vigenere", Key: "KEY", Mode: "encrypt"},
		"invalid keyword":   {Type: "vigenere", Key: "K3Y"},
		"fractional shift":  {Type: "caesar", Shift: 2.5},
		"string shift":      {Type: "caesar", Shift: "3"},
		"out of range uint": {Type: "caesar", Shift: uint64(1 << 63)},
	}

	for name, cfg := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := cfg.Step()
			require.ErrorIs(t, err, chain.ErrInvalidConfiguration)
		})
	}
}

func TestDecodeInvalidShift(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		format config.Format
		raw    string
	}{
		"toml fraction": {format: config.TOML, raw: "[[steps]]\ntype = \"caesar\"\nshift = 1.5\n"},
		"toml nan":      {format: config.TOML, raw: "[[steps]]\ntype = \"caesar\"\nshift = nan\n"},
		"toml inf":      {format: config.TOML, raw: "[[steps]]\ntype = \"caesar\"\nshift = inf\n"},
		"yaml fraction": {format: config.YAML, raw: "steps:\n  - type: caesar\n    shift: 1.5\n"},
		"yaml nan":      {format: config.YAML, raw: "steps:\n  - type: caesar\n    shift: .nan\n"},
		"yaml string":   {format: config.YAML, raw: "steps:\n  - type: caesar\n    shift: three\n"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			file, err := config.Decode(strings.NewReader(tc.raw), tc.format)
			require.NoError(t, err)

			_, err = file.Chain()
			require.ErrorIs(t, err, chain.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), "step 1")
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()

	for _, format := range []config.Format{config.TOML, config.YAML} {
		file, err := config.Decode(strings.NewReader(""), format)
		require.NoError(t, err)

		chn, err := file.Chain()
		require.NoError(t, err)
		assert.Zero(t, chn.Len())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	chn := chain.New(
		chain.Vigenere{Keyword: "LEMON", Direction: cipher.Decode},
		chain.Caesar{Shift: 0, Alphabet: "abc", Direction: cipher.Encode},
		chain.Caesar{Shift: -13, Alphabet: cipher.LatinUpper, Direction: cipher.Decode},
	)

	for _, name := range []string{"chain.toml", "chain.yml"} {
		path := filepath.Join(t.TempDir(), "nested", name)
		require.NoError(t, config.Save(path, config.FromChain("some text", chn)))

		file, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "some text", file.Text)

		got, err := file.Chain()
		require.NoError(t, err)
		assert.Equal(t, chn.Steps(), got.Steps(), name)
	}
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.ErrorIs(t, config.Encode(&buf, config.File{}, "json"), config.ErrUnsupportedFormat)
}
