package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChainTOML = `text = "HELLO WORLD"

[[steps]]
type = "vigenere"
key = "KEY"

[[steps]]
type = "caesar"
shift = 3
`

func writeChain(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRun(t *testing.T) {
	t.Parallel()

	path := writeChain(t, "chain.toml", testChainTOML)

	got, err := execute(t, "run", "--chain", path)
	require.NoError(t, err)
	assert.Equal(t, "Original Text: HELLO WORLD\nStep 1: RIJVS UYVJN\nStep 2: ULMYV XBYMQ\n", got)
}

func TestRunTextFlag(t *testing.T) {
	t.Parallel()

	path := writeChain(t, "chain.toml", testChainTOML)

	got, err := execute(t, "run", "--chain", path, "--text", "A B")
	require.NoError(t, err)
	assert.Equal(t, "Original Text: A B\nStep 1: K F\nStep 2: N I\n", got)
}

func TestRunSeveralInputs(t *testing.T) {
	t.Parallel()

	path := writeChain(t, "chain.toml", testChainTOML)

	got, err := execute(t, "run", "--chain", path, "--concurrency", "2", "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "Original Text: A\nStep 1: K\nStep 2: N\n\nOriginal Text: B\nStep 1: L\nStep 2: O\n", got)
}

func TestRunWritesDotAndSaves(t *testing.T) {
	t.Parallel()

	path := writeChain(t, "chain.toml", testChainTOML)
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "chain.dot")
	savePath := filepath.Join(dir, "chain.yaml")

	_, err := execute(t, "run", "--chain", path, "--measure", "--dot", dotPath, "--save", savePath)
	require.NoError(t, err)

	dot, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(dot), `"step 1" -> "step 2"`)

	got, err := execute(t, "run", "--chain", savePath)
	require.NoError(t, err)
	assert.Contains(t, got, "Step 2: ULMYV XBYMQ")
}

func TestRunInvalidChain(t *testing.T) {
	t.Parallel()

	path := writeChain(t, "chain.yaml", "steps:\n  - type: caesar\n    shift: 2.5\n")

	_, err := execute(t, "run", "--chain", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid step configuration")

	_, err = execute(t, "run")
	require.Error(t, err)
}

func TestVigenereCmd(t *testing.T) {
	t.Parallel()

	got, err := execute(t, "vigenere", "--key", "KEY", "HELLO", "WORLD")
	require.NoError(t, err)
	assert.Equal(t, "RIJVS UYVJN\n", got)

	got, err = execute(t, "vigenere", "-k", "KEY", "-d", "--text", "RIJVS UYVJN")
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD\n", got)

	_, err = execute(t, "vigenere", "--key", "K Y", "HELLO")
	require.Error(t, err)
}

func TestCaesarCmd(t *testing.T) {
	t.Parallel()

	got, err := execute(t, "caesar", "--shift", "3", "HELLO")
	require.NoError(t, err)
	assert.Equal(t, "KHOOR\n", got)

	got, err = execute(t, "caesar", "--shift", "1", "--letters", "abc", "--decode", "cab")
	require.NoError(t, err)
	assert.Equal(t, "bca\n", got)

	got, err = execute(t, "caesar", "--shift", "-30", "--letters", "", "passthrough")
	require.NoError(t, err)
	assert.Equal(t, "passthrough\n", got)

	_, err = execute(t, "caesar", "--shift", "1.5", "HELLO")
	require.Error(t, err)
}

func TestDescribeCmd(t *testing.T) {
	t.Parallel()

	path := writeChain(t, "chain.toml", testChainTOML)

	got, err := execute(t, "describe", "--chain", path)
	require.NoError(t, err)
	assert.Equal(t, "Cipher Chain:\n"+
		`1. VIGENERE: {"key":"KEY","mode":"encode"}`+"\n"+
		`2. CAESAR: {"shift":3,"letters":"ABCDEFGHIJKLMNOPQRSTUVWXYZ","mode":"encode"}`+"\n", got)
}

func TestDrawCmd(t *testing.T) {
	t.Parallel()

	path := writeChain(t, "chain.yml", "steps:\n  - type: vigenere\n    key: KEY\n    mode: decode\n")

	got, err := execute(t, "draw", "--chain", path)
	require.NoError(t, err)
	assert.Contains(t, got, "strict digraph {")
	assert.Contains(t, got, `"input" -> "step 1"`)
	assert.Contains(t, got, `"step 1" -> "output"`)
}
