package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosozhuang/rapidhash"
)

func TestHashFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	small := []byte("hello world")
	big := bytes.Repeat([]byte{0xab, 0xcd, 0xef}, 40000)
	require.NoError(t, afero.WriteFile(fs, "a.txt", small, 0o644))
	require.NoError(t, afero.WriteFile(fs, "b.bin", big, 0o644))

	var out bytes.Buffer
	cmd := newRootCommand(fs, &out)
	cmd.SetArgs([]string{"a.txt", "b.bin"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, fmt.Sprintf("%016x  a.txt", rapidhash.Sum64(small)), lines[0])
	assert.Equal(t, fmt.Sprintf("%016x  b.bin", rapidhash.Sum64(big)), lines[1])
}

func TestHashStdin(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand(afero.NewMemMapFs(), &out)
	cmd.SetArgs(nil)
	cmd.SetIn(strings.NewReader("hello world"))
	require.NoError(t, cmd.Execute())

	want := fmt.Sprintf("%016x  -\n", uint64(17498481775468162579))
	assert.Equal(t, want, out.String())
}

func TestSeedFlag(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := []byte("seeded")
	require.NoError(t, afero.WriteFile(fs, "f", data, 0o644))

	var out bytes.Buffer
	cmd := newRootCommand(fs, &out)
	cmd.SetArgs([]string{"--seed", "42", "f"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, fmt.Sprintf("%016x  f\n", rapidhash.Sum64Seeded(data, 42)), out.String())
}

func TestMissingFileFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "present", []byte("x"), 0o644))

	var out bytes.Buffer
	cmd := newRootCommand(fs, &out)
	cmd.SetArgs([]string{"present", "missing"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")

	// The readable file is still reported.
	assert.Equal(t, fmt.Sprintf("%016x  present\n", rapidhash.Sum64([]byte("x"))), out.String())
}

// Each run tears down its worker pool; repeated executions must not leak or
// trip over a released pool.
func TestWorkerPoolReleasedBetweenRuns(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "f", []byte("x"), 0o644))
	want := fmt.Sprintf("%016x  f\n", rapidhash.Sum64([]byte("x")))
	for i := 0; i < 3; i++ {
		var out bytes.Buffer
		cmd := newRootCommand(fs, &out)
		cmd.SetArgs([]string{"--workers", "2", "f"})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, want, out.String())
	}
}

func TestOutputOrderMatchesArgs(t *testing.T) {
	fs := afero.NewMemMapFs()
	names := make([]string, 20)
	for i := range names {
		names[i] = fmt.Sprintf("f%02d", i)
		require.NoError(t, afero.WriteFile(fs, names[i], []byte(names[i]), 0o644))
	}

	var out bytes.Buffer
	cmd := newRootCommand(fs, &out)
	cmd.SetArgs(append([]string{"--workers", "4"}, names...))
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(names))
	for i, name := range names {
		assert.True(t, strings.HasSuffix(lines[i], "  "+name), "line %d: %s", i, lines[i])
	}
}
