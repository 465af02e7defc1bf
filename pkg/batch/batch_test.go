package batch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virus-evolution/goconserve/pkg/conservation"
	"github.com/virus-evolution/goconserve/pkg/fasta"
	"github.com/virus-evolution/goconserve/pkg/msa"
)

func writeAlignments(t *testing.T, alignments map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range alignments {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0600))
	}
	return dir
}

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRunOrdered(t *testing.T) {
	dir := writeAlignments(t, map[string]string{
		"a.fasta": ">q\nMKV\n>h\nMKV\n",
		"b.fasta": ">q\nWW\n>h\nWY\n",
		"c.fasta": ">q\nARNDC\n>h1\nARNDC\n>h2\nA-NDC\n",
	})
	paths := []string{
		filepath.Join(dir, "c.fasta"),
		filepath.Join(dir, "a.fasta"),
		filepath.Join(dir, "b.fasta"),
	}

	scorer, err := conservation.NewScorer(conservation.DefaultOptions(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	profiles, err := Run(context.Background(), paths, scorer, Options{Threads: 3}, quietLogger(&buf))
	require.NoError(t, err)

	require.Len(t, profiles, 3)
	for i, p := range profiles {
		assert.Equal(t, paths[i], p.Name)
		assert.False(t, p.Failed())
	}
	assert.Equal(t, "ARNDC", profiles[0].Residues)
	assert.Len(t, profiles[0].Scores, 5)
	assert.Len(t, profiles[1].Scores, 3)
	assert.Len(t, profiles[2].Scores, 2)

	// each profile matches scoring the file on its own
	for i, path := range paths {
		p, err := ScoreFile(path, fasta.FASTA, scorer)
		require.NoError(t, err)
		assert.Equal(t, p, profiles[i])
	}
	assert.Contains(t, buf.String(), "batch finished")
}

func TestRunStopsOnError(t *testing.T) {
	dir := writeAlignments(t, map[string]string{
		"good.fasta":   ">q\nMKV\n>h\nMKV\n",
		"ragged.fasta": ">q\nMKV\n>h\nMK\n",
	})
	paths := []string{filepath.Join(dir, "good.fasta"), filepath.Join(dir, "ragged.fasta")}

	scorer, err := conservation.NewScorer(conservation.DefaultOptions(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = Run(context.Background(), paths, scorer, Options{Threads: 1}, quietLogger(&buf))
	require.Error(t, err)
	assert.True(t, errors.Is(err, msa.ErrDiffLenSeqs), "got %v", err)
	assert.Contains(t, err.Error(), "ragged.fasta")
}

func TestRunKeepGoing(t *testing.T) {
	dir := writeAlignments(t, map[string]string{
		"good.fasta":  ">q\nMKV\n>h\nMKV\n",
		"empty.fasta": "",
	})
	paths := []string{
		filepath.Join(dir, "empty.fasta"),
		filepath.Join(dir, "missing.fasta"),
		filepath.Join(dir, "good.fasta"),
	}

	scorer, err := conservation.NewScorer(conservation.DefaultOptions(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	profiles, err := Run(context.Background(), paths, scorer, Options{Threads: 2, KeepGoing: true}, quietLogger(&buf))
	require.NoError(t, err)

	require.Len(t, profiles, 3)
	assert.True(t, profiles[0].Failed())
	assert.Contains(t, profiles[0].Error, "empty fasta file")
	assert.True(t, profiles[1].Failed())
	assert.False(t, profiles[2].Failed())
	assert.Len(t, profiles[2].Scores, 3)

	assert.Contains(t, buf.String(), "skipping alignment")
	assert.Contains(t, buf.String(), "failed=2")
}

func TestRunCancelled(t *testing.T) {
	dir := writeAlignments(t, map[string]string{"a.fasta": ">q\nMKV\n>h\nMKV\n"})

	scorer, err := conservation.NewScorer(conservation.DefaultOptions(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err = Run(ctx, []string{filepath.Join(dir, "a.fasta")}, scorer, Options{}, quietLogger(&buf))
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestRunEmpty(t *testing.T) {
	scorer, err := conservation.NewScorer(conservation.DefaultOptions(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	profiles, err := Run(context.Background(), nil, scorer, Options{Threads: 4}, quietLogger(&buf))
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
