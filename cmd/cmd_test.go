package cmd

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/mtgdc/internal/card"
	"github.com/arcanaland/mtgdc/internal/catalog"
)

const (
	cardsJSON = `{"data": {
		"Forest": [{"name": "Forest", "type": "Basic Land — Forest", "types": ["Land"], "firstPrinting": "LEA",
			"legalities": {"duel": "Legal"}}],
		"Minsc & Boo, Timeless Heroes": [{"name": "Minsc & Boo, Timeless Heroes", "types": ["Creature"],
			"firstPrinting": "CLB", "leadershipSkills": {"brawl": true, "commander": true, "oathbreaker": false},
			"legalities": {"duel": "Banned"}}]
	}}`
	setsJSON = `{"data": [{"code": "LEA", "releaseDate": "1993-08-05"}, {"code": "CLB", "releaseDate": "2022-06-10"}]}`
)

func writeGzip(t *testing.T, path, content string) {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

// setupDataDir writes fresh cache files so no download is attempted
func setupDataDir(t *testing.T) (configPath, dataDir string) {
	t.Helper()
	dir := t.TempDir()
	dataDir = filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	writeGzip(t, catalog.CardsPath(dataDir), cardsJSON)
	writeGzip(t, catalog.SetsPath(dataDir), setsJSON)
	return filepath.Join(dir, "config.toml"), dataDir
}

// runRoot executes the command tree with args and returns what it wrote to
// its output. Flags are restored to their defaults afterwards.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	defer func() {
		resetFlags(t, RootCmd)
		RootCmd.SetArgs(nil)
		RootCmd.SetOut(nil)
	}()

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			require.NoError(t, sv.Replace(nil))
		} else {
			require.NoError(t, f.Value.Set(f.DefValue))
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(t, sub)
	}
}

func TestValidateCommand(t *testing.T) {
	configPath, dataDir := setupDataDir(t)
	deckDir := t.TempDir()

	t.Run("Valid", func(t *testing.T) {
		path := filepath.Join(deckDir, "valid.txt")
		require.NoError(t, os.WriteFile(path, []byte("40 Forest\n1 minsc & boo, timeless heroes\n"), 0644))

		_, err := runRoot(t, "--config", configPath, "--data-dir", dataDir, "validate", path)
		assert.NoError(t, err)
	})

	t.Run("UnknownCard", func(t *testing.T) {
		path := filepath.Join(deckDir, "invalid.txt")
		require.NoError(t, os.WriteFile(path, []byte("40 Forest\n1 Black Lotus\n"), 0644))

		_, err := runRoot(t, "--config", configPath, "--data-dir", dataDir, "validate", path)
		assert.EqualError(t, err, "validation failed")
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := runRoot(t, "--config", configPath, "--data-dir", dataDir, "validate", filepath.Join(deckDir, "nope.txt"))
		assert.ErrorContains(t, err, "decklist not found")
	})
}

func TestCardDumpCommand(t *testing.T) {
	configPath, dataDir := setupDataDir(t)
	out := filepath.Join(t.TempDir(), "minsc.json")

	_, err := runRoot(t, "--config", configPath, "--data-dir", dataDir, "card", "dump", "Minsc", "&amp;", "Boo,", "Timeless", "Heroes", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Minsc & Boo, Timeless Heroes"`)
	assert.True(t, strings.HasPrefix(string(data), "{\n    \""), "indented with four spaces")

	// Flags from this run do not leak into the next one
	f := cardDumpCmd.Flags().Lookup("out")
	assert.False(t, f.Changed)
	assert.Empty(t, f.Value.String())
	assert.Empty(t, RootCmd.PersistentFlags().Lookup("data-dir").Value.String(), "persistent flags are reset too")
}

func TestCardDumpCommand_UnwritableOutput(t *testing.T) {
	configPath, dataDir := setupDataDir(t)
	out := filepath.Join(t.TempDir(), "missing", "minsc.json")

	_, err := runRoot(t, "--config", configPath, "--data-dir", dataDir, "card", "dump", "Forest", "--out", out)
	assert.ErrorContains(t, err, "failed to create")
}

type failingCloser struct {
	bytes.Buffer
	closed bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return errors.New("disk full")
}

func TestWriteJSONAndClose(t *testing.T) {
	t.Run("ReportsCloseError", func(t *testing.T) {
		w := &failingCloser{}
		err := writeJSONAndClose(w, map[string]int{"Forest": 1})
		assert.EqualError(t, err, "disk full")
		assert.True(t, w.closed)
	})

	t.Run("ClosesAfterEncodeError", func(t *testing.T) {
		w := &failingCloser{}
		err := writeJSONAndClose(w, func() {})
		assert.Error(t, err)
		assert.NotEqual(t, "disk full", err.Error())
		assert.True(t, w.closed)
	})
}

func TestConfigInitCommand(t *testing.T) {
	t.Run("CreatesMissingFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		out, err := runRoot(t, "--config", configPath, "config", "init")
		require.NoError(t, err)
		assert.Contains(t, out, "Config file initialized at:")
		assert.FileExists(t, configPath)
	})

	t.Run("ReportsExistingFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(configPath, []byte("stale_days = 3\n"), 0644))

		out, err := runRoot(t, "--config", configPath, "config", "init")
		require.NoError(t, err)
		assert.Contains(t, out, "Config file already exists at:")

		data, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, "stale_days = 3\n", string(data), "existing file is left alone")
	})

	t.Run("ForceResetsCorruptFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(configPath, []byte("stale_days = = 3\n"), 0644))

		_, err := runRoot(t, "--config", configPath, "config", "show")
		require.Error(t, err, "a corrupt file still fails other commands")

		out, err := runRoot(t, "--config", configPath, "config", "init", "--force")
		require.NoError(t, err)
		assert.Contains(t, out, "Config file reset to defaults at:")

		out, err = runRoot(t, "--config", configPath, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "stale_days = 7")
	})
}

func TestReadDecklist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.txt")
	require.NoError(t, os.WriteFile(path, []byte("// Lands\n4x Forest\nForest\n"), 0644))

	entries, err := readDecklist(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Forest": 5}, entries)
	assert.Equal(t, 5, countCards(entries))
}

func TestWriteJSON(t *testing.T) {
	var c card.Card
	require.NoError(t, c.UnmarshalJSON([]byte(`{"name":"Jötun Grunt","text":"<b>&</b>"}`)))

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, c))

	assert.Equal(t, "{\n    \"name\": \"Jötun Grunt\",\n    \"text\": \"<b>&</b>\"\n}\n", buf.String())
}
