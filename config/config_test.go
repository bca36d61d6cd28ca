package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "$.asset_classes", cfg.KnowledgeBase.Selector)
	assert.Equal(t, "LKR", cfg.Currency)
	assert.NotEmpty(t, cfg.History.SQLitePath)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.NoError(t, cfg.Validate())

	kb, err := cfg.LoadKnowledgeBase()
	require.NoError(t, err)
	assert.Equal(t, 16, kb.Len())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, "config.yaml", `
knowledge_base:
  selector: $.classes
currency: USD
history:
  sqlite_path: /tmp/h.db
batch:
  workers: 2
`)
	t.Setenv("RUPEELOGIC_CURRENCY", "LKR")
	t.Setenv("RUPEELOGIC_WORKERS", "16")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "$.classes", cfg.KnowledgeBase.Selector)
	assert.Equal(t, "LKR", cfg.Currency)
	assert.Equal(t, "/tmp/h.db", cfg.History.SQLitePath)
	assert.Equal(t, 16, cfg.Batch.Workers)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "config.yaml", "currency: ["))
	assert.Error(t, err)

	t.Setenv("RUPEELOGIC_WORKERS", "many")
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "RUPEELOGIC_WORKERS")
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.Currency = "XYZ"
	assert.Error(t, cfg.Validate())

	cfg.Currency = "LKR"
	cfg.Batch.Workers = -1
	assert.Error(t, cfg.Validate())
}

func TestLoadKnowledgeBase_File(t *testing.T) {
	path := writeFile(t, "kb.yaml", `
classes:
  gold:
    name: Gold
    risk: Medium
    return: 6-10%
`)
	t.Setenv("RUPEELOGIC_KB", path)
	t.Setenv("RUPEELOGIC_KB_SELECTOR", "$.classes")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	kb, err := cfg.LoadKnowledgeBase()
	require.NoError(t, err)
	assert.Equal(t, []string{"gold"}, kb.IDs())
}
