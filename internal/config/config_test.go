package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/chart-mapper/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("CHARTMAP_TEST_DIR", "/srv/chartmap")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data/chartmap.db", filepath.Join(home, "data/chartmap.db")},
		{"$CHARTMAP_TEST_DIR/db.sqlite", "/srv/chartmap/db.sqlite"},
		{"/abs/path.db", "/abs/path.db"},
		{"relative~/x", "relative~/x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".local/share/chartmap/chartmap.db"), cfg.Database.Path)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 70, cfg.Learning.SimilarityThreshold)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Rules.Path)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CHARTMAP_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("CHARTMAP_LEARNING_SIMILARITY_THRESHOLD", "85")
	t.Setenv("CHARTMAP_DATABASE_PATH", "/tmp/chartmap-test.db")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 85, cfg.Learning.SimilarityThreshold)
	assert.Equal(t, "/tmp/chartmap-test.db", cfg.Database.Path)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{name: "threshold too high", key: "learning.similarity_threshold", value: 101, wantErr: common.ErrInvalidConfig},
		{name: "threshold zero", key: "learning.similarity_threshold", value: 0, wantErr: common.ErrInvalidConfig},
		{name: "bad level", key: "logging.level", value: "loud", wantErr: common.ErrInvalidConfig},
		{name: "bad format", key: "logging.format", value: "xml", wantErr: common.ErrInvalidConfig},
		{name: "no address", key: "server.addr", value: "", wantErr: common.ErrMissingConfig},
		{name: "no database", key: "database.path", value: "", wantErr: common.ErrMissingConfig},
		{name: "zero timeout", key: "server.read_timeout", value: "0s", wantErr: common.ErrInvalidConfig},
		{name: "missing rules file", key: "rules.path", value: "/nonexistent/rules.yaml", wantErr: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	rules := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(rules, []byte("version: test\n"), 0600))

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
database:
  path: `+filepath.Join(dir, "db.sqlite")+`
rules:
  path: `+rules+`
logging:
  level: debug
  format: json
`), 0600))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(cfgPath)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, rules, cfg.Rules.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("CHARTMAP_ENVFILE_PROBE=loaded\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("CHARTMAP_ENVFILE_PROBE") })

	require.NoError(t, LoadEnvFile(envPath))
	assert.Equal(t, "loaded", os.Getenv("CHARTMAP_ENVFILE_PROBE"))
}
