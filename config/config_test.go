package config_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitframe/bitframe/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Workers = 0
	require.Error(t, cfg.Validate())

	cfg = config.DefaultConfig()
	cfg.Workers = config.MaxWorkers + 1
	require.Error(t, cfg.Validate())

	cfg = config.DefaultConfig()
	cfg.ByteOrder = "middle"
	require.Error(t, cfg.Validate())

	cfg.ByteOrder = "BIG"
	require.NoError(t, cfg.Validate())
}

func TestOrder(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	require.Equal(t, binary.LittleEndian, cfg.Order())

	cfg.ByteOrder = config.ByteOrderBig
	require.Equal(t, binary.BigEndian, cfg.Order())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitframe.toml")
	data := []byte(`byte-order = "big"
align-frames = true
workers = 2
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.ByteOrderBig, cfg.ByteOrder)
	require.True(t, cfg.AlignFrames)
	require.True(t, cfg.StrictGeometry)
	require.Equal(t, uint(2), cfg.Workers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitframe.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = 2\n"), 0o600))

	t.Setenv("BITFRAME_WORKERS", "8")
	t.Setenv("BITFRAME_STRICT_GEOMETRY", "false")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, uint(8), cfg.Workers)
	require.False(t, cfg.StrictGeometry)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitframe.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = 0\n"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
