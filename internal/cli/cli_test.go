package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/olivier-w/orbfield/internal/config"
	"github.com/olivier-w/orbfield/internal/fx"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWith(t, nil, args...)
}

func executeWith(t *testing.T, runWindow WindowRunner, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ORBFIELD_MODE", "")
	t.Setenv("ORBFIELD_LOG_LEVEL", "")
	t.Setenv("ORBFIELD_LOG_FILE", "")

	var out bytes.Buffer
	cmd := NewRootCmd(runWindow)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func showConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	out, err := execute(t, append(args, "config", "show")...)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	return &cfg
}

func TestConfigShowDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	cfg := showConfig(t, "--config", path)
	require.Equal(t, config.DefaultConfig(), cfg)
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	base := config.DefaultConfig()
	base.Effect.Count = 5
	require.NoError(t, base.Save(path))

	cfg := showConfig(t, "--config", path,
		"--mode", "electron-proton",
		"--spring", "0.03",
		"--no-glow",
		"--no-depth",
		"--seed", "9",
		"--fps", "30",
	)
	require.Equal(t, fx.ModeCharged, cfg.Effect.Mode)
	require.Equal(t, 5, cfg.Effect.Count)
	require.Equal(t, 0.03, cfg.Effect.Spring)
	require.False(t, cfg.Effect.Glow)
	require.True(t, cfg.Effect.Reflection)
	require.False(t, cfg.Effect.Depth)
	require.Equal(t, uint64(9), cfg.Effect.Seed)
	require.Equal(t, 30, cfg.UI.FPS)
}

func TestInvalidFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := execute(t, "--config", path, "--mode", "sparkle", "config", "show")
	require.ErrorIs(t, err, fx.ErrUnknownMode)

	_, err = execute(t, "--config", path, "--fps", "0", "config", "show")
	require.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orbfield", "config.yaml")

	out, err := execute(t, "--config", filepath.Join(dir, "unused.yaml"), "config", "init", path)
	require.NoError(t, err)
	require.Contains(t, out, path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), loaded)

	_, err = execute(t, "--config", filepath.Join(dir, "unused.yaml"), "config", "init", path)
	require.ErrorContains(t, err, "already exists")

	require.NoError(t, os.WriteFile(path, []byte("effect:\n  count: 3\n"), 0o644))
	_, err = execute(t, "--config", filepath.Join(dir, "unused.yaml"), "config", "init", "--force", path)
	require.NoError(t, err)
	loaded, err = config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig().Effect.Count, loaded.Effect.Count)
}

func TestWindowCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := execute(t, "--config", path, "window")
	require.Error(t, err, "window is not registered without a runner")

	var got *config.Config
	run := func(cfg *config.Config, log *zap.Logger, _ bool) error {
		require.NotNil(t, log)
		got = cfg
		return nil
	}
	_, err = executeWith(t, run, "--config", path, "--mode", "magnet", "window")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, fx.ModeMagnet, got.Effect.Mode)
}

func TestWatchConfigReappliesFlags(t *testing.T) {
	t.Setenv("ORBFIELD_MODE", "")
	t.Setenv("ORBFIELD_LOG_LEVEL", "")
	t.Setenv("ORBFIELD_LOG_FILE", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.DefaultConfig().Save(path))

	opts := &options{configPath: path, noGlow: true, logger: zaptest.NewLogger(t)}
	reloads := make(chan *config.Config, 1)
	stop := watchConfig(context.Background(), &cobra.Command{}, opts, func(cfg *config.Config) {
		reloads <- cfg
	})
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("effect:\n  mode: trail\n  glow: true\n"), 0o644))

	select {
	case cfg := <-reloads:
		require.Equal(t, fx.ModeTrail, cfg.Effect.Mode)
		require.False(t, cfg.Effect.Glow, "--no-glow should survive a reload")
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after writing the config")
	}
}

func TestWatchConfigWithoutDirectory(t *testing.T) {
	opts := &options{
		configPath: filepath.Join(t.TempDir(), "missing", "config.yaml"),
		logger:     zap.NewNop(),
	}
	stop := watchConfig(context.Background(), &cobra.Command{}, opts, func(*config.Config) {
		t.Fatal("unexpected reload")
	})
	stop()
}
