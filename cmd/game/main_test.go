package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cook/internal/application/state"
	"github.com/younwookim/cook/internal/infrastructure/config"
)

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  title: Test\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Test", cfg.Display.Title)
	assert.Equal(t, 240, cfg.Display.ScreenWidth)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestFactories_CoverCycle(t *testing.T) {
	f := factories()

	for _, kind := range []state.SceneKind{state.SceneIntro, state.SceneCooking, state.SceneTransition, state.SceneOutro} {
		assert.Contains(t, f, kind, kind.String())
	}
	assert.NotContains(t, f, state.SceneNone)
}

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"config", "assets", "mute", "scale", "seed", "debug", "record", "replay"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, ".", rootCmd.Flags().Lookup("assets").DefValue)
}
