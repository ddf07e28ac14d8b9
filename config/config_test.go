package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/require"
)

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(missingFile(t))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv(config.EnvHttpAddr, ":8080")
	t.Setenv(config.EnvStrategy, consts.StrategyRemote)
	t.Setenv(config.EnvDecisionURL, "http://localhost:7000/decide")
	t.Setenv(config.EnvDecisionTimeout, "750ms")
	t.Setenv(config.EnvHandSize, "5")

	cfg, err := config.Load(missingFile(t))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HttpAddr)
	require.Equal(t, ":9999", cfg.TcpAddr)
	require.Equal(t, consts.StrategyRemote, cfg.Strategy)
	require.Equal(t, "http://localhost:7000/decide", cfg.DecisionURL)
	require.Equal(t, 750*time.Millisecond, cfg.DecisionTimeout)
	require.Equal(t, 5, cfg.HandSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	scenarios := map[string][2]string{
		"bad_timeout":      {config.EnvDecisionTimeout, "soon"},
		"negative_timeout": {config.EnvDecisionTimeout, "-1s"},
		"bad_hand_size":    {config.EnvHandSize, "seven"},
		"zero_hand_size":   {config.EnvHandSize, "0"},
	}
	for description, scenario := range scenarios {
		t.Run(description, func(t *testing.T) {
			t.Setenv(scenario[0], scenario[1])
			_, err := config.Load(missingFile(t))
			require.True(t, errors.Is(err, consts.ErrorsInputInvalid), "got %v", err)
		})
	}
}

func TestLoadDotenvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("UNO_STRATEGY=naive\nUNO_WS_ADDR=:7777\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv(config.EnvStrategy)
		_ = os.Unsetenv(config.EnvWsAddr)
	})

	cfg, err := config.Load(file)
	require.NoError(t, err)
	require.Equal(t, consts.StrategyNaive, cfg.Strategy)
	require.Equal(t, ":7777", cfg.WsAddr)
}
