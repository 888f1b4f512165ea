package config

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/0xPolygon/swaplayer/messages"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadFile(nil, "")
	require.NoError(t, err)
	require.Equal(t, messages.ChainID(2), cfg.Common.LocalChainID)
	require.Equal(t,
		"0x000000000000000000000000a0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
		cfg.Common.USDCAsset.Hex(),
	)
	require.Equal(t, "/tmp/swaplayer/swaplayer.sqlite", cfg.Storage.DBPath)
	require.True(t, cfg.Relayer.Enabled)
	require.Equal(t, time.Second, cfg.Relayer.RetryAfterErrorPeriod.Duration)
	require.Equal(t, 10*time.Second, cfg.SwapExecutor.Timeout.Duration)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t,
		"0x0000000000000000000000000000000000000000000000000000000000000002",
		cfg.Registry.FeeRecipient.Hex(),
	)
	require.Equal(t, 1, cfg.Bridge.GuardianQuorum)
	require.Equal(t,
		[]common.Address{common.HexToAddress("0x58CC3AE5C097b213cE3c81979e1B9f9570746AA5")},
		cfg.Bridge.Guardians,
	)
	require.Equal(t, 10*time.Second, cfg.Staging.ResendHandoffsPeriod.Duration)
}

func TestLoadFileOverridesAndSaves(t *testing.T) {
	dir := t.TempDir()
	custom := FileData{
		Name: "custom.toml",
		Content: `
PathRWData = "` + dir + `"
LocalChainID = 6

[Relayer]
  Enabled = false
`,
	}
	cfg, err := LoadFile([]FileData{custom}, dir)
	require.NoError(t, err)
	require.Equal(t, messages.ChainID(6), cfg.Common.LocalChainID)
	require.Equal(t, dir+"/swaplayer.sqlite", cfg.Storage.DBPath)
	require.False(t, cfg.Relayer.Enabled)

	_, err = os.Stat(path.Join(dir, SaveConfigFileName))
	require.NoError(t, err)

	rendered, err := SaveConfigToString(*cfg)
	require.NoError(t, err)
	require.Contains(t, rendered, "LocalChainID = 6")
}
