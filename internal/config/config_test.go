package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDiscountsPath(t *testing.T) {
	_, err := LoadForTests(map[string]string{"DISCOUNTS_PATH": ""})
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"DISCOUNTS_PATH": "configs/discounts.json",
		"STORE_NAME":     "",
		"OBS_LOG_LEVEL":  "",
	})
	require.NoError(t, err)
	require.Equal(t, "configs/discounts.json", cfg.DiscountsPath)
	require.Equal(t, "Z's Discount Electronics!", cfg.StoreName)
	require.Equal(t, "info", cfg.LogLevel)
	require.NotEmpty(t, cfg.ReceiptsDir)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"DISCOUNTS_PATH": "/etc/store/discounts.json",
		"STORE_NAME":     "Test Electronics",
		"OBS_LOG_FORMAT": "json",
	})
	require.NoError(t, err)
	require.Equal(t, "Test Electronics", cfg.StoreName)
	require.Equal(t, "json", cfg.LogFormat)
}
