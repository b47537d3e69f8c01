// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/musicvm/utils"
)

func TestDefaults(t *testing.T) {
	require := require.New(t)

	c, err := Load("")
	require.NoError(err)
	require.Equal(defaultDataDir, c.DataDir)
	require.Equal("127.0.0.1:9650", c.GetHTTPAddress())
	require.True(c.Pebble.Sync)

	level, err := c.GetLogLevel()
	require.NoError(err)
	require.Equal(logging.Info, level)

	traceConfig := c.GetTraceConfig("node")
	require.False(traceConfig.Enabled)
	require.Equal("musicvm", traceConfig.AppName)
}

func TestLoadJSON(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(os.WriteFile(path, []byte(`{"httpPort":9999,"logLevel":"debug","readTimeout":5000000000,"pebble":{"sync":false}}`), 0o600))

	c, err := Load(path)
	require.NoError(err)
	require.Equal(uint16(9999), c.HTTPPort)
	require.Equal(5*time.Second, c.GetServerConfig().ReadTimeout)
	require.False(c.Pebble.Sync)
	// Unset fields keep their defaults.
	require.Equal(defaultWriteTimeout, c.WriteTimeout)
	require.Equal(4_096, c.Pebble.MaxOpenFiles)

	level, err := c.GetLogLevel()
	require.NoError(err)
	require.Equal(logging.Debug, level)
}

func TestLoadYAML(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(os.WriteFile(path, []byte("httpHost: 0.0.0.0\nlogDir: /tmp/musicvm\nshutdownTimeout: 3s\nallowedHosts:\n  - \"*\"\n"), 0o600))

	c, err := Load(path)
	require.NoError(err)
	require.Equal("0.0.0.0:9650", c.GetHTTPAddress())
	require.Equal("/tmp/musicvm", c.LogDir)
	require.Equal(3*time.Second, c.ShutdownTimeout)
	require.Equal([]string{"*"}, c.AllowedHosts)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := New([]byte(`{"logLevel":"loud"}`), false)
	require.Error(t, err)
}

func TestGetChainID(t *testing.T) {
	require := require.New(t)

	genesisBytes := []byte(`{"validityWindow":60000}`)
	c, err := New(nil, false)
	require.NoError(err)
	chainID, err := c.GetChainID(genesisBytes)
	require.NoError(err)
	require.Equal(utils.ToID(genesisBytes), chainID)

	expected := ids.GenerateTestID()
	c.ChainID = expected.String()
	chainID, err = c.GetChainID(genesisBytes)
	require.NoError(err)
	require.Equal(expected, chainID)
}
