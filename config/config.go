// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/musicvm/consts"
	"github.com/ava-labs/musicvm/pebble"
	"github.com/ava-labs/musicvm/server"
	"github.com/ava-labs/musicvm/trace"
	"github.com/ava-labs/musicvm/utils"
)

const (
	defaultDataDir           = ".musicvm"
	defaultHTTPHost          = "127.0.0.1"
	defaultHTTPPort          = 9650
	defaultNetworkID         = 1337
	defaultLogLevel          = "info"
	defaultLogMaxSize        = 8 // MB
	defaultLogMaxBackups     = 4
	defaultLogMaxAge         = 14 // days
	defaultReadTimeout       = 30 * time.Second
	defaultReadHeaderTimeout = 30 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type Config struct {
	// Storage
	DataDir string        `json:"dataDir" yaml:"dataDir"`
	Pebble  pebble.Config `json:"pebble" yaml:"pebble"`

	// Chain
	NetworkID uint32 `json:"networkId" yaml:"networkId"`
	// ChainID defaults to the hash of the genesis bytes.
	ChainID     string `json:"chainId" yaml:"chainId"`
	GenesisFile string `json:"genesisFile" yaml:"genesisFile"`

	// HTTP
	HTTPHost          string        `json:"httpHost" yaml:"httpHost"`
	HTTPPort          uint16        `json:"httpPort" yaml:"httpPort"`
	AllowedOrigins    []string      `json:"allowedOrigins" yaml:"allowedOrigins"`
	AllowedHosts      []string      `json:"allowedHosts" yaml:"allowedHosts"`
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	ShutdownTimeout   time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"`

	// Logging
	LogLevel      string `json:"logLevel" yaml:"logLevel"`
	LogDir        string `json:"logDir" yaml:"logDir"` // empty disables the log file
	LogMaxSize    int    `json:"logMaxSize" yaml:"logMaxSize"`
	LogMaxBackups int    `json:"logMaxBackups" yaml:"logMaxBackups"`
	LogMaxAge     int    `json:"logMaxAge" yaml:"logMaxAge"`
	LogCompress   bool   `json:"logCompress" yaml:"logCompress"`

	// Tracing
	TraceEnabled    bool    `json:"traceEnabled" yaml:"traceEnabled"`
	TraceSampleRate float64 `json:"traceSampleRate" yaml:"traceSampleRate"`
	TraceEndpoint   string  `json:"traceEndpoint" yaml:"traceEndpoint"`
}

// New parses [b] over the defaults. [b] is read as YAML when [isYAML] is set
// and as JSON otherwise.
func New(b []byte, isYAML bool) (*Config, error) {
	c := &Config{}
	c.setDefault()
	if len(b) > 0 {
		unmarshal := json.Unmarshal
		if isYAML {
			unmarshal = yaml.Unmarshal
		}
		if err := unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	if _, err := c.GetLogLevel(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the config at [path]. Files ending in .yaml or .yml are parsed as
// YAML. An empty [path] yields the defaults.
func Load(path string) (*Config, error) {
	if len(path) == 0 {
		return New(nil, false)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	return New(b, ext == ".yaml" || ext == ".yml")
}

func (c *Config) setDefault() {
	c.DataDir = defaultDataDir
	c.Pebble = pebble.NewDefaultConfig()
	c.NetworkID = defaultNetworkID
	c.HTTPHost = defaultHTTPHost
	c.HTTPPort = defaultHTTPPort
	c.AllowedOrigins = []string{"*"}
	c.AllowedHosts = []string{"localhost"}
	c.ReadTimeout = defaultReadTimeout
	c.ReadHeaderTimeout = defaultReadHeaderTimeout
	c.WriteTimeout = defaultWriteTimeout
	c.IdleTimeout = defaultIdleTimeout
	c.ShutdownTimeout = defaultShutdownTimeout
	c.LogLevel = defaultLogLevel
	c.LogMaxSize = defaultLogMaxSize
	c.LogMaxBackups = defaultLogMaxBackups
	c.LogMaxAge = defaultLogMaxAge
	c.TraceEndpoint = trace.DefaultEndpoint
}

func (c *Config) GetLogLevel() (logging.Level, error) {
	return logging.ToLevel(c.LogLevel)
}

func (c *Config) GetHTTPAddress() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(int(c.HTTPPort)))
}

func (c *Config) GetServerConfig() server.Config {
	return server.Config{
		HTTPConfig: server.HTTPConfig{
			ReadTimeout:       c.ReadTimeout,
			ReadHeaderTimeout: c.ReadHeaderTimeout,
			WriteTimeout:      c.WriteTimeout,
			IdleTimeout:       c.IdleTimeout,
		},
		AllowedOrigins:  c.AllowedOrigins,
		AllowedHosts:    c.AllowedHosts,
		ShutdownTimeout: c.ShutdownTimeout,
	}
}

func (c *Config) GetTraceConfig(agent string) *trace.Config {
	return &trace.Config{
		Enabled:         c.TraceEnabled,
		TraceSampleRate: c.TraceSampleRate,
		Endpoint:        c.TraceEndpoint,
		AppName:         consts.Name,
		Agent:           agent,
		Version:         consts.Version.String(),
	}
}

// GetChainID returns the configured chain id or, if none is set, the hash of
// [genesisBytes].
func (c *Config) GetChainID(genesisBytes []byte) (ids.ID, error) {
	if len(c.ChainID) == 0 {
		return utils.ToID(genesisBytes), nil
	}
	return ids.FromString(c.ChainID)
}
