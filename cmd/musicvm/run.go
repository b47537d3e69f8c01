// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/musicvm/config"
	"github.com/ava-labs/musicvm/consts"
	"github.com/ava-labs/musicvm/genesis"
	"github.com/ava-labs/musicvm/registry"
	"github.com/ava-labs/musicvm/rpc"
	"github.com/ava-labs/musicvm/server"
	"github.com/ava-labs/musicvm/storage"
	"github.com/ava-labs/musicvm/token"
	"github.com/ava-labs/musicvm/trace"
	"github.com/ava-labs/musicvm/vm"
)

const logFileName = consts.Name + ".log"

func runFunc(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	c, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer log.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, log, c)
}

// newLogger writes to the console and, when a log directory is configured, to
// a rotating file.
func newLogger(c *config.Config) (logging.Logger, error) {
	level, err := c.GetLogLevel()
	if err != nil {
		return nil, err
	}
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(level, os.Stdout, logging.Colors.ConsoleEncoder()),
	}
	if len(c.LogDir) > 0 {
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(c.LogDir, logFileName),
			MaxSize:    c.LogMaxSize,
			MaxBackups: c.LogMaxBackups,
			MaxAge:     c.LogMaxAge,
			Compress:   c.LogCompress,
		}
		cores = append(cores, logging.NewWrappedCore(level, rotator, logging.Plain.FileEncoder()))
	}
	return logging.NewLogger(consts.Name, cores...), nil
}

func run(ctx context.Context, log logging.Logger, c *config.Config) error {
	var genesisBytes []byte
	if len(c.GenesisFile) > 0 {
		b, err := os.ReadFile(c.GenesisFile)
		if err != nil {
			return fmt.Errorf("failed to read genesis: %w", err)
		}
		genesisBytes = b
	}
	g, err := genesis.Load(genesisBytes)
	if err != nil {
		return err
	}
	chainID, err := c.GetChainID(genesisBytes)
	if err != nil {
		return fmt.Errorf("failed to parse chain id: %w", err)
	}

	// The tracer and database outlive the host and are closed after it.
	tracer, err := trace.New(c.GetTraceConfig(chainID.String()))
	if err != nil {
		return err
	}
	defer func() {
		if err := tracer.Close(); err != nil {
			log.Warn("failed to close tracer", zap.Error(err))
		}
	}()
	db, dbRegistry, err := storage.New(c.Pebble, c.DataDir, "db")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", zap.Error(err))
		}
	}()

	vmRegistry := prometheus.NewRegistry()
	host, err := vm.New(
		db,
		genesis.New(g, c.NetworkID, chainID, token.NewStateProgram()),
		registry.New(),
		vm.WithLogger(log),
		vm.WithTracer(tracer),
		vm.WithRegisterer(vmRegistry),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := host.Close(); err != nil {
			log.Warn("failed to close vm", zap.Error(err))
		}
	}()

	listener, err := net.Listen("tcp", c.GetHTTPAddress())
	if err != nil {
		return err
	}
	srv, err := server.New(log, listener, c.GetServerConfig())
	if err != nil {
		_ = listener.Close()
		return err
	}
	if err := addRoutes(srv, host, prometheus.Gatherers{dbRegistry, vmRegistry}); err != nil {
		_ = listener.Close()
		return err
	}

	log.Info("serving",
		zap.String("endpoint", "http://"+srv.Addr().String()+server.ChainPath(consts.Name, "")),
		zap.Stringer("chainID", chainID),
		zap.Uint32("networkID", c.NetworkID),
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Dispatch)
	eg.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		return srv.Shutdown()
	})
	return eg.Wait()
}

func addRoutes(srv server.Server, host *vm.VM, gatherer prometheus.Gatherer) error {
	handler, err := rpc.NewJSONRPCHandler(rpc.Name, rpc.NewJSONRPCServer(host))
	if err != nil {
		return err
	}
	if err := srv.AddChainRoute(handler, consts.Name, rpc.JSONRPCEndpoint); err != nil {
		return err
	}
	return srv.AddMetricsRoute(gatherer)
}
