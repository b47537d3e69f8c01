// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const (
	// BaseURL prefixes every route the node serves.
	BaseURL = "/ext"

	chainPrefix  = BaseURL + "/bc/"
	metricsRoute = BaseURL + "/metrics"
)

var _ Server = (*server)(nil)

// Server serves the record store API of one node.
type Server interface {
	// AddChainRoute serves [handler] at /ext/bc/[chain][endpoint].
	AddChainRoute(handler http.Handler, chain, endpoint string) error
	// AddMetricsRoute exposes [gatherer] at /ext/metrics.
	AddMetricsRoute(gatherer prometheus.Gatherer) error
	// Addr is the address the server listens on.
	Addr() net.Addr
	// Dispatch serves until [Shutdown] is called.
	Dispatch() error
	Shutdown() error
}

type HTTPConfig struct {
	ReadTimeout       time.Duration `json:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout"`
}

type Config struct {
	HTTPConfig

	AllowedOrigins  []string
	AllowedHosts    []string
	ShutdownTimeout time.Duration
}

// ChainPath returns the path [AddChainRoute] serves [chain]'s [endpoint] at.
func ChainPath(chain, endpoint string) string {
	return chainPrefix + chain + endpoint
}

type server struct {
	log             logging.Logger
	shutdownTimeout time.Duration
	router          *router
	srv             *http.Server
	listener        net.Listener
}

// New builds a server on [listener]. Requests pass the [wrappers], gzip,
// CORS and the allowed host filter before reaching a route.
func New(
	log logging.Logger,
	listener net.Listener,
	cfg Config,
	wrappers ...Wrapper,
) (Server, error) {
	router := newRouter()
	var handler http.Handler = gziphandler.GzipHandler(
		cors.New(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowCredentials: true,
		}).Handler(filterInvalidHosts(router, cfg.AllowedHosts)),
	)
	for _, wrapper := range wrappers {
		handler = wrapper.WrapHandler(handler)
	}

	log.Info("created API server",
		zap.Stringer("address", listener.Addr()),
		zap.Strings("allowedOrigins", cfg.AllowedOrigins),
		zap.Strings("allowedHosts", cfg.AllowedHosts),
	)
	return &server{
		log:             log,
		shutdownTimeout: cfg.ShutdownTimeout,
		router:          router,
		srv: &http.Server{
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		listener: listener,
	}, nil
}

func (s *server) AddChainRoute(handler http.Handler, chain, endpoint string) error {
	base := chainPrefix + chain
	s.log.Info("adding chain route",
		zap.String("chain", chain),
		zap.String("path", base+endpoint),
	)
	return s.router.AddRouter(base, endpoint, handler)
}

func (s *server) AddMetricsRoute(gatherer prometheus.Gatherer) error {
	s.log.Info("adding metrics route",
		zap.String("path", metricsRoute),
	)
	return s.router.AddRouter(metricsRoute, "", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

func (s *server) Addr() net.Addr {
	return s.listener.Addr()
}

// Dispatch returns nil once the server was shut down.
func (s *server) Dispatch() error {
	err := s.srv.Serve(s.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	// Connections still open after the timeout are dropped.
	_ = s.srv.Close()
	return err
}
