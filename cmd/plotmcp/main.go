// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Command plotmcp serves the plotting tools over the Model Context Protocol.
//
// Usage:
//
//	plotmcp [-transport stdio|http] [-addr :8080] [-log-level info]
//
// Logs are written to standard error as JSON.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/go-a2a/plotmcp"
	"github.com/go-a2a/plotmcp/pkg/logging"
	"github.com/go-a2a/plotmcp/plotting"
	"github.com/go-a2a/plotmcp/server"
	"github.com/go-a2a/plotmcp/tool/tools"
)

const shutdownTimeout = 5 * time.Second

func main() {
	transport := flag.String("transport", "stdio", "transport to serve on: stdio or http")
	addr := flag.String("addr", ":8080", "listen address of the http transport")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	if err := run(*transport, *addr, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "plotmcp:", err)
		os.Exit(1)
	}
}

func run(transport, addr, logLevel string) error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid -log-level %q: %w", logLevel, err)
	}
	logger := logging.New(level)

	plotting.Init()

	s, err := server.New(plotmcp.Version, logger, tools.All()...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.NewContext(ctx, logger)

	eg, ctx := errgroup.WithContext(ctx)
	switch transport {
	case "stdio":
		logger.InfoContext(ctx, "serving on stdio", "version", plotmcp.Version)
		eg.Go(func() error {
			err := mcpserver.NewStdioServer(s).Listen(ctx, os.Stdin, os.Stdout)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})

	case "http":
		hs := mcpserver.NewStreamableHTTPServer(s)
		logger.InfoContext(ctx, "serving on http", "addr", addr, "version", plotmcp.Version)
		eg.Go(func() error {
			if err := hs.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			return hs.Shutdown(sctx)
		})

	default:
		return fmt.Errorf("unknown -transport %q: want stdio or http", transport)
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
