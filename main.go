package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/athapong/notion-mcp/pkg/metrics"
	"github.com/athapong/notion-mcp/prompts"
	"github.com/athapong/notion-mcp/tools"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

func main() {
	envFile := flag.String("env", ".env", "Path to environment file")
	enableSSE := flag.Bool("sse", false, "Enable SSE server")
	sseAddr := flag.String("sse-addr", ":8080", "Address for SSE server to listen on")
	sseBasePath := flag.String("sse-base-path", "/mcp", "Base path for SSE endpoints")
	metricsAddr := flag.String("metrics-addr", "", "Address to serve Prometheus metrics on (disabled when empty)")
	logLevel := flag.String("log-level", "", "Logging level (debug, info, warn, error)")
	flag.Parse()

	// stdout carries the stdio transport, so logs go to stderr.
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := godotenv.Load(*envFile); err != nil {
		logrus.Warnf("Error loading env file %s: %v", *envFile, err)
	}

	level := firstNonEmpty(*logLevel, os.Getenv("LOG_LEVEL"), "info")
	if lvl, err := logrus.ParseLevel(level); err != nil {
		logrus.Warnf("Invalid log level %q, using info", level)
	} else {
		logrus.SetLevel(lvl)
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"notion-mcp",
		"1.0.0",
		server.WithLogging(),
		server.WithPromptCapabilities(true),
	)

	tools.RegisterToolManagerTool(mcpServer)

	if tools.IsEnabled("notion") {
		tools.RegisterNotionTools(mcpServer)
	}

	if tools.IsEnabled("import") {
		tools.RegisterImportTool(mcpServer)
	}

	if tools.IsEnabled("preview") {
		tools.RegisterPreviewTool(mcpServer)
	}

	prompts.RegisterNotionPrompts(mcpServer)

	var metricsServer *http.Server
	if addr := firstNonEmpty(*metricsAddr, os.Getenv("METRICS_ADDR")); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsServer = &http.Server{Addr: addr, Handler: mux}
		go func() {
			logrus.Infof("Serving metrics on %s/metrics", addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.Errorf("Metrics server failed: %v", err)
			}
		}()
	}

	// Check if SSE server should be enabled
	if *enableSSE || os.Getenv("ENABLE_SSE") == "true" {
		sseServer := server.NewSSEServer(
			mcpServer,
			server.WithBasePath(*sseBasePath),
			server.WithKeepAlive(true),
		)

		go func() {
			logrus.Infof("Starting SSE server on %s with base path %s", *sseAddr, *sseBasePath)
			if err := sseServer.Start(*sseAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.Fatalf("Failed to start SSE server: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		sig := <-sigCh
		logrus.Infof("Received signal %v, shutting down...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := sseServer.Shutdown(ctx); err != nil {
			logrus.Errorf("Error during SSE server shutdown: %v", err)
		}
		if metricsServer != nil {
			_ = metricsServer.Shutdown(ctx)
		}
		logrus.Info("SSE server shutdown complete")
		return
	}

	if err := server.ServeStdio(mcpServer); err != nil {
		logrus.Fatalf("Server error: %v", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
