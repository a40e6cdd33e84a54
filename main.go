// biocapital-intel — BioCapital News lead intelligence server.
//
// Turns uploaded expertise documents into a ranked keyword profile,
// discovers freshly funded biotech/medtech leads, and keeps a
// regulatory/scientific news feed, all persisted locally in SQLite.
// Runs as an HTTP dashboard API by default, or as a stdio MCP server
// with -mcp so an agent can drive the same pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/biocapital/intel/internal/env"
	"github.com/biocapital/intel/internal/intel"
	"github.com/biocapital/intel/internal/intelserver"
	"github.com/biocapital/intel/internal/store"
	"github.com/biocapital/intel/internal/webserver"
)

var version = "dev"

func main() {
	mcpMode := flag.Bool("mcp", false, "serve MCP tools over stdio instead of the HTTP API")
	flag.Parse()

	apiKey := env.Str("GEMINI_API_KEY", "")
	model := env.Str("GEMINI_MODEL", "gemini-2.5-flash")
	dbPath := env.Str("DB_PATH", "data/intel.db")
	httpAddr := env.Str("HTTP_ADDR", ":8890")

	if apiKey == "" {
		slog.Error("GEMINI_API_KEY is required")
		os.Exit(1)
	}

	ctx := context.Background()

	st, err := store.Open(dbPath)
	if err != nil {
		slog.Error("store init failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer st.Close()

	gateway, err := intel.NewGateway(ctx, apiKey, model)
	if err != nil {
		slog.Error("gemini client init failed", slog.Any("error", err))
		os.Exit(1)
	}

	refresher := intel.NewRefresher(st, gateway)

	slog.Info("starting biocapital-intel",
		slog.String("version", version),
		slog.String("model", model),
		slog.String("db", dbPath),
		slog.Bool("mcp", *mcpMode),
	)

	if *mcpMode {
		runMCP(ctx, st, gateway, refresher)
		return
	}
	runHTTP(httpAddr, st, gateway, refresher)
}

func runHTTP(addr string, st *store.Store, gateway intel.Intelligence, refresher *intel.Refresher) {
	srv := webserver.New(st, gateway, refresher)
	slog.Info("http api listening", slog.String("addr", addr))
	if err := srv.Router().Run(addr); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func runMCP(ctx context.Context, st *store.Store, gateway intel.Intelligence, refresher *intel.Refresher) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "biocapital-intel",
		Version: version,
	}, nil)

	intelserver.RegisterTools(server, intelserver.Deps{
		Store:     st,
		Gateway:   gateway,
		Refresher: refresher,
	})
	slog.Info("tools registered", slog.Int("count", 7))

	start := time.Now()
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		slog.Error("mcp server failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("mcp server stopped", slog.Duration("uptime", time.Since(start)))
}
