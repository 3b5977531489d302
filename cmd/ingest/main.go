// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/docpipe/ai"
	"github.com/poiesic/docpipe/ai/openai"
	"github.com/poiesic/docpipe/blob"
	"github.com/poiesic/docpipe/config"
	"github.com/poiesic/docpipe/core"
	"github.com/poiesic/docpipe/ingestion"
	"github.com/poiesic/docpipe/searchindex"
	"github.com/poiesic/docpipe/storage"
	"github.com/poiesic/docpipe/storage/badger"
)

func main() {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "ingest",
		Usage: "Ingest PDF documents from blob storage into an Azure AI Search index",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the ingestion manifest database; unset disables skip-unchanged",
			},
			&cli.IntFlag{
				Name:  "chunk-size",
				Usage: "Chunk window size in characters",
				Value: core.DefaultChunkSize,
			},
			&cli.IntFlag{
				Name:  "overlap",
				Usage: "Characters shared between consecutive chunks",
				Value: core.DefaultOverlap,
			},
			&cli.IntFlag{
				Name:  "pool-size",
				Usage: "Number of documents processed concurrently (0 = half the CPUs)",
			},
			&cli.IntFlag{
				Name:  "max-retries",
				Usage: "Maximum retry attempts for embedding and upload calls",
				Value: 3,
			},
			&cli.DurationFlag{
				Name:  "retry-delay",
				Usage: "Base delay for exponential backoff",
				Value: 1 * time.Second,
			},
		},
		Before: setupLogger,
		Action: ingestCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadIngest()
	if err != nil {
		return err
	}

	source, err := blob.NewAzureSource(cfg.Blob.ConnectionString, cfg.Blob.Container)
	if err != nil {
		return fmt.Errorf("failed to open blob container: %w", err)
	}

	aiConfig := ai.NewConfig(
		ai.WithEndpoint(cfg.Embedding.Endpoint),
		ai.WithAPIKey(cfg.Embedding.APIKey),
		ai.WithModel(cfg.Embedding.Model),
		ai.WithAPIVersion(cfg.Embedding.APIVersion),
		ai.WithDimension(cfg.Search.Dimension),
	)
	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	var indexOpts []searchindex.Option
	if cfg.Search.APIVersion != "" {
		indexOpts = append(indexOpts, searchindex.WithAPIVersion(cfg.Search.APIVersion))
	}
	indexer, err := searchindex.NewClient(cfg.Search.Endpoint, cfg.Search.APIKey, cfg.Search.IndexName, indexOpts...)
	if err != nil {
		return fmt.Errorf("failed to create search client: %w", err)
	}
	if err := indexer.ResolveAPIVersion(ctx); err != nil {
		return fmt.Errorf("failed to resolve search API version: %w", err)
	}

	opts := []ingestion.Option{
		ingestion.WithChunkConfig(core.ChunkConfig{
			ChunkSize: c.Int("chunk-size"),
			Overlap:   c.Int("overlap"),
		}),
		ingestion.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
	}
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, ingestion.WithPoolSize(size))
	}

	if dbPath := c.String("db"); dbPath != "" {
		manifest, closeManifest, manifestErr := openManifest(dbPath)
		if manifestErr != nil {
			return manifestErr
		}
		defer closeManifest()
		opts = append(opts, ingestion.WithManifest(manifest))
	}

	pipeline, err := ingestion.NewPipeline(source, blob.NewPDFExtractor(), embedder, indexer, cfg.Search.Dimension, opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	report, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Ingested %d documents (%d chunks), %d skipped, %d failed\n",
		report.Documents, report.Chunks, report.Skipped, report.Failed)
	return nil
}

func openManifest(dbPath string) (storage.ManifestRepository, func(), error) {
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open manifest database: %w", err)
	}
	repo, err := badger.NewManifestRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("failed to create manifest repository: %w", err)
	}
	return repo, func() { backend.Close() }, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
