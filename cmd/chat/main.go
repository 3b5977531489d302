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

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/docpipe/agent"
	"github.com/poiesic/docpipe/config"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "chat",
		Usage: "Interactive conversation with the document orchestrator agent",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.DurationFlag{
				Name:  "poll-interval",
				Usage: "How often to poll a pending agent run",
				Value: agent.DefaultPollInterval,
			},
		},
		Before: setupLogger,
		Action: chatCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func chatCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadChat()
	if err != nil {
		return err
	}

	relay, err := agent.NewRelay(cfg.ProjectEndpoint, cfg.APIKey, cfg.AgentID, cfg.APIVersion,
		agent.WithPollInterval(c.Duration("poll-interval")))
	if err != nil {
		return fmt.Errorf("failed to create relay: %w", err)
	}

	repl := agent.NewREPL(relay, os.Stdin, os.Stdout)
	return repl.Run(ctx)
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
