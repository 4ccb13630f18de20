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
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/sdnscreen"
	"github.com/poiesic/sdnscreen/config"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "sdnscreen",
		Usage: "Watchlist screening against the SDN list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Screen a name against the loaded watchlist",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "source",
						Aliases: []string{"s"},
						Usage:   "Path to the watchlist CSV file",
					},
					&cli.IntFlag{
						Name:    "max-results",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results to return",
					},
					&cli.BoolFlag{
						Name:  "assessor",
						Usage: "Enable assessor-backed ranking",
					},
					&cli.StringFlag{
						Name:  "assessor-host",
						Usage: "Assessor API base URL",
					},
					&cli.StringFlag{
						Name:  "assessor-model",
						Usage: "Assessor model name",
					},
					&cli.StringFlag{
						Name:  "cache",
						Usage: "Path to the assessment cache directory",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show statistics over the loaded watchlist",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "source",
						Aliases: []string{"s"},
						Usage:   "Path to the watchlist CSV file",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig layers CLI flags over the file/env configuration.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if c.IsSet("source") {
		cfg.SourcePath = c.String("source")
	}
	if c.IsSet("max-results") {
		cfg.MaxResults = c.Int("max-results")
	}
	if c.IsSet("assessor") {
		cfg.AssessorEnabled = c.Bool("assessor")
	}
	if c.IsSet("assessor-host") {
		cfg.AssessorHost = c.String("assessor-host")
	}
	if c.IsSet("assessor-model") {
		cfg.AssessorModel = c.String("assessor-model")
	}
	if c.IsSet("cache") {
		cfg.CachePath = c.String("cache")
	}

	return cfg, cfg.Validate()
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a query is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx := context.Background()

	screener, err := sdnscreen.NewScreener(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize screener: %w", err)
	}
	defer screener.Close()

	response, err := screener.Search(ctx, query, cfg.MaxResults)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return printJSON(response)
}

func statsCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// Stats never needs the assessor stack.
	cfg.AssessorEnabled = false
	cfg.CachePath = ""

	ctx := context.Background()

	screener, err := sdnscreen.NewScreener(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize screener: %w", err)
	}
	defer screener.Close()

	return printJSON(screener.Stats())
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
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
