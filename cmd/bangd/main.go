// Copyright 2026 The Bangserve Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the bangserve daemon and CLI [DBG] application.

bangserve resolves address-bar "!bang" queries to a target search engine's
result page, and serves an OpenSearch-compatible suggestions feed fusing a
local prediction engine (trie prefix match, trigram/Jaccard similarity,
bounded edit-distance fuzzy match) with an external suggestions provider.

# Usage

Start the server with default settings:

	bangd

Enable debug logging and load extra corpus files from a data directory:

	bangd -data /path/to/corpus -d

Run in CLI mode for interactive testing of bang resolution and prediction:

	bangd -c -limit 8

# Configuration

Runtime configuration is managed through a TOML file covering server,
bang, prediction, external client, and OpenSearch descriptor settings:

	[server]
	listen_addr = ":8080"

	[bangs]
	default_trigger = "g"

	[predict]
	limit = 8

	[external]
	base_url = "https://suggestqueries.google.com/complete/search"
	timeout_ms = 3000

The config file is automatically created with defaults if it doesn't exist.

# Command Line Flags

	-data string
	    Directory containing corpus*.txt word-list files (default "data/")
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of suggestions to return (default from config)
	-config string
	    Path to a TOML config file
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lmarchetti/bangserve/internal/cli"
	"github.com/lmarchetti/bangserve/internal/utils"
	"github.com/lmarchetti/bangserve/pkg/bangs"
	"github.com/lmarchetti/bangserve/pkg/config"
	"github.com/lmarchetti/bangserve/pkg/corpus"
	"github.com/lmarchetti/bangserve/pkg/external"
	"github.com/lmarchetti/bangserve/pkg/httpserver"
	"github.com/lmarchetti/bangserve/pkg/predict"
	"github.com/lmarchetti/bangserve/pkg/suggest"
)

const (
	Version = "0.1.0-beta"
	AppName = "bangserve"
	gh      = "https://github.com/lmarchetti/bangserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "data/", "Directory containing corpus*.txt word-list files")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.Predict.Limit, "Number of suggestions to return")
	configPathFlag := flag.String("config", "", "Path to a TOML config file")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
		os.Exit(1)
	}

	var configPath string
	if *configPathFlag != "" {
		configPath = *configPathFlag
	} else {
		configPath, err = pathResolver.GetConfigPath("config.toml")
		if err != nil {
			log.Fatalf("Failed to determine config path: %v", err)
			os.Exit(1)
		}
	}
	log.Debugf("Using config file: (%s)", configPath)

	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}

	resolvedDataDir, err := pathResolver.GetDataDir(*dataDir)
	if err != nil {
		log.Warnf("Failed to resolve data dir: %v", err)
	}

	loader := corpus.NewLoader()
	loader.AddAll(corpus.DefaultWords())
	loader.AddAll(appConfig.Corpus.ExtraWords)
	if err := loader.LoadDir(resolvedDataDir); err != nil {
		log.Warnf("Failed to load corpus dir %s: %v", resolvedDataDir, err)
	}

	registry := bangs.NewRegistry(bangs.DefaultBangs(), appConfig.Bangs.DefaultTrigger)
	resolver := bangs.NewResolver(registry)

	engine := predict.NewWithConfig(predict.Config{
		NgramMinQueryLen: appConfig.Predict.NgramMinQueryLen,
		FuzzyMinQueryLen: appConfig.Predict.FuzzyMinQueryLen,
	}, loader.Words(), append(registry.Names(), registry.Triggers()...)...)

	extClient := external.New(external.Config{
		BaseURL:      appConfig.External.BaseURL,
		Timeout:      msToDuration(appConfig.External.TimeoutMS),
		CacheTTL:     secondsToDuration(appConfig.External.CacheTTLS),
		CacheMaxSize: appConfig.External.CacheMaxEntries,
	})

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(registry, engine, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	suggestSvc := suggest.New(registry, engine, extClient, log.Default())
	srv := httpserver.NewServer(resolver, suggestSvc, appConfig)

	showStartupInfo(resolvedDataDir, appConfig.Server.ListenAddr)

	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

func msToDuration(ms int) (d time.Duration) {
	return time.Duration(ms) * time.Millisecond
}

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ bangserve ] Bang-aware search shortcuts and suggestions")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir, listenAddr string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("============")
	println(" bangserve  ")
	println("============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("data dir: ( %s )", dataDir)
	log.Infof("listening on: ( %s )", listenAddr)
	log.Info("status: ready")
	println("============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
