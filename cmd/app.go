// Package cmd implements the rl command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rupeelogic"
	"github.com/etnz/rupeelogic/config"
	"github.com/etnz/rupeelogic/history"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Commands lists the rl subcommands.
var Commands = []subcommands.Command{
	&adviseCmd{},
	&batchCmd{},
	&assistCmd{},
	&rulesCmd{},
	&assetsCmd{},
	&historyCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configPath = flag.String("config", config.DefaultPath(), "Path to the YAML configuration file")
	kbPath     = flag.String("kb", "", "Path to a knowledge base file (JSON or YAML), overrides the configuration")
	verbose    = flag.Bool("v", false, "Log the rules as they fire")
	noHistory  = flag.Bool("no-history", false, "Do not record recommendations")
)

// loadConfig reads the configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	if *kbPath != "" {
		cfg.KnowledgeBase.Path = *kbPath
	}
	if *noHistory {
		cfg.History.Disabled = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger logs warnings to stderr, or everything with -v.
func newLogger() *zap.Logger {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if *verbose {
		zc = zap.NewDevelopmentConfig()
	}
	logger, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newEngine loads the configured knowledge base and checks that it covers
// every asset class of the catalog.
func newEngine(cfg *config.Config, log *zap.Logger) (*rupeelogic.Engine, error) {
	kb, err := cfg.LoadKnowledgeBase()
	if err != nil {
		return nil, err
	}
	if err := rupeelogic.DefaultCatalog().Check(kb); err != nil {
		return nil, fmt.Errorf("knowledge base does not cover the rules: %w", err)
	}
	return rupeelogic.NewEngine(nil, kb, rupeelogic.WithLogger(log)), nil
}

// openHistory never fails: a recorder that cannot be opened is replaced by a
// no-op one.
func openHistory(cfg *config.Config, log *zap.Logger) history.Recorder {
	if cfg.History.Disabled {
		return history.NewNoopRecorder()
	}
	r, err := history.NewSQLiteRecorder(cfg.History.SQLitePath, log)
	if err != nil {
		log.Warn("history disabled", zap.String("path", cfg.History.SQLitePath), zap.Error(err))
		return history.NewNoopRecorder()
	}
	return r
}

// setup is the common prologue of the commands running the engine.
func setup() (*config.Config, *zap.Logger, *rupeelogic.Engine, subcommands.ExitStatus) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, nil, nil, subcommands.ExitFailure
	}
	log := newLogger()
	e, err := newEngine(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading knowledge base: %v\n", err)
		return nil, nil, nil, subcommands.ExitFailure
	}
	return cfg, log, e, subcommands.ExitSuccess
}
