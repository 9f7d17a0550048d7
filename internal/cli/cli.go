// Package cli wires configuration, logging, storage and the engine together
// and dispatches to the browser or one of the maintenance commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/duofm/duofm/internal/clipboard"
	"github.com/duofm/duofm/internal/config"
	"github.com/duofm/duofm/internal/debug"
	"github.com/duofm/duofm/internal/engine"
	"github.com/duofm/duofm/internal/env"
	"github.com/duofm/duofm/internal/trash"
	"github.com/duofm/duofm/internal/ui"
	"github.com/jessevdk/go-flags"
	"github.com/rs/xid"
)

type Option struct {
	Config    string `long:"config" description:"Path to config file" default:""`
	ListTrash bool   `long:"list-trash" description:"List entries in the holding area"`
	Prune     string `long:"prune" description:"Permanently remove held entries older than AGE (e.g. \"30 days\")" value-name:"AGE"`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	runID   string
	storage *trash.Storage
	engine  *engine.Engine
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

// newLogger builds the process logger writing to w. Every record carries the
// run ID so one browsing session can be grepped out of the shared log file.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           log.DebugLevel,
	})
	logger.SetOutput(w)
	return logger.With("run_id", runID())
}

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[OPTIONS] [DIR]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	logDir := filepath.Dir(env.DUOFM_LOG_PATH)
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		err := os.MkdirAll(logDir, 0755)
		if err != nil {
			return err
		}
	}

	var w io.Writer
	if file, err := os.OpenFile(env.DUOFM_LOG_PATH, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		w = file
	} else {
		w = os.Stderr
	}

	slog.SetDefault(slog.New(newLogger(w)))

	defer slog.Debug("main function finished\n\n\n")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	trashDir := cfg.Core.Trash.Dir
	if trashDir == "" {
		trashDir = env.DUOFM_TRASH_DIR
	}
	storage, err := trash.NewStorage(trashDir)
	if err != nil {
		return fmt.Errorf("failed to initialize holding area: %w", err)
	}

	eng := engine.New(clipboard.New(), storage, cfg.Core.History.MaxEntries)

	cli := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		runID:   runID(),
		storage: storage,
		engine:  eng,
	}

	if err := cli.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

func (c CLI) Run(args []string) error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(os.Stdout, c.version.Print())
		return nil

	case c.option.ListTrash:
		return c.ListTrash()

	case c.option.Prune != "":
		return c.Prune(c.option.Prune)

	default:
		switch c.option.Meta.Debug {
		case "live":
			return debug.Logs(os.Stdout, true)
		case "full":
			return debug.Logs(os.Stdout, false)
		}
		return c.Browse(args)
	}
}

// Browse launches the dual-pane browser in the given (or current) directory.
func (c CLI) Browse(args []string) error {
	startDir, err := os.Getwd()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		startDir, err = filepath.Abs(args[0])
		if err != nil {
			return err
		}
	}

	c.autoPrune()

	if err := ui.Run(c.engine, c.config, startDir); err != nil {
		return err
	}

	if msg := c.config.UI.ExitMessage; msg != "" {
		fmt.Fprintln(os.Stdout, msg)
	}
	return nil
}
