package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"
)

var (
	DUOFM_CONFIG_PATH string

	DUOFM_LOG_PATH string

	DUOFM_TRASH_DIR string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")

	// Follow https://specifications.freedesktop.org/basedir-spec/latest/
	if e := os.Getenv("DUOFM_CONFIG_PATH"); e != "" {
		DUOFM_CONFIG_PATH = e
	} else {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				panic(err)
			}
			configDir = filepath.Join(homeDir, defaultXDGConfigDirname)
		}
		DUOFM_CONFIG_PATH = filepath.Join(configDir, "duofm", "config.yaml")
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}
		dataDir = filepath.Join(homeDir, defaultXDGDataDirname)
	}

	if e := os.Getenv("DUOFM_LOG_PATH"); e != "" {
		DUOFM_LOG_PATH = e
	} else {
		DUOFM_LOG_PATH = filepath.Join(dataDir, "duofm", "debug.log")
	}

	if e := os.Getenv("DUOFM_TRASH_DIR"); e != "" {
		DUOFM_TRASH_DIR = e
	} else {
		DUOFM_TRASH_DIR = filepath.Join(dataDir, "duofm", "trash")
	}
}
