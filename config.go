package wirebuf

import (
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/wirekit/wirebuf/bytebuffer"
)

// RootPath stores path to the wirebuf root installation
var RootPath string

// ConfPath stores path to wirebuf.conf
var ConfPath string

// Settings holds the values that can be set in wirebuf.conf
type Settings struct {
	// TmpDir is where save files are kept, relative to RootPath unless
	// absolute. Empty means os.TempDir().
	TmpDir string

	// InitialCapacity is the capacity of buffers created by NewBuffer
	InitialCapacity int
}

// Config stores the configuration currently in effect
var Config = defaultSettings()

type fileConfig struct {
	TmpDir          string `toml:"tmp_dir"`
	InitialCapacity int    `toml:"initial_capacity"`
}

func defaultSettings() Settings {
	return Settings{
		InitialCapacity: 64,
	}
}

// initConfig initializes the config constants
func initConfig() error {
	rootPath, ok := os.LookupEnv("WIREBUF_DIR")
	if !ok {
		rootPath = "/"
	}
	RootPath = rootPath

	confPath, ok := os.LookupEnv("WIREBUF_CONF")
	if !ok {
		confPath = path.Join(RootPath, "etc", "wirebuf.conf")
	}
	ConfPath = confPath

	Config = defaultSettings()
	if _, err := os.Stat(ConfPath); os.IsNotExist(err) {
		return nil
	}

	return LoadConfig(ConfPath)
}

// LoadConfig reads a toml config file and replaces Config with the defaults
// overridden by whatever the file defines
func LoadConfig(file string) error {
	cfg := defaultSettings()

	var raw fileConfig
	meta, err := toml.DecodeFile(file, &raw)
	if err != nil {
		return errors.Wrapf(err, "load config %v", file)
	}

	if meta.IsDefined("tmp_dir") {
		cfg.TmpDir = strings.TrimSpace(raw.TmpDir)
	}

	if meta.IsDefined("initial_capacity") {
		if raw.InitialCapacity < bytebuffer.MinCapacity {
			return errors.Errorf("initial_capacity must be at least %d, got %d", bytebuffer.MinCapacity, raw.InitialCapacity)
		}
		cfg.InitialCapacity = raw.InitialCapacity
	}

	Config = cfg
	return nil
}
