package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mj1618/zommation/internal/model"
)

const (
	defaultDocumentPath   = "zommation.yaml"
	defaultSnapshotDir    = "snapshots"
	defaultConfigDirName  = "zommation"
	defaultConfigFileName = "config.toml"
)

// Settings are the user preferences applied by every command.
type Settings struct {
	Path          string  `yaml:"path"           json:"path"`
	DocumentPath  string  `yaml:"document"       json:"document"`
	SnapshotDir   string  `yaml:"snapshot_dir"   json:"snapshotDir"`
	Grey          bool    `yaml:"grey"           json:"grey"`
	Threshold     float64 `yaml:"threshold"      json:"threshold"`
	Timeout       float64 `yaml:"timeout"        json:"timeout"`
	SwipeDuration float64 `yaml:"swipe_duration" json:"swipeDuration"`
}

type fileConfig struct {
	Document  documentConfig `toml:"document"`
	Snapshots snapshotConfig `toml:"snapshots"`
	Defaults  defaultsConfig `toml:"defaults"`
}

type documentConfig struct {
	Path string `toml:"path"`
}

type snapshotConfig struct {
	Dir  string `toml:"dir"`
	Grey *bool  `toml:"grey"`
}

type defaultsConfig struct {
	Threshold     *float64 `toml:"threshold"`
	Timeout       *float64 `toml:"timeout"`
	SwipeDuration *float64 `toml:"swipe_duration"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() Settings {
	return Settings{
		DocumentPath:  defaultDocumentPath,
		SnapshotDir:   defaultSnapshotDir,
		Threshold:     model.DefaultThreshold,
		Timeout:       model.DefaultTimeout,
		SwipeDuration: model.DefaultSwipeDuration,
	}
}

// Load reads the config file at path, or at DefaultPath when path is empty.
// A missing file yields the defaults; keys absent from the file keep their
// default values.
func Load(path string) (Settings, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Settings{}, err
		}
	}

	cfg := defaultFileConfig()
	if _, err := os.Stat(path); err == nil {
		var onDisk fileConfig
		md, err := toml.DecodeFile(path, &onDisk)
		if err != nil {
			return Settings{}, fmt.Errorf("decode config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Settings{}, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
		}
		mergeFileConfig(&cfg, onDisk)
	} else if !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("stat config %s: %w", path, err)
	}
	return toSettings(path, cfg)
}

// Init writes a config file holding the defaults. An existing file is only
// replaced when force is set.
func Init(path string, force bool) (Settings, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Settings{}, err
		}
	}
	if _, err := os.Stat(path); err == nil && !force {
		return Settings{}, fmt.Errorf("config %s already exists (use --force to overwrite)", path)
	}
	settings := Defaults()
	settings.Path = path
	return Save(settings)
}

// Save writes settings to settings.Path (or DefaultPath) and returns the
// values loaded back from the file.
func Save(settings Settings) (Settings, error) {
	path := strings.TrimSpace(settings.Path)
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Settings{}, err
		}
	}
	if _, err := toSettings(path, toFileConfig(settings)); err != nil {
		return Settings{}, err
	}
	if err := writeConfig(path, toFileConfig(settings)); err != nil {
		return Settings{}, err
	}
	return Load(path)
}

// DefaultPath returns ~/.config/zommation/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", defaultConfigDirName, defaultConfigFileName), nil
}

func defaultFileConfig() fileConfig {
	return toFileConfig(Defaults())
}

func toFileConfig(s Settings) fileConfig {
	grey, threshold, timeout, swipe := s.Grey, s.Threshold, s.Timeout, s.SwipeDuration
	return fileConfig{
		Document:  documentConfig{Path: s.DocumentPath},
		Snapshots: snapshotConfig{Dir: s.SnapshotDir, Grey: &grey},
		Defaults: defaultsConfig{
			Threshold:     &threshold,
			Timeout:       &timeout,
			SwipeDuration: &swipe,
		},
	}
}

func mergeFileConfig(dst *fileConfig, src fileConfig) {
	if v := strings.TrimSpace(src.Document.Path); v != "" {
		dst.Document.Path = v
	}
	if v := strings.TrimSpace(src.Snapshots.Dir); v != "" {
		dst.Snapshots.Dir = v
	}
	if src.Snapshots.Grey != nil {
		dst.Snapshots.Grey = src.Snapshots.Grey
	}
	if src.Defaults.Threshold != nil {
		dst.Defaults.Threshold = src.Defaults.Threshold
	}
	if src.Defaults.Timeout != nil {
		dst.Defaults.Timeout = src.Defaults.Timeout
	}
	if src.Defaults.SwipeDuration != nil {
		dst.Defaults.SwipeDuration = src.Defaults.SwipeDuration
	}
}

func toSettings(path string, cfg fileConfig) (Settings, error) {
	threshold := *cfg.Defaults.Threshold
	if !(threshold >= 0 && threshold <= 1) {
		return Settings{}, fmt.Errorf("invalid defaults.threshold %v: must be in [0, 1]", threshold)
	}
	timeout := *cfg.Defaults.Timeout
	if math.IsNaN(timeout) || math.IsInf(timeout, 0) || timeout < 0 {
		return Settings{}, fmt.Errorf("invalid defaults.timeout %v: must be a non-negative number", timeout)
	}
	swipe := *cfg.Defaults.SwipeDuration
	if !model.ValidDuration(swipe) {
		return Settings{}, fmt.Errorf("invalid defaults.swipe_duration %v: must be a positive number", swipe)
	}
	return Settings{
		Path:          path,
		DocumentPath:  cfg.Document.Path,
		SnapshotDir:   cfg.Snapshots.Dir,
		Grey:          *cfg.Snapshots.Grey,
		Threshold:     threshold,
		Timeout:       timeout,
		SwipeDuration: swipe,
	}, nil
}

func writeConfig(path string, cfg fileConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString("# zommation settings\n\n"); err != nil {
		return fmt.Errorf("write config header: %w", err)
	}
	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
