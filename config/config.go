package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"il2ge/keys"
	"il2ge/param"
)

const defaultMenuHotkey = "ctrl+shift+m"

type Config struct {
	Enabled    bool              `toml:"enabled"`
	Menu       MenuConfig        `toml:"menu"`
	Bindings   map[string]string `toml:"bindings"`
	Parameters []ParameterConfig `toml:"parameters"`
}

type MenuConfig struct {
	Hotkey string `toml:"hotkey"`
	Global bool   `toml:"global"`
}

type ParameterConfig struct {
	Name    string  `toml:"name"`
	Default float64 `toml:"default"`
}

func Default() Config {
	return Config{
		Enabled: true,
		Menu: MenuConfig{
			Hotkey: defaultMenuHotkey,
		},
		Bindings:   map[string]string{},
		Parameters: defaultParameters(),
	}
}

func defaultParameters() []ParameterConfig {
	var params []ParameterConfig
	for _, p := range param.Defaults() {
		params = append(params, ParameterConfig{Name: p.Name, Default: p.Default})
	}
	return params
}

// Path resolves the config file: -config flag, then IL2GE_CONFIG, then
// $XDG_CONFIG_HOME/il2ge/config.toml.
func Path(flagPath string) (string, error) {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(os.Getenv("IL2GE_CONFIG")); p != "" {
		return p, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "il2ge", "config.toml"), nil
}

// Load reads path over the defaults. A missing or empty file yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	// A [[parameters]] list in the file replaces the defaults wholesale.
	cfg.Parameters = nil
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if cfg.Parameters == nil {
		cfg.Parameters = defaultParameters()
	}
	if cfg.Bindings == nil {
		cfg.Bindings = map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func (c Config) Validate() error {
	if _, err := c.MenuCombo(); err != nil {
		return fmt.Errorf("menu.hotkey: %w", err)
	}
	ids := make([]string, 0, len(c.Bindings))
	for id := range c.Bindings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, err := keys.ParseCombo(c.Bindings[id]); err != nil {
			return fmt.Errorf("bindings.%q: %w", id, err)
		}
	}
	seen := make(map[string]bool, len(c.Parameters))
	for _, p := range c.Parameters {
		if strings.TrimSpace(p.Name) == "" {
			return errors.New("parameters: empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("parameters: duplicate %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

func (c Config) MenuCombo() (keys.Combo, error) {
	hk := strings.TrimSpace(c.Menu.Hotkey)
	if hk == "" {
		hk = defaultMenuHotkey
	}
	return keys.ParseCombo(hk)
}

// Combos returns the parsed binding store. Call after Validate.
func (c Config) Combos() map[string]keys.Combo {
	out := make(map[string]keys.Combo, len(c.Bindings))
	for id, s := range c.Bindings {
		if combo, err := keys.ParseCombo(s); err == nil {
			out[id] = combo
		}
	}
	return out
}

// ParamSet builds the parameter set described by the config.
func (c Config) ParamSet() (*param.Set, error) {
	params := make([]*param.Parameter, 0, len(c.Parameters))
	for _, p := range c.Parameters {
		params = append(params, param.New(p.Name, p.Default))
	}
	return param.NewSet(params...)
}
