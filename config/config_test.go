package config

import (
	"os"
	"path/filepath"
	"testing"

	"il2ge/keys"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Enabled {
		t.Error("default config should be enabled")
	}
	combo, err := cfg.MenuCombo()
	if err != nil {
		t.Fatal(err)
	}
	if combo != keys.MustParseCombo("ctrl+shift+m") {
		t.Errorf("menu combo = %s", combo)
	}
	if len(cfg.Parameters) == 0 {
		t.Error("default config has no parameters")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "  \n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Enabled {
		t.Error("empty file should keep defaults")
	}
}

func TestLoadFromTOML(t *testing.T) {
	path := writeConfig(t, `
enabled = false

[menu]
hotkey = "alt+f10"
global = true

[bindings]
"GraphicsExtender.exposure.increase_by_1" = "ctrl+up"

[[parameters]]
name = "exposure"
default = 2.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Enabled {
		t.Error("enabled = true, want false")
	}
	if !cfg.Menu.Global {
		t.Error("menu.global = false, want true")
	}
	combo, _ := cfg.MenuCombo()
	if combo != (keys.Combo{Key: keys.F10, Mods: keys.ModAlt}) {
		t.Errorf("menu combo = %s, want alt+f10", combo)
	}
	got := cfg.Combos()["GraphicsExtender.exposure.increase_by_1"]
	if got != (keys.Combo{Key: keys.Up, Mods: keys.ModCtrl}) {
		t.Errorf("binding combo = %s, want ctrl+up", got)
	}

	set, err := cfg.ParamSet()
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 1 || set.At(0).Get() != 2.5 {
		t.Errorf("parameters = %q", set.Dump())
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad menu hotkey": "[menu]\nhotkey = \"ctrl+\"\n",
		"bad binding":     "[bindings]\nfoo = \"hyper+x\"\n",
		"duplicate param": "[[parameters]]\nname = \"a\"\n[[parameters]]\nname = \"a\"\n",
		"bad toml":        "enabled = \n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, content)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestPath(t *testing.T) {
	if p, _ := Path("/etc/il2ge.toml"); p != "/etc/il2ge.toml" {
		t.Errorf("flag path = %q", p)
	}

	t.Setenv("IL2GE_CONFIG", "/tmp/env.toml")
	if p, _ := Path(""); p != "/tmp/env.toml" {
		t.Errorf("env path = %q", p)
	}

	t.Setenv("IL2GE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := Path("")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "il2ge", "config.toml"); p != want {
		t.Errorf("default path = %q, want %q", p, want)
	}
}
