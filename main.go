package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/term"

	"il2ge/config"
	"il2ge/doctor"
	"il2ge/host"
	"il2ge/hotkeys"
	"il2ge/log"
	"il2ge/shortcut"
	"il2ge/shutdown"
)

var version = "dev"

var (
	activeHost   *host.Host
	shutdownOnce sync.Once
)

func gracefulShutdown(code int) {
	shutdownOnce.Do(func() {
		if activeHost != nil {
			log.SessionEnd(activeHost.Executed())
		}
		log.Close()
		os.Exit(code)
	})
}

func run() {
	configFlag := flag.String("config", "", "config file path (default: $XDG_CONFIG_HOME/il2ge/config.toml)")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run system diagnostics and exit")
	testFlag := flag.Bool("test", false, "Test mode (headless, stdin-driven)")
	tuiFlag := flag.Bool("tui", term.IsTerminal(int(os.Stdout.Fd())), "Run with terminal UI")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("il2ge %s\n", version)
		os.Exit(0)
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)
	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	if crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	cfgPath, err := config.Path(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve config path: %v\n", err)
		os.Exit(1)
	}

	if *doctorFlag {
		os.Exit(doctor.Run(cfgPath, os.Stdout))
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	h, err := host.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	activeHost = h
	log.SessionStart(cfgPath, cfg.Enabled, h.CommandCount())

	if !hotkeys.NewRegistrar(h).Initialize() {
		log.Warn("feature unavailable, no bindings registered")
	}

	stop := shutdown.Watch(func(sig os.Signal) {
		log.Info("signal: " + sig.String())
		if quitTUI() {
			return
		}
		gracefulShutdown(0)
	})
	defer stop()

	if *testFlag || !*tuiFlag {
		if *testFlag {
			h.SetClipboard(func(s string) error {
				_, err := fmt.Fprintf(os.Stdout, "CLIPBOARD\n%s", s)
				return err
			})
		}
		code := 0
		if err := runScript(os.Stdin, h, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			log.Errorf("script: %v", err)
			code = 1
		}
		gracefulShutdown(code)
	}

	var hk shortcut.Hotkey
	if cfg.Menu.Global && cfg.Enabled {
		hk = registerGlobalShortcut(cfg)
		if hk != nil {
			defer hk.Unregister()
		}
	}

	if err := runTUI(h, hk); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Errorf("tui: %v", err)
		gracefulShutdown(1)
	}
	gracefulShutdown(0)
}

func registerGlobalShortcut(cfg config.Config) shortcut.Hotkey {
	combo, err := cfg.MenuCombo()
	if err != nil {
		log.Warnf("global shortcut: %v", err)
		return nil
	}
	hk, err := shortcut.New(combo)
	if err != nil {
		log.Warnf("global shortcut: %v", err)
		return nil
	}
	if err := hk.Register(); err != nil {
		log.Warnf("global shortcut register %s: %v", combo, err)
		return nil
	}
	log.Info("global_shortcut: " + combo.String())
	return hk
}
