// Package doctor runs the -doctor diagnostics: config, bindings, global
// shortcut, clipboard and terminal.
package doctor

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"golang.org/x/term"

	"il2ge/clipboard"
	"il2ge/config"
	"il2ge/hotkeys"
	"il2ge/host"
	"il2ge/shortcut"
)

type check struct {
	name string
	run  func(r *report) bool
}

type report struct {
	out io.Writer
	cfg config.Config
	h   *host.Host
}

func (r *report) pass(format string, args ...any) {
	fmt.Fprintf(r.out, "  PASS: "+format+"\n", args...)
}

func (r *report) fail(format string, args ...any) {
	fmt.Fprintf(r.out, "  FAIL: "+format+"\n", args...)
}

func (r *report) warn(format string, args ...any) {
	fmt.Fprintf(r.out, "  WARN: "+format+"\n", args...)
}

// Run executes the diagnostic checks against the config at cfgPath and
// returns an exit code (0=all pass, 1=any fail). Checks after a failed
// config load are skipped.
func Run(cfgPath string, out io.Writer) int {
	fmt.Fprintln(out, "il2ge doctor - system diagnostics")
	fmt.Fprintln(out, "=================================")

	r := &report{out: out}
	checks := []check{
		{"Configuration", func(r *report) bool { return checkConfig(r, cfgPath) }},
		{"Bindings", checkBindings},
		{"Global shortcut", checkShortcut},
		{"Clipboard", checkClipboard},
		{"Terminal", checkTerminal},
	}

	allPass := true
	for i, c := range checks {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "[%d/%d] %s\n", i+1, len(checks), c.name)
		if !c.run(r) {
			allPass = false
			if i == 0 {
				break
			}
		}
	}

	fmt.Fprintln(out)
	if allPass {
		fmt.Fprintln(out, "All checks passed!")
		return 0
	}
	fmt.Fprintln(out, "Some checks failed. See details above.")
	return 1
}

func checkConfig(r *report, path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		r.warn("%s not found, using defaults", path)
	}
	cfg, err := config.Load(path)
	if err != nil {
		r.fail("%v", err)
		return false
	}
	h, err := host.New(cfg)
	if err != nil {
		r.fail("%v", err)
		return false
	}
	r.cfg, r.h = cfg, h
	r.pass("%d parameters, %d bindings", len(cfg.Parameters), len(cfg.Bindings))
	return true
}

func checkBindings(r *report) bool {
	if !r.cfg.Enabled {
		r.warn("feature disabled, no bindings registered")
		return true
	}
	if !hotkeys.NewRegistrar(r.h).Initialize() {
		r.fail("registration did not run")
		return false
	}

	known := make(map[string]bool)
	for _, cat := range []hotkeys.Category{hotkeys.CategoryHotkeys, hotkeys.CategoryMisc} {
		for _, b := range r.h.Bindings(cat) {
			known[b.ID()] = true
		}
	}

	ok := true
	ids := make([]string, 0, len(r.cfg.Bindings))
	for id := range r.cfg.Bindings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !known[id] {
			r.fail("bindings.%q names no registered command", id)
			ok = false
		}
	}

	// Dispatcher match order: hotkeys, then misc, each in registration order.
	owner := make(map[string]string)
	for _, cat := range []hotkeys.Category{hotkeys.CategoryHotkeys, hotkeys.CategoryMisc} {
		for _, b := range r.h.Bindings(cat) {
			c, found := r.h.Combo(b.ID())
			if !found || c.IsZero() {
				continue
			}
			if prev, dup := owner[c.String()]; dup {
				r.warn("%s is bound to both %s and %s; %s wins", c, prev, b.ID(), prev)
				continue
			}
			owner[c.String()] = b.ID()
		}
	}
	if ok {
		r.pass("%d bindings registered, %d with key combos", len(known), len(owner))
	}
	return ok
}

func checkShortcut(r *report) bool {
	combo, err := r.cfg.MenuCombo()
	if err != nil {
		r.fail("%v", err)
		return false
	}
	msg, err := shortcut.Diagnose(combo)
	if err != nil {
		if !r.cfg.Menu.Global {
			r.warn("%v (menu.global is off)", err)
			return true
		}
		r.fail("%v", err)
		return false
	}
	r.pass("%s", msg)
	return true
}

func checkClipboard(r *report) bool {
	if !clipboard.Available() {
		r.warn("no clipboard utility found, CopyParameters will fail")
		return true
	}
	msg, err := clipboard.Verify(3 * time.Second)
	if err != nil {
		r.fail("%v", err)
		return false
	}
	r.pass("%s", msg)
	return true
}

func checkTerminal(r *report) bool {
	in := term.IsTerminal(int(os.Stdin.Fd()))
	out := term.IsTerminal(int(os.Stdout.Fd()))
	if !in || !out {
		r.warn("not a terminal (stdin=%v stdout=%v), run with -test or -tui=false", in, out)
		return true
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		r.warn("terminal size unknown: %v", err)
		return true
	}
	r.pass("terminal %dx%d", w, h)
	return true
}
