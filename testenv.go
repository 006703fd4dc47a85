package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"il2ge/host"
	"il2ge/keys"
)

// runScript drives h from a line-oriented script, one event per line:
//
//	PRESS <key>     key down
//	RELEASE <key>   key up
//	TAP <combo>     modifiers down, key down/up, modifiers up
//	CHAR <text>     character input
//	DUMP            print menu state and parameter values
//	QUIT            stop reading
//
// Blank lines and lines starting with '#' are skipped.
func runScript(r io.Reader, h *host.Host, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch strings.ToUpper(cmd) {
		case "PRESS", "RELEASE":
			var code keys.Code
			if code, err = keys.Parse(arg); err == nil {
				h.KeyEvent(code, strings.EqualFold(cmd, "PRESS"))
			}
		case "TAP":
			var combo keys.Combo
			if combo, err = keys.ParseCombo(arg); err == nil {
				h.Tap(combo)
			}
		case "CHAR":
			for _, c := range arg {
				h.Char(c)
			}
		case "DUMP":
			dump(h, w)
		case "QUIT":
			return nil
		default:
			err = fmt.Errorf("unknown command %q", cmd)
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func dump(h *host.Host, w io.Writer) {
	fmt.Fprintf(w, "menu=%t focus=%t active=%d executed=%d\n",
		h.Menu().Shown(), h.Focused(), h.Menu().Active(), h.Executed())
	io.WriteString(w, h.Params().Dump())
}
