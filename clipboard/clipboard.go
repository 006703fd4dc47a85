// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cb "github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("no clipboard utility available")

// Available reports whether a clipboard backend was found (xclip, xsel,
// wl-copy, pbcopy or the Win32 API).
func Available() bool {
	return !cb.Unsupported
}

func Copy(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	return cb.WriteAll(text)
}

func Read() (string, error) {
	if !Available() {
		return "", ErrUnavailable
	}
	return cb.ReadAll()
}

// Verify writes a marker, reads it back and returns a status message.
// Clipboard helpers can hang without a display, so it gives up after timeout.
func Verify(timeout time.Duration) (string, error) {
	marker := fmt.Sprintf("il2ge-verify-%d", time.Now().UnixNano())

	type result struct {
		readback string
		err      error
	}
	ch := make(chan result, 1)
	go func() {
		if err := Copy(marker); err != nil {
			ch <- result{err: fmt.Errorf("write: %w", err)}
			return
		}
		got, err := Read()
		if err != nil {
			err = fmt.Errorf("read: %w", err)
		}
		ch <- result{readback: got, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return "", res.err
		}
		if strings.TrimSpace(res.readback) != marker {
			return "", fmt.Errorf("clipboard mismatch: wrote %q, read %q", marker, res.readback)
		}
		return "clipboard round trip ok", nil
	case <-time.After(timeout):
		return "", fmt.Errorf("clipboard timed out after %s", timeout)
	}
}
