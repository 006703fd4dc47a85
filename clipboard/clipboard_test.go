package clipboard

import (
	"errors"
	"testing"
	"time"
)

func TestUnavailable(t *testing.T) {
	if Available() {
		t.Skip("clipboard backend present")
	}
	if err := Copy("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Copy err = %v, want ErrUnavailable", err)
	}
	if _, err := Read(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Read err = %v, want ErrUnavailable", err)
	}
	if _, err := Verify(time.Second); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Verify err = %v, want ErrUnavailable", err)
	}
}
