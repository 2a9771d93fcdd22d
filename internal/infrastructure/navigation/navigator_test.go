package navigation

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestRecorder_Navigate(t *testing.T) {
	r := NewRecorder(zerolog.Nop())
	r.Navigate("/dashboard")
	r.Navigate("/ignored")

	if got := <-r.Navigated(); got != "/dashboard" {
		t.Fatalf("expected /dashboard, got %s", got)
	}
	select {
	case extra := <-r.Navigated():
		t.Fatalf("unexpected destination %s", extra)
	default:
	}
}

func TestFunc_Navigate(t *testing.T) {
	var got string
	Func(func(p string) { got = p }).Navigate("/home")
	if got != "/home" {
		t.Fatalf("expected /home, got %s", got)
	}
}
