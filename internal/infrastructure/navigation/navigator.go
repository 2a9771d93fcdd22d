// Package navigation provides Navigator implementations for non-browser hosts.
package navigation

import "github.com/rs/zerolog"

// Func adapts a plain function to a Navigator.
type Func func(path string)

func (f Func) Navigate(path string) { f(path) }

// Recorder logs each navigation and publishes the destination on a channel so
// a host can wait for it.
type Recorder struct {
	log zerolog.Logger
	ch  chan string
}

func NewRecorder(log zerolog.Logger) *Recorder {
	return &Recorder{log: log, ch: make(chan string, 1)}
}

// Navigate never blocks; a destination is dropped if the previous one was not consumed.
func (r *Recorder) Navigate(path string) {
	r.log.Info().Str("destination", path).Msg("navigating")
	select {
	case r.ch <- path:
	default:
	}
}

// Navigated delivers destinations in the order they were requested.
func (r *Recorder) Navigated() <-chan string { return r.ch }
