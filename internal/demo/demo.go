// Package demo runs the shared-entity walkthrough printed by the observe
// command: construct, clone, count holders, snapshot, rename, snapshot.
package demo

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"observe/internal/observable"
)

const (
	DefaultName     = "z"
	DefaultRenameTo = "newZ3Name"
)

// Options tunes Run. Zero values select the defaults above and a silent logger.
type Options struct {
	Name      string
	RenameTo  string
	Logger    *zerolog.Logger
	Publisher observable.EventPublisher
}

// Run writes the walkthrough to w and returns the first handle, still live, so
// callers can keep serving it. The caller owns the returned handle.
func Run(w io.Writer, opts Options) (*observable.Handle, error) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.RenameTo == "" {
		opts.RenameTo = DefaultRenameTo
	}
	z := observable.NewWithConfig(observable.Config{Name: opts.Name, Logger: opts.Logger, Publisher: opts.Publisher})
	z2 := z.Clone()
	defer z2.Release()

	fmt.Fprintf(w, "there are %d instances of z.\n", z.RefCount())
	fmt.Fprintf(w, "z: %s\n", z2)

	if err := z2.SetName(opts.RenameTo); err != nil {
		z.Release()
		return nil, fmt.Errorf("rename %s: %w", z.ID(), err)
	}
	fmt.Fprintf(w, "z2: %s\n", z2)
	fmt.Fprintln(w, "Hello, world!")
	return z, nil
}
