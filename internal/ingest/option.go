package ingest

import (
	"log/slog"

	"github.com/spf13/afero"
)

type Option func(*Reader)

func WithFs(fs afero.Fs) Option {
	return func(r *Reader) {
		r.fs = fs
	}
}

// WithLogger sets the logger that rejected lines are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// WithComment sets the prefix that marks a line as a comment. The default
// is "#". An empty prefix disables comments.
func WithComment(prefix string) Option {
	return func(r *Reader) {
		r.comment = prefix
	}
}
