// Package ingest reads externally sourced floats, one per line, into checked
// values. Lines that do not parse or violate the policy are collected as
// rejections instead of aborting the read.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/exp/constraints"

	"github.com/tsatke/checkedfloat"
)

// Reader holds the settings shared by all reads. It is safe for concurrent
// use once created.
type Reader struct {
	fs      afero.Fs
	logger  *slog.Logger
	comment string
}

// New creates a Reader on the OS file system that discards its logs, with
// all given options applied.
func New(opts ...Option) *Reader {
	r := &Reader{
		fs:      afero.NewOsFs(),
		logger:  slog.New(slog.DiscardHandler),
		comment: "#",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rejection is an input line that did not yield a value.
type Rejection struct {
	Line  int
	Input string
	Err   error
}

func (r Rejection) String() string {
	return fmt.Sprintf("%d: %s", r.Line, r.Err)
}

// Report is the result of one read.
type Report[F constraints.Float, C checkedfloat.Checker[F]] struct {
	// Source names where the input came from, for messages.
	Source   string
	Values   []checkedfloat.Value[F, C]
	Rejected []Rejection
}

// OK reports whether every line was accepted.
func (r Report[F, C]) OK() bool {
	return len(r.Rejected) == 0
}

// ReadFile reads the file at path from the Reader's file system.
func ReadFile[F constraints.Float, C checkedfloat.Checker[F]](r *Reader, path string) (Report[F, C], error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return Report[F, C]{Source: path}, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read[F, C](r, path, f)
}

// Read reads src until EOF. Blank lines and comment lines are skipped;
// every other line must hold exactly one float literal. The returned error
// is only non-nil if src itself fails.
func Read[F constraints.Float, C checkedfloat.Checker[F]](r *Reader, source string, src io.Reader) (Report[F, C], error) {
	report := Report[F, C]{Source: source}
	log := r.logger.With("source", source)

	sc := bufio.NewScanner(src)
	line := 0
	for sc.Scan() {
		line++
		input := strings.TrimSpace(sc.Text())
		if input == "" || (r.comment != "" && strings.HasPrefix(input, r.comment)) {
			continue
		}

		v, err := checkedfloat.Parse[F, C](input)
		if err != nil {
			log.Warn("rejected line", "line", line, "input", input, "err", err)
			report.Rejected = append(report.Rejected, Rejection{Line: line, Input: input, Err: err})
			continue
		}
		report.Values = append(report.Values, v)
	}
	if err := sc.Err(); err != nil {
		return report, fmt.Errorf("read %s: %w", source, err)
	}

	log.Debug("read complete", "accepted", len(report.Values), "rejected", len(report.Rejected))
	return report, nil
}
