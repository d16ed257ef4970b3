// Package demo implements the seqdemo commands.
// Each command walks one of the lazy sequence examples and prints its values, one per line.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/lessonkit/lazyseq/internal/config"
	"github.com/lessonkit/lazyseq/pkg/seqkit"
)

const (
	ErrLimitExceeded errorkit.Error = "ErrLimitExceeded"
	ErrInvalidLimit  errorkit.Error = "ErrInvalidLimit"
	ErrInvalidNumber errorkit.Error = "ErrInvalidNumber"
	ErrInvalidGroup  errorkit.Error = "ErrInvalidGroup"
)

// Mux registers every seqdemo command.
//
// Commands log through the package level logger, configure it with logger.Configure.
func Mux(cfg config.Config) *cli.Mux {
	var m cli.Mux
	m.Handle("range", RangeCommand{})
	m.Handle("count", CountCommand{MaxLimit: cfg.MaxLimit})
	m.Handle("fib", FibCommand{MaxLimit: cfg.MaxLimit})
	m.Handle("square", SquareCommand{})
	m.Handle("filter", FilterCommand{})
	m.Handle("cycle", CycleCommand{MaxLimit: cfg.MaxLimit})
	m.Handle("chain", ChainCommand{})
	m.Handle("zip", ZipCommand{})
	return &m
}

// emit writes every value of seq to w and reports the outcome.
func emit[T any](w cli.ResponseWriter, r *cli.Request, command string, seq seqkit.Sequence[T]) {
	ctx := r.Context()

	var count int
	err := seqkit.ForEach(seq, func(v T) error {
		count++
		_, err := fmt.Fprintln(w, v)
		return err
	})
	if err != nil {
		logger.Error(ctx, "sequence failed",
			logging.Field("command", command),
			logging.Field("count", count),
			logging.ErrField(err))
		if errors.Is(err, ErrInvalidNumber) || errors.Is(err, ErrInvalidGroup) {
			fail(w, cli.ExitCodeBadRequest, err)
			return
		}
		fail(w, cli.ExitCodeError, err)
		return
	}
	logger.Debug(ctx, "sequence produced",
		logging.Field("command", command),
		logging.Field("count", count))
}

// checkLimit guards the commands that print infinite sequences.
func checkLimit(ctx context.Context, w cli.ResponseWriter, limit, max int) bool {
	var err error
	switch {
	case limit < 0:
		err = ErrInvalidLimit.F("--limit must not be negative, got %d", limit)
	case max < limit:
		err = ErrLimitExceeded.F("--limit %d is above the configured maximum of %d", limit, max)
	}
	if err == nil {
		return true
	}
	logger.Warn(ctx, "limit rejected", logging.ErrField(err))
	fail(w, cli.ExitCodeBadRequest, err)
	return false
}

// fail sets the exit code and prints err to the standard error when w has one.
func fail(w cli.ResponseWriter, code int, err error) {
	w.ExitCode(code)
	var out io.Writer = w
	if ew, ok := w.(cli.ErrorWriter); ok && ew.Stderr() != nil {
		out = ew.Stderr()
	}
	fmt.Fprintln(out, err.Error())
}
