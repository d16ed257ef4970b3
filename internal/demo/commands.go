package demo

import (
	"fmt"
	"math/big"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/convkit"

	"github.com/lessonkit/lazyseq/pkg/seqkit"
)

type RangeCommand struct {
	Start int `flag:"start" default:"3" desc:"the first value of the counter"`
	Stop  int `flag:"stop"  default:"9" desc:"the counter stops right before this value"`
}

func (cmd RangeCommand) Summary() string { return "bounded counter from --start up to --stop" }

func (cmd RangeCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	emit(w, r, "range", seqkit.Range(cmd.Start, cmd.Stop))
}

type CountCommand struct {
	Start float64 `flag:"start" default:"1"   desc:"the first value"`
	Step  float64 `flag:"step"  default:"0.5" desc:"the difference between two values"`
	Limit int     `flag:"limit" required:"true" desc:"how many values to print"`

	MaxLimit int
}

func (cmd CountCommand) Summary() string { return "unbounded counter, cut after --limit values" }

func (cmd CountCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	if !checkLimit(r.Context(), w, cmd.Limit, cmd.MaxLimit) {
		return
	}
	emit(w, r, "count", seqkit.Limit[float64](seqkit.Count(cmd.Start, cmd.Step), cmd.Limit))
}

type FibCommand struct {
	Limit int `flag:"limit" default:"10" desc:"how many Fibonacci numbers to print"`

	MaxLimit int
}

func (cmd FibCommand) Summary() string { return "the Fibonacci numbers" }

func (cmd FibCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	if !checkLimit(r.Context(), w, cmd.Limit, cmd.MaxLimit) {
		return
	}
	emit(w, r, "fib", seqkit.Limit[*big.Int](seqkit.Fibonacci(), cmd.Limit))
}

type SquareCommand struct{}

func (cmd SquareCommand) Summary() string { return "square of each integer argument" }

func (cmd SquareCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	squares := seqkit.Map[int](integers(r.Args), func(n int) int { return n * n })
	emit(w, r, "square", squares)
}

type FilterCommand struct {
	Divisor int `flag:"divisor" default:"2" desc:"only the multiples of this number are printed"`
}

func (cmd FilterCommand) Summary() string { return "integer arguments that are multiples of --divisor" }

func (cmd FilterCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	if cmd.Divisor == 0 {
		fail(w, cli.ExitCodeBadRequest, ErrInvalidNumber.F("--divisor must not be zero"))
		return
	}
	multiples := seqkit.Filter[int](integers(r.Args), func(n int) bool { return n%cmd.Divisor == 0 })
	emit(w, r, "filter", multiples)
}

type CycleCommand struct {
	Limit int `flag:"limit" default:"7" desc:"how many values to print"`

	MaxLimit int
}

func (cmd CycleCommand) Summary() string { return "repeat the arguments, cut after --limit values" }

func (cmd CycleCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	if !checkLimit(r.Context(), w, cmd.Limit, cmd.MaxLimit) {
		return
	}
	emit(w, r, "cycle", seqkit.Limit[string](seqkit.Cycle[string](seqkit.Slice(r.Args)), cmd.Limit))
}

type ChainCommand struct{}

func (cmd ChainCommand) Summary() string {
	return "concatenate the arguments, each argument is a comma separated group"
}

func (cmd ChainCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	groups := seqkit.MapErr[seqkit.Sequence[string]](seqkit.Slice(r.Args), func(arg string) (seqkit.Sequence[string], error) {
		vs, err := convkit.Parse[[]string](arg, convkit.Options{Separator: ","})
		if err != nil {
			return nil, ErrInvalidGroup.Wrap(err)
		}
		return seqkit.Slice(vs), nil
	})
	emit(w, r, "chain", seqkit.ChainFrom[string](groups))
}

type ZipCommand struct{}

func (cmd ZipCommand) Summary() string { return "number the arguments starting from zero" }

func (cmd ZipCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	indexed := seqkit.Zip[int, string](seqkit.Count(0, 1), seqkit.Slice(r.Args))
	lines := seqkit.Map[string](indexed, func(p seqkit.Pair[int, string]) string {
		return fmt.Sprintf("%d %s", p.First, p.Second)
	})
	emit(w, r, "zip", lines)
}

func integers(args []string) seqkit.Sequence[int] {
	return seqkit.MapErr[int](seqkit.Slice(args), func(raw string) (int, error) {
		n, err := convkit.Parse[int](raw)
		if err != nil {
			return 0, ErrInvalidNumber.Wrap(err)
		}
		return n, nil
	})
}
