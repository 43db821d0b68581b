package config

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/uartmon/internal"
	"github.com/ezrec/uartmon/platform"
)

// Eval evaluates expr as a starlark expression. Every define whose value
// parses as an integer is predeclared; others are ignored.
func Eval(expr string, defines iter.Seq2[string, string]) (value uint32, err error) {
	defer func() {
		if err != nil {
			err = &ErrExpression{Expr: expr, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range defines {
		num, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			continue
		}
		pred[key] = starlark.MakeInt64(num)
	}

	prog := "rc = " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpressionResult
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > math.MaxUint32 {
		err = ErrExpressionResult
		return
	}

	value = uint32(st_int64)
	return
}

// EvalBudget evaluates a tick budget expression for a clock of khz, with
// the platform defines and CLOCK_KHZ predeclared.
func EvalBudget(expr string, khz uint32) (ticks uint32, err error) {
	clock := map[string]string{
		"CLOCK_KHZ": fmt.Sprintf("%d", khz),
	}

	return Eval(expr, internal.IterSeq2Concat(platform.Defines(), maps.All(clock)))
}
