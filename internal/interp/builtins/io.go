package builtins

import (
	"fmt"
	"strings"

	"github.com/g3ntleman/go-clj/internal/value"
)

func registerIOFunctions(r *Registry) {
	r.Register("print", Print, CategoryIO, "Prints arguments for human reading, no newline")
	r.Register("println", Println, CategoryIO, "Prints arguments for human reading, then a newline")
	r.Register("pr", Pr, CategoryIO, "Prints arguments readably, no newline")
	r.Register("prn", Prn, CategoryIO, "Prints arguments readably, then a newline")
}

func printArgs(ctx *Context, args []value.Value, readable bool, newline bool) (value.Value, error) {
	var sb strings.Builder
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if readable {
			sb.WriteString(value.PrStr(a))
		} else {
			sb.WriteString(value.DisplayStr(a))
		}
	}
	if newline {
		sb.WriteByte('\n')
	}
	if _, err := fmt.Fprint(ctx.Out, sb.String()); err != nil {
		return value.Nil, value.NewExceptionf(value.ExcRuntime, "write failed: %v", err)
	}
	return value.Nil, nil
}

// Print implements print.
func Print(ctx *Context, args []value.Value) (value.Value, error) {
	return printArgs(ctx, args, false, false)
}

// Println implements println.
func Println(ctx *Context, args []value.Value) (value.Value, error) {
	return printArgs(ctx, args, false, true)
}

// Pr implements pr.
func Pr(ctx *Context, args []value.Value) (value.Value, error) {
	return printArgs(ctx, args, true, false)
}

// Prn implements prn.
func Prn(ctx *Context, args []value.Value) (value.Value, error) {
	return printArgs(ctx, args, true, true)
}
