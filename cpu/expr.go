package cpu

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalExpr does compile-time $(...) evaluations, with all labels predeclared.
func (asm *Assembler) evalExpr(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "lmc"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for label, addr := range asm.Label {
		pred[label] = starlark.MakeInt(addr)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrParseExpression{Expr: expr, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrParseExpression{Expr: expr}
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = &ErrParseExpression{Expr: expr}
		return
	}

	value = int(st_int64)
	return
}
