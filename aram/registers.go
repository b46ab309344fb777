package aram

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ParseRegisters evaluates expr, a Starlark dict expression such as
// `{1: 5, 2: 3 * 4}`, into an initial register bank. An empty expression
// is an empty bank.
func ParseRegisters(expr string) (registers map[int]int64, err error) {
	registers = map[int]int64{}
	if len(strings.TrimSpace(expr)) == 0 {
		return
	}

	thread := starlark.Thread{Name: "registers"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	globals, err := starlark.ExecFileOptions(&opts, &thread, "registers", prog, nil)
	if err != nil {
		err = ErrRegistersSyntax{Expr: expr, Err: err}
		return
	}

	dict, ok := globals["rc"].(*starlark.Dict)
	if !ok {
		err = ErrRegistersType(expr)
		return
	}

	for _, item := range dict.Items() {
		key, ok := item[0].(starlark.Int)
		if !ok {
			err = ErrRegisterAddress(item[0].String())
			return
		}
		addr, ok := key.Int64()
		if !ok || addr < 0 || int64(int(addr)) != addr {
			err = ErrRegisterAddress(key.String())
			return
		}
		value, ok := item[1].(starlark.Int)
		if !ok {
			err = ErrRegisterValue(item[1].String())
			return
		}
		v64, ok := value.Int64()
		if !ok {
			err = ErrRegisterValue(value.String())
			return
		}
		registers[int(addr)] = v64
	}

	return
}
