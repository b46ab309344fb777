package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const factorial = `load 1
jzero return_one
sub #1
jzero return_one
load 1
store 2
loop: load 1
sub #1
jzero break
store 1
mul 2
store 2
goto loop
return_one: load #1
end
break: load 2
end
`

func doRun(stdin string, args ...string) (code int, stdout string, stderr string) {
	var out, errs bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errs)
	return code, out.String(), errs.String()
}

func TestRunFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "fact.aram")
	assert.NoError(os.WriteFile(path, []byte(factorial), 0o644))

	code, stdout, stderr := doRun("", "-json", "-r", "{1: 5}", "-c", path)
	assert.Equal(EXIT_OK, code, stderr)
	assert.JSONEq(`{"accumulator":120,"registers":{"1":1,"2":120}}`, stdout)

	// A positional argument that names a file is read too.
	code, stdout, _ = doRun("", "-r", "{1: 4}", path)
	assert.Equal(EXIT_OK, code)
	assert.Contains(stdout, "acc")
	assert.Contains(stdout, "24")

	code, _, stderr = doRun("", "-c", filepath.Join(t.TempDir(), "missing.aram"))
	assert.Equal(EXIT_SYSTEM, code)
	assert.Contains(stderr, "missing.aram")
}

func TestRunText(t *testing.T) {
	assert := assert.New(t)

	code, stdout, stderr := doRun("", "-json", "load #3\nadd #4\nstore 2\nend")
	assert.Equal(EXIT_OK, code, stderr)
	assert.JSONEq(`{"accumulator":7,"registers":{"2":7}}`, stdout)

	code, stdout, stderr = doRun("load #9\nend\n", "-json")
	assert.Equal(EXIT_OK, code, stderr)
	assert.JSONEq(`{"accumulator":9,"registers":{}}`, stdout)
}

func TestRunErrors(t *testing.T) {
	assert := assert.New(t)

	code, stdout, stderr := doRun("", "-json", "store #3")
	assert.Equal(EXIT_USER, code)
	assert.JSONEq(`[{"line":1,"message":"'store' does not accept immediate argument '#3'"}]`, stdout)
	assert.Contains(stderr, "line 1")

	code, stdout, stderr = doRun("", "-json", "load #1\ndiv 2\nend")
	assert.Equal(EXIT_USER, code)
	assert.JSONEq(`{"message":"line 2 division by zero"}`, stdout)
	assert.Contains(stderr, "division by zero")

	code, _, stderr = doRun("", "-max-steps", "20", "x: goto x")
	assert.Equal(EXIT_USER, code)
	assert.Contains(stderr, "step limit exceeded")

	code, _, stderr = doRun("", "-r", "{1: ", "end")
	assert.Equal(EXIT_USER, code)
	assert.Contains(stderr, "-r")

	code, _, _ = doRun("", "one", "two")
	assert.Equal(EXIT_USER, code)

	code, _, _ = doRun("", "-no-such-flag")
	assert.Equal(EXIT_USER, code)

	code, _, _ = doRun("", "-h")
	assert.Equal(EXIT_OK, code)
}

func TestCheck(t *testing.T) {
	assert := assert.New(t)

	code, stdout, _ := doRun(factorial, "-check", "-json")
	assert.Equal(EXIT_OK, code)
	assert.JSONEq(`[]`, stdout)

	code, _, stderr := doRun("goto nowhere\n", "-check")
	assert.Equal(EXIT_USER, code)
	assert.Contains(stderr, "undefined label 'nowhere'")
}

func TestAnalyze(t *testing.T) {
	assert := assert.New(t)

	code, stdout, _ := doRun("load #1 // one\nend", "-analyze")
	assert.Equal(EXIT_OK, code)

	var lines [][]map[string]any
	assert.NoError(json.Unmarshal([]byte(stdout), &lines))
	assert.Len(lines, 2)
	assert.Equal("load", lines[0][0]["kind"])
	assert.Equal("comment", lines[0][2]["kind"])
	assert.Equal("end", lines[1][0]["lexeme"])
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	code, stdout, _ := doRun("", "-l", "-check", "top: load #1\njnzero top\nend")
	assert.Equal(EXIT_OK, code)
	assert.Contains(stdout, "top")
	assert.Contains(stdout, "jnzero top")
	assert.Contains(stdout, "load #1")
}
