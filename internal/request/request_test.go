package request

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/buildarray/internal/scalar"
	"github.com/roach88/buildarray/internal/unify"
)

func compile(t *testing.T, src, path string) (*Request, error) {
	t.Helper()
	v := cuecontext.New().CompileString(src)
	require.NoError(t, v.Err())
	return CompileRequest(v.LookupPath(cue.ParsePath(path)))
}

func TestCompileRequestDemo(t *testing.T) {
	req, err := compile(t, `
		build: demo: {
			description: "mixed scalars"
			args: [1, "0u", "'a'", "3.2f", false]
		}
	`, "build.demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", req.Name)
	assert.Equal(t, "mixed scalars", req.Description)
	assert.Equal(t, []any{1, uint32(0), 'a', float32(3.2), false}, req.Args)

	c, err := req.Build()
	require.NoError(t, err)
	assert.Equal(t, scalar.Float32, c.Kind())
	assert.Equal(t, "1 0 97 3.2 0", c.String())
}

func TestCompileRequestCUEKinds(t *testing.T) {
	req, err := compile(t, `build: kinds: args: [7, 2.5, true]`, "build.kinds")
	require.NoError(t, err)
	assert.Equal(t, []any{7, 2.5, true}, req.Args)
}

func TestCompileRequestEmptyArgs(t *testing.T) {
	req, err := compile(t, `build: none: args: []`, "build.none")
	require.NoError(t, err)
	assert.Empty(t, req.Args)

	c, err := req.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestCompileRequestStringStaysString(t *testing.T) {
	req, err := compile(t, `build: packt: args: [1, "Packt", 2.0]`, "build.packt")
	require.NoError(t, err)
	assert.Equal(t, []any{1, "Packt", 2.0}, req.Args)

	_, err = req.Build()
	var nct *unify.NoCommonTypeError
	require.ErrorAs(t, err, &nct)
	assert.Equal(t, 1, nct.Index)
}

func TestCompileRequestAggregateFailsToUnify(t *testing.T) {
	req, err := compile(t, `build: agg: args: [1, {a: 1}]`, "build.agg")
	require.NoError(t, err)

	_, err = req.Build()
	var nct *unify.NoCommonTypeError
	require.ErrorAs(t, err, &nct)
	assert.Equal(t, "map[string]interface {}", nct.Type)
}

func TestCompileRequestMissingArgs(t *testing.T) {
	_, err := compile(t, `build: bad: description: "no args"`, "build.bad")
	require.Error(t, err)

	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, "args", compileErr.Field)
}

func TestCompileRequestArgsNotList(t *testing.T) {
	_, err := compile(t, `build: bad: args: 3`, "build.bad")

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "args must be a list", compileErr.Message)
}

func TestCompileRequestIncompleteArg(t *testing.T) {
	_, err := compile(t, `build: bad: args: [1, int]`, "build.bad")

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Contains(t, compileErr.Message, "args[1]")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "requests.cue", `
build: zeta: args: [true, false]
build: alpha: args: [1, "0u"]
`)

	result, errs := Load(path, LoadModeCollectAll)
	require.Empty(t, errs)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.FileCount)
	require.Len(t, result.Requests, 2)
	assert.Equal(t, "alpha", result.Requests[0].Name)
	assert.Equal(t, "zeta", result.Requests[1].Name)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.cue", `package requests

build: demo: args: [1, "0u", "'a'", "3.2f", false]`)
	writeFile(t, dir, "b.cue", `package requests

build: ints: args: ["int8(1)", 2]`)

	result, errs := Load(dir, LoadModeCollectAll)
	require.Empty(t, errs)
	assert.Equal(t, 2, result.FileCount)
	require.Len(t, result.Requests, 2)
	assert.Equal(t, "demo", result.Requests[0].Name)
	assert.Equal(t, []any{int8(1), 2}, result.Requests[1].Args)
}

func TestLoadNotFound(t *testing.T) {
	result, errs := Load(filepath.Join(t.TempDir(), "missing.cue"), LoadModeCollectAll)
	assert.Nil(t, result)
	require.Len(t, errs, 1)

	var loadErr *LoadError
	require.ErrorAs(t, errs[0], &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadEmptyDirectory(t *testing.T) {
	_, errs := Load(t.TempDir(), LoadModeCollectAll)
	require.Len(t, errs, 1)

	var loadErr *LoadError
	require.ErrorAs(t, errs[0], &loadErr)
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.cue", `build: demo: args: [1,`)

	_, errs := Load(path, LoadModeCollectAll)
	require.Len(t, errs, 1)

	var loadErr *LoadError
	require.ErrorAs(t, errs[0], &loadErr)
	assert.Equal(t, ErrCodeBuildFailed, loadErr.Code)
}

func TestLoadNoRequests(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.cue", `other: 1`)

	_, errs := Load(path, LoadModeCollectAll)
	require.Len(t, errs, 1)

	var loadErr *LoadError
	require.ErrorAs(t, errs[0], &loadErr)
	assert.Equal(t, ErrCodeNoRequests, loadErr.Code)
}

func TestLoadModes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "mixed.cue", `
build: a: description: "missing args"
build: b: args: 3
build: c: args: [1]
`)

	result, errs := Load(path, LoadModeCollectAll)
	require.Len(t, errs, 2)
	require.Len(t, result.Requests, 1)
	assert.Equal(t, "c", result.Requests[0].Name)

	var loadErr *LoadError
	require.ErrorAs(t, errs[1], &loadErr)
	assert.Equal(t, ErrCodeInvalidArgs, loadErr.Code)
	assert.Contains(t, loadErr.Message, "build.b")

	_, errs = Load(path, LoadModeFailFast)
	assert.Len(t, errs, 1)
}
