// Package scripting evaluates JavaScript filter expressions against entries.
package scripting

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dop251/goja"

	"github.com/sadopc/harlog/internal/har"
)

// Engine compiles filter expressions.
type Engine struct {
	timeout time.Duration
}

// NewEngine creates a new scripting engine with the given per-evaluation
// timeout.
func NewEngine(timeout time.Duration) *Engine {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Engine{timeout: timeout}
}

// Filter is a compiled expression. The entry being tested is the global
// `entry`, shaped exactly like its JSON.
type Filter struct {
	source  string
	prog    *goja.Program
	timeout time.Duration
}

// Result holds one evaluation.
type Result struct {
	Matched bool
	Logs    []string
	Err     error
}

// Compile parses expr. A syntax error is reported here rather than on
// every entry.
func (e *Engine) Compile(expr string) (*Filter, error) {
	prog, err := goja.Compile("filter", expr, false)
	if err != nil {
		return nil, fmt.Errorf("compiling filter: %w", err)
	}
	return &Filter{source: expr, prog: prog, timeout: e.timeout}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.source
}

// Match reports whether the expression is truthy for the entry.
func (f *Filter) Match(raw json.RawMessage) (bool, error) {
	res := f.Eval(raw)
	return res.Matched, res.Err
}

// MatchEntry is Match for a decoded entry.
func (f *Filter) MatchEntry(e har.Entry) (bool, error) {
	raw, err := har.MarshalEntry(e)
	if err != nil {
		return false, err
	}
	return f.Match(raw)
}

// Eval runs the expression against one entry in a fresh runtime.
func (f *Filter) Eval(raw json.RawMessage) *Result {
	vm := goja.New()
	api := &scriptAPI{}
	api.registerOnRuntime(vm)

	entry, err := parseJSON(vm, raw)
	if err != nil {
		return &Result{Err: fmt.Errorf("exposing entry: %w", err)}
	}
	vm.Set("entry", entry)

	v, err := f.run(vm)
	if err != nil {
		return &Result{Logs: api.logs, Err: err}
	}
	return &Result{Matched: v.ToBoolean(), Logs: api.logs}
}

func (f *Filter) run(vm *goja.Runtime) (goja.Value, error) {
	// Set up timeout via context
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	// Interrupt VM on timeout
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt("script timeout exceeded")
		case <-done:
		}
	}()

	v, err := vm.RunProgram(f.prog)
	close(done)

	if err != nil {
		return nil, fmt.Errorf("script error: %w", err)
	}
	return v, nil
}

// parseJSON builds native JS values with the runtime's own JSON.parse so
// array methods and property enumeration behave as scripts expect.
func parseJSON(vm *goja.Runtime, raw json.RawMessage) (goja.Value, error) {
	parse, ok := goja.AssertFunction(vm.Get("JSON").ToObject(vm).Get("parse"))
	if !ok {
		return nil, fmt.Errorf("JSON.parse unavailable")
	}
	return parse(goja.Undefined(), vm.ToValue(string(raw)))
}
