package scripting

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dop251/goja"
)

// scriptAPI is the `harlog` global object exposed to filters.
type scriptAPI struct {
	logs []string
}

func (a *scriptAPI) registerOnRuntime(vm *goja.Runtime) {
	obj := vm.NewObject()

	// Logging
	obj.Set("log", func(call goja.FunctionCall) goja.Value {
		args := make([]interface{}, len(call.Arguments))
		for i, arg := range call.Arguments {
			args[i] = arg.Export()
		}
		a.logs = append(a.logs, fmt.Sprint(args...))
		return goja.Undefined()
	})

	// header(pairs, name) returns the first matching value, ignoring case.
	obj.Set("header", func(call goja.FunctionCall) goja.Value {
		pairs, _ := call.Argument(0).Export().([]interface{})
		name := call.Argument(1).String()
		for _, p := range pairs {
			m, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			if n, _ := m["name"].(string); strings.EqualFold(n, name) {
				v, _ := m["value"].(string)
				return vm.ToValue(v)
			}
		}
		return goja.Undefined()
	})

	// body(part) returns the text of a postData or content object, decoding
	// base64 payloads.
	obj.Set("body", func(call goja.FunctionCall) goja.Value {
		m, ok := call.Argument(0).Export().(map[string]interface{})
		if !ok {
			return vm.ToValue("")
		}
		text, _ := m["text"].(string)
		if enc, _ := m["encoding"].(string); enc == "base64" {
			decoded, err := base64.StdEncoding.DecodeString(text)
			if err != nil {
				return vm.ToValue("")
			}
			return vm.ToValue(string(decoded))
		}
		return vm.ToValue(text)
	})

	vm.Set("harlog", obj)
}
