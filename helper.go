package hbswitch

import (
	"fmt"
	"strings"
	"sync"
)

// Helper is the renderable helper contract. A helper receives the
// invocation through opts and returns a value to write into the output. For
// block helpers the returned value is usually the rendered body obtained
// from opts.Fn. Returning nil writes nothing.
type Helper interface {
	Call(opts *Options) (interface{}, error)
}

// HelperFunc adapts a plain function to the Helper interface.
type HelperFunc func(opts *Options) (interface{}, error)

// Call invokes the function.
func (f HelperFunc) Call(opts *Options) (interface{}, error) {
	return f(opts)
}

// Options describes one helper invocation: the evaluated positional
// arguments and, for block helpers, the nested template body. It also gives
// helpers access to the scoped rendering context so they can push and pop
// block-local state around the body render.
type Options struct {
	rc      *renderContext
	name    string
	params  []interface{}
	program *programNode
	inverse *programNode
}

// Name returns the helper name used in the template.
func (o *Options) Name() string {
	return o.name
}

// ParamCount returns the number of positional arguments.
func (o *Options) ParamCount() int {
	return len(o.params)
}

// Param returns the positional argument at pos, or nil when out of range.
func (o *Options) Param(pos int) interface{} {
	if pos < 0 || pos >= len(o.params) {
		return nil
	}
	return o.params[pos]
}

// ParamStr returns the positional argument at pos as a string.
func (o *Options) ParamStr(pos int) string {
	return Str(o.Param(pos))
}

// Params returns all positional arguments.
func (o *Options) Params() []interface{} {
	return o.params
}

// Ctx returns the current data context.
func (o *Options) Ctx() interface{} {
	return o.rc.contextAt(0)
}

// Fn renders the helper's body under the current rendering context. A
// helper with no body renders the empty string and succeeds.
func (o *Options) Fn() (string, error) {
	return o.renderProgram(o.program)
}

// Inverse renders the {{else}} section of the block, if any.
func (o *Options) Inverse() (string, error) {
	return o.renderProgram(o.inverse)
}

func (o *Options) renderProgram(p *programNode) (string, error) {
	if p == nil {
		return "", nil
	}
	var out strings.Builder
	if err := p.execute(o.rc, &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

// PushBlock pushes a block context for the duration of a body render. The
// caller must pop it on every exit path, normally with defer.
func (o *Options) PushBlock(b *BlockContext) {
	o.rc.pushBlock(b)
}

// PopBlock pops the innermost block context.
func (o *Options) PopBlock() {
	o.rc.popBlock()
}

// Global helper registry, shared by all engines. Block-local and
// engine-level helpers take precedence over it.
var (
	globalHelpersMu sync.RWMutex
	globalHelpers   = map[string]Helper{}
)

// RegisterHelper registers a helper in the global registry. It panics on an
// empty name, a nil helper, or a name that is already taken.
func RegisterHelper(name string, helper Helper) {
	if name == "" {
		panic(fmt.Errorf("helper name is required"))
	}
	if helper == nil {
		panic(fmt.Errorf("helper %q: implementation is required", name))
	}

	globalHelpersMu.Lock()
	defer globalHelpersMu.Unlock()

	if _, ok := globalHelpers[name]; ok {
		panic(fmt.Errorf("helper %q: already registered", name))
	}
	globalHelpers[name] = helper
}

func globalHelper(name string) (Helper, bool) {
	globalHelpersMu.RLock()
	defer globalHelpersMu.RUnlock()
	h, ok := globalHelpers[name]
	return h, ok
}
