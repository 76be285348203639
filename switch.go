package hbswitch

import "fmt"

// matchVar is the block-local variable holding a switch scope's match
// flag. Templates can observe it as {{@match}} inside a switch body.
const matchVar = "match"

// SwitchHelper implements the {{#switch}} block.
//
// It captures the value of its single positional argument, pushes a fresh
// block context holding match=false, binds the scope-local {{#case}} and
// {{#default}} helpers into that context, renders its body, then pops the
// context. The pop happens on every exit path, so an error inside the body
// can never leave a stale scope or stale case/default bindings visible to
// whatever renders next.
//
// Every invocation gets its own scope: nesting a switch inside a case or
// default body shadows the outer case/default bindings for the extent of
// the inner body, and the two match flags are fully independent.
type SwitchHelper struct{}

// Call renders the switch body under a new matching scope.
func (SwitchHelper) Call(opts *Options) (interface{}, error) {
	if opts.ParamCount() == 0 {
		return nil, fmt.Errorf("helper %q: %w", opts.Name(), ErrMissingArgument)
	}
	value := opts.Param(0)

	scope := NewBlockContext()
	scope.SetLocal(matchVar, false)
	scope.RegisterHelper("case", &CaseHelper{value: value, scope: scope})
	scope.RegisterHelper("default", &DefaultHelper{scope: scope})

	opts.PushBlock(scope)
	defer opts.PopBlock()

	return opts.Fn()
}

// CaseHelper implements the {{#case}} block. One instance is constructed
// per switch invocation, closing over the captured switch value and the
// scope whose match flag it coordinates through; this is why case is only
// bound inside a {{#switch}} body.
type CaseHelper struct {
	value interface{}
	scope *BlockContext
}

// Call renders the case body when no earlier case in the same scope has
// matched and any of the case's argument values structurally equals the
// captured switch value. First match wins: the flag is set before the body
// renders, so later sibling cases and default stay inert even if they would
// also match.
func (h *CaseHelper) Call(opts *Options) (interface{}, error) {
	if scopeMatched(h.scope) {
		return nil, nil
	}

	for _, param := range opts.Params() {
		if Equal(param, h.value) {
			h.scope.SetLocal(matchVar, true)
			return opts.Fn()
		}
	}
	return nil, nil
}

// DefaultHelper implements the {{#default}} block for one switch scope. It
// renders its body exactly when no case has matched yet. It does not set
// the match flag itself, so a case placed after the default is still
// evaluated. Positional arguments are accepted and ignored.
type DefaultHelper struct {
	scope *BlockContext
}

// Call renders the default body when the scope's match flag is still unset.
func (h *DefaultHelper) Call(opts *Options) (interface{}, error) {
	if scopeMatched(h.scope) {
		return nil, nil
	}
	return opts.Fn()
}

// scopeMatched reads a switch scope's match flag.
func scopeMatched(scope *BlockContext) bool {
	v, _ := scope.Local(matchVar)
	matched, _ := v.(bool)
	return matched
}
