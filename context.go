package hbswitch

// BlockContext is the block-local state pushed around a block helper's body
// render. It holds named local variables (readable from templates through
// @name paths) and helper bindings that only exist while the block context
// is on the stack. Local bindings shadow engine and global helpers of the
// same name.
type BlockContext struct {
	vars    map[string]interface{}
	helpers map[string]Helper
}

// NewBlockContext creates an empty block context.
func NewBlockContext() *BlockContext {
	return &BlockContext{
		vars:    map[string]interface{}{},
		helpers: map[string]Helper{},
	}
}

// SetLocal sets a local variable in this block context.
func (b *BlockContext) SetLocal(name string, value interface{}) {
	b.vars[name] = value
}

// Local returns a local variable and whether it is defined.
func (b *BlockContext) Local(name string) (interface{}, bool) {
	v, ok := b.vars[name]
	return v, ok
}

// RegisterHelper binds a helper name for the lifetime of this block context.
func (b *BlockContext) RegisterHelper(name string, helper Helper) {
	b.helpers[name] = helper
}

// renderContext carries the mutable state of one render call: the data
// context stack (pushed by sections, popped on exit) and the block context
// stack (pushed by block helpers). A render context is never shared between
// goroutines; rendering is a single sequential traversal of the node tree.
type renderContext struct {
	engine   *Engine
	contexts []interface{}
	blocks   []*BlockContext
}

func newRenderContext(engine *Engine, data interface{}) *renderContext {
	return &renderContext{
		engine:   engine,
		contexts: []interface{}{data},
	}
}

func (rc *renderContext) pushContext(value interface{}) {
	rc.contexts = append(rc.contexts, value)
}

func (rc *renderContext) popContext() {
	rc.contexts = rc.contexts[:len(rc.contexts)-1]
}

// contextAt returns the data context depth levels above the current one,
// where depth 0 is the current context. Out of range resolves to nil, the
// same as any other missing value.
func (rc *renderContext) contextAt(depth int) interface{} {
	i := len(rc.contexts) - 1 - depth
	if i < 0 {
		return nil
	}
	return rc.contexts[i]
}

func (rc *renderContext) pushBlock(b *BlockContext) {
	rc.blocks = append(rc.blocks, b)
}

func (rc *renderContext) popBlock() {
	rc.blocks = rc.blocks[:len(rc.blocks)-1]
}

// lookupHelper resolves a helper name, innermost block context first, then
// the engine's helpers, then the global registry.
func (rc *renderContext) lookupHelper(name string) (Helper, bool) {
	for i := len(rc.blocks) - 1; i >= 0; i-- {
		if h, ok := rc.blocks[i].helpers[name]; ok {
			return h, true
		}
	}
	if h, ok := rc.engine.helper(name); ok {
		return h, true
	}
	return globalHelper(name)
}

// localVar resolves a block-local variable, innermost block context that
// defines it first.
func (rc *renderContext) localVar(name string) (interface{}, bool) {
	for i := len(rc.blocks) - 1; i >= 0; i-- {
		if v, ok := rc.blocks[i].Local(name); ok {
			return v, true
		}
	}
	return nil, false
}
