package hbswitch

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Engine compiles and renders templates, caching compiled templates by
// source. An Engine is safe for concurrent use.
type Engine struct {
	cache   map[string]*Template
	mu      sync.RWMutex
	helpers map[string]Helper
	hmu     sync.RWMutex
	logger  *zap.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for engine debug output. The default is
// a no-op logger.
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates a template engine with the switch/case/default block
// helpers and the built-in string helpers registered.
func NewEngine(opts ...EngineOption) *Engine {
	engine := &Engine{
		cache:   make(map[string]*Template),
		helpers: make(map[string]Helper),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(engine)
	}

	engine.registerBuiltins()

	return engine
}

// RegisterHelper registers a helper on this engine. Engine helpers shadow
// global helpers and are themselves shadowed by block-local bindings.
func (e *Engine) RegisterHelper(name string, helper Helper) {
	if name == "" {
		panic(fmt.Errorf("helper name is required"))
	}
	if helper == nil {
		panic(fmt.Errorf("helper %q: implementation is required", name))
	}

	e.hmu.Lock()
	defer e.hmu.Unlock()
	e.helpers[name] = helper
}

func (e *Engine) helper(name string) (Helper, bool) {
	e.hmu.RLock()
	defer e.hmu.RUnlock()
	h, ok := e.helpers[name]
	return h, ok
}

// Render renders a template with the given data.
func (e *Engine) Render(source string, data interface{}) (string, error) {
	tmpl, err := e.template(source)
	if err != nil {
		return "", fmt.Errorf("failed to compile template: %w", err)
	}

	result, err := tmpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return result, nil
}

// Parse compiles a template without caching it.
func (e *Engine) Parse(source string) (*Template, error) {
	program, err := parse(source)
	if err != nil {
		return nil, err
	}
	return &Template{engine: e, source: source, program: program}, nil
}

// template gets a compiled template from cache or compiles it.
func (e *Engine) template(source string) (*Template, error) {
	// Check cache first (read lock)
	e.mu.RLock()
	if tmpl, ok := e.cache[source]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	// Compile the template (write lock)
	e.mu.Lock()
	defer e.mu.Unlock()

	// Check again in case another goroutine compiled it
	if tmpl, ok := e.cache[source]; ok {
		return tmpl, nil
	}

	tmpl, err := e.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	e.logger.Debug("compiled template", zap.Int("source_len", len(source)))

	e.cache[source] = tmpl

	return tmpl, nil
}

// ValidateTemplate validates a template without rendering it.
func (e *Engine) ValidateTemplate(source string) error {
	_, err := parse(source)
	return err
}

// ClearCache clears the compiled template cache.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]*Template)
}

// Template is a compiled template bound to the engine that parsed it.
type Template struct {
	engine  *Engine
	source  string
	program *programNode
}

// Source returns the template source.
func (t *Template) Source() string {
	return t.source
}

// Exec renders the template with the given data.
func (t *Template) Exec(data interface{}) (string, error) {
	rc := newRenderContext(t.engine, data)
	var out strings.Builder
	if err := t.program.execute(rc, &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Render parses and renders a one-off template with a fresh engine. For
// repeated rendering, create an Engine and reuse its compile cache.
func Render(source string, data interface{}) (string, error) {
	return NewEngine().Render(source, data)
}

// MustRender renders a one-off template and panics on failure.
func MustRender(source string, data interface{}) string {
	result, err := Render(source, data)
	if err != nil {
		panic(err)
	}
	return result
}
