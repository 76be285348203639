package hbswitch

import (
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/aymerick/raymond"
)

func (p *programNode) execute(rc *renderContext, out *strings.Builder) error {
	for _, n := range p.nodes {
		if err := n.execute(rc, out); err != nil {
			return err
		}
	}
	return nil
}

func (t *textNode) execute(_ *renderContext, out *strings.Builder) error {
	out.WriteString(t.text)
	return nil
}

func (m *mustacheNode) execute(rc *renderContext, out *strings.Builder) error {
	// Helpers take precedence over data fields of the same name.
	if name := m.expr.helperName(); name != "" {
		if h, ok := rc.lookupHelper(name); ok {
			result, err := callHelper(h, name, m.expr, rc, nil)
			if err != nil {
				return err
			}
			writeValue(out, result, m.raw)
			return nil
		}
	}

	if len(m.expr.params) > 0 {
		return fmt.Errorf("%w %q", ErrUnknownHelper, m.expr.headWord)
	}

	// Plain mustaches are lenient: an undefined path renders empty.
	writeValue(out, m.expr.head.value(rc), m.raw)
	return nil
}

func (b *blockNode) execute(rc *renderContext, out *strings.Builder) error {
	if b.expr.helperName() != "" {
		if h, ok := rc.lookupHelper(b.name); ok {
			result, err := callHelper(h, b.name, b.expr, rc, b)
			if err != nil {
				return err
			}
			// Block helper output is already-rendered body content; write
			// it without re-escaping.
			if result != nil {
				out.WriteString(Str(result))
			}
			return nil
		}
	}

	// No helper bound under this name. A path over a defined value gets
	// section semantics; anything else is a dispatch failure. This is what
	// makes {{#case}}/{{#default}} outside a {{#switch}} an error instead
	// of silent empty output.
	if len(b.expr.params) > 0 || b.expr.head.path == nil {
		return fmt.Errorf("%w %q", ErrUnknownHelper, b.name)
	}
	value := b.expr.head.value(rc)
	if value == nil {
		return fmt.Errorf("%w %q", ErrUnknownHelper, b.name)
	}
	return b.executeSection(rc, out, value)
}

// executeSection renders a helperless block over a data value: iterate
// slices, push truthy values as the new context, fall back to the {{else}}
// section for falsy ones.
func (b *blockNode) executeSection(rc *renderContext, out *strings.Builder, value interface{}) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if rv.Len() == 0 {
			return b.executeInverse(rc, out)
		}
		for i := 0; i < rv.Len(); i++ {
			if err := b.renderWith(rc, out, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}

	if !Truthy(value) {
		return b.executeInverse(rc, out)
	}
	return b.renderWith(rc, out, value)
}

func (b *blockNode) renderWith(rc *renderContext, out *strings.Builder, ctx interface{}) error {
	rc.pushContext(ctx)
	defer rc.popContext()
	return b.program.execute(rc, out)
}

func (b *blockNode) executeInverse(rc *renderContext, out *strings.Builder) error {
	if b.inverse == nil {
		return nil
	}
	return b.inverse.execute(rc, out)
}

// callHelper evaluates the expression's arguments and invokes the helper.
// For block invocations the body and else sections are attached so the
// helper can render them on demand.
func callHelper(h Helper, name string, expr *expression, rc *renderContext, block *blockNode) (interface{}, error) {
	params := make([]interface{}, 0, len(expr.params))
	for _, arg := range expr.params {
		params = append(params, arg.value(rc))
	}

	opts := &Options{rc: rc, name: name, params: params}
	if block != nil {
		opts.program = block.program
		opts.inverse = block.inverse
	}
	return h.Call(opts)
}

// writeValue writes a mustache result. SafeString values and raw mustaches
// bypass HTML escaping.
func writeValue(out *strings.Builder, value interface{}, raw bool) {
	if value == nil {
		return
	}
	if s, ok := value.(raymond.SafeString); ok {
		out.WriteString(string(s))
		return
	}
	s := Str(value)
	if !raw {
		s = html.EscapeString(s)
	}
	out.WriteString(s)
}
