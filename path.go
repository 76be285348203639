package hbswitch

import (
	"reflect"
	"strconv"
	"strings"
)

// pathExpr is a parsed data path: an optional number of ../ steps up the
// context stack, an optional @ prefix selecting block-local variables, and
// a dotted field chain.
type pathExpr struct {
	original string
	depth    int
	parts    []string
	data     bool // @name: block-local variable
	scoped   bool // this or . prefix
}

// parsePath parses a path word. Missing segments resolve to nil at render
// time; parsing itself never fails.
func parsePath(word string) *pathExpr {
	p := &pathExpr{original: word}
	rest := word

	for strings.HasPrefix(rest, "../") {
		p.depth++
		rest = rest[len("../"):]
	}

	if strings.HasPrefix(rest, "@") {
		p.data = true
		rest = rest[1:]
	}

	switch {
	case rest == "." || rest == "this" || rest == "":
		p.scoped = true
		return p
	case strings.HasPrefix(rest, "./"):
		p.scoped = true
		rest = rest[len("./"):]
	case strings.HasPrefix(rest, "this."):
		p.scoped = true
		rest = rest[len("this."):]
	}

	p.parts = strings.Split(rest, ".")
	return p
}

// resolve evaluates the path against the render context. Undefined paths
// resolve to nil rather than failing; undefined is a legitimate value for
// comparisons and sections.
func (p *pathExpr) resolve(rc *renderContext) interface{} {
	if p.data {
		if len(p.parts) == 0 {
			return nil
		}
		base, ok := rc.localVar(p.parts[0])
		if !ok {
			return nil
		}
		return walkPath(base, p.parts[1:])
	}

	ctx := rc.contextAt(p.depth)
	return walkPath(ctx, p.parts)
}

// walkPath follows a field chain through maps, structs, pointers and
// indexable values. Any miss short-circuits to nil.
func walkPath(value interface{}, parts []string) interface{} {
	for _, part := range parts {
		if value == nil {
			return nil
		}
		value = fieldOf(value, part)
	}
	return value
}

func fieldOf(value interface{}, name string) interface{} {
	switch m := value.(type) {
	case map[string]interface{}:
		return m[name]
	case map[string]string:
		if v, ok := m[name]; ok {
			return v
		}
		return nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		f := rv.FieldByName(name)
		if f.IsValid() && f.CanInterface() {
			return f.Interface()
		}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			v := rv.MapIndex(reflect.ValueOf(name))
			if v.IsValid() {
				return v.Interface()
			}
		}
	case reflect.Slice, reflect.Array:
		if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < rv.Len() {
			return rv.Index(i).Interface()
		}
	}
	return nil
}
