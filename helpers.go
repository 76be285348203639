package hbswitch

import (
	"fmt"
	"reflect"
	"strings"
)

// registerBuiltins registers the switch/case/default entry point and the
// common string helpers on a new engine.
func (e *Engine) registerBuiltins() {
	e.RegisterHelper("switch", SwitchHelper{})

	// uppercase helper
	e.RegisterHelper("uppercase", HelperFunc(func(opts *Options) (interface{}, error) {
		return strings.ToUpper(opts.ParamStr(0)), nil
	}))

	// lowercase helper
	e.RegisterHelper("lowercase", HelperFunc(func(opts *Options) (interface{}, error) {
		return strings.ToLower(opts.ParamStr(0)), nil
	}))

	// trim helper
	e.RegisterHelper("trim", HelperFunc(func(opts *Options) (interface{}, error) {
		return strings.TrimSpace(opts.ParamStr(0)), nil
	}))

	// eq helper - structural equality, same value model as case matching
	e.RegisterHelper("eq", HelperFunc(func(opts *Options) (interface{}, error) {
		return Equal(opts.Param(0), opts.Param(1)), nil
	}))

	// ne helper - inequality
	e.RegisterHelper("ne", HelperFunc(func(opts *Options) (interface{}, error) {
		return !Equal(opts.Param(0), opts.Param(1)), nil
	}))

	// gt helper - greater than (for numbers)
	e.RegisterHelper("gt", HelperFunc(func(opts *Options) (interface{}, error) {
		a, aok := toFloat(opts.Param(0))
		b, bok := toFloat(opts.Param(1))
		return aok && bok && a > b, nil
	}))

	// lt helper - less than (for numbers)
	e.RegisterHelper("lt", HelperFunc(func(opts *Options) (interface{}, error) {
		a, aok := toFloat(opts.Param(0))
		b, bok := toFloat(opts.Param(1))
		return aok && bok && a < b, nil
	}))

	// contains helper - check if string contains substring
	e.RegisterHelper("contains", HelperFunc(func(opts *Options) (interface{}, error) {
		return strings.Contains(opts.ParamStr(0), opts.ParamStr(1)), nil
	}))

	// join helper - join array elements with separator
	e.RegisterHelper("join", HelperFunc(func(opts *Options) (interface{}, error) {
		sep := opts.ParamStr(1)
		rv := reflect.ValueOf(opts.Param(0))
		if opts.Param(0) == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return "", nil
		}
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = fmt.Sprint(rv.Index(i).Interface())
		}
		return strings.Join(parts, sep), nil
	}))

	// len helper - get length of array/string/map
	e.RegisterHelper("len", HelperFunc(func(opts *Options) (interface{}, error) {
		switch v := opts.Param(0).(type) {
		case string:
			return len(v), nil
		case []interface{}:
			return len(v), nil
		case map[string]interface{}:
			return len(v), nil
		}
		rv := reflect.ValueOf(opts.Param(0))
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
			return rv.Len(), nil
		}
		return 0, nil
	}))
}
