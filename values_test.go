package hbswitch

import (
	"testing"

	"github.com/aymerick/raymond"
	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b interface{}
		want bool
	}{
		{"nil equals nil", nil, nil, true},
		{"nil never equals a value", nil, 0, false},
		{"value never equals nil", "", nil, false},

		{"same ints", 4, 4, true},
		{"int and int64", 4, int64(4), true},
		{"int and float64", 4, float64(4), true},
		{"uint and int", uint8(200), 200, true},
		{"different numbers", 4, 5, false},

		{"same strings", "page1", "page1", true},
		{"different strings", "page1", "page2", false},
		{"string and number", "4", 4, false},
		{"number and string", 4, "4", false},

		{"same bools", true, true, true},
		{"different bools", true, false, false},
		{"bool and number", true, 1, false},
		{"number and bool", 1, true, false},

		{"equal slices", []string{"a"}, []string{"a"}, true},
		{"different slices", []string{"a"}, []string{"b"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(false))
	assert.False(t, Truthy(0))
	assert.False(t, Truthy(0.0))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(raymond.SafeString("")))
	assert.False(t, Truthy([]string{}))
	assert.False(t, Truthy(map[string]interface{}{}))

	assert.True(t, Truthy(true))
	assert.True(t, Truthy(1))
	assert.True(t, Truthy(-0.5))
	assert.True(t, Truthy("no"))
	assert.True(t, Truthy(raymond.SafeString("x")))
	assert.True(t, Truthy([]string{"a"}))
	assert.True(t, Truthy(map[string]interface{}{"k": nil}))
	assert.True(t, Truthy(struct{}{}))
}

func TestStr(t *testing.T) {
	assert.Equal(t, "", Str(nil))
	assert.Equal(t, "hi", Str("hi"))
	assert.Equal(t, "4", Str(4))
	assert.Equal(t, "true", Str(true))
}
