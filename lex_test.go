package hbswitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(toks []token) []tokenType {
	types := make([]tokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.typ
	}
	return types
}

func TestLexText(t *testing.T) {
	toks := lex("hello world")
	require.Equal(t, []tokenType{tokenText, tokenEOF}, tokenTypes(toks))
	assert.Equal(t, "hello world", toks[0].val)
}

func TestLexMustache(t *testing.T) {
	toks := lex("a {{user.name}} b")
	require.Equal(t,
		[]tokenType{tokenText, tokenOpen, tokenWord, tokenClose, tokenText, tokenEOF},
		tokenTypes(toks))
	assert.Equal(t, "user.name", toks[2].val)
}

func TestLexRawMustache(t *testing.T) {
	toks := lex("{{{html}}}")
	require.Equal(t,
		[]tokenType{tokenOpenRaw, tokenWord, tokenCloseRaw, tokenEOF},
		tokenTypes(toks))
}

func TestLexBlock(t *testing.T) {
	toks := lex(`{{#case "page1" "page2"}}x{{/case}}`)
	require.Equal(t, []tokenType{
		tokenOpenBlock, tokenWord, tokenString, tokenString, tokenClose,
		tokenText,
		tokenOpenEnd, tokenWord, tokenClose,
		tokenEOF,
	}, tokenTypes(toks))
	assert.Equal(t, "case", toks[1].val)
	assert.Equal(t, "page1", toks[2].val)
	assert.Equal(t, "page2", toks[3].val)
}

func TestLexSingleQuotedString(t *testing.T) {
	toks := lex(`{{#case 'one'}}{{/case}}`)
	require.Equal(t, tokenString, toks[2].typ)
	assert.Equal(t, "one", toks[2].val)
}

func TestLexNumberWord(t *testing.T) {
	toks := lex(`{{#case 4 -1.5}}{{/case}}`)
	require.Equal(t, tokenWord, toks[2].typ)
	assert.Equal(t, "4", toks[2].val)
	assert.Equal(t, "-1.5", toks[3].val)
}

func TestLexComments(t *testing.T) {
	toks := lex("a{{! note }}b")
	require.Equal(t, []tokenType{tokenText, tokenText, tokenEOF}, tokenTypes(toks))

	toks = lex("a{{!-- has {{tag}} --}}b")
	require.Equal(t, []tokenType{tokenText, tokenText, tokenEOF}, tokenTypes(toks))
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed tag", "{{name"},
		{"unterminated string", `{{#case "oops}}`},
		{"unterminated comment", "{{! forever"},
		{"raw tag closed with two braces", "{{{x}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lex(tt.input)
			require.NotEmpty(t, toks)
			assert.Equal(t, tokenError, toks[len(toks)-1].typ)
		})
	}
}
