package hbswitch

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type tokenType int

const (
	tokenText      tokenType = iota // literal template text
	tokenOpen                       // {{
	tokenOpenRaw                    // {{{
	tokenOpenBlock                  // {{#
	tokenOpenEnd                    // {{/
	tokenClose                      // }}
	tokenCloseRaw                   // }}}
	tokenWord                       // path, literal or helper name inside a tag
	tokenString                     // quoted string inside a tag
	tokenEOF
	tokenError
)

func (t tokenType) String() string {
	switch t {
	case tokenText:
		return "text"
	case tokenOpen:
		return "{{"
	case tokenOpenRaw:
		return "{{{"
	case tokenOpenBlock:
		return "{{#"
	case tokenOpenEnd:
		return "{{/"
	case tokenClose:
		return "}}"
	case tokenCloseRaw:
		return "}}}"
	case tokenWord:
		return "word"
	case tokenString:
		return "string"
	case tokenEOF:
		return "EOF"
	}
	return "error"
}

type token struct {
	typ tokenType
	val string
	pos int
}

func (t token) String() string {
	if t.typ == tokenWord || t.typ == tokenString || t.typ == tokenText || t.typ == tokenError {
		return fmt.Sprintf("%s(%q)", t.typ, t.val)
	}
	return t.typ.String()
}

const eof rune = -1

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

type lexer struct {
	input string
	start int
	pos   int
	width int
	raw   bool // inside a {{{ tag
	toks  []token
}

type lexerState func(l *lexer) lexerState

// lex tokenizes a template source. Errors are reported in-band as a final
// tokenError; the parser turns them into parse errors.
func lex(input string) []token {
	l := &lexer{input: input}
	for state := lexText; state != nil; {
		state = state(l)
	}
	return l.toks
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
	l.width = 0
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) advance() {
	l.start = l.pos
}

func (l *lexer) emit(typ tokenType) {
	l.toks = append(l.toks, token{typ: typ, val: l.input[l.start:l.pos], pos: l.start})
	l.advance()
}

func (l *lexer) errorf(format string, args ...interface{}) lexerState {
	l.toks = append(l.toks, token{typ: tokenError, val: fmt.Sprintf(format, args...), pos: l.pos})
	return nil
}

func lexText(l *lexer) lexerState {
	for {
		if strings.HasPrefix(l.input[l.pos:], openDelim) {
			if l.pos > l.start {
				l.emit(tokenText)
			}
			return lexOpenDelim
		}
		if l.next() == eof {
			break
		}
	}
	if l.pos > l.start {
		l.emit(tokenText)
	}
	l.emit(tokenEOF)
	return nil
}

func lexOpenDelim(l *lexer) lexerState {
	l.pos += len(openDelim)
	l.raw = false

	switch l.peek() {
	case '{':
		l.next()
		l.raw = true
		l.emit(tokenOpenRaw)
	case '#':
		l.next()
		l.emit(tokenOpenBlock)
	case '/':
		l.next()
		l.emit(tokenOpenEnd)
	case '!':
		return lexComment
	default:
		l.emit(tokenOpen)
	}
	return lexInsideTag
}

// lexComment consumes a {{! ... }} or {{!-- ... --}} comment without
// emitting anything.
func lexComment(l *lexer) lexerState {
	end := closeDelim
	if strings.HasPrefix(l.input[l.pos:], "!--") {
		end = "--" + closeDelim
	}
	i := strings.Index(l.input[l.pos:], end)
	if i < 0 {
		return l.errorf("unterminated comment")
	}
	l.pos += i + len(end)
	l.advance()
	return lexText
}

func lexInsideTag(l *lexer) lexerState {
	for {
		if strings.HasPrefix(l.input[l.pos:], closeDelim) {
			if l.raw {
				if !strings.HasPrefix(l.input[l.pos:], closeDelim+"}") {
					return l.errorf("raw tag not closed with }}}")
				}
				l.pos += len(closeDelim) + 1
				l.emit(tokenCloseRaw)
			} else {
				l.pos += len(closeDelim)
				l.emit(tokenClose)
			}
			return lexText
		}

		switch r := l.next(); {
		case r == eof:
			return l.errorf("unclosed tag")
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			l.advance()
		case r == '"' || r == '\'':
			l.backup()
			if next := lexQuoted(l); next != nil {
				return next
			}
		case r == '}' || r == '{':
			return l.errorf("unexpected %q in tag", r)
		default:
			l.backup()
			if next := lexWord(l); next != nil {
				return next
			}
		}
	}
}

// lexQuoted consumes a single- or double-quoted string and emits its
// contents without the quotes. It returns a non-nil state only on error.
func lexQuoted(l *lexer) lexerState {
	quote := l.next()
	l.advance()
	for {
		r := l.next()
		if r == eof {
			return l.errorf("unterminated string")
		}
		if r == quote {
			l.backup()
			l.emit(tokenString)
			l.next()
			l.advance()
			return nil
		}
	}
}

// lexWord consumes a run of non-delimiter characters: a path, a number, a
// boolean, or a helper name. It returns a non-nil state only on error.
func lexWord(l *lexer) lexerState {
	for {
		r := l.next()
		if r == eof {
			return l.errorf("unclosed tag")
		}
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '}' || r == '{' || r == '"' || r == '\'' {
			l.backup()
			break
		}
	}
	l.emit(tokenWord)
	return nil
}
