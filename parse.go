package hbswitch

import (
	"fmt"
	"strconv"
	"strings"
)

// node is one element of a compiled template. Nodes render themselves
// against the current render context.
type node interface {
	execute(rc *renderContext, out *strings.Builder) error
}

// programNode is an ordered sequence of nodes: a whole template or the body
// of a block.
type programNode struct {
	nodes []node
}

type textNode struct {
	text string
}

type mustacheNode struct {
	expr *expression
	raw  bool
}

type blockNode struct {
	name    string
	expr    *expression
	program *programNode
	inverse *programNode
}

// expression is the inside of a tag: a head followed by zero or more
// positional arguments, all evaluated against the data context.
type expression struct {
	head     argument
	headWord string // raw source word when the head is not a string literal
	params   []argument
}

// helperName returns the name this expression can dispatch to a helper
// under: a bare single-part path. Everything else ("" result) is data-only.
func (e *expression) helperName() string {
	p := e.head.path
	if p == nil || p.data || p.scoped || p.depth > 0 || len(p.parts) != 1 {
		return ""
	}
	return p.parts[0]
}

// argument is a literal value or a path to resolve at render time.
type argument struct {
	lit   interface{}
	isLit bool
	path  *pathExpr
}

func (a argument) value(rc *renderContext) interface{} {
	if a.isLit {
		return a.lit
	}
	return a.path.resolve(rc)
}

// parseArgument classifies one tag word: boolean, null, number, or path.
func parseArgument(word string) argument {
	switch word {
	case "true":
		return argument{lit: true, isLit: true}
	case "false":
		return argument{lit: false, isLit: true}
	case "null", "undefined":
		return argument{lit: nil, isLit: true}
	}
	if i, err := strconv.ParseInt(word, 10, 64); err == nil {
		return argument{lit: i, isLit: true}
	}
	if f, err := strconv.ParseFloat(word, 64); err == nil {
		return argument{lit: f, isLit: true}
	}
	return argument{path: parsePath(word)}
}

type parser struct {
	toks []token
	pos  int
}

// parse compiles a template source into its root program.
func parse(source string) (*programNode, error) {
	p := &parser{toks: lex(source)}
	prog, _, err := p.parseNodes("")
	return prog, err
}

func (p *parser) next() token {
	if p.pos >= len(p.toks) {
		return token{typ: tokenEOF}
	}
	tok := p.toks[p.pos]
	p.pos++
	return tok
}

func (p *parser) errorf(tok token, format string, args ...interface{}) error {
	return fmt.Errorf("parse error at offset %d: %s", tok.pos, fmt.Sprintf(format, args...))
}

// parseNodes collects nodes until the end of input (top level) or the
// matching {{/blockName}} tag. An {{else}} mustache splits the collection
// into program and inverse.
func (p *parser) parseNodes(blockName string) (*programNode, *programNode, error) {
	prog := &programNode{}
	var inverse *programNode
	cur := prog

	for {
		tok := p.next()
		switch tok.typ {
		case tokenEOF:
			if blockName != "" {
				return nil, nil, p.errorf(tok, "unclosed block %q", blockName)
			}
			return prog, inverse, nil

		case tokenError:
			return nil, nil, p.errorf(tok, "%s", tok.val)

		case tokenText:
			cur.nodes = append(cur.nodes, &textNode{text: tok.val})

		case tokenOpen, tokenOpenRaw:
			closeTyp := tokenClose
			if tok.typ == tokenOpenRaw {
				closeTyp = tokenCloseRaw
			}
			expr, err := p.parseExpression(tok, closeTyp)
			if err != nil {
				return nil, nil, err
			}
			if expr.headWord == "else" && len(expr.params) == 0 {
				if blockName == "" {
					return nil, nil, p.errorf(tok, "{{else}} outside of a block")
				}
				if inverse != nil {
					return nil, nil, p.errorf(tok, "duplicate {{else}} in block %q", blockName)
				}
				inverse = &programNode{}
				cur = inverse
				continue
			}
			cur.nodes = append(cur.nodes, &mustacheNode{expr: expr, raw: closeTyp == tokenCloseRaw})

		case tokenOpenBlock:
			expr, err := p.parseExpression(tok, tokenClose)
			if err != nil {
				return nil, nil, err
			}
			if expr.headWord == "" {
				return nil, nil, p.errorf(tok, "block name must be an identifier")
			}
			body, bodyInverse, err := p.parseNodes(expr.headWord)
			if err != nil {
				return nil, nil, err
			}
			cur.nodes = append(cur.nodes, &blockNode{
				name:    expr.headWord,
				expr:    expr,
				program: body,
				inverse: bodyInverse,
			})

		case tokenOpenEnd:
			name := p.next()
			if name.typ != tokenWord {
				return nil, nil, p.errorf(name, "expected block name in closing tag, got %s", name)
			}
			if closing := p.next(); closing.typ != tokenClose {
				return nil, nil, p.errorf(closing, "expected }} to close {{/%s, got %s", name.val, closing)
			}
			if blockName == "" {
				return nil, nil, p.errorf(tok, "unexpected closing tag {{/%s}}", name.val)
			}
			if name.val != blockName {
				return nil, nil, p.errorf(tok, "mismatched closing tag: expected {{/%s}}, got {{/%s}}", blockName, name.val)
			}
			return prog, inverse, nil

		default:
			return nil, nil, p.errorf(tok, "unexpected %s", tok)
		}
	}
}

// parseExpression reads the arguments of a tag up to its closing delimiter.
func (p *parser) parseExpression(open token, closeTyp tokenType) (*expression, error) {
	var args []argument
	headWord := ""

	for {
		tok := p.next()
		switch tok.typ {
		case closeTyp:
			if len(args) == 0 {
				return nil, p.errorf(open, "empty tag")
			}
			return &expression{head: args[0], headWord: headWord, params: args[1:]}, nil

		case tokenWord:
			if len(args) == 0 {
				headWord = tok.val
			}
			args = append(args, parseArgument(tok.val))

		case tokenString:
			args = append(args, argument{lit: tok.val, isLit: true})

		case tokenError:
			return nil, p.errorf(tok, "%s", tok.val)

		case tokenEOF:
			return nil, p.errorf(open, "unclosed tag")

		default:
			return nil, p.errorf(tok, "unexpected %s in tag", tok)
		}
	}
}
