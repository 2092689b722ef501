// Package parser implements the recursive-descent parser for the regex
// surface syntax:
//
//	expr    = suffix { suffix } ;
//	suffix  = term { '+' | '*' | '?' } ;
//	term    = '(' [ expr { '|' expr } ] ')'
//	        | literal ;
//	literal = any byte not in { '+', '*', '?', '(', ')', '|' }
//	        | '\' any byte ;
package parser

import (
	"github.com/dekarrin/fsmkit/fsmerr"
	"github.com/dekarrin/fsmkit/regex/ast"
)

// Parse parses pattern and returns the AST rooted at a single node, or a
// *fsmerr error (kind Parse or Unsupported) describing the first grammar
// violation encountered.
func Parse(pattern string) (ast.Node, error) {
	p := &parser{src: []byte(pattern)}

	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		// parseExpr stops only at a ')' or a '|'. A ')' left over here has
		// no matching '('; a '|' left over here is an alternation outside
		// any group, which the grammar does not allow.
		if p.peek() == '|' {
			return nil, fsmerr.Parse("unexpected character '%c'", rune('|'))
		}
		return nil, fsmerr.Parse("unmatched parentheses")
	}
	return node, nil
}

type parser struct {
	src []byte
	pos int
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	return c
}

// parseExpr = suffix { suffix }. A single child collapses to that child
// instead of being wrapped in Concat.
func (p *parser) parseExpr() (ast.Node, error) {
	first, err := p.parseSuffix()
	if err != nil {
		return nil, err
	}

	children := []ast.Node{first}
	for !p.atEnd() && p.peek() != ')' && p.peek() != '|' {
		n, err := p.parseSuffix()
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}

	if len(children) == 1 {
		return children[0], nil
	}
	return ast.Concat{Children: children}, nil
}

// parseSuffix = term { '+' | '*' | '?' }. Stacked postfix operators are
// left-associative: a*+ parses as Plus(Star(Char a)).
func (p *parser) parseSuffix() (ast.Node, error) {
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for !p.atEnd() {
		switch p.peek() {
		case '+':
			p.advance()
			n = ast.Plus{Child: n}
		case '*':
			p.advance()
			n = ast.Star{Child: n}
		case '?':
			p.advance()
			n = ast.Opt{Child: n}
		default:
			return n, nil
		}
	}
	return n, nil
}

// parseTerm = '(' [ expr { '|' expr } ] ')' | literal.
func (p *parser) parseTerm() (ast.Node, error) {
	if p.atEnd() {
		return nil, fsmerr.Parse("unexpected end of input")
	}

	switch c := p.peek(); c {
	case '(':
		return p.parseGroup()
	case ')':
		return nil, fsmerr.Parse("unmatched parentheses")
	case '+', '*', '?', '|':
		return nil, fsmerr.Parse("unexpected character '%c'", rune(c))
	case '\\':
		p.advance()
		if p.atEnd() {
			return nil, fsmerr.Parse("invalid escape sequence")
		}
		return ast.Char{Value: p.advance()}, nil
	default:
		return ast.Char{Value: p.advance()}, nil
	}
}

func (p *parser) parseGroup() (ast.Node, error) {
	p.advance() // '('

	var branches []ast.Node
	if !p.atEnd() && p.peek() != ')' {
		first, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		branches = append(branches, first)

		for !p.atEnd() && p.peek() == '|' {
			p.advance()
			n, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			branches = append(branches, n)
		}
	}

	if p.atEnd() || p.peek() != ')' {
		return nil, fsmerr.Parse("unmatched parentheses")
	}
	p.advance() // ')'

	switch len(branches) {
	case 0:
		// The grammar's '[ ... ]' makes the group body optional, but the
		// AST has no node representing an empty match, so there is nowhere
		// for "()" to compile to.
		return nil, fsmerr.Unsupported("empty group '()'")
	case 1:
		return branches[0], nil
	default:
		return ast.Alt{Children: branches}, nil
	}
}
