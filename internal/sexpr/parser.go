package sexpr

import (
	"fmt"
	"strconv"

	"github.com/gitrdm/eqsat/pkg/egraph"
)

// Parser reads a single Expression from text.
type Parser struct {
	lex *lexer
	tok token
}

// Parse parses s as a single Expression and reports a parse error if
// trailing input remains or the grammar is violated.
func Parse(s string) (egraph.Expression, error) {
	p := &Parser{lex: newLexer(s)}
	if err := p.advance(); err != nil {
		return egraph.Expression{}, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return egraph.Expression{}, err
	}
	if p.tok.kind != tokEOF {
		return egraph.Expression{}, fmt.Errorf("sexpr: unexpected trailing token %q", p.tok.text)
	}
	return expr, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) expect(kind tokenKind, what string) error {
	if p.tok.kind != kind {
		return fmt.Errorf("sexpr: expected %s, got %q", what, p.tok.text)
	}
	return p.advance()
}

func (p *Parser) parseExpr() (egraph.Expression, error) {
	switch p.tok.kind {
	case tokNumber:
		n, err := strconv.Atoi(p.tok.text)
		if err != nil {
			return egraph.Expression{}, fmt.Errorf("sexpr: invalid integer %q: %w", p.tok.text, err)
		}
		if err := p.advance(); err != nil {
			return egraph.Expression{}, err
		}
		return egraph.Const(n), nil

	case tokMinus:
		// Either a negative literal (-6) or a Neg(...) application,
		// spelled "-(expr)".
		if err := p.advance(); err != nil {
			return egraph.Expression{}, err
		}
		if p.tok.kind == tokNumber {
			n, err := strconv.Atoi(p.tok.text)
			if err != nil {
				return egraph.Expression{}, fmt.Errorf("sexpr: invalid integer %q: %w", p.tok.text, err)
			}
			if err := p.advance(); err != nil {
				return egraph.Expression{}, err
			}
			return egraph.Const(-n), nil
		}
		if err := p.expect(tokLParen, "'(' after unary '-'"); err != nil {
			return egraph.Expression{}, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return egraph.Expression{}, err
		}
		if err := p.expect(tokRParen, "')' closing '-('"); err != nil {
			return egraph.Expression{}, err
		}
		return egraph.Negate(inner), nil

	case tokQuestion:
		if err := p.advance(); err != nil {
			return egraph.Expression{}, err
		}
		if p.tok.kind != tokIdent {
			return egraph.Expression{}, fmt.Errorf("sexpr: expected identifier after '?', got %q", p.tok.text)
		}
		name := p.tok.text
		if err := p.advance(); err != nil {
			return egraph.Expression{}, err
		}
		return egraph.MetaVar(name), nil

	case tokIdent:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return egraph.Expression{}, err
		}
		return egraph.Var(name), nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return egraph.Expression{}, err
		}
		left, err := p.parseExpr()
		if err != nil {
			return egraph.Expression{}, err
		}
		opKind := p.tok.kind
		if opKind != tokPlus && opKind != tokMinus && opKind != tokStar && opKind != tokSlash {
			return egraph.Expression{}, fmt.Errorf("sexpr: expected a binary operator, got %q", p.tok.text)
		}
		if err := p.advance(); err != nil {
			return egraph.Expression{}, err
		}
		right, err := p.parseExpr()
		if err != nil {
			return egraph.Expression{}, err
		}
		if err := p.expect(tokRParen, "')' closing binary expression"); err != nil {
			return egraph.Expression{}, err
		}
		switch opKind {
		case tokPlus:
			return egraph.Add(left, right), nil
		case tokMinus:
			return egraph.Sub(left, right), nil
		case tokStar:
			return egraph.Mul(left, right), nil
		default:
			return egraph.Div(left, right), nil
		}

	default:
		return egraph.Expression{}, fmt.Errorf("sexpr: unexpected token %q", p.tok.text)
	}
}
