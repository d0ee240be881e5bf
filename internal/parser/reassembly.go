package parser

import (
	"github.com/cwbudde/eliza/internal/ast"
	"github.com/cwbudde/eliza/pkg/token"
)

// parseReassemblyEntry parses one candidate reassembly rule: "'(' (
// pre_form | '=' SYMBOL | plain_words ) ')'".
func (p *Parser) parseReassemblyEntry() (ast.Reassembly, error) {
	if err := p.expectOpen(); err != nil {
		return nil, err
	}

	t := p.l.Peek()
	switch {
	case t.Type == token.SYMBOL && t.Literal == "PRE":
		p.l.Next()
		pre, err := p.parsePreForm()
		if err != nil {
			return nil, err
		}
		if err := p.expectClose(); err != nil {
			return nil, err
		}
		return ast.Reassembly{pre}, nil

	case t.Type == token.EQUALS:
		p.l.Next()
		key := p.l.Next()
		if key.Type != token.SYMBOL {
			return nil, p.errf(key.Pos.Line, "expected keyword after '='")
		}
		if err := p.expectClose(); err != nil {
			return nil, err
		}
		return ast.Reassembly{{Kind: ast.Reference, Key: key.Literal}}, nil

	default:
		words, err := p.parseReassemblyWords(token.CLOSE)
		if err != nil {
			return nil, err
		}
		if err := p.expectClose(); err != nil {
			return nil, err
		}
		return words, nil
	}
}

// parsePreForm parses "'PRE' '(' word+ ')' '(' '=' SYMBOL ')'", the 'PRE'
// token itself already consumed by the caller.
func (p *Parser) parsePreForm() (ast.ReassemblyElem, error) {
	if err := p.expectOpen(); err != nil {
		return ast.ReassemblyElem{}, err
	}
	template, err := p.parseReassemblyWords(token.CLOSE)
	if err != nil {
		return ast.ReassemblyElem{}, err
	}
	if err := p.expectClose(); err != nil {
		return ast.ReassemblyElem{}, err
	}
	if len(template) == 0 {
		return ast.ReassemblyElem{}, p.errf(p.l.Peek().Pos.Line, "empty PRE template")
	}

	if err := p.expectOpen(); err != nil {
		return ast.ReassemblyElem{}, err
	}
	eq := p.l.Next()
	if eq.Type != token.EQUALS {
		return ast.ReassemblyElem{}, p.errf(eq.Pos.Line, "malformed PRE form: expected '='")
	}
	key := p.l.Next()
	if key.Type != token.SYMBOL {
		return ast.ReassemblyElem{}, p.errf(key.Pos.Line, "malformed PRE form: expected keyword")
	}
	if err := p.expectClose(); err != nil {
		return ast.ReassemblyElem{}, err
	}

	return ast.ReassemblyElem{Kind: ast.Pre, Template: template, Key: key.Literal}, nil
}

// parseReassemblyWords parses a flat run of reassembly elements — literal
// words, constituent-index numbers, and the NEWKEY sentinel — up to, but
// not consuming, a token of type stop.
func (p *Parser) parseReassemblyWords(stop token.Type) (ast.Reassembly, error) {
	var elems ast.Reassembly
	for {
		t := p.l.Peek()
		if t.Type == stop {
			return elems, nil
		}
		if t.Type == token.EOF {
			return nil, p.errf(t.Pos.Line, "unexpected end of script")
		}

		switch {
		case t.Type == token.NUMBER:
			p.l.Next()
			n := 0
			for _, c := range t.Literal {
				n = n*10 + int(c-'0')
			}
			elems = append(elems, ast.ReassemblyElem{Kind: ast.Constituent, N: n})
		case t.Type == token.SYMBOL && t.Literal == "NEWKEY":
			p.l.Next()
			elems = append(elems, ast.ReassemblyElem{Kind: ast.Newkey})
		case t.Type == token.SYMBOL:
			p.l.Next()
			elems = append(elems, ast.ReassemblyElem{Kind: ast.Word, Word: t.Literal})
		default:
			return nil, p.errf(t.Pos.Line, "unexpected token in reassembly")
		}
	}
}
