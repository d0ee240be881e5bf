package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/eliza/internal/ast"
	"github.com/cwbudde/eliza/pkg/token"
)

// parsePatternGroup parses "'(' pat_elem+ ')'" — a decomposition pattern
// wrapped in its own parens, as used by a keyword rule's kw_transform.
func (p *Parser) parsePatternGroup() (ast.Pattern, error) {
	if err := p.expectOpen(); err != nil {
		return nil, err
	}
	var pattern ast.Pattern
	for {
		t := p.l.Peek()
		if t.Type == token.CLOSE {
			p.l.Next()
			return pattern, nil
		}
		if t.Type == token.EOF {
			return nil, p.errf(t.Pos.Line, "expected ')'")
		}
		elem, err := p.parsePatternElem()
		if err != nil {
			return nil, err
		}
		pattern = append(pattern, elem)
	}
}

// parsePatternElems parses a run of pattern elements (bare words, NUMBERs,
// and synonym/tag groups, as parsePatternElem accepts them) up to, but not
// consuming, a token of type stop. It is used for a MEMORY transform's
// left-hand side, which is not wrapped in a pattern group of its own.
func (p *Parser) parsePatternElems(stop token.Type) (ast.Pattern, error) {
	var pattern ast.Pattern
	for {
		t := p.l.Peek()
		if t.Type == stop {
			return pattern, nil
		}
		if t.Type == token.EOF {
			return nil, p.errf(t.Pos.Line, "unexpected end of script")
		}
		elem, err := p.parsePatternElem()
		if err != nil {
			return nil, err
		}
		pattern = append(pattern, elem)
	}
}

func (p *Parser) parsePatternElem() (ast.PatternElem, error) {
	t := p.l.Peek()

	switch t.Type {
	case token.NUMBER:
		p.l.Next()
		n, err := strconv.Atoi(t.Literal)
		if err != nil {
			return ast.PatternElem{}, p.errf(t.Pos.Line, "malformed number %q", t.Literal)
		}
		if n == 0 {
			return ast.PatternElem{Kind: ast.Free}, nil
		}
		return ast.PatternElem{Kind: ast.Fixed, N: n}, nil

	case token.OPEN:
		return p.parsePatternGroupElem()

	case token.SYMBOL:
		p.l.Next()
		return ast.PatternElem{Kind: ast.Literal, Word: t.Literal}, nil

	default:
		return ast.PatternElem{}, p.errf(t.Pos.Line, "unexpected token in pattern")
	}
}

// parsePatternGroupElem parses "'(' '*' word+ ')'" (synonym) or
// "'(' '/' word+ ')'" (tag group). The '*'/'/' sigil is lexed attached to
// the first word, since nothing in the grammar requires whitespace there.
func (p *Parser) parsePatternGroupElem() (ast.PatternElem, error) {
	p.l.Next() // consume '('

	head := p.l.Next()
	if head.Type != token.SYMBOL || len(head.Literal) == 0 {
		return ast.PatternElem{}, p.errf(head.Pos.Line, "expected '*' or '/' group")
	}

	var kind ast.PatternElemKind
	var first string
	switch head.Literal[0] {
	case '*':
		kind = ast.Synonym
		first = head.Literal[1:]
	case '/':
		kind = ast.Tag
		first = head.Literal[1:]
	default:
		return ast.PatternElem{}, p.errf(head.Pos.Line, "expected '*' or '/' group")
	}

	var words []string
	if first != "" {
		words = append(words, first)
	} else {
		w := p.l.Next()
		if w.Type != token.SYMBOL {
			return ast.PatternElem{}, p.errf(w.Pos.Line, "expected word in group")
		}
		words = append(words, w.Literal)
	}

	for {
		t := p.l.Peek()
		if t.Type == token.CLOSE {
			p.l.Next()
			return ast.PatternElem{Kind: kind, Words: words}, nil
		}
		if t.Type != token.SYMBOL {
			return ast.PatternElem{}, p.errf(t.Pos.Line, "expected word or ')' in group")
		}
		p.l.Next()
		words = append(words, t.Literal)
	}
}

// parseTagList parses "'(' '/' SYMBOL+ ')'" after a DLIST keyword, the
// same attached-sigil shape as a tag pattern group.
func (p *Parser) parseTagList() ([]string, error) {
	if err := p.expectOpen(); err != nil {
		return nil, err
	}
	head := p.l.Next()
	if head.Type != token.SYMBOL || !strings.HasPrefix(head.Literal, "/") {
		return nil, p.errf(head.Pos.Line, "expected '/' tag list")
	}

	var tags []string
	if first := head.Literal[1:]; first != "" {
		tags = append(tags, first)
	}

	for {
		t := p.l.Peek()
		if t.Type == token.CLOSE {
			p.l.Next()
			return tags, nil
		}
		if t.Type != token.SYMBOL {
			return nil, p.errf(t.Pos.Line, "expected tag name or ')'")
		}
		p.l.Next()
		tags = append(tags, t.Literal)
	}
}
