// Package parser implements the recursive-descent parser for ELIZA scripts
// described in spec §4.3. It follows the teacher's parser in spirit —
// small per-production methods, a cursor over a token stream, errors
// carrying the offending line — but the grammar here is a flat S-expression
// notation rather than an expression-precedence language, so there is no
// Pratt/precedence machinery to port.
package parser

import (
	"strconv"

	"github.com/cwbudde/eliza/internal/ast"
	"github.com/cwbudde/eliza/internal/lexer"
	"github.com/cwbudde/eliza/internal/scripterr"
	"github.com/cwbudde/eliza/pkg/token"
)

// Parser turns a token stream into an *ast.Script.
type Parser struct {
	l      *lexer.Lexer
	source string
}

// Parse parses the given script source in one shot. It is the package's
// only way to construct and run a Parser.
func Parse(source string) (*ast.Script, error) {
	p := &Parser{l: lexer.New(source), source: source}
	return p.parseScript()
}

func (p *Parser) errf(line int, format string, args ...any) error {
	return scripterr.New(line, p.source, format, args...)
}

func (p *Parser) parseScript() (*ast.Script, error) {
	script := &ast.Script{
		Keywords: make(map[string]*ast.KeywordRule),
		Source:   p.source,
	}

	remarks, err := p.parseOpeningRemarks()
	if err != nil {
		return nil, err
	}
	script.OpeningRemarks = remarks

	// Optional bare literal START between the opening remarks and the
	// first rule.
	if t := p.l.Peek(); t.Type == token.SYMBOL && t.Literal == "START" {
		p.l.Next()
	}

	for {
		t := p.l.Peek()
		if t.Type == token.EOF {
			break
		}
		if err := p.parseRule(script); err != nil {
			return nil, err
		}
	}

	return script, p.validate(script)
}

func (p *Parser) parseOpeningRemarks() ([]string, error) {
	open := p.l.Next()
	if open.Type != token.OPEN {
		return nil, p.errf(open.Pos.Line, "expected '('")
	}

	var words []string
	for {
		t := p.l.Peek()
		switch t.Type {
		case token.CLOSE:
			p.l.Next()
			return words, nil
		case token.EOF:
			return nil, p.errf(t.Pos.Line, "expected ')'")
		default:
			words = append(words, p.l.Next().Literal)
		}
	}
}

// parseRule consumes one top-level '(' ... ')' rule: a MEMORY rule, a
// keyword rule, or an empty "()" which is silently skipped.
func (p *Parser) parseRule(script *ast.Script) error {
	open := p.l.Next()
	if open.Type != token.OPEN {
		return p.errf(open.Pos.Line, "expected '('")
	}

	head := p.l.Peek()
	switch {
	case head.Type == token.CLOSE:
		p.l.Next()
		return nil
	case head.Type == token.SYMBOL && head.Literal == "MEMORY":
		p.l.Next()
		return p.parseMemoryRule(script, open.Pos.Line)
	case head.Type == token.SYMBOL:
		return p.parseKeywordRule(script, open.Pos.Line)
	default:
		return p.errf(head.Pos.Line, "expected keyword|MEMORY|NONE")
	}
}

func (p *Parser) expectClose() error {
	t := p.l.Next()
	if t.Type != token.CLOSE {
		return p.errf(t.Pos.Line, "expected ')'")
	}
	return nil
}

func (p *Parser) expectOpen() error {
	t := p.l.Next()
	if t.Type != token.OPEN {
		return p.errf(t.Pos.Line, "expected '('")
	}
	return nil
}

// --- MEMORY rule ---------------------------------------------------------

func (p *Parser) parseMemoryRule(script *ast.Script, line int) error {
	kw := p.l.Next()
	if kw.Type != token.SYMBOL {
		return p.errf(kw.Pos.Line, "expected MEMORY keyword")
	}

	mem := &ast.MemoryRule{Keyword: kw.Literal}
	for i := 0; i < 4; i++ {
		tr, err := p.parseMemoryTransform()
		if err != nil {
			return err
		}
		mem.Transforms[i] = tr
	}

	if script.Memory != nil {
		return p.errf(line, "multiple MEMORY rules")
	}
	script.Memory = mem
	return p.expectClose()
}

// parseMemoryTransform parses '(' pattern-words '=' reassembly-words ')'.
// Unlike a keyword rule's kw_transform, a memory transform has exactly one
// reassembly and no round-robin group.
func (p *Parser) parseMemoryTransform() (*ast.Transformation, error) {
	if err := p.expectOpen(); err != nil {
		return nil, err
	}

	pattern, err := p.parsePatternElems(token.EQUALS)
	if err != nil {
		return nil, err
	}
	if len(pattern) == 0 {
		return nil, p.errf(p.l.Peek().Pos.Line, "empty decomposition pattern")
	}

	eq := p.l.Next()
	if eq.Type != token.EQUALS {
		return nil, p.errf(eq.Pos.Line, "expected '='")
	}

	reassembly, err := p.parseReassemblyWords(token.CLOSE)
	if err != nil {
		return nil, err
	}
	if len(reassembly) == 0 {
		return nil, p.errf(p.l.Peek().Pos.Line, "empty reassembly rule")
	}

	if err := p.expectClose(); err != nil {
		return nil, err
	}

	return &ast.Transformation{
		Pattern:      pattern,
		Reassemblies: []ast.Reassembly{reassembly},
	}, nil
}

// --- keyword rule ----------------------------------------------------------

func (p *Parser) parseKeywordRule(script *ast.Script, line int) error {
	kw := p.l.Next()
	rule := &ast.KeywordRule{Keyword: canonicalKeyword(kw.Literal)}

	if t := p.l.Peek(); t.Type == token.EQUALS {
		p.l.Next()
		sub := p.l.Next()
		if sub.Type != token.SYMBOL && sub.Type != token.NUMBER {
			return p.errf(sub.Pos.Line, "expected substitution word")
		}
		rule.Substitution = sub.Literal
	}

	// NUMBER (precedence) and DLIST(taglist) may appear in either order,
	// and either or both may be absent — real scripts are not consistent
	// about which comes first.
headerLoop:
	for {
		t := p.l.Peek()
		switch {
		case t.Type == token.NUMBER:
			p.l.Next()
			n, err := strconv.Atoi(t.Literal)
			if err != nil {
				return p.errf(t.Pos.Line, "malformed precedence %q", t.Literal)
			}
			rule.Precedence = n
		case t.Type == token.SYMBOL && t.Literal == "DLIST":
			p.l.Next()
			tags, err := p.parseTagList()
			if err != nil {
				return err
			}
			rule.Tags = tags
		default:
			break headerLoop
		}
	}

	for {
		t := p.l.Peek()
		if t.Type == token.CLOSE {
			p.l.Next()
			if _, exists := script.Keywords[rule.Keyword]; exists {
				return p.errf(line, "duplicate keyword %q", rule.Keyword)
			}
			script.Keywords[rule.Keyword] = rule
			script.KeywordOrder = append(script.KeywordOrder, rule.Keyword)
			return nil
		}
		if t.Type == token.EOF {
			return p.errf(t.Pos.Line, "expected ')'")
		}

		if err := p.parseKeywordBodyItem(rule); err != nil {
			return err
		}
	}
}

// parseKeywordBodyItem parses either a bare top-level reference "(= KEY)"
// (sets the rule's LinkKeyword) or a full kw_transform
// "(pattern reassembly+)".
func (p *Parser) parseKeywordBodyItem(rule *ast.KeywordRule) error {
	if err := p.expectOpen(); err != nil {
		return err
	}

	if t := p.l.Peek(); t.Type == token.EQUALS {
		p.l.Next()
		key := p.l.Next()
		if key.Type != token.SYMBOL {
			return p.errf(key.Pos.Line, "expected keyword after '='")
		}
		rule.LinkKeyword = canonicalKeyword(key.Literal)
		return p.expectClose()
	}

	pattern, err := p.parsePatternGroup()
	if err != nil {
		return err
	}
	if len(pattern) == 0 {
		return p.errf(p.l.Peek().Pos.Line, "empty decomposition pattern")
	}

	var reassemblies []ast.Reassembly
	for {
		t := p.l.Peek()
		if t.Type == token.CLOSE {
			break
		}
		r, err := p.parseReassemblyEntry()
		if err != nil {
			return err
		}
		reassemblies = append(reassemblies, r)
	}
	if len(reassemblies) == 0 {
		return p.errf(p.l.Peek().Pos.Line, "transformation has no reassembly rule")
	}

	rule.Transforms = append(rule.Transforms, &ast.Transformation{
		Pattern:      pattern,
		Reassemblies: reassemblies,
	})
	return p.expectClose()
}

// canonicalKeyword rewrites the script's literal "NONE" keyword to the
// reserved internal sentinel (spec §4.3).
func canonicalKeyword(literal string) string {
	if literal == "NONE" {
		return ast.NoneKey
	}
	return literal
}
