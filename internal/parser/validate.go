package parser

import "github.com/cwbudde/eliza/internal/ast"

// validate performs the post-parse checks spec §4.3 requires: NONE rule
// present, MEMORY rule present and its keyword known. It is intentionally
// strict and fails the whole load rather than limping on with a partially
// usable script, since a missing NONE/MEMORY rule means the response
// engine has no fallback to fall back to.
func (p *Parser) validate(script *ast.Script) error {
	if _, ok := script.Keywords[ast.NoneKey]; !ok {
		return p.errf(0, "no NONE rule specified; see Jan 1966 CACM page 41")
	}

	if script.Memory == nil {
		return p.errf(0, "no MEMORY rule specified")
	}
	if _, ok := script.Keywords[script.Memory.Keyword]; !ok {
		return p.errf(0, "MEMORY keyword %q is not a declared keyword", script.Memory.Keyword)
	}

	script.BuildTagIndex()
	return nil
}
