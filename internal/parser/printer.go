package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/eliza/internal/ast"
)

// Print renders a Script back to canonical script text. It is used by the
// CLI's parse command and exercises the round-trip property from spec §8:
// parsing Print(s) yields a script equal to s, modulo PRE forms always
// being re-spaced to "(PRE ( template ) ( = KEY ))" regardless of how the
// original script spaced them.
func Print(s *ast.Script) string {
	var b strings.Builder

	b.WriteString("(")
	b.WriteString(strings.Join(s.OpeningRemarks, " "))
	b.WriteString(")\n")

	for _, kw := range s.KeywordOrder {
		printKeywordRule(&b, s.Keywords[kw])
	}
	if s.Memory != nil {
		printMemoryRule(&b, s.Memory)
	}

	return b.String()
}

// PrintKeyword renders a single keyword rule in the same canonical form
// Print uses, for the CLI's "*key WORD" meta-command. It reports false if
// s has no rule under that keyword.
func PrintKeyword(s *ast.Script, keyword string) (string, bool) {
	r, ok := s.Keywords[keyword]
	if !ok {
		return "", false
	}
	var b strings.Builder
	printKeywordRule(&b, r)
	return b.String(), true
}

func displayKeyword(kw string) string {
	if kw == ast.NoneKey {
		return "NONE"
	}
	return kw
}

func printKeywordRule(b *strings.Builder, r *ast.KeywordRule) {
	fmt.Fprintf(b, "(%s", displayKeyword(r.Keyword))
	if r.Substitution != "" {
		fmt.Fprintf(b, " = %s", r.Substitution)
	}
	if r.Precedence != 0 {
		fmt.Fprintf(b, " %d", r.Precedence)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(b, " DLIST(/%s)", strings.Join(r.Tags, " "))
	}
	b.WriteString("\n")

	for _, tr := range r.Transforms {
		printTransform(b, tr)
	}
	if r.LinkKeyword != "" {
		fmt.Fprintf(b, "    (= %s)\n", r.LinkKeyword)
	}
	b.WriteString(")\n")
}

func printMemoryRule(b *strings.Builder, m *ast.MemoryRule) {
	fmt.Fprintf(b, "(MEMORY %s\n", m.Keyword)
	for _, tr := range m.Transforms {
		fmt.Fprintf(b, "    (%s = %s)\n", printPattern(tr.Pattern), printReassembly(tr.Reassemblies[0]))
	}
	b.WriteString(")\n")
}

func printTransform(b *strings.Builder, tr *ast.Transformation) {
	fmt.Fprintf(b, "    ((%s)\n", printPattern(tr.Pattern))
	for _, r := range tr.Reassemblies {
		fmt.Fprintf(b, "        (%s)\n", printReassembly(r))
	}
	b.WriteString("    )\n")
}

func printPattern(p ast.Pattern) string {
	parts := make([]string, len(p))
	for i, e := range p {
		switch e.Kind {
		case ast.Literal:
			parts[i] = e.Word
		case ast.Fixed:
			parts[i] = strconv.Itoa(e.N)
		case ast.Free:
			parts[i] = "0"
		case ast.Synonym:
			parts[i] = "(*" + strings.Join(e.Words, " ") + ")"
		case ast.Tag:
			parts[i] = "(/" + strings.Join(e.Words, " ") + ")"
		}
	}
	return strings.Join(parts, " ")
}

func printReassembly(r ast.Reassembly) string {
	if len(r) == 1 {
		switch r[0].Kind {
		case ast.Reference:
			return "= " + r[0].Key
		case ast.Pre:
			return fmt.Sprintf("PRE ( %s ) ( = %s )", printReassembly(r[0].Template), r[0].Key)
		}
	}

	parts := make([]string, len(r))
	for i, e := range r {
		switch e.Kind {
		case ast.Word:
			parts[i] = e.Word
		case ast.Constituent:
			parts[i] = strconv.Itoa(e.N)
		case ast.Newkey:
			parts[i] = "NEWKEY"
		}
	}
	return strings.Join(parts, " ")
}
