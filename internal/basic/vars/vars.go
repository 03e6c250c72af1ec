// Package vars finds variable declaration and usage sites by pattern
// matching statements, without parsing expressions. Declarations come
// from DIM, FOR, INPUT, READ, LET and implicit assignment; usages are
// every other identifier that is not a reserved word.
package vars

import (
	"strings"

	"github.com/basil-lang/basil/internal/basic/catalog"
	"github.com/basil-lang/basil/internal/basic/scan"
)

// Site is one occurrence of a variable in the document, as byte columns
// on a source row.
type Site struct {
	Row   int
	Start int
	End   int
}

// Index holds every declaration and usage keyed by uppercase name.
// A usage is any identifier occurrence that is not itself a declaration
// site; occurrences inside string literals and comments are included,
// matching the textual model of the rest of the analyses.
type Index struct {
	Decls map[string][]Site
	Uses  map[string][]Site
}

// Analyze scans src and builds the index.
func Analyze(src string) *Index {
	ix := &Index{
		Decls: make(map[string][]Site),
		Uses:  make(map[string][]Site),
	}
	for row, line := range strings.Split(src, "\n") {
		upper := strings.ToUpper(line)
		content, offset := scan.StripLineNumber(upper)

		stmtStart := offset
		for _, part := range strings.Split(content, ":") {
			lead := len(part) - len(strings.TrimLeft(part, " \t"))
			ix.declsInStatement(strings.TrimSpace(part), row, stmtStart+lead)
			stmtStart += len(part) + 1
		}

		ix.usesInLine(upper, row)
	}
	return ix
}

// declsInStatement records declarations in one ':'-separated statement.
// stmt is trimmed; base is its byte column in the source row.
func (ix *Index) declsInStatement(stmt string, row, base int) {
	switch {
	case strings.HasPrefix(stmt, "LET "):
		ix.declareFirst(stmt[4:], row, base+4)

	case strings.HasPrefix(stmt, "DIM "):
		ix.declareList(stmt[4:], row, base+4)

	case strings.HasPrefix(stmt, "FOR "):
		ix.declareFirst(stmt[4:], row, base+4)

	case strings.HasPrefix(stmt, "INPUT "):
		rest, restBase := stmt[6:], base+6
		// Skip the "prompt"; prefix when present.
		if semi := strings.IndexByte(rest, ';'); semi >= 0 {
			restBase += semi + 1
			rest = rest[semi+1:]
		}
		ix.declareList(rest, row, restBase)

	case strings.HasPrefix(stmt, "READ "):
		ix.declareList(stmt[5:], row, base+5)

	case strings.HasPrefix(stmt, "IF "),
		strings.HasPrefix(stmt, "PRINT"),
		strings.HasPrefix(stmt, "GOTO"),
		strings.HasPrefix(stmt, "GOSUB"):
		// '=' here is comparison or expression, not assignment.

	default:
		// Implicit LET: a bare "VAR = expr" statement.
		eq := strings.IndexByte(stmt, '=')
		if eq < 0 {
			return
		}
		before := strings.TrimSpace(stmt[:eq])
		if before == "" || strings.ContainsAny(before, " \t") {
			return
		}
		ix.declareFirst(stmt, row, base)
	}
}

// declareFirst records the identifier at the start of s (after leading
// whitespace) as a declaration.
func (ix *Index) declareFirst(s string, row, base int) {
	lead := len(s) - len(strings.TrimLeft(s, " \t"))
	name, ok := extractVar(s[lead:])
	if !ok {
		return
	}
	start := base + lead
	ix.Decls[name] = append(ix.Decls[name], Site{Row: row, Start: start, End: start + len(name)})
}

// declareList records one declaration per comma-separated element.
func (ix *Index) declareList(s string, row, base int) {
	partStart := base
	for _, part := range strings.Split(s, ",") {
		ix.declareFirst(part, row, partStart)
		partStart += len(part) + 1
	}
}

// usesInLine records every non-reserved identifier on the row that does
// not start at a known declaration site.
func (ix *Index) usesInLine(upper string, row int) {
	pos := 0
	for pos < len(upper) {
		if !scan.IsAlpha(upper[pos]) {
			pos++
			continue
		}
		start := pos
		for pos < len(upper) && scan.IsWordChar(upper[pos]) {
			pos++
		}
		word := upper[start:pos]
		if catalog.IsReserved(word) {
			continue
		}
		if ix.isDeclSite(word, row, start) {
			continue
		}
		ix.Uses[word] = append(ix.Uses[word], Site{Row: row, Start: start, End: pos})
	}
}

func (ix *Index) isDeclSite(name string, row, start int) bool {
	for _, d := range ix.Decls[name] {
		if d.Row == row && d.Start == start {
			return true
		}
	}
	return false
}

// extractVar parses the identifier at the start of s: a letter followed
// by alphanumerics or underscores, with at most one terminating '$'.
func extractVar(s string) (string, bool) {
	if s == "" || !scan.IsAlpha(s[0]) {
		return "", false
	}
	end := 1
	for end < len(s) && (scan.IsAlpha(s[end]) || scan.IsDigit(s[end]) || s[end] == '_') {
		end++
	}
	if end < len(s) && s[end] == '$' {
		end++
	}
	return s[:end], true
}
