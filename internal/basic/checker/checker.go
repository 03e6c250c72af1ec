// Package checker produces the full diagnostic batch for a document:
// one syntax error from the grammar engine, or else undefined-variable,
// unused-variable, unreachable-code and undefined-line-target warnings.
package checker

import (
	"sort"
	"strconv"
	"strings"

	"github.com/basil-lang/basil/internal/basic/catalog"
	"github.com/basil-lang/basil/internal/basic/grammar"
	"github.com/basil-lang/basil/internal/basic/lines"
	"github.com/basil-lang/basil/internal/basic/scan"
	"github.com/basil-lang/basil/internal/basic/vars"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityHint
)

// Diagnostic is one finding, located by zero-based source rows and byte
// columns. Unnecessary marks findings a client may render faded.
type Diagnostic struct {
	Row         int
	StartCol    int
	EndRow      int
	EndCol      int
	Severity    Severity
	Message     string
	Unnecessary bool
}

// wideCol marks a to-end-of-row range without measuring the row.
const wideCol = 1000

// Check validates src. A syntax error short-circuits the warning passes:
// warnings are only meaningful for a document the grammar accepts.
func Check(src string) []Diagnostic {
	toks := grammar.NewLexer(src).Tokenize()
	if err := grammar.NewParser(toks).Parse(); err != nil {
		return []Diagnostic{syntaxDiagnostic(src, err.Error())}
	}

	var diags []Diagnostic
	diags = append(diags, variableDiagnostics(src)...)
	diags = append(diags, unreachableDiagnostics(src)...)
	diags = append(diags, undefinedLineDiagnostics(src)...)
	return diags
}

// syntaxDiagnostic locates a grammar error from its message text, trying
// "Line N: rest" first and "at line N" second. The range spans the whole
// located row.
func syntaxDiagnostic(src, msg string) Diagnostic {
	basicLine, message := parseErrorMessage(msg)

	d := Diagnostic{Severity: SeverityError, Message: message}
	if basicLine > 0 {
		d.Row = rowForBasicLine(src, basicLine)
		d.EndRow = d.Row
		d.EndCol = wideCol
	}
	return d
}

// parseErrorMessage extracts a BASIC line number from a grammar error.
// "Line N: rest" strips the prefix; "at line N" keeps the full message.
func parseErrorMessage(msg string) (int, string) {
	if rest, ok := strings.CutPrefix(msg, "Line "); ok {
		if num, tail, found := strings.Cut(rest, ":"); found {
			if n, err := strconv.Atoi(strings.TrimSpace(num)); err == nil {
				return n, strings.TrimSpace(tail)
			}
		}
	}

	if _, after, ok := strings.Cut(msg, "at line "); ok {
		end := 0
		for end < len(after) && scan.IsDigit(after[end]) {
			end++
		}
		if n, err := strconv.Atoi(after[:end]); err == nil {
			return n, msg
		}
	}

	return 0, msg
}

// rowForBasicLine finds the source row defining a BASIC line number,
// defaulting to the first row.
func rowForBasicLine(src string, basicLine int) int {
	for row, line := range strings.Split(src, "\n") {
		if n, ok := scan.LeadingNumber(line); ok && n == basicLine {
			return row
		}
	}
	return 0
}

// variableDiagnostics reports usages of never-declared variables and the
// first declaration of never-used ones. Names are visited in sorted
// order so output is deterministic.
func variableDiagnostics(src string) []Diagnostic {
	ix := vars.Analyze(src)
	var diags []Diagnostic

	for _, name := range sortedKeys(ix.Uses) {
		if len(ix.Decls[name]) > 0 || catalog.IsBuiltinVar(name) {
			continue
		}
		for _, site := range ix.Uses[name] {
			diags = append(diags, Diagnostic{
				Row: site.Row, StartCol: site.Start, EndRow: site.Row, EndCol: site.End,
				Severity: SeverityWarning,
				Message:  "Variable '" + name + "' may not be defined",
			})
		}
	}

	for _, name := range sortedKeys(ix.Decls) {
		if len(ix.Uses[name]) > 0 {
			continue
		}
		first := ix.Decls[name][0]
		diags = append(diags, Diagnostic{
			Row: first.Row, StartCol: first.Start, EndRow: first.Row, EndCol: first.End,
			Severity:    SeverityHint,
			Message:     "Variable '" + name + "' is defined but never used",
			Unnecessary: true,
		})
	}

	return diags
}

// unreachableDiagnostics finds regions after a bare END, STOP, RETURN or
// unconditional GOTO. A region is closed by the next row whose BASIC
// line number is a jump target; regions still open at end of document
// are not reported.
func unreachableDiagnostics(src string) []Diagnostic {
	var diags []Diagnostic
	targets := lines.Parse(src).Targets()

	unreachableStart := -1
	for row, line := range strings.Split(src, "\n") {
		upper := strings.ToUpper(line)
		content, _ := scan.StripLineNumber(upper)
		content = strings.TrimSpace(content)

		// A jump target is reachable again and closes an open region.
		if n, ok := scan.LeadingNumber(line); ok && targets[n] {
			if start := unreachableStart; start >= 0 {
				unreachableStart = -1
				if row > start+1 {
					diags = append(diags, Diagnostic{
						Row: start + 1, EndRow: row - 1, EndCol: wideCol,
						Severity:    SeverityHint,
						Message:     "Unreachable code",
						Unnecessary: true,
					})
				}
			}
		}

		if content == "" || strings.HasPrefix(content, "REM") || strings.HasPrefix(content, "'") {
			continue
		}
		if unreachableStart >= 0 {
			continue
		}

		terminal := content == "END" || content == "STOP" || content == "RETURN" ||
			(strings.HasPrefix(content, "GOTO ") &&
				!strings.Contains(upper, "IF ") && !strings.Contains(upper, "ON "))
		if terminal {
			unreachableStart = row
		}
	}

	return diags
}

// undefinedLineDiagnostics reports jump references whose target line
// number does not exist.
func undefinedLineDiagnostics(src string) []Diagnostic {
	var diags []Diagnostic
	tbl := lines.Parse(src)

	for _, ref := range tbl.Refs() {
		if tbl.Defined(ref.Target) {
			continue
		}
		diags = append(diags, Diagnostic{
			Row: ref.Row, StartCol: ref.Start, EndRow: ref.Row, EndCol: ref.End,
			Severity: SeverityError,
			Message:  "Line " + strconv.Itoa(ref.Target) + " is not defined",
		})
	}

	return diags
}

func sortedKeys(m map[string][]vars.Site) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
