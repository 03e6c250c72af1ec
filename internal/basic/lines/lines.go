// Package lines builds the control-flow index of a BASIC document: which
// BASIC line numbers exist, which source rows define them, and every
// place a line number is referenced after GOTO, GOSUB, THEN or RESTORE
// (including ON...GOTO/GOSUB comma lists).
package lines

import (
	"strconv"
	"strings"

	"github.com/basil-lang/basil/internal/basic/scan"
)

// refKeywords are searched with a trailing space so that the target
// number must be a separate token.
var refKeywords = []string{"GOTO ", "GOSUB ", "THEN ", "RESTORE "}

// Ref is one reference to a BASIC line number.
type Ref struct {
	Target int    // referenced BASIC line number
	Row    int    // source row of the reference (0-based)
	Start  int    // byte columns of the number token
	End    int
	Kw     string // "GOTO", "GOSUB", "THEN" or "RESTORE"
}

// Table indexes one document.
type Table struct {
	rows []rowDef
	defs map[int]int // BASIC line number -> first defining source row
	refs []Ref
}

type rowDef struct {
	number int
	row    int
	width  int // digits of the number token
}

// Parse scans src once and builds the table. Matching is
// case-insensitive; the scan is purely textual, so numbers inside string
// literals or comments are indexed too.
func Parse(src string) *Table {
	t := &Table{defs: make(map[int]int)}

	rows := strings.Split(src, "\n")
	for row, line := range rows {
		if n, ok := scan.LeadingNumber(line); ok {
			// First definition wins when a number is duplicated.
			if _, dup := t.defs[n]; !dup {
				t.defs[n] = row
			}
			width := len(strings.TrimLeft(line, " \t"))
			if sp := strings.IndexAny(strings.TrimLeft(line, " \t"), " \t"); sp >= 0 {
				width = sp
			}
			t.rows = append(t.rows, rowDef{number: n, row: row, width: width})
		}

		upper := strings.ToUpper(line)
		for _, kw := range refKeywords {
			from := 0
			for {
				i := strings.Index(upper[from:], kw)
				if i < 0 {
					break
				}
				abs := from + i + len(kw)
				t.scanTargetList(line, row, abs, strings.TrimSuffix(kw, " "))
				from = abs
			}
		}
	}
	return t
}

// scanTargetList parses the comma-separated numbers starting at col,
// stopping at the first part whose leading token is not an integer.
func (t *Table) scanTargetList(line string, row, col int, kw string) {
	partStart := col
	for _, part := range strings.Split(line[col:], ",") {
		lead := len(part) - len(strings.TrimLeft(part, " \t"))
		tok := firstToken(part[lead:])
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			break
		}
		start := partStart + lead
		t.refs = append(t.refs, Ref{
			Target: n,
			Row:    row,
			Start:  start,
			End:    start + len(tok),
			Kw:     kw,
		})
		partStart += len(part) + 1
	}
}

// RowFor returns the source row defining BASIC line n.
func (t *Table) RowFor(n int) (int, bool) {
	row, ok := t.defs[n]
	return row, ok
}

// Defined reports whether BASIC line n exists in the document.
func (t *Table) Defined(n int) bool {
	_, ok := t.defs[n]
	return ok
}

// NumberWidth returns the digit count of the line-number token defining
// BASIC line n, for ranging over the definition itself.
func (t *Table) NumberWidth(n int) int {
	for _, d := range t.rows {
		if d.number == n {
			return d.width
		}
	}
	return 0
}

// Refs returns every line-number reference in document order.
func (t *Table) Refs() []Ref { return t.refs }

// RefsTo returns the references whose target is n.
func (t *Table) RefsTo(n int) []Ref {
	var out []Ref
	for _, r := range t.refs {
		if r.Target == n {
			out = append(out, r)
		}
	}
	return out
}

// Targets returns the set of all referenced line numbers, defined or not.
func (t *Table) Targets() map[int]bool {
	set := make(map[int]bool, len(t.refs))
	for _, r := range t.refs {
		set[r.Target] = true
	}
	return set
}

// GosubTargets returns the line numbers referenced specifically by
// GOSUB (including ON...GOSUB lists). These mark subroutine entry
// points for the outline and folding.
func (t *Table) GosubTargets() map[int]bool {
	set := make(map[int]bool)
	for _, r := range t.refs {
		if r.Kw == "GOSUB" {
			set[r.Target] = true
		}
	}
	return set
}

func firstToken(s string) string {
	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return s
	}
	return s[:end]
}
