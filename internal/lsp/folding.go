package lsp

import (
	"context"
	"encoding/json"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/basil-lang/basil/internal/basic/lines"
	"github.com/basil-lang/basil/internal/basic/scan"
)

func (s *Server) handleFoldingRange(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.FoldingRangeParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	doc, ok := s.document(p.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	return foldingRanges(doc.Content), nil
}

// foldingRanges computes fold regions for control structures, subroutine
// bodies, comment blocks and DATA blocks.
func foldingRanges(content string) []protocol.FoldingRange {
	rows := docLines(content)
	subTargets := lines.Parse(content).GosubTargets()

	var ranges []protocol.FoldingRange
	region := func(start, end int, kind protocol.FoldingRangeKind) {
		ranges = append(ranges, protocol.FoldingRange{
			StartLine: uint32(start),
			EndLine:   uint32(end),
			Kind:      kind,
		})
	}

	var forStack, whileStack, doStack, selectStack, ifStack []int
	subStart := -1
	commentEnd := -1 // last row of the comment block being emitted
	dataEnd := -1

	for row, line := range rows {
		trimmed := strings.TrimSpace(strings.ToUpper(line))
		if trimmed == "" {
			continue
		}

		// A row defining a GOSUB target starts a subroutine region and
		// closes any previous one just above it.
		if num, ok := scan.LeadingNumber(trimmed); ok && subTargets[num] {
			if subStart >= 0 && row > subStart+1 {
				region(subStart, row-1, "region")
			}
			subStart = row
		}

		if scan.ContainsWord(trimmed, "RETURN") && !scan.ContainsWord(trimmed, "GOSUB") {
			if subStart >= 0 {
				if row > subStart {
					region(subStart, row, "region")
				}
				subStart = -1
			}
		}

		if scan.ContainsWord(trimmed, "FOR") && scan.ContainsWord(trimmed, "TO") &&
			!scan.ContainsWord(trimmed, "NEXT") {
			forStack = append(forStack, row)
		}
		if scan.ContainsWord(trimmed, "NEXT") && len(forStack) > 0 {
			start := forStack[len(forStack)-1]
			forStack = forStack[:len(forStack)-1]
			if row > start {
				region(start, row, "region")
			}
		}

		if scan.ContainsWord(trimmed, "WHILE") && !scan.ContainsWord(trimmed, "WEND") {
			whileStack = append(whileStack, row)
		}
		if scan.ContainsWord(trimmed, "WEND") && len(whileStack) > 0 {
			start := whileStack[len(whileStack)-1]
			whileStack = whileStack[:len(whileStack)-1]
			if row > start {
				region(start, row, "region")
			}
		}

		if scan.ContainsWord(trimmed, "DO") && !scan.ContainsWord(trimmed, "LOOP") {
			doStack = append(doStack, row)
		}
		if scan.ContainsWord(trimmed, "LOOP") && len(doStack) > 0 {
			start := doStack[len(doStack)-1]
			doStack = doStack[:len(doStack)-1]
			if row > start {
				region(start, row, "region")
			}
		}

		if scan.ContainsWord(trimmed, "SELECT") && scan.ContainsWord(trimmed, "CASE") {
			selectStack = append(selectStack, row)
		}
		if scan.ContainsWord(trimmed, "END") && scan.ContainsWord(trimmed, "SELECT") &&
			len(selectStack) > 0 {
			start := selectStack[len(selectStack)-1]
			selectStack = selectStack[:len(selectStack)-1]
			if row > start {
				region(start, row, "region")
			}
		}

		// Structured IF: nothing after THEN on the row, or only a line
		// number. Single-line IFs never fold.
		if scan.ContainsWord(trimmed, "IF") {
			if idx := strings.Index(trimmed, "THEN"); idx >= 0 {
				after := strings.TrimSpace(trimmed[idx+4:])
				if after == "" || isInteger(after) {
					ifStack = append(ifStack, row)
				}
			}
		}
		if scan.ContainsWord(trimmed, "END") && scan.ContainsWord(trimmed, "IF") &&
			len(ifStack) > 0 {
			start := ifStack[len(ifStack)-1]
			ifStack = ifStack[:len(ifStack)-1]
			if row > start {
				region(start, row, "region")
			}
		}

		if row > commentEnd && isCommentRow(trimmed) {
			end := row
			for j := row + 1; j < len(rows); j++ {
				next := strings.TrimSpace(strings.ToUpper(rows[j]))
				if !isCommentRow(next) {
					break
				}
				end = j
			}
			commentEnd = end
			if end > row {
				region(row, end, "comment")
			}
		}

		if row > dataEnd && scan.ContainsWord(trimmed, "DATA") {
			end := row
			for j := row + 1; j < len(rows); j++ {
				next := strings.TrimSpace(strings.ToUpper(rows[j]))
				stripped, _ := scan.StripLineNumber(next)
				if !strings.HasPrefix(stripped, "DATA") {
					break
				}
				end = j
			}
			dataEnd = end
			if end > row {
				region(row, end, "region")
			}
		}
	}

	return ranges
}

// isCommentRow reports whether the row, after any line number, is a REM
// or apostrophe comment.
func isCommentRow(trimmed string) bool {
	stripped, _ := scan.StripLineNumber(trimmed)
	return strings.HasPrefix(stripped, "REM") || strings.HasPrefix(stripped, "'")
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !scan.IsDigit(s[i]) {
			return false
		}
	}
	return true
}
