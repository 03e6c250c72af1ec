package scan

import "testing"

func TestWordAt(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		col   int
		word  string
		start int
		end   int
	}{
		{"middle of word", "10 PRINT COUNT", 11, "COUNT", 9, 14},
		{"start of word", "10 PRINT COUNT", 9, "COUNT", 9, 14},
		{"end of line", "10 PRINT COUNT", 14, "COUNT", 9, 14},
		{"dollar suffix", `20 LET NAME$ = "X"`, 8, "NAME$", 7, 12},
		{"underscore", "LET MY_VAR = 1", 5, "MY_VAR", 4, 10},
		{"on space", "10 PRINT X", 2, "10", 0, 2},
		{"between words", "GOTO 100", 4, "GOTO", 0, 4},
		{"not in word", "A + B", 2, "", 0, 0},
		{"past end clamps", "END", 40, "END", 0, 3},
		{"negative col", "END", -1, "", 0, 0},
		{"empty line", "", 0, "", 0, 0},
		{"digits are words", "GOTO 100", 6, "100", 5, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := WordAt(tt.line, tt.col)
			if word != tt.word || start != tt.start || end != tt.end {
				t.Errorf("WordAt(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.line, tt.col, word, start, end, tt.word, tt.start, tt.end)
			}
		})
	}
}

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		line string
		n    int
		ok   bool
	}{
		{"10 PRINT X", 10, true},
		{"  20 END", 20, true},
		{"100", 100, true},
		{"PRINT X", 0, false},
		{"", 0, false},
		{"10X PRINT", 0, false},
		{"-5 PRINT", 0, false},
	}
	for _, tt := range tests {
		n, ok := LeadingNumber(tt.line)
		if n != tt.n || ok != tt.ok {
			t.Errorf("LeadingNumber(%q) = (%d, %v), want (%d, %v)", tt.line, n, ok, tt.n, tt.ok)
		}
	}
}

func TestStripLineNumber(t *testing.T) {
	tests := []struct {
		line    string
		content string
		offset  int
	}{
		{"10 PRINT X", "PRINT X", 3},
		{"  20   END", "END", 7},
		{"PRINT X", "PRINT X", 0},
		{"100", "", 3},
		{"", "", 0},
	}
	for _, tt := range tests {
		content, offset := StripLineNumber(tt.line)
		if content != tt.content || offset != tt.offset {
			t.Errorf("StripLineNumber(%q) = (%q, %d), want (%q, %d)",
				tt.line, content, offset, tt.content, tt.offset)
		}
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		line string
		pos  int
		end  int
	}{
		{"123", 0, 3},
		{"3.14 X", 0, 4},
		{"1E5+2", 0, 3},
		{"1E+5 X", 0, 4},
		{"1E-5 X", 0, 4},
		{"&HFF X", 0, 4},
		{"&H1A2B", 0, 6},
		{"X 42,", 2, 4},
	}
	for _, tt := range tests {
		if got := ScanNumber(tt.line, tt.pos); got != tt.end {
			t.Errorf("ScanNumber(%q, %d) = %d, want %d", tt.line, tt.pos, got, tt.end)
		}
	}
}

func TestScanString(t *testing.T) {
	tests := []struct {
		line string
		pos  int
		end  int
	}{
		{`"hello" X`, 0, 7},
		{`PRINT "a"`, 6, 9},
		{`"unterminated`, 0, 13},
		{`""`, 0, 2},
	}
	for _, tt := range tests {
		if got := ScanString(tt.line, tt.pos); got != tt.end {
			t.Errorf("ScanString(%q, %d) = %d, want %d", tt.line, tt.pos, got, tt.end)
		}
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		line string
		kw   string
		want bool
	}{
		{"10 FOR I = 1 TO 5", "FOR", true},
		{"10 FORMAT X", "FOR", false},
		{"NEXT I", "NEXT", true},
		{"FOR", "FOR", true},
		{"XFOR", "FOR", false},
		{"IF X THEN GOTO 10", "THEN", true},
		{"", "FOR", false},
		{"FORFOR FOR", "FOR", true},
	}
	for _, tt := range tests {
		if got := ContainsWord(tt.line, tt.kw); got != tt.want {
			t.Errorf("ContainsWord(%q, %q) = %v, want %v", tt.line, tt.kw, got, tt.want)
		}
	}
}
