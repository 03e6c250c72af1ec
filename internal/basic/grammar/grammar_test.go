package grammar

import (
	"strings"
	"testing"
)

func parse(t *testing.T, src string) error {
	t.Helper()
	toks := NewLexer(src).Tokenize()
	return NewParser(toks).Parse()
}

func TestValidPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"assignment and goto", "10 LET X = 5\n20 PRINT X\n30 GOTO 10"},
		{"implicit let", "10 TOTAL = TOTAL + 1"},
		{"array assignment", "10 LET A(3) = 5"},
		{"for loop", "10 FOR I = 1 TO 10\n20 PRINT I\n30 NEXT I"},
		{"for with step", "10 FOR I = 10 TO 1 STEP -1\n20 NEXT"},
		{"if then", "10 IF X > 5 THEN PRINT X"},
		{"if then line number", "10 IF X THEN 50\n50 END"},
		{"if goto", "10 IF X GOTO 50\n50 END"},
		{"on goto list", "10 ON X GOTO 100, 200, 300"},
		{"on error", "10 ON ERROR GOTO 900\n900 RESUME"},
		{"dim list", "10 DIM A(10), B$(5, 5)"},
		{"colon statements", "10 A = 1: B = 2: PRINT A + B"},
		{"rem comment", "10 REM ANYTHING GOES ((( HERE\n20 END"},
		{"tick comment", "10 ' ALSO ((( UNBALANCED"},
		{"strings with keywords", `10 PRINT "FOR I = ("`},
		{"input with prompt", `10 INPUT "NAME"; N$`},
		{"read data restore", "10 READ A, B\n20 DATA 1, 2\n30 RESTORE 20"},
		{"unnumbered lines", "PRINT 1\nEND"},
		{"hex literal", "10 POKE &H1000, 255"},
		{"empty document", ""},
		{"gosub return", "10 GOSUB 100\n20 END\n100 RETURN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := parse(t, tt.src); err != nil {
				t.Errorf("unexpected parse error: %v", err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantSub string
	}{
		{"for without to", "10 FOR I = 1 10", "Line 10: expected TO"},
		{"for without variable", "10 FOR = 1 TO 5", "Line 10: expected loop variable"},
		{"let without equals", "10 LET X 5", "Line 10: expected '='"},
		{"if without then", "10 IF X > 5", "Line 10: expected THEN"},
		{"goto without target", "10 GOTO X", "Line 10: expected line number after GOTO"},
		{"on without goto", "10 ON X", "Line 10: expected GOTO or GOSUB"},
		{"unbalanced open", "10 PRINT (1 + 2", "Line 10: unbalanced parentheses"},
		{"unbalanced close", "10 PRINT 1 + 2)", "Line 10: unbalanced parentheses"},
		{"unnumbered row error", "FOR I = 1 10", "at line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parse(t, tt.src)
			if err == nil {
				t.Fatal("expected parse error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not contain %q", err, tt.wantSub)
			}
		})
	}
}

func TestLexerRows(t *testing.T) {
	toks := NewLexer("10 PRINT X\n20 END").Tokenize()

	// Rows: [10 PRINT X EOL] [20 END EOL] EOF
	if len(toks) != 8 {
		t.Fatalf("got %d tokens, want 8: %+v", len(toks), toks)
	}
	if toks[0].Kind != TokenNumber || toks[0].Text != "10" {
		t.Errorf("toks[0] = %+v", toks[0])
	}
	if toks[1].Kind != TokenIdent || toks[1].Text != "PRINT" {
		t.Errorf("toks[1] = %+v", toks[1])
	}
	if toks[3].Kind != TokenEOL || toks[3].Row != 0 {
		t.Errorf("toks[3] = %+v", toks[3])
	}
	if toks[4].Row != 1 {
		t.Errorf("toks[4] = %+v", toks[4])
	}
	if toks[7].Kind != TokenEOF {
		t.Errorf("toks[7] = %+v", toks[7])
	}
}

func TestLexerIdentsUppercased(t *testing.T) {
	toks := NewLexer("let name$ = \"x\"").Tokenize()
	if toks[0].Text != "LET" || toks[1].Text != "NAME$" {
		t.Errorf("idents not uppercased: %+v", toks[:2])
	}
	if toks[3].Kind != TokenString || toks[3].Text != `"x"` {
		t.Errorf("string token = %+v", toks[3])
	}
}
