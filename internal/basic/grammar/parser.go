package grammar

import (
	"fmt"
	"strconv"
)

// Parser validates statement shapes without building a tree. It is
// deliberately permissive: expressions are checked only for balanced
// parentheses, and unknown statements are accepted as long as they scan.
// The first structural error aborts the parse.
type Parser struct {
	toks      []Token
	pos       int
	basicLine int // BASIC line number of the current row, 0 if none
}

func NewParser(toks []Token) *Parser {
	return &Parser{toks: toks}
}

// Parse consumes the whole token stream and returns the first error, or
// nil when the document is syntactically acceptable.
func (p *Parser) Parse() error {
	for p.peek().Kind != TokenEOF {
		if err := p.parseRow(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseRow() error {
	p.basicLine = 0
	if t := p.peek(); t.Kind == TokenNumber {
		if n, err := strconv.Atoi(t.Text); err == nil && n >= 0 {
			p.basicLine = n
			p.next()
		}
	}

	for {
		if err := p.parseStatement(); err != nil {
			return err
		}
		t := p.peek()
		if t.Kind == TokenEOL {
			p.next()
			return nil
		}
		if t.Kind == TokenEOF {
			return nil
		}
		// parseStatement stops at ':' between statements.
		p.next()
	}
}

func (p *Parser) parseStatement() error {
	t := p.peek()
	if t.Kind == TokenEOL || t.Kind == TokenEOF || isColon(t) {
		return nil
	}

	if t.Kind == TokenIdent {
		switch t.Text {
		case "LET":
			return p.parseLet()
		case "FOR":
			return p.parseFor()
		case "IF":
			return p.parseIf()
		case "GOTO", "GOSUB":
			return p.parseJump()
		case "ON":
			return p.parseOn()
		case "DIM":
			return p.parseDim()
		case "NEXT":
			p.next()
			if p.peek().Kind == TokenIdent {
				p.next()
			}
			return p.finishStatement()
		}
	}

	return p.finishStatement()
}

func (p *Parser) parseLet() error {
	p.next() // LET
	if p.peek().Kind != TokenIdent {
		return p.errorf("expected variable after LET")
	}
	p.next()
	if p.isOperator("(") {
		if err := p.skipParenGroup(); err != nil {
			return err
		}
	}
	if !p.isOperator("=") {
		return p.errorf("expected '=' in LET statement")
	}
	p.next()
	return p.finishStatement()
}

func (p *Parser) parseFor() error {
	p.next() // FOR
	if p.peek().Kind != TokenIdent {
		return p.errorf("expected loop variable after FOR")
	}
	p.next()
	if !p.isOperator("=") {
		return p.errorf("expected '=' in FOR statement")
	}
	p.next()

	// The start expression must be closed by TO on the same row.
	depth := 0
	for {
		t := p.peek()
		switch {
		case t.Kind == TokenEOL || t.Kind == TokenEOF || (isColon(t) && depth == 0):
			return p.errorf("expected TO in FOR statement")
		case t.Kind == TokenIdent && t.Text == "TO" && depth == 0:
			p.next()
			return p.finishStatement()
		case t.Kind == TokenOperator && t.Text == "(":
			depth++
		case t.Kind == TokenOperator && t.Text == ")":
			depth--
			if depth < 0 {
				return p.errorf("unbalanced parentheses")
			}
		}
		p.next()
	}
}

func (p *Parser) parseIf() error {
	p.next() // IF

	// The condition must be followed by THEN or GOTO on the same row.
	depth := 0
	for {
		t := p.peek()
		switch {
		case t.Kind == TokenEOL || t.Kind == TokenEOF:
			return p.errorf("expected THEN in IF statement")
		case t.Kind == TokenIdent && (t.Text == "THEN" || t.Text == "GOTO") && depth == 0:
			p.next()
			return p.parseStatement()
		case t.Kind == TokenOperator && t.Text == "(":
			depth++
		case t.Kind == TokenOperator && t.Text == ")":
			depth--
			if depth < 0 {
				return p.errorf("unbalanced parentheses")
			}
		}
		p.next()
	}
}

func (p *Parser) parseJump() error {
	kw := p.next().Text // GOTO or GOSUB
	if p.peek().Kind != TokenNumber {
		return p.errorf("expected line number after %s", kw)
	}
	p.next()
	return p.finishStatement()
}

func (p *Parser) parseOn() error {
	p.next() // ON

	// Expression, then GOTO/GOSUB, then a number list. ON ERROR GOTO is
	// accepted through the same path.
	for {
		t := p.peek()
		if t.Kind == TokenEOL || t.Kind == TokenEOF || isColon(t) {
			return p.errorf("expected GOTO or GOSUB in ON statement")
		}
		if t.Kind == TokenIdent && (t.Text == "GOTO" || t.Text == "GOSUB") {
			break
		}
		p.next()
	}
	kw := p.next().Text
	if p.peek().Kind != TokenNumber {
		return p.errorf("expected line number after ON ... %s", kw)
	}
	p.next()
	for p.isOperator(",") {
		p.next()
		if p.peek().Kind != TokenNumber {
			return p.errorf("expected line number after ON ... %s", kw)
		}
		p.next()
	}
	return p.finishStatement()
}

func (p *Parser) parseDim() error {
	p.next() // DIM
	for {
		if p.peek().Kind != TokenIdent {
			return p.errorf("expected array name in DIM statement")
		}
		p.next()
		if p.isOperator("(") {
			if err := p.skipParenGroup(); err != nil {
				return err
			}
		}
		if !p.isOperator(",") {
			return p.finishStatement()
		}
		p.next()
	}
}

// skipParenGroup consumes a balanced parenthesized group starting at '('.
func (p *Parser) skipParenGroup() error {
	depth := 0
	for {
		t := p.peek()
		switch {
		case t.Kind == TokenEOL || t.Kind == TokenEOF:
			return p.errorf("unbalanced parentheses")
		case t.Kind == TokenOperator && t.Text == "(":
			depth++
		case t.Kind == TokenOperator && t.Text == ")":
			depth--
		}
		p.next()
		if depth == 0 {
			return nil
		}
	}
}

// finishStatement consumes tokens to the next ':' at depth zero or end
// of row, verifying parenthesis balance.
func (p *Parser) finishStatement() error {
	depth := 0
	for {
		t := p.peek()
		switch {
		case t.Kind == TokenEOL || t.Kind == TokenEOF:
			if depth != 0 {
				return p.errorf("unbalanced parentheses")
			}
			return nil
		case isColon(t) && depth == 0:
			return nil
		case t.Kind == TokenOperator && t.Text == "(":
			depth++
		case t.Kind == TokenOperator && t.Text == ")":
			depth--
			if depth < 0 {
				return p.errorf("unbalanced parentheses")
			}
		}
		p.next()
	}
}

// errorf prefixes errors with the BASIC line number when the row has
// one; diagnostics parse that prefix to place the squiggle.
func (p *Parser) errorf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if p.basicLine > 0 {
		return fmt.Errorf("Line %d: %s", p.basicLine, msg)
	}
	return fmt.Errorf("syntax error at line %d: %s", p.peek().Row+1, msg)
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.toks) {
		return Token{Kind: TokenEOF, Row: -1}
	}
	return p.toks[p.pos]
}

func (p *Parser) next() Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) isOperator(text string) bool {
	t := p.peek()
	return t.Kind == TokenOperator && t.Text == text
}

func isColon(t Token) bool {
	return t.Kind == TokenOperator && t.Text == ":"
}
