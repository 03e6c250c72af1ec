package catalog

import "strings"

// Signature describes a built-in function call for signature help.
// Each Params entry is "name - description"; Param splits out the bare
// name used as the parameter label.
type Signature struct {
	Label  string
	Doc    string
	Params []string
}

// Param returns the bare parameter name of Params[i].
func (s Signature) Param(i int) string {
	p := s.Params[i]
	if name, _, ok := strings.Cut(p, " - "); ok {
		return name
	}
	return p
}

// SignatureFor returns the call signature for an uppercase function name.
// Unlike Doc, the lookup keeps the '$' suffix: LEFT$ has a signature,
// LEFT does not.
func SignatureFor(name string) (Signature, bool) {
	sig, ok := signatures[name]
	return sig, ok
}

var signatures = map[string]Signature{
	// String functions
	"CHR$": {"CHR$(code)", "Returns character for ASCII code",
		[]string{"code - ASCII code (0-255)"}},
	"ASC": {"ASC(string$)", "Returns ASCII code of first character",
		[]string{"string$ - String to get first character from"}},
	"LEN": {"LEN(string$)", "Returns length of string",
		[]string{"string$ - String to measure"}},
	"LEFT$": {"LEFT$(string$, count)", "Returns leftmost characters",
		[]string{"string$ - Source string", "count - Number of characters"}},
	"RIGHT$": {"RIGHT$(string$, count)", "Returns rightmost characters",
		[]string{"string$ - Source string", "count - Number of characters"}},
	"MID$": {"MID$(string$, start[, length])", "Returns substring",
		[]string{"string$ - Source string", "start - Starting position (1-based)", "length - Number of characters (optional)"}},
	"STR$": {"STR$(number)", "Converts number to string",
		[]string{"number - Number to convert"}},
	"VAL": {"VAL(string$)", "Converts string to number",
		[]string{"string$ - String to parse"}},
	"STRING$": {"STRING$(count, char)", "Returns repeated character",
		[]string{"count - Number of repetitions", "char - Character or ASCII code"}},
	"SPACE$": {"SPACE$(count)", "Returns string of spaces",
		[]string{"count - Number of spaces"}},
	"INSTR": {"INSTR([start,] string$, search$)", "Returns position of substring",
		[]string{"start - Starting position (optional)", "string$ - String to search in", "search$ - String to find"}},
	"UCASE$": {"UCASE$(string$)", "Converts to uppercase",
		[]string{"string$ - String to convert"}},
	"LCASE$": {"LCASE$(string$)", "Converts to lowercase",
		[]string{"string$ - String to convert"}},
	"LTRIM$": {"LTRIM$(string$)", "Removes leading spaces",
		[]string{"string$ - String to trim"}},
	"RTRIM$": {"RTRIM$(string$)", "Removes trailing spaces",
		[]string{"string$ - String to trim"}},
	"HEX$": {"HEX$(number)", "Converts to hexadecimal string",
		[]string{"number - Number to convert"}},
	"OCT$": {"OCT$(number)", "Converts to octal string",
		[]string{"number - Number to convert"}},

	// Math functions
	"ABS": {"ABS(number)", "Returns absolute value",
		[]string{"number - Number to get absolute value of"}},
	"SGN": {"SGN(number)", "Returns sign (-1, 0, or 1)",
		[]string{"number - Number to check"}},
	"INT": {"INT(number)", "Returns largest integer <= number",
		[]string{"number - Number to floor"}},
	"FIX": {"FIX(number)", "Truncates toward zero",
		[]string{"number - Number to truncate"}},
	"CINT": {"CINT(number)", "Rounds to nearest integer",
		[]string{"number - Number to round"}},
	"SQR": {"SQR(number)", "Returns square root",
		[]string{"number - Non-negative number"}},
	"SIN": {"SIN(angle)", "Returns sine",
		[]string{"angle - Angle in radians"}},
	"COS": {"COS(angle)", "Returns cosine",
		[]string{"angle - Angle in radians"}},
	"TAN": {"TAN(angle)", "Returns tangent",
		[]string{"angle - Angle in radians"}},
	"ATN": {"ATN(number)", "Returns arctangent in radians",
		[]string{"number - Value"}},
	"LOG": {"LOG(number)", "Returns natural logarithm",
		[]string{"number - Positive number"}},
	"EXP": {"EXP(number)", "Returns e raised to power",
		[]string{"number - Exponent"}},
	"RND": {"RND[(seed)]", "Returns random number 0-1",
		[]string{"seed - Optional seed value"}},

	// Screen and graphics
	"POINT": {"POINT(x, y)", "Returns color at pixel",
		[]string{"x - X coordinate", "y - Y coordinate"}},
	"CSRLIN": {"CSRLIN", "Returns cursor row", nil},
	"POS": {"POS(dummy)", "Returns cursor column",
		[]string{"dummy - Ignored value"}},
	"TAB": {"TAB(column)", "Moves to column in PRINT",
		[]string{"column - Column to move to"}},
	"SPC": {"SPC(count)", "Outputs spaces in PRINT",
		[]string{"count - Number of spaces"}},

	// I/O
	"EOF": {"EOF(filenum)", "Returns true if at end of file",
		[]string{"filenum - File number"}},
	"PEEK": {"PEEK(address)", "Returns byte at address",
		[]string{"address - Memory address"}},
	"TIMER": {"TIMER", "Returns seconds since midnight", nil},
}
