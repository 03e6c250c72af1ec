// Package catalog is the static knowledge base of the BASIC dialect:
// keyword and built-in function membership, completion entries, hover
// documentation and call signatures. All lookups expect uppercased input;
// the '$' suffix is significant for membership but stripped for docs.
package catalog

import "strings"

// Entry is a completable name with its one-line description.
type Entry struct {
	Name   string
	Detail string
}

// Keywords lists statement keywords offered by completion, in a fixed
// curated order (control flow first, then I/O, files, graphics, sound,
// misc, operators).
var Keywords = []Entry{
	{"IF", "Conditional execution"},
	{"THEN", "Part of IF statement"},
	{"ELSE", "Alternative branch"},
	{"FOR", "Counted loop"},
	{"TO", "Loop end value"},
	{"STEP", "Loop increment"},
	{"NEXT", "End of FOR loop"},
	{"WHILE", "Conditional loop"},
	{"WEND", "End of WHILE"},
	{"DO", "DO...LOOP block"},
	{"LOOP", "End of DO block"},
	{"UNTIL", "Loop exit condition"},
	{"EXIT", "Exit loop early"},
	{"GOTO", "Jump to line"},
	{"GOSUB", "Call subroutine"},
	{"RETURN", "Return from subroutine"},
	{"ON", "Computed GOTO/GOSUB"},
	{"SELECT", "Multi-way branch"},
	{"CASE", "Branch option"},
	{"END", "End program"},
	{"STOP", "Halt execution"},
	{"LET", "Variable assignment"},
	{"DIM", "Declare array"},
	{"PRINT", "Output to screen"},
	{"LPRINT", "Output to printer"},
	{"INPUT", "Read user input"},
	{"LINE", "LINE INPUT statement"},
	{"READ", "Read from DATA"},
	{"DATA", "Define data values"},
	{"RESTORE", "Reset DATA pointer"},
	{"REM", "Comment"},
	{"OPEN", "Open file"},
	{"CLOSE", "Close file"},
	{"KILL", "Delete file"},
	{"NAME", "Rename file"},
	{"MKDIR", "Create directory"},
	{"RMDIR", "Remove directory"},
	{"CHDIR", "Change directory"},
	{"FILES", "List files"},
	{"SCREEN", "Set screen mode"},
	{"COLOR", "Set colors"},
	{"CLS", "Clear screen"},
	{"LOCATE", "Position cursor"},
	{"WIDTH", "Set screen width"},
	{"CIRCLE", "Draw circle"},
	{"PAINT", "Flood fill"},
	{"PSET", "Set pixel"},
	{"PRESET", "Clear pixel"},
	{"DRAW", "Turtle graphics"},
	{"GET", "Capture sprite"},
	{"PUT", "Draw sprite"},
	{"PLAY", "Play music"},
	{"SOUND", "Play tone"},
	{"BEEP", "System beep"},
	{"DEF", "Define function"},
	{"SWAP", "Exchange variables"},
	{"RANDOMIZE", "Seed RNG"},
	{"CLEAR", "Clear variables"},
	{"POKE", "Write to memory"},
	{"AND", "Logical AND"},
	{"OR", "Logical OR"},
	{"XOR", "Logical XOR"},
	{"NOT", "Logical NOT"},
	{"MOD", "Modulo operator"},
}

// Functions lists built-in functions offered by completion.
var Functions = []Entry{
	{"CHR$", "Character from ASCII code"},
	{"ASC", "ASCII code of character"},
	{"LEN", "String length"},
	{"LEFT$", "Leftmost characters"},
	{"RIGHT$", "Rightmost characters"},
	{"MID$", "Substring"},
	{"STR$", "Number to string"},
	{"VAL", "String to number"},
	{"STRING$", "Repeat character"},
	{"SPACE$", "String of spaces"},
	{"INSTR", "Find substring"},
	{"UCASE$", "Uppercase"},
	{"LCASE$", "Lowercase"},
	{"LTRIM$", "Trim left spaces"},
	{"RTRIM$", "Trim right spaces"},
	{"HEX$", "Hexadecimal string"},
	{"OCT$", "Octal string"},
	{"ABS", "Absolute value"},
	{"SGN", "Sign of number"},
	{"INT", "Integer part (floor)"},
	{"FIX", "Truncate to integer"},
	{"CINT", "Round to integer"},
	{"SQR", "Square root"},
	{"SIN", "Sine"},
	{"COS", "Cosine"},
	{"TAN", "Tangent"},
	{"ATN", "Arctangent"},
	{"LOG", "Natural logarithm"},
	{"EXP", "Exponential"},
	{"RND", "Random number"},
	{"PEEK", "Read memory"},
	{"TIMER", "Seconds since midnight"},
	{"DATE$", "Current date"},
	{"TIME$", "Current time"},
	{"INKEY$", "Read key (no wait)"},
	{"EOF", "End of file check"},
	{"CSRLIN", "Cursor row"},
	{"POS", "Cursor column"},
	{"POINT", "Pixel color"},
	{"TAB", "Move to column"},
	{"SPC", "Output spaces"},
	{"FN", "User-defined function"},
}

// keywords is the full membership set used by highlighting and variable
// analysis. Wider than the completion list: it includes file-mode words
// (AS, OUTPUT, APPEND, RANDOM, BINARY), record I/O (WRITE, FIELD, LSET,
// RSET), and keywords completion has no reason to offer.
var keywords = map[string]bool{
	"REM": true, "LET": true, "DIM": true, "PRINT": true, "LPRINT": true,
	"INPUT": true, "LINE": true, "IF": true, "THEN": true, "ELSE": true,
	"ELSEIF": true, "END": true, "ENDIF": true, "FOR": true, "TO": true,
	"STEP": true, "NEXT": true, "WHILE": true, "WEND": true, "DO": true,
	"LOOP": true, "UNTIL": true, "EXIT": true, "SELECT": true, "CASE": true,
	"GOTO": true, "GOSUB": true, "RETURN": true, "ON": true, "READ": true,
	"DATA": true, "RESTORE": true, "DEF": true, "FN": true, "OPEN": true,
	"CLOSE": true, "GET": true, "PUT": true, "WRITE": true, "FIELD": true,
	"LSET": true, "RSET": true, "AS": true, "OUTPUT": true, "APPEND": true,
	"RANDOM": true, "BINARY": true, "SCREEN": true, "COLOR": true,
	"CLS": true, "LOCATE": true, "WIDTH": true, "CIRCLE": true,
	"PAINT": true, "PSET": true, "PRESET": true, "DRAW": true, "PLAY": true,
	"SOUND": true, "BEEP": true, "SWAP": true, "RANDOMIZE": true,
	"CLEAR": true, "STOP": true, "POKE": true, "PEEK": true, "OUT": true,
	"INP": true, "WAIT": true, "AND": true, "OR": true, "XOR": true,
	"NOT": true, "MOD": true, "IMP": true, "EQV": true, "KILL": true,
	"NAME": true, "MKDIR": true, "RMDIR": true, "CHDIR": true,
	"FILES": true, "CALL": true, "CHAIN": true, "COMMON": true,
	"SHARED": true, "STATIC": true, "SUB": true, "USING": true,
}

var functions = map[string]bool{
	"CHR$": true, "ASC": true, "LEN": true, "LEFT$": true, "RIGHT$": true,
	"MID$": true, "STR$": true, "VAL": true, "STRING$": true,
	"SPACE$": true, "INSTR": true, "UCASE$": true, "LCASE$": true,
	"LTRIM$": true, "RTRIM$": true, "HEX$": true, "OCT$": true,
	"ABS": true, "SGN": true, "INT": true, "FIX": true, "CINT": true,
	"SQR": true, "SIN": true, "COS": true, "TAN": true, "ATN": true,
	"LOG": true, "EXP": true, "RND": true, "PEEK": true, "TIMER": true,
	"DATE$": true, "TIME$": true, "INKEY$": true, "EOF": true,
	"CSRLIN": true, "POS": true, "POINT": true, "TAB": true, "SPC": true,
	"LOF": true, "LOC": true, "FRE": true, "VARPTR": true,
	"VARPTR$": true, "SADD": true,
}

// builtinVars are pseudo-variables readable without declaration. The
// definedness check never warns about them.
var builtinVars = map[string]bool{
	"TIMER": true, "DATE$": true, "TIME$": true, "INKEY$": true,
	"ERR": true, "ERL": true,
}

// IsKeyword reports whether word (uppercase) is a statement keyword.
func IsKeyword(word string) bool { return keywords[word] }

// IsFunction reports whether word (uppercase) is a built-in function.
func IsFunction(word string) bool { return functions[word] }

// IsBuiltinVar reports whether word (uppercase) is a built-in
// pseudo-variable.
func IsBuiltinVar(word string) bool { return builtinVars[word] }

// IsReserved reports whether word (uppercase) is any reserved name.
func IsReserved(word string) bool {
	return keywords[word] || functions[word]
}

// Doc returns the hover markdown for a keyword or built-in function.
// The '$' suffix is stripped before the lookup so CHR and CHR$ resolve
// to the same entry.
func Doc(word string) (string, bool) {
	doc, ok := docs[strings.TrimRight(strings.ToUpper(word), "$")]
	return doc, ok
}
