package catalog

// docs maps '$'-stripped uppercase names to hover markdown. The first
// line states the call shape in bold, the rest explains behavior.
var docs = map[string]string{
	// Control flow
	"IF":     "**IF** condition **THEN** statement [**ELSE** statement]\n\nConditional execution. If the condition is true, executes the THEN clause; otherwise executes the optional ELSE clause.",
	"THEN":   "**THEN**\n\nPart of IF...THEN...ELSE statement. Introduces the code to execute when the condition is true.",
	"ELSE":   "**ELSE**\n\nPart of IF...THEN...ELSE statement. Introduces the code to execute when the condition is false.",
	"FOR":    "**FOR** var **=** start **TO** end [**STEP** step]\n\nBegin a counted loop. The variable is initialized to start and incremented by step (default 1) until it exceeds end.",
	"TO":     "**TO**\n\nPart of FOR...TO...STEP statement. Specifies the ending value of the loop.",
	"STEP":   "**STEP** value\n\nOptional part of FOR loop. Specifies the increment (can be negative for counting down).",
	"NEXT":   "**NEXT** [var]\n\nEnd of FOR loop. Increments the loop variable and continues if not past the end value.",
	"WHILE":  "**WHILE** condition\n\nBegin a conditional loop. Repeats while the condition is true.",
	"WEND":   "**WEND**\n\nEnd of WHILE loop. Returns to WHILE to re-check the condition.",
	"DO":     "**DO** [**WHILE**|**UNTIL** condition]\n\nBegin a DO...LOOP block. Can have condition at start or end.",
	"LOOP":   "**LOOP** [**WHILE**|**UNTIL** condition]\n\nEnd of DO...LOOP block. Can have condition at end.",
	"UNTIL":  "**UNTIL** condition\n\nLoop exit condition. Loop continues until the condition becomes true.",
	"EXIT":   "**EXIT** **DO** | **EXIT** **FOR**\n\nExit from the innermost DO or FOR loop.",
	"GOTO":   "**GOTO** line\n\nUnconditional jump to the specified line number.",
	"GOSUB":  "**GOSUB** line\n\nCall subroutine at line number. Use RETURN to come back.",
	"RETURN": "**RETURN**\n\nReturn from subroutine to the statement after GOSUB.",
	"ON":     "**ON** expr **GOTO** line1, line2, ... | **ON** expr **GOSUB** line1, line2, ...\n\nComputed GOTO/GOSUB. Jumps to the nth line in the list based on the expression value.",
	"SELECT": "**SELECT CASE** expr\n\nBegin a SELECT CASE block for multi-way branching.",
	"CASE":   "**CASE** value | **CASE** v1 **TO** v2 | **CASE IS** op value | **CASE ELSE**\n\nDefines a case in SELECT CASE block.",
	"END":    "**END**\n\nTerminate program execution.",
	"STOP":   "**STOP**\n\nHalt program execution (can be resumed in some implementations).",

	// I/O
	"PRINT":   "**PRINT** [expr] [; | ,] ...\n\nOutput to screen. Semicolon continues on same line; comma moves to next tab zone.",
	"LPRINT":  "**LPRINT** [expr] [; | ,] ...\n\nOutput to printer. Same format as PRINT.",
	"INPUT":   "**INPUT** [\"prompt\";] var1 [, var2, ...]\n\nRead input from user. Displays optional prompt and waits for keyboard input.",
	"LINE":    "**LINE INPUT** [\"prompt\";] var$\n\nRead entire line of input including commas into string variable.",
	"READ":    "**READ** var1 [, var2, ...]\n\nRead values from DATA statements into variables.",
	"DATA":    "**DATA** value1, value2, ...\n\nDefine constant data to be read by READ statements.",
	"RESTORE": "**RESTORE** [line]\n\nReset DATA pointer to beginning or to specified line.",

	// Variables and arrays
	"LET":  "**LET** var = expr | var = expr\n\nAssign value to variable. LET keyword is optional.",
	"DIM":  "**DIM** array(size) [, array2(size), ...]\n\nDeclare array dimensions. Arrays are 0-indexed by default.",
	"SWAP": "**SWAP** var1, var2\n\nExchange values of two variables.",

	// String functions
	"CHR":    "**CHR$(n)**\n\nReturns the character with ASCII code n.\n\nExample: `CHR$(65)` returns `\"A\"`",
	"ASC":    "**ASC(string$)**\n\nReturns the ASCII code of the first character.\n\nExample: `ASC(\"A\")` returns `65`",
	"LEN":    "**LEN(string$)**\n\nReturns the length of the string.\n\nExample: `LEN(\"Hello\")` returns `5`",
	"LEFT":   "**LEFT$(string$, n)**\n\nReturns the leftmost n characters.\n\nExample: `LEFT$(\"Hello\", 2)` returns `\"He\"`",
	"RIGHT":  "**RIGHT$(string$, n)**\n\nReturns the rightmost n characters.\n\nExample: `RIGHT$(\"Hello\", 2)` returns `\"lo\"`",
	"MID":    "**MID$(string$, start [, length])**\n\nReturns substring starting at position start (1-based).\n\nExample: `MID$(\"Hello\", 2, 3)` returns `\"ell\"`",
	"STR":    "**STR$(n)**\n\nConverts number to string.\n\nExample: `STR$(42)` returns `\" 42\"` (with leading space for positive)",
	"VAL":    "**VAL(string$)**\n\nConverts string to number.\n\nExample: `VAL(\"3.14\")` returns `3.14`",
	"STRING": "**STRING$(n, char)**\n\nReturns string of n copies of character.\n\nExample: `STRING$(5, 42)` returns `\"*****\"`",
	"SPACE":  "**SPACE$(n)**\n\nReturns string of n spaces.\n\nExample: `SPACE$(5)` returns `\"     \"`",
	"INSTR":  "**INSTR([start,] string1$, string2$)**\n\nReturns position of string2$ in string1$ (1-based, 0 if not found).\n\nExample: `INSTR(\"Hello\", \"ll\")` returns `3`",
	"UCASE":  "**UCASE$(string$)**\n\nConverts string to uppercase.\n\nExample: `UCASE$(\"Hello\")` returns `\"HELLO\"`",
	"LCASE":  "**LCASE$(string$)**\n\nConverts string to lowercase.\n\nExample: `LCASE$(\"Hello\")` returns `\"hello\"`",
	"LTRIM":  "**LTRIM$(string$)**\n\nRemoves leading spaces.\n\nExample: `LTRIM$(\"  Hi\")` returns `\"Hi\"`",
	"RTRIM":  "**RTRIM$(string$)**\n\nRemoves trailing spaces.",
	"HEX":    "**HEX$(n)**\n\nReturns hexadecimal representation of number.\n\nExample: `HEX$(255)` returns `\"FF\"`",
	"OCT":    "**OCT$(n)**\n\nReturns octal representation of number.",

	// Math functions
	"ABS":       "**ABS(n)**\n\nReturns absolute value.\n\nExample: `ABS(-5)` returns `5`",
	"SGN":       "**SGN(n)**\n\nReturns sign: -1 if negative, 0 if zero, 1 if positive.",
	"INT":       "**INT(n)**\n\nReturns largest integer not greater than n (floor).\n\nExample: `INT(3.7)` returns `3`, `INT(-3.7)` returns `-4`",
	"FIX":       "**FIX(n)**\n\nReturns integer part (truncates toward zero).\n\nExample: `FIX(-3.7)` returns `-3`",
	"CINT":      "**CINT(n)**\n\nConverts to integer with rounding.",
	"SQR":       "**SQR(n)**\n\nReturns square root.\n\nExample: `SQR(16)` returns `4`",
	"SIN":       "**SIN(n)**\n\nReturns sine of angle in radians.",
	"COS":       "**COS(n)**\n\nReturns cosine of angle in radians.",
	"TAN":       "**TAN(n)**\n\nReturns tangent of angle in radians.",
	"ATN":       "**ATN(n)**\n\nReturns arctangent in radians.",
	"LOG":       "**LOG(n)**\n\nReturns natural logarithm (base e).",
	"EXP":       "**EXP(n)**\n\nReturns e raised to the power n.",
	"RND":       "**RND** [(n)]\n\nReturns random number between 0 and 1.\n\nUse `RANDOMIZE` to seed the generator.",
	"RANDOMIZE": "**RANDOMIZE** [seed]\n\nSeed the random number generator. Without argument, uses system time.",

	// I/O and system functions
	"INKEY":  "**INKEY$**\n\nReturns key pressed (empty string if none). Non-blocking keyboard input.",
	"TAB":    "**TAB(n)**\n\nMove to column n in PRINT statement.",
	"SPC":    "**SPC(n)**\n\nOutput n spaces in PRINT statement.",
	"TIMER":  "**TIMER**\n\nReturns seconds since midnight as floating-point number.",
	"DATE":   "**DATE$**\n\nReturns current date as string.",
	"TIME":   "**TIME$**\n\nReturns current time as string.",
	"EOF":    "**EOF(n)**\n\nReturns -1 (true) if end of file reached on file #n.",
	"PEEK":   "**PEEK(address)**\n\nReturns byte value at memory address.",
	"POKE":   "**POKE** address, value\n\nWrite byte value to memory address.",
	"POINT":  "**POINT(x, y)**\n\nReturns color of pixel at coordinates.",
	"CSRLIN": "**CSRLIN**\n\nReturns current cursor row. 1-based, like LOCATE.",
	"POS":    "**POS(n)**\n\nReturns current cursor column. The argument is ignored.",

	// Graphics and sound
	"SCREEN": "**SCREEN** mode [, colorswitch]\n\nSet graphics mode. Mode 0 is text, higher modes are graphics.",
	"COLOR":  "**COLOR** foreground [, background [, border]]\n\nSet text or graphics colors.",
	"CLS":    "**CLS**\n\nClear screen.",
	"LOCATE": "**LOCATE** row, col [, cursor]\n\nPosition text cursor. Row and column are 1-based.",
	"CIRCLE": "**CIRCLE** (x, y), radius [, color]\n\nDraw circle centered at (x, y).",
	"PAINT":  "**PAINT** (x, y) [, color [, border]]\n\nFlood fill starting at (x, y).",
	"PSET":   "**PSET** (x, y) [, color]\n\nSet pixel at coordinates.",
	"PRESET": "**PRESET** (x, y)\n\nReset pixel at coordinates to background color.",
	"GET":    "**GET** (x1, y1)-(x2, y2), array\n\nCapture screen rectangle into array (sprite capture).",
	"PUT":    "**PUT** (x, y), array\n\nDraw array contents at position (sprite draw).",
	"DRAW":   "**DRAW** command$\n\nTurtle graphics. Commands: U/D/L/R (move), M (move to), C (color), etc.",
	"PLAY":   "**PLAY** music$\n\nPlay music notation. Notes: A-G, O (octave), L (length), T (tempo).",
	"SOUND":  "**SOUND** frequency, duration\n\nPlay tone at frequency (Hz) for duration.",
	"BEEP":   "**BEEP**\n\nPlay system beep sound.",
	"WIDTH":  "**WIDTH** columns\n\nSet screen width (40 or 80 columns typically).",

	// File I/O
	"OPEN":  "**OPEN** filename$ **FOR** mode **AS** #n\n\nOpen file. Modes: INPUT, OUTPUT, APPEND.",
	"CLOSE": "**CLOSE** [#n]\n\nClose file. Without argument, closes all files.",
	"KILL":  "**KILL** filename$\n\nDelete file.",
	"NAME":  "**NAME** oldname$ **AS** newname$\n\nRename file.",
	"FILES": "**FILES** [pattern$]\n\nList files matching pattern.",
	"MKDIR": "**MKDIR** dirname$\n\nCreate directory.",
	"RMDIR": "**RMDIR** dirname$\n\nRemove directory.",
	"CHDIR": "**CHDIR** dirname$\n\nChange current directory.",

	// Operators
	"AND": "**AND**\n\nLogical AND operator. Returns true if both operands are true.\n\nExample: `IF A > 0 AND B > 0 THEN ...`",
	"OR":  "**OR**\n\nLogical OR operator. Returns true if either operand is true.\n\nExample: `IF A = 1 OR A = 2 THEN ...`",
	"XOR": "**XOR**\n\nLogical exclusive OR. Returns true if operands differ.",
	"NOT": "**NOT**\n\nLogical NOT operator. Inverts boolean value.\n\nExample: `IF NOT EOF(1) THEN ...`",
	"MOD": "**MOD**\n\nModulo operator. Returns remainder of integer division.\n\nExample: `10 MOD 3` returns `1`",

	// Error handling
	"ERROR":  "**ON ERROR GOTO** line\n\nSet error trap. When error occurs, jumps to specified line.",
	"RESUME": "**RESUME** [line | **NEXT**]\n\nContinue after error. RESUME retries, RESUME NEXT continues, RESUME line jumps.",

	// Other
	"REM":   "**REM** comment\n\nComment. Everything after REM is ignored.",
	"DEF":   "**DEF FN**name(params) = expression\n\nDefine user function.\n\nExample: `DEF FNSQUARE(X) = X * X`",
	"FN":    "**FN**name(args)\n\nCall user-defined function.\n\nExample: `Y = FNSQUARE(5)`",
	"CLEAR": "**CLEAR**\n\nClear all variables and reset program state.",
	"CHAIN": "**CHAIN** filename$ [, line]\n\nLoad and run another BASIC program.",
}
