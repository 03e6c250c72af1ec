package lsp

// Semantic token legend. Token type constants index into tokenTypes and
// must stay in sync with it.
var tokenTypes = []string{
	"keyword",
	"function",
	"variable",
	"string",
	"number",
	"comment",
	"operator",
}

var tokenModifiers = []string{
	"declaration",
	"definition",
}

const (
	tokenKeyword = iota
	tokenFunction
	tokenVariable
	tokenString
	tokenNumber
	tokenComment
	tokenOperator
)
