package lang

// TokenKind enumerates the language's fixed token set.
type TokenKind int

const (
	TokenGrid TokenKind = iota
	TokenAt
	TokenWidth
	TokenHeight
	TokenEntity
	TokenRect
	TokenCircle
	TokenSquare
	TokenStair
	TokenLadder
	TokenX
	TokenWithin
	TokenXor
	TokenRadius
	TokenLine
	TokenAlong
	TokenLeft
	TokenRight
	TokenTop
	TokenBottom
	TokenFrom
	TokenLength
	TokenNumber
	TokenComma
)

// keywords maps source identifiers to their token kinds.
var keywords = map[string]TokenKind{
	"grid":   TokenGrid,
	"at":     TokenAt,
	"width":  TokenWidth,
	"height": TokenHeight,
	"entity": TokenEntity,
	"rect":   TokenRect,
	"circle": TokenCircle,
	"square": TokenSquare,
	"stair":  TokenStair,
	"ladder": TokenLadder,
	"x":      TokenX,
	"within": TokenWithin,
	"xor":    TokenXor,
	"radius": TokenRadius,
	"line":   TokenLine,
	"along":  TokenAlong,
	"left":   TokenLeft,
	"right":  TokenRight,
	"top":    TokenTop,
	"bottom": TokenBottom,
	"from":   TokenFrom,
	"length": TokenLength,
}

// String returns the kind as it appears in diagnostics.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenComma:
		return "','"
	}
	for word, kind := range keywords {
		if kind == k {
			return "'" + word + "'"
		}
	}
	return "unknown token"
}

// Token is one lexeme with its source position. Value is set only for
// number tokens.
type Token struct {
	Kind  TokenKind
	Value int
	Pos   Position
}
