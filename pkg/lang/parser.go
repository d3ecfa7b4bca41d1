package lang

import (
	"github.com/mapforge/mapforge/pkg/geometry"
	"github.com/mapforge/mapforge/pkg/grid"
)

// Parse lexes and parses input into an AST. The grammar is:
//
//	program  := grid_decl (shape_or_entity)*
//	grid_decl := "grid" NUMBER "," NUMBER
//	shape_or_entity := ("xor")? (rect | line) | entity
//	rect     := "rect" "at" point "width" NUMBER "height" NUMBER
//	line     := "line" "along" ("left"|"top"|"right"|"bottom")
//	            "from" point "length" NUMBER
//	entity   := "entity" shape ("within" point | "at" point ("radius" NUMBER)?)
//	shape    := "circle" | "square" | "stair" | "ladder" | "x"
//	point    := NUMBER "," NUMBER
//
// Only circles may be anchored "at" a grid intersection (with a mandatory
// radius); every other shape must be placed "within" a cell.
func Parse(input string) (*AST, *Error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.parse()
}

type parser struct {
	tokens []Token
	i      int
}

func (p *parser) parse() (*AST, *Error) {
	ast := &AST{}

	gridNode, err := p.parseGridDimensions()
	if err != nil {
		return nil, err
	}
	ast.Nodes = append(ast.Nodes, gridNode)

	for p.nextMatchesAny(TokenRect, TokenEntity, TokenXor, TokenLine) {
		op := p.parseBoolOp()
		var node Node
		switch {
		case p.nextMatches(TokenRect):
			node, err = p.parseRect(op)
		case p.nextMatches(TokenLine):
			node, err = p.parseLine(op)
		default:
			node, err = p.parseEntity()
		}
		if err != nil {
			return nil, err
		}
		ast.Nodes = append(ast.Nodes, node)
	}

	// Anything left over is not a declaration; the original toolchain
	// silently ignored trailing tokens, which hid real mistakes.
	if !p.atEnd() {
		tok := p.tokens[p.i]
		return nil, syntaxError(TokenRect, tok)
	}

	return ast, nil
}

func (p *parser) parseGridDimensions() (Node, *Error) {
	tok, err := p.accept(TokenGrid)
	if err != nil {
		return Node{}, err
	}
	width, err := p.acceptNumber()
	if err != nil {
		return Node{}, err
	}
	if _, err := p.accept(TokenComma); err != nil {
		return Node{}, err
	}
	height, err := p.acceptNumber()
	if err != nil {
		return Node{}, err
	}
	return Node{
		Kind: NodeGrid,
		Pos:  tok.Pos,
		Grid: &GridNode{Width: width, Height: height},
	}, nil
}

func (p *parser) parseBoolOp() geometry.BoolOp {
	if p.nextMatches(TokenXor) {
		p.i++
		return geometry.Xor
	}
	return geometry.Or
}

func (p *parser) parseRect(op geometry.BoolOp) (Node, *Error) {
	tok, err := p.accept(TokenRect)
	if err != nil {
		return Node{}, err
	}
	if _, err := p.accept(TokenAt); err != nil {
		return Node{}, err
	}
	point, err := p.parsePoint()
	if err != nil {
		return Node{}, err
	}
	if _, err := p.accept(TokenWidth); err != nil {
		return Node{}, err
	}
	width, err := p.acceptNumber()
	if err != nil {
		return Node{}, err
	}
	if _, err := p.accept(TokenHeight); err != nil {
		return Node{}, err
	}
	height, err := p.acceptNumber()
	if err != nil {
		return Node{}, err
	}
	return Node{
		Kind: NodeRect,
		Pos:  tok.Pos,
		Rect: &geometry.Rect{Point: point, Width: width, Height: height, Op: op},
	}, nil
}

func (p *parser) parseLine(op geometry.BoolOp) (Node, *Error) {
	tok, err := p.accept(TokenLine)
	if err != nil {
		return Node{}, err
	}
	if _, err := p.accept(TokenAlong); err != nil {
		return Node{}, err
	}
	orientation, err := p.parseOrientation()
	if err != nil {
		return Node{}, err
	}
	if _, err := p.accept(TokenFrom); err != nil {
		return Node{}, err
	}
	start, err := p.parsePoint()
	if err != nil {
		return Node{}, err
	}
	if _, err := p.accept(TokenLength); err != nil {
		return Node{}, err
	}
	length, err := p.acceptNumber()
	if err != nil {
		return Node{}, err
	}
	return Node{
		Kind: NodeLine,
		Pos:  tok.Pos,
		Line: &geometry.Line{Orientation: orientation, Start: start, Length: length, Op: op},
	}, nil
}

func (p *parser) parseOrientation() (geometry.Orientation, *Error) {
	tok, err := p.consume()
	if err != nil {
		return 0, err
	}
	switch tok.Kind {
	case TokenLeft:
		return geometry.OrientLeft, nil
	case TokenTop:
		return geometry.OrientTop, nil
	case TokenRight:
		return geometry.OrientRight, nil
	case TokenBottom:
		return geometry.OrientBottom, nil
	}
	return 0, NewError(InvalidOrientation, tok.Pos)
}

func (p *parser) parseEntity() (Node, *Error) {
	tok, err := p.accept(TokenEntity)
	if err != nil {
		return Node{}, err
	}
	shapeTok, err := p.parseShape()
	if err != nil {
		return Node{}, err
	}

	posTok, err := p.consume()
	if err != nil {
		return Node{}, err
	}
	var position grid.Position
	switch posTok.Kind {
	case TokenWithin:
		position = grid.Within
	case TokenAt:
		position = grid.At
	default:
		return Node{}, NewError(InvalidPosition, posTok.Pos)
	}

	point, err := p.parsePoint()
	if err != nil {
		return Node{}, err
	}

	var shape geometry.Shape
	switch shapeTok.Kind {
	case TokenCircle:
		radius := 0
		if position == grid.At {
			if _, err := p.accept(TokenRadius); err != nil {
				return Node{}, err
			}
			if radius, err = p.acceptNumber(); err != nil {
				return Node{}, err
			}
		}
		shape = geometry.Circle(radius)
	case TokenSquare, TokenStair, TokenLadder, TokenX:
		// Cell glyphs have no intersection extent; anchoring them "at"
		// a point is meaningless.
		if position == grid.At {
			return Node{}, NewError(InvalidPosition, posTok.Pos)
		}
		shape = geometry.Shape{Kind: glyphKind(shapeTok.Kind)}
	}

	return Node{
		Kind: NodeEntity,
		Pos:  tok.Pos,
		Entity: &EntityNode{
			Shape:    shape,
			Point:    point,
			Position: position,
		},
	}, nil
}

func (p *parser) parseShape() (Token, *Error) {
	tok, err := p.consume()
	if err != nil {
		return Token{}, err
	}
	switch tok.Kind {
	case TokenCircle, TokenSquare, TokenStair, TokenLadder, TokenX:
		return tok, nil
	}
	return Token{}, NewError(InvalidShape, tok.Pos)
}

func glyphKind(kind TokenKind) geometry.ShapeKind {
	switch kind {
	case TokenSquare:
		return geometry.ShapeSquare
	case TokenStair:
		return geometry.ShapeStair
	case TokenLadder:
		return geometry.ShapeLadder
	default:
		return geometry.ShapeX
	}
}

func (p *parser) parsePoint() (geometry.Point, *Error) {
	x, err := p.acceptNumber()
	if err != nil {
		return geometry.Point{}, err
	}
	if _, err := p.accept(TokenComma); err != nil {
		return geometry.Point{}, err
	}
	y, err := p.acceptNumber()
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Pt(x, y), nil
}

func (p *parser) accept(kind TokenKind) (Token, *Error) {
	tok, err := p.consume()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, syntaxError(kind, tok)
	}
	return tok, nil
}

func (p *parser) acceptNumber() (int, *Error) {
	tok, err := p.accept(TokenNumber)
	if err != nil {
		return 0, err
	}
	return tok.Value, nil
}

func (p *parser) consume() (Token, *Error) {
	if p.atEnd() {
		return Token{}, NewError(UnexpectedEOF, p.lastPos())
	}
	tok := p.tokens[p.i]
	p.i++
	return tok, nil
}

func (p *parser) nextMatchesAny(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.nextMatches(kind) {
			return true
		}
	}
	return false
}

func (p *parser) nextMatches(kind TokenKind) bool {
	return !p.atEnd() && p.tokens[p.i].Kind == kind
}

func (p *parser) atEnd() bool {
	return p.i >= len(p.tokens)
}

// lastPos approximates the position of end-of-input for diagnostics.
func (p *parser) lastPos() Position {
	if len(p.tokens) == 0 {
		return Position{Line: 1, Col: 1}
	}
	return p.tokens[len(p.tokens)-1].Pos
}

func syntaxError(expected TokenKind, actual Token) *Error {
	return &Error{
		Kind:     SyntaxError,
		Pos:      actual.Pos,
		Expected: expected,
		Actual:   actual.Kind,
	}
}
