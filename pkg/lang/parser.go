// Package lang is the hand-written lexer and recursive-descent parser for
// the panel description language: primitive shapes, composite
// positioners, surface annotations, and the `let` binding forms. It turns
// source text into a Program — an ordered statement list — without
// resolving any `!{ … }` expression or VarRef; pkg/panel's resolver owns
// that walk, since it is the only stage that holds both the numeric and
// feature binding environments at once.
package lang

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/panelgo/pkg/feature"
	"github.com/chazu/panelgo/pkg/geom"
	"github.com/chazu/panelgo/pkg/perr"
)

// StatementKind distinguishes the three top-level statement forms.
type StatementKind int

const (
	StmtLetFeature StatementKind = iota
	StmtLetNumber
	StmtFeatureExpr
)

// Statement is one top-level program entry, in source order.
type Statement struct {
	Kind       StatementKind
	Name       string          // LetFeature, LetNumber
	Feature    feature.Feature // LetFeature, FeatureExpr (template, not yet resolved)
	NumberExpr string          // LetNumber: the raw text inside !{ }
	Span       perr.Span
}

// Program is the parser's complete output: the ordered statement list.
// feature_env/number_env from §4.1 are not materialized here — they only
// exist once pkg/panel's resolver has walked the statements and evaluated
// each binding's right-hand side.
type Program struct {
	Statements []Statement
}

type nameKind int

const (
	kindFeature nameKind = iota
	kindNumber
)

// Parse lexes and parses src into a Program, or returns the first error
// encountered (a *perr.Error).
func Parse(src string) (*Program, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, names: map[string]nameKind{}}
	return p.parseProgram()
}

// parser tracks, in addition to the token cursor, which names have been
// bound so far and whether each is a feature or numeric binding — enough
// to catch UndefinedVariable/BadType at $name use sites without doing the
// full numeric evaluation that belongs to pkg/panel.
type parser struct {
	toks  []token
	pos   int
	names map[string]nameKind
}

func (p *parser) cur() token { return p.toks[p.pos] }

func (p *parser) peekAt(i int) token {
	idx := p.pos + i
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	if p.cur().kind != kind {
		return token{}, perr.Parse(fmt.Sprintf("unexpected token %q", p.cur().text), p.cur().span)
	}
	return p.advance(), nil
}

func (p *parser) parseProgram() (*Program, error) {
	var stmts []Statement
	for p.cur().kind != tokEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &Program{Statements: stmts}, nil
}

func (p *parser) parseStatement() (Statement, error) {
	tok := p.cur()
	if tok.kind == tokIdent && tok.text == "let" {
		return p.parseLet()
	}
	f, err := p.parseFeatureExpr()
	if err != nil {
		return Statement{}, err
	}
	return Statement{Kind: StmtFeatureExpr, Feature: f, Span: tok.span}, nil
}

func (p *parser) parseLet() (Statement, error) {
	span := p.cur().span
	p.advance() // "let"
	if p.cur().kind != tokIdent {
		return Statement{}, perr.Parse("expected an identifier after let", p.cur().span)
	}
	name := p.cur().text
	p.advance()
	if _, err := p.expect(tokEquals); err != nil {
		return Statement{}, err
	}
	if p.cur().kind == tokBang {
		p.advance()
		if _, err := p.expect(tokLBrace); err != nil {
			return Statement{}, err
		}
		text, err := p.collectExprText()
		if err != nil {
			return Statement{}, err
		}
		if _, err := p.expect(tokRBrace); err != nil {
			return Statement{}, err
		}
		if _, err := p.expect(tokSemicolon); err != nil {
			return Statement{}, err
		}
		p.names[name] = kindNumber
		return Statement{Kind: StmtLetNumber, Name: name, NumberExpr: text, Span: span}, nil
	}
	f, err := p.parseFeatureExpr()
	if err != nil {
		return Statement{}, err
	}
	if _, err := p.expect(tokSemicolon); err != nil {
		return Statement{}, err
	}
	p.names[name] = kindFeature
	return Statement{Kind: StmtLetFeature, Name: name, Feature: f, Span: span}, nil
}

// collectExprText reads raw tokens up to (but not including) the closing
// "}" of a !{ … } block and re-serializes them space-separated; pkg/numexpr
// re-lexes this text itself, so exact spacing does not matter.
func (p *parser) collectExprText() (string, error) {
	var parts []string
	depth := 0
	for {
		tok := p.cur()
		if tok.kind == tokEOF {
			return "", perr.Parse("unterminated !{ } expression", tok.span)
		}
		if tok.kind == tokLBrace {
			depth++
		}
		if tok.kind == tokRBrace {
			if depth == 0 {
				break
			}
			depth--
		}
		parts = append(parts, tok.text)
		p.advance()
	}
	return strings.Join(parts, " "), nil
}

func (p *parser) parseFeatureExpr() (feature.Feature, error) {
	tok := p.cur()
	switch tok.kind {
	case tokLBracket:
		return p.parseArray()
	case tokLParen:
		return p.parseTuple()
	case tokDollar:
		return p.parseVarRef()
	case tokIdent:
		switch tok.text {
		case "R":
			return p.parsePrimitive(primRect)
		case "C":
			return p.parsePrimitive(primCircle)
		case "T":
			return p.parsePrimitive(primTriangle)
		case "mount_cut", "mount_cut_left", "mount_cut_right":
			return p.parseMount()
		case "column":
			return p.parseColumn()
		case "wrap":
			return p.parseWrap()
		case "negative":
			return p.parseNegative()
		case "rotate":
			return p.parseRotate()
		default:
			return nil, perr.Parse(fmt.Sprintf("unexpected identifier %q", tok.text), tok.span)
		}
	default:
		return nil, perr.Parse("expected a feature expression", tok.span)
	}
}

// parseNumber handles the grammar's `number` production: a signed decimal
// literal, or a !{ … } expression carried unevaluated on Number.Expr.
func (p *parser) parseNumber() (feature.Number, error) {
	neg := false
	switch p.cur().kind {
	case tokMinus:
		neg = true
		p.advance()
	case tokPlus:
		p.advance()
	}
	if p.cur().kind == tokBang {
		span := p.cur().span
		p.advance()
		if _, err := p.expect(tokLBrace); err != nil {
			return feature.Number{}, err
		}
		text, err := p.collectExprText()
		if err != nil {
			return feature.Number{}, err
		}
		if _, err := p.expect(tokRBrace); err != nil {
			return feature.Number{}, err
		}
		if neg {
			text = "-(" + text + ")"
		}
		return feature.Number{Expr: text, Span: span}, nil
	}
	if p.cur().kind != tokNumber {
		return feature.Number{}, perr.Parse("expected a number", p.cur().span)
	}
	text := p.cur().text
	span := p.cur().span
	p.advance()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return feature.Number{}, perr.Parse("invalid numeric literal "+text, span)
	}
	if neg {
		v = -v
	}
	return feature.Number{Literal: v, Span: span}, nil
}

func negateNumber(n feature.Number) feature.Number {
	if n.IsResolved() {
		return feature.Lit(-n.Literal)
	}
	return feature.Number{Expr: "-(" + n.Expr + ")", Span: n.Span}
}

// parseLiteralNumber handles the two grammar positions — @(x,y) center
// overrides and angle(θ) — whose underlying feature fields are plain
// float64 rather than Number, so a !{ … } expression can't be carried
// unevaluated there. See DESIGN.md for the rationale.
func (p *parser) parseLiteralNumber() (float64, error) {
	neg := false
	switch p.cur().kind {
	case tokMinus:
		neg = true
		p.advance()
	case tokPlus:
		p.advance()
	}
	if p.cur().kind != tokNumber {
		return 0, perr.Parse("expected a literal number here (expressions are not supported in this position)", p.cur().span)
	}
	v, err := strconv.ParseFloat(p.cur().text, 64)
	if err != nil {
		return 0, perr.Parse("invalid numeric literal "+p.cur().text, p.cur().span)
	}
	p.advance()
	if neg {
		v = -v
	}
	return v, nil
}

type primKind int

const (
	primRect primKind = iota
	primCircle
	primTriangle
)

// typeParams accumulates a primitive's "<...>" parameter list: an
// optional leading @(x,y) center override, then a mix of positional and
// named parameters.
type typeParams struct {
	centerX, centerY *float64
	positional        []feature.Number
	named             map[string]feature.Number
	namedPairs        map[string][2]feature.Number
}

func (p *parser) parseTypeParams() (typeParams, error) {
	tp := typeParams{named: map[string]feature.Number{}, namedPairs: map[string][2]feature.Number{}}
	if _, err := p.expect(tokLAngle); err != nil {
		return tp, err
	}
	if p.cur().kind == tokAt {
		p.advance()
		if _, err := p.expect(tokLParen); err != nil {
			return tp, err
		}
		x, err := p.parseLiteralNumber()
		if err != nil {
			return tp, err
		}
		if _, err := p.expect(tokComma); err != nil {
			return tp, err
		}
		y, err := p.parseLiteralNumber()
		if err != nil {
			return tp, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return tp, err
		}
		tp.centerX, tp.centerY = &x, &y
		if _, err := p.expect(tokComma); err != nil {
			return tp, err
		}
	}
	for p.cur().kind != tokRAngle {
		if err := p.parseParam(&tp); err != nil {
			return tp, err
		}
		if p.cur().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokRAngle); err != nil {
		return tp, err
	}
	return tp, nil
}

func (p *parser) parseParam(tp *typeParams) error {
	if p.cur().kind == tokIdent && p.peekAt(1).kind == tokEquals {
		name := p.cur().text
		p.advance()
		p.advance() // "="
		if p.cur().kind == tokLParen {
			p.advance()
			a, err := p.parseNumber()
			if err != nil {
				return err
			}
			if _, err := p.expect(tokComma); err != nil {
				return err
			}
			b, err := p.parseNumber()
			if err != nil {
				return err
			}
			if _, err := p.expect(tokRParen); err != nil {
				return err
			}
			tp.namedPairs[name] = [2]feature.Number{a, b}
			return nil
		}
		v, err := p.parseNumber()
		if err != nil {
			return err
		}
		tp.named[name] = v
		return nil
	}
	v, err := p.parseNumber()
	if err != nil {
		return err
	}
	tp.positional = append(tp.positional, v)
	return nil
}

func rectDims(tp typeParams) (feature.Number, feature.Number, error) {
	var w, h feature.Number
	found := false
	if pair, ok := tp.namedPairs["size"]; ok {
		w, h = pair[0], pair[1]
		found = true
	}
	switch len(tp.positional) {
	case 1:
		w, h = tp.positional[0], tp.positional[0]
		found = true
	case 2:
		w, h = tp.positional[0], tp.positional[1]
		found = true
	}
	if v, ok := tp.named["width"]; ok {
		w, found = v, true
	}
	if v, ok := tp.named["height"]; ok {
		h, found = v, true
	}
	if !found {
		return w, h, perr.GeometryError("R<...> requires a width and height")
	}
	return w, h, nil
}

func circleDim(tp typeParams) (feature.Number, error) {
	if v, ok := tp.named["radius"]; ok {
		return v, nil
	}
	if len(tp.positional) >= 1 {
		return tp.positional[0], nil
	}
	return feature.Number{}, perr.GeometryError("C<...> requires a radius")
}

func triangleDims(tp typeParams) (feature.Number, feature.Number, error) {
	var w, h feature.Number
	found := false
	switch len(tp.positional) {
	case 1:
		w, h = tp.positional[0], tp.positional[0]
		found = true
	case 2:
		w, h = tp.positional[0], tp.positional[1]
		found = true
	}
	if v, ok := tp.named["width"]; ok {
		w, found = v, true
	}
	if v, ok := tp.named["height"]; ok {
		h, found = v, true
	}
	if !found {
		return w, h, perr.GeometryError("T<...> requires a width and height")
	}
	return w, h, nil
}

func (p *parser) parsePrimitive(kind primKind) (feature.Feature, error) {
	p.advance() // R/C/T
	tp, err := p.parseTypeParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	inner, err := p.parseSurfaceList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	center := geom.Point{}
	if tp.centerX != nil {
		center.X = *tp.centerX
	}
	if tp.centerY != nil {
		center.Y = *tp.centerY
	}
	switch kind {
	case primRect:
		w, h, err := rectDims(tp)
		if err != nil {
			return nil, err
		}
		return feature.Rect{Center: center, Width: w, Height: h, Inner: inner}, nil
	case primCircle:
		r, err := circleDim(tp)
		if err != nil {
			return nil, err
		}
		return feature.Circle{Center: center, Radius: r, Inner: inner}, nil
	default:
		w, h, err := triangleDims(tp)
		if err != nil {
			return nil, err
		}
		return feature.Triangle{Center: center, Width: w, Height: h, Inner: inner}, nil
	}
}

func (p *parser) atSurfaceStart() bool {
	tok := p.cur()
	if tok.kind == tokString {
		return true
	}
	if tok.kind != tokIdent {
		return false
	}
	return tok.text == "h" || tok.text == "msp" || tok.text == "smiley"
}

func (p *parser) parseSurfaceList() ([]feature.SurfaceSpec, error) {
	var specs []feature.SurfaceSpec
	for {
		if p.cur().kind == tokComma {
			p.advance()
			continue
		}
		if !p.atSurfaceStart() {
			break
		}
		spec, err := p.parseSurface()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (p *parser) parseSurface() (feature.SurfaceSpec, error) {
	tok := p.cur()
	if tok.kind == tokString {
		p.advance()
		return feature.SurfaceSpec{Kind: feature.SpecLegendText, Text: tok.text}, nil
	}
	switch tok.text {
	case "h":
		p.advance()
		spec := feature.SurfaceSpec{Kind: feature.SpecHole}
		if p.cur().kind == tokNumber {
			v, err := strconv.ParseFloat(p.cur().text, 64)
			if err != nil {
				return spec, perr.Parse("invalid hole diameter "+p.cur().text, p.cur().span)
			}
			p.advance()
			spec.Diameter = feature.Lit(v)
		}
		return spec, nil
	case "msp":
		p.advance()
		spec := feature.SurfaceSpec{Kind: feature.SpecSolderPoint}
		if p.cur().kind == tokLAngle {
			p.advance()
			w, err := p.parseNumber()
			if err != nil {
				return spec, err
			}
			if _, err := p.expect(tokComma); err != nil {
				return spec, err
			}
			h, err := p.parseNumber()
			if err != nil {
				return spec, err
			}
			if _, err := p.expect(tokRAngle); err != nil {
				return spec, err
			}
			spec.HasSize, spec.Width, spec.Height = true, w, h
		}
		return spec, nil
	case "smiley":
		p.advance()
		return feature.SurfaceSpec{Kind: feature.SpecSmiley}, nil
	}
	return feature.SurfaceSpec{}, perr.Parse("expected a surface feature", tok.span)
}

func (p *parser) parseMount() (feature.Feature, error) {
	tok := p.cur()
	p.advance()
	var facing feature.Direction
	switch tok.text {
	case "mount_cut":
		facing = feature.Up
	case "mount_cut_left":
		facing = feature.Left
	case "mount_cut_right":
		facing = feature.Right
	}
	if _, err := p.expect(tokLAngle); err != nil {
		return nil, err
	}
	length, err := p.parseNumber()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRAngle); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return feature.MountCut{Length: length, Facing: facing}, nil
}

func (p *parser) parseArray() (feature.Feature, error) {
	if _, err := p.expect(tokLBracket); err != nil {
		return nil, err
	}
	count, err := p.parseNumber()
	if err != nil {
		return nil, err
	}
	direction := feature.Right
	vscore := false
	for p.cur().kind == tokSemicolon {
		p.advance()
		if p.cur().kind != tokIdent {
			return nil, perr.Parse("expected a direction or v-score after ;", p.cur().span)
		}
		switch p.cur().text {
		case "up":
			direction = feature.Up
			p.advance()
		case "down":
			direction = feature.Down
			p.advance()
		case "left":
			direction = feature.Left
			p.advance()
		case "right":
			direction = feature.Right
			p.advance()
		case "v":
			p.advance()
			if _, err := p.expect(tokMinus); err != nil {
				return nil, err
			}
			if p.cur().kind != tokIdent || p.cur().text != "score" {
				return nil, perr.Parse("expected v-score", p.cur().span)
			}
			p.advance()
			vscore = true
		default:
			return nil, perr.Parse("unexpected array modifier "+p.cur().text, p.cur().span)
		}
	}
	if _, err := p.expect(tokRBracket); err != nil {
		return nil, err
	}
	child, err := p.parseFeatureExpr()
	if err != nil {
		return nil, err
	}
	return feature.Array{Child: child, Count: count, Direction: direction, VScore: vscore}, nil
}

func (p *parser) parseTuple() (feature.Feature, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	first, err := p.parseFeatureExpr()
	if err != nil {
		return nil, err
	}
	children := []feature.Feature{first}
	for p.cur().kind == tokComma {
		p.advance()
		f, err := p.parseFeatureExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, f)
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return feature.Tuple{Children: children}, nil
}

func (p *parser) parseColumn() (feature.Feature, error) {
	p.advance() // "column"
	var align feature.ColumnAlign
	if p.cur().kind != tokIdent {
		return nil, perr.Parse("expected center|left|right after column", p.cur().span)
	}
	switch p.cur().text {
	case "center":
		align = feature.ColumnCenter
	case "left":
		align = feature.ColumnLeft
	case "right":
		align = feature.ColumnRight
	default:
		return nil, perr.Parse("expected center|left|right after column", p.cur().span)
	}
	p.advance()
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	var children []feature.Feature
	for p.cur().kind != tokRBrace {
		f, err := p.parseFeatureExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, f)
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, perr.Parse("empty", p.cur().span)
	}
	return feature.Column{Alignment: align, Children: children}, nil
}

func (p *parser) parseNegative() (feature.Feature, error) {
	p.advance() // "negative"
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	var children []feature.Feature
	for p.cur().kind != tokRBrace {
		f, err := p.parseFeatureExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, f)
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, perr.Parse("empty", p.cur().span)
	}
	return feature.Negative{Children: children}, nil
}

func (p *parser) parseRotate() (feature.Feature, error) {
	p.advance() // "rotate"
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	deg, err := p.parseNumber()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	var children []feature.Feature
	for p.cur().kind != tokRBrace {
		f, err := p.parseFeatureExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, f)
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, perr.Parse("empty", p.cur().span)
	}
	return feature.Rotate{Degrees: deg, Children: children}, nil
}

func (p *parser) parseVarRef() (feature.Feature, error) {
	span := p.cur().span
	p.advance() // "$"
	if p.cur().kind != tokIdent {
		return nil, perr.Parse("expected an identifier after $", p.cur().span)
	}
	name := p.cur().text
	p.advance()
	kind, known := p.names[name]
	if !known {
		return nil, perr.UndefinedVariable(name, span)
	}
	if kind != kindFeature {
		return nil, perr.BadType(name, fmt.Sprintf("%q is a numeric binding, not a feature", name), span)
	}
	return feature.VarRef{Name: name}, nil
}

func (p *parser) parseWrap() (feature.Feature, error) {
	p.advance() // "wrap"
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	center, err := p.parseFeatureExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	if p.cur().kind != tokIdent || p.cur().text != "with" {
		return nil, perr.Parse("expected 'with' after wrap(...)", p.cur().span)
	}
	p.advance()
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	var placements []feature.Placement
	for p.cur().kind != tokRBrace {
		pl, err := p.parsePlacement()
		if err != nil {
			return nil, err
		}
		placements = append(placements, pl)
		if p.cur().kind == tokComma {
			p.advance()
		}
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	if len(placements) == 0 {
		return nil, perr.Parse("empty", p.cur().span)
	}
	return feature.Wrap{Center: center, Placements: placements}, nil
}

func (p *parser) parsePlacement() (feature.Placement, error) {
	side, err := p.parseSide()
	if err != nil {
		return feature.Placement{}, err
	}
	offset := feature.Lit(0)
	if p.cur().kind == tokPlus || p.cur().kind == tokMinus {
		neg := p.cur().kind == tokMinus
		p.advance()
		if p.cur().kind == tokNumber || p.cur().kind == tokBang {
			n, err := p.parseNumber()
			if err != nil {
				return feature.Placement{}, err
			}
			if neg {
				n = negateNumber(n)
			}
			offset = n
		}
	}
	align := feature.Overlap
	if p.cur().kind == tokIdent && p.cur().text == "align" {
		p.advance()
		if p.cur().kind != tokIdent {
			return feature.Placement{}, perr.Parse("expected interior|exterior after align", p.cur().span)
		}
		switch p.cur().text {
		case "interior":
			align = feature.Interior
		case "exterior":
			align = feature.Exterior
		default:
			return feature.Placement{}, perr.Parse("expected interior|exterior after align", p.cur().span)
		}
		p.advance()
	}
	if _, err := p.expect(tokArrow); err != nil {
		return feature.Placement{}, err
	}
	child, err := p.parseFeatureExpr()
	if err != nil {
		return feature.Placement{}, err
	}
	return feature.Placement{Side: side, Offset: offset, Alignment: align, Child: child}, nil
}

func (p *parser) parseSide() (feature.Side, error) {
	tok := p.cur()
	if tok.kind != tokIdent {
		return feature.Side{}, perr.Parse("expected a side", tok.span)
	}
	switch tok.text {
	case "center":
		p.advance()
		return feature.Side{Kind: feature.SideCenter}, nil
	case "top":
		p.advance()
		return feature.Side{Kind: feature.SideTop}, nil
	case "bottom":
		p.advance()
		return feature.Side{Kind: feature.SideBottom}, nil
	case "left":
		p.advance()
		return feature.Side{Kind: feature.SideLeft}, nil
	case "right":
		p.advance()
		return feature.Side{Kind: feature.SideRight}, nil
	case "angle":
		p.advance()
		if _, err := p.expect(tokLParen); err != nil {
			return feature.Side{}, err
		}
		deg, err := p.parseLiteralNumber()
		if err != nil {
			return feature.Side{}, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return feature.Side{}, err
		}
		return feature.Side{Kind: feature.SideAngle, AngleDegrees: deg}, nil
	case "min", "max":
		isMin := tok.text == "min"
		p.advance()
		if _, err := p.expect(tokMinus); err != nil {
			return feature.Side{}, err
		}
		if p.cur().kind != tokIdent {
			return feature.Side{}, perr.Parse("expected top|bottom|left|right", p.cur().span)
		}
		dir := p.cur().text
		dirSpan := p.cur().span
		p.advance()
		return sideFromMinMax(isMin, dir, dirSpan)
	}
	return feature.Side{}, perr.Parse("unknown side "+tok.text, tok.span)
}

func sideFromMinMax(isMin bool, dir string, span perr.Span) (feature.Side, error) {
	switch dir {
	case "top":
		if isMin {
			return feature.Side{Kind: feature.SideMinTop}, nil
		}
		return feature.Side{Kind: feature.SideMaxTop}, nil
	case "bottom":
		if isMin {
			return feature.Side{Kind: feature.SideMinBottom}, nil
		}
		return feature.Side{Kind: feature.SideMaxBottom}, nil
	case "left":
		if isMin {
			return feature.Side{Kind: feature.SideMinLeft}, nil
		}
		return feature.Side{Kind: feature.SideMaxLeft}, nil
	case "right":
		if isMin {
			return feature.Side{Kind: feature.SideMinRight}, nil
		}
		return feature.Side{Kind: feature.SideMaxRight}, nil
	}
	return feature.Side{}, perr.Parse("expected top|bottom|left|right", span)
}
