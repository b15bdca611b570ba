package lang

import (
	"testing"

	"github.com/chazu/panelgo/pkg/feature"
	"github.com/chazu/panelgo/pkg/perr"
)

func TestParseSimpleRect(t *testing.T) {
	prog, err := Parse(`R<5>()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	r, ok := prog.Statements[0].Feature.(feature.Rect)
	if !ok {
		t.Fatalf("expected Rect, got %T", prog.Statements[0].Feature)
	}
	if r.Width.Literal != 5 || r.Height.Literal != 5 {
		t.Fatalf("expected 5x5 square, got %v x %v", r.Width.Literal, r.Height.Literal)
	}
}

func TestParseRectWithHole(t *testing.T) {
	prog, err := Parse(`R<5>(h)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := prog.Statements[0].Feature.(feature.Rect)
	if len(r.Inner) != 1 || r.Inner[0].Kind != feature.SpecHole {
		t.Fatalf("expected a single hole spec, got %v", r.Inner)
	}
}

func TestParseArrayDirection(t *testing.T) {
	prog, err := Parse(`[2]R<5>()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, ok := prog.Statements[0].Feature.(feature.Array)
	if !ok {
		t.Fatalf("expected Array, got %T", prog.Statements[0].Feature)
	}
	if a.Count.Literal != 2 {
		t.Fatalf("expected count 2, got %v", a.Count.Literal)
	}
	if a.Direction != feature.Right {
		t.Fatalf("expected default direction Right, got %v", a.Direction)
	}
}

func TestParseArrayWithDirectionAndVScore(t *testing.T) {
	prog, err := Parse(`[3;down;v-score]R<5>()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := prog.Statements[0].Feature.(feature.Array)
	if a.Direction != feature.Down {
		t.Fatalf("expected direction Down, got %v", a.Direction)
	}
	if !a.VScore {
		t.Fatal("expected VScore true")
	}
}

func TestParseWrapStadium(t *testing.T) {
	prog, err := Parse(`wrap(R<20>()) with { left => C<10>(), right => C<10>() }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w, ok := prog.Statements[0].Feature.(feature.Wrap)
	if !ok {
		t.Fatalf("expected Wrap, got %T", prog.Statements[0].Feature)
	}
	if len(w.Placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(w.Placements))
	}
	if w.Placements[0].Side.Kind != feature.SideLeft || w.Placements[1].Side.Kind != feature.SideRight {
		t.Fatalf("unexpected side kinds: %v, %v", w.Placements[0].Side.Kind, w.Placements[1].Side.Kind)
	}
}

func TestParseNegativeAnnulus(t *testing.T) {
	prog, err := Parse(`negative { C<5>() } C<10>()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
	if _, ok := prog.Statements[0].Feature.(feature.Negative); !ok {
		t.Fatalf("expected first statement to be Negative, got %T", prog.Statements[0].Feature)
	}
	if _, ok := prog.Statements[1].Feature.(feature.Circle); !ok {
		t.Fatalf("expected second statement to be Circle, got %T", prog.Statements[1].Feature)
	}
}

func TestParseLetFeatureAndVarRef(t *testing.T) {
	prog, err := Parse(`let s = R<7.5>(h); column center { [3]$s [2]$s }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
	col, ok := prog.Statements[1].Feature.(feature.Column)
	if !ok {
		t.Fatalf("expected Column, got %T", prog.Statements[1].Feature)
	}
	for _, c := range col.Children {
		arr, ok := c.(feature.Array)
		if !ok {
			t.Fatalf("expected Array child, got %T", c)
		}
		if _, ok := arr.Child.(feature.VarRef); !ok {
			t.Fatalf("expected VarRef array child, got %T", arr.Child)
		}
	}
}

func TestParseUndefinedVarRef(t *testing.T) {
	_, err := Parse(`$missing`)
	if !perr.Is(err, perr.CodeUndefinedVariable) {
		t.Fatalf("expected UndefinedVariable, got %v", err)
	}
}

func TestParseVarRefToNumericBindingIsBadType(t *testing.T) {
	_, err := Parse(`let n = !{ 5 }; $n`)
	if !perr.Is(err, perr.CodeBadType) {
		t.Fatalf("expected BadType, got %v", err)
	}
}

func TestParseLetNumberCapturesExprText(t *testing.T) {
	prog, err := Parse(`let pitch = !{ 5 + 2 * 3 };`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prog.Statements[0].Kind != StmtLetNumber {
		t.Fatalf("expected StmtLetNumber, got %v", prog.Statements[0].Kind)
	}
	if prog.Statements[0].NumberExpr == "" {
		t.Fatal("expected non-empty number expression text")
	}
}

func TestParseNumberExpressionInWidth(t *testing.T) {
	prog, err := Parse(`R<!{ 2 + 3 }>()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := prog.Statements[0].Feature.(feature.Rect)
	if r.Width.IsResolved() {
		t.Fatal("expected an unresolved !{ } expression on Width")
	}
}

func TestParseCommentsSkippedOutsideWrap(t *testing.T) {
	prog, err := Parse("# a comment\nR<5>() # trailing\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
}

func TestParseCommentInsideWrapHeaderIsAnError(t *testing.T) {
	_, err := Parse("wrap(R<5>() # oops\n) with { left => C<1>() }")
	if err == nil {
		t.Fatal("expected an error: comments are not recognized inside a wrap(...) header")
	}
}

func TestParseMountCutFacing(t *testing.T) {
	prog, err := Parse(`mount_cut_left<12>()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := prog.Statements[0].Feature.(feature.MountCut)
	if !ok {
		t.Fatalf("expected MountCut, got %T", prog.Statements[0].Feature)
	}
	if m.Facing != feature.Left {
		t.Fatalf("expected facing Left, got %v", m.Facing)
	}
}

func TestParseLegendLiteral(t *testing.T) {
	prog, err := Parse(`R<10>("ON")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := prog.Statements[0].Feature.(feature.Rect)
	if len(r.Inner) != 1 || r.Inner[0].Kind != feature.SpecLegendText || r.Inner[0].Text != "ON" {
		t.Fatalf("expected legend text ON, got %v", r.Inner)
	}
}

func TestParseCenterOverride(t *testing.T) {
	prog, err := Parse(`R<@(3,4),5,5>()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := prog.Statements[0].Feature.(feature.Rect)
	if r.Center.X != 3 || r.Center.Y != 4 {
		t.Fatalf("expected center (3,4), got %v", r.Center)
	}
}

func TestParseEmptyColumnIsParseError(t *testing.T) {
	_, err := Parse(`column center { }`)
	if !perr.Is(err, perr.CodeParse) {
		t.Fatalf("expected Parse error, got %v", err)
	}
}
