package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/chazu/trackgen/pkg/csg"
	"github.com/chazu/trackgen/pkg/track"
)

func newTestEngine() *Engine {
	return NewEngine(track.DefaultCatalog())
}

func evalOK(t *testing.T, source string) *Plan {
	t.Helper()
	plan, evalErrs, err := newTestEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal evaluation error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("evaluation errors: %v", evalErrs)
	}
	if plan == nil {
		t.Fatal("nil plan without errors")
	}
	return plan
}

func TestEvaluateEmpty(t *testing.T) {
	for _, source := range []string{"", "   \n\t  ", "; just a comment\n"} {
		plan := evalOK(t, source)
		if len(plan.Parts) != 0 {
			t.Errorf("source %q produced %d parts, want 0", source, len(plan.Parts))
		}
	}
}

func TestEvaluateWoodTrack(t *testing.T) {
	plan := evalOK(t, `(wood-track :length 107 :name "double-straight")`)
	if len(plan.Parts) != 1 {
		t.Fatalf("plan has %d parts, want 1", len(plan.Parts))
	}
	p := plan.Parts[0]
	if p.Name != "double-straight" {
		t.Errorf("name = %q, want %q", p.Name, "double-straight")
	}
	if p.Request.Standard != track.Wood || p.Request.Kind != track.Track || p.Request.Length != 107 {
		t.Errorf("request = %+v", p.Request)
	}
	sz := csg.BoundingBox(p.Tree).Size()
	if math.Abs(sz.X-107) > 1e-9 {
		t.Errorf("tree length = %g, want 107", sz.X)
	}
}

func TestEvaluateDefaultNames(t *testing.T) {
	plan := evalOK(t, "(wood-plug)\n(wood-plug :solid true)\n(wood-cutout)")
	want := []string{"wood-plug-1", "wood-plug-solid-2", "wood-cutout-3"}
	if len(plan.Parts) != len(want) {
		t.Fatalf("plan has %d parts, want %d", len(plan.Parts), len(want))
	}
	for i, p := range plan.Parts {
		if p.Name != want[i] {
			t.Errorf("part %d name = %q, want %q", i, p.Name, want[i])
		}
	}
}

func TestEvaluateStarterSet(t *testing.T) {
	source := `
; a starter set: one of everything
(wood-track :length 53.5 :name "straight")
(wood-plug :name "plug")
(wood-cutout :name "socket")
(trackmaster-plug :name "tm-plug")
(trackmaster-cutout :name "tm-socket")
`
	plan := evalOK(t, source)
	if len(plan.Parts) != 5 {
		t.Fatalf("plan has %d parts, want 5", len(plan.Parts))
	}
	for _, p := range plan.Parts {
		if errs := csg.Validate(p.Tree); len(errs) != 0 {
			t.Errorf("part %q has validation findings: %v", p.Name, errs)
		}
	}
}

func TestSetStandard(t *testing.T) {
	plan := evalOK(t, "(set-standard :trackmaster)\n(part :kind :cutout)")
	if len(plan.Parts) != 1 {
		t.Fatalf("plan has %d parts, want 1", len(plan.Parts))
	}
	if plan.Parts[0].Request.Standard != track.Trackmaster {
		t.Errorf("standard = %v, want trackmaster", plan.Parts[0].Request.Standard)
	}
}

func TestPartStandardOverride(t *testing.T) {
	plan := evalOK(t, "(set-standard :trackmaster)\n(part :kind :plug :standard :wood)")
	if plan.Parts[0].Request.Standard != track.Wood {
		t.Errorf("standard = %v, want wood", plan.Parts[0].Request.Standard)
	}
}

func TestManifoldDirective(t *testing.T) {
	// Doubling the overlap moves the well cut further past the end face.
	plan := evalOK(t, "(manifold :overlap 0.2)\n(wood-track :name \"t\")")
	tr := plan.Parts[0].Tree.(csg.Difference).Cuts[0].(csg.Transform)
	if math.Abs(tr.Translation.X-(-0.2)) > 1e-9 {
		t.Errorf("well cut starts at x=%g, want -0.2", tr.Translation.X)
	}
}

func TestParseErrorReported(t *testing.T) {
	plan, evalErrs, err := newTestEngine().Evaluate("(wood-track")
	if err != nil {
		t.Fatalf("parse failure should not be fatal: %v", err)
	}
	if plan != nil {
		t.Error("plan should be nil on parse failure")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected evaluation errors")
	}
}

func TestBuildErrorReported(t *testing.T) {
	plan, evalErrs, err := newTestEngine().Evaluate("(wood-track :length -5)")
	if err != nil {
		t.Fatalf("build failure should not be fatal: %v", err)
	}
	if plan != nil {
		t.Error("plan should be nil on build failure")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected evaluation errors")
	}
	found := false
	for _, e := range evalErrs {
		if strings.Contains(e.Message, "invalid parameter") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors do not mention the invalid parameter: %v", evalErrs)
	}
}

func TestDuplicateNameRejected(t *testing.T) {
	_, evalErrs, err := newTestEngine().Evaluate(`(wood-plug :name "p")(wood-cutout :name "p")`)
	if err != nil {
		t.Fatalf("duplicate name should not be fatal: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected evaluation errors for duplicate name")
	}
}

func TestEvaluateIsolation(t *testing.T) {
	// A manifold override in one evaluation must not leak into the next.
	e := newTestEngine()
	if _, evalErrs, err := e.Evaluate("(manifold :overlap 0.3)\n(wood-plug)"); err != nil || len(evalErrs) > 0 {
		t.Fatalf("first evaluation failed: %v %v", evalErrs, err)
	}
	plan, evalErrs, err := e.Evaluate(`(wood-track :name "t")`)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("second evaluation failed: %v %v", evalErrs, err)
	}
	tr := plan.Parts[0].Tree.(csg.Difference).Cuts[0].(csg.Transform)
	if math.Abs(tr.Translation.X-(-0.1)) > 1e-9 {
		t.Errorf("well cut starts at x=%g, want stock -0.1", tr.Translation.X)
	}
}
