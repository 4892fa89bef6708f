package csg

import (
	"fmt"
	"strings"
)

// ValidationSeverity indicates whether a validation finding blocks evaluation
// or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks evaluation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding. Path locates the
// offending node in the tree, e.g. "difference.cuts[2].hull.kids[0]".
type ValidationError struct {
	Path     string             // location of the problem ("" means tree root)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Path, e.Message)
}

// Validate walks the tree and returns every finding. An empty slice means
// the tree is well formed. Structural checks (nil children, empty operator
// nodes) report errors; geometric checks (non-positive dimensions,
// degenerate hulls) report errors for primitives that can never mesh and
// warnings for shapes that are legal but suspicious.
func Validate(n Node) []ValidationError {
	var errs []ValidationError
	validateNode(n, "", &errs)
	return errs
}

// Valid reports whether the tree has no error-severity findings.
func Valid(n Node) bool {
	for _, e := range Validate(n) {
		if e.Severity == SeverityError {
			return false
		}
	}
	return true
}

func validateNode(n Node, path string, errs *[]ValidationError) {
	if n == nil {
		*errs = append(*errs, ValidationError{
			Path:     path,
			Message:  "nil node",
			Severity: SeverityError,
		})
		return
	}

	switch n := n.(type) {
	case Box:
		if n.Size.X <= 0 || n.Size.Y <= 0 || n.Size.Z <= 0 {
			*errs = append(*errs, ValidationError{
				Path:     join(path, "box"),
				Message:  fmt.Sprintf("non-positive size (%g, %g, %g)", n.Size.X, n.Size.Y, n.Size.Z),
				Severity: SeverityError,
			})
		}

	case Cylinder:
		p := join(path, "cylinder")
		if n.Height <= 0 {
			*errs = append(*errs, ValidationError{
				Path:     p,
				Message:  fmt.Sprintf("non-positive height %g", n.Height),
				Severity: SeverityError,
			})
		}
		if n.BottomRadius <= 0 && n.TopRadius <= 0 {
			*errs = append(*errs, ValidationError{
				Path:     p,
				Message:  fmt.Sprintf("non-positive radii (%g, %g)", n.BottomRadius, n.TopRadius),
				Severity: SeverityError,
			})
		} else if n.BottomRadius < 0 || n.TopRadius < 0 {
			*errs = append(*errs, ValidationError{
				Path:     p,
				Message:  fmt.Sprintf("negative radius (%g, %g)", n.BottomRadius, n.TopRadius),
				Severity: SeverityError,
			})
		}

	case Union:
		p := join(path, "union")
		if len(n.Kids) == 0 {
			*errs = append(*errs, ValidationError{
				Path:     p,
				Message:  "union with no children",
				Severity: SeverityError,
			})
		}
		for i, k := range n.Kids {
			validateNode(k, fmt.Sprintf("%s.kids[%d]", p, i), errs)
		}

	case Difference:
		p := join(path, "difference")
		validateNode(n.Base, p+".base", errs)
		if len(n.Cuts) == 0 {
			*errs = append(*errs, ValidationError{
				Path:     p,
				Message:  "difference with no cuts",
				Severity: SeverityWarning,
			})
		}
		for i, k := range n.Cuts {
			validateNode(k, fmt.Sprintf("%s.cuts[%d]", p, i), errs)
		}

	case Hull:
		p := join(path, "hull")
		if len(n.Kids) < 2 {
			*errs = append(*errs, ValidationError{
				Path:     p,
				Message:  fmt.Sprintf("hull of %d children (need at least 2)", len(n.Kids)),
				Severity: SeverityError,
			})
		}
		for i, k := range n.Kids {
			validateNode(k, fmt.Sprintf("%s.kids[%d]", p, i), errs)
		}

	case Transform:
		validateNode(n.Child, join(path, "transform.child"), errs)

	default:
		*errs = append(*errs, ValidationError{
			Path:     path,
			Message:  fmt.Sprintf("unknown node type %T", n),
			Severity: SeverityError,
		})
	}
}

func join(path, elem string) string {
	if path == "" {
		return elem
	}
	return strings.Join([]string{path, elem}, ".")
}
