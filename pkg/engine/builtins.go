package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/trackgen/pkg/parts"
	"github.com/chazu/trackgen/pkg/track"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms plan source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: wood-track -> wood_track
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus
		// operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value; treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a Sexp.
func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_wood) and plain strings ("wood").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toStandard converts a keyword or string to a track.Standard.
func toStandard(s zygo.Sexp) (track.Standard, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected standard keyword (:wood, :trackmaster): %w", err)
	}
	std, err := track.ParseStandard(name)
	if err != nil {
		return 0, fmt.Errorf("expected :wood or :trackmaster: %w", err)
	}
	return std, nil
}

// toKind converts a keyword or string to a track.PartKind.
func toKind(s zygo.Sexp) (track.PartKind, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected kind keyword (:track, :plug, :cutout): %w", err)
	}
	kind, err := track.ParsePartKind(name)
	if err != nil {
		return 0, fmt.Errorf("expected :track, :plug, or :cutout: %w", err)
	}
	return kind, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// planState is the mutable state the builtins close over: the active
// catalog, the default standard, and the plan being accumulated.
type planState struct {
	catalog  track.Catalog
	standard track.Standard
	plan     *Plan
}

func (st *planState) builder() *parts.Builder {
	return parts.FromCatalog(st.catalog)
}

// addPart builds a request and appends the result to the plan. An empty
// name gets a deterministic default from the request and the part index.
func (st *planState) addPart(name string, req track.PartRequest) (zygo.Sexp, error) {
	tree, err := st.builder().Build(req)
	if err != nil {
		return zygo.SexpNull, err
	}
	if name == "" {
		name = fmt.Sprintf("%s-%d", req, len(st.plan.Parts)+1)
	}
	for _, p := range st.plan.Parts {
		if p.Name == name {
			return zygo.SexpNull, fmt.Errorf("duplicate part name %q", name)
		}
	}
	st.plan.Parts = append(st.plan.Parts, PlannedPart{Name: name, Request: req, Tree: tree})
	return &zygo.SexpStr{S: name}, nil
}

// partArgs pulls the shared :name, :length, and :solid keywords.
func partArgs(pa kwArgs, fn string) (name string, length float64, solid bool, err error) {
	if v, ok := pa.kw["name"]; ok {
		name, err = toString(v)
		if err != nil {
			return "", 0, false, fmt.Errorf("%s: name: %w", fn, err)
		}
	}
	if v, ok := pa.kw["length"]; ok {
		length, err = toFloat64(v)
		if err != nil {
			return "", 0, false, fmt.Errorf("%s: length: %w", fn, err)
		}
	}
	if v, ok := pa.kw["solid"]; ok {
		solid, err = toBool(v)
		if err != nil {
			return "", 0, false, fmt.Errorf("%s: solid: %w", fn, err)
		}
	}
	return name, length, solid, nil
}

// registerBuiltins installs the plan DSL into a zygomys environment. The
// builtins append to the provided plan during evaluation.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens become recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, catalog track.Catalog, plan *Plan) {
	st := &planState{catalog: catalog, standard: track.Wood, plan: plan}

	// -----------------------------------------------------------------------
	// (manifold :overlap 0.1 :bevel-width 1.0)
	// -----------------------------------------------------------------------
	env.AddFunction("manifold", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		cfg := st.catalog.Manifold

		if v, ok := pa.kw["overlap"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("manifold: overlap: %w", err)
			}
			cfg.Overlap = f
		}
		if v, ok := pa.kw["bevel-width"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("manifold: bevel-width: %w", err)
			}
			cfg.BevelWidth = f
		}
		if cfg.Overlap <= 0 || cfg.BevelWidth < 0 {
			return zygo.SexpNull, fmt.Errorf("manifold: invalid config overlap=%g bevel-width=%g",
				cfg.Overlap, cfg.BevelWidth)
		}

		st.catalog.Manifold = cfg
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (set-standard :trackmaster)
	// -----------------------------------------------------------------------
	env.AddFunction("set_standard", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("set-standard requires exactly one argument")
		}
		std, err := toStandard(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("set-standard: %w", err)
		}
		st.standard = std
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (wood-track :length 107 :name "double-straight")
	// -----------------------------------------------------------------------
	env.AddFunction("wood_track", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		n, length, _, err := partArgs(parseArgs(args), "wood-track")
		if err != nil {
			return zygo.SexpNull, err
		}
		return st.addPart(n, track.PartRequest{Standard: track.Wood, Kind: track.Track, Length: length})
	})

	// -----------------------------------------------------------------------
	// (wood-plug :solid true :name "plug")
	// -----------------------------------------------------------------------
	env.AddFunction("wood_plug", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		n, _, solid, err := partArgs(parseArgs(args), "wood-plug")
		if err != nil {
			return zygo.SexpNull, err
		}
		return st.addPart(n, track.PartRequest{Standard: track.Wood, Kind: track.Plug, Solid: solid})
	})

	// -----------------------------------------------------------------------
	// (wood-cutout :name "socket")
	// -----------------------------------------------------------------------
	env.AddFunction("wood_cutout", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		n, _, _, err := partArgs(parseArgs(args), "wood-cutout")
		if err != nil {
			return zygo.SexpNull, err
		}
		return st.addPart(n, track.PartRequest{Standard: track.Wood, Kind: track.Cutout})
	})

	// -----------------------------------------------------------------------
	// (trackmaster-plug :solid false :name "tm-plug")
	// -----------------------------------------------------------------------
	env.AddFunction("trackmaster_plug", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		n, _, solid, err := partArgs(parseArgs(args), "trackmaster-plug")
		if err != nil {
			return zygo.SexpNull, err
		}
		return st.addPart(n, track.PartRequest{Standard: track.Trackmaster, Kind: track.Plug, Solid: solid})
	})

	// -----------------------------------------------------------------------
	// (trackmaster-cutout :name "tm-socket")
	// -----------------------------------------------------------------------
	env.AddFunction("trackmaster_cutout", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		n, _, _, err := partArgs(parseArgs(args), "trackmaster-cutout")
		if err != nil {
			return zygo.SexpNull, err
		}
		return st.addPart(n, track.PartRequest{Standard: track.Trackmaster, Kind: track.Cutout})
	})

	// -----------------------------------------------------------------------
	// (part :kind :plug :standard :trackmaster :solid true :name "p")
	// Standard defaults to the set-standard value.
	// -----------------------------------------------------------------------
	env.AddFunction("part", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		n, length, solid, err := partArgs(pa, "part")
		if err != nil {
			return zygo.SexpNull, err
		}

		kindArg, ok := pa.kw["kind"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("part: missing :kind")
		}
		kind, err := toKind(kindArg)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("part: kind: %w", err)
		}

		std := st.standard
		if v, ok := pa.kw["standard"]; ok {
			std, err = toStandard(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("part: standard: %w", err)
			}
		}

		return st.addPart(n, track.PartRequest{Standard: std, Kind: kind, Length: length, Solid: solid})
	})
}
