package main

import (
	"fmt"
	"os"

	"github.com/chazu/trackgen/pkg/csg"
	"github.com/chazu/trackgen/pkg/engine"
	"github.com/chazu/trackgen/pkg/parts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkLength float64
	checkSolid  bool
)

var checkCmd = &cobra.Command{
	Use:   "check <part>|<file.lisp>",
	Short: "Validate a part tree without meshing",
	Long: `Check builds a catalog part (or evaluates a plan script) and runs
tree validation, reporting any degenerate geometry. Nothing is meshed or
written; this is the fast way to vet a plan or a catalog override file.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Float64Var(&checkLength, "length", 0, "Track length in mm (track parts; 0 = default)")
	checkCmd.Flags().BoolVar(&checkSolid, "solid", false, "Build plugs without the compliance keyway")
}

func runCheck(cmd *cobra.Command, args []string) error {
	trees := map[string]csg.Node{}

	if source, err := os.ReadFile(args[0]); err == nil {
		plan, evalErrs, err := engine.NewEngine(catalog).Evaluate(string(source))
		if err != nil {
			return fmt.Errorf("evaluating plan: %w", err)
		}
		if len(evalErrs) > 0 {
			for _, e := range evalErrs {
				fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], e)
			}
			return fmt.Errorf("plan has %d error(s)", len(evalErrs))
		}
		for _, p := range plan.Parts {
			trees[p.Name] = p.Tree
		}
	} else {
		req, err := parsePart(args[0], checkLength, checkSolid)
		if err != nil {
			return err
		}
		tree, err := parts.FromCatalog(catalog).Build(req)
		if err != nil {
			return err
		}
		trees[req.String()] = tree
	}

	failed := false
	for name, tree := range trees {
		findings := csg.Validate(tree)
		for _, f := range findings {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, f)
			if f.Severity == csg.SeverityError {
				failed = true
			}
		}
		if len(findings) == 0 {
			logger.Info("Part is valid", zap.String("name", name))
		}
	}
	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}
