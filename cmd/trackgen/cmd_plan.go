package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chazu/trackgen/pkg/engine"
	"github.com/chazu/trackgen/pkg/kernel/sdfx"
	"github.com/chazu/trackgen/pkg/tessellate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var planOutDir string

var planCmd = &cobra.Command{
	Use:   "plan <file.lisp>",
	Short: "Evaluate a plan script and generate its parts",
	Long: `Plan evaluates a Lisp plan script in a sandbox and writes one STL
per planned part. A script names parts and may override the manifold
configuration:

    (manifold :overlap 0.1 :bevel-width 1.0)
    (wood-track :length 53.5 :name "straight")
    (wood-plug :name "plug")
    (wood-cutout :name "socket")`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planOutDir, "out", "O", ".", "Output directory for STL files")
}

func runPlan(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading plan: %w", err)
	}

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
	if len(plan.Parts) == 0 {
		logger.Warn("Plan produced no parts", zap.String("file", args[0]))
		return nil
	}

	if err := os.MkdirAll(planOutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	k := sdfx.New()
	for _, p := range plan.Parts {
		logger.Info("Meshing part", zap.String("name", p.Name), zap.String("part", p.Request.String()))
		mesh, err := tessellate.Tessellate(p.Tree, k, p.Name)
		if err != nil {
			return fmt.Errorf("part %q: %w", p.Name, err)
		}

		out := filepath.Join(planOutDir, p.Name+".stl")
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		if err := mesh.WriteSTL(f); err != nil {
			f.Close()
			return fmt.Errorf("part %q: %w", p.Name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", out, err)
		}
		logger.Info("Wrote STL", zap.String("file", out), zap.Int("triangles", mesh.TriangleCount()))
	}
	return nil
}
