package main

import (
	"fmt"
	"os"

	"github.com/chazu/trackgen/pkg/kernel/sdfx"
	"github.com/chazu/trackgen/pkg/parts"
	"github.com/chazu/trackgen/pkg/tessellate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	genLength float64
	genSolid  bool
	genOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate <part>",
	Short: "Generate one catalog part as STL",
	Long: `Generate builds a single catalog part, meshes it with the sdfx
kernel, and writes binary STL.

Parts: wood-track, wood-plug, wood-cutout, trackmaster-plug,
trackmaster-cutout.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Float64Var(&genLength, "length", 0, "Track length in mm (track parts; 0 = default)")
	generateCmd.Flags().BoolVar(&genSolid, "solid", false, "Build plugs without the compliance keyway")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (default <part>.stl)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	name := args[0]
	req, err := parsePart(name, genLength, genSolid)
	if err != nil {
		return err
	}

	tree, err := parts.FromCatalog(catalog).Build(req)
	if err != nil {
		return err
	}

	out := genOutput
	if out == "" {
		out = name + ".stl"
	}

	logger.Info("Meshing part", zap.String("part", req.String()))
	mesh, err := tessellate.Tessellate(tree, sdfx.New(), req.String())
	if err != nil {
		return err
	}
	logger.Debug("Meshed part",
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("vertices", mesh.VertexCount()))

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	if err := mesh.WriteSTL(f); err != nil {
		return err
	}
	logger.Info("Wrote STL", zap.String("file", out), zap.Int("triangles", mesh.TriangleCount()))
	return nil
}
