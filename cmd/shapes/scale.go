package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/shapes"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Interactively dilate the scene about a point",
	Long: `Reads "x y k" triples from standard input. Each triple dilates the
whole scene by factor k about the point (x, y) and reprints the report.
Stops cleanly on end of input; a non-positive k or malformed input is an
error.`,
	Args: cobra.NoArgs,
	RunE: runScale,
}

func init() {
	rootCmd.AddCommand(scaleCmd)
}

func runScale(cmd *cobra.Command, args []string) error {
	g, err := loadGroup()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()

	if err := g.Report(out); err != nil {
		return err
	}

	for {
		fmt.Fprint(out, "\n\nEnter x, y and k: ")

		var x, y, k float64
		_, err := fmt.Fscan(in, &x, &y, &k)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("bad input: %w", err)
		}
		if k <= 0 {
			return errors.New("k cannot be less than or equal to zero")
		}

		if err := g.ScaleAbout(k, shapes.Pt(x, y)); err != nil {
			return err
		}
		fmt.Fprint(out, "\n\n")
		if err := g.Report(out); err != nil {
			return err
		}
	}
}
