package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/shapes/render"
)

var (
	renderWidth  int
	renderHeight int
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the scene to a PNG image",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderWidth, "width", 512, "image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 512, "image height in pixels")
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "scene.png", "output file")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	g, err := loadGroup()
	if err != nil {
		return err
	}
	opts := render.Options{Width: renderWidth, Height: renderHeight}
	if err := render.SavePNG(renderOut, g, opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d shapes to %s (%dx%d)\n",
		g.Len(), renderOut, renderWidth, renderHeight)
	return nil
}
