// Command shapes reports, scales and renders 2D shape scenes.
//
// Without -scene it operates on a built-in demo collection; with -scene
// it loads a YAML scene file (see the sceneio package for the format).
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/sceneio"
)

var (
	scenePath string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Report, scale and render 2D shape scenes",
	Long: `shapes models a collection of 2D shapes (rectangles, polygons and
anchor-tracked bubbles) and operates on it as a whole: report areas and
frame rectangles, dilate the scene about a point, or render it to a PNG.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			shapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&scenePath, "scene", "", "YAML scene file (default: built-in demo scene)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
}

// loadGroup returns the scene the subcommands operate on.
func loadGroup() (*shapes.Group, error) {
	if scenePath == "" {
		return demoGroup()
	}
	return sceneio.LoadFile(scenePath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
