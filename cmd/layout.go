package cmd

import (
	"fmt"
	"io"

	"github.com/seclabx-org/portal/pkg/sphere"
	"github.com/spf13/cobra"
)

var layoutRadius float64

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the initial sphere layout",
	Long:  "Show where each label starts on the sphere, as placed by the fibonacci distribution.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if layoutRadius <= 0 {
			return fmt.Errorf("radius must be positive, got %g", layoutRadius)
		}
		writeLayout(cmd.OutOrStdout(), sphere.DefaultLabels(), layoutRadius)
		return nil
	},
}

func init() {
	layoutCmd.Flags().Float64VarP(&layoutRadius, "radius", "r", 100, "sphere radius")
	rootCmd.AddCommand(layoutCmd)
}

func writeLayout(w io.Writer, labels []string, radius float64) {
	points := sphere.Layout(labels, radius)

	counts := map[sphere.Kind]int{}
	for _, p := range points {
		counts[p.Kind]++
	}

	fmt.Fprintln(w, "Sphere Layout")
	fmt.Fprintln(w, "=============")
	fmt.Fprintf(w, "Points: %d (%d primary, %d decorative)\n", len(points), counts[sphere.Primary], counts[sphere.Decorative])
	fmt.Fprintf(w, "Radius: %.2f\n\n", radius)

	fmt.Fprintf(w, "%4s  %-8s  %-10s  %9s  %9s  %9s\n", "#", "Label", "Kind", "X", "Y", "Z")
	for i, p := range points {
		fmt.Fprintf(w, "%4d  %-8s  %-10s  %9.3f  %9.3f  %9.3f\n", i, p.Text, p.Kind, p.Pos.X, p.Pos.Y, p.Pos.Z)
	}
}
