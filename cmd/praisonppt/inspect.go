package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/MervinPraison/PraisonAIPPT/internal/pptx"
)

func newInspectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <pptx>",
		Short: "Print the text content of a generated deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slides, err := pptx.ExtractSlideContent(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			nums := make([]int, 0, len(slides))
			for n := range slides {
				nums = append(nums, n)
			}
			sort.Ints(nums)

			if asJSON {
				ordered := make([]pptx.SlideData, 0, len(nums))
				for _, n := range nums {
					ordered = append(ordered, slides[n])
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(ordered)
			}

			for _, n := range nums {
				s := slides[n]
				fmt.Printf("--- Slide %d ---\n", n)
				for _, shape := range s.Shapes {
					for _, run := range shape.Runs {
						marker := " "
						if run.Bold {
							marker = "*"
						}
						fmt.Printf("  %s %q", marker, run.Text)
						if run.Size > 0 {
							fmt.Printf(" (%dpt)", run.Size)
						}
						fmt.Println()
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit slide content as JSON")
	return cmd
}
