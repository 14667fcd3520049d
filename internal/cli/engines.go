/*
PURPOSE:
  Defines the 'engines' subcommand.
  Helps verify which OCR engines are available before a full run.

REQUIREMENTS:
  User-specified:
  - List selectable OCR engines.

  Implementation-discovered:
  - Useful validation step before full run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/ocr.Select()

ERROR HANDLING:
  - Prints error for engines that fail to construct.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  docbench engines

RELATED FILES:
  - internal/ocr/engine.go

MAINTENANCE:
  - Update the name list when adding engines.
*/

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docbench/docbench/internal/ocr"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List available OCR engines",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range []string{"mock", "tesseract"} {
			e, err := ocr.Select(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("- %s\n", e.Name())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}
