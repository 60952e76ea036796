// Package inspect implements the ltrq inspect command.
package inspect

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/wsnauth/ltrq/internal/pkg/ticket"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Decode a login ticket request document and print its fields",
	Long: `Decode a login ticket request document and print its fields in plain
text. Reads from stdin when no file is given. Unknown elements are
ignored; use validate --strict for full conformance checks.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runInspect,
	SilenceUsage: true,
}

func runInspect(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}
		defer file.Close()
		in = file
	}

	var v ticket.Validator
	req, err := v.Validate(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "version:        %s\n", req.Version)
	if req.Header.Source != "" {
		fmt.Fprintf(out, "source:         %s\n", req.Header.Source)
	}
	if req.Header.Destination != "" {
		fmt.Fprintf(out, "destination:    %s\n", req.Header.Destination)
	}
	fmt.Fprintf(out, "uniqueId:       %d\n", req.Header.UniqueID)
	fmt.Fprintf(out, "generationTime: %s\n", req.Header.GenerationTime.Format(time.RFC3339))
	fmt.Fprintf(out, "expirationTime: %s\n", req.Header.ExpirationTime.Format(time.RFC3339))
	fmt.Fprintf(out, "service:        %s\n", req.Service)
	return nil
}
