// Package create implements the ltrq create command.
package create

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/wsnauth/ltrq/internal/pkg/cmdutil"
	"github.com/wsnauth/ltrq/internal/pkg/logger"
	"github.com/wsnauth/ltrq/internal/pkg/ticket"
)

var CreateCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"new"},
	Short:   "Create a fresh login ticket request document",
	Long: `Create a login ticket request for a service and write the canonical XML
to stdout or a file. The uniqueId and the generation and expiration
timestamps are derived from the current time and the validity window.`,
	RunE:         runCreate,
	SilenceUsage: true,
}

var (
	service     string
	source      string
	destination string
	ttl         time.Duration
	outFile     string
)

func runCreate(cmd *cobra.Command, args []string) error {
	b := ticket.Builder{
		Source:      cmdutil.GetStringConfig("create.source", source),
		Destination: cmdutil.GetStringConfig("create.destination", destination),
		TTL:         cmdutil.GetDurationConfig("create.ttl", ttl),
	}

	req, err := b.Build(service)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	out := cmd.OutOrStdout()
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err := req.Encode(out); err != nil {
		return err
	}

	logger.Debug("request created",
		"service", req.Service.String(),
		"unique_id", req.Header.UniqueID,
		"expires", req.Header.ExpirationTime)
	return nil
}

func init() {
	CreateCmd.Flags().StringVarP(&service, "service", "S", "", "service name to request access to")
	CreateCmd.Flags().StringVar(&source, "source", "", "requesting entity identifier")
	CreateCmd.Flags().StringVar(&destination, "destination", "", "target entity identifier")
	CreateCmd.Flags().DurationVar(&ttl, "ttl", 0, "validity window (default 10m)")
	CreateCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the document to a file instead of stdout")
	CreateCmd.MarkFlagRequired("service")
}
