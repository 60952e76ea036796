// Package validate implements the ltrq validate command.
package validate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wsnauth/ltrq/internal/pkg/cmdutil"
	"github.com/wsnauth/ltrq/internal/pkg/logger"
	"github.com/wsnauth/ltrq/internal/pkg/ticket"
)

var ValidateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate login ticket request documents",
	Long: `Validate one or more XML documents against the login ticket request shape.
Reads from stdin when no file is given. Every violation is reported with
the field path and the violated rule.`,
	RunE:         runValidate,
	SilenceUsage: true,
}

var (
	strict      bool
	checkExpiry bool
	failFast    bool
)

func runValidate(cmd *cobra.Command, args []string) error {
	v := ticket.Validator{
		Strict:      cmdutil.GetBoolConfig("validate.strict", strict),
		CheckExpiry: cmdutil.GetBoolConfig("validate.check_expiry", checkExpiry),
		FailFast:    failFast,
	}

	if len(args) == 0 {
		if err := validateOne(&v, "stdin", cmd.InOrStdin()); err != nil {
			report(cmd.ErrOrStderr(), "stdin", err)
			return errors.New("document rejected")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "stdin: OK")
		return nil
	}

	rejected := 0
	for _, path := range args {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}
		err = validateOne(&v, path, file)
		file.Close()
		if err != nil {
			rejected++
			report(cmd.ErrOrStderr(), path, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", path)
	}

	if rejected > 0 {
		return fmt.Errorf("%d of %d documents rejected", rejected, len(args))
	}
	return nil
}

func validateOne(v *ticket.Validator, name string, r io.Reader) error {
	req, err := v.Validate(r)
	if err != nil {
		return err
	}
	logger.Debug("document accepted",
		"document", name,
		"service", req.Service.String(),
		"unique_id", req.Header.UniqueID)
	return nil
}

// report prints one line per violation so producers can correct the
// document field by field.
func report(w io.Writer, path string, err error) {
	var errs ticket.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			fmt.Fprintf(w, "%s: %s\n", path, e)
		}
		return
	}
	fmt.Fprintf(w, "%s: %s\n", path, err)
}

func init() {
	ValidateCmd.Flags().BoolVarP(&strict, "strict", "s", false, "reject undeclared fields and out-of-order elements")
	ValidateCmd.Flags().BoolVar(&checkExpiry, "check-expiry", false, "require expirationTime to be later than generationTime")
	ValidateCmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first violation per document")
}
