package main

import (
	"errors"
	"fmt"

	"github.com/neha-maurya01/SahaayAI/filter"
	"github.com/neha-maurya01/SahaayAI/format"
	"github.com/spf13/cobra"
)

// errRejected - Returned so the process exits non-zero when a message would be blocked. The rejection itself
// has already been printed.
var errRejected = errors.New("message rejected")

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [message]",
		Short: "Check whether a message would be forwarded to the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := readText(cmd, args)
			if err != nil {
				return err
			}
			result := filter.Validate(message)
			if opts.json {
				if err = printJson(cmd, result); err != nil {
					return err
				}
			} else if result.IsValid {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), classificationLine(result))
				return err
			} else {
				blocks := format.Format(result.Message)
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), classificationLine(result)); err != nil {
					return err
				}
				if err = printMarkdown(cmd, opts, format.Markdown(blocks), format.Plain(blocks)); err != nil {
					return err
				}
			}
			if !result.IsValid {
				cmd.SilenceErrors = true
				return errRejected
			}
			return nil
		},
	}
}

func classificationLine(result filter.ValidationResult) string {
	return fmt.Sprintf("%s (valid: %t)", result.Category, result.IsValid)
}
