package main

import (
	"fmt"

	"github.com/neha-maurya01/SahaayAI/filter"
	"github.com/spf13/cobra"
)

type explainOutput struct {
	Result filter.ValidationResult `json:"result"`
	Stages []filter.StageResult    `json:"stages"`
}

func newExplainCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [message]",
		Short: "Show the verdict of every guardrail stage that ran",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := readText(cmd, args)
			if err != nil {
				return err
			}
			result, stages := filter.Default().Explain(message)
			if opts.json {
				return printJson(cmd, explainOutput{Result: result, Stages: stages})
			}

			out := cmd.OutOrStdout()
			for i, s := range stages {
				verdict := "pass"
				if s.Rejected {
					verdict = "REJECT"
				}
				line := fmt.Sprintf("%d. %-18s %s", i+1, s.Filter, verdict)
				if s.Detail != "" {
					line += fmt.Sprintf(" (%s)", s.Detail)
				}
				if _, err = fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(out, classificationLine(result))
			return err
		},
	}
}
