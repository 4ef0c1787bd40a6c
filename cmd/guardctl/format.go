package main

import (
	"github.com/neha-maurya01/SahaayAI/format"
	"github.com/spf13/cobra"
)

type formatOutput struct {
	Style       format.Style   `json:"style"`
	IsGuardrail bool           `json:"is_guardrail"`
	Blocks      []format.Block `json:"blocks"`
}

func newFormatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format [text]",
		Short: "Split a guardrail or backend reply into headings, bullets, categories and paragraphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			blocks := format.Format(text)
			if opts.json {
				return printJson(cmd, formatOutput{
					Style:       format.DetectStyle(text),
					IsGuardrail: format.LooksLikeGuardrail(text),
					Blocks:      blocks,
				})
			}
			return printMarkdown(cmd, opts, format.Markdown(blocks), format.Markdown(blocks))
		},
	}
}
