package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootOptions struct {
	json bool
	raw  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "guardctl",
		Short: "Run the SahaayAI guardrail locally",
		Long:  `Validates and formats messages with the same rules the SahaayAI API applies, without a database or backend.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print results as JSON")
	root.PersistentFlags().BoolVar(&opts.raw, "raw", false, "never render markdown, even on a terminal")

	root.AddCommand(newValidateCmd(opts))
	root.AddCommand(newExplainCmd(opts))
	root.AddCommand(newFormatCmd(opts))
	return root
}

// readText - The joined arguments, or stdin when there are none. Unlike the API, the CLI does not trim
// arguments, but does drop the trailing newline most shells and files leave on stdin.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Join(errors.New("failed to read stdin"), err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func printJson(cmd *cobra.Command, val any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(val)
}

// isTerminal - True when output goes straight to a terminal rather than a pipe, file or test buffer.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printMarkdown - Renders md with glamour on a terminal, falling back to fallback everywhere else (or if
// rendering fails).
func printMarkdown(cmd *cobra.Command, opts *rootOptions, md string, fallback string) error {
	if !opts.raw && isTerminal(cmd) {
		rendered, err := glamour.Render(md, "dark")
		if err == nil {
			_, err = io.WriteString(cmd.OutOrStdout(), rendered)
			return err
		}
	}
	_, err := io.WriteString(cmd.OutOrStdout(), fallback+"\n")
	return err
}
