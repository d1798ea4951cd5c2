package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vango-dev/flow/internal/errors"
	"gopkg.in/yaml.v3"
)

// codeEntry is one registry entry as printed by `flow codes`.
type codeEntry struct {
	Code     string `json:"code" yaml:"code"`
	Category string `json:"category" yaml:"category"`
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
	Detail   string `json:"detail,omitempty" yaml:"detail,omitempty"`
	DocURL   string `json:"docUrl,omitempty" yaml:"docUrl,omitempty"`
}

// registryEntries returns the registered codes, optionally limited to one
// category.
func registryEntries(category string) []codeEntry {
	var entries []codeEntry
	for _, code := range errors.GetAllCodes() {
		tmpl, _ := errors.GetTemplate(code)
		if category != "" && string(tmpl.Category) != category {
			continue
		}
		entries = append(entries, codeEntry{
			Code:     code,
			Category: string(tmpl.Category),
			Severity: string(tmpl.Severity),
			Message:  tmpl.Message,
			Detail:   tmpl.Detail,
			DocURL:   tmpl.DocURL,
		})
	}
	return entries
}

func codesCmd() *cobra.Command {
	var (
		format   string
		category string
	)

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List diagnostic codes",
		Long: `List every registered diagnostic code.

Render warnings (W001-W009) are raised by the helpers; E-codes are
raised by the CLI and configuration loading.

Examples:
  flow codes
  flow codes --category render
  flow codes --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCodes(cmd.OutOrStdout(), registryEntries(category), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")
	cmd.Flags().StringVar(&category, "category", "", "Only list codes of this category (render, config, cli)")

	return cmd
}

func writeCodes(out io.Writer, entries []codeEntry, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		for _, e := range entries {
			fmt.Fprintf(out, "  %s  %-8s %s\n", e.Code, e.Severity, e.Message)
		}
		return nil

	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)

	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()

	default:
		return errors.Newf(errors.CategoryCLI, "unknown format %q", format).
			WithSuggestion("Use text, json or yaml")
	}
}

func explainCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "explain <code>",
		Short: "Explain a diagnostic code",
		Long: `Print the message, explanation and documentation link for a code.

Examples:
  flow explain W004
  flow explain e122 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])
			if _, ok := errors.GetTemplate(code); !ok {
				return errors.New("E144").
					WithDetail("Code '" + args[0] + "' is not registered").
					WithSuggestion("Run 'flow codes' to list every code")
			}

			e := errors.New(code)
			if asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), e.FormatJSON())
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), e.Format())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}
