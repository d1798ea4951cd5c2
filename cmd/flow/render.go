package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vango-dev/flow/internal/errors"
	"github.com/vango-dev/flow/internal/gallery"
	"github.com/vango-dev/flow/pkg/flow"
	"github.com/vango-dev/flow/pkg/vdom"
)

func renderCmd(opts *globalOptions) *cobra.Command {
	var (
		list     bool
		check    bool
		document bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "render [page]",
		Short: "Render a gallery page to HTML",
		Long: `Render a gallery page to HTML.

Warnings raised by the helpers are logged to stderr and never fail
the render.

Examples:
  flow render --list
  flow render for-list
  flow render if-chain --document -o if-chain.html
  flow render --check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				listPages(out)
				return nil
			}
			if check {
				return checkPages(out)
			}
			if len(args) == 0 {
				return errors.New("E143").
					WithDetail("No page name given").
					WithSuggestion("Run 'flow render --list' to see available pages")
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg, cmd.ErrOrStderr())

			return runRender(out, logger, args[0], document, output)
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List available pages")
	cmd.Flags().BoolVar(&check, "check", false, "Render every page and verify its warnings")
	cmd.Flags().BoolVarP(&document, "document", "d", false, "Wrap the page in a full HTML document")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write HTML to a file instead of stdout")

	return cmd
}

func runRender(out io.Writer, logger *slog.Logger, name string, document bool, output string) error {
	page, err := gallery.Get(name)
	if err != nil {
		return err
	}

	res, err := page.Render(flow.LogSink(logger))
	if err != nil {
		return err
	}

	html := res.HTML
	if document {
		html, err = vdom.RenderString(gallery.Document(page.Title, vdom.H1(vdom.Text(page.Title)), res.Node))
		if err != nil {
			return errors.Newf(errors.CategoryRender, "render document: %v", err).Wrap(err)
		}
	}

	logger.Debug("rendered page",
		slog.String("page", page.Name),
		slog.Int("warnings", len(res.Warnings)),
		slog.Duration("duration", res.Duration),
	)

	if output == "" {
		_, err := fmt.Fprintln(out, html)
		return err
	}
	if err := os.WriteFile(output, []byte(html+"\n"), 0644); err != nil {
		return errors.Newf(errors.CategoryCLI, "write %s: %v", output, err).Wrap(err)
	}
	success(out, "Wrote %s (%d bytes)", output, len(html)+1)
	return nil
}

func listPages(out io.Writer) {
	for _, p := range gallery.All() {
		codes := "-"
		if len(p.Expect) > 0 {
			codes = strings.Join(p.Expect, ",")
		}
		fmt.Fprintf(out, "  %-22s %-6s %s\n", p.Name, codes, p.Description)
	}
}

func checkPages(out io.Writer) error {
	failed := 0
	for _, p := range gallery.All() {
		res, err := p.Render(nil)
		if err != nil {
			return err
		}

		got := make([]string, len(res.Warnings))
		for i, w := range res.Warnings {
			got[i] = w.Code
		}
		if slices.Equal(got, p.Expect) {
			success(out, "%s", p.Name)
			continue
		}
		failed++
		failure(out, "%s: warnings %v, want %v", p.Name, got, p.Expect)
	}

	if failed > 0 {
		return errors.Newf(errors.CategoryCLI, "%d page(s) raised unexpected warnings", failed)
	}
	info(out, "%d pages checked", len(gallery.List()))
	return nil
}
