// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/engine"
)

const unknownCipher = "(unknown)"

func (a *app) cipherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cipher ID...",
		Short: "Print the names of cipher suite identifiers",
		Long: "Print the names of cipher suite identifiers as known to the selected engine.\n" +
			"Identifiers are decimal or 0x-prefixed hexadecimal.",
		Example: "  tls-engine-utils cipher 0xc02f 4865",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uint16, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseUint(arg, 0, 16)
				if err != nil {
					return fmt.Errorf("invalid cipher id %q: %w", arg, err)
				}
				ids = append(ids, uint16(id))
			}

			out := cmd.OutOrStdout()
			for _, id := range ids {
				name := engine.CipherName(id)
				if name == "" {
					name = unknownCipher
				}
				fmt.Fprintf(out, "0x%04X %s\n", id, name)
			}
			a.done()
			return nil
		},
	}
}

func (a *app) ciphersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ciphers",
		Short: "List every cipher suite the selected engine knows as a markdown table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderCipherTable(a.engine))
			a.done()
			return nil
		},
	}
}

// renderCipherTable renders the cipher table of e as markdown, preceded by
// a heading naming the engine.
func renderCipherTable(e engine.Engine) string {
	table := engine.CipherTableFor(e)

	var buf strings.Builder
	title := cases.Title(language.English).String(e.Name())
	fmt.Fprintf(&buf, "%s engine: %d cipher suites\n\n", title, table.Len())

	tbl := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	tbl.Header([]string{"ID", "Name"})

	rows := make([][]string, 0, table.Len())
	for _, id := range table.IDs() {
		rows = append(rows, []string{fmt.Sprintf("0x%04X", id), table.Lookup(id)})
	}
	tbl.Bulk(rows)
	tbl.Render()
	return buf.String()
}
