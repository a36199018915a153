package main

import (
	"fmt"
	"os"

	"github.com/nao1215/swatch/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for swatch.
// Running it without a subcommand scans a page.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swatch [url]",
		Short: "List the most frequent hex color codes of a web page",
		Long: `swatch downloads a single web page and counts every #RRGGBB color code
found in its raw source, then prints the most common ones:

  Found colors:
  #AABBCC: 2
  #aabbcc: 1

Codes are matched case-sensitively and never normalized, so #AABBCC and
#aabbcc are counted separately. Ties keep the order of first appearance.

If the page cannot be fetched, "Error: <message>" is printed instead.

Examples:
  # Scan the built-in default page
  swatch

  # Scan another page and show the top 5 colors
  swatch -n 5 https://example.com

  # Output a Markdown report with a pie chart
  swatch --markdown -o report.md https://example.com

  # Route the request through a SOCKS5 proxy
  swatch -x 127.0.0.1:9050 https://example.com

Configuration file (.swatch) example:
  url: https://example.com
  timeout: 45s
  top: 10
  headers:
    Accept-Language: en-US`,
		Args:          cobra.MaximumNArgs(1),
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScanCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Request flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for the page request")
	cmd.Flags().StringP("proxy", "x", "",
		"Send the request through a SOCKS5 proxy (e.g., 127.0.0.1:9050)")

	// Result flags
	cmd.Flags().IntP("top", "n", config.DefaultTopN,
		"Number of colors to list")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .swatch in current directory, XDG config or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
