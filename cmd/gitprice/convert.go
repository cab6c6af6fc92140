package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rohankatakam/gitprice/internal/git"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <date>",
	Short: "Convert a git log date to a Unix timestamp",
	Long: `Convert a date in git's default log format to a Unix timestamp.

Examples:
  gitprice convert "Thu Apr 7 15:13:13 2005 -0700"
  gitprice convert -- Thu Apr 7 15:13:13 2005 -0700`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runConvert(cmd.OutOrStdout(), strings.Join(args, " "))
	},
}

// runConvert prints the timestamp, or the expected format when value does
// not match it. A mismatch is reported, not returned as an error.
func runConvert(w io.Writer, value string) {
	ts, err := git.ParseDate(value)
	if err != nil {
		fmt.Fprintln(w, git.FormatMismatch(value))
		return
	}
	fmt.Fprintf(w, "Unix Timestamp: %d\n", ts)
}
