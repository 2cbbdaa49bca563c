package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/praclab/internal/questionset"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the question sets in the question directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return listSets(cmd.Context(), cmd.OutOrStdout(), newDir(cfg))
	},
}

// listSets prints one line per set with its usable question count.
func listSets(ctx context.Context, w io.Writer, dir *questionset.Dir) error {
	ids, err := dir.List(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintf(w, "No question files found in %s (supported: %v)\n", dir.Root(), questionset.Extensions())
		return nil
	}
	for _, id := range ids {
		rep, err := dir.Inspect(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", id, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d questions\n", id, len(rep.Questions))
	}
	return nil
}
