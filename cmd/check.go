package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/praclab/internal/questionset"
	"github.com/abhisek/praclab/internal/quiz"
)

var checkCmd = &cobra.Command{
	Use:   "check <set>",
	Short: "Validate a question set and report skipped rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return checkSet(cmd.Context(), cmd.OutOrStdout(), newDir(cfg), args[0])
	},
}

// checkSet prints how many rows of id are usable and why the rest were
// skipped. A set with no usable rows is an error.
func checkSet(ctx context.Context, w io.Writer, dir *questionset.Dir, id string) error {
	rep, err := dir.Inspect(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: %d usable, %d skipped\n", id, len(rep.Questions), len(rep.Skipped))
	for _, s := range rep.Skipped {
		fmt.Fprintf(w, "  %s: %s\n", s.Location, s.Reason)
	}

	if len(rep.Questions) == 0 {
		return &quiz.LoadError{SetID: id, Err: quiz.ErrNoRecords}
	}
	return nil
}
