package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/praclab/internal/app"
	"github.com/abhisek/praclab/internal/config"
	"github.com/abhisek/praclab/internal/questionset"
	"github.com/abhisek/praclab/internal/quiz"
	"github.com/abhisek/praclab/internal/screens/practice"
	"github.com/abhisek/praclab/internal/ui/theme"
)

// runApp resolves configuration, builds the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("praclab needs an interactive terminal; use \"praclab list\" or \"praclab check\" in scripts")
	}

	palette, err := theme.ByName(cfg.Theme)
	if err != nil {
		return err
	}
	theme.Apply(palette)

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if info, err := os.Stat(cfg.Dir); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Warning: question directory %q is not readable.\n", cfg.Dir)
	}

	sessionID := uuid.New().String()
	initialSet, _ := cmd.Flags().GetString("set")
	log.Printf("session %s: start dir=%s theme=%s", sessionID, cfg.Dir, cfg.Theme)

	dir := newDir(cfg)
	machine := quiz.NewMachine(quiz.NewState(), dir)
	scr := practice.New(machine, dir, practice.Options{
		InitialSet:    initialSet,
		FeedbackDelay: cfg.FeedbackDelay,
		SessionID:     sessionID,
	})

	err = app.Run(scr)
	log.Printf("session %s: end", sessionID)
	return err
}

func newDir(cfg config.Config) *questionset.Dir {
	return questionset.NewDir(cfg.Dir, questionset.WithPlaceholder(cfg.ExplanationPlaceholder))
}

// setupLogging points the standard logger at path, or discards log output
// when path is empty. The terminal belongs to the TUI either way.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "praclab")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
