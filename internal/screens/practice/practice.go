// Package practice implements the question-and-answer screen.
package practice

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/praclab/internal/quiz"
	"github.com/abhisek/praclab/internal/router"
	"github.com/abhisek/praclab/internal/screen"
	"github.com/abhisek/praclab/internal/screens/picker"
	"github.com/abhisek/praclab/internal/ui/components"
	"github.com/abhisek/praclab/internal/ui/layout"
)

// DefaultFeedbackDelay is how long the success banner stays up.
const DefaultFeedbackDelay = time.Second

// Options configures a PracticeScreen.
type Options struct {
	// InitialSet is selected on startup. Empty selects the first listed set.
	InitialSet string

	// FeedbackDelay is how long "Correct! Well done!" stays on screen.
	FeedbackDelay time.Duration

	// SessionID tags log lines written by this screen.
	SessionID string
}

// PracticeScreen implements screen.Screen over a quiz.Machine.
// All machine actions run synchronously inside Update.
type PracticeScreen struct {
	machine *quiz.Machine
	sets    picker.Lister
	opts    Options

	input     components.TextInput
	gotoInput components.TextInput
	goingTo   bool

	listed    bool
	listErr   error
	loadErr   error
	notice    string
	incorrect bool

	flashing bool
	flashSeq int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen. sets lists the identifiers machine can load.
func New(machine *quiz.Machine, sets picker.Lister, opts Options) *PracticeScreen {
	if opts.FeedbackDelay <= 0 {
		opts.FeedbackDelay = DefaultFeedbackDelay
	}
	return &PracticeScreen{
		machine:   machine,
		sets:      sets,
		opts:      opts,
		input:     components.NewTextInput("Type your answer...", false, 60),
		gotoInput: components.NewTextInput("number", true, 6),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	sets := s.sets
	return tea.Batch(
		func() tea.Msg {
			ids, err := sets.List(context.Background())
			return setsListedMsg{IDs: ids, Err: err}
		},
		s.input.Init(),
	)
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// HeaderStatus shows the active set in the header.
func (s *PracticeScreen) HeaderStatus() string {
	return s.machine.ActiveSet()
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.goingTo {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{}
	if s.machine.Status() == quiz.StatusActive {
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Submit"},
			layout.KeyHint{Key: "Alt+A", Description: "Answer"},
		)
	}
	hints = append(hints,
		layout.KeyHint{Key: "Alt+P/N", Description: "Prev/Next"},
		layout.KeyHint{Key: "Ctrl+G", Description: "Go to"},
		layout.KeyHint{Key: "Ctrl+O", Description: "Sets"},
		layout.KeyHint{Key: "Ctrl+T", Description: "Theme"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setsListedMsg:
		return s.handleListed(msg)

	case picker.ChosenMsg:
		s.selectSet(msg.ID)
		return s, nil

	case feedbackDoneMsg:
		if msg.seq == s.flashSeq {
			s.flashing = false
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.machine.Status() == quiz.StatusActive && !s.goingTo {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		_ = s.machine.UpdateDraft(s.input.Value())
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleListed(msg setsListedMsg) (screen.Screen, tea.Cmd) {
	s.listed = true
	s.listErr = msg.Err
	if msg.Err != nil {
		log.Printf("session %s: list sets: %v", s.opts.SessionID, msg.Err)
		return s, nil
	}

	id := s.opts.InitialSet
	if id == "" && len(msg.IDs) > 0 {
		id = msg.IDs[0]
	}
	if id == "" {
		log.Printf("session %s: no question sets found", s.opts.SessionID)
		return s, nil
	}
	s.selectSet(id)
	return s, nil
}

// selectSet makes id the active set. The notice area reports load failures.
func (s *PracticeScreen) selectSet(id string) {
	prev := s.machine.ActiveSet()
	err := s.machine.SelectSet(context.Background(), id)
	if prev == id && err == nil {
		return
	}
	s.loadErr = err
	s.afterMove()
	if err != nil {
		log.Printf("session %s: select %s: %v", s.opts.SessionID, id, err)
		return
	}
	_, total := s.machine.Progress()
	log.Printf("session %s: select %s (%d questions)", s.opts.SessionID, id, total)
}

func (s *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.goingTo {
		return s.handleGotoKey(msg)
	}

	switch msg.String() {
	case "enter", "ctrl+enter", "ctrl+s":
		return s.submit()
	case "alt+a":
		if err := s.machine.ToggleShowAnswer(); err == nil {
			log.Printf("session %s: toggle answer at %d", s.opts.SessionID, s.position())
		}
		return s, nil
	case "alt+n":
		if s.machine.Next() {
			s.afterMove()
			log.Printf("session %s: next to %d", s.opts.SessionID, s.position())
		}
		return s, nil
	case "alt+p":
		if s.machine.Previous() {
			s.afterMove()
			log.Printf("session %s: previous to %d", s.opts.SessionID, s.position())
		}
		return s, nil
	case "ctrl+g":
		if _, total := s.machine.Progress(); total == 0 {
			return s, nil
		}
		s.goingTo = true
		s.notice = ""
		s.gotoInput.Reset()
		s.input.Blur()
		return s, s.gotoInput.Focus()
	case "ctrl+o":
		next := picker.New(s.sets, s.machine.ActiveSet())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}

	if s.machine.Status() != quiz.StatusActive {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	_ = s.machine.UpdateDraft(s.input.Value())
	return s, cmd
}

func (s *PracticeScreen) handleGotoKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.goingTo = false
		return s, s.input.Focus()
	case "enter":
		s.goingTo = false
		s.gotoQuestion()
		return s, s.input.Focus()
	}
	var cmd tea.Cmd
	s.gotoInput, cmd = s.gotoInput.Update(msg)
	return s, cmd
}

// gotoQuestion moves to the 1-based question number typed into the prompt.
func (s *PracticeScreen) gotoQuestion() {
	_, total := s.machine.Progress()
	n, err := s.gotoInput.NumericValue()
	if err != nil {
		s.notice = fmt.Sprintf("Enter a question number between 1 and %d.", total)
		return
	}
	if n < 1 || n > total {
		s.notice = fmt.Sprintf("Question %d is out of range (1-%d).", n, total)
		return
	}
	if err := s.machine.GotoIndex(n - 1); err != nil {
		if errors.Is(err, quiz.ErrOutOfRange) {
			s.notice = fmt.Sprintf("Question %d is out of range (1-%d).", n, total)
		}
		return
	}
	s.afterMove()
	log.Printf("session %s: goto %d", s.opts.SessionID, s.position())
}

func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	pos := s.position()
	res, err := s.machine.Submit()
	if err != nil {
		return s, nil
	}
	log.Printf("session %s: submit %s #%d correct=%t attempts=%d",
		s.opts.SessionID, s.machine.ActiveSet(), pos, res.Correct, res.WrongAttempts)

	if !res.Correct {
		s.incorrect = true
		return s, nil
	}

	s.afterMove()
	s.flashing = true
	s.flashSeq++
	seq := s.flashSeq
	return s, tea.Tick(s.opts.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}

// afterMove syncs the view with a question or set change.
func (s *PracticeScreen) afterMove() {
	s.input.Reset()
	s.incorrect = false
	s.notice = ""
	s.flashing = false
}

// position returns the 1-based question number for log lines.
func (s *PracticeScreen) position() int {
	current, _ := s.machine.Progress()
	return current
}
