package picker

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/praclab/internal/screen"
)

type staticLister struct {
	ids []string
	err error
}

func (l staticLister) List(context.Context) ([]string, error) {
	return l.ids, l.err
}

func loadedPicker(t *testing.T, l Lister, active string) screen.Screen {
	t.Helper()
	p := New(l, active)
	msg := p.Init()()
	s, _ := p.Update(msg)
	return s
}

func TestPicker_MarksActiveSet(t *testing.T) {
	s := loadedPicker(t, staticLister{ids: []string{"a.csv", "b.yaml", "c.json"}}, "b.yaml")
	p := s.(*PickerScreen)

	assert.Equal(t, 1, p.menu.Selected)
	assert.Contains(t, s.View(80, 24), "(current)")
}

func TestPicker_EnterChoosesSet(t *testing.T) {
	s := loadedPicker(t, staticLister{ids: []string{"a.csv", "b.yaml"}}, "a.csv")

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, s.(*PickerScreen).menu.Selected)
}

func TestChoose(t *testing.T) {
	cmd := choose("b.yaml")()
	require.NotNil(t, cmd)
	assert.NotNil(t, cmd())
}

func TestPicker_ListError(t *testing.T) {
	s := loadedPicker(t, staticLister{err: errors.New("permission denied")}, "")
	assert.Contains(t, s.View(80, 24), "permission denied")
}

func TestPicker_EmptyDirectory(t *testing.T) {
	s := loadedPicker(t, staticLister{}, "")
	assert.Contains(t, s.View(80, 24), "No question files found.")
}
