package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/closet/internal/tui/components"
	"github.com/colonyops/closet/internal/tui/components/form"
	"github.com/colonyops/closet/internal/tui/views/detail"
	"github.com/colonyops/closet/internal/tui/views/edit"
	"github.com/colonyops/closet/internal/tui/views/listing"
)

// screen is the root model's view of a routed sub-model.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Close()
	// CapturesInput reports whether plain keys belong to the screen (text
	// entry), so global single-letter bindings must not fire.
	CapturesInput() bool
	HelpSections() []components.HelpDialogSection
	// Reload rereads store data after it changed on disk. Screens holding
	// unsaved input return nil.
	Reload() tea.Cmd
}

type listingScreen struct{ v listing.View }

func (s *listingScreen) Init() tea.Cmd { return s.v.Init() }

func (s *listingScreen) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.v, cmd = s.v.Update(msg)
	return cmd
}

func (s *listingScreen) View() string              { return s.v.View() }
func (s *listingScreen) SetSize(width, height int) { s.v.SetSize(width, height) }
func (s *listingScreen) Close()                    { s.v.Close() }
func (s *listingScreen) CapturesInput() bool       { return s.v.Filtering() }
func (s *listingScreen) Reload() tea.Cmd           { return s.v.Reload() }

func (s *listingScreen) HelpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{{Title: "Closet", Bindings: s.v.Keys()}}
}

type detailScreen struct{ v detail.View }

func (s *detailScreen) Init() tea.Cmd { return s.v.Init() }

func (s *detailScreen) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.v, cmd = s.v.Update(msg)
	return cmd
}

func (s *detailScreen) View() string              { return s.v.View() }
func (s *detailScreen) SetSize(width, height int) { s.v.SetSize(width, height) }
func (s *detailScreen) Close()                    { s.v.Close() }
func (s *detailScreen) CapturesInput() bool       { return false }
func (s *detailScreen) Reload() tea.Cmd           { return nil }

func (s *detailScreen) HelpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{s.v.Keys().HelpSection()}
}

type editScreen struct{ v edit.View }

func (s *editScreen) Init() tea.Cmd { return s.v.Init() }

func (s *editScreen) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.v, cmd = s.v.Update(msg)
	return cmd
}

func (s *editScreen) View() string              { return s.v.View() }
func (s *editScreen) SetSize(width, height int) { s.v.SetSize(width, height) }
func (s *editScreen) Close()                    { s.v.Close() }
func (s *editScreen) CapturesInput() bool       { return true }
func (s *editScreen) Reload() tea.Cmd           { return nil }

func (s *editScreen) HelpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{{Title: "Edit item", Bindings: form.DefaultKeyMap().Bindings()}}
}
