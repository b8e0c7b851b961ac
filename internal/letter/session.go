// Package letter models the working state of one open letter: the editable
// body, the recipient selection, and the dirty flag derived from both.
package letter

import (
	"strings"

	"soapbox/api/internal/catalog"
)

// State is the lifecycle phase of a session.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Session is the ephemeral working state for one open letter. It owns copies
// of its content and recipient selection and never mutates the template.
type Session struct {
	ID       string
	Template catalog.LetterTemplate
	State    State

	OriginalContent string
	CurrentContent  string

	// Selected is an ordered set of official ids, initialized from the
	// template's default recipients and changed only by explicit toggles.
	Selected []string

	// Message is the user-facing explanation when State is StateError.
	Message string
}

// New creates a session in the loading state for the given template.
func New(id string, template catalog.LetterTemplate) *Session {
	return &Session{
		ID:       id,
		Template: template,
		State:    StateLoading,
		Selected: append([]string(nil), template.DefaultRecipients...),
	}
}

// Install moves the session to ready with the fetched original content. A
// saved draft becomes the current content only when it actually differs from
// the original after normalization; a stale draft equal to the original is
// ignored.
func (s *Session) Install(original string, savedDraft string, hasDraft bool) {
	s.OriginalContent = original
	s.CurrentContent = original
	if hasDraft && Normalize(savedDraft) != Normalize(original) {
		s.CurrentContent = savedDraft
	}
	s.State = StateReady
	s.Message = ""
}

// Fail moves the session to the error state with a user-facing message.
func (s *Session) Fail(message string) {
	s.State = StateError
	s.Message = message
}

// SetContent replaces the editable body verbatim. Internal whitespace is
// preserved; normalization only happens for the dirty comparison.
func (s *Session) SetContent(content string) {
	s.CurrentContent = content
}

// ToggleRecipient adds or removes an official id from the selection. Adding
// an already-selected id or removing an absent one is a no-op, keeping
// first-selected order stable.
func (s *Session) ToggleRecipient(id string, selected bool) {
	index := -1
	for i, existing := range s.Selected {
		if existing == id {
			index = i
			break
		}
	}
	if selected && index < 0 {
		s.Selected = append(s.Selected, id)
	}
	if !selected && index >= 0 {
		s.Selected = append(s.Selected[:index], s.Selected[index+1:]...)
	}
}

// Reset reverts the editable body to the original template content.
func (s *Session) Reset() {
	s.CurrentContent = s.OriginalContent
}

// IsDirty reports whether the current content differs from the original
// after normalization.
func (s *Session) IsDirty() bool {
	return Normalize(s.CurrentContent) != Normalize(s.OriginalContent)
}

// Normalize unifies line endings and trims surrounding whitespace, so a
// draft saved on another platform or with an accidental trailing newline
// does not count as an edit.
func Normalize(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
}
