package conversation

import (
	"errors"
	"sync"

	"github.com/bookchat/seeker/internal/model/chat"
)

var (
	// ErrNotFound reports selection of a conversation id that is not in the
	// registry. The prior selection is left as it was.
	ErrNotFound = errors.New("conversation not found")
	// ErrNoSelection reports an operation that needs an open conversation.
	ErrNoSelection = errors.New("no conversation selected")
)

// Registry holds the conversation list and the current selection. Selection
// is tracked by id so it survives a list refresh. At most one conversation is
// selected at a time; overlay visibility is a view concern and lives elsewhere.
type Registry struct {
	mu       sync.RWMutex
	sessions []chat.Session
	selected int // session id, 0 when nothing is open
}

// NewRegistry returns a Registry with the given conversations and no selection.
func NewRegistry(sessions []chat.Session) *Registry {
	return &Registry{sessions: append([]chat.Session(nil), sessions...)}
}

// List returns the conversations in source order.
func (r *Registry) List() []chat.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]chat.Session(nil), r.sessions...)
}

// Select opens the conversation with the given id. An unknown id fails with
// ErrNotFound and leaves the previous selection unchanged.
func (r *Registry) Select(id int) (chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, session := range r.sessions {
		if session.ID == id {
			r.selected = id
			return session, nil
		}
	}
	return chat.Session{}, ErrNotFound
}

// Selected returns the open conversation, if any.
func (r *Registry) Selected() (chat.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.selected == 0 {
		return chat.Session{}, false
	}
	for _, session := range r.sessions {
		if session.ID == r.selected {
			return session, true
		}
	}
	return chat.Session{}, false
}

// ClearSelection closes any open conversation.
func (r *Registry) ClearSelection() {
	r.mu.Lock()
	r.selected = 0
	r.mu.Unlock()
}

// Replace swaps in a refreshed conversation list. The selection is kept when
// the selected id is still present and cleared otherwise.
func (r *Registry) Replace(sessions []chat.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append([]chat.Session(nil), sessions...)
	if r.selected == 0 {
		return
	}
	for _, session := range r.sessions {
		if session.ID == r.selected {
			return
		}
	}
	r.selected = 0
}
