package conversation

import (
	"strings"
	"sync"
)

// Composer owns the in-progress outgoing message and the one-shot pre-fill
// slot that other features (the appointments view) write into.
type Composer struct {
	mu      sync.Mutex
	draft   string
	prefill *string // single-slot mailbox, last write wins
}

// NewComposer returns a Composer with an empty draft and no pending pre-fill.
func NewComposer() *Composer {
	return &Composer{}
}

// SetDraft replaces the draft verbatim. Controlled-input semantics: every
// keystroke arrives as the full new value.
func (c *Composer) SetDraft(text string) {
	c.mu.Lock()
	c.draft = text
	c.mu.Unlock()
}

// Draft returns the current draft text.
func (c *Composer) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// RequestPrefill stores text to seed the draft with on the next conversation
// view activation. A pending unconsumed request is overwritten.
func (c *Composer) RequestPrefill(text string) {
	c.mu.Lock()
	c.prefill = &text
	c.mu.Unlock()
}

// ConsumePrefill takes the pending pre-fill, if any, clearing the slot and
// setting the draft to it in the same step. A consumed request is never
// delivered again.
func (c *Composer) ConsumePrefill() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prefill == nil {
		return "", false
	}
	text := *c.prefill
	c.prefill = nil
	c.draft = text
	return text, true
}

// SendAndClear trims the draft and hands the text to the caller. A draft that
// is empty after trimming yields nothing and is left exactly as it was; no
// empty message is ever produced.
func (c *Composer) SendAndClear() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	text := strings.TrimSpace(c.draft)
	if text == "" {
		return "", false
	}
	c.draft = ""
	return text, true
}
