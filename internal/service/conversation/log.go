package conversation

import (
	"sync"
	"time"

	"github.com/bookchat/seeker/internal/model/chat"
)

// defaultLogCap bounds each conversation's in-memory history; the oldest
// entries are evicted once the cap is exceeded.
const defaultLogCap = 500

// Log stores message history keyed by conversation id. Append-only: messages
// are never edited or reordered, and ids within a conversation are strictly
// increasing.
type Log struct {
	mu       sync.RWMutex
	messages map[int][]chat.Message
	cap      int
	now      func() time.Time
}

// NewLog returns an empty Log stamping messages with the local clock.
func NewLog() *Log {
	return &Log{
		messages: make(map[int][]chat.Message),
		cap:      defaultLogCap,
		now:      time.Now,
	}
}

// WithClock overrides the timestamp source, for tests.
func (l *Log) WithClock(now func() time.Time) *Log {
	l.now = now
	return l
}

// WithCap overrides the per-conversation history bound.
func (l *Log) WithCap(cap int) *Log {
	if cap > 0 {
		l.cap = cap
	}
	return l
}

// Preload seeds a conversation with an existing transcript. Later appends
// continue from the highest preloaded id.
func (l *Log) Preload(conversationID int, messages []chat.Message) {
	l.mu.Lock()
	l.messages[conversationID] = append([]chat.Message(nil), messages...)
	l.mu.Unlock()
}

// Append adds a message to the conversation and returns it with its assigned
// id and timestamp. The id is one past the highest existing id, starting at 1.
func (l *Log) Append(conversationID int, sender chat.Sender, text string) chat.Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	history := l.messages[conversationID]
	nextID := 1
	if n := len(history); n > 0 {
		nextID = history[n-1].ID + 1
	}

	message := chat.Message{
		ID:        nextID,
		Sender:    sender,
		Text:      text,
		Timestamp: l.now().Format("3:04 PM"),
	}

	history = append(history, message)
	if len(history) > l.cap {
		history = history[len(history)-l.cap:]
	}
	l.messages[conversationID] = history
	return message
}

// History returns the conversation's messages in append order.
func (l *Log) History(conversationID int) []chat.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]chat.Message(nil), l.messages[conversationID]...)
}

// Clear drops every conversation's history. Called at the logout boundary so
// nothing leaks into a later session in the same process.
func (l *Log) Clear() {
	l.mu.Lock()
	l.messages = make(map[int][]chat.Message)
	l.mu.Unlock()
}
