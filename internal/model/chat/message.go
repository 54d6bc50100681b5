package chat

// Sender identifies which side of the conversation authored a message.
type Sender string

const (
	SenderSeeker   Sender = "seeker"
	SenderProvider Sender = "provider"
)

// Message is a single turn in a conversation. IDs are assigned per
// conversation and only ever grow; messages are never edited or reordered.
type Message struct {
	ID        int    `json:"id"`
	Sender    Sender `json:"sender"`
	Text      string `json:"message"`
	Timestamp string `json:"timestamp"`
}
