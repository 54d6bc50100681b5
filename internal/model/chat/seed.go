package chat

// Seed provides the default conversation list shown before a backend feed
// for chats exists.
func Seed() []Session {
	return []Session{
		{
			ID:           1,
			ProviderName: "Dr. Sarah Johnson",
			LastMessage:  "Your appointment is confirmed for tomorrow",
			Timestamp:    "2024-01-15 14:30",
			Unread:       2,
		},
		{
			ID:           2,
			ProviderName: "Dr. Mike Chen",
			LastMessage:  "Thank you for scheduling",
			Timestamp:    "2024-01-14 09:15",
			Unread:       0,
		},
		{
			ID:           3,
			ProviderName: "Dr. Emily Brown",
			LastMessage:  "Looking forward to our session",
			Timestamp:    "2024-01-13 16:45",
			Unread:       1,
		},
	}
}

// SeedTranscript returns the demo opening exchange preloaded into the first
// conversation.
func SeedTranscript() []Message {
	return []Message{
		{ID: 1, Sender: SenderProvider, Text: "Hello! How can I help you today?", Timestamp: "10:30 AM"},
		{ID: 2, Sender: SenderSeeker, Text: "Hi, I would like to schedule an appointment", Timestamp: "10:32 AM"},
		{ID: 3, Sender: SenderProvider, Text: "Of course! What time works best for you?", Timestamp: "10:33 AM"},
	}
}
