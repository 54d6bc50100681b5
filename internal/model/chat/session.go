package chat

// Session is one seeker-provider conversation as listed in the sidebar.
type Session struct {
	ID           int    `json:"id"`
	ProviderName string `json:"providerName"`
	LastMessage  string `json:"lastMessage"`
	Timestamp    string `json:"timestamp"`
	Unread       int    `json:"unread"`
}
