package export

import (
	"fmt"
	"io"
)

// MarkdownExporter renders a transcript as a readable Markdown document.
type MarkdownExporter struct{}

// Export writes the transcript to w.
func (e *MarkdownExporter) Export(transcript Transcript, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# Conversation with %s\n\n", transcript.Provider); err != nil {
		return err
	}
	if transcript.ExportedAt != "" {
		_, _ = fmt.Fprintf(w, "**Exported:** %s  \n", transcript.ExportedAt)
	}
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n---\n\n", len(transcript.Messages))

	for i, msg := range transcript.Messages {
		timestamp := ""
		if msg.Timestamp != "" {
			timestamp = fmt.Sprintf(" (%s)", msg.Timestamp)
		}
		_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", msg.Sender, timestamp, msg.Text)
		if i < len(transcript.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// Extension returns the file extension for this format.
func (e *MarkdownExporter) Extension() string {
	return "md"
}
