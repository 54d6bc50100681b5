// Package export renders a conversation transcript for saving to disk.
package export

import (
	"fmt"
	"io"

	"github.com/bookchat/seeker/internal/model/chat"
)

// Transcript is the exportable view of one conversation.
type Transcript struct {
	Provider   string         `json:"provider" yaml:"provider"`
	ExportedAt string         `json:"exportedAt" yaml:"exportedAt"`
	Messages   []chat.Message `json:"messages" yaml:"messages"`
}

// Exporter defines the interface for all export formats.
type Exporter interface {
	Export(transcript Transcript, w io.Writer) error
	Extension() string
}

// NewExporter creates an exporter for the given format.
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, md)", format)
	}
}
