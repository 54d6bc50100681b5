package export

import (
	"encoding/json"
	"io"
)

// JSONExporter renders a transcript as indented JSON.
type JSONExporter struct{}

// Export writes the transcript to w.
func (e *JSONExporter) Export(transcript Transcript, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(transcript)
}

// Extension returns the file extension for this format.
func (e *JSONExporter) Extension() string {
	return "json"
}
