package product

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-yaml"

	"record-merger/core/reconcile"
)

// Report is the outcome of one reconcile run.
type Report struct {
	Mode        reconcile.Mode `json:"mode" yaml:"mode"`
	FeedObject  string         `json:"feed_object" yaml:"feed_object"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Fields      []string       `json:"fields" yaml:"fields"`
	Plan        *Plan          `json:"plan" yaml:"plan"`
}

// Report formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode writes the report as JSON or YAML.
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown report format %q", format)
}

// ObjectName returns the storage key for the report under prefix.
func (r *Report) ObjectName(prefix string) string {
	return fmt.Sprintf("%sproducts-%s-%s.json", prefix, r.Mode, r.GeneratedAt.UTC().Format("20060102T150405Z"))
}
