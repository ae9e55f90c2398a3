package provider

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"stratagix/pkg/content"
	"stratagix/pkg/trends"
)

// Document is the on-disk layout read by the file provider.
type Document struct {
	Content []content.Item `yaml:"content"`
	Trends  []trends.Entry `yaml:"trends"`
}

// OpenFile parses a YAML data file.
func OpenFile(path string) (*Memory, error) {
	if path == "" {
		return nil, fmt.Errorf("data file path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a YAML document into an in-memory provider.
func Decode(r io.Reader) (*Memory, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode data file: %w", err)
	}
	return NewMemoryWith(doc.Content, doc.Trends), nil
}

// Encode writes the provider's data as a YAML document.
func Encode(ctx context.Context, w io.Writer, p Provider) error {
	items, err := p.ListContentItems(ctx)
	if err != nil {
		return err
	}
	entries, err := p.ListTrendEntries(ctx)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Content: items, Trends: entries}); err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	return enc.Close()
}
