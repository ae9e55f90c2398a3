// Package content holds the scheduled content model and the registry that answers
// calendar queries over it.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// Type is the media kind of a content item.
type Type string

const (
	TypeImage   Type = "image"
	TypeVideo   Type = "video"
	TypeArticle Type = "article"
)

// Platform is the publishing target of a content item.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	// PlatformBoth is its own value; it is not a wildcard.
	PlatformBoth Platform = "both"
	// PlatformAll is the "no filter" choice offered by list views. It never
	// appears on an item.
	PlatformAll Platform = "all"
)

// Status is the editorial state of a content item.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusReady     Status = "ready"
)

var (
	ErrMissingID       = errors.New("content item id is required")
	ErrDuplicateID     = errors.New("duplicate content item id")
	ErrInvalidType     = errors.New("invalid content type")
	ErrInvalidPlatform = errors.New("invalid platform")
	ErrInvalidStatus   = errors.New("invalid status")
)

// Item is one piece of plannable social-media content.
type Item struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Type     Type     `json:"type" yaml:"type"`
	Date     Date     `json:"date" yaml:"date"`
	Time     string   `json:"time" yaml:"time"`
	Platform Platform `json:"platform" yaml:"platform"`
	Status   Status   `json:"status" yaml:"status"`
}

// ParseType accepts the type name case-insensitively.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeImage, TypeVideo, TypeArticle:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// ParsePlatform accepts the platform name case-insensitively, including "all".
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformInstagram, PlatformLinkedIn, PlatformBoth, PlatformAll:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPlatform, s)
	}
}

// ParseStatus accepts the status name case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusDraft, StatusScheduled, StatusReady:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Validate checks the enum fields and the date of an item.
func (it Item) Validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return ErrMissingID
	}
	switch it.Type {
	case TypeImage, TypeVideo, TypeArticle:
	default:
		return fmt.Errorf("item %s: %w: %q", it.ID, ErrInvalidType, it.Type)
	}
	switch it.Platform {
	case PlatformInstagram, PlatformLinkedIn, PlatformBoth:
	default:
		return fmt.Errorf("item %s: %w: %q", it.ID, ErrInvalidPlatform, it.Platform)
	}
	switch it.Status {
	case StatusDraft, StatusScheduled, StatusReady:
	default:
		return fmt.Errorf("item %s: %w: %q", it.ID, ErrInvalidStatus, it.Status)
	}
	if !it.Date.Valid() {
		return fmt.Errorf("item %s: %w: %s", it.ID, ErrInvalidDate, it.Date)
	}
	return nil
}
