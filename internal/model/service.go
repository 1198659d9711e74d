package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FlexID is an identifier that tolerates both string and numeric JSON
// representations. The backend normally sends string ids, but numeric ids
// have been observed on older records.
type FlexID string

// UnmarshalJSON accepts a JSON string or number and stores its canonical
// string form.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

// String returns the identifier as a plain string.
func (f FlexID) String() string {
	return string(f)
}

// EqualsID reports whether the identifier matches the given string after
// normalisation.
func (f FlexID) EqualsID(id string) bool {
	return string(f) != "" && string(f) == strings.TrimSpace(id)
}

// Service represents a catalogue entry. Services are owned and mutated by
// the backend; this application treats them as read-only.
type Service struct {
	ID           FlexID     `json:"id"`
	LegacyID     FlexID     `json:"_id,omitempty"` // older records identify themselves by _id only
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	CategoryID   string     `json:"category_id"`
	CategoryName string     `json:"category_name,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Image        string     `json:"image,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// CanonicalID resolves the service's identifier, preferring the primary id
// and falling back to the legacy alternate. Returns an empty string when
// neither is set.
func (s Service) CanonicalID() string {
	if s.ID != "" {
		return s.ID.String()
	}
	return s.LegacyID.String()
}

// Category is read-only reference data served by the backend.
type Category struct {
	ID          FlexID `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// ServiceFilter narrows a service listing request.
type ServiceFilter struct {
	CategoryID string
	Search     string
	Limit      int
	Offset     int
}
