package schedule

import (
	"time"
)

// Parser turns a natural-language time request into an instant. The real
// interpretation lives outside this module; RFC3339Parser is the minimal
// implementation used when the model layer already sends a machine instant.
type Parser interface {
	// Parse returns nil when the text cannot be interpreted.
	Parse(text string, loc *time.Location) *time.Time
	FormatForDisplay(t time.Time, language string) string
}

type RFC3339Parser struct{}

func NewRFC3339Parser() *RFC3339Parser {
	return &RFC3339Parser{}
}

func (p *RFC3339Parser) Parse(text string, loc *time.Location) *time.Time {
	layouts := []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return &t
		}
	}
	return nil
}

func (p *RFC3339Parser) FormatForDisplay(t time.Time, language string) string {
	// Display formatting is language-agnostic for now.
	return t.Format("Mon, 02 Jan 15:04")
}
