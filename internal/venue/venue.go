package venue

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the venue list is read from when no path is given.
const DefaultPath = "config/venues.json"

// ErrNoVenues is returned when the configuration holds no venues.
var ErrNoVenues = errors.New("no venues configured")

// Venue describes one event page to check
type Venue struct {
	Name     string `json:"name" yaml:"name"`
	URL      string `json:"url" yaml:"url"`
	Selector string `json:"selector" yaml:"selector"`
	// DateAttribute names an element attribute holding the date, checked before the element text.
	DateAttribute string `json:"dateAttribute,omitempty" yaml:"dateAttribute,omitempty"`
}

// HasDateAttribute reports whether an attribute should be checked before element text
func (v Venue) HasDateAttribute() bool {
	return strings.TrimSpace(v.DateAttribute) != ""
}

// Format is the encoding of a venue list
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the file extension. Anything other than
// .yaml or .yml is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the venue list at path
func Load(fs afero.Fs, path string) ([]Venue, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading venue config: %w", err)
	}
	return Parse(data, FormatFor(path))
}

// Parse decodes a venue list. Every venue needs a name, url and selector.
func Parse(data []byte, format Format) ([]Venue, error) {
	var venues []Venue
	var err error
	if format == FormatYAML {
		err = yaml.Unmarshal(data, &venues)
	} else {
		err = json.Unmarshal(data, &venues)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing venue config: %w", err)
	}

	if len(venues) == 0 {
		return nil, ErrNoVenues
	}

	for i, v := range venues {
		var missing []string
		if strings.TrimSpace(v.Name) == "" {
			missing = append(missing, "name")
		}
		if strings.TrimSpace(v.URL) == "" {
			missing = append(missing, "url")
		}
		if strings.TrimSpace(v.Selector) == "" {
			missing = append(missing, "selector")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("venue %d: missing %s", i, strings.Join(missing, ", "))
		}
	}

	return venues, nil
}
