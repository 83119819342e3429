package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Defaults applied to any field absent from the constraints document.
const (
	DefaultSpacingUnit    = 8
	DefaultMinContrast    = 4.5
	DefaultMinTouchTarget = 44.0
	DefaultRequireLabels  = true
)

// DefaultSpacingScale is the spacing scale assumed when the document omits one.
func DefaultSpacingScale() []int {
	return []int{4, 8, 16, 24, 32, 48}
}

// Document is the raw parse shape of the design-system constraints file.
// Every field is optional; the file is owned by an external writer and this
// tool never mutates it. Absent sub-fields are filled in by ApplyDefaults.
type Document struct {
	Brand              *BrandSection         `json:"brand"`
	Accessibility      *AccessibilitySection `json:"accessibility"`
	DiscoveredPatterns []PatternSection      `json:"discovered_patterns"`
}

// BrandSection holds discovered brand tokens.
type BrandSection struct {
	Colors     EntryList       `json:"colors"`
	Typography EntryList       `json:"typography"`
	Spacing    *SpacingSection `json:"spacing"`
}

// SpacingSection holds the spacing grid, in px.
type SpacingSection struct {
	Unit  *int  `json:"unit"`
	Scale []int `json:"scale"`
}

// AccessibilitySection holds accessibility constraints.
type AccessibilitySection struct {
	MinContrast    *float64 `json:"min_contrast"`
	MinTouchTarget *float64 `json:"min_touch_target"`
	RequireLabels  *bool    `json:"require_labels"`
}

// PatternSection is one previously discovered UI pattern. Screen identifiers
// are opaque to this tool; only their count is ever rendered.
type PatternSection struct {
	Type    string            `json:"type"`
	Screens []json.RawMessage `json:"screens"`
}

// Entry is a single name/value token from the constraints document.
type Entry struct {
	Name  string
	Value string
}

// EntryList is an ordered list of name/value pairs decoded from a JSON
// object. A plain map would discard key order, and colors and typography are
// rendered in the order the document stores them, so the object is walked
// token by token instead.
type EntryList []Entry

// UnmarshalJSON decodes a JSON object into entries preserving key order.
// null decodes to an empty list; any other non-object value is an error.
func (e *EntryList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode entry list: %w", err)
	}
	if tok == nil {
		*e = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode entry list: expected object, got %v", tok)
	}

	var entries EntryList
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode entry key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decode entry key: unexpected token %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode entry value for %q: %w", key, err)
		}
		entries = append(entries, Entry{Name: key, Value: scalarString(raw)})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode entry list close: %w", err)
	}

	*e = entries
	return nil
}

// scalarString renders a raw JSON value as display text. Strings are
// unquoted; anything else keeps its compact JSON form.
func scalarString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// DesignSystem is the fully-populated document produced by ApplyDefaults.
// Rendering is defined only over this type so the template stays total.
type DesignSystem struct {
	Colors        EntryList
	Typography    EntryList
	Spacing       Spacing
	Accessibility Accessibility
	Patterns      []Pattern
}

// Spacing is the normalized spacing grid.
type Spacing struct {
	Unit  int
	Scale []int
}

// Accessibility is the normalized accessibility constraint set.
type Accessibility struct {
	MinContrast    float64
	MinTouchTarget float64
	RequireLabels  bool
}

// Pattern is a normalized discovered pattern.
type Pattern struct {
	Type        string
	ScreenCount int
}

// ApplyDefaults fills every absent field with its documented default.
// Defaulting is per-field: a document that sets only spacing.unit still gets
// the default scale, and vice versa.
func (d Document) ApplyDefaults() DesignSystem {
	ds := DesignSystem{
		Spacing: Spacing{
			Unit:  DefaultSpacingUnit,
			Scale: DefaultSpacingScale(),
		},
		Accessibility: Accessibility{
			MinContrast:    DefaultMinContrast,
			MinTouchTarget: DefaultMinTouchTarget,
			RequireLabels:  DefaultRequireLabels,
		},
	}

	if d.Brand != nil {
		ds.Colors = d.Brand.Colors
		ds.Typography = d.Brand.Typography
		if d.Brand.Spacing != nil {
			if d.Brand.Spacing.Unit != nil {
				ds.Spacing.Unit = *d.Brand.Spacing.Unit
			}
			if len(d.Brand.Spacing.Scale) > 0 {
				ds.Spacing.Scale = d.Brand.Spacing.Scale
			}
		}
	}

	if d.Accessibility != nil {
		if d.Accessibility.MinContrast != nil {
			ds.Accessibility.MinContrast = *d.Accessibility.MinContrast
		}
		if d.Accessibility.MinTouchTarget != nil {
			ds.Accessibility.MinTouchTarget = *d.Accessibility.MinTouchTarget
		}
		if d.Accessibility.RequireLabels != nil {
			ds.Accessibility.RequireLabels = *d.Accessibility.RequireLabels
		}
	}

	for _, p := range d.DiscoveredPatterns {
		ptype := p.Type
		if ptype == "" {
			ptype = "unknown"
		}
		ds.Patterns = append(ds.Patterns, Pattern{
			Type:        ptype,
			ScreenCount: len(p.Screens),
		})
	}

	return ds
}

// DefaultDesignSystem returns the fully-defaulted design system used when no
// constraints file is readable.
func DefaultDesignSystem() DesignSystem {
	return Document{}.ApplyDefaults()
}
