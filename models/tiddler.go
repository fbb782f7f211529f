package models

import "time"

// Tiddler field names the sync core reads or writes. All other fields are
// carried opaquely.
const (
	FieldTitle    = "title"
	FieldText     = "text"
	FieldCaption  = "caption"
	FieldModified = "modified"
	FieldName     = "name"
	FieldPort     = "port"
	FieldIPAddr   = "ipAddress"
	FieldLastSync = "lastSync"
)

// TiddlerFields is one flattened tiddler: the title together with every
// other field in a single JSON object, exactly as it crosses the wire
// (`{title, ...fields}`). The core never interprets field values beyond the
// handful of names above — it selects, transmits, and overwrite-applies
// whole records.
type TiddlerFields map[string]any

// Title returns the tiddler's title, or "" if the record carries none.
func (t TiddlerFields) Title() string {
	return t.stringField(FieldTitle)
}

// Text returns the tiddler's text field, or "".
func (t TiddlerFields) Text() string {
	return t.stringField(FieldText)
}

// Modified returns the tiddler's last-modified wiki timestamp, or "".
func (t TiddlerFields) Modified() string {
	return t.stringField(FieldModified)
}

// DisplayName returns the caption when present, falling back to the title.
// Used when truncating change lists for notifications.
func (t TiddlerFields) DisplayName() string {
	if caption := t.stringField(FieldCaption); caption != "" {
		return caption
	}
	return t.Title()
}

// Clone returns a shallow copy of the fields map.
func (t TiddlerFields) Clone() TiddlerFields {
	clone := make(TiddlerFields, len(t))
	for k, v := range t {
		clone[k] = v
	}
	return clone
}

// NormalizedDates returns a copy with every time.Time-valued field replaced
// by its canonical wiki timestamp string. Date values are never transmitted
// as native types over the wire.
func (t TiddlerFields) NormalizedDates() TiddlerFields {
	normalized := make(TiddlerFields, len(t))
	for k, v := range t {
		if ts, ok := v.(time.Time); ok {
			normalized[k] = FormatWikiDate(ts)
			continue
		}
		normalized[k] = v
	}
	return normalized
}

func (t TiddlerFields) stringField(name string) string {
	if v, ok := t[name].(string); ok {
		return v
	}
	return ""
}
