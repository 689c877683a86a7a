package model

import "encoding/json"

// Content models exposed by the CMS.
const (
	ContentModelFossil   = "fossil"
	ContentModelCategory = "category"
)

// ContentEvent is the body of a CMS lifecycle webhook (entry.create, entry.update, ...).
type ContentEvent struct {
	Event string       `json:"event"`
	Model string       `json:"model"`
	Entry ContentEntry `json:"entry"`
}

type ContentEntry struct {
	ID       int64          `json:"id"`
	Slug     string         `json:"slug"`
	Category *CategoryEntry `json:"category"`
}

type CategoryEntry struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
}

// UnmarshalJSON accepts an unpopulated relation (a bare id) as an empty entry.
func (c *CategoryEntry) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	type plain CategoryEntry
	return json.Unmarshal(b, (*plain)(c))
}

// The CMS REST API wraps every entry as {"data": {"id": .., "attributes": {..}}}
// and relations as {"data": {..}} again.

type FossilResponse struct {
	Data  *FossilData `json:"data"`
	Error *APIError   `json:"error,omitempty"`
}

type FossilData struct {
	ID         int64  `json:"id"`
	Attributes Fossil `json:"attributes"`
}

type Fossil struct {
	Slug     string           `json:"slug"`
	Name     string           `json:"name"`
	Sold     bool             `json:"sold"`
	Category CategoryRelation `json:"category"`
}

type CategoryRelation struct {
	Data *CategoryData `json:"data"`
}

type CategoryData struct {
	ID         int64    `json:"id"`
	Attributes Category `json:"attributes"`
}

type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// CategorySlug returns the slug of the populated category, or "".
func (f *Fossil) CategorySlug() string {
	if f.Category.Data == nil {
		return ""
	}
	return f.Category.Data.Attributes.Slug
}

type APIError struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// FossilUpdate is the PUT body for a fossil entry.
type FossilUpdate struct {
	Data FossilUpdateData `json:"data"`
}

type FossilUpdateData struct {
	Sold *bool `json:"sold,omitempty"`
}
