package social

import "encoding/json"

// Document is the root container: eight named collections serialized as one
// JSON object. posts, polls, blogs, media and groups are opaque pass-through
// collections the core never inspects.
type Document struct {
	Users    []User            `json:"users"`
	Posts    []json.RawMessage `json:"posts"`
	Messages []Message         `json:"messages"`
	Polls    []json.RawMessage `json:"polls"`
	Blogs    []json.RawMessage `json:"blogs"`
	Media    []json.RawMessage `json:"media"`
	Groups   []json.RawMessage `json:"groups"`
	Events   []Event           `json:"events"`
}

// NewDocument returns a document with all eight collections present as
// empty sequences.
func NewDocument() *Document {
	doc := &Document{}
	doc.normalize()
	return doc
}

// normalize materializes missing or null collections as empty sequences so
// a save always writes all eight keys.
func (d *Document) normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Posts == nil {
		d.Posts = []json.RawMessage{}
	}
	if d.Messages == nil {
		d.Messages = []Message{}
	}
	if d.Polls == nil {
		d.Polls = []json.RawMessage{}
	}
	if d.Blogs == nil {
		d.Blogs = []json.RawMessage{}
	}
	if d.Media == nil {
		d.Media = []json.RawMessage{}
	}
	if d.Groups == nil {
		d.Groups = []json.RawMessage{}
	}
	if d.Events == nil {
		d.Events = []Event{}
	}
}
