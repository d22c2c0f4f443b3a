// Package social holds the data model and the consistency rules of the
// Chatternet document: user normalization and partial merges, event shape
// normalization, conversation thread derivation, and the echo bot.
package social

import (
	"encoding/json"
	"strconv"
)

// User is an account record. Field names mirror the stored document.
// privacy, settings and settings.notifications are fully populated records
// once a user has been created; the merge keeps them that way.
type User struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Password       string     `json:"password"`
	Name           string     `json:"name"`
	Bio            string     `json:"bio"`
	Avatar         string     `json:"avatar"`
	Cover          string     `json:"cover"`
	Friends        StringList `json:"friends"`
	FriendRequests StringList `json:"friendRequests"`
	Privacy        Privacy    `json:"privacy"`
	Settings       Settings   `json:"settings"`
	CreatedAt      string     `json:"createdAt"`
	Bot            bool       `json:"bot,omitempty"`
}

type Privacy struct {
	Visibility string `json:"visibility"`
	Pic        bool   `json:"pic"`
	FR         bool   `json:"fr"`
	DM         bool   `json:"dm"`
	DMAudience string `json:"dmAudience"`
	Online     bool   `json:"online"`
	Tags       bool   `json:"tags"`
	Search     bool   `json:"search"`
	Activity   bool   `json:"activity"`
	Location   bool   `json:"location"`
}

type Settings struct {
	DarkMode      bool          `json:"darkMode"`
	Compact       bool          `json:"compact"`
	HighContrast  bool          `json:"highContrast"`
	ReduceMotion  bool          `json:"reduceMotion"`
	FontSize      string        `json:"fontSize"`
	Theme         string        `json:"theme"`
	Language      string        `json:"language"`
	Notifications Notifications `json:"notifications"`
}

type Notifications struct {
	Event  bool    `json:"event"`
	Friend bool    `json:"friend"`
	Post   bool    `json:"post"`
	Sound  bool    `json:"sound"`
	Volume float64 `json:"volume"`
}

// Message is immutable once created; the collection is an append-only log,
// unordered in storage.
type Message struct {
	ID     string `json:"id"`
	FromID string `json:"fromId"`
	ToID   string `json:"toId"`
	Text   string `json:"text"`
	Time   string `json:"time"`
}

// StringList decodes a JSON array of ids, coercing any other value to an
// absent list instead of failing the surrounding document. Numeric ids are
// kept as their decimal string form.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		*l = nil
		return nil
	}
	out := make(StringList, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case float64:
			out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	*l = out
	return nil
}
