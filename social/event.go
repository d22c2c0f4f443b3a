package social

import (
	"encoding/json"
	"time"
)

// Event is an event record with RSVP tracking. Sequence fields decode
// tolerantly: a wrong-typed invites/rsvp/discussion value in a stored or
// posted document becomes an empty sequence instead of a decode failure.
type Event struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Date       string     `json:"date"`
	Time       string     `json:"time"`
	Location   string     `json:"location"`
	Privacy    string     `json:"privacy"`
	Desc       string     `json:"desc"`
	ImgSrc     string     `json:"imgSrc"`
	Creator    string     `json:"creator"`
	CreatedAt  string     `json:"createdAt"`
	Invites    StringList `json:"invites"`
	RSVP       RSVP       `json:"rsvp"`
	Discussion Discussion `json:"discussion"`
}

// RSVP always carries exactly three sequences once normalized.
type RSVP struct {
	Going    StringList `json:"Going"`
	Maybe    StringList `json:"Maybe"`
	NotGoing StringList `json:"NotGoing"`
}

func (r *RSVP) UnmarshalJSON(data []byte) error {
	type plain RSVP
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*r = RSVP{}
		return nil
	}
	*r = RSVP(p)
	return nil
}

// Discussion is an ordered sequence of opaque comment objects; the core
// never looks inside them.
type Discussion []json.RawMessage

func (d *Discussion) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		*d = nil
		return nil
	}
	*d = items
	return nil
}

// NormalizeEvent produces the canonical event shape: every missing field
// gets a default, the rsvp record gets its three sequences, and missing
// id/createdAt are materialized. It never rejects input.
func NormalizeEvent(ev Event, now time.Time) Event {
	if ev.ID == "" {
		ev.ID = NewID(now)
	}
	if ev.Title == "" {
		ev.Title = "Event"
	}
	if ev.Privacy == "" {
		ev.Privacy = "Public"
	}
	if ev.Creator == "" {
		ev.Creator = "Me"
	}
	if ev.CreatedAt == "" {
		ev.CreatedAt = FormatTime(now)
	}
	if ev.Invites == nil {
		ev.Invites = StringList{}
	}
	if ev.RSVP.Going == nil {
		ev.RSVP.Going = StringList{}
	}
	if ev.RSVP.Maybe == nil {
		ev.RSVP.Maybe = StringList{}
	}
	if ev.RSVP.NotGoing == nil {
		ev.RSVP.NotGoing = StringList{}
	}
	if ev.Discussion == nil {
		ev.Discussion = Discussion{}
	}
	return ev
}
