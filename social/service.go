package social

import (
	"fmt"
	"sort"
	"time"
)

// Signup validates and appends a normalized user. Validation failures leave
// the document untouched.
func Signup(doc *Document, email, password, name string, now time.Time) (User, error) {
	if email == "" || password == "" {
		return User{}, fmt.Errorf("%w: email and password", ErrMissingField)
	}
	for _, u := range doc.Users {
		if u.Email == email {
			return User{}, fmt.Errorf("%w: %s", ErrEmailExists, email)
		}
	}
	user := NewUser(email, password, name, now)
	doc.Users = append(doc.Users, user)
	return user, nil
}

// Login is an exact-match lookup on email and password.
func Login(doc *Document, email, password string) (User, error) {
	for _, u := range doc.Users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return User{}, ErrInvalidLogin
}

func UserByID(doc *Document, id string) (User, bool) {
	for _, u := range doc.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// UpdateUser runs the merge engine against the stored user and writes the
// result back into the document.
func UpdateUser(doc *Document, id string, patch UserPatch) (User, error) {
	for i := range doc.Users {
		if doc.Users[i].ID != id {
			continue
		}
		doc.Users[i] = MergeUser(doc.Users[i], patch)
		return doc.Users[i], nil
	}
	return User{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
}

// SendMessage appends the message and, when the recipient is the bot,
// appends exactly one synchronous scripted reply with its own id and
// timestamp. Retries are not deduplicated. Recipient existence is not
// validated, matching the stored log's semantics.
func SendMessage(doc *Document, fromID, toID, text string, now time.Time) (Message, error) {
	if fromID == "" || toID == "" || text == "" {
		return Message{}, fmt.Errorf("%w: fromId, toId and text", ErrMissingField)
	}
	msg := Message{
		ID:     NewID(now),
		FromID: fromID,
		ToID:   toID,
		Text:   text,
		Time:   FormatTime(now),
	}
	doc.Messages = append(doc.Messages, msg)

	if to, ok := UserByID(doc, toID); ok && to.Bot {
		reply := Message{
			ID:     NewID(now),
			FromID: to.ID,
			ToID:   fromID,
			Text:   BotReply(text, now),
			Time:   FormatTime(now),
		}
		doc.Messages = append(doc.Messages, reply)
	}
	return msg, nil
}

// Conversation filters the log to messages between the two users, sorted by
// time ascending.
func Conversation(doc *Document, userID, peerID string) []Message {
	out := make([]Message, 0)
	for _, m := range doc.Messages {
		if (m.FromID == userID && m.ToID == peerID) || (m.FromID == peerID && m.ToID == userID) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parseTime(out[i].Time).Before(parseTime(out[j].Time))
	})
	return out
}

// Threads derives the per-peer conversation summaries for a user.
func Threads(doc *Document, userID string) []Thread {
	return DeriveThreads(userID, doc.Messages)
}

// ListEvents returns normalized copies of every stored event; the stored
// collection itself is left as-is.
func ListEvents(doc *Document, now time.Time) []Event {
	out := make([]Event, 0, len(doc.Events))
	for _, ev := range doc.Events {
		out = append(out, NormalizeEvent(ev, now))
	}
	return out
}

func EventByID(doc *Document, id string) (Event, bool) {
	for _, ev := range doc.Events {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}

// CreateEvent normalizes the incoming record with a fresh id and createdAt
// and prepends it, newest first like the events page expects.
func CreateEvent(doc *Document, ev Event, now time.Time) Event {
	ev.ID = NewID(now)
	ev.CreatedAt = FormatTime(now)
	ev = NormalizeEvent(ev, now)
	doc.Events = append([]Event{ev}, doc.Events...)
	return ev
}

// ReplaceEvent swaps the stored event for the incoming one after
// normalization, keeping the stored id. Events have no partial merge:
// updates are replace-shaped by design, asymmetric with users.
func ReplaceEvent(doc *Document, id string, ev Event, now time.Time) (Event, error) {
	for i := range doc.Events {
		if doc.Events[i].ID != id {
			continue
		}
		ev.ID = id
		doc.Events[i] = NormalizeEvent(ev, now)
		return doc.Events[i], nil
	}
	return Event{}, fmt.Errorf("%w: event %s", ErrNotFound, id)
}

func DeleteEvent(doc *Document, id string) error {
	for i := range doc.Events {
		if doc.Events[i].ID != id {
			continue
		}
		doc.Events = append(doc.Events[:i], doc.Events[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: event %s", ErrNotFound, id)
}
