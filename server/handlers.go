package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Chatternet1/Chatternet/social"
)

// decodeLenient unmarshals body into v, tolerating wrong-typed fields the
// way the stored document always has: a type mismatch keeps whatever fields
// did decode, only malformed JSON is an error.
func decodeLenient(body []byte, v any) error {
	err := json.Unmarshal(body, v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}

func readBody(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil || decodeLenient(body, v) != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func (a *api) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"time":     social.FormatTime(time.Now()),
		"dataFile": a.store.Path(),
	})
}

func (a *api) signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if !readBody(w, r, &req) {
		return
	}
	var user social.User
	err := a.store.Update(func(doc *social.Document) error {
		var signupErr error
		user, signupErr = social.Signup(doc, req.Email, req.Password, req.Name, time.Now())
		return signupErr
	})
	switch {
	case errors.Is(err, social.ErrMissingField):
		writeError(w, http.StatusBadRequest, "Email & password required")
	case errors.Is(err, social.ErrEmailExists):
		writeError(w, http.StatusBadRequest, "Email exists")
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]any{"user": user})
	}
}

func (a *api) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !readBody(w, r, &req) {
		return
	}
	var (
		user social.User
		err  error
	)
	a.store.View(func(doc *social.Document) {
		user, err = social.Login(doc, req.Email, req.Password)
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid login")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (a *api) listUsers(w http.ResponseWriter, r *http.Request) {
	var users []social.User
	a.store.View(func(doc *social.Document) {
		users = append([]social.User{}, doc.Users...)
	})
	writeJSON(w, http.StatusOK, users)
}

func (a *api) getUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var (
		user social.User
		ok   bool
	)
	a.store.View(func(doc *social.Document) {
		user, ok = social.UserByID(doc, id)
	})
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *api) updateUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch social.UserPatch
	if !readBody(w, r, &patch) {
		return
	}
	var user social.User
	err := a.store.Update(func(doc *social.Document) error {
		var updateErr error
		user, updateErr = social.UpdateUser(doc, id, patch)
		return updateErr
	})
	if errors.Is(err, social.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *api) listMessages(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	peerID := r.URL.Query().Get("peerId")
	if userID == "" || peerID == "" {
		writeError(w, http.StatusBadRequest, "userId & peerId required")
		return
	}
	var list []social.Message
	a.store.View(func(doc *social.Document) {
		list = social.Conversation(doc, userID, peerID)
	})
	writeJSON(w, http.StatusOK, list)
}

func (a *api) createMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FromID string `json:"fromId"`
		ToID   string `json:"toId"`
		Text   string `json:"text"`
	}
	if !readBody(w, r, &req) {
		return
	}
	var msg social.Message
	err := a.store.Update(func(doc *social.Document) error {
		var sendErr error
		msg, sendErr = social.SendMessage(doc, req.FromID, req.ToID, req.Text, time.Now())
		return sendErr
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "fromId, toId, text required")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (a *api) threads(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	var out []social.Thread
	a.store.View(func(doc *social.Document) {
		out = social.Threads(doc, userID)
	})
	writeJSON(w, http.StatusOK, out)
}

func (a *api) listEvents(w http.ResponseWriter, r *http.Request) {
	var events []social.Event
	a.store.View(func(doc *social.Document) {
		events = social.ListEvents(doc, time.Now())
	})
	writeJSON(w, http.StatusOK, events)
}

func (a *api) getEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var (
		ev social.Event
		ok bool
	)
	a.store.View(func(doc *social.Document) {
		ev, ok = social.EventByID(doc, id)
	})
	if !ok {
		writeError(w, http.StatusNotFound, "Event not found")
		return
	}
	writeJSON(w, http.StatusOK, social.NormalizeEvent(ev, time.Now()))
}

func (a *api) createEvent(w http.ResponseWriter, r *http.Request) {
	var ev social.Event
	if !readBody(w, r, &ev) {
		return
	}
	var created social.Event
	_ = a.store.Update(func(doc *social.Document) error {
		created = social.CreateEvent(doc, ev, time.Now())
		return nil
	})
	writeJSON(w, http.StatusOK, created)
}

func (a *api) updateEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	var updated social.Event
	err = a.store.Update(func(doc *social.Document) error {
		stored, ok := social.EventByID(doc, id)
		if !ok {
			return social.ErrNotFound
		}
		// Overlay the body onto a copy of the stored event, so absent
		// fields keep their stored values, then re-normalize.
		ev := stored
		if decodeErr := decodeLenient(body, &ev); decodeErr != nil {
			return errBadJSON
		}
		var replaceErr error
		updated, replaceErr = social.ReplaceEvent(doc, id, ev, time.Now())
		return replaceErr
	})
	switch {
	case errors.Is(err, social.ErrNotFound):
		writeError(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, errBadJSON):
		writeError(w, http.StatusBadRequest, "invalid json")
	default:
		writeJSON(w, http.StatusOK, updated)
	}
}

func (a *api) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := a.store.Update(func(doc *social.Document) error {
		return social.DeleteEvent(doc, id)
	})
	if errors.Is(err, social.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Event not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

var errBadJSON = errors.New("server: invalid json body")
