package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ajcoder580/loanapp-client/internal/domain/session"
	"github.com/ajcoder580/loanapp-client/internal/infrastructure/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	gdb, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	s, err := New(gdb)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestCredentials_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	id := session.Identity{ID: "u1", Name: "Asha", Email: "a@b.com", Role: session.RoleUser}
	if err := s.SaveCredentials("tok-1", id); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, got, err := s.LoadCredentials()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("token=%q", token)
	}
	if got == nil || got.Email != "a@b.com" || got.Role != session.RoleUser {
		t.Fatalf("identity=%+v", got)
	}
}

func TestCredentials_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	_ = s.SaveCredentials("old", session.Identity{ID: "u1"})
	if err := s.SaveCredentials("new", session.Identity{ID: "u2"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, id, err := s.LoadCredentials()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "new" || id.ID != "u2" {
		t.Fatalf("token=%q id=%+v", token, id)
	}
}

func TestCredentials_EmptySlot(t *testing.T) {
	s := newTestStore(t)
	_, _, err := s.LoadCredentials()
	if !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("err=%v", err)
	}
	if tok := s.BearerToken(); tok != "" {
		t.Fatalf("token=%q, empty slot reads anonymous", tok)
	}
}

func TestCredentials_Clear(t *testing.T) {
	s := newTestStore(t)
	_ = s.SaveCredentials("tok", session.Identity{ID: "u1"})
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, _, err := s.LoadCredentials(); !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("err=%v", err)
	}
	// Clearing an already-empty slot is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("clear twice: %v", err)
	}
}

func TestDrafts_SaveLoadDelete(t *testing.T) {
	s := newTestStore(t)
	id := uuid.NewString()

	payload := json.RawMessage(`{"loanAmount":250000,"purpose":"Home renovation"}`)
	if err := s.SaveDraft(Draft{ID: id, OwnerEmail: "a@b.com", Step: 3, Payload: payload}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadDraft(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Step != 3 || got.OwnerEmail != "a@b.com" {
		t.Fatalf("draft=%+v", got)
	}
	if string(got.Payload) != string(payload) {
		t.Fatalf("payload=%s", got.Payload)
	}

	if err := s.DeleteDraft(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.LoadDraft(id); err == nil {
		t.Fatal("draft should be gone")
	}
}

func TestDrafts_SaveUpserts(t *testing.T) {
	s := newTestStore(t)
	id := uuid.NewString()
	_ = s.SaveDraft(Draft{ID: id, OwnerEmail: "a@b.com", Step: 1, Payload: json.RawMessage(`{}`)})
	if err := s.SaveDraft(Draft{ID: id, OwnerEmail: "a@b.com", Step: 4, Payload: json.RawMessage(`{"x":1}`)}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadDraft(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Step != 4 || string(got.Payload) != `{"x":1}` {
		t.Fatalf("draft=%+v", got)
	}
}

func TestLatestDraft(t *testing.T) {
	s := newTestStore(t)

	got, err := s.LatestDraft("a@b.com")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got != nil {
		t.Fatalf("draft=%+v, want nil when nothing saved", got)
	}

	_ = s.SaveDraft(Draft{ID: uuid.NewString(), OwnerEmail: "other@b.com", Step: 2, Payload: json.RawMessage(`{}`)})
	mine := uuid.NewString()
	_ = s.SaveDraft(Draft{ID: mine, OwnerEmail: "a@b.com", Step: 5, Payload: json.RawMessage(`{}`)})

	got, err = s.LatestDraft("a@b.com")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil || got.ID != mine {
		t.Fatalf("draft=%+v", got)
	}
}
