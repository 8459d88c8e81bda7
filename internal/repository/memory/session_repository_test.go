package memory

import (
	"testing"

	"giftshop-chatbot-be/pkg/store"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository()

	if _, found := repo.Get("missing"); found {
		t.Error("Get on empty repo reported found")
	}

	session := &store.Session{ID: "s-1", State: store.StateIdle}
	repo.Save(session)

	got, found := repo.Get("s-1")
	if !found {
		t.Fatal("saved session not found")
	}
	if got != session {
		t.Error("Get returned a different pointer; sessions must not be copied")
	}

	// saving again refreshes the entry in place
	session.State = store.StateAwaitingRecipient
	repo.Save(session)
	got, _ = repo.Get("s-1")
	if got.State != store.StateAwaitingRecipient {
		t.Errorf("State = %q after re-save", got.State)
	}

	repo.Delete("s-1")
	if _, found := repo.Get("s-1"); found {
		t.Error("session still present after Delete")
	}
}
