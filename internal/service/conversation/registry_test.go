package conversation_test

import (
	"errors"
	"testing"

	"github.com/bookchat/seeker/internal/model/chat"
	"github.com/bookchat/seeker/internal/service/conversation"
)

func TestSelectKnownID(t *testing.T) {
	registry := conversation.NewRegistry(chat.Seed())

	session, err := registry.Select(2)
	if err != nil {
		t.Fatalf("Select err: %v", err)
	}
	if session.ID != 2 || session.ProviderName != "Dr. Mike Chen" {
		t.Fatalf("unexpected session: %+v", session)
	}

	selected, ok := registry.Selected()
	if !ok || selected.ID != 2 {
		t.Fatalf("selection not recorded: %+v ok=%v", selected, ok)
	}
}

func TestSelectUnknownIDKeepsPriorSelection(t *testing.T) {
	registry := conversation.NewRegistry(chat.Seed())
	if _, err := registry.Select(1); err != nil {
		t.Fatalf("Select err: %v", err)
	}

	_, err := registry.Select(99)
	if !errors.Is(err, conversation.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	selected, ok := registry.Selected()
	if !ok || selected.ID != 1 {
		t.Fatalf("prior selection must survive, got %+v ok=%v", selected, ok)
	}
}

func TestListPreservesSourceOrder(t *testing.T) {
	registry := conversation.NewRegistry(chat.Seed())

	list := registry.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 conversations, got %d", len(list))
	}
	for i, id := range []int{1, 2, 3} {
		if list[i].ID != id {
			t.Fatalf("position %d has id %d, want %d", i, list[i].ID, id)
		}
	}
}

func TestClearSelection(t *testing.T) {
	registry := conversation.NewRegistry(chat.Seed())
	if _, err := registry.Select(3); err != nil {
		t.Fatalf("Select err: %v", err)
	}

	registry.ClearSelection()

	if _, ok := registry.Selected(); ok {
		t.Fatal("selection should be cleared")
	}
}

func TestReplaceKeepsSelectionByID(t *testing.T) {
	registry := conversation.NewRegistry(chat.Seed())
	if _, err := registry.Select(2); err != nil {
		t.Fatalf("Select err: %v", err)
	}

	refreshed := []chat.Session{
		{ID: 2, ProviderName: "Dr. Mike Chen", LastMessage: "See you soon", Timestamp: "2024-01-16 08:00"},
		{ID: 4, ProviderName: "Dr. Alice Wu", LastMessage: "Welcome aboard", Timestamp: "2024-01-16 09:00"},
	}
	registry.Replace(refreshed)

	selected, ok := registry.Selected()
	if !ok || selected.LastMessage != "See you soon" {
		t.Fatalf("selection should follow the refreshed entry, got %+v ok=%v", selected, ok)
	}

	registry.Replace([]chat.Session{{ID: 4, ProviderName: "Dr. Alice Wu"}})
	if _, ok := registry.Selected(); ok {
		t.Fatal("selection must clear when its id disappears")
	}
}
