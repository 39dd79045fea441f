package wizard

import (
	"testing"
	"time"
)

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager()
	flow := guestFlowConfig()

	session := m.Create(flow)
	if session.ID == "" {
		t.Fatal("expected a session id")
	}
	if session.Wizard.StepIndex() != -1 {
		t.Errorf("expected a fresh wizard on the intro, got step %d", session.Wizard.StepIndex())
	}

	got, exists := m.Get(session.ID)
	if !exists || got != session {
		t.Error("expected Get to return the created session")
	}

	// Every Create hands out an independent wizard
	other := m.Create(flow)
	if other.ID == session.ID {
		t.Error("expected distinct session ids")
	}
	other.Wizard.Set("event_type", "wedding")
	if session.Wizard.Answers().Filled("event_type") {
		t.Error("expected wizards not to share answers")
	}
}

func TestManagerGet_Unknown(t *testing.T) {
	m := NewManager()
	if _, exists := m.Get("no-such-session"); exists {
		t.Error("expected unknown session id to miss")
	}
}

func TestManagerDelete(t *testing.T) {
	m := NewManager()
	session := m.Create(guestFlowConfig())

	m.Delete(session.ID)
	if _, exists := m.Get(session.ID); exists {
		t.Error("expected deleted session to be gone")
	}
}

func TestManagerPruneBefore(t *testing.T) {
	m := NewManager()
	flow := guestFlowConfig()

	stale := m.Create(flow)
	stale.CreatedAt = time.Now().UTC().Add(-7 * time.Hour)
	fresh := m.Create(flow)

	pruned := m.PruneBefore(time.Now().UTC().Add(-6 * time.Hour))
	if pruned != 1 {
		t.Fatalf("expected 1 pruned session, got %d", pruned)
	}
	if _, exists := m.Get(stale.ID); exists {
		t.Error("expected the stale session to be pruned")
	}
	if _, exists := m.Get(fresh.ID); !exists {
		t.Error("expected the fresh session to survive")
	}
}
