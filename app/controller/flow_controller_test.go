package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adire-boutique/models"
	"adire-boutique/wizard"
)

type stubSubmitter struct {
	calls int
	err   error
}

func (s *stubSubmitter) Submit(ctx context.Context, answers wizard.Answers) error {
	s.calls++
	return s.err
}

func bookingFlow() *wizard.FlowConfig {
	return &wizard.FlowConfig{
		Flow: wizard.Flow{ID: "booking", Name: "Book a Fitting", Resource: "bookings"},
		Steps: []wizard.StepConfig{
			{ID: "service", Name: "Choose a service", Required: []string{"service"}, AutoAdvance: true},
			{ID: "contact", Name: "Your details", Required: []string{"customer_name"}},
		},
	}
}

func newFlowController(submitter wizard.Submitter) *FlowController {
	return NewFlowController(
		map[string]*wizard.FlowConfig{"booking": bookingFlow()},
		map[string]wizard.Submitter{"booking": submitter},
	)
}

func createSession(t *testing.T, c *FlowController) models.FlowSessionResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/flows/booking/sessions", nil)
	rec := httptest.NewRecorder()
	c.CreateSession(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var state models.FlowSessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		t.Fatal(err)
	}
	return state
}

func sessionRequest(t *testing.T, c *FlowController, method, path, body string) (*httptest.ResponseRecorder, models.FlowSessionResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	c.HandleSession(rec, req)

	// Session state comes back as JSON even on errors like a failed submit;
	// plain-text http.Error bodies are left undecoded
	var state models.FlowSessionResponse
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
			t.Fatal(err)
		}
	}
	return rec, state
}

func TestListFlows(t *testing.T) {
	c := newFlowController(&stubSubmitter{})
	req := httptest.NewRequest(http.MethodGet, "/flows", nil)
	rec := httptest.NewRecorder()
	c.ListFlows(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp models.FlowListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Flows) != 1 || resp.Flows[0].ID != "booking" || resp.Flows[0].StepCount != 2 {
		t.Errorf("unexpected flows: %+v", resp.Flows)
	}
}

func TestCreateSession_UnknownFlow(t *testing.T) {
	c := newFlowController(&stubSubmitter{})
	req := httptest.NewRequest(http.MethodPost, "/flows/no-such-flow/sessions", nil)
	rec := httptest.NewRecorder()
	c.CreateSession(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestFlowSession_CompleteRun(t *testing.T) {
	sub := &stubSubmitter{}
	c := newFlowController(sub)
	state := createSession(t, c)

	if state.StepIndex != 0 || state.CanAdvance {
		t.Errorf("expected a fresh session blocked on step 0, got %+v", state)
	}
	base := "/flows/sessions/" + state.SessionID

	// Auto-advance step: answering moves straight to the contact step
	rec, state := sessionRequest(t, c, http.MethodPost, base+"/answers",
		`{"key": "service", "value": "bridal fitting", "advance": true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if state.StepIndex != 1 || state.StepID != "contact" {
		t.Fatalf("expected auto-advance to the contact step, got %+v", state)
	}

	// Submit before the last step validates is rejected
	rec, _ = sessionRequest(t, c, http.MethodPost, base+"/submit", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for an incomplete submit, got %d", rec.Code)
	}
	if sub.calls != 0 {
		t.Fatal("expected the submitter untouched")
	}

	rec, state = sessionRequest(t, c, http.MethodPost, base+"/answers",
		`{"key": "customer_name", "value": "Amara"}`)
	if rec.Code != http.StatusOK || !state.CanAdvance {
		t.Fatalf("expected the contact step to validate, got %d %+v", rec.Code, state)
	}

	rec, state = sessionRequest(t, c, http.MethodPost, base+"/submit", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !state.Done || state.Status != "succeeded" {
		t.Errorf("expected a finished session, got %+v", state)
	}
	if sub.calls != 1 {
		t.Errorf("expected 1 submit call, got %d", sub.calls)
	}

	// A finished wizard rejects further submits
	rec, _ = sessionRequest(t, c, http.MethodPost, base+"/submit", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 on an already-done wizard, got %d", rec.Code)
	}
}

func TestFlowSession_NextBlockedOnIncompleteStep(t *testing.T) {
	c := newFlowController(&stubSubmitter{})
	state := createSession(t, c)
	base := "/flows/sessions/" + state.SessionID

	rec, _ := sessionRequest(t, c, http.MethodPost, base+"/next", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 while the step is incomplete, got %d", rec.Code)
	}
}

func TestFlowSession_BackKeepsAnswers(t *testing.T) {
	c := newFlowController(&stubSubmitter{})
	state := createSession(t, c)
	base := "/flows/sessions/" + state.SessionID

	sessionRequest(t, c, http.MethodPost, base+"/answers",
		`{"key": "service", "value": "bridal fitting", "advance": true}`)
	rec, state := sessionRequest(t, c, http.MethodPost, base+"/back", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if state.StepIndex != 0 {
		t.Errorf("expected step 0 after back, got %d", state.StepIndex)
	}
	if state.Answers["service"] != "bridal fitting" {
		t.Error("expected answers to survive backward navigation")
	}
}

func TestFlowSession_FailedSubmitKeepsSessionEditable(t *testing.T) {
	sub := &stubSubmitter{err: errors.New("db down")}
	c := newFlowController(sub)
	state := createSession(t, c)
	base := "/flows/sessions/" + state.SessionID

	sessionRequest(t, c, http.MethodPost, base+"/answers",
		`{"key": "service", "value": "bridal fitting", "advance": true}`)
	sessionRequest(t, c, http.MethodPost, base+"/answers",
		`{"key": "customer_name", "value": "Amara"}`)

	rec, state := sessionRequest(t, c, http.MethodPost, base+"/submit", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 on a failed submission, got %d", rec.Code)
	}
	if state.Done || state.Status != "failed" {
		t.Errorf("expected a retryable failed session, got %+v", state)
	}
	if state.Answers["customer_name"] != "Amara" {
		t.Error("expected answers to survive the failure")
	}

	// Shopper-initiated retry succeeds once the backend recovers
	sub.err = nil
	rec, state = sessionRequest(t, c, http.MethodPost, base+"/submit", "")
	if rec.Code != http.StatusOK || state.Status != "succeeded" {
		t.Errorf("expected a successful retry, got %d %+v", rec.Code, state)
	}
}

func TestFlowSession_ListEntries(t *testing.T) {
	flows := map[string]*wizard.FlowConfig{
		"asoebi": {
			Flow:     wizard.Flow{ID: "asoebi", Name: "Aso-Ebi Group Order", Resource: "asoebi-requests"},
			Settings: wizard.Settings{MaxListEntries: 2},
			Steps: []wizard.StepConfig{
				{ID: "guests", Name: "Add your guests", ListField: "guests", EntryRequired: []string{"name"}},
			},
		},
	}
	c := NewFlowController(flows, map[string]wizard.Submitter{"asoebi": &stubSubmitter{}})

	req := httptest.NewRequest(http.MethodPost, "/flows/asoebi/sessions", nil)
	rec := httptest.NewRecorder()
	c.CreateSession(rec, req)
	var state models.FlowSessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		t.Fatal(err)
	}
	base := "/flows/sessions/" + state.SessionID

	recorder, _ := sessionRequest(t, c, http.MethodPost, base+"/entries",
		`{"key": "guests", "entry": {"name": "Bisi"}}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	sessionRequest(t, c, http.MethodPost, base+"/entries",
		`{"key": "guests", "entry": {"name": "Tunde"}}`)

	// The flow caps the list at 2 entries
	recorder, _ = sessionRequest(t, c, http.MethodPost, base+"/entries",
		`{"key": "guests", "entry": {"name": "Kemi"}}`)
	if recorder.Code != http.StatusConflict {
		t.Errorf("expected 409 beyond max entries, got %d", recorder.Code)
	}

	recorder, state = sessionRequest(t, c, http.MethodPut, base+"/entries/1",
		`{"key": "guests", "field": "size", "value": "M"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder, state = sessionRequest(t, c, http.MethodDelete, base+"/entries/0?key=guests", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	entries, _ := state.Answers["guests"].([]any)
	if len(entries) != 1 {
		t.Fatalf("expected 1 remaining guest, got %d", len(entries))
	}

	// The last remaining entry cannot be removed
	recorder, _ = sessionRequest(t, c, http.MethodDelete, base+"/entries/0?key=guests", "")
	if recorder.Code != http.StatusConflict {
		t.Errorf("expected 409 removing the last entry, got %d", recorder.Code)
	}
}

func TestHandleSession_UnknownSession(t *testing.T) {
	c := newFlowController(&stubSubmitter{})
	rec, _ := sessionRequest(t, c, http.MethodGet, "/flows/sessions/no-such-session", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleSession_Delete(t *testing.T) {
	c := newFlowController(&stubSubmitter{})
	state := createSession(t, c)
	base := "/flows/sessions/" + state.SessionID

	rec, _ := sessionRequest(t, c, http.MethodDelete, base, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec, _ = sessionRequest(t, c, http.MethodGet, base, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}
