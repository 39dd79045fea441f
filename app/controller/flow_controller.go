package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"adire-boutique/models"
	"adire-boutique/wizard"
)

// sessionMaxAge is how long an untouched wizard session survives before
// opportunistic pruning discards it
const sessionMaxAge = 6 * time.Hour

// FlowController handles HTTP requests for wizard flows and their sessions.
// Sessions live in memory only; navigating away and coming back starts fresh.
type FlowController struct {
	flows      map[string]*wizard.FlowConfig
	sessions   *wizard.Manager
	submitters map[string]wizard.Submitter // keyed by flow id
}

// NewFlowController creates a new FlowController
func NewFlowController(flows map[string]*wizard.FlowConfig, submitters map[string]wizard.Submitter) *FlowController {
	return &FlowController{
		flows:      flows,
		sessions:   wizard.NewManager(),
		submitters: submitters,
	}
}

// sessionState builds the wire representation of a live session
func sessionState(s *wizard.Session) models.FlowSessionResponse {
	wz := s.Wizard
	step := wz.CurrentStep()
	return models.FlowSessionResponse{
		SessionID:  s.ID,
		FlowID:     s.Flow.Flow.ID,
		FlowName:   s.Flow.Flow.Name,
		StepIndex:  wz.StepIndex(),
		StepCount:  wz.StepCount(),
		StepID:     step.Key,
		StepName:   step.Name,
		CanAdvance: wz.CanAdvance(),
		Status:     string(wz.Status()),
		Done:       wz.Done(),
		Answers:    wz.Answers(),
	}
}

func writeSession(w http.ResponseWriter, s *wizard.Session, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(sessionState(s)); err != nil {
		log.Printf("❌ Flow: Error encoding session response: %v", err)
	}
}

// ListFlows handles GET /flows
func (c *FlowController) ListFlows(w http.ResponseWriter, r *http.Request) {
	summaries := make([]models.FlowSummary, 0, len(c.flows))
	for _, cfg := range c.flows {
		summaries = append(summaries, models.FlowSummary{
			ID:        cfg.Flow.ID,
			Name:      cfg.Flow.Name,
			StepCount: len(cfg.Steps),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.FlowListResponse{Flows: summaries}); err != nil {
		log.Printf("❌ ListFlows: Error encoding response: %v", err)
	}
}

// CreateSession handles POST /flows/{flowID}/sessions
func (c *FlowController) CreateSession(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateSession: Received %s request to %s", r.Method, r.URL.Path)

	path := strings.TrimPrefix(r.URL.Path, "/flows/")
	flowID := strings.TrimSuffix(path, "/sessions")
	if flowID == "" || strings.Contains(flowID, "/") {
		http.Error(w, "Invalid flow id", http.StatusBadRequest)
		return
	}

	cfg, exists := c.flows[flowID]
	if !exists {
		http.Error(w, fmt.Sprintf("Flow not found: %s", flowID), http.StatusNotFound)
		return
	}

	// Old sessions are pruned opportunistically; the manager has no timers
	if pruned := c.sessions.PruneBefore(time.Now().Add(-sessionMaxAge)); pruned > 0 {
		log.Printf("🧹 CreateSession: pruned %d stale sessions", pruned)
	}

	session := c.sessions.Create(cfg)
	log.Printf("✅ CreateSession: flow=%s session=%s", flowID, session.ID)
	writeSession(w, session, http.StatusCreated)
}

// HandleSession dispatches requests under /flows/sessions/{sessionID}[/...]
func (c *FlowController) HandleSession(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/flows/sessions/")
	parts := strings.Split(path, "/")
	if parts[0] == "" {
		http.Error(w, "Session id is required", http.StatusBadRequest)
		return
	}

	session, exists := c.sessions.Get(parts[0])
	if !exists {
		http.Error(w, fmt.Sprintf("Session not found: %s", parts[0]), http.StatusNotFound)
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		writeSession(w, session, http.StatusOK)
	case len(parts) == 1 && r.Method == http.MethodDelete:
		c.sessions.Delete(session.ID)
		w.WriteHeader(http.StatusNoContent)
	case len(parts) == 2 && parts[1] == "answers" && r.Method == http.MethodPost:
		c.setAnswer(w, r, session)
	case len(parts) == 2 && parts[1] == "entries" && r.Method == http.MethodPost:
		c.appendEntry(w, r, session)
	case len(parts) == 3 && parts[1] == "entries" && r.Method == http.MethodDelete:
		c.removeEntry(w, r, session, parts[2])
	case len(parts) == 3 && parts[1] == "entries" && r.Method == http.MethodPut:
		c.updateEntry(w, r, session, parts[2])
	case len(parts) == 2 && parts[1] == "next" && r.Method == http.MethodPost:
		c.next(w, session)
	case len(parts) == 2 && parts[1] == "back" && r.Method == http.MethodPost:
		c.back(w, session)
	case len(parts) == 2 && parts[1] == "restart" && r.Method == http.MethodPost:
		c.restart(w, session)
	case len(parts) == 2 && parts[1] == "submit" && r.Method == http.MethodPost:
		c.submit(w, session)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// setAnswer records an answer; with advance set it also attempts an
// auto-advance when the current step allows it
func (c *FlowController) setAnswer(w http.ResponseWriter, r *http.Request, session *wizard.Session) {
	var req models.SetAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		http.Error(w, "key cannot be empty", http.StatusBadRequest)
		return
	}

	if req.Advance {
		session.Wizard.SetAndAdvance(req.Key, req.Value)
	} else {
		session.Wizard.Set(req.Key, req.Value)
	}
	writeSession(w, session, http.StatusOK)
}

// appendEntry adds an entry to a dynamic list field, bounded by the flow's
// max_list_entries setting
func (c *FlowController) appendEntry(w http.ResponseWriter, r *http.Request, session *wizard.Session) {
	var req models.ListEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		http.Error(w, "key cannot be empty", http.StatusBadRequest)
		return
	}
	if req.Entry == nil {
		http.Error(w, "entry cannot be empty", http.StatusBadRequest)
		return
	}

	max := session.Flow.Settings.MaxListEntries
	if err := session.Wizard.AppendListEntry(req.Key, req.Entry, max); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeSession(w, session, http.StatusOK)
}

// removeEntry drops a list entry by index; the last entry always stays
func (c *FlowController) removeEntry(w http.ResponseWriter, r *http.Request, session *wizard.Session, indexStr string) {
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		http.Error(w, "Invalid entry index", http.StatusBadRequest)
		return
	}
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key query parameter is required", http.StatusBadRequest)
		return
	}

	if err := session.Wizard.RemoveListEntry(key, index); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeSession(w, session, http.StatusOK)
}

// updateEntry edits one field of a list entry in place
func (c *FlowController) updateEntry(w http.ResponseWriter, r *http.Request, session *wizard.Session, indexStr string) {
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		http.Error(w, "Invalid entry index", http.StatusBadRequest)
		return
	}

	var req models.ListEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Key) == "" || strings.TrimSpace(req.Field) == "" {
		http.Error(w, "key and field cannot be empty", http.StatusBadRequest)
		return
	}

	if err := session.Wizard.UpdateListEntry(req.Key, index, req.Field, req.Value); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeSession(w, session, http.StatusOK)
}

// next advances when the current step validates; an invalid step answers 409
func (c *FlowController) next(w http.ResponseWriter, session *wizard.Session) {
	if !session.Wizard.Next() && !session.Wizard.CanAdvance() {
		http.Error(w, "Current step is incomplete", http.StatusConflict)
		return
	}
	writeSession(w, session, http.StatusOK)
}

// back moves one step backwards unconditionally, keeping every answer
func (c *FlowController) back(w http.ResponseWriter, session *wizard.Session) {
	session.Wizard.Back()
	writeSession(w, session, http.StatusOK)
}

// restart resets the wizard to its first step with answers cleared
func (c *FlowController) restart(w http.ResponseWriter, session *wizard.Session) {
	session.Wizard.Restart()
	log.Printf("🔁 Restart: session=%s flow=%s", session.ID, session.Flow.Flow.ID)
	writeSession(w, session, http.StatusOK)
}

// submit performs the terminal submission. On failure the session stays on
// the last step with its answers intact so the shopper can edit and retry.
func (c *FlowController) submit(w http.ResponseWriter, session *wizard.Session) {
	submitter, exists := c.submitters[session.Flow.Flow.ID]
	if !exists {
		log.Printf("❌ Submit: no submitter registered for flow %s", session.Flow.Flow.ID)
		http.Error(w, "Flow cannot be submitted", http.StatusInternalServerError)
		return
	}

	ctx := context.Background()
	err := session.Wizard.Submit(ctx, submitter)
	switch {
	case err == nil:
		log.Printf("✅ Submit: session=%s flow=%s succeeded", session.ID, session.Flow.Flow.ID)
		writeSession(w, session, http.StatusOK)
	case errors.Is(err, wizard.ErrSubmitInFlight):
		http.Error(w, "Submission already in progress", http.StatusConflict)
	case errors.Is(err, wizard.ErrAlreadyDone):
		http.Error(w, "Wizard already completed", http.StatusConflict)
	case errors.Is(err, wizard.ErrStepIncomplete):
		http.Error(w, "Wizard is not on a completed final step", http.StatusConflict)
	default:
		// Submission itself failed; the wizard holds status=failed and keeps
		// its answers, so the same session can retry
		log.Printf("❌ Submit: session=%s flow=%s failed: %v", session.ID, session.Flow.Flow.ID, err)
		writeSession(w, session, http.StatusBadGateway)
	}
}
