package models

// FlowSummary represents one wizard flow in the flow list
type FlowSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StepCount int    `json:"stepCount"`
}

// FlowListResponse represents the response for listing available flows
type FlowListResponse struct {
	Flows []FlowSummary `json:"flows"`
}

// FlowSessionResponse represents the state of a live wizard session.
// stepIndex is -1 while the session sits on the intro screen.
type FlowSessionResponse struct {
	SessionID  string         `json:"sessionId"`
	FlowID     string         `json:"flowId"`
	FlowName   string         `json:"flowName"`
	StepIndex  int            `json:"stepIndex"`
	StepCount  int            `json:"stepCount"`
	StepID     string         `json:"stepId"`
	StepName   string         `json:"stepName"`
	CanAdvance bool           `json:"canAdvance"`
	Status     string         `json:"status"`
	Done       bool           `json:"done"`
	Answers    map[string]any `json:"answers"`
}

// SetAnswerRequest represents the request body for recording an answer
// Example: {"key": "garment", "value": "agbada", "advance": true}
type SetAnswerRequest struct {
	Key     string `json:"key"`
	Value   any    `json:"value"`
	Advance bool   `json:"advance,omitempty"` // attempt auto-advance after setting
}

// ListEntryRequest represents the request body for appending or updating a
// dynamic list entry
// Example: {"key": "guests", "entry": {"name": "Ngozi", "phone": "08012345678"}}
type ListEntryRequest struct {
	Key   string         `json:"key"`
	Entry map[string]any `json:"entry,omitempty"`
	Field string         `json:"field,omitempty"` // for single-field updates
	Value any            `json:"value,omitempty"`
}
