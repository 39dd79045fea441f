package wizard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func guestFlowConfig() *FlowConfig {
	return &FlowConfig{
		Flow: Flow{ID: "asoebi", Name: "Aso-Ebi Group Order", Resource: "asoebi-requests"},
		Settings: Settings{
			Intro:          true,
			MaxListEntries: 100,
		},
		Steps: []StepConfig{
			{ID: "event", Name: "Tell us about the event", Required: []string{"event_type", "event_date"}},
			{ID: "guests", Name: "Add your guests", ListField: "guests", EntryRequired: []string{"name", "phone"}},
			{ID: "contact", Name: "Coordinator details", Required: []string{"coordinator_name"}},
		},
	}
}

func TestBuildSteps_RequiredKeys(t *testing.T) {
	steps := guestFlowConfig().BuildSteps()
	validate := steps[0].Validate

	if validate(Answers{}) {
		t.Error("expected empty answers to fail validation")
	}
	if validate(Answers{"event_type": "wedding"}) {
		t.Error("expected partially filled answers to fail validation")
	}
	if validate(Answers{"event_type": "wedding", "event_date": "   "}) {
		t.Error("expected a blank string not to count as filled")
	}
	if !validate(Answers{"event_type": "wedding", "event_date": "2026-10-03"}) {
		t.Error("expected fully filled answers to pass validation")
	}
}

func TestBuildSteps_ListField(t *testing.T) {
	steps := guestFlowConfig().BuildSteps()
	validate := steps[1].Validate

	if validate(Answers{}) {
		t.Error("expected an absent list to fail validation")
	}
	if validate(Answers{"guests": []any{}}) {
		t.Error("expected an empty list to fail validation")
	}
	incomplete := Answers{"guests": []any{
		map[string]any{"name": "Bisi", "phone": "08012345678"},
		map[string]any{"name": "Tunde"},
	}}
	if validate(incomplete) {
		t.Error("expected an entry missing a required field to fail validation")
	}
	complete := Answers{"guests": []any{
		map[string]any{"name": "Bisi", "phone": "08012345678"},
		map[string]any{"name": "Tunde", "phone": "08087654321", "size": "L"},
	}}
	if !validate(complete) {
		t.Error("expected complete entries to pass validation")
	}
}

func TestFindStep(t *testing.T) {
	cfg := guestFlowConfig()

	if step := cfg.FindStep("guests"); step == nil || step.ListField != "guests" {
		t.Errorf("expected to find the guests step, got %v", step)
	}
	if step := cfg.FindStep("no-such-step"); step != nil {
		t.Errorf("expected nil for an unknown step, got %v", step)
	}
}

func TestNewWizard_UsesIntroSetting(t *testing.T) {
	w := guestFlowConfig().NewWizard()
	if w.StepIndex() != -1 {
		t.Errorf("expected wizard to start on the intro, got step %d", w.StepIndex())
	}
	if w.StepCount() != 3 {
		t.Errorf("expected 3 steps, got %d", w.StepCount())
	}
}

func TestValidateFlowConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FlowConfig)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(cfg *FlowConfig) {},
		},
		{
			name:    "missing flow id",
			mutate:  func(cfg *FlowConfig) { cfg.Flow.ID = "" },
			wantErr: "flow.id is required",
		},
		{
			name:    "missing resource",
			mutate:  func(cfg *FlowConfig) { cfg.Flow.Resource = "" },
			wantErr: "flow.resource is required",
		},
		{
			name:    "no steps",
			mutate:  func(cfg *FlowConfig) { cfg.Steps = nil },
			wantErr: "at least one step is required",
		},
		{
			name:    "negative max list entries",
			mutate:  func(cfg *FlowConfig) { cfg.Settings.MaxListEntries = -1 },
			wantErr: "must not be negative",
		},
		{
			name:    "duplicate step id",
			mutate:  func(cfg *FlowConfig) { cfg.Steps[2].ID = "event" },
			wantErr: "is duplicated",
		},
		{
			name:    "entry_required without list_field",
			mutate:  func(cfg *FlowConfig) { cfg.Steps[0].EntryRequired = []string{"name"} },
			wantErr: "needs a list_field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := guestFlowConfig()
			tt.mutate(cfg)
			err := ValidateFlowConfig(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFlows(t *testing.T) {
	dir := t.TempDir()
	booking := `
flow:
  id: booking
  name: Book a Fitting
  resource: bookings
steps:
  - id: service
    name: Choose a service
    required: [service]
    auto_advance: true
  - id: contact
    name: Your details
    required: [customer_name, customer_phone]
`
	if err := os.WriteFile(filepath.Join(dir, "booking.yaml"), []byte(booking), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	flows, err := LoadFlows(dir)
	if err != nil {
		t.Fatalf("expected flows to load, got %v", err)
	}
	if len(flows) != 1 {
		t.Fatalf("expected 1 flow, got %d", len(flows))
	}

	cfg := flows["booking"]
	if cfg == nil {
		t.Fatal("expected flows keyed by flow id")
	}
	if cfg.Flow.Resource != "bookings" {
		t.Errorf("expected resource 'bookings', got %q", cfg.Flow.Resource)
	}
	if !cfg.Steps[0].AutoAdvance {
		t.Error("expected auto_advance to parse")
	}
}

func TestLoadFlows_DuplicateFlowID(t *testing.T) {
	dir := t.TempDir()
	flow := `
flow:
  id: booking
  name: Book a Fitting
  resource: bookings
steps:
  - id: service
    name: Choose a service
`
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(flow), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(flow), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFlows(dir); err == nil || !strings.Contains(err.Error(), "duplicate flow id") {
		t.Fatalf("expected duplicate flow id error, got %v", err)
	}
}

func TestLoadFlows_EmptyDir(t *testing.T) {
	if _, err := LoadFlows(t.TempDir()); err == nil || !strings.Contains(err.Error(), "no flow definitions") {
		t.Fatalf("expected no-definitions error, got %v", err)
	}
}

func TestLoadFlow_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	broken := `
flow:
  name: Missing ID
steps: []
`
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFlow(path); err == nil || !strings.Contains(err.Error(), "invalid flow config") {
		t.Fatalf("expected validation error, got %v", err)
	}
}
