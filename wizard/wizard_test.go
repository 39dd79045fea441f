package wizard

import (
	"context"
	"errors"
	"testing"
)

func threeSteps() []Step {
	filled := func(key string) func(Answers) bool {
		return func(a Answers) bool { return a.Filled(key) }
	}
	return []Step{
		{Key: "service", Name: "Choose a service", Validate: filled("service"), AutoAdvance: true},
		{Key: "schedule", Name: "Pick a date", Validate: filled("preferred_date")},
		{Key: "contact", Name: "Your details", Validate: filled("customer_name")},
	}
}

// recordingSubmitter captures the answers it was handed and returns a fixed error
type recordingSubmitter struct {
	calls   int
	answers Answers
	err     error
}

func (s *recordingSubmitter) Submit(ctx context.Context, answers Answers) error {
	s.calls++
	s.answers = answers
	return s.err
}

// blockingSubmitter parks until released so a second Submit can race it
type blockingSubmitter struct {
	started chan struct{}
	release chan struct{}
}

func (s *blockingSubmitter) Submit(ctx context.Context, answers Answers) error {
	close(s.started)
	<-s.release
	return nil
}

func TestWizardNext_BlockedUntilStepValidates(t *testing.T) {
	w := New(threeSteps(), false)

	if w.Next() {
		t.Fatal("expected Next to be blocked while the step is incomplete")
	}
	if w.StepIndex() != 0 {
		t.Errorf("expected to stay on step 0, got %d", w.StepIndex())
	}

	w.Set("service", "bridal fitting")
	if !w.Next() {
		t.Fatal("expected Next to advance once the step validates")
	}
	if w.StepIndex() != 1 {
		t.Errorf("expected step 1, got %d", w.StepIndex())
	}
}

func TestWizardNext_NoMoveForwardFromLastStep(t *testing.T) {
	w := New(threeSteps(), false)
	w.Set("service", "bridal fitting")
	w.Next()
	w.Set("preferred_date", "2026-09-12")
	w.Next()
	w.Set("customer_name", "Amara")

	if w.Next() {
		t.Error("expected Next to refuse to move past the last step")
	}
	if w.StepIndex() != 2 {
		t.Errorf("expected to stay on the last step, got %d", w.StepIndex())
	}
}

func TestWizardBack_Unconditional(t *testing.T) {
	w := New(threeSteps(), false)
	w.Set("service", "bridal fitting")
	w.Next()

	// Back works even though the current step does not validate
	if !w.Back() {
		t.Fatal("expected Back to move regardless of validation")
	}
	if w.StepIndex() != 0 {
		t.Errorf("expected step 0, got %d", w.StepIndex())
	}
	if w.Back() {
		t.Error("expected Back on step 0 without an intro to be a no-op")
	}
}

func TestWizardIntro(t *testing.T) {
	w := New(threeSteps(), true)

	if w.StepIndex() != -1 {
		t.Fatalf("expected intro index -1, got %d", w.StepIndex())
	}
	if !w.Next() {
		t.Fatal("expected Next to always leave the intro")
	}
	if w.StepIndex() != 0 {
		t.Errorf("expected step 0 after intro, got %d", w.StepIndex())
	}
	if !w.Back() {
		t.Fatal("expected Back from step 0 to return to the intro")
	}
	if w.StepIndex() != -1 {
		t.Errorf("expected intro index -1, got %d", w.StepIndex())
	}
}

func TestWizardAnswers_SurviveBackwardNavigation(t *testing.T) {
	w := New(threeSteps(), false)
	w.Set("service", "bridal fitting")
	w.Next()
	w.Set("preferred_date", "2026-09-12")
	w.Back()

	answers := w.Answers()
	if answers.String("preferred_date") != "2026-09-12" {
		t.Error("expected answers to survive going back")
	}

	// Re-selection overwrites
	w.Set("service", "alterations")
	if w.Answers().String("service") != "alterations" {
		t.Error("expected re-selection to overwrite the previous value")
	}
}

func TestWizardSetAndAdvance(t *testing.T) {
	w := New(threeSteps(), false)

	// Step 0 is auto-advance: a valid selection moves on immediately
	if !w.SetAndAdvance("service", "bridal fitting") {
		t.Fatal("expected auto-advance after a valid selection")
	}
	if w.StepIndex() != 1 {
		t.Errorf("expected step 1, got %d", w.StepIndex())
	}

	// Step 1 is not auto-advance
	if w.SetAndAdvance("preferred_date", "2026-09-12") {
		t.Error("expected no auto-advance on a manual step")
	}
	if w.StepIndex() != 1 {
		t.Errorf("expected to stay on step 1, got %d", w.StepIndex())
	}
}

func TestWizardSubmit_Success(t *testing.T) {
	w := New(threeSteps(), false)
	w.Set("service", "bridal fitting")
	w.Next()
	w.Set("preferred_date", "2026-09-12")
	w.Next()
	w.Set("customer_name", "Amara")

	sub := &recordingSubmitter{}
	if err := w.Submit(context.Background(), sub); err != nil {
		t.Fatalf("expected submit to succeed, got %v", err)
	}
	if !w.Done() {
		t.Error("expected wizard to be done")
	}
	if w.Status() != StatusSucceeded {
		t.Errorf("expected status succeeded, got %s", w.Status())
	}
	if sub.answers.String("customer_name") != "Amara" {
		t.Error("expected submitter to receive the accumulated answers")
	}
}

func TestWizardSubmit_IncompleteStep(t *testing.T) {
	w := New(threeSteps(), false)

	sub := &recordingSubmitter{}
	if err := w.Submit(context.Background(), sub); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("expected ErrStepIncomplete, got %v", err)
	}
	if sub.calls != 0 {
		t.Error("expected the submitter not to be invoked")
	}

	// Still incomplete: on the last step but its predicate does not hold
	w.Set("service", "bridal fitting")
	w.Next()
	w.Set("preferred_date", "2026-09-12")
	w.Next()
	if err := w.Submit(context.Background(), sub); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("expected ErrStepIncomplete on invalid last step, got %v", err)
	}
}

func TestWizardSubmit_FailureKeepsAnswersAndAllowsRetry(t *testing.T) {
	w := New(threeSteps(), false)
	w.Set("service", "bridal fitting")
	w.Next()
	w.Set("preferred_date", "2026-09-12")
	w.Next()
	w.Set("customer_name", "Amara")

	sub := &recordingSubmitter{err: errors.New("whatsapp api down")}
	if err := w.Submit(context.Background(), sub); err == nil {
		t.Fatal("expected submit to fail")
	}
	if w.Done() {
		t.Error("expected wizard not to be done after a failed submit")
	}
	if w.Status() != StatusFailed {
		t.Errorf("expected status failed, got %s", w.Status())
	}
	if w.StepIndex() != 2 {
		t.Errorf("expected to remain on the last step, got %d", w.StepIndex())
	}
	if w.Answers().String("customer_name") != "Amara" {
		t.Error("expected answers to survive the failure")
	}

	// Retry is shopper-initiated and succeeds this time
	sub.err = nil
	if err := w.Submit(context.Background(), sub); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if sub.calls != 2 {
		t.Errorf("expected exactly 2 submit calls, got %d", sub.calls)
	}
	if w.Status() != StatusSucceeded {
		t.Errorf("expected status succeeded after retry, got %s", w.Status())
	}
}

func TestWizardSubmit_AlreadyDone(t *testing.T) {
	w := New(threeSteps(), false)
	w.Set("service", "bridal fitting")
	w.Next()
	w.Set("preferred_date", "2026-09-12")
	w.Next()
	w.Set("customer_name", "Amara")

	sub := &recordingSubmitter{}
	if err := w.Submit(context.Background(), sub); err != nil {
		t.Fatal(err)
	}
	if err := w.Submit(context.Background(), sub); !errors.Is(err, ErrAlreadyDone) {
		t.Fatalf("expected ErrAlreadyDone, got %v", err)
	}
	if sub.calls != 1 {
		t.Errorf("expected a single submit call, got %d", sub.calls)
	}
}

func TestWizardSubmit_InFlight(t *testing.T) {
	w := New(threeSteps(), false)
	w.Set("service", "bridal fitting")
	w.Next()
	w.Set("preferred_date", "2026-09-12")
	w.Next()
	w.Set("customer_name", "Amara")

	blocking := &blockingSubmitter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}

	done := make(chan error, 1)
	go func() {
		done <- w.Submit(context.Background(), blocking)
	}()

	<-blocking.started
	if err := w.Submit(context.Background(), &recordingSubmitter{}); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("expected ErrSubmitInFlight, got %v", err)
	}

	close(blocking.release)
	if err := <-done; err != nil {
		t.Fatalf("expected the first submission to succeed, got %v", err)
	}
}

func TestWizardRestart(t *testing.T) {
	w := New(threeSteps(), true)
	w.Next()
	w.Set("service", "bridal fitting")
	w.Next()
	w.Set("preferred_date", "2026-09-12")

	w.Restart()

	if w.StepIndex() != -1 {
		t.Errorf("expected restart to return to the intro, got step %d", w.StepIndex())
	}
	if len(w.Answers()) != 0 {
		t.Error("expected restart to clear the answers")
	}
	if w.Status() != StatusIdle {
		t.Errorf("expected status idle, got %s", w.Status())
	}
	if w.Done() {
		t.Error("expected wizard not to be done after restart")
	}
}

func TestWizardListEntries(t *testing.T) {
	w := New([]Step{{Key: "guests", Name: "Add your guests"}}, false)

	if err := w.AppendListEntry("guests", map[string]any{"name": "Bisi", "phone": "08012345678"}, 2); err != nil {
		t.Fatal(err)
	}
	if err := w.AppendListEntry("guests", map[string]any{"name": "Tunde", "phone": "08087654321"}, 2); err != nil {
		t.Fatal(err)
	}
	if err := w.AppendListEntry("guests", map[string]any{"name": "Kemi"}, 2); err == nil {
		t.Error("expected append beyond max to fail")
	}

	if err := w.UpdateListEntry("guests", 1, "size", "M"); err != nil {
		t.Fatal(err)
	}
	entries := w.Answers().Entries("guests")
	if entries[1]["size"] != "M" {
		t.Errorf("expected updated entry field, got %v", entries[1]["size"])
	}

	if err := w.RemoveListEntry("guests", 0); err != nil {
		t.Fatal(err)
	}
	if err := w.RemoveListEntry("guests", 0); err == nil {
		t.Error("expected removing the last remaining entry to fail")
	}
	entries = w.Answers().Entries("guests")
	if len(entries) != 1 || entries[0]["name"] != "Tunde" {
		t.Errorf("unexpected remaining entries: %v", entries)
	}

	if err := w.RemoveListEntry("guests", 7); err == nil {
		t.Error("expected out-of-range removal to fail")
	}
	if err := w.UpdateListEntry("guests", -1, "name", "x"); err == nil {
		t.Error("expected out-of-range update to fail")
	}
}
