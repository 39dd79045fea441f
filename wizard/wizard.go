package wizard

import (
	"context"
	"errors"
	"sync"
)

// Status tracks the terminal submission of a wizard
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

var (
	// ErrStepIncomplete is returned when Submit is invoked before the last
	// step's validation predicate holds
	ErrStepIncomplete = errors.New("current step is incomplete")
	// ErrSubmitInFlight is returned when Submit is invoked while a previous
	// submission is still running; the call has no effect
	ErrSubmitInFlight = errors.New("submission already in flight")
	// ErrAlreadyDone is returned when Submit is invoked on a finished wizard
	ErrAlreadyDone = errors.New("wizard already completed")
)

// Step describes one step of a flow: a key, a display name, and a pure
// validation predicate over the accumulated answers that gates forward
// navigation past this step.
type Step struct {
	Key         string
	Name        string
	Validate    func(Answers) bool
	AutoAdvance bool // advance immediately after a valid single-choice selection
}

// Submitter persists the composed record when the wizard finishes. The
// wizard only distinguishes success from failure.
type Submitter interface {
	Submit(ctx context.Context, answers Answers) error
}

// Wizard drives a shopper through an ordered sequence of steps and performs
// a single terminal submission. Forward navigation past a step requires its
// validation predicate to hold; backward navigation is unconditional.
// Instances live in memory for the life of their session only.
type Wizard struct {
	mu      sync.Mutex
	steps   []Step
	index   int
	atIntro bool
	intro   bool
	answers Answers
	status  Status
	done    bool
}

// New creates a wizard over the given steps. With withIntro set, the wizard
// starts on an intro pseudo-step before Step 0.
func New(steps []Step, withIntro bool) *Wizard {
	return &Wizard{
		steps:   steps,
		intro:   withIntro,
		atIntro: withIntro,
		answers: make(Answers),
		status:  StatusIdle,
	}
}

// StepIndex returns the current step index, or -1 while on the intro
func (w *Wizard) StepIndex() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.atIntro {
		return -1
	}
	return w.index
}

// StepCount returns the number of real steps
func (w *Wizard) StepCount() int {
	return len(w.steps)
}

// CurrentStep returns the current step descriptor. On the intro it returns
// the first step, which is where Next will land.
func (w *Wizard) CurrentStep() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.steps[w.index]
}

// Done reports whether the wizard has reached its terminal state
func (w *Wizard) Done() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done
}

// Status returns the submission status
func (w *Wizard) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Answers returns a copy of the accumulated answers
func (w *Wizard) Answers() Answers {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.answers.Clone()
}

// Set records an answer. Single-select fields overwrite the previous value.
func (w *Wizard) Set(key string, value any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.answers[key] = value
}

// SetAndAdvance records an answer and, when the current step is marked
// auto-advance and now validates, advances to the next step. Returns
// whether the wizard advanced.
func (w *Wizard) SetAndAdvance(key string, value any) bool {
	w.mu.Lock()
	w.answers[key] = value
	auto := !w.atIntro && w.steps[w.index].AutoAdvance
	w.mu.Unlock()

	if !auto {
		return false
	}
	return w.Next()
}

// CanAdvance reports whether the current step's validation predicate holds
func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canAdvanceLocked()
}

func (w *Wizard) canAdvanceLocked() bool {
	if w.atIntro {
		return true
	}
	step := w.steps[w.index]
	if step.Validate == nil {
		return true
	}
	return step.Validate(w.answers)
}

// Next advances to the next step when the current step validates. From the
// intro it always moves to Step 0. From the last step it does nothing; the
// only way forward from there is Submit. Returns whether the index moved.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done {
		return false
	}
	if w.atIntro {
		w.atIntro = false
		w.index = 0
		return true
	}
	if !w.canAdvanceLocked() {
		return false
	}
	if w.index >= len(w.steps)-1 {
		return false
	}
	w.index++
	return true
}

// Back moves to the previous step unconditionally. From Step 0 it returns
// to the intro when one exists. Answers are never cleared by going back.
func (w *Wizard) Back() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done {
		return false
	}
	if w.atIntro {
		return false
	}
	if w.index == 0 {
		if w.intro {
			w.atIntro = true
			return true
		}
		return false
	}
	w.index--
	return true
}

// Submit performs the terminal submission from the last step. While a
// submission is in flight further calls return ErrSubmitInFlight and have
// no effect. On failure the wizard stays on the last step with its answers
// intact so the shopper can edit and retry; retry is never automatic.
func (w *Wizard) Submit(ctx context.Context, submitter Submitter) error {
	w.mu.Lock()
	if w.done {
		w.mu.Unlock()
		return ErrAlreadyDone
	}
	if w.status == StatusSubmitting {
		w.mu.Unlock()
		return ErrSubmitInFlight
	}
	if w.atIntro || w.index != len(w.steps)-1 || !w.canAdvanceLocked() {
		w.mu.Unlock()
		return ErrStepIncomplete
	}
	w.status = StatusSubmitting
	answers := w.answers.Clone()
	w.mu.Unlock()

	err := submitter.Submit(ctx, answers)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.status = StatusFailed
		return err
	}
	w.status = StatusSucceeded
	w.done = true
	return nil
}

// AppendListEntry appends an entry to the list field under key, up to max
// entries (0 means unlimited)
func (w *Wizard) AppendListEntry(key string, entry map[string]any, max int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.answers.AppendEntry(key, entry, max)
}

// RemoveListEntry removes the entry at index i from the list field under key
func (w *Wizard) RemoveListEntry(key string, i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.answers.RemoveEntry(key, i)
}

// UpdateListEntry sets a single field of the entry at index i in the list
// field under key
func (w *Wizard) UpdateListEntry(key string, i int, field string, value any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.answers.UpdateEntry(key, i, field, value)
}

// Restart resets the wizard to its initial step with answers cleared
func (w *Wizard) Restart() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.index = 0
	w.atIntro = w.intro
	w.answers = make(Answers)
	w.status = StatusIdle
	w.done = false
}
