// Package wizard implements the plan creation wizard: four editing steps
// gated on field completeness, followed by a preview that can be submitted.
package wizard

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planhub/internal/domain"
)

// Submitter delivers a finished draft and returns a receipt id.
type Submitter interface {
	Submit(ctx context.Context, draft domain.PlanDraft) (string, error)
}

// Machine is the wizard state for one mounted creation view.
// The zero value is not usable; call New.
type Machine struct {
	step    int
	preview bool
	pending bool
	draft   domain.PlanDraft
}

// New returns a machine at step 1 with a blank draft.
func New() *Machine {
	return &Machine{step: 1, draft: domain.NewPlanDraft()}
}

// Step returns the current editing step (1..StepCount). In preview it stays
// at StepCount.
func (m *Machine) Step() int { return m.step }

// InPreview reports whether the machine is showing the preview.
func (m *Machine) InPreview() bool { return m.preview }

// Pending reports whether a submission is in flight.
func (m *Machine) Pending() bool { return m.pending }

// Draft returns a copy of the form as entered.
func (m *Machine) Draft() domain.PlanDraft { return m.draft.Clone() }

// Preview returns the form with blank list entries dropped.
func (m *Machine) Preview() domain.PlanDraft { return m.draft.Clone().Compact() }

// StepStatus reports how step n relates to the current position.
func (m *Machine) StepStatus(n int) StepStatus {
	switch {
	case m.preview || n < m.step:
		return StatusDone
	case n == m.step:
		return StatusCurrent
	default:
		return StatusUpcoming
	}
}

// StepValid reports whether every required field of step n is non-blank.
func (m *Machine) StepValid(n int) bool {
	switch n {
	case 1:
		d := m.draft
		return !domain.IsBlank(d.Title) && !domain.IsBlank(d.Subject) &&
			!domain.IsBlank(d.Level) && !domain.IsBlank(d.Duration)
	case 2, 3, 4:
		for _, e := range m.draft.List(fieldForStep(n)) {
			if domain.IsBlank(e) {
				return false
			}
		}
		return true
	}
	return false
}

// CurrentStepValid reports whether the step being edited is complete.
func (m *Machine) CurrentStepValid() bool {
	return !m.preview && m.StepValid(m.step)
}

// Advance moves to the next step, or to preview from the last step.
// An incomplete step leaves the state unchanged. Reports whether it moved.
func (m *Machine) Advance() bool {
	if m.pending || m.preview || !m.StepValid(m.step) {
		return false
	}
	if m.step == StepCount {
		m.preview = true
		return true
	}
	m.step++
	return true
}

// Retreat moves to the previous editing step. It does nothing on step 1 or
// in preview.
func (m *Machine) Retreat() bool {
	if m.pending || m.preview || m.step == 1 {
		return false
	}
	m.step--
	return true
}

// BackToEdit leaves preview and returns to the last editing step.
func (m *Machine) BackToEdit() bool {
	if m.pending || !m.preview {
		return false
	}
	m.preview = false
	m.step = StepCount
	return true
}

// BeginSubmit marks a submission in flight and returns the compacted draft
// to deliver. Pair with FinishSubmit.
func (m *Machine) BeginSubmit() (domain.PlanDraft, error) {
	if m.pending {
		return domain.PlanDraft{}, ErrSubmitPending
	}
	if !m.preview {
		return domain.PlanDraft{}, ErrNotInPreview
	}
	m.pending = true
	return m.Preview(), nil
}

// FinishSubmit records the outcome of a submission started with BeginSubmit.
// Success resets the form to blank at step 1; failure keeps the preview.
func (m *Machine) FinishSubmit(err error) {
	if !m.pending {
		return
	}
	m.pending = false
	if err == nil {
		m.Reset()
	}
}

// Submit delivers the draft through s and blocks until it completes.
func (m *Machine) Submit(ctx context.Context, s Submitter) (string, error) {
	draft, err := m.BeginSubmit()
	if err != nil {
		return "", err
	}
	receipt, err := s.Submit(ctx, draft)
	m.FinishSubmit(err)
	if err != nil {
		return "", fmt.Errorf("submit plan: %w", err)
	}
	return receipt, nil
}

// Reset discards the form and returns to step 1.
func (m *Machine) Reset() {
	m.step = 1
	m.preview = false
	m.pending = false
	m.draft = domain.NewPlanDraft()
}

func (m *Machine) editing(step int) bool {
	return !m.preview && !m.pending && m.step == step
}

func (m *Machine) setStepOne(dst *string, v string) error {
	if !m.editing(1) {
		return ErrFieldLocked
	}
	*dst = v
	return nil
}

// SetTitle sets the plan title (step 1).
func (m *Machine) SetTitle(v string) error { return m.setStepOne(&m.draft.Title, v) }

// SetSubject sets the subject (step 1).
func (m *Machine) SetSubject(v string) error { return m.setStepOne(&m.draft.Subject, v) }

// SetLevel sets the level (step 1).
func (m *Machine) SetLevel(v string) error { return m.setStepOne(&m.draft.Level, v) }

// SetDuration sets the duration (step 1).
func (m *Machine) SetDuration(v string) error { return m.setStepOne(&m.draft.Duration, v) }

// SetNotes sets the optional notes (step 4).
func (m *Machine) SetNotes(v string) error {
	if !m.editing(StepCount) {
		return ErrFieldLocked
	}
	m.draft.Notes = v
	return nil
}

// AppendEntry adds a blank entry to the end of a list field.
func (m *Machine) AppendEntry(f domain.ListField) error {
	if !m.editing(StepFor(f)) {
		return ErrFieldLocked
	}
	m.draft.SetList(f, append(m.draft.List(f), ""))
	return nil
}

// UpdateEntry replaces entry i of a list field. i must be in range.
func (m *Machine) UpdateEntry(f domain.ListField, i int, v string) error {
	if !m.editing(StepFor(f)) {
		return ErrFieldLocked
	}
	entries := m.draft.List(f)
	mustIndex(f, i, len(entries))
	entries[i] = v
	return nil
}

// RemoveEntry deletes entry i of a list field. Removing the only entry blanks
// it instead, so a list never becomes empty. i must be in range.
func (m *Machine) RemoveEntry(f domain.ListField, i int) error {
	if !m.editing(StepFor(f)) {
		return ErrFieldLocked
	}
	entries := m.draft.List(f)
	mustIndex(f, i, len(entries))
	if len(entries) == 1 {
		entries[0] = ""
		return nil
	}
	out := make([]string, 0, len(entries)-1)
	out = append(out, entries[:i]...)
	out = append(out, entries[i+1:]...)
	m.draft.SetList(f, out)
	return nil
}

// StepFor returns the step that owns a list field, or 0 for an unknown field.
func StepFor(f domain.ListField) int {
	switch f {
	case domain.FieldObjectives:
		return 2
	case domain.FieldResources:
		return 3
	case domain.FieldSchedule:
		return 4
	}
	return 0
}

func fieldForStep(n int) domain.ListField {
	switch n {
	case 2:
		return domain.FieldObjectives
	case 3:
		return domain.FieldResources
	default:
		return domain.FieldSchedule
	}
}

func mustIndex(f domain.ListField, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("wizard: %s index %d out of range [0,%d)", f, i, n))
	}
}
