package domain

import (
	"errors"
	"fmt"
	"strings"
)

// PlanDraft is the form composed by the plan creation wizard.
// List fields always hold at least one (possibly blank) entry.
type PlanDraft struct {
	Title      string
	Subject    string
	Level      string
	Duration   string
	Objectives []string
	Resources  []string
	Schedule   []string
	Notes      string
}

// NewPlanDraft returns a blank draft with one empty slot per list field.
func NewPlanDraft() PlanDraft {
	return PlanDraft{
		Objectives: []string{""},
		Resources:  []string{""},
		Schedule:   []string{""},
	}
}

// List returns the entries of a list field. The slice is shared.
func (d *PlanDraft) List(f ListField) []string {
	switch f {
	case FieldObjectives:
		return d.Objectives
	case FieldResources:
		return d.Resources
	case FieldSchedule:
		return d.Schedule
	}
	return nil
}

// SetList replaces the entries of a list field.
func (d *PlanDraft) SetList(f ListField, entries []string) {
	switch f {
	case FieldObjectives:
		d.Objectives = entries
	case FieldResources:
		d.Resources = entries
	case FieldSchedule:
		d.Schedule = entries
	}
}

// Clone returns a deep copy of the draft.
func (d PlanDraft) Clone() PlanDraft {
	d.Objectives = append([]string(nil), d.Objectives...)
	d.Resources = append([]string(nil), d.Resources...)
	d.Schedule = append([]string(nil), d.Schedule...)
	return d
}

// Compact returns a copy with blank list entries dropped.
func (d PlanDraft) Compact() PlanDraft {
	d.Objectives = nonBlank(d.Objectives)
	d.Resources = nonBlank(d.Resources)
	d.Schedule = nonBlank(d.Schedule)
	return d
}

// Validate checks that a finished draft names a known subject and level and
// has no blank required fields.
func (d PlanDraft) Validate() error {
	if IsBlank(d.Title) {
		return errors.New("title is required")
	}
	if !ValidSubjects[Subject(d.Subject)] {
		return fmt.Errorf("unknown subject %q", d.Subject)
	}
	if !ValidLevels[Level(d.Level)] {
		return fmt.Errorf("unknown level %q", d.Level)
	}
	if IsBlank(d.Duration) {
		return errors.New("duration is required")
	}
	for _, f := range []ListField{FieldObjectives, FieldResources, FieldSchedule} {
		entries := d.List(f)
		if len(entries) == 0 {
			return fmt.Errorf("%s: at least one entry is required", f)
		}
		for i, e := range entries {
			if IsBlank(e) {
				return fmt.Errorf("%s: entry %d is blank", f, i+1)
			}
		}
	}
	return nil
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func nonBlank(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !IsBlank(e) {
			out = append(out, e)
		}
	}
	return out
}
