package wizard

import "errors"

var (
	// ErrNotInPreview is returned when submission is attempted while editing.
	ErrNotInPreview = errors.New("wizard: submit is only available from preview")

	// ErrSubmitPending is returned when a submission is already in flight.
	ErrSubmitPending = errors.New("wizard: submission already pending")

	// ErrFieldLocked is returned when a field is edited outside the step that owns it.
	ErrFieldLocked = errors.New("wizard: field is not editable at this step")
)
