package cli

import (
	"github.com/alexanderramin/planhub/internal/route"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewHome ViewID = iota
	ViewPlans
	ViewPlanDetail
	ViewCreate
	ViewUpload
	ViewNotFound
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// routedView is implemented by views that own a location. The app model
// mirrors it in the header after every update.
type routedView interface {
	Route() route.Route
}
