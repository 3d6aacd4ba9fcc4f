package catalog

import (
	"net/url"

	"github.com/alexanderramin/planhub/internal/domain"
)

// Session is the state owned by one mounted catalog view. It is created when
// the view opens and dropped when it closes; nothing outlives it.
type Session struct {
	records []*domain.Plan
	sel     domain.Selection
	results []*domain.Plan
	query   url.Values
	sink    func(url.Values)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithQuerySink registers a callback that receives the republished query
// projection after every selection change, including the initial one.
func WithQuerySink(fn func(url.Values)) SessionOption {
	return func(s *Session) {
		s.sink = fn
	}
}

// NewSession mounts a catalog session over records with an initial selection.
func NewSession(records []*domain.Plan, initial domain.Selection, opts ...SessionOption) *Session {
	s := &Session{records: records}
	for _, opt := range opts {
		opt(s)
	}
	s.apply(initial)
	return s
}

func (s *Session) apply(sel domain.Selection) {
	s.sel = sel.Normalized()
	s.results = View(s.records, s.sel)
	s.query = Query(s.sel)
	if s.sink != nil {
		s.sink(s.query)
	}
}

// SetSubject sets or clears ("") the subject filter.
func (s *Session) SetSubject(v domain.Subject) {
	sel := s.sel
	sel.Subject = v
	s.apply(sel)
}

// SetLevel sets or clears ("") the level filter.
func (s *Session) SetLevel(v domain.Level) {
	sel := s.sel
	sel.Level = v
	s.apply(sel)
}

// SetDuration sets or clears ("") the duration filter.
func (s *Session) SetDuration(v string) {
	sel := s.sel
	sel.Duration = v
	s.apply(sel)
}

// SetSort changes the sort order.
func (s *Session) SetSort(k domain.SortKey) {
	sel := s.sel
	sel.Sort = k
	s.apply(sel)
}

// Reset clears every filter and restores the default sort.
func (s *Session) Reset() {
	s.apply(domain.DefaultSelection())
}

// Selection returns the authoritative in-memory selection.
func (s *Session) Selection() domain.Selection { return s.sel }

// Results returns the current ordered view.
func (s *Session) Results() []*domain.Plan { return s.results }

// Count returns the number of plans in the current view.
func (s *Session) Count() int { return len(s.results) }

// Query returns the last published projection of the selection.
func (s *Session) Query() url.Values { return s.query }

// Lookup finds a record by id regardless of the active filters.
func (s *Session) Lookup(id int) (*domain.Plan, bool) {
	for _, p := range s.records {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
