package catalog

import (
	"net/url"

	"github.com/alexanderramin/planhub/internal/domain"
)

// Query parameter names used by the catalog deep link.
const (
	ParamSubject  = "subject"
	ParamLevel    = "level"
	ParamDuration = "duration"
	ParamSort     = "sort"
)

// Query projects sel into URL parameters: one key per non-empty filter field
// plus an always-present sort key.
func Query(sel domain.Selection) url.Values {
	sel = sel.Normalized()
	q := url.Values{}
	if sel.Subject != "" {
		q.Set(ParamSubject, string(sel.Subject))
	}
	if sel.Level != "" {
		q.Set(ParamLevel, string(sel.Level))
	}
	if sel.Duration != "" {
		q.Set(ParamDuration, sel.Duration)
	}
	q.Set(ParamSort, string(sel.Sort))
	return q
}

// QueryString is Query encoded in URL form.
func QueryString(sel domain.Selection) string {
	return Query(sel).Encode()
}

// SelectionFromQuery builds the initial selection of a catalog view from an
// incoming link. Only the subject parameter is honoured; every other field
// starts at its default.
func SelectionFromQuery(q url.Values) domain.Selection {
	sel := domain.DefaultSelection()
	sel.Subject = domain.Subject(q.Get(ParamSubject))
	return sel
}
