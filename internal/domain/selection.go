package domain

import "fmt"

// Selection is the active set of catalog filters plus the sort order.
// Empty filter fields mean "no filter".
type Selection struct {
	Subject  Subject
	Level    Level
	Duration string
	Sort     SortKey
}

// DefaultSelection returns a selection with no filters, sorted by popularity.
func DefaultSelection() Selection {
	return Selection{Sort: SortPopular}
}

// Normalized returns a copy whose sort key is one of SortKeys.
func (s Selection) Normalized() Selection {
	switch s.Sort {
	case SortPopular, SortRating, SortNewest:
	default:
		s.Sort = SortPopular
	}
	return s
}

// IsFiltered reports whether any filter field is set.
func (s Selection) IsFiltered() bool {
	return s.Subject != "" || s.Level != "" || s.Duration != ""
}

// Matches reports whether p satisfies every set filter field.
func (s Selection) Matches(p *Plan) bool {
	if s.Subject != "" && s.Subject != p.Subject {
		return false
	}
	if s.Level != "" && s.Level != p.Level {
		return false
	}
	if s.Duration != "" && s.Duration != p.Duration {
		return false
	}
	return true
}

// ParseSortKey validates a sort key string.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortPopular, SortRating, SortNewest:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q (use popular, rating or newest)", s)
}

// ParseSubject validates a subject string. Empty means "no filter".
func ParseSubject(s string) (Subject, error) {
	if s == "" || ValidSubjects[Subject(s)] {
		return Subject(s), nil
	}
	return "", fmt.Errorf("unknown subject %q", s)
}

// ParseLevel validates a level string. Empty means "no filter".
func ParseLevel(s string) (Level, error) {
	if s == "" || ValidLevels[Level(s)] {
		return Level(s), nil
	}
	return "", fmt.Errorf("unknown level %q", s)
}
