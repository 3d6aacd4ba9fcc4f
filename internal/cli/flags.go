package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planhub/internal/catalog"
	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/spf13/pflag"
)

// sortFlag is a pflag.Value restricted to the catalog sort keys.
type sortFlag struct{ key *domain.SortKey }

var _ pflag.Value = sortFlag{}

func (f sortFlag) String() string {
	if f.key == nil {
		return ""
	}
	return string(*f.key)
}

func (f sortFlag) Set(s string) error {
	k, err := domain.ParseSortKey(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*f.key = k
	return nil
}

func (f sortFlag) Type() string { return "popular|rating|newest" }

// subjectFlag is a pflag.Value restricted to the known subjects.
type subjectFlag struct{ subject *domain.Subject }

func (f subjectFlag) String() string {
	if f.subject == nil {
		return ""
	}
	return string(*f.subject)
}

func (f subjectFlag) Set(s string) error {
	v, err := domain.ParseSubject(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*f.subject = v
	return nil
}

func (f subjectFlag) Type() string { return "subject" }

// levelFlag is a pflag.Value restricted to the difficulty levels.
type levelFlag struct{ level *domain.Level }

func (f levelFlag) String() string {
	if f.level == nil {
		return ""
	}
	return string(*f.level)
}

func (f levelFlag) Set(s string) error {
	v, err := domain.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*f.level = v
	return nil
}

func (f levelFlag) Type() string { return "level" }

// durationFlag accepts the catalog duration filters. "8週以上" is accepted as
// the label of "8週".
type durationFlag struct{ duration *string }

func (f durationFlag) String() string {
	if f.duration == nil {
		return ""
	}
	return *f.duration
}

func (f durationFlag) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*f.duration = ""
		return nil
	}
	for _, d := range catalog.DurationFilters {
		if s == d.Value || s == d.Label {
			*f.duration = d.Value
			return nil
		}
	}
	return fmt.Errorf("unknown duration %q", s)
}

func (f durationFlag) Type() string { return "duration" }

// addSelectionFlags registers the catalog filter flags on fs.
func addSelectionFlags(fs *pflag.FlagSet, sel *domain.Selection) {
	fs.Var(subjectFlag{&sel.Subject}, "subject", "Filter by subject ("+joinSubjects()+")")
	fs.Var(levelFlag{&sel.Level}, "level", "Filter by level (基礎, 中級, 進階)")
	fs.Var(durationFlag{&sel.Duration}, "duration", "Filter by duration (4週 ... 8週以上)")
	fs.Var(sortFlag{&sel.Sort}, "sort", "Sort order")
}

func joinSubjects() string {
	names := make([]string, len(domain.Subjects))
	for i, s := range domain.Subjects {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
