package slackify

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
)

// ErrInvalidID is wrapped by every *IDError.
var ErrInvalidID = errors.New("invalid Slack ID")

// IDError reports a mention table entry whose ID has the wrong format.
type IDError struct {
	Kind string // "user", "channel", "user group" or "team"
	Name string
	ID   string
	hint string
}

func (e *IDError) Error() string {
	return fmt.Sprintf("invalid %s ID for %q: %q: %s", e.Kind, e.Name, e.ID, e.hint)
}

func (e *IDError) Unwrap() error {
	return ErrInvalidID
}

type idFamily struct {
	kind  string
	table func(Mentions) map[string]string
	re    *regexp.Regexp
	hint  string
}

// idFamilies 按 users、channels、user groups、teams 顺序校验
var idFamilies = []idFamily{
	{
		kind:  "user",
		table: func(m Mentions) map[string]string { return m.Users },
		re:    regexp.MustCompile(`^[UW][A-Z0-9]+$`),
		hint:  "must start with U or W and contain only alphanumeric characters",
	},
	{
		kind:  "channel",
		table: func(m Mentions) map[string]string { return m.Channels },
		re:    regexp.MustCompile(`^C[A-Z0-9]+$`),
		hint:  "must start with C and contain only alphanumeric characters",
	},
	{
		kind:  "user group",
		table: func(m Mentions) map[string]string { return m.UserGroups },
		re:    regexp.MustCompile(`^S[A-Z0-9]+$`),
		hint:  "must start with S and contain only alphanumeric characters",
	},
	{
		kind:  "team",
		table: func(m Mentions) map[string]string { return m.Teams },
		re:    regexp.MustCompile(`^T[A-Z0-9]+$`),
		hint:  "must start with T and contain only alphanumeric characters",
	},
}

// ValidateMentions checks every ID in the mention tables and returns the first
// failure as an *IDError. Names are checked in sorted order.
func ValidateMentions(m Mentions) error {
	for _, family := range idFamilies {
		table := family.table(m)
		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if id := table[name]; !family.re.MatchString(id) {
				return &IDError{Kind: family.kind, Name: name, ID: id, hint: family.hint}
			}
		}
	}
	return nil
}

// ValidateOptions validates opts before conversion. A nil opts is valid.
func ValidateOptions(opts *Options) error {
	if opts == nil {
		return nil
	}
	return ValidateMentions(opts.Mentions)
}
