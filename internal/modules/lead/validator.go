package lead

import (
	"strings"
	"unicode/utf8"
)

// FieldSpam is the identifier recorded when the honeypot is filled in.
// Like the plain field names below, the literal string is part of the wire
// contract with the form UI and must not change.
const FieldSpam = "Spam."

// Lead is a submission that passed validation: all fields trimmed,
// immutable, alive only for the duration of one request.
type Lead struct {
	Name     string
	Contact  string
	Type     string
	Location string
	Needs    string
	Timeline string
}

// Validate normalizes a submission and runs every check without
// short-circuiting, so the form UI always receives the full list of failed
// fields, in a fixed order. The lead is usable only when the list is empty.
//
// Lengths are counted in runes: a two-letter Cyrillic name is two
// characters, not four bytes.
func Validate(req SubmitLeadRequest) (Lead, []string) {
	l := Lead{
		Name:     strings.TrimSpace(req.Name),
		Contact:  strings.TrimSpace(req.Contact),
		Type:     strings.TrimSpace(req.Type),
		Location: strings.TrimSpace(req.Location),
		Needs:    strings.TrimSpace(req.Needs),
		Timeline: strings.TrimSpace(req.Timeline),
	}

	var failed []string
	if strings.TrimSpace(req.Website) != "" {
		failed = append(failed, FieldSpam)
	}
	if utf8.RuneCountInString(l.Name) < 2 {
		failed = append(failed, "name")
	}
	if utf8.RuneCountInString(l.Contact) < 5 {
		failed = append(failed, "contact")
	}
	if utf8.RuneCountInString(l.Location) < 2 {
		failed = append(failed, "location")
	}
	if utf8.RuneCountInString(l.Needs) < 10 {
		failed = append(failed, "needs")
	}
	if l.Type == "" {
		failed = append(failed, "type")
	}
	if l.Timeline == "" {
		failed = append(failed, "timeline")
	}

	return l, failed
}
