package domain

import (
	"fmt"
	"strings"
)

// Legacy status vocabularies. Activities always used the canonical names;
// task requests used their own words for four of the eight states. The guards
// behind each pair are identical, which is what allows one lifecycle.
var taskRequestVocabulary = map[Status]string{
	StatusDraft:      "DRAFT",
	StatusRequested:  "SUBMITTED",
	StatusAssigned:   "ASSIGNED",
	StatusInProgress: "IN_PROGRESS",
	StatusCompleted:  "DONE",
	StatusApproved:   "ACCEPTED",
	StatusRejected:   "REJECTED",
	StatusCancelled:  "CANCELED",
}

var taskRequestReverse = func() map[string]Status {
	m := make(map[string]Status, len(taskRequestVocabulary))
	for s, name := range taskRequestVocabulary {
		m[name] = s
	}
	return m
}()

// LegacyName returns the name kind's legacy vocabulary uses for s.
func LegacyName(kind Kind, s Status) string {
	if kind == KindTaskRequest {
		if name, ok := taskRequestVocabulary[s]; ok {
			return name
		}
	}
	return string(s)
}

// ParseLegacyStatus maps a legacy status name to the unified Status. Input is
// case-insensitive. Canonical names are accepted for either kind.
func ParseLegacyStatus(kind Kind, name string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))

	if kind == KindTaskRequest {
		if s, ok := taskRequestReverse[upper]; ok {
			return s, nil
		}
	}
	if s := Status(upper); s.IsValid() {
		return s, nil
	}
	return "", NewValidationError("status", fmt.Sprintf("unknown %s status %q", strings.ToLower(kind.String()), name))
}
