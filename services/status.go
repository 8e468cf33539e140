package services

import "strings"

// Order lifecycle vocabulary. Matching is case-insensitive; the canonical
// spelling is what gets persisted.
const (
	StatusPending   = "Pending"
	StatusPaid      = "Paid"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

var allowedStatuses = map[string]string{
	strings.ToLower(StatusPending):   StatusPending,
	strings.ToLower(StatusPaid):      StatusPaid,
	strings.ToLower(StatusCancelled): StatusCancelled,
	strings.ToLower(StatusCompleted): StatusCompleted,
}

// CanonicalStatus resolves a case-insensitive status value to its canonical
// spelling. ok is false for anything outside the vocabulary.
func CanonicalStatus(s string) (string, bool) {
	canon, ok := allowedStatuses[strings.ToLower(strings.TrimSpace(s))]
	return canon, ok
}

// AllowedStatuses lists the vocabulary in canonical spelling.
func AllowedStatuses() []string {
	return []string{StatusPending, StatusPaid, StatusCancelled, StatusCompleted}
}

func IsPending(status string) bool {
	return strings.EqualFold(status, StatusPending)
}
