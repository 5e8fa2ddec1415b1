package campaigns

import "fmt"

type Status string

const (
	StatusUpload    Status = "upload"
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{
	StatusUpload,
	StatusPending,
	StatusSubmitted,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown campaign status %q", s)
	}
	return st, nil
}
