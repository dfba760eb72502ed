package job

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusInterview Status = "interview"
	StatusDeclined  Status = "declined"
)

// Statuses lists every status in the fixed order the stats summary reports.
var Statuses = []Status{StatusPending, StatusInterview, StatusDeclined}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInterview, StatusDeclined:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeRemote     Type = "remote"
	TypeInternship Type = "internship"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeFullTime, TypePartTime, TypeRemote, TypeInternship:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

// Sort names a field+direction pair for job listings. Unrecognized values
// resolve to SortLatest.
type Sort string

const (
	SortLatest Sort = "latest"
	SortOldest Sort = "oldest"
	SortAZ     Sort = "a-z"
	SortZA     Sort = "z-a"
)

func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortOldest, SortAZ, SortZA:
		return Sort(s)
	}
	return SortLatest
}

type Job struct {
	ID        uuid.UUID
	Company   string
	Position  string
	Status    Status
	Type      Type
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
