package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// ListFilter describes one page of an owner-scoped job listing. OwnerID is
// always required; nil Status/Type mean "no filter" (the `all` sentinel at the
// HTTP layer).
type ListFilter struct {
	OwnerID uuid.UUID
	Search  string
	Status  *Status
	Type    *Type
	Sort    Sort
	Limit   int
	Offset  int
}

type StatusCount struct {
	Status Status
	Count  int
}

type MonthCount struct {
	Year  int
	Month int
	Count int
}

type Repository interface {
	Create(ctx context.Context, j Job) error
	// GetByID returns ErrNotFound for ids owned by someone else as well as for
	// ids that do not exist.
	GetByID(ctx context.Context, ownerID, jobID uuid.UUID) (Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, ownerID, jobID uuid.UUID) error

	List(ctx context.Context, f ListFilter) ([]Job, error)
	Count(ctx context.Context, f ListFilter) (int, error)

	CountByStatus(ctx context.Context, ownerID uuid.UUID) ([]StatusCount, error)
	// CountByMonth returns at most `months` (year, month) buckets, most recent
	// first.
	CountByMonth(ctx context.Context, ownerID uuid.UUID, months int) ([]MonthCount, error)
}
