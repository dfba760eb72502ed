package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"jobtrack/internal/domain/job"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	trendMonths  = 6
	allSentinel  = "all"
)

// JobListParams are the raw optional query inputs; coercion and sentinel
// handling happen here, not at the HTTP layer.
type JobListParams struct {
	Search  string
	Status  string
	JobType string
	Sort    string
	Page    int
	Limit   int
}

type JobListResult struct {
	Jobs       []job.Job
	TotalJobs  int
	NumOfPages int
}

type JobInput struct {
	Company  string
	Position string
	Status   string
	JobType  string
}

// JobUpdateInput distinguishes absent fields (nil, keep stored value) from
// present-but-empty ones, which are validation errors for company/position.
type JobUpdateInput struct {
	Company  *string
	Position *string
	Status   *string
	JobType  *string
}

type StatusSummary struct {
	Pending   int `json:"pending"`
	Interview int `json:"interview"`
	Declined  int `json:"declined"`
}

type MonthlyApplication struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type JobUsecase interface {
	List(ctx context.Context, ownerID uuid.UUID, params JobListParams) (JobListResult, error)
	Get(ctx context.Context, ownerID, jobID uuid.UUID) (job.Job, error)
	Create(ctx context.Context, ownerID uuid.UUID, in JobInput) (job.Job, error)
	Update(ctx context.Context, ownerID, jobID uuid.UUID, in JobUpdateInput) (job.Job, error)
	Delete(ctx context.Context, ownerID, jobID uuid.UUID) error
	Stats(ctx context.Context, ownerID uuid.UUID) (StatusSummary, []MonthlyApplication, error)
}

type Jobs struct {
	jobs   job.Repository
	logger *log.Logger
	now    func() time.Time
}

func NewJobUsecase(jobs job.Repository, logger *log.Logger) *Jobs {
	if logger == nil {
		logger = log.Default()
	}
	return &Jobs{jobs: jobs, logger: logger, now: time.Now}
}

func (u *Jobs) List(ctx context.Context, ownerID uuid.UUID, params JobListParams) (JobListResult, error) {
	f, err := composeFilter(ownerID, params)
	if err != nil {
		return JobListResult{}, err
	}

	items, err := u.jobs.List(ctx, f)
	if err != nil {
		return JobListResult{}, u.storage("list jobs", err)
	}

	total, err := u.jobs.Count(ctx, f)
	if err != nil {
		return JobListResult{}, u.storage("count jobs", err)
	}

	return JobListResult{
		Jobs:       items,
		TotalJobs:  total,
		NumOfPages: (total + f.Limit - 1) / f.Limit,
	}, nil
}

func (u *Jobs) Get(ctx context.Context, ownerID, jobID uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, ownerID, jobID)
	if err != nil {
		if err == job.ErrNotFound {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, u.storage("get job", err)
	}
	return j, nil
}

func (u *Jobs) Create(ctx context.Context, ownerID uuid.UUID, in JobInput) (job.Job, error) {
	company := strings.TrimSpace(in.Company)
	position := strings.TrimSpace(in.Position)
	if company == "" || position == "" {
		return job.Job{}, ErrInvalidInput
	}

	status := job.StatusPending
	if s := strings.TrimSpace(in.Status); s != "" {
		parsed, err := job.ParseStatus(s)
		if err != nil {
			return job.Job{}, ErrInvalidInput
		}
		status = parsed
	}

	jobType := job.TypeFullTime
	if s := strings.TrimSpace(in.JobType); s != "" {
		parsed, err := job.ParseType(s)
		if err != nil {
			return job.Job{}, ErrInvalidInput
		}
		jobType = parsed
	}

	now := u.now().UTC()
	j := job.Job{
		ID:        uuid.New(),
		Company:   company,
		Position:  position,
		Status:    status,
		Type:      jobType,
		CreatedBy: ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, u.storage("create job", err)
	}
	return j, nil
}

func (u *Jobs) Update(ctx context.Context, ownerID, jobID uuid.UUID, in JobUpdateInput) (job.Job, error) {
	// Validate before touching storage so a bad body never reaches a write.
	if in.Company != nil && strings.TrimSpace(*in.Company) == "" {
		return job.Job{}, ErrInvalidInput
	}
	if in.Position != nil && strings.TrimSpace(*in.Position) == "" {
		return job.Job{}, ErrInvalidInput
	}

	j, err := u.Get(ctx, ownerID, jobID)
	if err != nil {
		return job.Job{}, err
	}

	if in.Company != nil {
		j.Company = strings.TrimSpace(*in.Company)
	}
	if in.Position != nil {
		j.Position = strings.TrimSpace(*in.Position)
	}
	if in.Status != nil {
		parsed, err := job.ParseStatus(strings.TrimSpace(*in.Status))
		if err != nil {
			return job.Job{}, ErrInvalidInput
		}
		j.Status = parsed
	}
	if in.JobType != nil {
		parsed, err := job.ParseType(strings.TrimSpace(*in.JobType))
		if err != nil {
			return job.Job{}, ErrInvalidInput
		}
		j.Type = parsed
	}

	j.UpdatedAt = u.now().UTC()

	if err := u.jobs.Update(ctx, j); err != nil {
		if err == job.ErrNotFound {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, u.storage("update job", err)
	}
	return j, nil
}

func (u *Jobs) Delete(ctx context.Context, ownerID, jobID uuid.UUID) error {
	err := u.jobs.Delete(ctx, ownerID, jobID)
	if err == nil || err == job.ErrNotFound {
		return err
	}
	return u.storage("delete job", err)
}

func (u *Jobs) Stats(ctx context.Context, ownerID uuid.UUID) (StatusSummary, []MonthlyApplication, error) {
	counts, err := u.jobs.CountByStatus(ctx, ownerID)
	if err != nil {
		return StatusSummary{}, nil, u.storage("count by status", err)
	}

	months, err := u.jobs.CountByMonth(ctx, ownerID, trendMonths)
	if err != nil {
		return StatusSummary{}, nil, u.storage("count by month", err)
	}

	return statusSummaryFrom(counts), monthlyTrendFrom(months), nil
}

// composeFilter turns the raw query inputs into an owner-scoped storage
// filter. Out-of-range page/limit coerce to defaults; the `all` sentinel and
// empty strings mean no filter.
func composeFilter(ownerID uuid.UUID, params JobListParams) (job.ListFilter, error) {
	page := params.Page
	if page < 1 {
		page = defaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	f := job.ListFilter{
		OwnerID: ownerID,
		Search:  strings.TrimSpace(params.Search),
		Sort:    job.ParseSort(strings.TrimSpace(params.Sort)),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}

	if s := strings.TrimSpace(params.Status); s != "" && s != allSentinel {
		parsed, err := job.ParseStatus(s)
		if err != nil {
			return job.ListFilter{}, ErrInvalidInput
		}
		f.Status = &parsed
	}
	if s := strings.TrimSpace(params.JobType); s != "" && s != allSentinel {
		parsed, err := job.ParseType(s)
		if err != nil {
			return job.ListFilter{}, ErrInvalidInput
		}
		f.Type = &parsed
	}

	return f, nil
}

// statusSummaryFrom reshapes the grouped counts into the fixed three-status
// shape; statuses with no rows report zero instead of being omitted.
func statusSummaryFrom(counts []job.StatusCount) StatusSummary {
	var s StatusSummary
	for _, c := range counts {
		switch c.Status {
		case job.StatusPending:
			s.Pending = c.Count
		case job.StatusInterview:
			s.Interview = c.Count
		case job.StatusDeclined:
			s.Declined = c.Count
		}
	}
	return s
}

// monthlyTrendFrom renders the most-recent-first month buckets as labelled
// counts in chronological order. Months with no applications are not
// zero-filled.
func monthlyTrendFrom(rows []job.MonthCount) []MonthlyApplication {
	out := make([]MonthlyApplication, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		label := time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		out = append(out, MonthlyApplication{Date: label, Count: r.Count})
	}
	return out
}

func (u *Jobs) storage(op string, err error) error {
	u.logger.Printf("storage error | op=%s err=%v", op, err)
	return ErrInternal
}
