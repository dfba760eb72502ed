package dto

import (
	"time"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/usecase"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID        uuid.UUID `json:"id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Status    string    `json:"status"`
	JobType   string    `json:"jobType"`
	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:        j.ID,
		Company:   j.Company,
		Position:  j.Position,
		Status:    string(j.Status),
		JobType:   string(j.Type),
		CreatedBy: j.CreatedBy,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

type JobEnvelope struct {
	Job JobResponse `json:"job"`
}

type JobListResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	TotalJobs  int           `json:"totalJobs"`
	NumOfPages int           `json:"numOfPages"`
}

func NewJobListResponse(res usecase.JobListResult) JobListResponse {
	jobs := make([]JobResponse, 0, len(res.Jobs))
	for _, j := range res.Jobs {
		jobs = append(jobs, NewJobResponse(j))
	}
	return JobListResponse{Jobs: jobs, TotalJobs: res.TotalJobs, NumOfPages: res.NumOfPages}
}

type StatsResponse struct {
	DefaultStats        usecase.StatusSummary        `json:"defaultStats"`
	MonthlyApplications []usecase.MonthlyApplication `json:"monthlyApplications"`
}
