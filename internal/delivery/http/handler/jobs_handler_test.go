package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/domain/job"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type fakeJobUC struct {
	deleted []uuid.UUID
	err     error
}

func (f *fakeJobUC) List(context.Context, uuid.UUID, usecase.JobListParams) (usecase.JobListResult, error) {
	return usecase.JobListResult{}, f.err
}

func (f *fakeJobUC) Get(context.Context, uuid.UUID, uuid.UUID) (job.Job, error) {
	return job.Job{}, f.err
}

func (f *fakeJobUC) Create(context.Context, uuid.UUID, usecase.JobInput) (job.Job, error) {
	return job.Job{}, f.err
}

func (f *fakeJobUC) Update(context.Context, uuid.UUID, uuid.UUID, usecase.JobUpdateInput) (job.Job, error) {
	return job.Job{}, f.err
}

func (f *fakeJobUC) Delete(_ context.Context, _ uuid.UUID, jobID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, jobID)
	return nil
}

func (f *fakeJobUC) Stats(context.Context, uuid.UUID) (usecase.StatusSummary, []usecase.MonthlyApplication, error) {
	return usecase.StatusSummary{}, nil, f.err
}

func jobsApp(uc usecase.JobUsecase, owner uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	h := NewJobsHandler(uc)
	g := app.Group("", func(c fiber.Ctx) error {
		c.Locals(middleware.CtxUserIDKey, owner)
		return c.Next()
	})
	g.Delete("/jobs/:id", h.Delete)
	return app
}

func TestDeleteRespondsWithEmptyBody(t *testing.T) {
	uc := &fakeJobUC{}
	owner := uuid.New()
	app := jobsApp(uc, owner)

	jobID := uuid.New()
	resp, err := app.Test(httptest.NewRequest("DELETE", "/jobs/"+jobID.String(), nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(body) != 0 {
		t.Fatalf("expected empty body, got %q", body)
	}
	if len(uc.deleted) != 1 || uc.deleted[0] != jobID {
		t.Fatalf("expected delete of %s, got %v", jobID, uc.deleted)
	}
}

func TestDeleteUnknownJobReadsAsNotFound(t *testing.T) {
	uc := &fakeJobUC{err: job.ErrNotFound}
	app := jobsApp(uc, uuid.New())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/jobs/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
