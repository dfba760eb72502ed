package handler

import (
	"errors"
	"fmt"
	"strconv"

	"jobtrack/internal/delivery/http/dto"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/domain/job"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Status   string `json:"status"`
	JobType  string `json:"jobType"`
}

type updateJobRequest struct {
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Status   *string `json:"status"`
	JobType  *string `json:"jobType"`
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	ownerID, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	params := usecase.JobListParams{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		JobType: c.Query("jobType"),
		Sort:    c.Query("sort"),
		Page:    queryInt(c, "page"),
		Limit:   queryInt(c, "limit"),
	}

	res, err := h.uc.List(c.Context(), ownerID, params)
	if err != nil {
		return mapJobError(err, uuid.Nil)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewJobListResponse(res))
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	ownerID, jobID, err := identityAndJobID(c)
	if err != nil {
		return err
	}

	j, err := h.uc.Get(c.Context(), ownerID, jobID)
	if err != nil {
		return mapJobError(err, jobID)
	}

	return c.Status(fiber.StatusOK).JSON(dto.JobEnvelope{Job: dto.NewJobResponse(j)})
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	ownerID, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Please provide company and position", err)
	}

	j, err := h.uc.Create(c.Context(), ownerID, usecase.JobInput{
		Company:  req.Company,
		Position: req.Position,
		Status:   req.Status,
		JobType:  req.JobType,
	})
	if err != nil {
		return mapJobError(err, uuid.Nil)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.JobEnvelope{Job: dto.NewJobResponse(j)})
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	ownerID, jobID, err := identityAndJobID(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Please provide valid job values", err)
	}

	j, err := h.uc.Update(c.Context(), ownerID, jobID, usecase.JobUpdateInput{
		Company:  req.Company,
		Position: req.Position,
		Status:   req.Status,
		JobType:  req.JobType,
	})
	if err != nil {
		return mapJobError(err, jobID)
	}

	return c.Status(fiber.StatusOK).JSON(dto.JobEnvelope{Job: dto.NewJobResponse(j)})
}

func (h *JobsHandler) Delete(c fiber.Ctx) error {
	ownerID, jobID, err := identityAndJobID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), ownerID, jobID); err != nil {
		return mapJobError(err, jobID)
	}

	return c.Status(fiber.StatusOK).Send(nil)
}

func (h *JobsHandler) Stats(c fiber.Ctx) error {
	ownerID, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	summary, monthly, err := h.uc.Stats(c.Context(), ownerID)
	if err != nil {
		return mapJobError(err, uuid.Nil)
	}

	return c.Status(fiber.StatusOK).JSON(dto.StatsResponse{
		DefaultStats:        summary,
		MonthlyApplications: monthly,
	})
}

// identityAndJobID resolves the authenticated owner and the :id path
// parameter. A malformed id cannot name any job, so it reads as not found.
func identityAndJobID(c fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	ownerID, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	raw := c.Params("id")
	jobID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, fmt.Sprintf("No job with id %s", raw), err)
	}

	return ownerID, jobID, nil
}

// queryInt parses an integer query parameter loosely: anything unparseable
// becomes zero and is coerced to the default downstream.
func queryInt(c fiber.Ctx, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func mapJobError(err error, jobID uuid.UUID) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please provide valid job values", err)
	case errors.Is(err, job.ErrNotFound):
		msg := "Job not found"
		if jobID != uuid.Nil {
			msg = fmt.Sprintf("No job with id %s", jobID)
		}
		return middleware.NewAppError(fiber.StatusNotFound, msg, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
