package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/usecase"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/response"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/utils"
)

type JobHandler struct {
	jobUseCase *usecase.JobUseCase
}

func NewJobHandler(jobUseCase *usecase.JobUseCase) *JobHandler {
	return &JobHandler{
		jobUseCase: jobUseCase,
	}
}

type createJobRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=120"`
	Description  string   `json:"description" validate:"required,min=10"`
	Category     string   `json:"category" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	PriceType    string   `json:"price_type" validate:"required,oneof=fixed hourly"`
	Requirements []string `json:"requirements"`
	ImageURLs    []string `json:"image_urls"`
}

type updateJobStatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=active in_progress completed cancelled"`
	WorkerID   string `json:"worker_id"`
	WorkerName string `json:"worker_name"`
}

type rateJobRequest struct {
	Rating float64 `json:"rating" validate:"required,min=1,max=5"`
	Review string  `json:"review" validate:"omitempty,max=1000"`
}

func (h *JobHandler) CreateJob(c echo.Context) error {
	uid := getUserIDFromContext(c)

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	job, err := h.jobUseCase.CreateJob(c.Request().Context(), uid, usecase.CreateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		Price:        req.Price,
		PriceType:    req.PriceType,
		Requirements: req.Requirements,
		ImageURLs:    req.ImageURLs,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, job)
}

// ListJobs serves the browse feed: active jobs only, optionally filtered by
// category.
func (h *JobHandler) ListJobs(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	category := c.QueryParam("category")
	if category != "" {
		jobs, total := h.jobUseCase.ListJobsByCategory(c.Request().Context(), category, p.PageSize, p.Offset)
		return response.Paginated(c, jobs, total, p.Page, p.PageSize)
	}

	jobs, total := h.jobUseCase.ListActiveJobs(c.Request().Context(), p.PageSize, p.Offset)
	return response.Paginated(c, jobs, total, p.Page, p.PageSize)
}

func (h *JobHandler) ListMyJobs(c echo.Context) error {
	uid := getUserIDFromContext(c)
	p := utils.GetPaginationParams(c)

	jobs, total := h.jobUseCase.ListUserJobs(c.Request().Context(), uid, p.PageSize, p.Offset)
	return response.Paginated(c, jobs, total, p.Page, p.PageSize)
}

func (h *JobHandler) GetJob(c echo.Context) error {
	job, err := h.jobUseCase.GetJobByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, job)
}

func (h *JobHandler) UpdateJobStatus(c echo.Context) error {
	uid := getUserIDFromContext(c)

	var req updateJobStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	job, err := h.jobUseCase.UpdateJobStatus(c.Request().Context(), c.Param("id"), uid, usecase.UpdateJobStatusInput{
		Status:     req.Status,
		WorkerID:   req.WorkerID,
		WorkerName: req.WorkerName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, job)
}

func (h *JobHandler) CancelJob(c echo.Context) error {
	uid := getUserIDFromContext(c)

	job, err := h.jobUseCase.CancelJob(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, job)
}

func (h *JobHandler) DeleteJob(c echo.Context) error {
	uid := getUserIDFromContext(c)

	if err := h.jobUseCase.DeleteJob(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Job deleted",
	})
}

func (h *JobHandler) RateJob(c echo.Context) error {
	uid := getUserIDFromContext(c)

	var req rateJobRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	job, err := h.jobUseCase.RateJob(c.Request().Context(), c.Param("id"), uid, req.Rating, req.Review)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, job)
}
