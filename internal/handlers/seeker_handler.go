package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/middleware"
	"github.com/jobportal/jobportal-backend/internal/services"
)

// SeekerHandler serves the job-seeker routes. ListJobs and GetJob are
// also mounted unauthenticated under /public.
type SeekerHandler struct {
	seekerService *services.SeekerService
}

func NewSeekerHandler(seekerService *services.SeekerService) *SeekerHandler {
	return &SeekerHandler{seekerService: seekerService}
}

func (h *SeekerHandler) UpdateProfile(c *fiber.Ctx) error {
	user, err := middleware.Principal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	updated, err := h.seekerService.UpdateProfile(user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(updated)
}

func (h *SeekerHandler) ListJobs(c *fiber.Ctx) error {
	filter := dto.JobFilter{
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
	}

	jobs, err := h.seekerService.ListJobs(filter)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(jobs)
}

func (h *SeekerHandler) GetJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid job id",
		})
	}

	job, err := h.seekerService.GetJob(jobID)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Job not found",
			})
		}
		return serverError(c, err)
	}
	return c.JSON(job)
}

func (h *SeekerHandler) Apply(c *fiber.Ctx) error {
	user, err := middleware.Principal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil || req.JobID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Please provide a job id",
		})
	}

	app, err := h.seekerService.Apply(user.ID, req.JobID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Job not found",
			})
		case errors.Is(err, services.ErrAlreadyApplied):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "You have already applied to this job",
			})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *SeekerHandler) AppliedJobs(c *fiber.Ctx) error {
	user, err := middleware.Principal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	apps, err := h.seekerService.AppliedJobs(user.ID)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(apps)
}
