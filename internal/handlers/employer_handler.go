package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/middleware"
	"github.com/jobportal/jobportal-backend/internal/services"
)

type EmployerHandler struct {
	employerService *services.EmployerService
}

func NewEmployerHandler(employerService *services.EmployerService) *EmployerHandler {
	return &EmployerHandler{employerService: employerService}
}

func (h *EmployerHandler) CreateJob(c *fiber.Ctx) error {
	user, err := middleware.Principal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	job, err := h.employerService.CreateJob(user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Please provide title, company, location, job type and description",
			})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *EmployerHandler) ListJobs(c *fiber.Ctx) error {
	user, err := middleware.Principal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	jobs, err := h.employerService.ListJobs(user.ID)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(jobs)
}

func (h *EmployerHandler) GetJob(c *fiber.Ctx) error {
	user, err := middleware.Principal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid job id",
		})
	}

	job, err := h.employerService.GetJob(user.ID, jobID)
	if err != nil {
		return h.jobError(c, err)
	}
	return c.JSON(job)
}

func (h *EmployerHandler) UpdateJob(c *fiber.Ctx) error {
	user, err := middleware.Principal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid job id",
		})
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	job, err := h.employerService.UpdateJob(user.ID, jobID, &req)
	if err != nil {
		return h.jobError(c, err)
	}
	return c.JSON(job)
}

func (h *EmployerHandler) DeleteJob(c *fiber.Ctx) error {
	user, err := middleware.Principal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid job id",
		})
	}

	if err := h.employerService.DeleteJob(user.ID, jobID); err != nil {
		return h.jobError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job removed"})
}

func (h *EmployerHandler) Applicants(c *fiber.Ctx) error {
	user, err := middleware.Principal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid job id",
		})
	}

	apps, err := h.employerService.Applicants(user.ID, jobID)
	if err != nil {
		return h.jobError(c, err)
	}
	return c.JSON(apps)
}

func (h *EmployerHandler) jobError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrJobNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Job not found",
		})
	}
	return serverError(c, err)
}
