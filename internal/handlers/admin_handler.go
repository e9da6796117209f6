package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/middleware"
	"github.com/jobportal/jobportal-backend/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) PendingEmployers(c *fiber.Ctx) error {
	employers, err := h.adminService.PendingEmployers()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(employers)
}

func (h *AdminHandler) ApproveEmployer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	employer, err := h.adminService.ApproveEmployer(id)
	if err != nil {
		return h.employerError(c, err)
	}
	return c.JSON(employer)
}

func (h *AdminHandler) RejectEmployer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	if err := h.adminService.RejectEmployer(id); err != nil {
		return h.employerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Employer rejected and removed"})
}

func (h *AdminHandler) AllJobs(c *fiber.Ctx) error {
	jobs, err := h.adminService.AllJobs()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(jobs)
}

func (h *AdminHandler) AllApplications(c *fiber.Ctx) error {
	apps, err := h.adminService.AllApplications()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(apps)
}

func (h *AdminHandler) AllUsers(c *fiber.Ctx) error {
	users, err := h.adminService.AllUsers()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(users)
}

func (h *AdminHandler) ToggleBlock(c *fiber.Ctx) error {
	admin, err := middleware.Principal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	user, err := h.adminService.ToggleBlock(admin.ID, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		case errors.Is(err, services.ErrSelfBlock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Cannot block yourself",
			})
		}
		return serverError(c, err)
	}

	message := "User unblocked"
	if user.IsBlocked {
		message = "User blocked"
	}
	return c.JSON(fiber.Map{"message": message, "user": user})
}

func (h *AdminHandler) employerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEmployerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Employer not found",
		})
	case errors.Is(err, services.ErrNotEmployer):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "User is not an employer",
		})
	}
	return serverError(c, err)
}
