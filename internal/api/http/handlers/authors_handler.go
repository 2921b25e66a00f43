package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	"github.com/spec-kit/catalog-service/internal/service"
)

// AuthorsHandler manages author endpoints.
type AuthorsHandler struct {
	service *service.AuthorService
}

// NewAuthorsHandler constructs handler.
func NewAuthorsHandler(authorService *service.AuthorService) *AuthorsHandler {
	return &AuthorsHandler{service: authorService}
}

// List GET /authors.
func (h *AuthorsHandler) List(c *fiber.Ctx) error {
	authors, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAuthorResponses(authors))
}

// Get GET /authors/:id.
func (h *AuthorsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	author, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAuthorResponse(*author))
}

// Create POST /authors.
func (h *AuthorsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAuthorRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	author, err := h.service.Create(c.UserContext(), req.ToChanges())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewAuthorResponse(*author))
}

// Update PUT /authors/:id.
func (h *AuthorsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateAuthorRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	author, err := h.service.Update(c.UserContext(), id, req.ToChanges())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAuthorResponse(*author))
}

// Delete DELETE /authors/:id.
func (h *AuthorsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
