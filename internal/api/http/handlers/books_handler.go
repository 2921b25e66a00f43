package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	"github.com/spec-kit/catalog-service/internal/service"
)

// BooksHandler manages book endpoints.
type BooksHandler struct {
	service *service.BookService
}

// NewBooksHandler constructs handler.
func NewBooksHandler(bookService *service.BookService) *BooksHandler {
	return &BooksHandler{service: bookService}
}

// List GET /books.
func (h *BooksHandler) List(c *fiber.Ctx) error {
	books, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookResponses(books))
}

// Get GET /books/:id.
func (h *BooksHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	book, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookResponse(*book))
}

// Create POST /books.
func (h *BooksHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	book, err := h.service.Create(c.UserContext(), req.ToChanges())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewBookResponse(*book))
}

// Update PUT /books/:id.
func (h *BooksHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateBookRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	book, err := h.service.Update(c.UserContext(), id, req.ToChanges())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookResponse(*book))
}

// Delete DELETE /books/:id.
func (h *BooksHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
