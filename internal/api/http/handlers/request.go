package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	apperrors "github.com/spec-kit/catalog-service/pkg/util/errorutil"
)

// pathID reads the numeric :id parameter.
func pathID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("Invalid id", map[string]string{
			"id": "Id must be an integer, got '" + raw + "'",
		})
	}
	return id, nil
}

// bindBody decodes a JSON or XML body into req and validates it.
func bindBody(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return dto.MalformedBody(err)
	}
	return dto.Validate(req)
}

// wantsXML reports whether the client prefers XML over JSON.
func wantsXML(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMEApplicationXML) == fiber.MIMEApplicationXML
}
