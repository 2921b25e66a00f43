package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	"github.com/spec-kit/catalog-service/internal/service"
	apperrors "github.com/spec-kit/catalog-service/pkg/util/errorutil"
	"github.com/spec-kit/catalog-service/pkg/util/pathutil"
)

// MessagesHandler serves bulletin endpoints in JSON or XML.
type MessagesHandler struct {
	service *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(messageService *service.MessageService) *MessagesHandler {
	return &MessagesHandler{service: messageService}
}

// List GET /messages.
func (h *MessagesHandler) List(c *fiber.Ctx) error {
	messages, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	items := dto.NewMessageResponses(messages)
	if wantsXML(c) {
		return c.XML(dto.MessageListResponse{Messages: items})
	}
	return c.JSON(items)
}

// GetByID GET /messages/:id.
func (h *MessagesHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	message, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return h.respond(c, fiber.StatusOK, dto.NewMessageResponse(*message))
}

// GetByMsgID GET /messages/msg-id/*. The key may arrive with literal or
// percent-encoded slashes.
func (h *MessagesHandler) GetByMsgID(c *fiber.Ctx) error {
	msgID, err := pathutil.DecodeWildcardSegment(c.Params("*"))
	if err != nil {
		return apperrors.NewValidationError("Invalid message key", map[string]string{
			"msgId": "Message key is not valid percent-encoding",
		})
	}
	if msgID == "" {
		return apperrors.NewValidationError("Invalid message key", map[string]string{
			"msgId": "Message key is required",
		})
	}
	message, err := h.service.FindByMsgID(c.UserContext(), msgID)
	if err != nil {
		return err
	}
	return h.respond(c, fiber.StatusOK, dto.NewMessageResponse(*message))
}

// Upload POST /messages. Creating and updating both answer 200.
func (h *MessagesHandler) Upload(c *fiber.Ctx) error {
	var req dto.MessageRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	message, err := h.service.Upload(c.UserContext(), req.ToUpsert())
	if err != nil {
		return err
	}
	return h.respond(c, fiber.StatusOK, dto.NewMessageResponse(*message))
}

func (h *MessagesHandler) respond(c *fiber.Ctx, status int, resp dto.MessageResponse) error {
	c.Status(status)
	if wantsXML(c) {
		return c.XML(resp)
	}
	return c.JSON(resp)
}
