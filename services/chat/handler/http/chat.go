package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tukangku/server/internal/pkg/middleware"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/internal/utils"
	"github.com/tukangku/server/services/chat"
)

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	chatUC chat.ChatUC
}

// NewChatHandler creates a new chat handler instance
func NewChatHandler(chatUC chat.ChatUC) *ChatHandler {
	return &ChatHandler{chatUC: chatUC}
}

// History handles GET /chat/history/:roomId
func (h *ChatHandler) History(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	messages, err := h.chatUC.History(c.Request().Context(), userID, c.Param("roomId"), limit, offset)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "History retrieved", messages)
}

// MarkRead handles POST /chat/read
func (h *ChatHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	if err := h.chatUC.MarkRead(c.Request().Context(), userID, req.RoomID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Messages marked read", nil)
}
