package handler

import (
	"giftshop-chatbot-be/internal/dto"
	"giftshop-chatbot-be/internal/pkg/logger"
	"giftshop-chatbot-be/internal/pkg/serverutils"
	internalWS "giftshop-chatbot-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ChatStreamHandler upgrades chat widget connections and attaches them to
// the hub. Sessions are anonymous-capable, so the handshake is keyed on the
// session id instead of a token.
type ChatStreamHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewChatStreamHandler(hub *internalWS.Hub, log logger.ILogger) *ChatStreamHandler {
	return &ChatStreamHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *ChatStreamHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/chat/v1")
	g.Get("/ws", h.ServeWs)
	g.Post("/announce", serverutils.JwtMiddleware, h.Announce)
}

// Announce pushes a storefront announcement (a flash sale, a gift-day
// reminder) to every connected widget.
func (h *ChatStreamHandler) Announce(c *fiber.Ctx) error {
	var req dto.AnnounceRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	h.hub.Broadcast(fiber.Map{"message": req.Message})
	h.logger.Info("ChatStreamHandler", "Announcement broadcast", map[string]interface{}{"message": req.Message})

	return c.JSON(serverutils.SuccessResponse("Success send announcement", nil))
}

func (h *ChatStreamHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "session_id is required"})
	}
	if _, err := uuid.Parse(sessionID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session_id format"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ChatStreamHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("ChatStreamHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
