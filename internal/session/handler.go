package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service   *Service
	jwtSecret string
}

type createRequest struct {
	APIKey string `json:"apiKey"`
}

func NewHandler(service *Service, jwtSecret string) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/session", h.createSession)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Delete("/api/v1/session", h.clearSession)
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.APIKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "apiKey is required"})
	}

	sess, err := h.service.Create(payload.APIKey)
	if err != nil {
		if err == ErrInvalidKeyFormat {
			log.Warn("session rejected: API key format validation failed")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid API key format"})
		}
		log.Warnf("session rejected: connection test failed: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Could not verify API key, please try again"})
	}

	claims := jwt.MapClaims{
		"session_id": sess.ID,
		"exp":        time.Now().Add(72 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	log.Infof("session %s created", sess.ID)
	return c.JSON(fiber.Map{
		"message": "Connection successful",
		"token":   signed,
	})
}

func (h *Handler) clearSession(c *fiber.Ctx) error {
	id, ok := IDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Session not found"})
	}

	h.service.Clear(id)
	log.Infof("session %s cleared", id)
	return c.JSON(fiber.Map{"message": "Session cleared"})
}

// IDFromCtx extracts the session ID from the JWT claims set by the auth
// middleware.
func IDFromCtx(c *fiber.Ctx) (string, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	id, ok := claims["session_id"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
