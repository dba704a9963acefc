package recommendation

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
)

// Recommender produces category recommendations for a free-text interest.
type Recommender interface {
	Recommend(ctx context.Context, interest string) ([]CategoryRecommendation, error)
}

// SessionGetter resolves a session ID to its verified client handle.
type SessionGetter func(id string) (Recommender, bool)

type Handler struct {
	service  *Service
	sessions SessionGetter
}

type recommendRequest struct {
	Interest string `json:"interest"`
}

func NewHandler(service *Service, sessions SessionGetter) *Handler {
	return &Handler{service: service, sessions: sessions}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/recommendations", h.getRecommendations)
}

func (h *Handler) getRecommendations(c *fiber.Ctx) error {
	sessionID, ok := sessionIDFromClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Session not found"})
	}

	client, ok := h.sessions(sessionID)
	if !ok {
		// the token outlived the session, e.g. after a restart
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Session expired, please reconnect"})
	}

	payload := new(recommendRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Interest == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "interest is required"})
	}

	log.Infof("getting recommendations for session %s", sessionID)
	recs, err := client.Recommend(c.Context(), payload.Interest)
	if err != nil {
		// transport, auth and parse failures are indistinguishable here
		log.Errorf("recommendation generation failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Recommendation unavailable, please try again"})
	}

	items := h.service.Expand(recs)
	log.Infof("generated %d product recommendations", len(items))
	return c.JSON(items)
}

func sessionIDFromClaims(c *fiber.Ctx) (string, bool) {
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
