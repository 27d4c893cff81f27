package webhook

import (
	"log/slog"
	"net/http"

	"crew-bot/payment"

	"github.com/disgoorg/snowflake/v2"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
)

// PaymentFetcher is the slice of the payment provider the webhook needs.
type PaymentFetcher interface {
	FetchPayment(paymentID string) (*payment.Payment, error)
}

// RoleGranter hands the VIP role to a community member. Implementations
// decide what to do with users who are not members; that is not an error.
type RoleGranter interface {
	GrantRole(userID snowflake.ID) error
}

// Notification is the body Mercado Pago posts to the webhook.
type Notification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type Server struct {
	payments PaymentFetcher
	roles    RoleGranter
}

func NewServer(payments PaymentFetcher, roles RoleGranter) *Server {
	return &Server{
		payments: payments,
		roles:    roles,
	}
}

func (s *Server) Routes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/", s.handleHealth)
	engine.POST("/webhook", s.handleWebhook)
	return engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "Bot online 🚀")
}

func (s *Server) handleWebhook(c *gin.Context) {
	var notification Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		slog.Error("webhook: error while decoding a notification", tint.Err(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	if notification.Type == "payment" {
		p, err := s.payments.FetchPayment(notification.Data.ID)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		if p.Status == payment.StatusApproved && p.Metadata.DiscordUserID != "" {
			userID, err := snowflake.Parse(p.Metadata.DiscordUserID)
			if err != nil {
				// a malformed user ID means the role can't be delivered,
				// but the notification itself was processed
				slog.Warn("webhook: payment metadata carries a malformed user id",
					slog.String("payment.id", notification.Data.ID),
					slog.String("user.id", p.Metadata.DiscordUserID),
					tint.Err(err))
			} else if err := s.roles.GrantRole(userID); err != nil {
				slog.Error("webhook: error while granting the vip role", slog.Any("user.id", userID), tint.Err(err))
				c.Status(http.StatusInternalServerError)
				return
			}
		}
	}
	c.Status(http.StatusOK)
}
