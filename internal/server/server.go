// Package server exposes the webhook HTTP surface: the platform callback
// endpoint and a health check.
package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"babelbot/internal/line"
	"babelbot/internal/logger"
	"babelbot/internal/relay"
)

// NewRouter builds the gin engine with all routes and middleware registered.
// channelSecret verifies inbound webhook signatures before any event reaches
// the relay service.
func NewRouter(log *slog.Logger, channelSecret string, service *relay.Service) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.Middleware(log))

	router.GET("/health", healthHandler)
	router.POST("/callback", callbackHandler(log, channelSecret, service))

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// callbackHandler verifies, parses, and dispatches one webhook batch.
// Individual event failures are recovered inside the service; only a failure
// of the batch join maps to a non-2xx status so the platform can retry the
// delivery.
func callbackHandler(log *slog.Logger, channelSecret string, service *relay.Service) gin.HandlerFunc {
	handlerLog := log.With("handler", "callback")

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			handlerLog.ErrorContext(ctx, "Failed to read webhook body", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
			return
		}

		events, err := line.ParseRequest(channelSecret, body, c.GetHeader(line.SignatureHeader))
		if err != nil {
			if errors.Is(err, line.ErrInvalidSignature) {
				handlerLog.WarnContext(ctx, "Rejected webhook with invalid signature")
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
				return
			}
			handlerLog.WarnContext(ctx, "Rejected malformed webhook body", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed body"})
			return
		}

		handlerLog.DebugContext(ctx, "Processing webhook batch", "event_count", len(events))

		if err := service.HandleEvents(ctx, events); err != nil {
			handlerLog.ErrorContext(ctx, "Webhook batch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "batch processing failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
