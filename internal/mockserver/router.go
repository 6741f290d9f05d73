package mockserver

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chasewhiterabbit/rigger-go/internal/config"
)

const userIDKey = "userID"

// NewRouter wires up the mock API routes and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
	)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/login", handler.Login)
		api.POST("/auth/register", handler.Register)
		api.POST("/auth/refresh", handler.Refresh)

		authed := api.Group("", requireAuth(handler.issuer))
		{
			authed.GET("/users/profile", handler.Profile)
			authed.PUT("/users/profile", handler.UpdateProfile)

			authed.GET("/jobs", handler.Jobs)
			authed.POST("/jobs", handler.CreateJob)
			authed.GET("/jobs/:id", handler.Job)
			authed.POST("/jobs/:id/apply", handler.Apply)

			authed.GET("/applications/user", handler.UserApplications)
			authed.GET("/applications/job/:jobId", handler.JobApplications)
			authed.PUT("/applications/:id/status", handler.UpdateApplicationStatus)

			authed.GET("/bookings", handler.Bookings)
			authed.POST("/bookings", handler.CreateBooking)
			authed.GET("/bookings/:id", handler.Booking)
			authed.PUT("/bookings/:id/status", handler.UpdateBookingStatus)

			authed.GET("/reviews", handler.Reviews)
			authed.POST("/reviews", handler.CreateReview)
			authed.PUT("/reviews/:id", handler.UpdateReview)

			authed.GET("/payments", handler.Payments)
			authed.POST("/payments", handler.CreatePayment)
			authed.PUT("/payments/:id/status", handler.UpdatePaymentStatus)
		}
	}

	return &http.Server{
		Addr:           cfg.MockServer.Address,
		Handler:        router,
		ReadTimeout:    cfg.MockServer.ReadTimeout,
		WriteTimeout:   cfg.MockServer.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requireAuth(issuer *tokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, "unauthorized", "missing authorization header")
			return
		}
		claims, err := issuer.parse(token, tokenTypeAccess)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "unauthorized", "access token invalid or expired")
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds())
	}
}
