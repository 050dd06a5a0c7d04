package mockapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const ownerIDKey = "ownerID"

// Server is a development stand-in for the DeliverUS backend owner endpoints.
type Server struct {
	store  *Store
	tokens *Tokens
	log    *slog.Logger
}

func NewServer(store *Store, tokens *Tokens, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{store: store, tokens: tokens, log: log}
}

// Handler builds the gin router.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	r.POST("/users/login", s.login)

	authed := r.Group("/", s.authRequired())
	authed.GET("/users/myrestaurants", s.myRestaurants)
	authed.DELETE("/restaurants/:restaurantId", s.removeRestaurant)
	return r
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("mockapi request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.String("request_id", c.GetHeader("X-Request-ID")),
			slog.Duration("elapsed", time.Since(start)))
	}
}

func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			return
		}
		id, err := s.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ownerIDKey, id)
		c.Next()
	}
}

type loginRequest struct {
	Email string `json:"email" binding:"required"`
}

type loginResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	Token     string `json:"token"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	owner, err := s.store.OwnerByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong credentials"})
		return
	}
	token, err := s.tokens.Issue(owner)
	if err != nil {
		s.log.Error("mockapi issue token", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, loginResponse{ID: owner.ID, Email: owner.Email, FirstName: owner.FirstName, Token: token})
}

func (s *Server) myRestaurants(c *gin.Context) {
	list, err := s.store.ListByOwner(c.Request.Context(), c.GetUint(ownerIDKey))
	if err != nil {
		s.log.Error("mockapi list restaurants", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) removeRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("restaurantId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	err = s.store.Delete(c.Request.Context(), c.GetUint(ownerIDKey), uint(id))
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough privileges. This entity does not belong to you"})
	case err != nil:
		s.log.Error("mockapi remove restaurant", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove restaurant"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted."})
	}
}
