package handler

import (
	"errors"
	"net/http"
	"strconv"

	"careerboost-api/internal/model"
	"careerboost-api/pkg/logger"
	"careerboost-api/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetUser retrieves a user by numeric id
func GetUser(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("user", "get")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid user ID"})
	}

	user, err := store.GetUser(uint(id))
	if err != nil {
		log.Error("Failed to get user", zap.Uint64("user_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get user"})
	}
	if user == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}

	return c.JSON(http.StatusOK, user)
}

// GetUserByEmail retrieves a user by email address
func GetUserByEmail(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("user", "get")

	user, err := store.GetUserByEmail(c.Param("email"))
	if err != nil {
		log.Error("Failed to get user by email", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get user"})
	}
	if user == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}

	return c.JSON(http.StatusOK, user)
}

// GetUserBySupabaseID retrieves a user by the Supabase identity it is linked to
func GetUserBySupabaseID(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("user", "get")

	user, err := store.GetUserBySupabaseID(c.Param("supabaseId"))
	if err != nil {
		log.Error("Failed to get user by supabase id", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get user"})
	}
	if user == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}

	return c.JSON(http.StatusOK, user)
}

// CreateUser registers a new user account
func CreateUser(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("user", "create")

	var req model.UserInput
	if err := c.Bind(&req); err != nil {
		prometheus.ValidationErrorCounter.WithLabelValues("user").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid user data"})
	}

	if req.Email == "" || req.FullName == "" {
		prometheus.ValidationErrorCounter.WithLabelValues("user").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid user data"})
	}

	user, err := store.CreateUser(&req)
	if err != nil {
		// The Postgres backend enforces email uniqueness; the in-memory
		// backend does not and never reaches this branch for duplicates.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn("Duplicate user", zap.String("email", req.Email))
			return c.JSON(http.StatusConflict, echo.Map{"error": "User already exists"})
		}
		log.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create user"})
	}

	log.Info("User created", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	return c.JSON(http.StatusCreated, user)
}
