package handler

import (
	"net/http"
	"strconv"

	"careerboost-api/internal/model"
	"careerboost-api/pkg/logger"
	"careerboost-api/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetUserProfile retrieves the at-most-one profile for a user
func GetUserProfile(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("profile", "get")

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid user ID"})
	}

	profile, err := store.GetUserProfile(uint(userID))
	if err != nil {
		log.Error("Failed to get profile", zap.Uint64("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get profile"})
	}
	if profile == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Profile not found"})
	}

	return c.JSON(http.StatusOK, profile)
}

// UpsertProfile creates the user's profile or merges the supplied fields
// into the existing one.
func UpsertProfile(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("profile", "upsert")

	var req model.ProfileInput
	if err := c.Bind(&req); err != nil {
		prometheus.ValidationErrorCounter.WithLabelValues("profile").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid profile data"})
	}

	if req.UserID == 0 {
		prometheus.ValidationErrorCounter.WithLabelValues("profile").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid profile data"})
	}

	profile, err := store.CreateOrUpdateProfile(&req)
	if err != nil {
		log.Error("Failed to save profile", zap.Uint("user_id", req.UserID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to save profile"})
	}

	log.Info("Profile saved", zap.Uint("profile_id", profile.ID), zap.Uint("user_id", profile.UserID))
	return c.JSON(http.StatusCreated, profile)
}
