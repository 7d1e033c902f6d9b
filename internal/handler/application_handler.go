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

// GetUserApplications lists all applications owned by a user
func GetUserApplications(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("application", "list")

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid user ID"})
	}

	applications, err := store.GetUserApplications(uint(userID))
	if err != nil {
		log.Error("Failed to get applications", zap.Uint64("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get applications"})
	}

	return c.JSON(http.StatusOK, applications)
}

// CreateApplication records a new job application
func CreateApplication(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("application", "create")

	var req model.ApplicationInput
	if err := c.Bind(&req); err != nil {
		prometheus.ValidationErrorCounter.WithLabelValues("application").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid application data"})
	}

	if req.UserID == 0 || req.Company == "" || req.Position == "" {
		prometheus.ValidationErrorCounter.WithLabelValues("application").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid application data"})
	}
	if req.Status != "" && !model.ValidStatus(req.Status) {
		prometheus.ValidationErrorCounter.WithLabelValues("application").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid application status"})
	}

	application, err := store.CreateApplication(&req)
	if err != nil {
		log.Error("Failed to create application", zap.Uint("user_id", req.UserID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create application"})
	}

	log.Info("Application created",
		zap.Uint("application_id", application.ID),
		zap.Uint("user_id", application.UserID),
		zap.String("company", application.Company))
	return c.JSON(http.StatusCreated, application)
}

// UpdateApplication applies a partial update to an existing application
func UpdateApplication(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("application", "update")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid application ID"})
	}

	var req model.ApplicationUpdate
	if err := c.Bind(&req); err != nil {
		prometheus.ValidationErrorCounter.WithLabelValues("application").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid application data"})
	}
	if req.Status != nil && !model.ValidStatus(*req.Status) {
		prometheus.ValidationErrorCounter.WithLabelValues("application").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid application status"})
	}

	application, err := store.UpdateApplication(uint(id), &req)
	if err != nil {
		log.Error("Failed to update application", zap.Uint64("application_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update application"})
	}
	if application == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Application not found"})
	}

	return c.JSON(http.StatusOK, application)
}
