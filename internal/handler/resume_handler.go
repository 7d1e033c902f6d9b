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

// GetUserResumes lists all resumes owned by a user
func GetUserResumes(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("resume", "list")

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid user ID"})
	}

	resumes, err := store.GetUserResumes(uint(userID))
	if err != nil {
		log.Error("Failed to get resumes", zap.Uint64("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get resumes"})
	}

	return c.JSON(http.StatusOK, resumes)
}

// CreateResume stores a new resume document
func CreateResume(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("resume", "create")

	var req model.ResumeInput
	if err := c.Bind(&req); err != nil {
		prometheus.ValidationErrorCounter.WithLabelValues("resume").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid resume data"})
	}

	if req.UserID == 0 || req.Title == "" || len(req.Content) == 0 {
		prometheus.ValidationErrorCounter.WithLabelValues("resume").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid resume data"})
	}

	resume, err := store.CreateResume(&req)
	if err != nil {
		log.Error("Failed to create resume", zap.Uint("user_id", req.UserID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create resume"})
	}

	log.Info("Resume created", zap.Uint("resume_id", resume.ID), zap.Uint("user_id", resume.UserID))
	return c.JSON(http.StatusCreated, resume)
}

// UpdateResume applies a partial update to an existing resume
func UpdateResume(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("resume", "update")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid resume ID"})
	}

	var req model.ResumeUpdate
	if err := c.Bind(&req); err != nil {
		prometheus.ValidationErrorCounter.WithLabelValues("resume").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid resume data"})
	}

	resume, err := store.UpdateResume(uint(id), &req)
	if err != nil {
		log.Error("Failed to update resume", zap.Uint64("resume_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update resume"})
	}
	if resume == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Resume not found"})
	}

	return c.JSON(http.StatusOK, resume)
}

// DeleteResume removes a resume permanently
func DeleteResume(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("resume", "delete")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid resume ID"})
	}

	deleted, err := store.DeleteResume(uint(id))
	if err != nil {
		log.Error("Failed to delete resume", zap.Uint64("resume_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete resume"})
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Resume not found"})
	}

	log.Info("Resume deleted", zap.Uint64("resume_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
