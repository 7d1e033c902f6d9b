package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"careerboost-api/internal/model"
	"careerboost-api/pkg/logger"
	"careerboost-api/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GetDashboard aggregates a user's resumes, applications and profile into a
// single payload. The three reads run concurrently and the response is
// all-or-nothing: if any read fails the whole request answers 500.
func GetDashboard(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("dashboard", "get")

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid user ID"})
	}

	var (
		resumes      []model.Resume
		applications []model.Application
		profile      *model.UserProfile
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		if resumes, err = store.GetUserResumes(uint(userID)); err != nil {
			return fmt.Errorf("resumes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if applications, err = store.GetUserApplications(uint(userID)); err != nil {
			return fmt.Errorf("applications: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if profile, err = store.GetUserProfile(uint(userID)); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Failed to get dashboard data", zap.Uint64("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get dashboard data"})
	}

	byStatus := map[string]int{}
	interviews := 0
	offers := 0
	for _, application := range applications {
		byStatus[application.Status]++
		switch application.Status {
		case "interview":
			interviews++
		case model.StatusAccepted:
			offers++
		}
	}

	resumeScore := 0
	if len(resumes) > 0 {
		resumeScore = resumes[0].ATSScore
	}

	response := echo.Map{
		"resumes": echo.Map{
			"count":  len(resumes),
			"recent": head(resumes, 3),
		},
		"applications": echo.Map{
			"total":    len(applications),
			"byStatus": byStatus,
			"recent":   head(applications, 5),
		},
		"achievements": echo.Map{
			"applicationsCount": len(applications),
			"interviewsCount":   interviews,
			"offersCount":       offers,
			"resumeScore":       resumeScore,
		},
	}
	// A user without a profile gets no profile key at all, not null
	if profile != nil {
		response["profile"] = profile
	}

	return c.JSON(http.StatusOK, response)
}

// head returns at most n leading elements of s.
func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
