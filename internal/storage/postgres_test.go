package storage

import (
	"testing"

	"careerboost-api/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

// The update paths issue a single UPDATE with only the supplied columns;
// these pin which columns each partial payload may touch.

func TestResumeAssignments(t *testing.T) {
	empty := resumeAssignments(&model.ResumeUpdate{})
	assert.Len(t, empty, 1)
	assert.Contains(t, empty, "updated_at", "an empty update still refreshes the timestamp")

	full := resumeAssignments(&model.ResumeUpdate{
		Title:    strPtr("R2"),
		Content:  datatypes.JSON(`{"v":2}`),
		ATSScore: intPtr(90),
	})
	assert.Equal(t, "R2", full["title"])
	assert.Equal(t, datatypes.JSON(`{"v":2}`), full["content"])
	assert.Equal(t, 90, full["ats_score"])
	assert.Contains(t, full, "updated_at")

	partial := resumeAssignments(&model.ResumeUpdate{ATSScore: intPtr(85)})
	assert.NotContains(t, partial, "title", "unsupplied fields must not be written")
	assert.NotContains(t, partial, "content")
	assert.Equal(t, 85, partial["ats_score"])
}

func TestApplicationAssignments(t *testing.T) {
	assert.Empty(t, applicationAssignments(&model.ApplicationUpdate{}),
		"no supplied fields means nothing to write")

	full := applicationAssignments(&model.ApplicationUpdate{
		Company:  strPtr("Globex"),
		Position: strPtr("Engineer"),
		Status:   strPtr(model.StatusAccepted),
		Notes:    strPtr("offer received"),
	})
	assert.Equal(t, "Globex", full["company"])
	assert.Equal(t, "Engineer", full["position"])
	assert.Equal(t, model.StatusAccepted, full["status"])
	assert.Equal(t, "offer received", full["notes"])
	assert.NotContains(t, full, "applied_at", "applied_at is immutable")

	partial := applicationAssignments(&model.ApplicationUpdate{Status: strPtr(model.StatusRejected)})
	assert.Len(t, partial, 1)
	assert.Equal(t, model.StatusRejected, partial["status"])
}
