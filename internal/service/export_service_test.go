package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/svj-dojo/bellwall-api/pkg/errors"
)

func newTestExportService(t *testing.T) (*ExportService, string) {
	t.Helper()
	repo := newStubScheduleRepo()
	schedules := NewScheduleService(repo, nil, nil, nil)
	created, err := schedules.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	return NewExportService(schedules, nil), created.ID
}

func TestExportServiceRendersCSV(t *testing.T) {
	svc, id := newTestExportService(t)

	result, err := svc.Render(context.Background(), id, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "tuesday-class.csv", result.Filename)

	content := string(result.Content)
	assert.True(t, strings.HasPrefix(content, "Section,Start,End"))
	assert.Contains(t, content, "Warmup,6:00 PM,6:15 PM,15,yes,no,classic")
	assert.Contains(t, content, "Technique,6:15 PM,6:45 PM,30,yes,yes,classic")
}

func TestExportServiceRendersPDF(t *testing.T) {
	svc, id := newTestExportService(t)

	result, err := svc.Render(context.Background(), id, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "tuesday-class.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestExportServiceUnknownFormat(t *testing.T) {
	svc, id := newTestExportService(t)

	_, err := svc.Render(context.Background(), id, "docx")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestExportServiceUnknownSchedule(t *testing.T) {
	svc, _ := newTestExportService(t)

	_, err := svc.Render(context.Background(), "missing", "csv")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
