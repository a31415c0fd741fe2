package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/svj-dojo/bellwall-api/internal/models"
	appErrors "github.com/svj-dojo/bellwall-api/pkg/errors"
	"github.com/svj-dojo/bellwall-api/pkg/export"
)

// ExportService renders a schedule as a printable document, for the paper
// copy pinned next to the wall display.
type ExportService struct {
	schedules *ScheduleService
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
}

// ExportResult carries rendered bytes plus response metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// NewExportService instantiates ExportService.
func NewExportService(schedules *ScheduleService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		schedules: schedules,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
	}
}

// Render exports one schedule in the requested format ("csv" or "pdf").
func (s *ExportService) Render(ctx context.Context, scheduleID, format string) (*ExportResult, error) {
	schedule, err := s.schedules.Get(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	dataset := scheduleDataset(schedule)
	name := strings.ReplaceAll(strings.ToLower(schedule.Name), " ", "-")

	switch strings.ToLower(format) {
	case "csv":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: name + ".csv"}, nil
	case "pdf":
		content, err := s.pdf.Render(dataset, schedule.Name)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: name + ".pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func scheduleDataset(schedule *models.Schedule) export.Dataset {
	headers := []string{"Section", "Start", "End", "Minutes", "End Bell", "2-Min Warning", "Sound"}
	rows := make([]map[string]string, 0, len(schedule.Sections))
	for _, section := range schedule.Sections {
		rows = append(rows, map[string]string{
			"Section":       section.Name,
			"Start":         models.FormatTime12Hour(section.StartTime),
			"End":           models.FormatTime12Hour(section.EndTime),
			"Minutes":       fmt.Sprintf("%d", section.DurationMinutes),
			"End Bell":      yesNo(section.PlayEndBell),
			"2-Min Warning": yesNo(section.PlayTwoMinuteWarning),
			"Sound":         section.BellSound,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
