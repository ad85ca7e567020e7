package usecase

import (
	"context"

	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/notify"

	"go.uber.org/zap"
)

// AdminLink is a dashboard entry pointing at an admin page.
type AdminLink struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Path        string `json:"path" yaml:"path"`
}

// Dashboard is the admin landing page.
type Dashboard struct {
	Report *response.ReportResponse `json:"report" yaml:"report"`
	Links  []AdminLink              `json:"links" yaml:"links"`
}

var adminLinks = []AdminLink{
	{Title: "Manage Movies", Description: "Add, edit, or delete movies", Path: "/admin/movies"},
	{Title: "Manage Showtimes", Description: "Add, edit, or delete showtimes", Path: "/admin/showtimes"},
	{Title: "View Reports", Description: "View revenue and occupancy reports", Path: "/admin/reports"},
	{Title: "All Reservations", Description: "Browse every reservation", Path: "/admin/reservations"},
}

type ReportService interface {
	Report(ctx context.Context) (*response.ReportResponse, error)
	Dashboard(ctx context.Context) *Dashboard
}

type reportService struct {
	repo     repository.ReportRepository
	notifier notify.Notifier
	log      *zap.Logger
}

func NewReportService(repo repository.ReportRepository, notifier notify.Notifier, log *zap.Logger) ReportService {
	return &reportService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "report")),
	}
}

func (s *reportService) Report(ctx context.Context) (*response.ReportResponse, error) {
	report, err := s.repo.Generate(ctx)
	if err != nil {
		s.log.Warn("Failed to load reports", zap.Error(err))
		s.notifier.Error("Failed to load reports")
		return nil, err
	}
	return report, nil
}

// Dashboard shows the links even when the report cannot be loaded
func (s *reportService) Dashboard(ctx context.Context) *Dashboard {
	report, _ := s.Report(ctx)
	return &Dashboard{Report: report, Links: adminLinks}
}
