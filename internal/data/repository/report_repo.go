package repository

import (
	"context"

	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"

	"go.uber.org/zap"
)

type ReportRepository interface {
	Generate(ctx context.Context) (*response.ReportResponse, error)
}

type reportRepository struct {
	api apiclient.Doer
	log *zap.Logger
}

func NewReportRepository(api apiclient.Doer, log *zap.Logger) ReportRepository {
	return &reportRepository{
		api: api,
		log: log.With(zap.String("repository", "report")),
	}
}

// Generate calls GET /admin/reports
func (r *reportRepository) Generate(ctx context.Context) (*response.ReportResponse, error) {
	var report response.ReportResponse
	if err := r.api.Get(ctx, "/admin/reports", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
