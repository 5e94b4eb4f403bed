package usecase

import (
	"context"
	"slices"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/query"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

type applicationUsecase struct {
	appRepo domain.ApplicationRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository) domain.ApplicationUsecase {
	return &applicationUsecase{appRepo: appRepo}
}

func normalizeStatus(status string) (string, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" || status == query.StatusAll {
		return query.StatusAll, nil
	}
	if !slices.Contains(domain.ApplicationStatuses, status) {
		return "", apperror.BadRequest("Unknown application status: " + status)
	}
	return status, nil
}

// ListApplications returns the applications with the selected status and
// the histogram over all of them.
func (u *applicationUsecase) ListApplications(ctx context.Context, status string) (*domain.ApplicationList, error) {
	status, err := normalizeStatus(status)
	if err != nil {
		return nil, err
	}

	apps, err := u.appRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError(err, "Applications not found")
	}

	return &domain.ApplicationList{
		Applications: query.FilterApplicationsByStatus(apps, status),
		Counts:       query.ApplicationStatusCounts(apps),
		Status:       status,
	}, nil
}

func (u *applicationUsecase) GetApplication(ctx context.Context, id int64) (*domain.ApplicationDetail, error) {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Application not found")
	}
	return app, nil
}

// UpdateApplicationStatus accepts any known status regardless of the
// current one.
func (u *applicationUsecase) UpdateApplicationStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !slices.Contains(domain.ApplicationStatuses, status) {
		return nil, apperror.BadRequest("Status must be one of: " + strings.Join(domain.ApplicationStatuses, ", "))
	}

	app, err := u.appRepo.Update(ctx, id, map[string]any{"status": status})
	if err != nil {
		return nil, storeError(err, "Application not found")
	}
	logger.Log.Info("Application status updated", "application_id", id, "status", status)
	return app, nil
}

func (u *applicationUsecase) DeleteApplication(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := u.appRepo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, "Application not found")
	}
	return app, nil
}

func (u *applicationUsecase) ExportApplications(ctx context.Context, status, format string) (*domain.ExportFile, error) {
	list, err := u.ListApplications(ctx, status)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case ExportFormatXLSX, "":
		return exportExcel(list.Applications)
	case ExportFormatCSV:
		return exportCSV(list.Applications)
	default:
		return nil, apperror.BadRequest("Unsupported export format: " + format)
	}
}
