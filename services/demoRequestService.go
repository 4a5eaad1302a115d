package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator"
	"go.uber.org/zap"

	"oushodcloud-web/apperrors"
	"oushodcloud-web/models"
	"oushodcloud-web/repository"
)

type DemoRequestService struct {
	repo   *repository.DemoRequestRepository
	logger *zap.Logger
}

func NewDemoRequestService(repo *repository.DemoRequestRepository, logger *zap.Logger) *DemoRequestService {
	return &DemoRequestService{repo: repo, logger: logger}
}

func (s *DemoRequestService) SubmitDemoRequest(ctx context.Context, input models.DemoRequestInput) (models.DemoRequest, error) {
	if err := validate.Struct(input); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			return models.DemoRequest{}, validationError("invalid demo request input", fieldErrs)
		}
		return models.DemoRequest{}, err
	}

	now := time.Now()
	request := models.DemoRequest{
		DemoRequestInput: input,
		Status:           models.DemoRequestStatusPending,
		Date:             now.Format("2006-01-02 15:04"),
		Created_at:       now,
	}

	id, err := s.repo.Insert(ctx, request)
	if err != nil {
		return models.DemoRequest{}, apperrors.NewInternalError("failed to save demo request", err)
	}
	request.ID = id

	s.logger.Info("new demo request submitted",
		zap.String("id", request.ID),
		zap.String("name", request.Name))
	return request, nil
}

func (s *DemoRequestService) GetDemoRequests(ctx context.Context) ([]models.DemoRequest, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list demo requests", err)
	}
	return requests, nil
}

func (s *DemoRequestService) UpdateDemoRequestStatus(ctx context.Context, id string, status string) (bool, error) {
	if !models.IsValidDemoRequestStatus(status) {
		return false, apperrors.NewValidationError(fmt.Sprintf("invalid demo request status %q", status))
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return false, apperrors.NewInternalError("failed to update demo request status", err)
	}
	if !updated {
		s.logger.Warn("status update for unknown demo request", zap.String("id", id))
	}
	return updated, nil
}
