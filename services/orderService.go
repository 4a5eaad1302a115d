package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator"
	"go.uber.org/zap"

	"oushodcloud-web/apperrors"
	"oushodcloud-web/models"
	"oushodcloud-web/repository"
)

var validate = validator.New()

func validationError(message string, fieldErrs validator.ValidationErrors) *apperrors.ValidationError {
	details := make([]apperrors.ValidationDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, apperrors.ValidationDetail{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on the %q rule", fe.Tag()),
		})
	}
	return apperrors.NewValidationError(message, details...)
}

// OrderService implements the checkout order flow: validate, number, stamp,
// persist. The order counter is seeded from the clock so numbers stay unique
// across restarts without a startup read of the store.
type OrderService struct {
	repo    *repository.OrderRepository
	sms     *SMSService
	logger  *zap.Logger
	counter int64
}

func NewOrderService(repo *repository.OrderRepository, sms *SMSService, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:    repo,
		sms:     sms,
		logger:  logger,
		counter: time.Now().Unix(),
	}
}

func (s *OrderService) SubmitOrder(ctx context.Context, input models.OrderInput) (models.Order, error) {
	if err := validate.Struct(input); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			return models.Order{}, validationError("invalid order input", fieldErrs)
		}
		return models.Order{}, err
	}

	if input.Status == "" {
		input.Status = models.OrderStatusPendingPayment
	}
	if !models.IsValidOrderStatus(input.Status) {
		return models.Order{}, apperrors.NewValidationError(
			fmt.Sprintf("invalid order status %q", input.Status))
	}
	if input.Addons == nil {
		input.Addons = []string{}
	}

	now := time.Now()
	order := models.Order{
		Order_id:   fmt.Sprintf("OC-%d", atomic.AddInt64(&s.counter, 1)),
		OrderInput: input,
		Date:       now.Format("2006-01-02"),
		Created_at: now,
	}

	id, err := s.repo.Insert(ctx, order)
	if err != nil {
		return models.Order{}, apperrors.NewInternalError("failed to save order", err)
	}
	order.ID = id

	s.logger.Info("new order submitted",
		zap.String("order_id", order.Order_id),
		zap.String("plan", order.Plan),
		zap.String("pharmacy", order.PharmacyName))
	return order, nil
}

func (s *OrderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list orders", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (models.Order, bool, error) {
	order, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Order{}, false, apperrors.NewInternalError("failed to get order", err)
	}
	return order, found, nil
}

// UpdateOrderStatus allows any of the five statuses to follow any other; no
// transition rules are enforced.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status string) (bool, error) {
	if !models.IsValidOrderStatus(status) {
		return false, apperrors.NewValidationError(fmt.Sprintf("invalid order status %q", status))
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return false, apperrors.NewInternalError("failed to update order status", err)
	}
	if !updated {
		s.logger.Warn("order status update for unknown order", zap.String("id", id))
	}
	return updated, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, apperrors.NewInternalError("failed to delete order", err)
	}
	if !deleted {
		s.logger.Warn("delete for unknown order", zap.String("id", id))
	}
	return deleted, nil
}

// SendPaymentLinkSMS composes the payment-link message and hands it to the
// SMS notifier. Delivery is best-effort: the outcome is reported, never an
// error.
func (s *OrderService) SendPaymentLinkSMS(ctx context.Context, mobile string, orderID string, paymentURL string) NotificationOutcome {
	message := fmt.Sprintf(
		"Your OushodCloud order %s has been received. Complete your payment here: %s",
		orderID, paymentURL)

	outcome := s.sms.SendSMS(ctx, mobile, message)
	if outcome == NotificationFailed {
		s.logger.Warn("payment link sms not delivered",
			zap.String("order_id", orderID),
			zap.String("mobile", mobile))
	}
	return outcome
}
