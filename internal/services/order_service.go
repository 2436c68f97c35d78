package services

import (
	"context"
	"time"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/dtos"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/repositories"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

// EnquiryNotifier alerts the sales team about a new enquiry.
type EnquiryNotifier interface {
	NotifyNewEnquiry(ctx context.Context, order *models.Order) error
}

type OrderService struct {
	orders   repositories.OrderRepository
	notifier EnquiryNotifier // nil when e-mail is not configured
}

func NewOrderService(orders repositories.OrderRepository, notifier EnquiryNotifier) *OrderService {
	return &OrderService{orders: orders, notifier: notifier}
}

// Create stores the enquiry with a generated reference number and
// fires the notification e-mail. Notification failures are logged and
// never fail the request; the enquiry is already persisted.
func (s *OrderService) Create(ctx context.Context, req dtos.CreateOrderRequest) (*models.Order, error) {
	now := time.Now().UTC()
	order := &models.Order{
		EnquiryNumber: "ENQ-" + utils.RandomUpperAlnumString(9),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Subject:       req.Subject,
		Message:       req.Message,
		ProductID:     req.ProductID,
		Status:        models.OrderStatusNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	if s.notifier != nil {
		if err := s.notifier.NotifyNewEnquiry(ctx, order); err != nil {
			utils.Logger.WithError(err).Warnf("Notification e-mail for enquiry %s failed", order.EnquiryNumber)
		}
	}
	return order, nil
}
