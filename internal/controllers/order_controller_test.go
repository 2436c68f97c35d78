package controllers

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/dtos"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/routes"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/services"
)

type fakeNotifier struct {
	notified []*models.Order
	err      error
}

func (f *fakeNotifier) NotifyNewEnquiry(ctx context.Context, order *models.Order) error {
	f.notified = append(f.notified, order)
	return f.err
}

func newOrderRouter(repo *fakeCrudRepo[models.Order], notifier services.EnquiryNotifier) *mux.Router {
	ctrl := NewOrderController(services.NewOrderService(repo, notifier), repo)
	router := mux.NewRouter()
	router.HandleFunc(routes.Orders, ctrl.ListOrders).Methods(http.MethodGet)
	router.HandleFunc(routes.OrderByID, ctrl.GetOrder).Methods(http.MethodGet)
	router.HandleFunc(routes.Orders, ctrl.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc(routes.OrderByID, ctrl.UpdateOrder).Methods(http.MethodPut)
	router.HandleFunc(routes.OrderByID, ctrl.DeleteOrder).Methods(http.MethodDelete)
	return router
}

var enquiryNumberPattern = regexp.MustCompile(`^ENQ-[A-Z0-9]{9}$`)

func TestCreateOrder(t *testing.T) {
	repo := newFakeCrudRepo[models.Order]()
	notifier := &fakeNotifier{}
	router := newOrderRouter(repo, notifier)

	rec := doRequest(t, router, http.MethodPost, routes.Orders, dtos.CreateOrderRequest{
		Name:    "A. Kazmi",
		Email:   "a.kazmi@example.com",
		Phone:   "+971500000000",
		Subject: "Conveyor retrofit quote",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dtos.CreateOrderResponse
	decodeBody(t, rec, &created)
	require.True(t, created.Success)
	require.Regexp(t, enquiryNumberPattern, created.Order.EnquiryNumber)
	require.Equal(t, models.OrderStatusNew, created.Order.Status)
	require.False(t, created.Order.ID.IsZero())

	require.Len(t, notifier.notified, 1)
	require.Equal(t, created.Order.EnquiryNumber, notifier.notified[0].EnquiryNumber)
}

func TestCreateOrderInvalidEmail(t *testing.T) {
	repo := newFakeCrudRepo[models.Order]()
	router := newOrderRouter(repo, nil)

	rec := doRequest(t, router, http.MethodPost, routes.Orders, map[string]any{
		"name":  "A. Kazmi",
		"email": "not-an-address",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Email must be a valid email address", errorBody(t, rec).Error)
	require.Empty(t, repo.docs)
}

// A broken notification channel must never lose the enquiry.
func TestCreateOrderNotifierFailureIsSwallowed(t *testing.T) {
	repo := newFakeCrudRepo[models.Order]()
	notifier := &fakeNotifier{err: errors.New("smtp relay down")}
	router := newOrderRouter(repo, notifier)

	rec := doRequest(t, router, http.MethodPost, routes.Orders, dtos.CreateOrderRequest{
		Name:  "A. Kazmi",
		Email: "a.kazmi@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.docs, 1)
}

// Only the workable fields are updatable; the reference number is fixed
// for the life of the enquiry.
func TestUpdateOrderIgnoresEnquiryNumber(t *testing.T) {
	repo := newFakeCrudRepo[models.Order]()
	router := newOrderRouter(repo, nil)

	id, err := repo.Insert(context.Background(), &models.Order{
		EnquiryNumber: "ENQ-AAAAAAAAA",
		Name:          "A. Kazmi",
		Email:         "a.kazmi@example.com",
		Status:        models.OrderStatusNew,
	})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPut, routes.Orders+"/"+id.Hex(), map[string]any{
		"status":        "contacted",
		"enquiryNumber": "ENQ-HACKED000",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	fields := repo.updates[id]
	require.Equal(t, "contacted", fields["status"])
	require.NotContains(t, fields, "enquiryNumber")
}
