package service

import (
	"errors"
	"testing"

	"github.com/markethub-api/internal/constants"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/queue"
	"github.com/markethub-api/internal/repository"

	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t, &models.Order{}, &models.OrderItem{})
	client, err := queue.NewClient(nil) // disabled, enqueues are dropped
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	return NewOrderService(repository.NewOrderRepository(db), client), db
}

func TestOrderCreatePersistsOrderWithItems(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	order, err := svc.Create(CreateOrderInput{
		UserID:          1,
		VendorID:        2,
		TotalAmount:     models.MustMoney("129.98"),
		ShippingAddress: "123 Main St",
		Items: []CreateOrderItem{
			{ProductID: 10, Quantity: 1, Price: models.MustMoney("79.99")},
			{ProductID: 11, Quantity: 1, Price: models.MustMoney("49.99")},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("new order status want pending got %s", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("returned item count want 2 got %d", len(order.Items))
	}

	var itemCount int64
	if err := db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if itemCount != 2 {
		t.Fatalf("persisted item count want 2 got %d", itemCount)
	}
}

// failingOrderRepo wraps the real repository and fails the second line item
// insert, so the surrounding transaction must roll the whole order back.
type failingOrderRepo struct {
	repository.OrderRepository
	itemInserts *int
}

func (r *failingOrderRepo) CreateItem(item *models.OrderItem) error {
	*r.itemInserts++
	if *r.itemInserts >= 2 {
		return errors.New("simulated insert failure")
	}
	return r.OrderRepository.CreateItem(item)
}

func (r *failingOrderRepo) WithTx(tx *gorm.DB) repository.OrderRepository {
	return &failingOrderRepo{OrderRepository: r.OrderRepository.WithTx(tx), itemInserts: r.itemInserts}
}

func TestOrderCreateRollsBackWhenItemInsertFails(t *testing.T) {
	_, db := setupOrderServiceTest(t)

	inserts := 0
	repo := &failingOrderRepo{OrderRepository: repository.NewOrderRepository(db), itemInserts: &inserts}
	client, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	svc := NewOrderService(repo, client)

	_, err = svc.Create(CreateOrderInput{
		UserID:      1,
		VendorID:    2,
		TotalAmount: models.MustMoney("99.98"),
		Items: []CreateOrderItem{
			{ProductID: 10, Quantity: 1, Price: models.MustMoney("49.99")},
			{ProductID: 11, Quantity: 1, Price: models.MustMoney("49.99")},
		},
	})
	if err == nil {
		t.Fatalf("create should fail when an item insert fails")
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("order row should be rolled back, found %d", orderCount)
	}
	var itemCount int64
	if err := db.Model(&models.OrderItem{}).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if itemCount != 0 {
		t.Fatalf("item rows should be rolled back, found %d", itemCount)
	}
}

func TestOrderUpdateStatusValidatesInput(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	order, err := svc.Create(CreateOrderInput{
		UserID:      1,
		VendorID:    2,
		TotalAmount: models.MustMoney("10.00"),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	updated, err := svc.UpdateStatus(order.ID, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped {
		t.Fatalf("status want shipped got %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(order.ID, "cancelled"); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("unknown status want ErrInvalidOrderStatus got %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID+999, constants.OrderStatusCompleted); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order want ErrOrderNotFound got %v", err)
	}
}

func TestOrderListSplitsBuyerAndVendorViews(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	if _, err := svc.Create(CreateOrderInput{UserID: 1, VendorID: 2, TotalAmount: models.MustMoney("10.00")}); err != nil {
		t.Fatalf("create first order failed: %v", err)
	}
	if _, err := svc.Create(CreateOrderInput{UserID: 3, VendorID: 2, TotalAmount: models.MustMoney("20.00")}); err != nil {
		t.Fatalf("create second order failed: %v", err)
	}

	byUser, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(byUser) != 1 {
		t.Fatalf("user order count want 1 got %d", len(byUser))
	}

	byVendor, err := svc.ListByVendor(2)
	if err != nil {
		t.Fatalf("list by vendor failed: %v", err)
	}
	if len(byVendor) != 2 {
		t.Fatalf("vendor order count want 2 got %d", len(byVendor))
	}
}
