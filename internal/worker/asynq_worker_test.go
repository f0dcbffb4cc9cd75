package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/markethub-api/internal/config"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/provider"
	"github.com/markethub-api/internal/queue"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Vendor{}, &models.Order{}, &models.OrderItem{}, &models.Message{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{
		Auth: config.AuthConfig{BcryptCost: bcrypt.MinCost},
		JWT:  config.JWTConfig{SecretKey: "worker-test-secret", ExpireHours: 1},
	}
	return NewConsumer(provider.NewContainer(cfg)), db
}

func orderEmailTask(t *testing.T, payload queue.OrderStatusEmailPayload) *asynq.Task {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return asynq.NewTask(queue.TaskOrderStatusEmail, raw)
}

func TestOrderStatusEmailRejectsMalformedPayload(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	task := asynq.NewTask(queue.TaskOrderStatusEmail, []byte("{not json"))
	if err := consumer.handleOrderStatusEmail(context.Background(), task); err == nil {
		t.Fatalf("malformed payload should fail the task")
	}
}

func TestOrderStatusEmailSkipsMissingOrder(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	// zero id and unknown id both drop the task without retrying
	if err := consumer.handleOrderStatusEmail(context.Background(), orderEmailTask(t, queue.OrderStatusEmailPayload{})); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}
	if err := consumer.handleOrderStatusEmail(context.Background(), orderEmailTask(t, queue.OrderStatusEmailPayload{OrderID: 9999})); err != nil {
		t.Fatalf("unknown order should be skipped, got %v", err)
	}
}

func TestOrderStatusEmailSkipsWhenSMTPDisabled(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	user := &models.User{Username: "buyer", Email: "buyer@example.com", Password: "x", FirstName: "B", LastName: "U"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	total, err := models.NewMoneyFromString("59.99")
	if err != nil {
		t.Fatalf("parse amount failed: %v", err)
	}
	order := &models.Order{UserID: user.ID, VendorID: 1, TotalAmount: total, Status: "shipped", ShippingAddress: "1 Pier Rd"}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	task := orderEmailTask(t, queue.OrderStatusEmailPayload{OrderID: order.ID, Status: "shipped"})
	if err := consumer.handleOrderStatusEmail(context.Background(), task); err != nil {
		t.Fatalf("disabled smtp should drop the task, got %v", err)
	}
}

func TestContactMessageSkipsWhenChainIncomplete(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	payload, _ := json.Marshal(queue.ContactMessagePayload{MessageID: 123})
	task := asynq.NewTask(queue.TaskContactMessage, payload)
	if err := consumer.handleContactMessage(context.Background(), task); err != nil {
		t.Fatalf("unknown message should be skipped, got %v", err)
	}

	// message pointing at a vendor that no longer exists
	message := &models.Message{VendorID: 777, SenderName: "Anna", SenderEmail: "anna@example.com", Subject: "Hi", Message: "Hello"}
	if err := db.Create(message).Error; err != nil {
		t.Fatalf("create message failed: %v", err)
	}
	payload, _ = json.Marshal(queue.ContactMessagePayload{MessageID: message.ID})
	if err := consumer.handleContactMessage(context.Background(), asynq.NewTask(queue.TaskContactMessage, payload)); err != nil {
		t.Fatalf("orphaned message should be skipped, got %v", err)
	}
}
