package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stylehaven/storefront/internal/provider"
	"github.com/stylehaven/storefront/internal/queue"

	"github.com/hibiken/asynq"
)

func TestHandleOrderConfirmation(t *testing.T) {
	c := NewConsumer(&provider.Container{})

	task, err := queue.NewOrderConfirmationTask(queue.OrderConfirmationPayload{
		OrderNumber: "#STH123456",
		Email:       "ada@example.com",
		Total:       "80.97",
		ItemCount:   3,
		SubmittedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := c.handleOrderConfirmation(context.Background(), task); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
}

func TestHandleOrderConfirmationSkipsInvalid(t *testing.T) {
	c := NewConsumer(&provider.Container{})

	// nil 任务直接跳过
	if err := c.handleOrderConfirmation(context.Background(), nil); err != nil {
		t.Fatalf("nil task want nil err got %v", err)
	}

	// 空订单号跳过但不失败
	task, err := queue.NewOrderConfirmationTask(queue.OrderConfirmationPayload{})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := c.handleOrderConfirmation(context.Background(), task); err != nil {
		t.Fatalf("blank order number want nil err got %v", err)
	}

	// 非法载荷报错
	bad := asynq.NewTask(queue.TaskOrderConfirmation, []byte("{not-json"))
	if err := c.handleOrderConfirmation(context.Background(), bad); err == nil {
		t.Fatalf("malformed payload want error got nil")
	}
}
