package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/stylehaven/storefront/internal/logger"
	"github.com/stylehaven/storefront/internal/provider"
	"github.com/stylehaven/storefront/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmation, c.handleOrderConfirmation)
}

// handleOrderConfirmation 处理订单确认任务。
// 没有真实邮件通道，确认以结构化日志形式落地。
func (c *Consumer) handleOrderConfirmation(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.OrderNumber) == "" {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_number", payload.OrderNumber)
		return nil
	}
	logger.Infow("worker_order_confirmation_delivered",
		"order_number", payload.OrderNumber,
		"email", payload.Email,
		"total", payload.Total,
		"item_count", payload.ItemCount,
		"submitted_at", payload.SubmittedAt,
	)
	return nil
}
