package queue

import (
	"encoding/json"
	"time"

	"github.com/stylehaven/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmation 订单确认通知任务
	TaskOrderConfirmation = constants.TaskOrderConfirmation
)

// OrderConfirmationPayload 订单确认任务载荷
type OrderConfirmationPayload struct {
	OrderNumber string    `json:"order_number"`
	Email       string    `json:"email"`
	Total       string    `json:"total"`
	ItemCount   int       `json:"item_count"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewOrderConfirmationTask 创建订单确认任务
func NewOrderConfirmationTask(payload OrderConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmation, body), nil
}
