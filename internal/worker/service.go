package worker

import (
	"context"
	"errors"
	"time"

	"github.com/stylehaven/storefront/internal/config"
	"github.com/stylehaven/storefront/internal/logger"
	"github.com/stylehaven/storefront/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	cartCleanupInterval  = time.Hour
	defaultSessionTTLDay = 30
)

// Service 异步队列服务
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.CartSessionRepo != nil {
		go s.runCartCleanupLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runCartCleanupLoop 定期清理超过保留期的购物车会话
func (s *Service) runCartCleanupLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.CartSessionRepo == nil {
		return
	}
	ttlDay := defaultSessionTTLDay
	if s.consumer.Config != nil && s.consumer.Config.Cart.SessionTTLDay > 0 {
		ttlDay = s.consumer.Config.Cart.SessionTTLDay
	}
	runOnce := func() {
		before := time.Now().AddDate(0, 0, -ttlDay)
		deleted, err := s.consumer.CartSessionRepo.DeleteExpired(before)
		if err != nil {
			logger.Warnw("worker_cart_cleanup_failed", "error", err)
			return
		}
		if deleted > 0 {
			logger.Infow("worker_cart_cleanup_done", "deleted", deleted, "before", before)
		}
	}
	runOnce()

	ticker := time.NewTicker(cartCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
