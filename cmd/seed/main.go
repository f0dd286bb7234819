package main

import (
	"github.com/stylehaven/storefront/internal/catalog"
	"github.com/stylehaven/storefront/internal/config"
	"github.com/stylehaven/storefront/internal/logger"
	"github.com/stylehaven/storefront/internal/models"
	"github.com/stylehaven/storefront/internal/repository"

	"github.com/google/uuid"
)

// 写入一个演示购物车会话，方便本地联调接口。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	items := demoCartLines()
	sessionID := uuid.NewString()
	repo := repository.NewCartSessionRepository(models.DB)
	if err := repo.Save(sessionID, items); err != nil {
		stdLog.Fatalf("Failed to seed cart session: %v", err)
	}

	stdLog.Printf("Seeded demo cart session: %s (%d items)", sessionID, len(items))
}

func demoCartLines() []models.CartLine {
	c := catalog.Default()
	lines := make([]models.CartLine, 0, 2)
	for _, pick := range []struct {
		productID uint
		quantity  int
	}{
		{productID: 1, quantity: 2},
		{productID: 3, quantity: 1},
	} {
		product := c.ProductByID(pick.productID)
		if product == nil {
			continue
		}
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		lines = append(lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     image,
			Quantity:  pick.quantity,
		})
	}
	return lines
}
