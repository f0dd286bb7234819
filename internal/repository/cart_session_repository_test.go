package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stylehaven/storefront/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartSessionRepoTest(t *testing.T) (*GormCartSessionRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_session_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartSession{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCartSessionRepository(db), db
}

func TestCartSessionRepositorySaveAndLoad(t *testing.T) {
	repo, _ := setupCartSessionRepoTest(t)

	items := []models.CartLine{
		{
			ProductID: 1,
			Name:      "Classic White T-Shirt",
			Price:     models.NewMoneyFromString("24.99"),
			Quantity:  2,
			Variant:   &models.Variant{Size: "M", Color: "White"},
		},
	}
	if err := repo.Save("session-1", items); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := repo.Load("session-1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("items want 1 got %d", len(loaded))
	}
	if loaded[0].Price.String() != "24.99" {
		t.Fatalf("price want 24.99 got %s", loaded[0].Price.String())
	}
	if loaded[0].Variant == nil || loaded[0].Variant.Size != "M" {
		t.Fatalf("variant should round-trip, got %+v", loaded[0].Variant)
	}

	// 二次保存覆盖整个载荷
	if err := repo.Save("session-1", nil); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	loaded, err = repo.Load("session-1")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("items after overwrite want 0 got %d", len(loaded))
	}
}

func TestCartSessionRepositoryLoadUnknownSession(t *testing.T) {
	repo, _ := setupCartSessionRepoTest(t)

	items, err := repo.Load("missing")
	if err != nil {
		t.Fatalf("load unknown session failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("unknown session want empty got %d items", len(items))
	}
}

func TestCartSessionRepositoryMalformedPayload(t *testing.T) {
	repo, db := setupCartSessionRepoTest(t)

	session := models.CartSession{
		SessionID: "broken",
		Payload:   `{"half":`,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	items, err := repo.Load("broken")
	if err != nil {
		t.Fatalf("malformed payload should not error, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("malformed payload want empty cart got %d items", len(items))
	}
}

func TestCartSessionRepositoryDelete(t *testing.T) {
	repo, _ := setupCartSessionRepoTest(t)

	if err := repo.Save("s", []models.CartLine{{ProductID: 1, Quantity: 1, Price: models.NewMoneyFromString("1.00")}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Delete("s"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	items, err := repo.Load("s")
	if err != nil {
		t.Fatalf("load after delete failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("deleted session want empty got %d items", len(items))
	}
}

func TestCartSessionRepositoryDeleteExpired(t *testing.T) {
	repo, db := setupCartSessionRepoTest(t)

	old := models.CartSession{
		SessionID: "old",
		Payload:   "[]",
		CreatedAt: time.Now().AddDate(0, 0, -60),
		UpdatedAt: time.Now().AddDate(0, 0, -60),
	}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("seed old session failed: %v", err)
	}
	if err := repo.Save("fresh", nil); err != nil {
		t.Fatalf("save fresh session failed: %v", err)
	}

	deleted, err := repo.DeleteExpired(time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("delete expired failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted want 1 got %d", deleted)
	}

	var count int64
	if err := db.Model(&models.CartSession{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("remaining sessions want 1 got %d", count)
	}
}
