package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stylehaven/storefront/internal/catalog"
	"github.com/stylehaven/storefront/internal/models"
	"github.com/stylehaven/storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartSession{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	repo := repository.NewCartSessionRepository(db)
	return NewCartService(repo, catalog.Default()), db
}

func TestCartServiceAddItemAndGet(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	view, err := svc.AddItem(AddCartItemInput{
		SessionID: "session-1",
		ProductID: 1,
		Quantity:  1,
		Variant:   &models.Variant{Size: "M", Color: "White"},
	})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(view.Items))
	}
	if view.Items[0].Name == "" || view.Items[0].Image == "" {
		t.Fatalf("line should snapshot product name and image, got %+v", view.Items[0])
	}
	if !view.Open {
		t.Fatalf("cart should be open after add")
	}

	// Get 走独立加载路径，结果应一致
	got, err := svc.Get("session-1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if got.Count != 1 {
		t.Fatalf("count want 1 got %d", got.Count)
	}
	if got.Subtotal.String() != view.Subtotal.String() {
		t.Fatalf("subtotal mismatch: %s vs %s", got.Subtotal.String(), view.Subtotal.String())
	}
}

func TestCartServiceAddItemMergeScenario(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s", ProductID: 1, Quantity: 1}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	view, err := svc.AddItem(AddCartItemInput{SessionID: "s", ProductID: 1, Quantity: 2})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 3 {
		t.Fatalf("quantity want 3 got %d", view.Items[0].Quantity)
	}
	if view.Subtotal.String() != "74.97" {
		t.Fatalf("subtotal want 74.97 got %s", view.Subtotal.String())
	}
}

func TestCartServiceAddItemValidation(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s", ProductID: 0, Quantity: 1}); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("zero product id want ErrCartItemInvalid got %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s", ProductID: 1, Quantity: 0}); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("zero quantity want ErrCartItemInvalid got %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s", ProductID: 999, Quantity: 1}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product want ErrProductNotFound got %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{SessionID: "", ProductID: 1, Quantity: 1}); !errors.Is(err, ErrCartSessionMissing) {
		t.Fatalf("empty session want ErrCartSessionMissing got %v", err)
	}
}

func TestCartServiceUpdateAndRemove(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s", ProductID: 1, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	view, err := svc.UpdateQuantity("s", 1, 0)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if view.Items[0].Quantity != 2 {
		t.Fatalf("quantity after no-op update want 2 got %d", view.Items[0].Quantity)
	}

	view, err = svc.RemoveItem("s", 1)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("items after remove want 0 got %d", len(view.Items))
	}

	// 重复删除保持幂等
	view, err = svc.RemoveItem("s", 1)
	if err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
	if view.Count != 0 {
		t.Fatalf("count after second remove want 0 got %d", view.Count)
	}
}

func TestCartServiceClear(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s", ProductID: 1, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s", ProductID: 2, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	view, err := svc.Clear("s")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if view.Count != 0 {
		t.Fatalf("count after clear want 0 got %d", view.Count)
	}
	if view.Subtotal.String() != "0.00" {
		t.Fatalf("subtotal after clear want 0.00 got %s", view.Subtotal.String())
	}
}

func TestCartServiceMalformedPayloadTreatedAsEmpty(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	session := models.CartSession{
		SessionID: "broken",
		Payload:   "{not-json",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("seed broken session failed: %v", err)
	}

	view, err := svc.Get("broken")
	if err != nil {
		t.Fatalf("malformed payload should not propagate error, got %v", err)
	}
	if view.Count != 0 || len(view.Items) != 0 {
		t.Fatalf("malformed payload should load as empty cart, got %+v", view)
	}
}
