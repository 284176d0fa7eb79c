package domain

import (
	"testing"
	"time"
)

func TestNewProduct(t *testing.T) {
	p := NewProduct("Mug", 9.99, "Ceramic mug", "mug.png")

	if p.Title != "Mug" {
		t.Fatalf("expected title 'Mug', got %q", p.Title)
	}
	if p.Price != 9.99 {
		t.Fatalf("expected price 9.99, got %v", p.Price)
	}
	if p.Description != "Ceramic mug" {
		t.Fatalf("expected description 'Ceramic mug', got %q", p.Description)
	}
	if p.Image != "mug.png" {
		t.Fatalf("expected image 'mug.png', got %q", p.Image)
	}
	if p.ID != 0 {
		t.Fatalf("expected zero ID before persistence, got %d", p.ID)
	}
}

func TestProductPatch_IsEmpty(t *testing.T) {
	title := "Cup"
	price := 5.0

	tests := []struct {
		name  string
		patch ProductPatch
		want  bool
	}{
		{"no fields", ProductPatch{}, true},
		{"title only", ProductPatch{Title: &title}, false},
		{"price only", ProductPatch{Price: &price}, false},
		{"all fields", ProductPatch{Title: &title, Price: &price, Description: &title, Image: &title}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.patch.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewProductEvent(t *testing.T) {
	before := time.Now().UTC()
	p := &Product{ID: 3, Title: "Mug", Price: 9.99, Description: "Ceramic mug", Image: "mug.png"}

	e := NewProductEvent(ProductUpdatedEvent, p)

	if e.GetName() != "product.updated" {
		t.Fatalf("expected name product.updated, got %q", e.GetName())
	}
	if e.GetEntityName() != "product" {
		t.Fatalf("expected entity product, got %q", e.GetEntityName())
	}
	if e.Product.ID != 3 || e.Product.Title != "Mug" || e.Product.Image != "mug.png" {
		t.Fatalf("unexpected snapshot %+v", e.Product)
	}
	if e.OccurredAt.Before(before) {
		t.Fatalf("OccurredAt %v is before %v", e.OccurredAt, before)
	}

	// later changes to the product must not leak into the snapshot
	p.Title = "Changed"
	if e.Product.Title != "Mug" {
		t.Fatalf("snapshot changed with product: %q", e.Product.Title)
	}
}
