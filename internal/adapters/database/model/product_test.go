package model

import (
	"reflect"
	"testing"

	"github.com/rafaelleal24/ecommerce/internal/core/domain"
)

func TestProductChanges(t *testing.T) {
	title := "Cup"
	price := 0.0
	empty := ""

	tests := []struct {
		name  string
		patch domain.ProductPatch
		want  map[string]any
	}{
		{"empty patch", domain.ProductPatch{}, map[string]any{}},
		{"price only", domain.ProductPatch{Price: &price}, map[string]any{"price": 0.0}},
		{"title and image", domain.ProductPatch{Title: &title, Image: &empty}, map[string]any{"title": "Cup", "image": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProductChanges(tt.patch); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ProductChanges() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProduct_DomainConversion(t *testing.T) {
	p := &domain.Product{ID: 9, Title: "Mug", Price: 9.99, Description: "Ceramic mug", Image: "mug.png"}

	got := ToProductModel(p).ToDomain()

	if !reflect.DeepEqual(got, p) {
		t.Fatalf("expected %+v, got %+v", p, got)
	}
	if (Product{}).TableName() != "product" {
		t.Fatalf("expected table name product, got %q", (Product{}).TableName())
	}
}
