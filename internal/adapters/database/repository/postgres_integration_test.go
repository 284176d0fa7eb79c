//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/rafaelleal24/ecommerce/internal/adapters/config"
	"github.com/rafaelleal24/ecommerce/internal/adapters/database"
	"github.com/rafaelleal24/ecommerce/internal/adapters/database/repository"
	"github.com/rafaelleal24/ecommerce/internal/core/domain"
	"github.com/rafaelleal24/ecommerce/internal/core/serviceerrors"
)

func TestProductRepository_Postgres(t *testing.T) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("shop"),
		tcpostgres.WithUsername("shop"),
		tcpostgres.WithPassword("shop"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := database.NewConnection(config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		DSN:             dsn,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	repo := repository.NewProductRepository(db)

	product := domain.NewProduct("Mug", 9.99, "Ceramic mug", "mug.png")
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	title := "Big mug"
	updated, err := repo.Update(ctx, product.ID, domain.ProductPatch{Title: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Big mug" || updated.Price != 9.99 {
		t.Fatalf("unexpected product after update %+v", updated)
	}

	if err := repo.Delete(ctx, product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(ctx, product.ID); !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		t.Fatalf("expected KindNotFound on second delete, got %v", err)
	}
}
