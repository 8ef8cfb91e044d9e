//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"dealerhub/internal/domain"
	"dealerhub/internal/shared"
	mysqlrepo "dealerhub/internal/storage/mysql"
)

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=dealerhub",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/dealerhub?parseTime=true&charset=utf8mb4,utf8&loc=UTC", hostPort)

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepo_MySQL_CatalogAndUsers(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// migrations are rerunnable
	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("migrate second run: %v", err)
	}

	n, err := repo.CountMakes(ctx)
	if err != nil || n != 0 {
		t.Fatalf("fresh store: count=%d err=%v", n, err)
	}

	seeds := shared.CatalogFixture()

	// concurrent first seeds must not duplicate rows (INSERT IGNORE)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.SeedCatalog(ctx, seeds); err != nil {
				t.Errorf("seed: %v", err)
			}
		}()
	}
	wg.Wait()

	cars, err := repo.ListCars(ctx)
	if err != nil {
		t.Fatalf("list cars: %v", err)
	}
	var wantModels int
	for _, s := range seeds {
		wantModels += len(s.Models)
	}
	if len(cars) != wantModels {
		t.Fatalf("expected %d models after concurrent seeds, got %d", wantModels, len(cars))
	}
	n, _ = repo.CountMakes(ctx)
	if n != len(seeds) {
		t.Fatalf("expected %d makes, got %d", len(seeds), n)
	}

	// users: unique key rejects duplicates
	u := domain.User{Username: "ana", PasswordHash: "$2a$10$fakehash", Email: "ana@example.com"}
	if _, err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := repo.CreateUser(ctx, u); !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
	got, err := repo.GetUserByUsername(ctx, "ana")
	if err != nil || got.Username != "ana" || got.PasswordHash != u.PasswordHash {
		t.Fatalf("get user: %+v err=%v", got, err)
	}
	if _, err := repo.GetUserByUsername(ctx, "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
