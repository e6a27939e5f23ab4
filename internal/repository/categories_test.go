package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/linkboard/linkboard/internal/models"
)

func setupCategoryMock(t *testing.T) (*PostgresCategoryOrderRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresCategoryOrderRepository(db)
	cleanup := func() {
		db.Close()
	}
	return repo, mock, cleanup
}

func TestGetAll_OrderedByIndex(t *testing.T) {
	repo, mock, cleanup := setupCategoryMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"category_name", "order_index"}).
		AddRow("Dev", 0).
		AddRow("Ops", 1)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT category_name, order_index FROM category_order ORDER BY order_index`)).
		WillReturnRows(rows)

	orders, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || orders[0].CategoryName != "Dev" || orders[1].OrderIndex != 1 {
		t.Errorf("unexpected orders: %+v", orders)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUpsert_WritesEveryEntry(t *testing.T) {
	repo, mock, cleanup := setupCategoryMock(t)
	defer cleanup()

	entries := []models.CategoryOrder{
		{CategoryName: "Dev", OrderIndex: 0},
		{CategoryName: "Ops", OrderIndex: 1},
	}

	mock.ExpectBegin()
	for _, co := range entries {
		mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (category_name) DO UPDATE SET order_index = EXCLUDED.order_index`)).
			WithArgs(co.CategoryName, co.OrderIndex).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	if err := repo.Upsert(context.Background(), entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDelete_AbsentEntryIsNoError(t *testing.T) {
	repo, mock, cleanup := setupCategoryMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM category_order WHERE category_name = $1`)).
		WithArgs("Gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "Gone"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnsureExists_AppendsAfterMax(t *testing.T) {
	repo, mock, cleanup := setupCategoryMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(order_index), -1) FROM category_order`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4))
	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (category_name) DO NOTHING`)).
		WithArgs("Monitoring", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.EnsureExists(context.Background(), "Monitoring"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestEnsureExists_EmptyTableStartsAtZero(t *testing.T) {
	repo, mock, cleanup := setupCategoryMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(order_index), -1) FROM category_order`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(-1))
	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (category_name) DO NOTHING`)).
		WithArgs("Dev", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.EnsureExists(context.Background(), "Dev"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSync_AppendsMissingCategories(t *testing.T) {
	repo, mock, cleanup := setupCategoryMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT category FROM dashboard_items WHERE category IS NOT NULL`)).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Dev").AddRow("Ops"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(order_index), -1) FROM category_order`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(2))
	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (category_name) DO NOTHING`)).
		WithArgs("Dev", 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (category_name) DO NOTHING`)).
		WithArgs("Ops", 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Sync(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestSync_QueryError(t *testing.T) {
	repo, mock, cleanup := setupCategoryMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT category FROM dashboard_items`)).
		WillReturnError(errors.New("connection reset"))

	if err := repo.Sync(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
