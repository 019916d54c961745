package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/userdesk/internal/server/models"
	"github.com/dmitrijs2005/userdesk/internal/shared"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "phone", "created_at"})
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
}

const (
	qList   = `(?s)^SELECT\s+id,\s*name,\s*email,\s*phone,\s*created_at\s+FROM\s+users\s+ORDER\s+BY\s+created_at\s+DESC,\s*id\s+DESC\s*$`
	qGet    = `(?s)^SELECT\s+id,\s*name,\s*email,\s*phone,\s*created_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
	qInsert = `(?s)^INSERT\s+INTO\s+users\s*\(name,\s*email,\s*phone\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*name,\s*email,\s*phone,\s*created_at\s*$`
	qUpdate = `(?s)^UPDATE\s+users\s+SET\s+name\s*=\s*\$1,\s*email\s*=\s*\$2,\s*phone\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$4\s+RETURNING\s+id,\s*name,\s*email,\s*phone,\s*created_at\s*$`
	qDelete = `(?s)^DELETE\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
)

func TestList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := userRows().
		AddRow(int64(2), "Bob", "bob@x.com", nil, now).
		AddRow(int64(1), "Ana", "ana@x.com", "123", now.Add(-time.Hour))
	mock.ExpectQuery(qList).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 users, got %d", len(got))
	}
	if got[0].ID != 2 || got[0].Phone != nil {
		t.Fatalf("unexpected first user: %+v", got[0])
	}
	if got[1].Phone == nil || *got[1].Phone != "123" {
		t.Fatalf("unexpected second user phone: %+v", got[1].Phone)
	}
}

func TestList_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qList).WillReturnRows(userRows())

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qList).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qGet).
		WithArgs(int64(7)).
		WillReturnRows(userRows().AddRow(int64(7), "Ana", "ana@x.com", "123", time.Now()))

	got, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != 7 || got.Name != "Ana" || got.Email != "ana@x.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qGet).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("want shared.ErrorNotFound, got %v", err)
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	phone := "123"
	mock.ExpectQuery(qInsert).
		WithArgs("Ana", "ana@x.com", "123").
		WillReturnRows(userRows().AddRow(int64(1), "Ana", "ana@x.com", "123", time.Now()))

	got, err := repo.Create(context.Background(), &models.User{Name: "Ana", Email: "ana@x.com", Phone: &phone})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 1 || got.CreatedAt.IsZero() {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).
		WithArgs("Ana", "ana@x.com", nil).
		WillReturnError(uniqueViolation())

	_, err := repo.Create(context.Background(), &models.User{Name: "Ana", Email: "ana@x.com"})
	if !errors.Is(err, shared.ErrorAlreadyExists) {
		t.Fatalf("want shared.ErrorAlreadyExists, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qUpdate).
		WithArgs("Ana", "ana@x.com", nil, int64(1)).
		WillReturnRows(userRows().AddRow(int64(1), "Ana", "ana@x.com", nil, time.Now()))

	got, err := repo.Update(context.Background(), &models.User{ID: 1, Name: "Ana", Email: "ana@x.com"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.ID != 1 || got.Phone != nil {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qUpdate).
		WithArgs("Ana", "ana@x.com", nil, int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.User{ID: 99, Name: "Ana", Email: "ana@x.com"})
	if !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("want shared.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qUpdate).
		WithArgs("Ana", "taken@x.com", nil, int64(1)).
		WillReturnError(uniqueViolation())

	_, err := repo.Update(context.Background(), &models.User{ID: 1, Name: "Ana", Email: "taken@x.com"})
	if !errors.Is(err, shared.ErrorAlreadyExists) {
		t.Fatalf("want shared.ErrorAlreadyExists, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(qDelete).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(qDelete).WithArgs(int64(99)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("want shared.ErrorNotFound, got %v", err)
	}
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(qDelete).WithArgs(int64(1)).WillReturnError(errors.New("db down"))

	err := repo.Delete(context.Background(), 1)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
