package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-inventory/inventory/internal/errs"
	"github.com/Astemirdum/book-inventory/inventory/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, inInventory bool) ([]model.Book, error)
	CountBooks(ctx context.Context, inInventory bool) (int, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	ToggleInventory(ctx context.Context, id int) (model.Book, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName = `books`
	returning      = `returning id, title, author, number_of_pages, in_inventory`
)

var (
	qb          = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	bookColumns = []string{"id", "title", "author", "number_of_pages", "in_inventory"}
)

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, inInventory bool) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"in_inventory": inInventory}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return books, nil
}

func (r *repository) CountBooks(ctx context.Context, inInventory bool) (int, error) {
	query, args, err := qb.Select("count(*)").
		From(booksTableName).
		Where(sq.Eq{"in_inventory": inInventory}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "number_of_pages", "in_inventory").
		Values(book.Title, book.Author, book.NumberOfPages, book.InInventory).
		Suffix(returning).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	created, err := r.collectOne(ctx, query, args...)
	if err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Book{}, err
	}
	return created, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q := `
update books
    set title = @title, author = @author, number_of_pages = @number_of_pages
where id = @id
` + returning
	args := pgx.NamedArgs{
		"id":              book.ID,
		"title":           book.Title,
		"author":          book.Author,
		"number_of_pages": book.NumberOfPages,
	}
	return r.collectOne(ctx, q, args)
}

func (r *repository) ToggleInventory(ctx context.Context, id int) (model.Book, error) {
	q := `
update books
    set in_inventory = not in_inventory
where id = @id
` + returning
	return r.collectOne(ctx, q, pgx.NamedArgs{"id": id})
}

func (r *repository) collectOne(ctx context.Context, query string, args ...any) (model.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, mapErr(err)
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return model.Book{}, mapErr(err)
	}
	return book, nil
}

func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
		return errors.Wrap(errs.ErrInvalidBook, pgErr.ConstraintName)
	}
	return err
}
