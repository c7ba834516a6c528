package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/book-inventory/inventory/internal/errs"
	"github.com/Astemirdum/book-inventory/inventory/internal/model"
	inventoryRepo "github.com/Astemirdum/book-inventory/inventory/internal/repository"
	"github.com/Astemirdum/book-inventory/pkg/kafka"
	"github.com/Astemirdum/book-inventory/pkg/validate"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Publisher interface {
	Publish(ctx context.Context, event kafka.EventInventory) error
}

type Service struct {
	log       *zap.Logger
	repo      inventoryRepo.Repository
	publisher Publisher
	validator *validate.CustomValidator
}

func NewService(repo inventoryRepo.Repository, publisher Publisher, log *zap.Logger) *Service {
	return &Service{
		log:       log.Named("service"),
		repo:      repo,
		publisher: publisher,
		validator: validate.NewCustomValidator(),
	}
}

// ListInventory returns the books on the shelf with both counts. Removed books
// are only listed when showAll is set.
func (s *Service) ListInventory(ctx context.Context, showAll bool) (model.BookList, error) {
	var (
		list    model.BookList
		in, out []model.Book
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		in, err = s.repo.ListBooks(ctx, true)
		return err
	})
	gg.Go(func() (err error) {
		list.NumberOfBooksInInventory, err = s.repo.CountBooks(ctx, true)
		return err
	})
	gg.Go(func() (err error) {
		list.NumberOfBooksNotInInventory, err = s.repo.CountBooks(ctx, false)
		return err
	})
	if showAll {
		gg.Go(func() (err error) {
			out, err = s.repo.ListBooks(ctx, false)
			return err
		})
	}
	if err := gg.Wait(); err != nil {
		return model.BookList{}, err
	}

	list.Books = summaries(in)
	if showAll {
		list.BooksNotInInventory = summaries(out)
	}
	return list, nil
}

func summaries(books []model.Book) []model.BookSummary {
	items := make([]model.BookSummary, 0, len(books))
	for _, b := range books {
		items = append(items, b.Summary())
	}
	return items
}

func (s *Service) GetDetail(ctx context.Context, id int) (model.BookDetail, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.BookDetail{}, err
	}
	return book.Detail(), nil
}

func (s *Service) GetEditForm(ctx context.Context, id int) (model.BookEditForm, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.BookEditForm{}, err
	}
	return book.EditForm(), nil
}

// CreateBook stores a new book. New books always start in inventory.
func (s *Service) CreateBook(ctx context.Context, form model.BookCreateForm) (model.Book, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Author = strings.TrimSpace(form.Author)
	if err := s.validate(form); err != nil {
		return model.Book{}, err
	}

	book, err := s.repo.CreateBook(ctx, model.Book{
		Title:         form.Title,
		Author:        form.Author,
		NumberOfPages: form.NumberOfPages,
		InInventory:   true,
	})
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, kafka.NewEventInventory(kafka.BookCreated, book.ID, book.Title, book.InInventory))
	return book, nil
}

// UpdateBook overwrites title, author and page count. The inventory flag is left as is.
func (s *Service) UpdateBook(ctx context.Context, form model.BookEditForm) (model.Book, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Author = strings.TrimSpace(form.Author)
	if err := s.validate(form); err != nil {
		return model.Book{}, err
	}

	book, err := s.repo.UpdateBook(ctx, model.Book{
		ID:            form.ID,
		Title:         form.Title,
		Author:        form.Author,
		NumberOfPages: form.NumberOfPages,
	})
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, kafka.NewEventInventory(kafka.BookUpdated, book.ID, book.Title, book.InInventory))
	return book, nil
}

// ToggleInventoryStatus flips the inventory flag. Calling it twice restores the
// original state.
func (s *Service) ToggleInventoryStatus(ctx context.Context, id int) (model.ToggleResult, error) {
	book, err := s.repo.ToggleInventory(ctx, id)
	if err != nil {
		return model.ToggleResult{}, err
	}
	typ := kafka.BookRemoved
	if book.InInventory {
		typ = kafka.BookRestored
	}
	s.publish(ctx, kafka.NewEventInventory(typ, book.ID, book.Title, book.InInventory))
	return model.ToggleResult{
		ID:          book.ID,
		Title:       book.Title,
		InInventory: book.InInventory,
	}, nil
}

func (s *Service) validate(form any) error {
	err := s.validator.Validate(form)
	if err == nil {
		return nil
	}
	if fields := validate.FieldErrors(err); len(fields) > 0 {
		return &errs.ValidationError{Fields: fields}
	}
	return err
}

func (s *Service) publish(ctx context.Context, event kafka.EventInventory) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish inventory event",
			zap.String("type", string(event.Type)),
			zap.Int("bookID", event.BookID),
			zap.Error(err))
	}
}
