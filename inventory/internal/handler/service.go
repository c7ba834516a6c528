package handler

import (
	"context"

	"github.com/Astemirdum/book-inventory/inventory/internal/model"
	"github.com/Astemirdum/book-inventory/inventory/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	ListInventory(ctx context.Context, showAll bool) (model.BookList, error)
	GetDetail(ctx context.Context, id int) (model.BookDetail, error)
	GetEditForm(ctx context.Context, id int) (model.BookEditForm, error)
	CreateBook(ctx context.Context, form model.BookCreateForm) (model.Book, error)
	UpdateBook(ctx context.Context, form model.BookEditForm) (model.Book, error)
	ToggleInventoryStatus(ctx context.Context, id int) (model.ToggleResult, error)
}

var _ BookService = (*service.Service)(nil)
