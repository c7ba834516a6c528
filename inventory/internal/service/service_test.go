package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-inventory/inventory/internal/errs"
	"github.com/Astemirdum/book-inventory/inventory/internal/model"
	repo_mocks "github.com/Astemirdum/book-inventory/inventory/internal/repository/mocks"
	"github.com/Astemirdum/book-inventory/inventory/internal/service"
	service_mocks "github.com/Astemirdum/book-inventory/inventory/internal/service/mocks"
	"github.com/Astemirdum/book-inventory/pkg/kafka"
)

type eventMatcher struct {
	typ         kafka.EventType
	bookID      int
	inInventory bool
}

func eventOf(typ kafka.EventType, bookID int, inInventory bool) gomock.Matcher {
	return eventMatcher{typ: typ, bookID: bookID, inInventory: inInventory}
}

func (m eventMatcher) Matches(x interface{}) bool {
	e, ok := x.(kafka.EventInventory)
	if !ok {
		return false
	}
	return e.Type == m.typ && e.BookID == m.bookID && e.InInventory == m.inInventory && e.EventID != ""
}

func (m eventMatcher) String() string {
	return fmt.Sprintf("event %s for book %d (inInventory=%v)", m.typ, m.bookID, m.inInventory)
}

type deps struct {
	repo      *repo_mocks.MockRepository
	publisher *service_mocks.MockPublisher
}

func newService(t *testing.T) (*service.Service, deps) {
	c := gomock.NewController(t)
	d := deps{
		repo:      repo_mocks.NewMockRepository(c),
		publisher: service_mocks.NewMockPublisher(c),
	}
	return service.NewService(d.repo, d.publisher, zap.NewNop()), d
}

var dune = model.Book{ID: 1, Title: "Dune", Author: "Herbert", NumberOfPages: 412, InInventory: true}

func TestService_CreateBook(t *testing.T) {
	t.Parallel()
	dbErr := errors.New("db internal")

	tests := []struct {
		name         string
		form         model.BookCreateForm
		mockBehavior func(d deps)
		want         model.Book
		wantErr      error
		wantFields   map[string]string
	}{
		{
			name: "ok",
			form: model.BookCreateForm{Title: "  Dune ", Author: "Herbert", NumberOfPages: 412},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().
					CreateBook(gomock.Any(), model.Book{Title: "Dune", Author: "Herbert", NumberOfPages: 412, InInventory: true}).
					Return(dune, nil)
				d.publisher.EXPECT().Publish(gomock.Any(), eventOf(kafka.BookCreated, 1, true)).Return(nil)
			},
			want: dune,
		},
		{
			name: "ok. publish failure is not fatal",
			form: model.BookCreateForm{Title: "Dune", Author: "Herbert", NumberOfPages: 412},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(dune, nil)
				d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			want: dune,
		},
		{
			name:         "err. empty fields",
			form:         model.BookCreateForm{Title: "   ", Author: "", NumberOfPages: 0},
			mockBehavior: func(d deps) {},
			wantFields: map[string]string{
				"title":         "title is required",
				"author":        "author is required",
				"numberOfPages": "numberOfPages must be greater than 0",
			},
		},
		{
			name:         "err. negative pages",
			form:         model.BookCreateForm{Title: "Dune", Author: "Herbert", NumberOfPages: -3},
			mockBehavior: func(d deps) {},
			wantFields:   map[string]string{"numberOfPages": "numberOfPages must be greater than 0"},
		},
		{
			name: "err. storage",
			form: model.BookCreateForm{Title: "Dune", Author: "Herbert", NumberOfPages: 412},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(model.Book{}, dbErr)
			},
			wantErr: dbErr,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newService(t)
			tt.mockBehavior(d)

			got, err := svc.CreateBook(context.Background(), tt.form)
			switch {
			case tt.wantFields != nil:
				var verr *errs.ValidationError
				require.True(t, errors.As(err, &verr), err)
				require.Equal(t, tt.wantFields, verr.ByField())
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestService_UpdateBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		form         model.BookEditForm
		mockBehavior func(d deps)
		want         model.Book
		wantErr      error
		wantFields   map[string]string
	}{
		{
			name: "ok. removed book stays removed",
			form: model.BookEditForm{ID: 3, Title: "Dune Messiah", Author: "Herbert", NumberOfPages: 256},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().
					UpdateBook(gomock.Any(), model.Book{ID: 3, Title: "Dune Messiah", Author: "Herbert", NumberOfPages: 256}).
					Return(model.Book{ID: 3, Title: "Dune Messiah", Author: "Herbert", NumberOfPages: 256, InInventory: false}, nil)
				d.publisher.EXPECT().Publish(gomock.Any(), eventOf(kafka.BookUpdated, 3, false)).Return(nil)
			},
			want: model.Book{ID: 3, Title: "Dune Messiah", Author: "Herbert", NumberOfPages: 256, InInventory: false},
		},
		{
			name:         "err. empty title",
			form:         model.BookEditForm{ID: 3, Title: "", Author: "Herbert", NumberOfPages: 256},
			mockBehavior: func(d deps) {},
			wantFields:   map[string]string{"title": "title is required"},
		},
		{
			name: "err. not found",
			form: model.BookEditForm{ID: 999999, Title: "Dune", Author: "Herbert", NumberOfPages: 412},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().UpdateBook(gomock.Any(), gomock.Any()).Return(model.Book{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newService(t)
			tt.mockBehavior(d)

			got, err := svc.UpdateBook(context.Background(), tt.form)
			switch {
			case tt.wantFields != nil:
				var verr *errs.ValidationError
				require.True(t, errors.As(err, &verr), err)
				require.Equal(t, tt.wantFields, verr.ByField())
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestService_ToggleInventoryStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		id           int
		mockBehavior func(d deps)
		want         model.ToggleResult
		wantMessage  string
		wantErr      error
	}{
		{
			name: "ok. removed",
			id:   1,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().ToggleInventory(gomock.Any(), 1).
					Return(model.Book{ID: 1, Title: "Dune", Author: "Herbert", NumberOfPages: 412, InInventory: false}, nil)
				d.publisher.EXPECT().Publish(gomock.Any(), eventOf(kafka.BookRemoved, 1, false)).Return(nil)
			},
			want:        model.ToggleResult{ID: 1, Title: "Dune", InInventory: false},
			wantMessage: "Removed Dune from inventory.",
		},
		{
			name: "ok. restored",
			id:   1,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().ToggleInventory(gomock.Any(), 1).Return(dune, nil)
				d.publisher.EXPECT().Publish(gomock.Any(), eventOf(kafka.BookRestored, 1, true)).Return(nil)
			},
			want:        model.ToggleResult{ID: 1, Title: "Dune", InInventory: true},
			wantMessage: "Restored Dune to inventory.",
		},
		{
			name: "err. not found",
			id:   42,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().ToggleInventory(gomock.Any(), 42).Return(model.Book{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newService(t)
			tt.mockBehavior(d)

			got, err := svc.ToggleInventoryStatus(context.Background(), tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantMessage, got.Message())
		})
	}
}

func TestService_GetDetail(t *testing.T) {
	t.Parallel()
	svc, d := newService(t)
	d.repo.EXPECT().GetBook(gomock.Any(), 1).Return(dune, nil)
	d.repo.EXPECT().GetBook(gomock.Any(), 999999).Return(model.Book{}, errs.ErrNotFound)

	got, err := svc.GetDetail(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, model.BookDetail{ID: 1, Title: "Dune", Author: "Herbert", InInventory: true, NumberOfPages: 412}, got)

	_, err = svc.GetDetail(context.Background(), 999999)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_GetEditForm(t *testing.T) {
	t.Parallel()
	svc, d := newService(t)
	d.repo.EXPECT().GetBook(gomock.Any(), 1).Return(dune, nil)
	d.repo.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{}, errs.ErrNotFound)

	got, err := svc.GetEditForm(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, model.BookEditForm{ID: 1, Title: "Dune", Author: "Herbert", NumberOfPages: 412}, got)

	_, err = svc.GetEditForm(context.Background(), 2)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_ListInventory(t *testing.T) {
	t.Parallel()

	t.Run("ok. in inventory only", func(t *testing.T) {
		t.Parallel()
		svc, d := newService(t)
		d.repo.EXPECT().ListBooks(gomock.Any(), true).Return([]model.Book{dune}, nil)
		d.repo.EXPECT().CountBooks(gomock.Any(), true).Return(1, nil)
		d.repo.EXPECT().CountBooks(gomock.Any(), false).Return(2, nil)

		got, err := svc.ListInventory(context.Background(), false)
		require.NoError(t, err)
		require.Equal(t, model.BookList{
			Books:                       []model.BookSummary{{ID: 1, Title: "Dune", Author: "Herbert"}},
			NumberOfBooksInInventory:    1,
			NumberOfBooksNotInInventory: 2,
		}, got)
	})

	t.Run("ok. show all", func(t *testing.T) {
		t.Parallel()
		svc, d := newService(t)
		d.repo.EXPECT().ListBooks(gomock.Any(), true).Return(nil, nil)
		d.repo.EXPECT().ListBooks(gomock.Any(), false).
			Return([]model.Book{{ID: 2, Title: "Emma", Author: "Austen", NumberOfPages: 474}}, nil)
		d.repo.EXPECT().CountBooks(gomock.Any(), true).Return(0, nil)
		d.repo.EXPECT().CountBooks(gomock.Any(), false).Return(1, nil)

		got, err := svc.ListInventory(context.Background(), true)
		require.NoError(t, err)
		require.Equal(t, model.BookList{
			Books:                       []model.BookSummary{},
			BooksNotInInventory:         []model.BookSummary{{ID: 2, Title: "Emma", Author: "Austen"}},
			NumberOfBooksInInventory:    0,
			NumberOfBooksNotInInventory: 1,
		}, got)
	})

	t.Run("err. storage", func(t *testing.T) {
		t.Parallel()
		svc, d := newService(t)
		dbErr := errors.New("db internal")
		d.repo.EXPECT().ListBooks(gomock.Any(), true).Return(nil, dbErr)
		d.repo.EXPECT().CountBooks(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

		_, err := svc.ListInventory(context.Background(), false)
		require.ErrorIs(t, err, dbErr)
	})
}
