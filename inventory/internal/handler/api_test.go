package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/book-inventory/inventory/internal/errs"
	service_mocks "github.com/Astemirdum/book-inventory/inventory/internal/handler/mocks"
	"github.com/Astemirdum/book-inventory/inventory/internal/model"
)

func TestHandler_API(t *testing.T) {
	t.Parallel()
	type input struct {
		method, target, body string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService)

	tests := []struct {
		name         string
		input        input
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "list. ok",
			input: input{method: http.MethodGet, target: "/api/v1/books"},
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().ListInventory(gomock.Any(), false).Return(model.BookList{
					Books:                       []model.BookSummary{{ID: 1, Title: "Dune", Author: "Herbert"}},
					NumberOfBooksInInventory:    1,
					NumberOfBooksNotInInventory: 0,
				}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"books":[{"id":1,"title":"Dune","author":"Herbert"}],"booksNotInInventory":null,"numberOfBooksInInventory":1,"numberOfBooksNotInInventory":0}`,
			},
		},
		{
			name:  "list. showAll",
			input: input{method: http.MethodGet, target: "/api/v1/books?showAll=true"},
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().ListInventory(gomock.Any(), true).Return(model.BookList{
					Books:                       []model.BookSummary{},
					BooksNotInInventory:         []model.BookSummary{{ID: 2, Title: "Emma", Author: "Austen"}},
					NumberOfBooksNotInInventory: 1,
				}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"books":[],"booksNotInInventory":[{"id":2,"title":"Emma","author":"Austen"}],"numberOfBooksInInventory":0,"numberOfBooksNotInInventory":1}`,
			},
		},
		{
			name:  "list. showAll not a boolean falls back to false",
			input: input{method: http.MethodGet, target: "/api/v1/books?showAll=2x"},
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().ListInventory(gomock.Any(), false).Return(model.BookList{
					Books: []model.BookSummary{},
				}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"books":[],"booksNotInInventory":null,"numberOfBooksInInventory":0,"numberOfBooksNotInInventory":0}`,
			},
		},
		{
			name:  "get. ok",
			input: input{method: http.MethodGet, target: "/api/v1/books/1"},
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().GetDetail(gomock.Any(), 1).Return(model.BookDetail{
					ID: 1, Title: "Dune", Author: "Herbert", InInventory: true, NumberOfPages: 412,
				}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"title":"Dune","author":"Herbert","inInventory":true,"numberOfPages":412}`,
			},
		},
		{
			name:  "get. err not found",
			input: input{method: http.MethodGet, target: "/api/v1/books/9"},
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().GetDetail(gomock.Any(), 9).Return(model.BookDetail{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "get. err bad id",
			input:        input{method: http.MethodGet, target: "/api/v1/books/-3"},
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"bookId is invalid"}`,
			},
		},
		{
			name:  "create. ok",
			input: input{method: http.MethodPost, target: "/api/v1/books", body: `{"title":"Dune","author":"Herbert","numberOfPages":412}`},
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().CreateBook(gomock.Any(), model.BookCreateForm{Title: "Dune", Author: "Herbert", NumberOfPages: 412}).
					Return(model.Book{ID: 4, Title: "Dune", Author: "Herbert", NumberOfPages: 412, InInventory: true}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":4,"title":"Dune","author":"Herbert","numberOfPages":412,"inInventory":true}`,
			},
		},
		{
			name:  "create. err validation",
			input: input{method: http.MethodPost, target: "/api/v1/books", body: `{"title":"","author":"Herbert","numberOfPages":412}`},
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(model.Book{}, validationErr)
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"validation failed","errors":{"title":"title is required"}}`,
			},
		},
		{
			name:         "create. err malformed body",
			input:        input{method: http.MethodPost, target: "/api/v1/books", body: `{"title":`},
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name:  "update. ok id from path",
			input: input{method: http.MethodPut, target: "/api/v1/books/3", body: `{"id":100,"title":"Emma","author":"Austen","numberOfPages":474}`},
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().UpdateBook(gomock.Any(), model.BookEditForm{ID: 3, Title: "Emma", Author: "Austen", NumberOfPages: 474}).
					Return(model.Book{ID: 3, Title: "Emma", Author: "Austen", NumberOfPages: 474}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":3,"title":"Emma","author":"Austen","numberOfPages":474,"inInventory":false}`,
			},
		},
		{
			name:  "update. err not found",
			input: input{method: http.MethodPut, target: "/api/v1/books/3", body: `{"title":"Emma","author":"Austen","numberOfPages":474}`},
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().UpdateBook(gomock.Any(), gomock.Any()).Return(model.Book{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:  "toggle. ok",
			input: input{method: http.MethodPost, target: "/api/v1/books/1/inventory"},
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().ToggleInventoryStatus(gomock.Any(), 1).
					Return(model.ToggleResult{ID: 1, Title: "Dune", InInventory: false}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"title":"Dune","inInventory":false,"message":"Removed Dune from inventory."}`,
			},
		},
		{
			name:  "toggle. err internal",
			input: input{method: http.MethodPost, target: "/api/v1/books/1/inventory"},
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().ToggleInventoryStatus(gomock.Any(), 1).
					Return(model.ToggleResult{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t, "")
			tt.mockBehavior(svc)

			req := httptest.NewRequest(tt.input.method, tt.input.target, strings.NewReader(tt.input.body))
			if tt.input.body != "" {
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.response.expectedCode, rec.Code)
			if tt.response.expectedBody != "" {
				require.JSONEq(t, tt.response.expectedBody, rec.Body.String())
			}
		})
	}
}
