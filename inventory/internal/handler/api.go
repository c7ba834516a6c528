package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/book-inventory/inventory/internal/errs"
	"github.com/Astemirdum/book-inventory/inventory/internal/model"
)

type toggleResponse struct {
	model.ToggleResult
	Message string `json:"message"`
}

// ListBooks godoc
// @Summary      List books
// @Description  Books in inventory with counts; showAll adds the removed ones.
// @Tags         books
// @Produce      json
// @Param        showAll  query     bool  false  "include books not in inventory"
// @Success      200      {object}  model.BookList
// @Router       /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	showAll := h.parseShowAll(c.QueryParam("showAll"))
	list, err := h.bookSvc.ListInventory(c.Request().Context(), showAll)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, list)
}

// GetBook godoc
// @Summary  Book detail
// @Tags     books
// @Produce  json
// @Param    bookId  path      int  true  "book id"
// @Success  200     {object}  model.BookDetail
// @Failure  400     {object}  echo.HTTPError
// @Failure  404     {object}  echo.HTTPError
// @Router   /books/{bookId} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bookId is invalid")
	}
	book, err := h.bookSvc.GetDetail(c.Request().Context(), id)
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// CreateBookAPI godoc
// @Summary  Add a book to inventory
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    book  body      model.BookCreateForm  true  "new book"
// @Success  201   {object}  model.Book
// @Failure  400   {object}  echo.HTTPError
// @Failure  422   {object}  errs.ValidationErrorResponse
// @Router   /books [post]
func (h *Handler) CreateBookAPI(c echo.Context) error {
	var form model.BookCreateForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.bookSvc.CreateBook(c.Request().Context(), form)
	if err != nil {
		return apiValidationError(c, err)
	}
	return c.JSON(http.StatusCreated, book)
}

// UpdateBookAPI godoc
// @Summary  Update title, author and page count
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    bookId  path      int                 true  "book id"
// @Param    book    body      model.BookEditForm  true  "book fields"
// @Success  200     {object}  model.Book
// @Failure  400     {object}  echo.HTTPError
// @Failure  404     {object}  echo.HTTPError
// @Failure  422     {object}  errs.ValidationErrorResponse
// @Router   /books/{bookId} [put]
func (h *Handler) UpdateBookAPI(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bookId is invalid")
	}
	var form model.BookEditForm
	if err := (&echo.DefaultBinder{}).BindBody(c, &form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	form.ID = id
	book, err := h.bookSvc.UpdateBook(c.Request().Context(), form)
	if err != nil {
		return apiValidationError(c, err)
	}
	return c.JSON(http.StatusOK, book)
}

// ToggleInventory godoc
// @Summary  Remove a book from inventory or return it
// @Tags     books
// @Produce  json
// @Param    bookId  path      int  true  "book id"
// @Success  200     {object}  toggleResponse
// @Failure  400     {object}  echo.HTTPError
// @Failure  404     {object}  echo.HTTPError
// @Router   /books/{bookId}/inventory [post]
func (h *Handler) ToggleInventory(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bookId is invalid")
	}
	res, err := h.bookSvc.ToggleInventoryStatus(c.Request().Context(), id)
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, toggleResponse{ToggleResult: res, Message: res.Message()})
}

func apiError(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func apiValidationError(c echo.Context, err error) error {
	var verr *errs.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusUnprocessableEntity, errs.ValidationErrorResponse{
			Message: "validation failed",
			Errors:  verr.ByField(),
		})
	}
	if errors.Is(err, errs.ErrInvalidBook) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return apiError(err)
}
