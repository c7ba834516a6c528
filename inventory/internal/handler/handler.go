package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/Astemirdum/book-inventory/inventory/docs"
	"github.com/Astemirdum/book-inventory/inventory/internal/errs"
	"github.com/Astemirdum/book-inventory/inventory/internal/model"
	md "github.com/Astemirdum/book-inventory/pkg/middleware"
	"github.com/Astemirdum/book-inventory/pkg/validate"
)

const (
	msgBookNotFound  = "Couldn't find book"
	msgNoBookWithID  = "No Book with that Id"
	msgPagesNotWhole = "numberOfPages must be a whole number"
)

type Handler struct {
	bookSvc BookService
	banner  string
	log     *zap.Logger
}

func New(bookSvc BookService, banner string, log *zap.Logger) *Handler {
	h := &Handler{
		bookSvc: bookSvc,
		banner:  banner,
		log:     log,
	}
	return h
}

func (h *Handler) NewRouter() (*echo.Echo, error) {
	e := echo.New()
	const (
		baseRPS = 10
		webRPS  = 50
		apiRPS  = 100
	)
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = r

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	web := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRequestID(),
		md.NewRateLimiter(webRPS),
	)
	web.GET("/", h.Root)
	web.GET("/books", h.Index)
	web.GET("/books/index", h.Index)
	web.GET("/books/new", h.NewBook)
	web.POST("/books/new", h.CreateBook)
	web.GET("/books/:bookId", h.Details)
	web.GET("/books/:bookId/edit", h.Edit)
	web.POST("/books/:bookId/edit", h.Update)
	web.POST("/books/:bookId/remove", h.RemoveFromInventory)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/books", h.ListBooks)
	api.POST("/books", h.CreateBookAPI)
	api.GET("/books/:bookId", h.GetBook)
	api.PUT("/books/:bookId", h.UpdateBookAPI)
	api.POST("/books/:bookId/inventory", h.ToggleInventory)

	return e, nil
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/books")
}

// Index lists the books in inventory; ?showall=true adds the removed ones.
// A malformed showall falls back to false.
func (h *Handler) Index(c echo.Context) error {
	showAll := h.parseShowAll(c.QueryParam("showall"))
	list, err := h.bookSvc.ListInventory(c.Request().Context(), showAll)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	p := h.page(c, "Books", list)
	p.Banner = h.banner
	p.ShowAll = showAll
	return c.Render(http.StatusOK, "index", p)
}

func (h *Handler) Details(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, msgNoBookWithID)
	}
	book, err := h.bookSvc.GetDetail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, msgNoBookWithID)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "detail", h.page(c, book.Title, book))
}

func (h *Handler) Edit(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, msgNoBookWithID)
	}
	form, err := h.bookSvc.GetEditForm(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, msgNoBookWithID)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "edit", h.page(c, "Edit "+form.Title, form))
}

func (h *Handler) Update(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, msgNoBookWithID)
	}
	form := model.BookEditForm{ID: id}
	if err := bindForm(c, &form, &form.Title, &form.Author, &form.NumberOfPages); err != nil {
		return h.rerender(c, "edit", "Edit book", form, err)
	}
	book, err := h.bookSvc.UpdateBook(c.Request().Context(), form)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, msgNoBookWithID)
		}
		return h.rerender(c, "edit", "Edit book", form, err)
	}
	setFlash(c, fmt.Sprintf("Updated %s", book.Title))
	return c.Redirect(http.StatusSeeOther, "/books")
}

func (h *Handler) NewBook(c echo.Context) error {
	return c.Render(http.StatusOK, "new", h.page(c, "Add a book", model.BookCreateForm{}))
}

// CreateBook redirects back to the blank form so books can be entered one after another.
func (h *Handler) CreateBook(c echo.Context) error {
	var form model.BookCreateForm
	if err := bindForm(c, &form, &form.Title, &form.Author, &form.NumberOfPages); err != nil {
		return h.rerender(c, "new", "Add a book", form, err)
	}
	book, err := h.bookSvc.CreateBook(c.Request().Context(), form)
	if err != nil {
		return h.rerender(c, "new", "Add a book", form, err)
	}
	setFlash(c, fmt.Sprintf("Book %s added as %d", book.Title, book.ID))
	return c.Redirect(http.StatusSeeOther, "/books/new")
}

func (h *Handler) RemoveFromInventory(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		setFlash(c, msgBookNotFound)
		return c.Redirect(http.StatusSeeOther, "/books")
	}
	res, err := h.bookSvc.ToggleInventoryStatus(c.Request().Context(), id)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		setFlash(c, msgBookNotFound)
		return c.Redirect(http.StatusSeeOther, "/books")
	}
	setFlash(c, res.Message())
	return c.Redirect(http.StatusSeeOther, "/books")
}

func (h *Handler) page(c echo.Context, title string, data any) page {
	return page{
		Title: title,
		Flash: popFlash(c),
		Data:  data,
	}
}

// rerender shows the submitted form again with its field errors. Anything
// other than a validation failure is an internal error.
func (h *Handler) rerender(c echo.Context, view, title string, form any, err error) error {
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		if errors.Is(err, errs.ErrInvalidBook) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	p := h.page(c, title, form)
	p.Errors = verr.ByField()
	return c.Render(http.StatusUnprocessableEntity, view, p)
}

// bindForm reads the book fields of a submitted form. A malformed page count
// is reported as a field error together with whatever else the form fails.
func bindForm(c echo.Context, form any, title, author *string, pages *int) error {
	err := echo.FormFieldBinder(c).
		String("title", title).
		String("author", author).
		Int("numberOfPages", pages).
		BindError()
	if err == nil {
		return nil
	}
	*title = strings.TrimSpace(*title)
	*author = strings.TrimSpace(*author)
	fields := []validate.FieldError{{Field: "numberOfPages", Message: msgPagesNotWhole}}
	for _, fe := range validate.FieldErrors(c.Validate(form)) {
		if fe.Field != "numberOfPages" {
			fields = append(fields, fe)
		}
	}
	return &errs.ValidationError{Fields: fields}
}

// parseShowAll treats anything that is not a boolean as false.
func (h *Handler) parseShowAll(v string) bool {
	if v == "" {
		return false
	}
	showAll, err := strconv.ParseBool(v)
	if err != nil {
		h.log.Debug("showall is not a boolean, using false", zap.String("showall", v))
		return false
	}
	return showAll
}

type bookIDRequest struct {
	BookID int `param:"bookId" validate:"gt=0"`
}

func bookID(c echo.Context) (int, error) {
	var req bookIDRequest
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &req); err != nil {
		return 0, err
	}
	if err := c.Validate(req); err != nil {
		return 0, err
	}
	return req.BookID, nil
}
