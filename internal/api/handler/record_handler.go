package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/crmdesk/crm-system/internal/api/flash"
	"github.com/crmdesk/crm-system/internal/api/metrics"
	"github.com/crmdesk/crm-system/internal/core/domain"
	"github.com/crmdesk/crm-system/internal/core/ports"
)

// RecordHandler serves the record pages: list, detail, add, update, delete.
type RecordHandler struct {
	service ports.RecordService
}

func NewRecordHandler(service ports.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

type homeData struct {
	page
	Records []domain.Record
}

type recordData struct {
	page
	Record *domain.Record
}

type recordFormData struct {
	page
	Form     RecordForm
	Errors   map[string]string
	RecordID int64
}

// Home handles GET /, the record list with the login form for visitors.
func (h *RecordHandler) Home(c echo.Context) error {
	records, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "home.html", homeData{page: newPage(c), Records: records})
}

// View handles GET /record/:id.
func (h *RecordHandler) View(c echo.Context) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}

	rec, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "record.html", recordData{page: newPage(c), Record: rec})
}

// AddForm handles GET /add_record/.
func (h *RecordHandler) AddForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add_record.html", recordFormData{page: newPage(c)})
}

// Add handles POST /add_record/. On validation failure the form is
// re-rendered with the submitted input retained; on success the browser
// is redirected so a refresh cannot resubmit.
func (h *RecordHandler) Add(c echo.Context) error {
	var form RecordForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	if errs := ValidateForm(form); errs != nil {
		return c.Render(http.StatusOK, "add_record.html", recordFormData{
			page: newPage(c), Form: form, Errors: errs,
		})
	}

	if _, err := h.service.Create(c.Request().Context(), form.Fields()); err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.Inc()
	flash.Add(c, "Record added.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// UpdateForm handles GET /update_record/:id, the form seeded with the
// record's current values.
func (h *RecordHandler) UpdateForm(c echo.Context) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}

	rec, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "update_record.html", recordFormData{
		page: newPage(c), Form: recordFormFrom(rec), RecordID: rec.ID,
	})
}

// Update handles POST /update_record/:id. The form is seeded from the
// stored record before binding, so fields omitted from the POST keep
// their prior value.
func (h *RecordHandler) Update(c echo.Context) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}

	rec, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	form := recordFormFrom(rec)
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	if errs := ValidateForm(form); errs != nil {
		return c.Render(http.StatusOK, "update_record.html", recordFormData{
			page: newPage(c), Form: form, Errors: errs, RecordID: id,
		})
	}

	if _, err := h.service.Update(c.Request().Context(), id, form.Fields()); err != nil {
		return err
	}

	metrics.RecordsUpdatedTotal.Inc()
	flash.Add(c, "Record has been updated.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Delete handles GET/POST /delete_record/:id. A missing record bounces
// back to the list with a message rather than a dead-end error page.
func (h *RecordHandler) Delete(c echo.Context) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			flash.Add(c, "Record not found.")
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	metrics.RecordsDeletedTotal.Inc()
	flash.Add(c, "Record deleted successfully.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// recordID parses the :id path parameter. A non-numeric id cannot match
// any record, so it surfaces as not-found rather than a bad request.
func recordID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrRecordNotFound
	}
	return id, nil
}
