package handlers

import (
	"github.com/gin-gonic/gin"

	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/id"
	"opsdesk/internal/domain"
	"opsdesk/internal/domain/worksheets"
	"opsdesk/internal/infrastructure/http/v1/dto"
)

// WorksheetHandler handles HTTP requests for worksheets.
type WorksheetHandler struct {
	*BaseHandler
	service *worksheets.Service
}

// NewWorksheetHandler creates a new worksheet handler.
func NewWorksheetHandler(base *BaseHandler, service *worksheets.Service) *WorksheetHandler {
	return &WorksheetHandler{BaseHandler: base, service: service}
}

// Create handles POST /worksheets.
func (h *WorksheetHandler) Create(c *gin.Context) {
	var req dto.CreateWorksheetRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entity := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, entity)
}

// Get handles GET /worksheets/:id.
func (h *WorksheetHandler) Get(c *gin.Context) {
	worksheetID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), worksheetID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, entity)
}

// Update handles PUT /worksheets/:id.
func (h *WorksheetHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	worksheetID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateWorksheetRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entity, err := h.service.GetByID(ctx, worksheetID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(entity)

	if err := h.service.Update(ctx, entity); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, entity)
}

// Delete handles DELETE /worksheets/:id.
func (h *WorksheetHandler) Delete(c *gin.Context) {
	worksheetID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), worksheetID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// List handles GET /worksheets - list with filtering.
func (h *WorksheetHandler) List(c *gin.Context) {
	filter := worksheets.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-created_at")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if status := c.Query("status"); status != "" {
		s := worksheets.Status(status)
		filter.Status = &s
	}
	if priority := c.Query("priority"); priority != "" {
		p := worksheets.Priority(priority)
		filter.Priority = &p
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      result.Items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
