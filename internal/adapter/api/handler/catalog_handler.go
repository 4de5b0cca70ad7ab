package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"giglance/internal/usecase"
	"giglance/pkg/errors"
	"giglance/pkg/response"
	"giglance/pkg/utils"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

type createServiceRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	Category    string  `json:"category" validate:"required"`
}

type setFeaturedRequest struct {
	Featured bool `json:"featured"`
}

func (h *CatalogHandler) ListServices(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	services, total := h.catalogUseCase.ListServices(c.Request().Context(), params.PageSize, params.Offset)

	return response.Paginated(c, services, total, params.Page, params.PageSize)
}

func (h *CatalogHandler) GetService(c echo.Context) error {
	id := c.Param("id")

	detail, err := h.catalogUseCase.GetServiceDetail(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}

func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	service, err := h.catalogUseCase.CreateService(c.Request().Context(), sellerID, usecase.CreateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, service)
}

func (h *CatalogHandler) ListMyServices(c echo.Context) error {
	sellerID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	services, total, err := h.catalogUseCase.ListSellerServices(c.Request().Context(), sellerID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, services, total, params.Page, params.PageSize)
}

func (h *CatalogHandler) DeleteService(c echo.Context) error {
	id := c.Param("id")
	sellerID := c.Get("uid").(string)

	if err := h.catalogUseCase.DeleteService(c.Request().Context(), sellerID, id); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) SetFeatured(c echo.Context) error {
	id := c.Param("id")

	var req setFeaturedRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	service, err := h.catalogUseCase.SetFeatured(c.Request().Context(), id, req.Featured)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, service)
}
