package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"janaseva/internal/domain/entity"
	"janaseva/internal/domain/repository"
	"janaseva/internal/usecase"
	"janaseva/pkg/response"
	"janaseva/pkg/utils"
)

type ProduceHandler struct {
	produceUseCase *usecase.ProduceUseCase
}

func NewProduceHandler(produceUseCase *usecase.ProduceUseCase) *ProduceHandler {
	return &ProduceHandler{
		produceUseCase: produceUseCase,
	}
}

type producePostRequest struct {
	ProductName    string                 `json:"product_name" validate:"required"`
	Category       string                 `json:"category" validate:"required"`
	Description    string                 `json:"description"`
	Images         []string               `json:"images"`
	Price          entity.Price           `json:"price"`
	Quantity       entity.Quantity        `json:"quantity"`
	Quality        string                 `json:"quality"`
	IsOrganic      bool                   `json:"is_organic"`
	Location       entity.ProduceLocation `json:"location"`
	AvailableFrom  time.Time              `json:"available_from"`
	AvailableUntil time.Time              `json:"available_until"`
}

func (r producePostRequest) toInput() usecase.ProducePostInput {
	return usecase.ProducePostInput{
		ProductName:    r.ProductName,
		Category:       r.Category,
		Description:    r.Description,
		Images:         r.Images,
		Price:          r.Price,
		Quantity:       r.Quantity,
		Quality:        r.Quality,
		IsOrganic:      r.IsOrganic,
		Location:       r.Location,
		AvailableFrom:  r.AvailableFrom,
		AvailableUntil: r.AvailableUntil,
	}
}

func (h *ProduceHandler) Create(c echo.Context) error {
	var req producePostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	post, err := h.produceUseCase.CreateProducePost(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

// List returns active listings matching the query filters.
func (h *ProduceHandler) List(c echo.Context) error {
	filter := repository.ProduceFilter{
		Category:      c.QueryParam("category"),
		District:      c.QueryParam("district"),
		State:         c.QueryParam("state"),
		OrganicOnly:   c.QueryParam("organic") == "true",
		AvailableOnly: c.QueryParam("available") == "true",
	}

	params := utils.GetPaginationParams(c, 20)

	posts, total, err := h.produceUseCase.ListProducePosts(c.Request().Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, posts, total, params.Page, params.PageSize)
}

func (h *ProduceHandler) GetByID(c echo.Context) error {
	post, err := h.produceUseCase.GetProducePost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *ProduceHandler) ListMine(c echo.Context) error {
	userID := c.Get("uid").(string)

	posts, err := h.produceUseCase.ListMyPosts(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, posts)
}

func (h *ProduceHandler) Update(c echo.Context) error {
	var req producePostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	post, err := h.produceUseCase.UpdateProducePost(c.Request().Context(), userID, c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *ProduceHandler) Delete(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.produceUseCase.DeleteProducePost(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{"deleted": true})
}

func (h *ProduceHandler) MarkSold(c echo.Context) error {
	userID := c.Get("uid").(string)

	post, err := h.produceUseCase.MarkSold(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

// ExpressInterest records the caller's interest and notifies the farmer.
func (h *ProduceHandler) ExpressInterest(c echo.Context) error {
	userID := c.Get("uid").(string)

	post, err := h.produceUseCase.ExpressInterest(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}
