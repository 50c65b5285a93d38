package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

// ServiceHandler serves the salon service catalog.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

func (r serviceRequest) toInput() ports.ServiceInput {
	return ports.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       *r.Price,
		Available:   r.Available,
	}
}

// Create adds a service to the catalog.
//
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      serviceRequest  true  "Service"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := h.catalog.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// Update overwrites a service.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Service id"
// @Param        body  body      serviceRequest  true  "Service"
// @Success      200   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	var req serviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := h.catalog.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete removes a service.
//
// @Summary      Delete a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "service deleted"})
}

// List returns the catalog, optionally narrowed by ?category=.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Param        category  query     string  false  "Category"
// @Success      200       {array}   domain.Service
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	var filter ports.ServiceFilter
	if raw := c.QueryParam("category"); raw != "" {
		cat, err := domain.ParseCategory(raw)
		if err != nil {
			return err
		}
		filter.Category = cat
	}
	return h.list(c, filter)
}

func (h *ServiceHandler) list(c echo.Context, filter ports.ServiceFilter) error {
	list, err := h.catalog.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get returns one service.
//
// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	svc, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// ByCategory lists the services of one category.
//
// @Summary      List services by category
// @Tags         services
// @Produce      json
// @Param        category  path      string  true  "Category"
// @Success      200       {array}   domain.Service
// @Failure      400       {object}  errorResponse
// @Router       /services/category/{category} [get]
func (h *ServiceHandler) ByCategory(c echo.Context) error {
	cat, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return err
	}
	return h.list(c, ports.ServiceFilter{Category: cat})
}

// Search matches the query against names and descriptions.
//
// @Summary      Search services
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      searchRequest  true  "Query"
// @Success      200   {array}   domain.Service
// @Router       /services/search [post]
func (h *ServiceHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.list(c, ports.ServiceFilter{Query: req.Query})
}

// Popular returns the best rated services.
//
// @Summary      Popular services
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /services/popular [get]
func (h *ServiceHandler) Popular(c echo.Context) error {
	list, err := h.catalog.Popular(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Discounted lists services with a discount above zero.
//
// @Summary      Discounted services
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /services/discounted [get]
func (h *ServiceHandler) Discounted(c echo.Context) error {
	return h.list(c, ports.ServiceFilter{Discounted: true})
}

// Available lists services currently offered.
//
// @Summary      Available services
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /services/available [get]
func (h *ServiceHandler) Available(c echo.Context) error {
	available := true
	return h.list(c, ports.ServiceFilter{Available: &available})
}

// SetDiscount sets the discount percentage of a service.
//
// @Summary      Set a service discount
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      discountRequest  true  "Discount"
// @Success      200   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /services/discount [post]
func (h *ServiceHandler) SetDiscount(c echo.Context) error {
	var req discountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := h.catalog.SetDiscount(c.Request().Context(), req.ServiceID, req.Discount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// SetAvailability toggles whether a service is offered.
//
// @Summary      Set service availability
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Service id"
// @Param        body  body      availabilityRequest  true  "Availability"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  errorResponse
// @Router       /services/availability/{id} [post]
func (h *ServiceHandler) SetAvailability(c echo.Context) error {
	var req availabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := h.catalog.SetAvailability(c.Request().Context(), c.Param("id"), *req.Available)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// SetRating overwrites the rating of a service.
//
// @Summary      Rate a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Service id"
// @Param        body  body      ratingRequest  true  "Rating"
// @Success      200   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /services/rating/{id} [put]
func (h *ServiceHandler) SetRating(c echo.Context) error {
	var req ratingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := h.catalog.SetRating(c.Request().Context(), c.Param("id"), req.Rating)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Reviews lists the review comments of a service.
//
// @Summary      List service reviews
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  reviewsResponse
// @Failure      404  {object}  errorResponse
// @Router       /services/reviews/{id} [get]
func (h *ServiceHandler) Reviews(c echo.Context) error {
	reviews, err := h.catalog.Reviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviewsResponse{Reviews: reviews})
}

// AddReview appends a review comment.
//
// @Summary      Review a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Service id"
// @Param        body  body      reviewRequest  true  "Review"
// @Success      201   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /services/reviews/{id} [post]
func (h *ServiceHandler) AddReview(c echo.Context) error {
	var req reviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.catalog.AddReview(c.Request().Context(), c.Param("id"), req.Comment); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "review added"})
}

// RemoveReview deletes every review equal to the given comment.
//
// @Summary      Remove a service review
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Service id"
// @Param        body  body      reviewRequest  true  "Review to remove"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /services/reviews/{id} [delete]
func (h *ServiceHandler) RemoveReview(c echo.Context) error {
	var req reviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.catalog.RemoveReview(c.Request().Context(), c.Param("id"), req.Comment); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "review removed"})
}
