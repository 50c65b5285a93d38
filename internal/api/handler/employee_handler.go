package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

// EmployeeHandler serves salon staff management.
type EmployeeHandler struct {
	employees ports.EmployeeService
}

func NewEmployeeHandler(employees ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (r employeeRequest) toInput() ports.EmployeeInput {
	return ports.EmployeeInput{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      r.Role,
		Available: r.Available,
		Schedule:  r.Schedule,
	}
}

// Create adds an employee.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeRequest  true  "Employee"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	e, err := h.employees.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, e)
}

// Update overwrites an employee.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee id"
// @Param        body  body      employeeRequest  true  "Employee"
// @Success      200   {object}  domain.Employee
// @Failure      404   {object}  errorResponse
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	e, err := h.employees.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// Delete removes an employee.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.employees.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "employee deleted"})
}

// List returns every employee.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  domain.Employee
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	return h.list(c, ports.EmployeeFilter{})
}

// Available lists employees marked available.
//
// @Summary      Available employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  domain.Employee
// @Router       /employees/available [get]
func (h *EmployeeHandler) Available(c echo.Context) error {
	available := true
	return h.list(c, ports.EmployeeFilter{Available: &available})
}

// Search matches the query against names and roles.
//
// @Summary      Search employees
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      searchRequest  true  "Query"
// @Success      200   {array}   domain.Employee
// @Router       /employees/search [post]
func (h *EmployeeHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.list(c, ports.EmployeeFilter{Query: req.Query})
}

func (h *EmployeeHandler) list(c echo.Context, filter ports.EmployeeFilter) error {
	list, err := h.employees.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get returns one employee.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	e, err := h.employees.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// MarkAvailable flags an employee as available.
//
// @Summary      Mark employee available
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  errorResponse
// @Router       /employees/mark-available/{id} [post]
func (h *EmployeeHandler) MarkAvailable(c echo.Context) error {
	return h.setAvailability(c, true)
}

// MarkUnavailable flags an employee as unavailable.
//
// @Summary      Mark employee unavailable
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  errorResponse
// @Router       /employees/mark-unavailable/{id} [post]
func (h *EmployeeHandler) MarkUnavailable(c echo.Context) error {
	return h.setAvailability(c, false)
}

func (h *EmployeeHandler) setAvailability(c echo.Context, available bool) error {
	e, err := h.employees.SetAvailability(c.Request().Context(), c.Param("id"), available)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// AssignTask appends a task to an employee's list.
//
// @Summary      Assign a task
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignTaskRequest  true  "Task"
// @Success      200   {object}  domain.Employee
// @Failure      404   {object}  errorResponse
// @Router       /employees/assign-task [post]
func (h *EmployeeHandler) AssignTask(c echo.Context) error {
	var req assignTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	e, err := h.employees.AssignTask(c.Request().Context(), req.EmployeeID, req.Task)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// Tasks lists an employee's tasks.
//
// @Summary      List employee tasks
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  tasksResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/tasks/{id} [get]
func (h *EmployeeHandler) Tasks(c echo.Context) error {
	tasks, err := h.employees.Tasks(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasksResponse{Tasks: tasks})
}

// Rating returns the average review rating of an employee.
//
// @Summary      Employee rating
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  ratingResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/rating/{id} [get]
func (h *EmployeeHandler) Rating(c echo.Context) error {
	rating, err := h.employees.Rating(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratingResponse{Rating: rating})
}

// AddReview records a rated review of an employee.
//
// @Summary      Review an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Employee id"
// @Param        body  body      employeeReviewRequest  true  "Review"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /employees/review/{id} [post]
func (h *EmployeeHandler) AddReview(c echo.Context) error {
	var req employeeReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	e, err := h.employees.AddReview(c.Request().Context(), c.Param("id"), domain.EmployeeReview{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, e)
}

// SetSchedule replaces an employee's schedule.
//
// @Summary      Set employee schedule
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee id"
// @Param        body  body      scheduleRequest  true  "Schedule"
// @Success      200   {object}  domain.Employee
// @Failure      404   {object}  errorResponse
// @Router       /employees/schedule/{id} [post]
func (h *EmployeeHandler) SetSchedule(c echo.Context) error {
	var req scheduleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	e, err := h.employees.SetSchedule(c.Request().Context(), c.Param("id"), req.Schedule)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// Schedule returns an employee's schedule.
//
// @Summary      Get employee schedule
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  scheduleResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/schedule/{id} [get]
func (h *EmployeeHandler) Schedule(c echo.Context) error {
	schedule, err := h.employees.Schedule(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scheduleResponse{Schedule: schedule})
}
