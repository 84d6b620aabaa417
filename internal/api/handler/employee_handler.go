package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/employeeapp/employee-system/internal/core/domain"
	"github.com/employeeapp/employee-system/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee CRUD.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type employeeRequest struct {
	FirstName  string  `json:"first_name" validate:"required"`
	LastName   string  `json:"last_name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone"`
	Department string  `json:"department" validate:"required"`
	Position   string  `json:"position" validate:"required"`
	Salary     float64 `json:"salary" validate:"gte=0"`
	HireDate   string  `json:"hire_date" validate:"required"`
}

// hire_date arrives as "2006-01-02"; full RFC 3339 is also accepted.
func (r employeeRequest) toInput() (ports.EmployeeInput, error) {
	hired, err := time.Parse("2006-01-02", r.HireDate)
	if err != nil {
		if hired, err = time.Parse(time.RFC3339, r.HireDate); err != nil {
			return ports.EmployeeInput{}, echo.NewHTTPError(http.StatusBadRequest, "hire_date must be YYYY-MM-DD")
		}
	}
	return ports.EmployeeInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Department: r.Department,
		Position:   r.Position,
		Salary:     r.Salary,
		HireDate:   hired.UTC(),
	}, nil
}

// List handles GET /api/employees.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Employee
// @Failure      401  {object}  map[string]string
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if employees == nil {
		employees = []*domain.Employee{}
	}
	return c.JSON(http.StatusOK, employees)
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// ListByDepartment handles GET /api/employees/department/:department.
//
// @Summary      List employees in a department
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        department  path      string  true  "Department name"
// @Success      200         {array}   domain.Employee
// @Router       /api/employees/department/{department} [get]
func (h *EmployeeHandler) ListByDepartment(c echo.Context) error {
	employees, err := h.service.ListByDepartment(c.Request().Context(), c.Param("department"))
	if err != nil {
		return err
	}
	if employees == nil {
		employees = []*domain.Employee{}
	}
	return c.JSON(http.StatusOK, employees)
}

// Create handles POST /api/employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/employees/:id.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee id"
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      200   {object}  domain.Employee
// @Failure      404   {object}  map[string]string
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/employees/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
