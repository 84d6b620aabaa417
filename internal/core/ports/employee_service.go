package ports

import (
	"context"
	"time"

	"github.com/employeeapp/employee-system/internal/core/domain"
)

// EmployeeInput carries all writable employee fields.
type EmployeeInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Department string
	Position   string
	Salary     float64
	HireDate   time.Time
}

// EmployeeService defines use-case operations for employees.
type EmployeeService interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	ListByDepartment(ctx context.Context, department string) ([]*domain.Employee, error)
	Create(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, in EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
