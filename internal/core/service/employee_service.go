package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/employeeapp/employee-system/internal/api/metrics"
	"github.com/employeeapp/employee-system/internal/core/domain"
	"github.com/employeeapp/employee-system/internal/core/ports"
)

// EmployeeService implements employee CRUD use cases.
type EmployeeService struct {
	repo ports.EmployeeRepository
	log  zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, log: log}
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.FindAll(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) ListByDepartment(ctx context.Context, department string) ([]*domain.Employee, error) {
	if department == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.FindByDepartment(ctx, department)
}

func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}

	if taken, err := s.repo.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmployeeEmailExists
	}

	now := time.Now().UTC()
	employee := &domain.Employee{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		Department: in.Department,
		Position:   in.Position,
		Salary:     in.Salary,
		HireDate:   in.HireDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		s.log.Error().Err(err).Str("email", in.Email).Msg("failed to create employee")
		return nil, err
	}

	metrics.EmployeeOpsTotal.WithLabelValues("create").Inc()
	s.log.Info().Str("employee_id", created.ID).Str("department", created.Department).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.Email = in.Email
	existing.Phone = in.Phone
	existing.Department = in.Department
	existing.Position = in.Position
	existing.Salary = in.Salary
	existing.HireDate = in.HireDate
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	metrics.EmployeeOpsTotal.WithLabelValues("update").Inc()
	s.log.Info().Str("employee_id", id).Msg("employee updated")
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	// look up first so a missing id maps to 404, not a silent no-op
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EmployeeOpsTotal.WithLabelValues("delete").Inc()
	s.log.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}
