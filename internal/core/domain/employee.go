package domain

import "time"

// Employee is the core aggregate managed by the API.
type Employee struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	FirstName  string    `json:"first_name" bson:"first_name"`
	LastName   string    `json:"last_name" bson:"last_name"`
	Email      string    `json:"email" bson:"email"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Department string    `json:"department" bson:"department"`
	Position   string    `json:"position" bson:"position"`
	Salary     float64   `json:"salary" bson:"salary"`
	HireDate   time.Time `json:"hire_date" bson:"hire_date"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
