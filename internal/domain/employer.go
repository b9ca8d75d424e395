package domain

import (
	"context"
	"time"
)

type Employer struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CompanyName string    `json:"company_name"`
	ContactName *string   `json:"contact_name"`
	Phone       *string   `json:"phone"`
	Website     *string   `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EmployerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*Employer, error)
}
