// Package users stores backend accounts, in memory or in PostgreSQL.
package users

import (
	"context"

	"github.com/dmitrijs2005/tripplanner/internal/server/models"
)

// Repository persists accounts keyed by exact email.
//
// Create assigns ID and CreatedAt when they are empty and fails with
// common.ErrorAlreadyExists for a taken email. GetByEmail fails with
// common.ErrorNotFound for an unknown one.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
