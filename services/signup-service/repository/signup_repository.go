package repository

import (
	"context"

	"github.com/RigelNana/arksignup/services/signup-service/models"
)

// SignupRepository stores signup records. Records are create-and-list only.
type SignupRepository interface {
	// Insert stores s and returns the identifier the store generated.
	Insert(ctx context.Context, s models.Signup) (string, error)
	// FindAll returns every record with its identifier removed. Order is not
	// guaranteed.
	FindAll(ctx context.Context) ([]models.Signup, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Driver() string
}
