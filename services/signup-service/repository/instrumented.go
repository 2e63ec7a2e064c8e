package repository

import (
	"context"
	"time"

	"github.com/RigelNana/arksignup/pkg/metrics"
	"github.com/RigelNana/arksignup/services/signup-service/models"
)

type instrumentedRepository struct {
	SignupRepository
}

// WithMetrics records latency of Insert and FindAll per driver.
func WithMetrics(repo SignupRepository) SignupRepository {
	return &instrumentedRepository{SignupRepository: repo}
}

func (r *instrumentedRepository) Insert(ctx context.Context, s models.Signup) (string, error) {
	start := time.Now()
	id, err := r.SignupRepository.Insert(ctx, s)
	metrics.ObserveStore(r.Driver(), "insert", err, time.Since(start))
	return id, err
}

func (r *instrumentedRepository) FindAll(ctx context.Context) ([]models.Signup, error) {
	start := time.Now()
	out, err := r.SignupRepository.FindAll(ctx)
	metrics.ObserveStore(r.Driver(), "find_all", err, time.Since(start))
	return out, err
}
