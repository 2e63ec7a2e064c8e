package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/RigelNana/arksignup/pkg/metrics"
	"github.com/RigelNana/arksignup/services/signup-service/events"
	"github.com/RigelNana/arksignup/services/signup-service/models"
	"github.com/RigelNana/arksignup/services/signup-service/repository"
	"github.com/sirupsen/logrus"
)

type SignupService interface {
	Submit(ctx context.Context, s models.Signup) (string, error)
	List(ctx context.Context) ([]models.Signup, error)
	Ping(ctx context.Context) error
}

// publishTimeout bounds a background event publish.
const publishTimeout = 5 * time.Second

type SignupServiceImpl struct {
	repo      repository.SignupRepository
	publisher events.Publisher
	logger    *logrus.Logger

	inflight sync.WaitGroup
}

func NewSignupService(repo repository.SignupRepository, publisher events.Publisher, logger *logrus.Logger) *SignupServiceImpl {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &SignupServiceImpl{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Submit stores s as-is and returns the generated identifier. The event is
// published in the background; a failed publish is logged only.
func (s *SignupServiceImpl) Submit(ctx context.Context, signup models.Signup) (string, error) {
	record := signup.WithoutID()
	id, err := s.repo.Insert(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to store signup: %w", err)
	}
	metrics.SignupsStored.Inc()
	s.logger.WithFields(logrus.Fields{
		"inserted_id": id,
		"fields":      len(record),
	}).Info("signup stored")

	s.publish(context.WithoutCancel(ctx), id, record)
	return id, nil
}

func (s *SignupServiceImpl) publish(ctx context.Context, id string, record models.Signup) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		if err := s.publisher.PublishSignupCreated(ctx, id, record); err != nil {
			s.logger.WithError(err).WithField("inserted_id", id).Warn("failed to publish signup event")
		}
	}()
}

// Wait blocks until every background publish has returned.
func (s *SignupServiceImpl) Wait() {
	s.inflight.Wait()
}

// List returns every stored record without identifiers. Never nil.
func (s *SignupServiceImpl) List(ctx context.Context) ([]models.Signup, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	if records == nil {
		records = []models.Signup{}
	}
	for i, r := range records {
		if _, ok := r[models.IDField]; ok {
			records[i] = r.WithoutID()
		}
	}
	return records, nil
}

func (s *SignupServiceImpl) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
