package repository

import (
	"context"
	"fmt"

	"github.com/RigelNana/arksignup/services/signup-service/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormSignupRepository keeps signup fields in a JSON column, for deployments
// without a document store.
type GormSignupRepository struct {
	db     *gorm.DB
	driver string
}

func NewGormSignupRepository(db *gorm.DB, driver string) *GormSignupRepository {
	return &GormSignupRepository{db: db, driver: driver}
}

func (r *GormSignupRepository) Insert(ctx context.Context, s models.Signup) (string, error) {
	row := &models.SignupRow{
		ID:     uuid.NewString(),
		Fields: datatypes.JSONMap(s.WithoutID()),
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return "", fmt.Errorf("insert signup: %w", err)
	}
	return row.ID, nil
}

func (r *GormSignupRepository) FindAll(ctx context.Context) ([]models.Signup, error) {
	var rows []*models.SignupRow
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find signups: %w", err)
	}

	out := make([]models.Signup, 0, len(rows))
	for _, row := range rows {
		s := models.Signup(row.Fields)
		if s == nil {
			s = models.Signup{}
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *GormSignupRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *GormSignupRepository) Close(context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *GormSignupRepository) Driver() string { return r.driver }
