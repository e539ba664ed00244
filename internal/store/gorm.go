package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"patient-api/internal/models"

	"gorm.io/gorm"
)

var _ PatientStore = (*Gorm)(nil)

// Gorm is a PatientStore backed by a SQL database through gorm.
// The auto-increment primary key provides the sequential ids.
type Gorm struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGorm wraps an open connection. A nil now defaults to time.Now.
func NewGorm(db *gorm.DB, now func() time.Time) *Gorm {
	if now == nil {
		now = time.Now
	}
	return &Gorm{db: db, now: now}
}

func (g *Gorm) Create(ctx context.Context, in models.PatientInput) (models.Patient, error) {
	p := models.Patient{CreatedAt: g.now()}
	in.Apply(&p)
	if err := g.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Patient{}, fmt.Errorf("insert patient: %w", err)
	}
	return p, nil
}

func (g *Gorm) List(ctx context.Context, skip, limit int) ([]models.Patient, error) {
	patients := []models.Patient{}
	if skip < 0 || limit <= 0 {
		return patients, nil
	}
	err := g.db.WithContext(ctx).
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (g *Gorm) Get(ctx context.Context, id int) (models.Patient, error) {
	var p models.Patient
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Patient{}, ErrNotFound
		}
		return models.Patient{}, fmt.Errorf("get patient %d: %w", id, err)
	}
	return p, nil
}

func (g *Gorm) Update(ctx context.Context, id int, in models.PatientInput) (models.Patient, error) {
	var p models.Patient
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			return err
		}
		in.Apply(&p)
		return tx.Save(&p).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Patient{}, ErrNotFound
		}
		return models.Patient{}, fmt.Errorf("update patient %d: %w", id, err)
	}
	return p, nil
}
