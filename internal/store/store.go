// Package store holds patient records behind a backend-neutral contract.
package store

import (
	"context"
	"errors"

	"patient-api/internal/models"
)

// ErrNotFound is returned when no patient has the requested id.
var ErrNotFound = errors.New("patient not found")

// PatientStore is implemented by every patient backend.
type PatientStore interface {
	// Create assigns the next id, stamps created_at and stores the record.
	Create(ctx context.Context, in models.PatientInput) (models.Patient, error)
	// List returns up to limit patients in insertion order, starting at offset skip.
	List(ctx context.Context, skip, limit int) ([]models.Patient, error)
	Get(ctx context.Context, id int) (models.Patient, error)
	// Update replaces every field except id and created_at.
	Update(ctx context.Context, id int, in models.PatientInput) (models.Patient, error)
}
