package store

import (
	"context"
	"sync"
	"time"

	"patient-api/internal/models"
)

var _ PatientStore = (*Memory)(nil)

// Memory is an in-process PatientStore. Ids come from a counter, so they stay
// unique under concurrent creates.
type Memory struct {
	mu     sync.RWMutex
	byID   map[int]models.Patient
	order  []int
	nextID int
	now    func() time.Time
}

// NewMemory returns an empty store. A nil now defaults to time.Now.
func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{
		byID:   make(map[int]models.Patient),
		nextID: 1,
		now:    now,
	}
}

func (m *Memory) Create(_ context.Context, in models.PatientInput) (models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := models.Patient{ID: m.nextID, CreatedAt: m.now()}
	in.Apply(&p)
	m.nextID++
	m.byID[p.ID] = p
	m.order = append(m.order, p.ID)
	return p.Clone(), nil
}

func (m *Memory) List(_ context.Context, skip, limit int) ([]models.Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Patient{}
	if skip < 0 || limit <= 0 || skip >= len(m.order) {
		return out, nil
	}
	end := len(m.order)
	if limit < end-skip {
		end = skip + limit
	}
	for _, id := range m.order[skip:end] {
		out = append(out, m.byID[id].Clone())
	}
	return out, nil
}

func (m *Memory) Get(_ context.Context, id int) (models.Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.byID[id]
	if !ok {
		return models.Patient{}, ErrNotFound
	}
	return p.Clone(), nil
}

func (m *Memory) Update(_ context.Context, id int, in models.PatientInput) (models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byID[id]
	if !ok {
		return models.Patient{}, ErrNotFound
	}
	in.Apply(&p)
	m.byID[id] = p
	return p.Clone(), nil
}

func (m *Memory) size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}
