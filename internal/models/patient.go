package models

import "time"

// Patient defines the structure for patient records.
type Patient struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"index"`
	Age       int       `json:"age"`
	Diagnosis *string   `json:"diagnosis"` // Optional field
	CreatedAt time.Time `json:"created_at"`
}

// PatientInput carries the client-writable fields of a patient.
// Both create and full-replace update use it.
type PatientInput struct {
	Name      *string `json:"name" binding:"required"` // present, possibly empty
	Email     string  `json:"email" binding:"required,email"`
	Age       *int    `json:"age" binding:"required"` // pointer so that 0 passes "required"
	Diagnosis *string `json:"diagnosis"`
}

// Apply copies the input fields onto p, leaving ID and CreatedAt untouched.
func (in PatientInput) Apply(p *Patient) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	p.Email = in.Email
	if in.Age != nil {
		p.Age = *in.Age
	}
	p.Diagnosis = cloneString(in.Diagnosis)
}

// Clone returns a copy of p that shares no pointers with it.
func (p Patient) Clone() Patient {
	p.Diagnosis = cloneString(p.Diagnosis)
	return p
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
