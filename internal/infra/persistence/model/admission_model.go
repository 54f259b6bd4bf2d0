package model

import (
	"time"

	"campus/internal/domain/entity"
)

// AdmissionModel mirrors the 'admissions' table.
type AdmissionModel struct {
	ID           int64     `gorm:"primary_key;autoIncrement"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;index"`
	Phone        string    `gorm:"type:varchar(50);not null"`
	NationalID   string    `gorm:"type:varchar(50);not null;index"`
	DateOfBirth  time.Time `gorm:"type:date;not null"`
	Address      string    `gorm:"type:text;not null"`
	PriorDegree  string    `gorm:"type:varchar(20);not null"`
	GPAOrScore   *string   `gorm:"type:varchar(20)"`
	ProgramTrack *string   `gorm:"type:varchar(100)"`
	PDFURL       string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'submitted';index"`
	NotesAdmin   *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdmissionModel) TableName() string {
	return "admissions"
}

// ToDomain converts the persistence model to a domain entity.
func (m *AdmissionModel) ToDomain() *entity.Admission {
	if m == nil {
		return nil
	}

	return &entity.Admission{
		ID:           m.ID,
		FullName:     m.FullName,
		Email:        m.Email,
		Phone:        m.Phone,
		NationalID:   m.NationalID,
		DateOfBirth:  m.DateOfBirth,
		Address:      m.Address,
		PriorDegree:  entity.PriorDegree(m.PriorDegree),
		GPAOrScore:   m.GPAOrScore,
		ProgramTrack: m.ProgramTrack,
		PDFURL:       m.PDFURL,
		Status:       entity.AdmissionStatus(m.Status),
		NotesAdmin:   m.NotesAdmin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// AdmissionModelFromDomain converts a domain entity to the persistence model.
func AdmissionModelFromDomain(a *entity.Admission) *AdmissionModel {
	if a == nil {
		return nil
	}

	return &AdmissionModel{
		ID:           a.ID,
		FullName:     a.FullName,
		Email:        a.Email,
		Phone:        a.Phone,
		NationalID:   a.NationalID,
		DateOfBirth:  a.DateOfBirth,
		Address:      a.Address,
		PriorDegree:  string(a.PriorDegree),
		GPAOrScore:   a.GPAOrScore,
		ProgramTrack: a.ProgramTrack,
		PDFURL:       a.PDFURL,
		Status:       string(a.Status),
		NotesAdmin:   a.NotesAdmin,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
