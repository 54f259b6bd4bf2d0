package entity

import (
	"time"
)

// AdmissionStatus is the review state of an application.
type AdmissionStatus string

const (
	// AdmissionSubmitted is the initial state of every application.
	AdmissionSubmitted AdmissionStatus = "submitted"
	// AdmissionUnderReview marks an application an admin has started reading.
	AdmissionUnderReview AdmissionStatus = "under_review"
	// AdmissionAccepted is a positive final decision.
	AdmissionAccepted AdmissionStatus = "accepted"
	// AdmissionRejected is a negative final decision.
	AdmissionRejected AdmissionStatus = "rejected"
)

// IsValid checks if the status is a known value. Transitions between valid
// statuses are not restricted; an admin may move a file back to submitted.
func (s AdmissionStatus) IsValid() bool {
	switch s {
	case AdmissionSubmitted, AdmissionUnderReview, AdmissionAccepted, AdmissionRejected:
		return true
	default:
		return false
	}
}

// PriorDegree is the highest degree an applicant already holds.
type PriorDegree string

const (
	DegreeBac     PriorDegree = "bac"
	DegreeLicence PriorDegree = "licence"
	DegreeMaster  PriorDegree = "master"
	DegreeOther   PriorDegree = "other"
)

// IsValid checks if the degree is a known value.
func (d PriorDegree) IsValid() bool {
	switch d {
	case DegreeBac, DegreeLicence, DegreeMaster, DegreeOther:
		return true
	default:
		return false
	}
}

// Admission is a prospective student's application, including the stable
// reference to the uploaded PDF dossier. Rows are never deleted; the record
// doubles as the audit trail of the decision.
type Admission struct {
	ID           int64
	FullName     string
	Email        string
	Phone        string
	NationalID   string
	DateOfBirth  time.Time
	Address      string
	PriorDegree  PriorDegree
	GPAOrScore   *string
	ProgramTrack *string
	PDFURL       string // Stable reference to the stored dossier; set only after a confirmed upload.
	Status       AdmissionStatus
	NotesAdmin   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdmissionFilter narrows an admin listing query.
type AdmissionFilter struct {
	Status      *AdmissionStatus // Exact status match when set.
	Search      string           // Matched against full name, email and national id.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int // 1-based.
	Limit       int
}

// Offset converts page/limit into a row offset.
func (f AdmissionFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}

	return (page - 1) * f.Limit
}
