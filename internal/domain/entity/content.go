package entity

import (
	"time"
)

// Content entities are the marketing-site resources managed through the
// generic content store. They are uniform validate-then-persist records, so
// unlike users/sessions/admissions they carry their storage tags directly and
// skip the persistence-model mapping layer.

// LocalizedText holds the trilingual variants of a displayed string. The
// site renders French and Arabic everywhere; English is optional.
type LocalizedText struct {
	Fr string `json:"fr" gorm:"column:fr"`
	Ar string `json:"ar" gorm:"column:ar"`
	En string `json:"en,omitempty" gorm:"column:en"`
}

// Project is a showcased research or student project.
type Project struct {
	ID          int64         `json:"id" gorm:"primaryKey"`
	Title       LocalizedText `json:"title" gorm:"embedded;embeddedPrefix:title_"`
	Description LocalizedText `json:"description" gorm:"embedded;embeddedPrefix:description_"`
	ImageURL    string        `json:"imageUrl"`
	Active      bool          `json:"active"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// NewsItem is a dated announcement on the public site.
type NewsItem struct {
	ID          int64         `json:"id" gorm:"primaryKey"`
	Title       LocalizedText `json:"title" gorm:"embedded;embeddedPrefix:title_"`
	Body        LocalizedText `json:"body" gorm:"embedded;embeddedPrefix:body_"`
	ImageURL    string        `json:"imageUrl"`
	PublishedAt time.Time     `json:"publishedAt"`
	Active      bool          `json:"active"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Event is a scheduled happening (open day, defense, conference).
type Event struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	Title     LocalizedText `json:"title" gorm:"embedded;embeddedPrefix:title_"`
	Body      LocalizedText `json:"body" gorm:"embedded;embeddedPrefix:body_"`
	Location  string        `json:"location"`
	StartsAt  time.Time     `json:"startsAt"`
	EndsAt    *time.Time    `json:"endsAt,omitempty"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Course is a taught module in the program curriculum.
type Course struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	Code      string        `json:"code"`
	Title     LocalizedText `json:"title" gorm:"embedded;embeddedPrefix:title_"`
	Summary   LocalizedText `json:"summary" gorm:"embedded;embeddedPrefix:summary_"`
	Semester  int           `json:"semester"`
	Credits   int           `json:"credits"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// FacultyMember is a staff profile on the team page.
type FacultyMember struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	FullName  string        `json:"fullName"`
	TitleText LocalizedText `json:"titleText" gorm:"embedded;embeddedPrefix:title_"`
	Bio       LocalizedText `json:"bio" gorm:"embedded;embeddedPrefix:bio_"`
	PhotoURL  string        `json:"photoUrl"`
	Email     string        `json:"email"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Partnership is an industrial or academic partner logo/blurb.
type Partnership struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name"`
	Blurb     LocalizedText `json:"blurb" gorm:"embedded;embeddedPrefix:blurb_"`
	LogoURL   string        `json:"logoUrl"`
	SiteURL   string        `json:"siteUrl"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Testimonial is a quote from an alumnus or partner.
type Testimonial struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	Author    string        `json:"author"`
	RoleLabel string        `json:"roleLabel"`
	Quote     LocalizedText `json:"quote" gorm:"embedded;embeddedPrefix:quote_"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ContactMessage is a visitor inquiry from the contact form. Created by the
// public, readable by admins only.
type ContactMessage struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SiteSetting is a keyed fragment of site chrome (hero text, contact info).
type SiteSetting struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	Key       string        `json:"key" gorm:"uniqueIndex"`
	Value     LocalizedText `json:"value" gorm:"embedded;embeddedPrefix:value_"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// FeatureFlag toggles optional site sections without a redeploy.
type FeatureFlag struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
