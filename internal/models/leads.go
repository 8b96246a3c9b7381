package models

import (
	"time"
)

// EnquiryType classifies where an enquiry came from.
type EnquiryType string

const (
	EnquiryTypeGeneral  EnquiryType = "general"
	EnquiryTypeProperty EnquiryType = "property"
	EnquiryTypeCallback EnquiryType = "callback"
)

// Enquiry is a lead captured from a public contact form.
// PropertyID is a weak reference kept for display only; the referenced
// property may be deleted without cascading here.
type Enquiry struct {
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      *string     `json:"phone,omitempty"`
	Message    string      `json:"message"`
	Type       EnquiryType `json:"type"`
	PropertyID *int64      `json:"propertyId,omitempty"`
	ID         int64       `json:"id"`
}

// ReferralSource is how a career applicant heard about the company.
type ReferralSource string

const (
	ReferralSourceLinkedIn  ReferralSource = "LINKEDIN"
	ReferralSourceInstagram ReferralSource = "INSTAGRAM"
	ReferralSourceFriend    ReferralSource = "FRIEND"
	ReferralSourceWebsite   ReferralSource = "WEBSITE"
	ReferralSourceOther     ReferralSource = "OTHER"
)

// CareerApplication is a job application; one per email address.
type CareerApplication struct {
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	WhatsappNumber string         `json:"whatsappNumber"`
	ReferralSource ReferralSource `json:"referralSource"`
	ReferralOther  *string        `json:"referralOther,omitempty"`
	ResumeLink     string         `json:"resumeLink"`
	ID             int64          `json:"id"`
}

// TACRegistration is a registration for The Advisors Club.
type TACRegistration struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address,omitempty"`
	ID        int64     `json:"id"`
}

// EmailSubscription is a newsletter signup. Inserts are idempotent:
// resubscribing the same address is a no-op success.
type EmailSubscription struct {
	CreatedAt time.Time `json:"createdAt"`
	Email     string    `json:"email"`
	ID        int64     `json:"id"`
}

// ValidReferralSource reports whether s is a recognized referral source.
func ValidReferralSource(s ReferralSource) bool {
	switch s {
	case ReferralSourceLinkedIn, ReferralSourceInstagram, ReferralSourceFriend,
		ReferralSourceWebsite, ReferralSourceOther:
		return true
	}
	return false
}
