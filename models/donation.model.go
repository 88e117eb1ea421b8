package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Donation statuses
const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"
)

// Donation model
type Donation struct {
	gorm.Model                     // Auto includes ID, CreatedAt, UpdatedAt, DeletedAt
	Name            string         `gorm:"not null" json:"name"`
	Email           string         `gorm:"not null" json:"email"`
	Phone           string         `gorm:"not null" json:"phone"`
	Amount          uint           `gorm:"not null" json:"amount"` // whole rupees
	Message         string         `gorm:"default:''" json:"message"`
	AadharNumber    *string        `json:"aadharNumber"`
	PanCardNumber   *string        `json:"panCardNumber"`
	IdentityProof   *string        `json:"identityProof"` // stored upload path
	CauseSlug       *string        `json:"causeSlug"`
	CustomCause     *string        `json:"customCause"`
	CauseID         *uint          `json:"causeId"`
	Cause           *Cause         `gorm:"foreignKey:CauseID" json:"cause,omitempty"`
	PaymentID       string         `gorm:"unique;not null" json:"paymentId"`
	PaymentResponse datatypes.JSON `json:"-"` // raw gateway payload
	Status          string         `gorm:"not null;default:'pending'" json:"status"`
	Receipt         *string        `json:"receipt"`
	UserID          *uint          `json:"userId"`
	IsRecurring     bool           `gorm:"default:false" json:"isRecurring"`
	IsDeleted       bool           `gorm:"default:false" json:"-"`
}

// donationStatusTransitions defines the legal status moves. Completed and
// failed are terminal; the admin console additionally restricts targets at
// the validator layer.
var donationStatusTransitions = map[string][]string{
	DonationStatusPending:   {DonationStatusCompleted, DonationStatusFailed},
	DonationStatusCompleted: {},
	DonationStatusFailed:    {},
}

// IsValidDonationStatus reports whether s is a known donation status.
func IsValidDonationStatus(s string) bool {
	_, ok := donationStatusTransitions[s]
	return ok
}

// CanTransitionDonationStatus reports whether a donation may move from one
// status to another.
func CanTransitionDonationStatus(from, to string) bool {
	for _, next := range donationStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CauseName resolves the display name used on receipts and in search.
func (d *Donation) CauseName() string {
	if d.Cause != nil {
		return d.Cause.Title
	}
	if d.CustomCause != nil && *d.CustomCause != "" {
		return *d.CustomCause
	}
	return "General Fund"
}
