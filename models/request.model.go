package models

import "time"

// DonationRequest is the donor-submitted payload for creating a donation.
// Form tags cover the multipart variant used when an identity proof file is
// attached.
type DonationRequest struct {
	Name          string  `json:"name" form:"name"`
	Email         string  `json:"email" form:"email"`
	Phone         string  `json:"phone" form:"phone"`
	Amount        int     `json:"amount" form:"amount"`
	Message       string  `json:"message" form:"message"`
	AadharNumber  *string `json:"aadharNumber" form:"aadharNumber"`
	PanCardNumber *string `json:"panCardNumber" form:"panCardNumber"`
	CauseSlug     *string `json:"causeSlug" form:"causeSlug"`
	CustomCause   *string `json:"customCause" form:"customCause"`
	LockedCause   *string `json:"lockedCause" form:"lockedCause"`
	AcceptTerms   bool    `json:"acceptTerms" form:"acceptTerms"`
	PaymentID     string  `json:"paymentId" form:"paymentId"`
	Status        string  `json:"status" form:"status"`
	IsRecurring   bool    `json:"isRecurring" form:"isRecurring"`
	UserID        *uint   `json:"userId" form:"userId"`
}

// DonationStatusRequest is the admin payload for a status transition.
type DonationStatusRequest struct {
	Status string `json:"status"`
}

// CauseRequest is the admin payload for creating or updating a cause.
type CauseRequest struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Goal        uint       `json:"goal"`
	ImageURL    string     `json:"imageUrl"`
	IsActive    *bool      `json:"isActive"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}
