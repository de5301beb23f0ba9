package booking

import (
	"strconv"
	"strings"
	"time"
)

// TrialStepOne is the first page of the trial form: contact details.
type TrialStepOne struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=10"`
}

// TrialStepTwo is the second page: service and preferred slot.
type TrialStepTwo struct {
	ServiceID     string `json:"service" validate:"required"`
	PreferredDate string `json:"preferredDate" validate:"required"`
	PreferredTime string `json:"preferredTime" validate:"required"`
}

// TrialBooking is the persisted trial record. Only one is kept; a new
// submission replaces the previous record.
type TrialBooking struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ServiceID     string `json:"service"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	BookingID     string `json:"bookingId"`
	CreatedAt     string `json:"createdAt"`
}

// BookingRequest is the full booking form on the book page.
type BookingRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10,max=15"`
	Service string `json:"service" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Message string `json:"message" validate:"max=500"`
}

// BookingConfirmation is what the confirmation modal shows. Full bookings are
// not persisted; the reference is for display only.
type BookingConfirmation struct {
	Reference string         `json:"reference"`
	Request   BookingRequest `json:"request"`
	CreatedAt string         `json:"createdAt"`
}

// NewsletterSubscription is the persisted signup record.
type NewsletterSubscription struct {
	Email        string `json:"email"`
	SubscribedAt string `json:"subscribedAt"`
}

// Booking references are an uppercase base-36 millisecond timestamp behind a
// fixed marker; unique enough for display, with no server to adjudicate
// collisions.
const (
	trialIDPrefix   = "PF-TRIAL-"
	bookingIDPrefix = "PF-"
)

func NewTrialBookingID(now time.Time) string {
	return trialIDPrefix + timestampToken(now)
}

func NewBookingReference(now time.Time) string {
	return bookingIDPrefix + timestampToken(now)
}

func timestampToken(now time.Time) string {
	return strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
}

// MinBookingDate is the earliest selectable trial date: tomorrow.
func MinBookingDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format("2006-01-02")
}
