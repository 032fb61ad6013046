package request

import (
	"hotel-admin/internal/domain/operator"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (operator.Credentials, error) {
	return operator.NewCredentials(r.Email, r.Password)
}

// PageRequest is the query of the stateless list endpoints; After is a
// NextCursor from a previous page.
type PageRequest struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// UpdateBookingStatusRequest only admits the two decisions; pending is never a target.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}

type MountViewRequest struct {
	Kind string `json:"kind" binding:"required,oneof=users bookings"`
}

// IntentRequest leaves status validation to the gate so an unknown value
// surfaces as ErrInvalidStatus.
type IntentRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
}
