package response

import (
	"time"

	"hotel-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OperatorResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func FromOperatorView(v *queries.OperatorView) (*OperatorResponse, error) {
	if v == nil {
		return nil, nil
	}
	var out OperatorResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	ExpiresAt   time.Time         `json:"expires_at"`
	Operator    *OperatorResponse `json:"operator"`
}

// EntryResponse answers GET / for a visitor without a session.
type EntryResponse struct {
	View string `json:"view"`
}

type DashboardResponse struct {
	Tabs       []string          `json:"tabs"`
	DefaultTab string            `json:"default_tab"`
	Operator   *OperatorResponse `json:"operator"`
}
