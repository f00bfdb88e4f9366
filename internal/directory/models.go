package directory

import "time"

type Employee struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Position     string    `json:"position"`
	DepartmentID string    `json:"department"`
	IsRemote     bool      `json:"isRemote"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Department carries exactly one designated manager. The manager identity is
// the authoritative target for manager-type evaluations.
type Department struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ManagerID string    `json:"manager"`
	Active    bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
