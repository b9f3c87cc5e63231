package entities

import "time"

type JobApplication struct {
	ID          int64
	ShipmentID  string
	DriverID    string
	Status      ApplicationStatusType
	AppliedAt   time.Time
	RespondedAt *time.Time
	Notes       *string
}

type ApplicationStatusType string

const (
	ApplicationPending   ApplicationStatusType = "pending"
	ApplicationAccepted  ApplicationStatusType = "accepted"
	ApplicationRejected  ApplicationStatusType = "rejected"
	ApplicationCancelled ApplicationStatusType = "cancelled"
)

func (s ApplicationStatusType) String() string {
	return string(s)
}

type ApplicationModify struct {
	ID          *int64
	ShipmentID  *string
	DriverID    *string
	Status      *ApplicationStatusType
	AppliedAt   *time.Time
	RespondedAt *time.Time
	Notes       *string
}

// ShipmentAssignment — результат выигранного назначения.
type ShipmentAssignment struct {
	ShipmentID    string
	DriverID      string
	ApplicationID int64
	AssignedAt    time.Time
	RejectedCount int64
}
