package models

import "time"

const (
	DemoRequestStatusPending   = "Pending"
	DemoRequestStatusContacted = "Contacted"
	DemoRequestStatusCompleted = "Completed"
	DemoRequestStatusCancelled = "Cancelled"
)

var demoRequestStatuses = map[string]bool{
	DemoRequestStatusPending:   true,
	DemoRequestStatusContacted: true,
	DemoRequestStatusCompleted: true,
	DemoRequestStatusCancelled: true,
}

func IsValidDemoRequestStatus(status string) bool {
	return demoRequestStatuses[status]
}

// DemoRequestInput is the public "request a demo" form payload.
type DemoRequestInput struct {
	Name    string `bson:"name" json:"name" validate:"required"`
	Email   string `bson:"email" json:"email" validate:"required,email"`
	Mobile  string `bson:"mobile" json:"mobile" validate:"required"`
	Message string `bson:"message,omitempty" json:"message,omitempty"`
}

type DemoRequest struct {
	ID               string `bson:"id,omitempty" json:"id"`
	DemoRequestInput `bson:",inline"`
	Status           string    `bson:"status" json:"status"`
	Date             string    `bson:"date" json:"date"`
	Created_at       time.Time `bson:"created_at" json:"created_at"`
}
