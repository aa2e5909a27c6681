package domain

import "time"

type ActivityType string

const (
	ActivityTypeCustomer ActivityType = "CUSTOMER"
	ActivityTypeCar      ActivityType = "CAR"
	ActivityTypeGarage   ActivityType = "GARAGE"
	ActivityTypeJob      ActivityType = "JOB"
	ActivityTypePayment  ActivityType = "PAYMENT"
)

type ActivityAction string

const (
	ActivityActionCreate   ActivityAction = "CREATE"
	ActivityActionUpdate   ActivityAction = "UPDATE"
	ActivityActionDelete   ActivityAction = "DELETE"
	ActivityActionComplete ActivityAction = "COMPLETE"
	ActivityActionSettle   ActivityAction = "SETTLE"
)

// Activity is one audit-log entry. ActorID identifies the authenticated
// staff member who performed the action.
type Activity struct {
	ID          int64          `json:"id"`
	Type        ActivityType   `json:"type"`
	Action      ActivityAction `json:"action"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
	ActorID     string         `json:"actor_id"`
}
