package domain

import "time"

type JobStatus string

const (
	JobStatusOpen      JobStatus = "OPEN"
	JobStatusCompleted JobStatus = "COMPLETED"
)

// Job is one service visit of a car at a garage. A nil DateOut means the
// vehicle has not left service yet; setting it is the terminal transition.
type Job struct {
	ID       int64      `json:"id"`
	GarageID int64      `json:"garage_id"`
	RegNo    string     `json:"reg_no"`
	DateIn   time.Time  `json:"date_in"`
	DateOut  *time.Time `json:"date_out,omitempty"`
	Cost     *float64   `json:"cost,omitempty"`
}

func (j *Job) Status() JobStatus {
	if j.DateOut != nil {
		return JobStatusCompleted
	}
	return JobStatusOpen
}

func (j *Job) Completed() bool {
	return j.DateOut != nil
}
