package domain

import "time"

// User is a staff account used to authenticate API calls. The username
// becomes the actor id on audit entries.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}
