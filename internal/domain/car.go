package domain

// Car is keyed by its registration number; CustomerID links it to its owner.
type Car struct {
	RegNo      string `json:"reg_no"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	CustomerID int64  `json:"customer_id"`
}
