package domain

type Garage struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Town     string `json:"town"`
	PostCode string `json:"post_code"`
	PhoneNo  string `json:"phone_no"`
}
