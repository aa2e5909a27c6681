package domain

type Customer struct {
	ID       int64  `json:"id"`
	Forename string `json:"forename"`
	Surname  string `json:"surname"`
	Address  string `json:"address"`
	PostCode string `json:"post_code"`
	PhoneNo  string `json:"phone_no"`
}
