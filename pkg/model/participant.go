package model

type Participant struct {
	ID       string `json:"id" bson:"_id"`
	FullName string `json:"full_name" bson:"full_name"`
}
