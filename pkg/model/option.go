package model

type OptionCategory string

const (
	OptionTypes    OptionCategory = "types"
	OptionTrainers OptionCategory = "trainers"
	OptionRooms    OptionCategory = "rooms"
)

var OptionCategories = []OptionCategory{OptionTypes, OptionTrainers, OptionRooms}

func ParseOptionCategory(s string) (OptionCategory, bool) {
	for _, c := range OptionCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Option is one entry of a drop-down list, ordered by Position within its category.
type Option struct {
	Category OptionCategory `json:"category" bson:"category"`
	Value    string         `json:"value" bson:"value"`
	Position int            `json:"position" bson:"position"`
}
