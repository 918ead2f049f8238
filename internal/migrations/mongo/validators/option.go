package validators

import "go.mongodb.org/mongo-driver/bson"

var OptionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"category", "value", "position"},
		"additionalProperties": true,

		"properties": bson.M{
			"category": bson.M{
				"enum": []string{"types", "trainers", "rooms"},
			},

			"value": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},

			"position": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},
		},
	},
}
