package validators

import "go.mongodb.org/mongo-driver/bson"

var ParticipantValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"_id", "full_name"},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"full_name": bson.M{
				"bsonType": "string",
			},
		},
	},
}
