package validators

import "go.mongodb.org/mongo-driver/bson"

var SessionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"type",
			"room",
			"trainer",
			"date",
			"start",
			"end",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"type": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},

			"room": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},

			"trainer": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"start": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{2}:\d{2}$`,
			},

			"end": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{2}:\d{2}$`,
			},

			"participant_ids": bson.M{
				"bsonType": []string{"array", "null"},
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"participant_names": bson.M{
				"bsonType": []string{"array", "null"},
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
