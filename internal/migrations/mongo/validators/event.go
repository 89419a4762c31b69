package validators

import "go.mongodb.org/mongo-driver/bson"

var EventValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"organizer",
			"faculty_in_charge",
			"start_time",
			"end_time",
			"allocation",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"title": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 200,
			},

			"description": bson.M{
				"bsonType":  "string",
				"maxLength": 2000,
			},

			"organizer": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"faculty_in_charge": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"club": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"start_time": bson.M{
				"bsonType": "date",
			},

			"end_time": bson.M{
				"bsonType": "date",
			},

			"allocation": bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"facility_id": bson.M{
						"bsonType": "string",
					},
					"facility_name": bson.M{
						"bsonType": "string",
					},
					"media_ids": bson.M{
						"bsonType": "array",
						"items": bson.M{
							"bsonType":  "string",
							"minLength": 24,
							"maxLength": 24,
						},
					},
				},
			},

			"requirements": bson.M{
				"bsonType": "object",
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"approved",
					"rejected",
					"cancelled",
					"completed",
				},
			},

			"proofs": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"name", "locator", "uploaded_at"},
					"properties": bson.M{
						"name": bson.M{
							"bsonType": "string",
						},
						"locator": bson.M{
							"bsonType": "string",
						},
						"uploaded_at": bson.M{
							"bsonType": "date",
						},
					},
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
