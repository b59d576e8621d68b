package validators

import "go.mongodb.org/mongo-driver/bson"

// ReservationValidator rejects documents the dashboard could not load: the
// filterable attributes and the summed columns are required, everything
// else is optional.
var ReservationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"booking_status",
			"arrival_year",
			"market_segment_type",
			"type_of_meal_plan",
			"room_type_reserved",
			"no_of_adults",
			"no_of_children",
			"no_of_special_requests",
			"avg_price_per_room",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"Booking_ID": bson.M{
				"bsonType": "string",
			},

			"booking_status": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"arrival_year": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1900,
			},

			"market_segment_type": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"type_of_meal_plan": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"room_type_reserved": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"no_of_adults": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},

			"no_of_children": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},

			"no_of_special_requests": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},

			"avg_price_per_room": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},
		},
	},
}
