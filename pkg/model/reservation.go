package model

import "strconv"

// Reservation is one row of the hotel reservations dataset.
type Reservation struct {
	BookingID                       string  `json:"booking_id" csv:"Booking_ID" bson:"Booking_ID"`
	NoOfAdults                      int     `json:"no_of_adults" csv:"no_of_adults" bson:"no_of_adults"`
	NoOfChildren                    int     `json:"no_of_children" csv:"no_of_children" bson:"no_of_children"`
	NoOfWeekendNights               int     `json:"no_of_weekend_nights" csv:"no_of_weekend_nights" bson:"no_of_weekend_nights"`
	NoOfWeekNights                  int     `json:"no_of_week_nights" csv:"no_of_week_nights" bson:"no_of_week_nights"`
	TypeOfMealPlan                  string  `json:"type_of_meal_plan" csv:"type_of_meal_plan" bson:"type_of_meal_plan"`
	RequiredCarParkingSpace         int     `json:"required_car_parking_space" csv:"required_car_parking_space" bson:"required_car_parking_space"`
	RoomTypeReserved                string  `json:"room_type_reserved" csv:"room_type_reserved" bson:"room_type_reserved"`
	LeadTime                        int     `json:"lead_time" csv:"lead_time" bson:"lead_time"`
	ArrivalYear                     int     `json:"arrival_year" csv:"arrival_year" bson:"arrival_year"`
	ArrivalMonth                    int     `json:"arrival_month" csv:"arrival_month" bson:"arrival_month"`
	ArrivalDate                     int     `json:"arrival_date" csv:"arrival_date" bson:"arrival_date"`
	MarketSegmentType               string  `json:"market_segment_type" csv:"market_segment_type" bson:"market_segment_type"`
	RepeatedGuest                   int     `json:"repeated_guest" csv:"repeated_guest" bson:"repeated_guest"`
	NoOfPreviousCancellations       int     `json:"no_of_previous_cancellations" csv:"no_of_previous_cancellations" bson:"no_of_previous_cancellations"`
	NoOfPreviousBookingsNotCanceled int     `json:"no_of_previous_bookings_not_canceled" csv:"no_of_previous_bookings_not_canceled" bson:"no_of_previous_bookings_not_canceled"`
	AvgPricePerRoom                 float64 `json:"avg_price_per_room" csv:"avg_price_per_room" bson:"avg_price_per_room"`
	NoOfSpecialRequests             int     `json:"no_of_special_requests" csv:"no_of_special_requests" bson:"no_of_special_requests"`
	BookingStatus                   string  `json:"booking_status" csv:"booking_status" bson:"booking_status"`
}

// Value returns the reservation's value for a filterable attribute in its
// canonical string form. Years are rendered in base 10.
func (r Reservation) Value(attr Attribute) string {
	switch attr {
	case AttrBookingStatus:
		return r.BookingStatus
	case AttrArrivalYear:
		return strconv.Itoa(r.ArrivalYear)
	case AttrMarketSegmentType:
		return r.MarketSegmentType
	case AttrTypeOfMealPlan:
		return r.TypeOfMealPlan
	case AttrRoomTypeReserved:
		return r.RoomTypeReserved
	}
	return ""
}
