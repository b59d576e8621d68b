package model

// Attribute names a categorical column the dashboard can filter or chart on.
type Attribute string

const (
	AttrBookingStatus     Attribute = "booking_status"
	AttrArrivalYear       Attribute = "arrival_year"
	AttrMarketSegmentType Attribute = "market_segment_type"
	AttrTypeOfMealPlan    Attribute = "type_of_meal_plan"
	AttrRoomTypeReserved  Attribute = "room_type_reserved"
)

// FilterAttributes lists the sidebar filters in display order.
var FilterAttributes = []Attribute{
	AttrBookingStatus,
	AttrArrivalYear,
	AttrMarketSegmentType,
	AttrTypeOfMealPlan,
	AttrRoomTypeReserved,
}

// RequiredColumns are the dataset columns the dashboard cannot work without.
var RequiredColumns = []string{
	string(AttrBookingStatus),
	string(AttrArrivalYear),
	string(AttrMarketSegmentType),
	string(AttrTypeOfMealPlan),
	string(AttrRoomTypeReserved),
	"no_of_adults",
	"no_of_children",
	"no_of_special_requests",
	"avg_price_per_room",
}

func (a Attribute) IsFilterable() bool {
	for _, f := range FilterAttributes {
		if f == a {
			return true
		}
	}
	return false
}

func (a Attribute) Label() string {
	switch a {
	case AttrBookingStatus:
		return "filter by booking status"
	case AttrArrivalYear:
		return "filter by arrival year"
	case AttrMarketSegmentType:
		return "filter by market segment"
	case AttrTypeOfMealPlan:
		return "filter by type of meal planned"
	case AttrRoomTypeReserved:
		return "filter by room type reserved"
	}
	return string(a)
}
