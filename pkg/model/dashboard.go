package model

// KPIs are whole-number column totals; fractional parts are dropped, not
// rounded.
type KPIs struct {
	TotalAdults          int64 `json:"total_adults"`
	TotalChildren        int64 `json:"total_children"`
	TotalAvgRoomPrice    int64 `json:"total_avg_room_price"`
	TotalSpecialRequests int64 `json:"total_special_requests"`
}

type RoomTypeTotal struct {
	RoomType   string  `json:"room_type"`
	TotalPrice float64 `json:"total_price"`
}

type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FilterOptions maps each filterable attribute to its distinct values in
// first-seen order.
type FilterOptions map[Attribute][]string

type Dashboard struct {
	Rows           int             `json:"rows"`
	KPIs           KPIs            `json:"kpis"`
	RoomTypes      []RoomTypeTotal `json:"room_types"`
	MarketSegments []CategoryCount `json:"market_segments"`
	MealPlans      []CategoryCount `json:"meal_plans"`
}
