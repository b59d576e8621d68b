package repository

import (
	"reflect"
	"testing"

	"hoteldash/pkg/model"
)

func fixture() []model.Reservation {
	return []model.Reservation{
		{BookingID: "1", RoomTypeReserved: "Deluxe", ArrivalYear: 2018, BookingStatus: "Canceled"},
		{BookingID: "2", RoomTypeReserved: "Standard", ArrivalYear: 2017, BookingStatus: "Not_Canceled"},
		{BookingID: "3", RoomTypeReserved: "Deluxe", ArrivalYear: 2018, BookingStatus: "Not_Canceled"},
	}
}

func TestStore_DistinctValuesFirstSeenOrder(t *testing.T) {
	store := NewStore(fixture())

	tests := []struct {
		attr model.Attribute
		want []string
	}{
		{model.AttrRoomTypeReserved, []string{"Deluxe", "Standard"}},
		{model.AttrArrivalYear, []string{"2018", "2017"}},
		{model.AttrBookingStatus, []string{"Canceled", "Not_Canceled"}},
		{model.Attribute("lead_time"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.attr), func(t *testing.T) {
			got := store.DistinctValues(tt.attr)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DistinctValues(%s) = %v, want %v", tt.attr, got, tt.want)
			}
		})
	}
}

func TestStore_IsolatedFromCallers(t *testing.T) {
	input := fixture()
	store := NewStore(input)

	input[0].BookingID = "mutated"
	if store.Records()[0].BookingID != "1" {
		t.Errorf("store should not share the input slice")
	}

	out := store.Records()
	out[1].BookingID = "mutated"
	if store.Records()[1].BookingID != "2" {
		t.Errorf("Records() should return a copy")
	}

	opts := store.Options()
	opts[model.AttrRoomTypeReserved][0] = "mutated"
	if store.DistinctValues(model.AttrRoomTypeReserved)[0] != "Deluxe" {
		t.Errorf("Options() should return copies")
	}
}

func TestStore_AllPreservesOrder(t *testing.T) {
	store := NewStore(fixture())

	var ids []string
	for r := range store.All() {
		ids = append(ids, r.BookingID)
	}
	if !reflect.DeepEqual(ids, []string{"1", "2", "3"}) {
		t.Errorf("All() yielded %v", ids)
	}

	var firstOnly []string
	for r := range store.All() {
		firstOnly = append(firstOnly, r.BookingID)
		break
	}
	if len(firstOnly) != 1 {
		t.Errorf("All() should stop when the consumer breaks")
	}
}
