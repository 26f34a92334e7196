package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSeat struct {
	Row    int `json:"row" validate:"required,min=1"`
	Column int `json:"column" validate:"required,min=1"`
}

type testBooking struct {
	ReservedByName string     `json:"reservedByName" validate:"required,max=255"`
	CinemaRoomID   int64      `json:"cinemaRoomId" validate:"required,gt=0"`
	Seats          []testSeat `json:"seats" validate:"required,min=1,dive"`
}

func TestValidateStructValid(t *testing.T) {
	messages := ValidateStruct(testBooking{
		ReservedByName: "Jane",
		CinemaRoomID:   1,
		Seats:          []testSeat{{Row: 1, Column: 1}},
	})
	assert.Nil(t, messages)
}

func TestValidateStructUsesJSONFieldNames(t *testing.T) {
	messages := ValidateStruct(testBooking{
		CinemaRoomID: 1,
		Seats:        []testSeat{{Row: 1, Column: 1}},
	})
	require.Contains(t, messages, "reservedByName")
	assert.Equal(t, []string{"This field is required"}, messages["reservedByName"])
}

func TestValidateStructNestedSlicePaths(t *testing.T) {
	messages := ValidateStruct(testBooking{
		ReservedByName: "Jane",
		CinemaRoomID:   1,
		Seats: []testSeat{
			{Row: 1, Column: 1},
			{Row: 0, Column: 2},
		},
	})
	require.Contains(t, messages, "seats[1].row")
	assert.NotContains(t, messages, "seats[0].row")
}

func TestValidateStructEmptySlice(t *testing.T) {
	messages := ValidateStruct(testBooking{
		ReservedByName: "Jane",
		CinemaRoomID:   1,
		Seats:          []testSeat{},
	})
	require.Contains(t, messages, "seats")
	assert.Equal(t, []string{"Minimum length is 1"}, messages["seats"])
}

func TestValidateStructCollectsAllFields(t *testing.T) {
	messages := ValidateStruct(testBooking{})
	assert.Contains(t, messages, "reservedByName")
	assert.Contains(t, messages, "cinemaRoomId")
	assert.Contains(t, messages, "seats")
}
