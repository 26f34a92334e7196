package request

type RoomCreateRequest struct {
	Rows          int    `json:"rows" validate:"required,min=1,max=255"`
	Columns       int    `json:"columns" validate:"required,min=1,max=255"`
	Movie         string `json:"movie" validate:"max=255"`
	MovieDatetime string `json:"movieDatetime" validate:"required"`
}

// RoomUpdateRequest applies only the fields present in the body, so PUT and
// PATCH share it.
type RoomUpdateRequest struct {
	Rows          *int    `json:"rows,omitempty" validate:"omitempty,min=1,max=255"`
	Columns       *int    `json:"columns,omitempty" validate:"omitempty,min=1,max=255"`
	Movie         *string `json:"movie,omitempty" validate:"omitempty,max=255"`
	MovieDatetime *string `json:"movieDatetime,omitempty"`
}
