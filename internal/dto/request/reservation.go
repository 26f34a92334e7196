package request

type SeatRequest struct {
	Row    int `json:"row" validate:"required,min=1"`
	Column int `json:"column" validate:"required,min=1"`
}

type ReservationRequest struct {
	ReservedByName string        `json:"reservedByName" validate:"required,max=255"`
	CinemaRoomID   int64         `json:"cinemaRoomId" validate:"required,gt=0"`
	Seats          []SeatRequest `json:"seats" validate:"required,min=1,dive"`
}
