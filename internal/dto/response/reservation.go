package response

import "cinema-rooms/internal/data/entity"

type ReservationResponse struct {
	ID             int64  `json:"id"`
	Row            int    `json:"row"`
	Column         int    `json:"column"`
	ReservedByName string `json:"reservedByName"`
}

func ReservationToResponse(res *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             res.ID,
		Row:            res.Row,
		Column:         res.Column,
		ReservedByName: res.ReservedByName,
	}
}
