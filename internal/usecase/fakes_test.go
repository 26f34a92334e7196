package usecase

import (
	"context"

	"cinema-rooms/internal/data/entity"
	"cinema-rooms/internal/data/repository"
)

// In-memory repository fakes. The reservation fake enforces seat uniqueness
// the same way the store's unique index does, so conflict translation can be
// exercised without a database.

type fakeRoomRepo struct {
	rooms       map[int64]*entity.CinemaRoom
	nextID      int64
	updateCalls int
	createErr   error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[int64]*entity.CinemaRoom)}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.CinemaRoom) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	room.ID = f.nextID
	cp := *room
	f.rooms[room.ID] = &cp
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id int64) (*entity.CinemaRoom, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *room
	return &cp, nil
}

func (f *fakeRoomRepo) FindAll(_ context.Context) ([]*entity.CinemaRoom, error) {
	var rooms []*entity.CinemaRoom
	for id := int64(1); id <= f.nextID; id++ {
		if room, ok := f.rooms[id]; ok {
			cp := *room
			rooms = append(rooms, &cp)
		}
	}
	return rooms, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *entity.CinemaRoom) error {
	f.updateCalls++
	if _, ok := f.rooms[room.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *room
	f.rooms[room.ID] = &cp
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rooms[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rooms, id)
	return nil
}

type fakeReservationRepo struct {
	reservations []*entity.Reservation
	nextID       int64
	batchCalls   int
	batchErr     error
}

func (f *fakeReservationRepo) FindByRoomID(_ context.Context, roomID int64) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, res := range f.reservations {
		if res.CinemaRoomID == roomID {
			cp := *res
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindSeatPairs(_ context.Context, roomID int64) ([]entity.Seat, error) {
	var seats []entity.Seat
	for _, res := range f.reservations {
		if res.CinemaRoomID == roomID {
			seats = append(seats, entity.Seat{Row: res.Row, Column: res.Column})
		}
	}
	return seats, nil
}

func (f *fakeReservationRepo) MaxSeat(_ context.Context, roomID int64) (int, int, error) {
	var maxRow, maxColumn int
	for _, res := range f.reservations {
		if res.CinemaRoomID != roomID {
			continue
		}
		if res.Row > maxRow {
			maxRow = res.Row
		}
		if res.Column > maxColumn {
			maxColumn = res.Column
		}
	}
	return maxRow, maxColumn, nil
}

func (f *fakeReservationRepo) CountByRoomID(_ context.Context, roomID int64) (int64, error) {
	var count int64
	for _, res := range f.reservations {
		if res.CinemaRoomID == roomID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReservationRepo) CreateBatch(_ context.Context, roomID int64, reservedByName string, seats []entity.Seat) ([]*entity.Reservation, error) {
	f.batchCalls++
	if f.batchErr != nil {
		return nil, f.batchErr
	}

	// All-or-nothing: reject the whole batch on the first conflict.
	taken := make(map[[2]int]bool)
	for _, res := range f.reservations {
		if res.CinemaRoomID == roomID {
			taken[[2]int{res.Row, res.Column}] = true
		}
	}
	for _, seat := range seats {
		if taken[[2]int{seat.Row, seat.Column}] {
			return nil, &repository.SeatTakenError{Row: seat.Row, Column: seat.Column}
		}
	}

	created := make([]*entity.Reservation, len(seats))
	for i, seat := range seats {
		f.nextID++
		created[i] = &entity.Reservation{
			ID:             f.nextID,
			CinemaRoomID:   roomID,
			Row:            seat.Row,
			Column:         seat.Column,
			ReservedByName: reservedByName,
		}
		f.reservations = append(f.reservations, created[i])
	}
	return created, nil
}

func newFakeRepository(roomRepo *fakeRoomRepo, resRepo *fakeReservationRepo) *repository.Repository {
	return &repository.Repository{
		Room:        roomRepo,
		Reservation: resRepo,
	}
}
