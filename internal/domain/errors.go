package domain

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrBuildingNotFound    = errors.New("building not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrTimeSlotNotFound    = errors.New("time slot not found")
	ErrSanctionNotFound    = errors.New("sanction not found")
)

var (
	ErrSlotTaken        = errors.New("room is already reserved for this date and time slot")
	ErrSanctionActive   = errors.New("participant has an active sanction")
	ErrRoomNotAllowed   = errors.New("participant cannot book this room type")
	ErrDailyLimit       = errors.New("daily reservation limit reached")
	ErrWeeklyLimit      = errors.New("weekly reservation limit reached")
	ErrCapacityExceeded = errors.New("room capacity exceeded")
)

var (
	ErrReservationNotActive    = errors.New("reservation is not active")
	ErrReservationNotDeletable = errors.New("only cancelled or no-show reservations can be deleted")
	ErrLastParticipant         = errors.New("an active reservation must keep at least one participant")
	ErrAlreadyOnReservation    = errors.New("participant is already on this reservation")
	ErrNotOnReservation        = errors.New("participant is not on this reservation")
	ErrSanctionOverlap         = errors.New("participant already has a sanction in this period")
)

var (
	ErrParticipantExists = errors.New("participant already exists")
	ErrRoomExists        = errors.New("room already exists")
	ErrDuplicate         = errors.New("duplicate entry")
	ErrParticipantInUse  = errors.New("participant has reservations or sanctions")
	ErrRoomInUse         = errors.New("room has reservations")
)

var (
	ErrValidation = errors.New("validation error")
)
