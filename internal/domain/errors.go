package domain

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrRoomUnavailable   = errors.New("room is not open for booking")
	ErrRangeConflict     = errors.New("room already booked in this range")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrNotCancellable    = errors.New("only pending reservations can be cancelled")
	ErrNotEditable       = errors.New("only pending reservations can be edited")
	ErrNotExtendable     = errors.New("reservation can no longer be extended")
)

var (
	ErrForbidden = errors.New("operation not permitted for this user")
)

var (
	ErrHotelsUnavailable = errors.New("hotels service unavailable")
)

var (
	ErrValidation = errors.New("validation error")
)
