package model

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid truck volume")
	ErrCapacityExceeded     = errors.New("not enough room in the truck")
	ErrInvalidRange         = errors.New("invalid quality range")
	ErrInvalidCoffee        = errors.New("invalid coffee parameters")
)
