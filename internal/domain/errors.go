package domain

import "errors"

var (
	ErrPetNotFound         = errors.New("pet profile not found")
	ErrPreferencesNotFound = errors.New("owner preferences not found")
	ErrPetInactive         = errors.New("pet profile is inactive")
	ErrCannotSwipeSelf     = errors.New("cannot swipe on your own pet")
	ErrSwipeAlreadyExists  = errors.New("swipe already exists")
	ErrNotProfileOwner     = errors.New("pet does not belong to this owner")
)
