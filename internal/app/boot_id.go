package app

import "github.com/google/uuid"

// newBootID returns a time-ordered identifier for one process run. Log
// entries of the same run share it.
func newBootID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
