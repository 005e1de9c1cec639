package store

import "github.com/google/uuid"

// uuidGenerator assigns stable identifiers to groups and entries so the
// logical schema survives export into identifier-keyed formats.
type uuidGenerator struct {
}

func newUUIDGenerator() *uuidGenerator {
	return &uuidGenerator{}
}

// Generate returns a time-ordered UUID (v7), falling back to a random v4
// when the system clock is unusable.
func (g *uuidGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
