package utils

import "github.com/google/uuid"

// UUIDGenerator produces request ids. Version 7 ids sort by creation time,
// which keeps log lines of one session together.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID, or a random v4 one if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
