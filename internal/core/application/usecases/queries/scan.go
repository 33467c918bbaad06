package queries

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"

	"github.com/google/uuid"
)

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func parseStatus(name string) (lifecycle.Status, error) {
	return lifecycle.ParseStatus(name)
}

func parseOptionalStatus(name *string) (*lifecycle.Status, error) {
	if name == nil {
		return nil, nil //nolint:nilnil // registration rows have no previous status
	}
	s, err := lifecycle.ParseStatus(*name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
