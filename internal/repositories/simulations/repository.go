// Package simulations provides repository interface and types for
// stored simulation summaries.
package simulations

import (
	"context"
	"time"

	"github.com/KirkDiggler/debate-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=simulationsmock github.com/KirkDiggler/debate-api/internal/repositories/simulations Repository

// Record is a stored pairing summary with its storage lifetime.
type Record struct {
	SimulationID string               `json:"simulation_id"`
	Stats        *entities.MatchStats `json:"stats"`

	// SavedAt is when the record was written.
	SavedAt time.Time `json:"saved_at"`

	// ExpiresAt is when the record is considered stale.
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateInput contains parameters for storing a simulation summary
type CreateInput struct {
	SimulationID string
	Stats        *entities.MatchStats
	TTL          time.Duration // How long the record should live
}

// CreateOutput contains the result of storing a simulation summary
type CreateOutput struct {
	Record *Record
}

// GetInput contains parameters for retrieving a simulation summary
type GetInput struct {
	SimulationID string
}

// GetOutput contains the result of retrieving a simulation summary
type GetOutput struct {
	Record *Record
}

// Repository defines the interface for simulation summary storage
type Repository interface {
	// Create stores a simulation summary with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a simulation summary by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}
