// Package debates provides repository interface and types for stored
// debate results.
package debates

import (
	"context"
	"time"

	"github.com/KirkDiggler/debate-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=debatesmock github.com/KirkDiggler/debate-api/internal/repositories/debates Repository

// Record is a stored debate result with its storage lifetime.
type Record struct {
	Result *entities.DebateResult `json:"result"`

	// SavedAt is when the record was written.
	SavedAt time.Time `json:"saved_at"`

	// ExpiresAt is when the record is considered stale.
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateInput contains parameters for storing a debate result
type CreateInput struct {
	Result *entities.DebateResult
	TTL    time.Duration // How long the record should live
}

// CreateOutput contains the result of storing a debate result
type CreateOutput struct {
	Record *Record
}

// GetInput contains parameters for retrieving a debate result
type GetInput struct {
	DebateID string
}

// GetOutput contains the result of retrieving a debate result
type GetOutput struct {
	Record *Record
}

// DeleteInput contains parameters for deleting a debate result
type DeleteInput struct {
	DebateID string
}

// DeleteOutput contains the result of deleting a debate result
type DeleteOutput struct {
	RoundsDeleted int32
}

// Repository defines the interface for debate result storage operations
type Repository interface {
	// Create stores a debate result with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a debate result by debate ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a stored debate result
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
