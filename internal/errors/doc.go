// Package errors provides structured error handling for the debate engine.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("debate not found")
//	err := errors.InvalidArgumentf("invalid match count: %d", matches)
//
// Adding metadata:
//
//	err := errors.NotFound("debate not found").
//	    WithMeta("debate_id", debateID).
//	    WithMeta("player_id", playerID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get debate")
//	}
//
// Changing error semantics:
//
//	if err := ctx.Err(); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeCanceled, "simulation canceled")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for missing or expired records
//   - Include relevant IDs in metadata
//   - Wrap Redis errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository and engine errors with business context
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input provided
//   - Internal: Internal error
//   - Canceled: Operation canceled
package errors
