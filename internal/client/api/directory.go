package api

import (
	"context"

	"github.com/userdesk-dev/userdesk/internal/client/models"
)

// Directory is the transport-agnostic contract for the remote user directory.
// Implementations map each operation 1:1 to the backing REST verbs.
type Directory interface {
	// List returns the full collection. The fixture backend ignores page
	// parameters, so pagination is computed by the caller.
	List(ctx context.Context) ([]models.User, error)

	// Get returns a single record by id.
	Get(ctx context.Context, id int) (*models.User, error)

	// Create posts a new record and returns it with the server-assigned id.
	Create(ctx context.Context, form models.UserForm) (*models.User, error)

	// Update replaces the record with the given id and returns the result.
	Update(ctx context.Context, id int, form models.UserForm) (*models.User, error)

	// Delete removes the record. Deleting an id that is no longer present
	// is a no-op success per the fixture contract.
	Delete(ctx context.Context, id int) error
}
