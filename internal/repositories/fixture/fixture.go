package fixture

import (
	"context"
	"errors"

	"github.com/orgball2608/story-fixtures/internal/domain"
)

var ErrCannotReplace = errors.New("error replace fixtures")

//go:generate go run go.uber.org/mock/mockgen -source=fixture.go -destination=mocks/mock.go

type Repository interface {
	// Replace drops every stored fixture and inserts ds in one transaction.
	Replace(ctx context.Context, ds *domain.Dataset) error
	// Counts reports how many rows each fixture table holds.
	Counts(ctx context.Context) (domain.Summary, error)
}
