package ports

import (
	"context"

	"framewright/internal/domain"
)

// ProjectLoader reads the persisted project state
type ProjectLoader interface {
	Load(ctx context.Context) (*domain.ProjectState, error)
}

// ProjectSaver persists the full project state
type ProjectSaver interface {
	Save(ctx context.Context, state *domain.ProjectState) error
}

// ProjectResetter wipes the persisted state
type ProjectResetter interface {
	Reset(ctx context.Context) error
}

// ProjectRepository is the composite interface. The app is single-user
// and single-project: there is at most one persisted state, and Load on
// an empty store returns domain.ErrProjectNotFound.
type ProjectRepository interface {
	ProjectLoader
	ProjectSaver
	ProjectResetter
	Close() error
}
