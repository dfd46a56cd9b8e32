package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"framewright/internal/catalog"
	"framewright/internal/domain"
	"framewright/internal/generator"
	"framewright/internal/logging"
	"framewright/internal/ports"
)

// ProjectService owns all project state mutations. Every mutator loads
// the current state, applies the change, stamps UpdatedAt, and saves the
// whole state back in one call.
type ProjectService struct {
	repo    ports.ProjectRepository
	catalog *catalog.Catalog
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo ports.ProjectRepository, cat *catalog.Catalog) *ProjectService {
	return &ProjectService{
		repo:    repo,
		catalog: cat,
	}
}

// Catalog returns the convention catalog the service resolves against
func (s *ProjectService) Catalog() *catalog.Catalog {
	return s.catalog
}

// LoadOrCreate returns the persisted project, creating and saving a
// fresh one when the store is empty
func (s *ProjectService) LoadOrCreate(ctx context.Context) (*domain.ProjectState, error) {
	state, err := s.repo.Load(ctx)
	if err == nil {
		return state, nil
	}
	if err != domain.ErrProjectNotFound {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	logging.Logger.Info("No project found, creating a new one")
	state = domain.NewProjectState()
	if err := s.repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save new project: %w", err)
	}
	return state, nil
}

// Load returns the persisted project
func (s *ProjectService) Load(ctx context.Context) (*domain.ProjectState, error) {
	return s.repo.Load(ctx)
}

// Save persists the given state wholesale, stamping UpdatedAt. The
// wizard uses this after each completed step.
func (s *ProjectService) Save(ctx context.Context, state *domain.ProjectState) error {
	state.Meta.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, state); err != nil {
		logging.Logger.Error("Failed to save project", "error", err)
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// mutate loads the project, applies fn, and saves the result
func (s *ProjectService) mutate(ctx context.Context, fn func(*domain.ProjectState) error) error {
	state, err := s.LoadOrCreate(ctx)
	if err != nil {
		return err
	}
	if err := fn(state); err != nil {
		return err
	}
	return s.Save(ctx, state)
}

// SetIdentity updates name, purpose, and mode, deriving the slug from
// the name
func (s *ProjectService) SetIdentity(ctx context.Context, name, purpose string, mode domain.ProjectMode) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		state.Identity.Name = name
		state.Identity.Slug = domain.Slugify(name)
		state.Identity.Purpose = purpose
		if mode != "" {
			state.Identity.ProjectMode = mode
		}
		logging.Logger.Info("Project identity updated", "name", name, "slug", state.Identity.Slug)
		return nil
	})
}

// SetTechStack replaces the stack selection. When the project has no
// layers yet they are seeded from the stack's smart defaults, as is the
// app type.
func (s *ProjectService) SetTechStack(ctx context.Context, ts domain.TechStackSelection) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		state.Identity.TechStack = ts

		defaults := catalog.DefaultsForStack(ts)
		if state.Architecture.AppType == "" {
			state.Architecture.AppType = defaults.AppType
		}
		if len(state.Architecture.Layers) == 0 {
			state.Architecture.Layers = defaults.Layers
			logging.Logger.Info("Seeded architecture layers from stack defaults",
				"framework", ts.Framework, "layers", len(defaults.Layers))
		}
		return nil
	})
}

// SetArchitecture replaces the app type and layer list
func (s *ProjectService) SetArchitecture(ctx context.Context, arch domain.ProjectArchitecture) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		state.Architecture = arch
		return nil
	})
}

// SetStyling replaces colors, fonts, and styling notes
func (s *ProjectService) SetStyling(ctx context.Context, styling domain.ProjectStyling) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		state.Styling = styling
		return nil
	})
}

// SetDecision records a convention decision, replacing any previous
// decision for the same question
func (s *ProjectService) SetDecision(ctx context.Context, d domain.ConventionDecision) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		kept := state.Conventions.Decisions[:0]
		for _, existing := range state.Conventions.Decisions {
			if existing.QuestionID != d.QuestionID {
				kept = append(kept, existing)
			}
		}
		state.Conventions.Decisions = append(kept, d)
		return nil
	})
}

// SetCustomConventions replaces the free-text conventions block
func (s *ProjectService) SetCustomConventions(ctx context.Context, text string) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		state.Conventions.CustomConventions = text
		return nil
	})
}

// SetDatabase replaces the database section
func (s *ProjectService) SetDatabase(ctx context.Context, db domain.ProjectDatabase) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		state.Database = db
		return nil
	})
}

// AddFeature appends a feature, assigning id, slug, and sort order.
// Adding the first feature materializes the skeleton deployment task.
func (s *ProjectService) AddFeature(ctx context.Context, f domain.Feature) (string, error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.Slug == "" {
		f.Slug = domain.Slugify(f.Name)
	}

	err := s.mutate(ctx, func(state *domain.ProjectState) error {
		wasEmpty := len(state.Features) == 0
		f.SortOrder = len(state.Features)
		state.Features = append(state.Features, f)

		if wasEmpty && domain.EnsureSkeletonTask(state) {
			logging.Logger.Info("Skeleton deployment task added with first feature")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return f.ID, nil
}

// UpdateFeature replaces an existing feature's editable fields, keeping
// id and sort order
func (s *ProjectService) UpdateFeature(ctx context.Context, f domain.Feature) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		existing := state.FeatureByID(f.ID)
		if existing == nil {
			return domain.ErrFeatureNotFound
		}
		f.SortOrder = existing.SortOrder
		if f.Slug == "" {
			f.Slug = domain.Slugify(f.Name)
		}
		*existing = f
		return nil
	})
}

// RemoveFeature deletes a feature. Tasks referencing it keep existing
// but drop the reference, so no task ever points at a missing feature.
func (s *ProjectService) RemoveFeature(ctx context.Context, featureID string) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		idx := -1
		for i := range state.Features {
			if state.Features[i].ID == featureID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrFeatureNotFound
		}
		state.Features = append(state.Features[:idx], state.Features[idx+1:]...)
		for i := range state.Features {
			state.Features[i].SortOrder = i
		}

		for i := range state.Tasks {
			refs := state.Tasks[i].FeatureIDs[:0]
			for _, id := range state.Tasks[i].FeatureIDs {
				if id != featureID {
					refs = append(refs, id)
				}
			}
			state.Tasks[i].FeatureIDs = refs
		}
		return nil
	})
}

// MoveFeature shifts a feature to a new position and renumbers SortOrder.
// Positions outside the slice clamp to the ends.
func (s *ProjectService) MoveFeature(ctx context.Context, featureID string, position int) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		idx := -1
		for i := range state.Features {
			if state.Features[i].ID == featureID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrFeatureNotFound
		}

		f := state.Features[idx]
		state.Features = append(state.Features[:idx], state.Features[idx+1:]...)
		if position < 0 {
			position = 0
		}
		if position > len(state.Features) {
			position = len(state.Features)
		}
		state.Features = append(state.Features[:position],
			append([]domain.Feature{f}, state.Features[position:]...)...)
		for i := range state.Features {
			state.Features[i].SortOrder = i
		}
		return nil
	})
}

// MoveTask shifts a task to a new position and renumbers SortOrder.
// Task numbers are identity and never change on reorder.
func (s *ProjectService) MoveTask(ctx context.Context, taskID string, position int) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		idx := -1
		for i := range state.Tasks {
			if state.Tasks[i].ID == taskID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrTaskNotFound
		}

		t := state.Tasks[idx]
		state.Tasks = append(state.Tasks[:idx], state.Tasks[idx+1:]...)
		if position < 0 {
			position = 0
		}
		if position > len(state.Tasks) {
			position = len(state.Tasks)
		}
		state.Tasks = append(state.Tasks[:position],
			append([]domain.Task{t}, state.Tasks[position:]...)...)
		for i := range state.Tasks {
			state.Tasks[i].SortOrder = i
		}
		return nil
	})
}

// AddTask appends a task, assigning id, the next sequential task number,
// and sort order
func (s *ProjectService) AddTask(ctx context.Context, t domain.Task) (string, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.StatusNotStarted
	}

	err := s.mutate(ctx, func(state *domain.ProjectState) error {
		if t.TaskNumber == 0 {
			t.TaskNumber = domain.NextTaskNumber(state.Tasks)
		}
		t.SortOrder = len(state.Tasks)
		state.Tasks = append(state.Tasks, t)
		return nil
	})
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

// UpdateTask replaces an existing task's editable fields, keeping id,
// number, and sort order
func (s *ProjectService) UpdateTask(ctx context.Context, t domain.Task) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		for i := range state.Tasks {
			if state.Tasks[i].ID == t.ID {
				t.TaskNumber = state.Tasks[i].TaskNumber
				t.SortOrder = state.Tasks[i].SortOrder
				state.Tasks[i] = t
				return nil
			}
		}
		return domain.ErrTaskNotFound
	})
}

// SetTaskStatus updates one task's status
func (s *ProjectService) SetTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		for i := range state.Tasks {
			if state.Tasks[i].ID == taskID {
				state.Tasks[i].Status = status
				return nil
			}
		}
		return domain.ErrTaskNotFound
	})
}

// RemoveTask deletes a task. Task numbers of other tasks never change.
func (s *ProjectService) RemoveTask(ctx context.Context, taskID string) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		for i := range state.Tasks {
			if state.Tasks[i].ID == taskID {
				state.Tasks = append(state.Tasks[:i], state.Tasks[i+1:]...)
				for j := range state.Tasks {
					state.Tasks[j].SortOrder = j
				}
				return nil
			}
		}
		return domain.ErrTaskNotFound
	})
}

// SetStep moves the wizard to the given step, maintaining the invariant
// that HighestStepReached never decreases
func (s *ProjectService) SetStep(ctx context.Context, step int) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		state.Meta.CurrentStep = step
		if step > state.Meta.HighestStepReached {
			state.Meta.HighestStepReached = step
		}
		return nil
	})
}

// SetOverride stores a verbatim markdown override for a generated file
// path; empty content clears the override
func (s *ProjectService) SetOverride(ctx context.Context, path, content string) error {
	return s.mutate(ctx, func(state *domain.ProjectState) error {
		if state.MarkdownOverrides == nil {
			state.MarkdownOverrides = make(map[string]string)
		}
		if content == "" {
			delete(state.MarkdownOverrides, path)
		} else {
			state.MarkdownOverrides[path] = content
		}
		return nil
	})
}

// Generate renders all output documents for the persisted project
func (s *ProjectService) Generate(ctx context.Context) ([]generator.GeneratedFile, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	files := generator.GenerateAll(state, s.catalog)
	logging.Logger.Debug("Generated project documents", "files", len(files))
	return files, nil
}

// ImportState replaces the persisted project with an imported one
func (s *ProjectService) ImportState(ctx context.Context, state *domain.ProjectState) error {
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to clear existing project: %w", err)
	}
	return s.Save(ctx, state)
}

// Reset wipes the persisted project
func (s *ProjectService) Reset(ctx context.Context) error {
	logging.Logger.Info("Resetting project store")
	return s.repo.Reset(ctx)
}
