package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"framewright/internal/domain"
	"framewright/internal/logging"
	"framewright/internal/ports"
)

// SQLiteRepository implements ports.ProjectRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ProjectRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the framewright logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FRAMEWRIGHT_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// allModels lists every persisted model for migration and cleanup
func allModels() []any {
	return []any{
		&ProjectModel{},
		&LayerModel{},
		&ColorModel{},
		&DecisionModel{},
		&DBTableModel{},
		&FeatureModel{},
		&TaskModel{},
		&OverrideModel{},
	}
}

// NewSQLiteRepository opens (or creates) the project database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(allModels()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Load implements ports.ProjectLoader. Returns domain.ErrProjectNotFound
// when no project has been saved yet.
func (r *SQLiteRepository) Load(ctx context.Context) (*domain.ProjectState, error) {
	var project ProjectModel
	var layers []LayerModel
	var colors []ColorModel
	var decisions []DecisionModel
	var tables []DBTableModel
	var features []FeatureModel
	var tasks []TaskModel
	var overrides []OverrideModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("created_at ASC").First(&project).Error; err != nil {
				return err
			}
			id := project.ID
			if err := tx.Where("project_id = ?", id).Order("position ASC").Find(&layers).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id = ?", id).Order("position ASC").Find(&colors).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id = ?", id).Order("position ASC").Find(&decisions).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id = ?", id).Order("position ASC").Find(&tables).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id = ?", id).Order("sort_order ASC").Find(&features).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id = ?", id).Order("sort_order ASC").Find(&tasks).Error; err != nil {
				return err
			}
			return tx.Where("project_id = ?", id).Order("path ASC").Find(&overrides).Error
		})
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	return modelToProject(project, layers, colors, decisions, tables, features, tasks, overrides), nil
}

// Save implements ports.ProjectSaver. The full state is written in one
// transaction: the project row is upserted and every child collection is
// replaced, so the store always reflects exactly the given state.
func (r *SQLiteRepository) Save(ctx context.Context, state *domain.ProjectState) error {
	if state == nil {
		return errors.New("cannot save nil project state")
	}
	if state.Meta.ID == "" {
		return errors.New("cannot save project without an id")
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			model := projectToModel(state)
			if err := tx.Save(&model).Error; err != nil {
				return fmt.Errorf("failed to save project: %w", err)
			}

			id := state.Meta.ID
			for _, child := range []any{
				&LayerModel{}, &ColorModel{}, &DecisionModel{},
				&DBTableModel{}, &FeatureModel{}, &TaskModel{}, &OverrideModel{},
			} {
				if err := tx.Where("project_id = ?", id).Delete(child).Error; err != nil {
					return fmt.Errorf("failed to clear child rows: %w", err)
				}
			}

			for i, l := range state.Architecture.Layers {
				row := LayerModel{
					ID:           l.ID,
					Name:         l.Name,
					Enabled:      l.Enabled,
					Notes:        l.Notes,
					Position:     i,
					ProjectID:    id,
					Technologies: encodeStrings(l.Technologies),
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to save layer %s: %w", l.Name, err)
				}
			}
			for i, c := range state.Styling.Colors {
				row := ColorModel{
					ID:        c.ID,
					Name:      c.Name,
					Hex:       c.Hex,
					Position:  i,
					ProjectID: id,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to save color %s: %w", c.Name, err)
				}
			}
			for i, d := range state.Conventions.Decisions {
				row := DecisionModel{
					CustomAnswer:     d.CustomAnswer,
					Position:         i,
					ProjectID:        id,
					QuestionID:       d.QuestionID,
					SelectedOptionID: d.SelectedOptionID,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to save decision %s: %w", d.QuestionID, err)
				}
			}
			for i, t := range state.Database.Tables {
				row := DBTableModel{
					Columns:     t.Columns,
					Description: t.Description,
					ID:          t.ID,
					Name:        t.Name,
					Position:    i,
					ProjectID:   id,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to save table %s: %w", t.Name, err)
				}
			}
			for _, f := range state.Features {
				row := FeatureModel{
					AcceptanceCriteria: encodeStrings(f.AcceptanceCriteria),
					BusinessRules:      encodeStrings(f.BusinessRules),
					Description:        f.Description,
					ID:                 f.ID,
					Name:               f.Name,
					ProjectID:          id,
					RelatedTables:      encodeStrings(f.RelatedTables),
					Slug:               f.Slug,
					SortOrder:          f.SortOrder,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to save feature %s: %w", f.Name, err)
				}
			}
			for _, t := range state.Tasks {
				row := TaskModel{
					DefinitionOfDone: t.DefinitionOfDone,
					FeatureIDs:       encodeStrings(t.FeatureIDs),
					FileBoundaries:   t.FileBoundaries,
					ID:               t.ID,
					Name:             t.Name,
					OutOfScope:       t.OutOfScope,
					ProjectID:        id,
					SortOrder:        t.SortOrder,
					Status:           string(t.Status),
					TaskNumber:       t.TaskNumber,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to save task %d: %w", t.TaskNumber, err)
				}
			}
			for path, content := range state.MarkdownOverrides {
				row := OverrideModel{
					Content:   content,
					Path:      path,
					ProjectID: id,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to save override %s: %w", path, err)
				}
			}

			return nil
		})
	}, 3)
}

// Reset implements ports.ProjectResetter: drops every stored row
func (r *SQLiteRepository) Reset(ctx context.Context) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, model := range allModels() {
				if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
					return fmt.Errorf("failed to reset store: %w", err)
				}
			}
			return nil
		})
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
