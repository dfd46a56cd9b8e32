package cmd

import (
	adapterstorage "framewright/internal/adapters/storage"
	"framewright/internal/catalog"
	"framewright/internal/config"
	"framewright/internal/ports"
	"framewright/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Catalog        *catalog.Catalog
	ProjectService *services.ProjectService
	ExportService  *services.ExportService

	// Internal - for cleanup only
	projectRepo ports.ProjectRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	projectRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	projectService := services.NewProjectService(projectRepo, cat)
	exportService := services.NewExportService(projectService)

	return &Container{
		Catalog:        cat,
		ProjectService: projectService,
		ExportService:  exportService,
		projectRepo:    projectRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.projectRepo != nil {
		return c.projectRepo.Close()
	}
	return nil
}
