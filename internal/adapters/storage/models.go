package storage

import "time"

// ProjectModel is the GORM model for the projects table. One row per
// project; the app persists a single project at a time.
type ProjectModel struct {
	AdditionalStack         string `gorm:"default:''"`
	AppType                 string `gorm:"default:''"`
	AuthStack               string `gorm:"default:''"`
	ComponentLibrary        string `gorm:"default:''"`
	ComponentLibraryStack   string `gorm:"default:''"`
	CreatedAt               time.Time
	CurrentStep             int    `gorm:"not null;default:1"`
	CustomConventions       string `gorm:"default:''"`
	DatabaseApproach        string `gorm:"not null;default:'skip'"`
	DatabaseStack           string `gorm:"default:''"`
	DeploymentEnabled       bool   `gorm:"not null;default:false"`
	DeploymentNotes         string `gorm:"default:''"`
	DeploymentStack         string `gorm:"default:''"`
	ExistingFolderTree      string `gorm:"default:''"`
	ExistingSchema          string `gorm:"default:''"`
	FontBody                string `gorm:"default:''"`
	FontHeading             string `gorm:"default:''"`
	FontMono                string `gorm:"default:''"`
	FrameworkStack          string `gorm:"default:''"`
	HighestStepReached      int    `gorm:"not null;default:1"`
	ID                      string `gorm:"primaryKey"`
	Mode                    string `gorm:"not null;default:'new';check:mode IN ('new','existing')"`
	Name                    string `gorm:"default:''"`
	PastedSchema            string `gorm:"default:''"`
	PlainEnglishDescription string `gorm:"default:''"`
	Purpose                 string `gorm:"default:''"`
	SkeletonStructure       string `gorm:"default:''"`
	Slug                    string `gorm:"default:''"`
	StylingNotes            string `gorm:"default:''"`
	StylingStack            string `gorm:"default:''"`
	UpdatedAt               time.Time
	Version                 int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string { return "projects" }

// LayerModel is the GORM model for architecture layers
type LayerModel struct {
	CreatedAt    time.Time
	Enabled      bool   `gorm:"not null;default:true"`
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Notes        string `gorm:"default:''"`
	Position     int    `gorm:"not null;default:0;index:idx_layer_position"`
	ProjectID    string `gorm:"not null;index:idx_layer_project"`
	Technologies string `gorm:"default:'[]'"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (LayerModel) TableName() string { return "layers" }

// ColorModel is the GORM model for brand colors
type ColorModel struct {
	CreatedAt time.Time
	Hex       string `gorm:"default:''"`
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Position  int    `gorm:"not null;default:0"`
	ProjectID string `gorm:"not null;index:idx_color_project"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ColorModel) TableName() string { return "colors" }

// DecisionModel is the GORM model for convention decisions
type DecisionModel struct {
	CreatedAt        time.Time
	CustomAnswer     string `gorm:"default:''"`
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	Position         int    `gorm:"not null;default:0"`
	ProjectID        string `gorm:"not null;index:idx_decision_project"`
	QuestionID       string `gorm:"not null"`
	SelectedOptionID string `gorm:"default:''"`
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (DecisionModel) TableName() string { return "convention_decisions" }

// DBTableModel is the GORM model for sketched database tables
type DBTableModel struct {
	Columns     string `gorm:"default:''"`
	CreatedAt   time.Time
	Description string `gorm:"default:''"`
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Position    int    `gorm:"not null;default:0"`
	ProjectID   string `gorm:"not null;index:idx_table_project"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (DBTableModel) TableName() string { return "db_tables" }

// FeatureModel is the GORM model for features. List fields are stored as
// JSON-encoded string arrays.
type FeatureModel struct {
	AcceptanceCriteria string `gorm:"default:'[]'"`
	BusinessRules      string `gorm:"default:'[]'"`
	CreatedAt          time.Time
	Description        string `gorm:"default:''"`
	ID                 string `gorm:"primaryKey"`
	Name               string `gorm:"not null"`
	ProjectID          string `gorm:"not null;index:idx_feature_project"`
	RelatedTables      string `gorm:"default:'[]'"`
	Slug               string `gorm:"default:''"`
	SortOrder          int    `gorm:"not null;default:0;index:idx_feature_sort"`
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (FeatureModel) TableName() string { return "features" }

// TaskModel is the GORM model for tasks. FeatureIDs is a JSON-encoded
// string array of weak references.
type TaskModel struct {
	CreatedAt        time.Time
	DefinitionOfDone string `gorm:"default:''"`
	FeatureIDs       string `gorm:"default:'[]'"`
	FileBoundaries   string `gorm:"default:''"`
	ID               string `gorm:"primaryKey"`
	Name             string `gorm:"default:''"`
	OutOfScope       string `gorm:"default:''"`
	ProjectID        string `gorm:"not null;index:idx_task_project"`
	SortOrder        int    `gorm:"not null;default:0;index:idx_task_sort"`
	Status           string `gorm:"not null;default:'not-started'"`
	TaskNumber       int    `gorm:"not null;index:idx_task_number"`
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string { return "tasks" }

// OverrideModel is the GORM model for markdown overrides, keyed by the
// generated file's output path
type OverrideModel struct {
	Content   string `gorm:"not null;default:''"`
	CreatedAt time.Time
	Path      string `gorm:"primaryKey"`
	ProjectID string `gorm:"not null;index:idx_override_project"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (OverrideModel) TableName() string { return "markdown_overrides" }
