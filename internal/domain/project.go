package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectMode distinguishes a greenfield project from an imported one
type ProjectMode string

const (
	ModeNew      ProjectMode = "new"
	ModeExisting ProjectMode = "existing"
)

// DatabaseApproach selects how the schema document is sourced
type DatabaseApproach string

const (
	ApproachPlainEnglish DatabaseApproach = "plain-english"
	ApproachPasteSQL     DatabaseApproach = "paste-sql"
	ApproachImportCSV    DatabaseApproach = "import-csv"
	ApproachSkip         DatabaseApproach = "skip"
)

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not-started"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
	StatusBlocked    TaskStatus = "blocked"
)

// ProjectState is the single root value describing a project. The UI and
// services own and mutate it; the generator only reads it.
type ProjectState struct {
	Meta              ProjectMeta
	Identity          ProjectIdentity
	Architecture      ProjectArchitecture
	Styling           ProjectStyling
	Conventions       ProjectConventions
	Database          ProjectDatabase
	Features          []Feature
	Tasks             []Task
	MarkdownOverrides map[string]string
	Deployment        DeploymentGuide
}

// ProjectMeta holds wizard bookkeeping.
// Invariant: HighestStepReached >= CurrentStep.
type ProjectMeta struct {
	ID                 string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CurrentStep        int
	HighestStepReached int
	Version            int
}

// ProjectIdentity holds the who-and-what of the project
type ProjectIdentity struct {
	Name               string
	Slug               string
	Purpose            string
	TechStack          TechStackSelection
	ProjectMode        ProjectMode
	ExistingFolderTree string
	ExistingSchema     string
}

// TechStackSelection holds catalog ids per category; empty string means unset
type TechStackSelection struct {
	Framework        string
	Styling          string
	Database         string
	Auth             string
	Deployment       string
	ComponentLibrary string
	Additional       []string
}

// ProjectArchitecture holds the app type and its ordered layers
type ProjectArchitecture struct {
	AppType string
	Layers  []Layer
}

// Layer is one architecture layer. Layers are seeded from stack defaults
// but independently editable afterwards.
type Layer struct {
	ID           string
	Name         string
	Enabled      bool
	Notes        string
	Technologies []string
}

// ProjectStyling holds brand colors, fonts, and styling notes
type ProjectStyling struct {
	Colors           []BrandColor
	Fonts            FontSelection
	ComponentLibrary string
	AdditionalNotes  string
}

// BrandColor is a named hex color
type BrandColor struct {
	ID   string
	Name string
	Hex  string
}

// FontSelection is the heading/body/mono font triple
type FontSelection struct {
	Heading string
	Body    string
	Mono    string
}

// ProjectConventions holds convention decisions and free-text additions.
// Invariant: at most one Decision per QuestionID.
type ProjectConventions struct {
	Decisions         []ConventionDecision
	CustomConventions string
}

// ConventionDecision records an answer to a catalog question
type ConventionDecision struct {
	QuestionID       string
	SelectedOptionID string
	CustomAnswer     string
}

// ProjectDatabase holds the schema source and structured tables
type ProjectDatabase struct {
	Approach                DatabaseApproach
	PlainEnglishDescription string
	PastedSchema            string
	Tables                  []Table
}

// Table is one structured database table sketch
type Table struct {
	ID          string
	Name        string
	Description string
	Columns     string
}

// Feature is one unit of product functionality. RelatedTables references
// tables by name, not id (a weak reference resolved at generation time).
type Feature struct {
	ID                 string
	Name               string
	Slug               string
	Description        string
	BusinessRules      []string
	AcceptanceCriteria []string
	RelatedTables      []string
	SortOrder          int
}

// Task is one unit of work. TaskNumber is the user-facing identity,
// zero-padded to three digits in filenames. FeatureIDs are weak references.
type Task struct {
	ID               string
	TaskNumber       int
	Name             string
	FeatureIDs       []string
	DefinitionOfDone string
	FileBoundaries   string
	OutOfScope       string
	Status           TaskStatus
	SortOrder        int
}

// DeploymentGuide feeds the skeleton-deployment prompt helper; it does not
// produce a document of its own.
type DeploymentGuide struct {
	Enabled           bool
	SkeletonStructure string
	Notes             string
}

// SchemaVersion is the current ProjectState schema version
const SchemaVersion = 1

// NewProjectState returns a fresh project with the default brand palette,
// database skipped, and the wizard at step one.
func NewProjectState() *ProjectState {
	now := time.Now().UTC()
	return &ProjectState{
		Meta: ProjectMeta{
			ID:                 uuid.New().String(),
			CreatedAt:          now,
			UpdatedAt:          now,
			CurrentStep:        1,
			HighestStepReached: 1,
			Version:            SchemaVersion,
		},
		Identity: ProjectIdentity{
			ProjectMode: ModeNew,
		},
		Styling: ProjectStyling{
			Colors: []BrandColor{
				{ID: uuid.New().String(), Name: "Primary", Hex: "#18181B"},
				{ID: uuid.New().String(), Name: "Secondary", Hex: "#F4F4F5"},
				{ID: uuid.New().String(), Name: "Accent", Hex: "#3B82F6"},
				{ID: uuid.New().String(), Name: "Background", Hex: "#FFFFFF"},
				{ID: uuid.New().String(), Name: "Text", Hex: "#09090B"},
			},
		},
		Database: ProjectDatabase{
			Approach: ApproachSkip,
		},
		MarkdownOverrides: make(map[string]string),
	}
}

// FeatureByID returns the feature with the given id, or nil
func (s *ProjectState) FeatureByID(id string) *Feature {
	for i := range s.Features {
		if s.Features[i].ID == id {
			return &s.Features[i]
		}
	}
	return nil
}

// TableByName reports whether a table with the given name exists
func (s *ProjectState) TableByName(name string) bool {
	for _, t := range s.Database.Tables {
		if t.Name == name {
			return true
		}
	}
	return false
}

// TasksForFeature returns tasks referencing the given feature id, in state order
func (s *ProjectState) TasksForFeature(featureID string) []Task {
	var out []Task
	for _, t := range s.Tasks {
		for _, id := range t.FeatureIDs {
			if id == featureID {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
