// Package projfile encodes project state as a portable YAML document,
// used by the import/export commands to move a project between machines
// without copying the database.
package projfile

import (
	"fmt"
	"io"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"framewright/internal/domain"
)

// FormatVersion is the projfile document version
const FormatVersion = 1

type document struct {
	FormatVersion int         `yaml:"format_version"`
	ExportedAt    time.Time   `yaml:"exported_at"`
	Project       projectDTO  `yaml:"project"`
	Features      []featureDT `yaml:"features,omitempty"`
	Tasks         []taskDTO   `yaml:"tasks,omitempty"`
	Overrides     []overrideD `yaml:"markdown_overrides,omitempty"`
}

type projectDTO struct {
	ID                 string       `yaml:"id"`
	CreatedAt          time.Time    `yaml:"created_at"`
	UpdatedAt          time.Time    `yaml:"updated_at"`
	CurrentStep        int          `yaml:"current_step"`
	HighestStepReached int          `yaml:"highest_step_reached"`
	Version            int          `yaml:"version"`
	Name               string       `yaml:"name"`
	Slug               string       `yaml:"slug,omitempty"`
	Purpose            string       `yaml:"purpose,omitempty"`
	Mode               string       `yaml:"mode"`
	ExistingFolderTree string       `yaml:"existing_folder_tree,omitempty"`
	ExistingSchema     string       `yaml:"existing_schema,omitempty"`
	TechStack          stackDTO     `yaml:"tech_stack"`
	AppType            string       `yaml:"app_type,omitempty"`
	Layers             []layerDTO   `yaml:"layers,omitempty"`
	Colors             []colorDTO   `yaml:"colors,omitempty"`
	Fonts              fontsDTO     `yaml:"fonts"`
	ComponentLibrary   string       `yaml:"component_library,omitempty"`
	StylingNotes       string       `yaml:"styling_notes,omitempty"`
	Decisions          []decideDTO  `yaml:"convention_decisions,omitempty"`
	CustomConventions  string       `yaml:"custom_conventions,omitempty"`
	Database           databaseDTO  `yaml:"database"`
	Deployment         deploymentDT `yaml:"deployment"`
}

type stackDTO struct {
	Framework        string   `yaml:"framework,omitempty"`
	Styling          string   `yaml:"styling,omitempty"`
	Database         string   `yaml:"database,omitempty"`
	Auth             string   `yaml:"auth,omitempty"`
	Deployment       string   `yaml:"deployment,omitempty"`
	ComponentLibrary string   `yaml:"component_library,omitempty"`
	Additional       []string `yaml:"additional,omitempty"`
}

type layerDTO struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Enabled      bool     `yaml:"enabled"`
	Notes        string   `yaml:"notes,omitempty"`
	Technologies []string `yaml:"technologies,omitempty"`
}

type colorDTO struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

type fontsDTO struct {
	Heading string `yaml:"heading,omitempty"`
	Body    string `yaml:"body,omitempty"`
	Mono    string `yaml:"mono,omitempty"`
}

type decideDTO struct {
	QuestionID       string `yaml:"question_id"`
	SelectedOptionID string `yaml:"selected_option_id,omitempty"`
	CustomAnswer     string `yaml:"custom_answer,omitempty"`
}

type databaseDTO struct {
	Approach                string     `yaml:"approach"`
	PlainEnglishDescription string     `yaml:"plain_english_description,omitempty"`
	PastedSchema            string     `yaml:"pasted_schema,omitempty"`
	Tables                  []tableDTO `yaml:"tables,omitempty"`
}

type tableDTO struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Columns     string `yaml:"columns,omitempty"`
}

type deploymentDT struct {
	Enabled           bool   `yaml:"enabled"`
	SkeletonStructure string `yaml:"skeleton_structure,omitempty"`
	Notes             string `yaml:"notes,omitempty"`
}

type featureDT struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	Slug               string   `yaml:"slug,omitempty"`
	Description        string   `yaml:"description,omitempty"`
	BusinessRules      []string `yaml:"business_rules,omitempty"`
	AcceptanceCriteria []string `yaml:"acceptance_criteria,omitempty"`
	RelatedTables      []string `yaml:"related_tables,omitempty"`
	SortOrder          int      `yaml:"sort_order"`
}

type taskDTO struct {
	ID               string   `yaml:"id"`
	TaskNumber       int      `yaml:"task_number"`
	Name             string   `yaml:"name,omitempty"`
	FeatureIDs       []string `yaml:"feature_ids,omitempty"`
	DefinitionOfDone string   `yaml:"definition_of_done,omitempty"`
	FileBoundaries   string   `yaml:"file_boundaries,omitempty"`
	OutOfScope       string   `yaml:"out_of_scope,omitempty"`
	Status           string   `yaml:"status"`
	SortOrder        int      `yaml:"sort_order"`
}

type overrideD struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

// Encode writes the project state to w as YAML
func Encode(w io.Writer, s *domain.ProjectState) error {
	doc := document{
		FormatVersion: FormatVersion,
		ExportedAt:    time.Now().UTC(),
		Project: projectDTO{
			ID:                 s.Meta.ID,
			CreatedAt:          s.Meta.CreatedAt,
			UpdatedAt:          s.Meta.UpdatedAt,
			CurrentStep:        s.Meta.CurrentStep,
			HighestStepReached: s.Meta.HighestStepReached,
			Version:            s.Meta.Version,
			Name:               s.Identity.Name,
			Slug:               s.Identity.Slug,
			Purpose:            s.Identity.Purpose,
			Mode:               string(s.Identity.ProjectMode),
			ExistingFolderTree: s.Identity.ExistingFolderTree,
			ExistingSchema:     s.Identity.ExistingSchema,
			TechStack: stackDTO{
				Framework:        s.Identity.TechStack.Framework,
				Styling:          s.Identity.TechStack.Styling,
				Database:         s.Identity.TechStack.Database,
				Auth:             s.Identity.TechStack.Auth,
				Deployment:       s.Identity.TechStack.Deployment,
				ComponentLibrary: s.Identity.TechStack.ComponentLibrary,
				Additional:       s.Identity.TechStack.Additional,
			},
			AppType:          s.Architecture.AppType,
			ComponentLibrary: s.Styling.ComponentLibrary,
			StylingNotes:     s.Styling.AdditionalNotes,
			Fonts: fontsDTO{
				Heading: s.Styling.Fonts.Heading,
				Body:    s.Styling.Fonts.Body,
				Mono:    s.Styling.Fonts.Mono,
			},
			CustomConventions: s.Conventions.CustomConventions,
			Database: databaseDTO{
				Approach:                string(s.Database.Approach),
				PlainEnglishDescription: s.Database.PlainEnglishDescription,
				PastedSchema:            s.Database.PastedSchema,
			},
			Deployment: deploymentDT{
				Enabled:           s.Deployment.Enabled,
				SkeletonStructure: s.Deployment.SkeletonStructure,
				Notes:             s.Deployment.Notes,
			},
		},
	}

	for _, l := range s.Architecture.Layers {
		doc.Project.Layers = append(doc.Project.Layers, layerDTO{
			ID: l.ID, Name: l.Name, Enabled: l.Enabled,
			Notes: l.Notes, Technologies: l.Technologies,
		})
	}
	for _, c := range s.Styling.Colors {
		doc.Project.Colors = append(doc.Project.Colors, colorDTO{ID: c.ID, Name: c.Name, Hex: c.Hex})
	}
	for _, d := range s.Conventions.Decisions {
		doc.Project.Decisions = append(doc.Project.Decisions, decideDTO{
			QuestionID:       d.QuestionID,
			SelectedOptionID: d.SelectedOptionID,
			CustomAnswer:     d.CustomAnswer,
		})
	}
	for _, t := range s.Database.Tables {
		doc.Project.Database.Tables = append(doc.Project.Database.Tables, tableDTO{
			ID: t.ID, Name: t.Name, Description: t.Description, Columns: t.Columns,
		})
	}
	for _, f := range s.Features {
		doc.Features = append(doc.Features, featureDT{
			ID:                 f.ID,
			Name:               f.Name,
			Slug:               f.Slug,
			Description:        f.Description,
			BusinessRules:      f.BusinessRules,
			AcceptanceCriteria: f.AcceptanceCriteria,
			RelatedTables:      f.RelatedTables,
			SortOrder:          f.SortOrder,
		})
	}
	for _, t := range s.Tasks {
		doc.Tasks = append(doc.Tasks, taskDTO{
			ID:               t.ID,
			TaskNumber:       t.TaskNumber,
			Name:             t.Name,
			FeatureIDs:       t.FeatureIDs,
			DefinitionOfDone: t.DefinitionOfDone,
			FileBoundaries:   t.FileBoundaries,
			OutOfScope:       t.OutOfScope,
			Status:           string(t.Status),
			SortOrder:        t.SortOrder,
		})
	}
	// Stable order for overrides so exports diff cleanly
	for _, path := range sortedKeys(s.MarkdownOverrides) {
		doc.Overrides = append(doc.Overrides, overrideD{Path: path, Content: s.MarkdownOverrides[path]})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(doc)
}

// Decode reads a YAML project document from r
func Decode(r io.Reader) (*domain.ProjectState, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse project file: %w", err)
	}
	if doc.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("unsupported project file version %d", doc.FormatVersion)
	}
	if doc.Project.ID == "" {
		return nil, fmt.Errorf("project file has no project id")
	}

	p := doc.Project
	s := &domain.ProjectState{
		Meta: domain.ProjectMeta{
			ID:                 p.ID,
			CreatedAt:          p.CreatedAt,
			UpdatedAt:          p.UpdatedAt,
			CurrentStep:        p.CurrentStep,
			HighestStepReached: p.HighestStepReached,
			Version:            p.Version,
		},
		Identity: domain.ProjectIdentity{
			Name:               p.Name,
			Slug:               p.Slug,
			Purpose:            p.Purpose,
			ProjectMode:        domain.ProjectMode(p.Mode),
			ExistingFolderTree: p.ExistingFolderTree,
			ExistingSchema:     p.ExistingSchema,
			TechStack: domain.TechStackSelection{
				Framework:        p.TechStack.Framework,
				Styling:          p.TechStack.Styling,
				Database:         p.TechStack.Database,
				Auth:             p.TechStack.Auth,
				Deployment:       p.TechStack.Deployment,
				ComponentLibrary: p.TechStack.ComponentLibrary,
				Additional:       p.TechStack.Additional,
			},
		},
		Architecture: domain.ProjectArchitecture{AppType: p.AppType},
		Styling: domain.ProjectStyling{
			Fonts: domain.FontSelection{
				Heading: p.Fonts.Heading,
				Body:    p.Fonts.Body,
				Mono:    p.Fonts.Mono,
			},
			ComponentLibrary: p.ComponentLibrary,
			AdditionalNotes:  p.StylingNotes,
		},
		Conventions: domain.ProjectConventions{CustomConventions: p.CustomConventions},
		Database: domain.ProjectDatabase{
			Approach:                domain.DatabaseApproach(p.Database.Approach),
			PlainEnglishDescription: p.Database.PlainEnglishDescription,
			PastedSchema:            p.Database.PastedSchema,
		},
		Deployment: domain.DeploymentGuide{
			Enabled:           p.Deployment.Enabled,
			SkeletonStructure: p.Deployment.SkeletonStructure,
			Notes:             p.Deployment.Notes,
		},
		MarkdownOverrides: make(map[string]string, len(doc.Overrides)),
	}

	for _, l := range p.Layers {
		s.Architecture.Layers = append(s.Architecture.Layers, domain.Layer{
			ID: l.ID, Name: l.Name, Enabled: l.Enabled,
			Notes: l.Notes, Technologies: l.Technologies,
		})
	}
	for _, c := range p.Colors {
		s.Styling.Colors = append(s.Styling.Colors, domain.BrandColor{ID: c.ID, Name: c.Name, Hex: c.Hex})
	}
	for _, d := range p.Decisions {
		s.Conventions.Decisions = append(s.Conventions.Decisions, domain.ConventionDecision{
			QuestionID:       d.QuestionID,
			SelectedOptionID: d.SelectedOptionID,
			CustomAnswer:     d.CustomAnswer,
		})
	}
	for _, t := range p.Database.Tables {
		s.Database.Tables = append(s.Database.Tables, domain.Table{
			ID: t.ID, Name: t.Name, Description: t.Description, Columns: t.Columns,
		})
	}
	for _, f := range doc.Features {
		s.Features = append(s.Features, domain.Feature{
			ID:                 f.ID,
			Name:               f.Name,
			Slug:               f.Slug,
			Description:        f.Description,
			BusinessRules:      f.BusinessRules,
			AcceptanceCriteria: f.AcceptanceCriteria,
			RelatedTables:      f.RelatedTables,
			SortOrder:          f.SortOrder,
		})
	}
	for _, t := range doc.Tasks {
		s.Tasks = append(s.Tasks, domain.Task{
			ID:               t.ID,
			TaskNumber:       t.TaskNumber,
			Name:             t.Name,
			FeatureIDs:       t.FeatureIDs,
			DefinitionOfDone: t.DefinitionOfDone,
			FileBoundaries:   t.FileBoundaries,
			OutOfScope:       t.OutOfScope,
			Status:           domain.TaskStatus(t.Status),
			SortOrder:        t.SortOrder,
		})
	}
	for _, o := range doc.Overrides {
		s.MarkdownOverrides[o.Path] = o.Content
	}

	return s, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
