package storage

import (
	"encoding/json"

	"framewright/internal/domain"
	"framewright/internal/logging"
)

// encodeStrings JSON-encodes a string slice for a text column. nil and
// empty both encode as "[]" so round-trips are stable.
func encodeStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		logging.Logger.Error("failed to encode string list", "error", err)
		return "[]"
	}
	return string(data)
}

// decodeStrings decodes a JSON string array column, tolerating empty and
// malformed values
func decodeStrings(raw string) []string {
	if raw == "" || raw == "[]" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logging.Logger.Error("failed to decode string list", "raw", raw, "error", err)
		return nil
	}
	return out
}

// projectToModel converts the scalar parts of a ProjectState to its GORM
// model. Child collections are mapped separately.
func projectToModel(s *domain.ProjectState) ProjectModel {
	return ProjectModel{
		AdditionalStack:         encodeStrings(s.Identity.TechStack.Additional),
		AppType:                 s.Architecture.AppType,
		AuthStack:               s.Identity.TechStack.Auth,
		ComponentLibrary:        s.Styling.ComponentLibrary,
		ComponentLibraryStack:   s.Identity.TechStack.ComponentLibrary,
		CreatedAt:               s.Meta.CreatedAt,
		CurrentStep:             s.Meta.CurrentStep,
		CustomConventions:       s.Conventions.CustomConventions,
		DatabaseApproach:        string(s.Database.Approach),
		DatabaseStack:           s.Identity.TechStack.Database,
		DeploymentEnabled:       s.Deployment.Enabled,
		DeploymentNotes:         s.Deployment.Notes,
		DeploymentStack:         s.Identity.TechStack.Deployment,
		ExistingFolderTree:      s.Identity.ExistingFolderTree,
		ExistingSchema:          s.Identity.ExistingSchema,
		FontBody:                s.Styling.Fonts.Body,
		FontHeading:             s.Styling.Fonts.Heading,
		FontMono:                s.Styling.Fonts.Mono,
		FrameworkStack:          s.Identity.TechStack.Framework,
		HighestStepReached:      s.Meta.HighestStepReached,
		ID:                      s.Meta.ID,
		Mode:                    string(s.Identity.ProjectMode),
		Name:                    s.Identity.Name,
		PastedSchema:            s.Database.PastedSchema,
		PlainEnglishDescription: s.Database.PlainEnglishDescription,
		Purpose:                 s.Identity.Purpose,
		SkeletonStructure:       s.Deployment.SkeletonStructure,
		Slug:                    s.Identity.Slug,
		StylingNotes:            s.Styling.AdditionalNotes,
		StylingStack:            s.Identity.TechStack.Styling,
		UpdatedAt:               s.Meta.UpdatedAt,
		Version:                 s.Meta.Version,
	}
}

// modelToProject converts a ProjectModel plus its child rows back into a
// ProjectState. Child rows must already be ordered by position.
func modelToProject(m ProjectModel, layers []LayerModel, colors []ColorModel,
	decisions []DecisionModel, tables []DBTableModel, features []FeatureModel,
	tasks []TaskModel, overrides []OverrideModel) *domain.ProjectState {

	s := &domain.ProjectState{
		Meta: domain.ProjectMeta{
			ID:                 m.ID,
			CreatedAt:          m.CreatedAt,
			UpdatedAt:          m.UpdatedAt,
			CurrentStep:        m.CurrentStep,
			HighestStepReached: m.HighestStepReached,
			Version:            m.Version,
		},
		Identity: domain.ProjectIdentity{
			Name:               m.Name,
			Slug:               m.Slug,
			Purpose:            m.Purpose,
			ProjectMode:        domain.ProjectMode(m.Mode),
			ExistingFolderTree: m.ExistingFolderTree,
			ExistingSchema:     m.ExistingSchema,
			TechStack: domain.TechStackSelection{
				Framework:        m.FrameworkStack,
				Styling:          m.StylingStack,
				Database:         m.DatabaseStack,
				Auth:             m.AuthStack,
				Deployment:       m.DeploymentStack,
				ComponentLibrary: m.ComponentLibraryStack,
				Additional:       decodeStrings(m.AdditionalStack),
			},
		},
		Architecture: domain.ProjectArchitecture{
			AppType: m.AppType,
		},
		Styling: domain.ProjectStyling{
			Fonts: domain.FontSelection{
				Heading: m.FontHeading,
				Body:    m.FontBody,
				Mono:    m.FontMono,
			},
			ComponentLibrary: m.ComponentLibrary,
			AdditionalNotes:  m.StylingNotes,
		},
		Conventions: domain.ProjectConventions{
			CustomConventions: m.CustomConventions,
		},
		Database: domain.ProjectDatabase{
			Approach:                domain.DatabaseApproach(m.DatabaseApproach),
			PlainEnglishDescription: m.PlainEnglishDescription,
			PastedSchema:            m.PastedSchema,
		},
		Deployment: domain.DeploymentGuide{
			Enabled:           m.DeploymentEnabled,
			SkeletonStructure: m.SkeletonStructure,
			Notes:             m.DeploymentNotes,
		},
		MarkdownOverrides: make(map[string]string, len(overrides)),
	}

	for _, l := range layers {
		s.Architecture.Layers = append(s.Architecture.Layers, domain.Layer{
			ID:           l.ID,
			Name:         l.Name,
			Enabled:      l.Enabled,
			Notes:        l.Notes,
			Technologies: decodeStrings(l.Technologies),
		})
	}
	for _, c := range colors {
		s.Styling.Colors = append(s.Styling.Colors, domain.BrandColor{
			ID:   c.ID,
			Name: c.Name,
			Hex:  c.Hex,
		})
	}
	for _, d := range decisions {
		s.Conventions.Decisions = append(s.Conventions.Decisions, domain.ConventionDecision{
			QuestionID:       d.QuestionID,
			SelectedOptionID: d.SelectedOptionID,
			CustomAnswer:     d.CustomAnswer,
		})
	}
	for _, t := range tables {
		s.Database.Tables = append(s.Database.Tables, domain.Table{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Columns:     t.Columns,
		})
	}
	for _, f := range features {
		s.Features = append(s.Features, domain.Feature{
			ID:                 f.ID,
			Name:               f.Name,
			Slug:               f.Slug,
			Description:        f.Description,
			BusinessRules:      decodeStrings(f.BusinessRules),
			AcceptanceCriteria: decodeStrings(f.AcceptanceCriteria),
			RelatedTables:      decodeStrings(f.RelatedTables),
			SortOrder:          f.SortOrder,
		})
	}
	for _, t := range tasks {
		s.Tasks = append(s.Tasks, domain.Task{
			ID:               t.ID,
			TaskNumber:       t.TaskNumber,
			Name:             t.Name,
			FeatureIDs:       decodeStrings(t.FeatureIDs),
			DefinitionOfDone: t.DefinitionOfDone,
			FileBoundaries:   t.FileBoundaries,
			OutOfScope:       t.OutOfScope,
			Status:           domain.TaskStatus(t.Status),
			SortOrder:        t.SortOrder,
		})
	}
	for _, o := range overrides {
		s.MarkdownOverrides[o.Path] = o.Content
	}

	return s
}
