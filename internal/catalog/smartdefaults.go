package catalog

import "framewright/internal/domain"

// SmartDefaults is the stack-derived seed for the architecture step. The
// layers are a starting point only; after seeding they are independently
// editable and no invariant links them back to the tech stack.
type SmartDefaults struct {
	AppType           string
	Layers            []domain.Layer
	SuggestedFeatures []string
}

func defaultLayers() []domain.Layer {
	return []domain.Layer{
		{ID: "frontend", Name: "Frontend", Enabled: true},
		{ID: "backend", Name: "Backend / API"},
		{ID: "database", Name: "Database"},
		{ID: "auth", Name: "Authentication"},
		{ID: "external", Name: "External Services"},
		{ID: "storage", Name: "File Storage"},
		{ID: "realtime", Name: "Real-time / WebSockets"},
	}
}

// DefaultsForStack returns the smart defaults for a tech stack selection.
// Unknown frameworks get the generic layer list with only the frontend
// enabled.
func DefaultsForStack(ts domain.TechStackSelection) SmartDefaults {
	layers := defaultLayers()

	enable := func(id string, techs ...string) {
		for i := range layers {
			if layers[i].ID == id {
				layers[i].Enabled = true
				layers[i].Technologies = append(layers[i].Technologies, techs...)
			}
		}
	}

	switch ts.Framework {
	case "nextjs":
		enable("frontend", "Next.js")
		if ts.Styling == "tailwind" {
			enable("frontend", "Tailwind CSS")
		}
		enable("backend", "Next.js Route Handlers")
		if ts.Database != "" && ts.Database != "none" {
			enable("database", TechLabel("database", ts.Database))
		}
		if ts.Auth != "" && ts.Auth != "none" {
			enable("auth", TechLabel("auth", ts.Auth))
		}
		return SmartDefaults{
			AppType: "web-app",
			Layers:  layers,
			SuggestedFeatures: []string{
				"Authentication & user management",
				"Dashboard / home page",
				"Settings page",
				"CRUD operations",
			},
		}

	case "react-vite", "svelte", "vue-nuxt":
		enable("frontend", TechLabel("framework", ts.Framework))
		if ts.Database != "" && ts.Database != "none" {
			enable("database", TechLabel("database", ts.Database))
		}
		if ts.Auth != "" && ts.Auth != "none" {
			enable("auth", TechLabel("auth", ts.Auth))
		}
		return SmartDefaults{
			AppType: "web-app",
			Layers:  layers,
			SuggestedFeatures: []string{
				"Authentication & user management",
				"Main application view",
				"Settings page",
			},
		}

	case "python-fastapi", "python-django", "express":
		for i := range layers {
			if layers[i].ID == "frontend" {
				layers[i].Enabled = false
			}
		}
		enable("backend", TechLabel("framework", ts.Framework))
		if ts.Database != "" && ts.Database != "none" {
			enable("database", TechLabel("database", ts.Database))
		}
		if ts.Auth != "" && ts.Auth != "none" {
			enable("auth", TechLabel("auth", ts.Auth))
		}
		return SmartDefaults{
			AppType: "api",
			Layers:  layers,
			SuggestedFeatures: []string{
				"API authentication",
				"Core resource endpoints",
				"Admin operations",
			},
		}

	case "static":
		return SmartDefaults{
			AppType: "static-site",
			Layers:  layers,
			SuggestedFeatures: []string{
				"Landing page",
				"Content pages",
				"Contact form",
			},
		}
	}

	return SmartDefaults{AppType: "web-app", Layers: layers}
}
