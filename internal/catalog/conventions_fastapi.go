package catalog

var fastapiQuestions = []Question{
	{
		ID:           "project-structure",
		Category:     "Code Organization",
		Question:     "How should the project be structured?",
		Description:  "Python projects have several common layout patterns.",
		ApplicableTo: []string{"python-fastapi", "python-django"},
		Required:     true,
		Options: []Option{
			{
				ID:            "domain-driven",
				Label:         "Domain-driven (app/users/, app/orders/)",
				Description:   "Organize by business domain. Each domain has its own models, routes, and services.",
				Recommended:   true,
				GeneratedText: "**Project Structure**: Domain-driven layout. Each domain gets its own package: `app/users/`, `app/orders/`, `app/auth/`. Each package contains `routes.py`, `models.py`, `schemas.py`, `service.py`. Shared utilities go in `app/core/`.",
			},
			{
				ID:            "layer-based",
				Label:         "Layer-based (routes/, models/, services/)",
				Description:   "Organize by technical layer. All routes together, all models together.",
				GeneratedText: "**Project Structure**: Layer-based layout. Top-level directories by layer: `routes/`, `models/`, `schemas/`, `services/`, `core/`. Files within each layer are named by domain: `routes/users.py`, `models/users.py`.",
			},
		},
	},
	{
		ID:           "api-style",
		Category:     "API Design",
		Question:     "What API design conventions should be followed?",
		Description:  "Consistent API design makes endpoints predictable for frontend consumers.",
		ApplicableTo: []string{"python-fastapi", "express"},
		Required:     true,
		Options: []Option{
			{
				ID:            "rest-resource",
				Label:         "RESTful resource-based routes",
				Description:   "Standard REST: GET /users, POST /users, GET /users/{id}. The most common and AI-friendly pattern.",
				Recommended:   true,
				GeneratedText: "**API Design**: RESTful resource-based routing. Use plural nouns for resources: `GET /api/users`, `POST /api/users`, `GET /api/users/{id}`, `PATCH /api/users/{id}`. Use HTTP status codes correctly (201 for created, 404 for not found). Return consistent response shapes.",
			},
			{
				ID:            "action-based",
				Label:         "Action-based routes (/users/create, /users/list)",
				Description:   "RPC-style routes named after actions. Less conventional but sometimes clearer for complex operations.",
				GeneratedText: "**API Design**: Action-based routing. Name routes by their action: `POST /api/users/create`, `GET /api/users/list`, `POST /api/users/{id}/deactivate`. Group related actions under their resource prefix.",
			},
		},
	},
	{
		ID:           "python-error-handling",
		Category:     "Error Handling",
		Question:     "How should API errors be returned?",
		Description:  "Consistent error responses make debugging easier for both humans and AI.",
		ApplicableTo: []string{"python-fastapi"},
		Required:     true,
		Options: []Option{
			{
				ID:            "structured-errors",
				Label:         "Structured error responses with error codes",
				Description:   "Return JSON with error code, message, and details. Enables programmatic error handling on the frontend.",
				Recommended:   true,
				GeneratedText: "**Error Handling**: Return structured error responses: `{\"error\": {\"code\": \"USER_NOT_FOUND\", \"message\": \"User with ID 123 not found\", \"details\": {}}}`. Use HTTP exception handlers in FastAPI. Define error codes as an enum. Never expose stack traces in production.",
			},
			{
				ID:            "http-exceptions",
				Label:         "FastAPI HTTPException with detail strings",
				Description:   "Use FastAPI's built-in HTTPException. Simple but less structured.",
				GeneratedText: "**Error Handling**: Use FastAPI `HTTPException` for all error responses. Include descriptive `detail` messages. Use appropriate HTTP status codes. Add custom exception handlers for common error types.",
			},
		},
	},
}
