package catalog

var nextjsQuestions = []Question{
	{
		ID:           "component-organization",
		Category:     "Code Organization",
		Question:     "How should components be organized?",
		Description:  "Where component files live decides how easy it is for an AI to find and extend them.",
		ApplicableTo: []string{"nextjs", "react-vite", "svelte", "vue-nuxt"},
		Required:     true,
		Options: []Option{
			{
				ID:            "by-feature",
				Label:         "By feature (components/auth/, components/billing/)",
				Description:   "Group components by the feature they serve. Scales well as features grow.",
				Recommended:   true,
				GeneratedText: "**Component Organization**: Group components by feature: `components/auth/login-form.tsx`, `components/billing/invoice-list.tsx`. Shared primitives go in `components/ui/`. Never create a flat `components/` dump; a new component always lands in its feature folder.",
			},
			{
				ID:            "by-type",
				Label:         "By type (components/forms/, components/layout/)",
				Description:   "Group components by their kind. Simpler for small projects.",
				GeneratedText: "**Component Organization**: Group components by type: `components/forms/`, `components/layout/`, `components/display/`. Keep each component in its own file named in kebab-case matching the exported component.",
			},
		},
	},
	{
		ID:           "data-fetching",
		Category:     "Data Fetching",
		Question:     "How should data be fetched?",
		Description:  "A single data-fetching pattern keeps server/client boundaries predictable.",
		ApplicableTo: []string{"nextjs"},
		Required:     true,
		Options: []Option{
			{
				ID:            "server-components",
				Label:         "Server Components first",
				Description:   "Fetch in React Server Components; client components only for interactivity.",
				Recommended:   true,
				GeneratedText: "**Data Fetching**: Fetch data in Server Components by default. Client components receive data as props and are reserved for interactivity. Mutations go through Server Actions. Never fetch in `useEffect` unless the data is truly client-only.",
			},
			{
				ID:            "client-swr",
				Label:         "Client-side with SWR/React Query",
				Description:   "Fetch from the client through API routes with a caching library.",
				GeneratedText: "**Data Fetching**: Fetch on the client with SWR (or React Query) against `/api` route handlers. One hook per resource in `hooks/`: `useUsers()`, `useInvoices()`. Route handlers validate input and return typed JSON.",
			},
		},
	},
	{
		ID:           "state-management",
		Category:     "State Management",
		Question:     "How should shared client state be managed?",
		Description:  "Pick one mechanism so AI sessions don't introduce a second one.",
		ApplicableTo: []string{"nextjs", "react-vite"},
		Required:     false,
		Options: []Option{
			{
				ID:            "react-context",
				Label:         "React Context + hooks",
				Description:   "Built-in Context for the little shared state a server-first app needs.",
				Recommended:   true,
				GeneratedText: "**State Management**: Use React Context with custom hooks for shared client state. One context per concern (`ThemeProvider`, `CartProvider`), each exposing a `useX()` hook. Do not add Redux/Zustand unless a context demonstrably becomes a bottleneck.",
			},
			{
				ID:            "zustand",
				Label:         "Zustand store",
				Description:   "A small external store for apps with substantial client state.",
				GeneratedText: "**State Management**: Use Zustand. One store per domain in `stores/`: `stores/cart.ts`, `stores/session.ts`. Components subscribe through selector hooks; never import a whole store state into a component.",
			},
		},
	},
	{
		ID:           "error-handling",
		Category:     "Error Handling",
		Question:     "How should errors surface to users and logs?",
		Description:  "Uniform error handling is the convention AI assistants violate most often.",
		ApplicableTo: []string{"nextjs", "react-vite", "express"},
		Required:     true,
		Options: []Option{
			{
				ID:            "error-objects",
				Label:         "Typed result objects",
				Description:   "Functions return { data, error } objects; throwing is reserved for bugs.",
				Recommended:   true,
				GeneratedText: "**Error Handling**: Server actions and data helpers return `{ data, error }` result objects; they never throw for expected failures. UI components branch on `error` and render inline messages. Unexpected errors bubble to `error.tsx` boundaries. Log server-side errors with context, never `console.log` in committed code.",
			},
			{
				ID:            "exceptions",
				Label:         "Exceptions + error boundaries",
				Description:   "Throw errors and catch them in route-level boundaries.",
				GeneratedText: "**Error Handling**: Throw `Error` subclasses for failures and catch them in route-level `error.tsx` boundaries. API route handlers catch at the top level and map known error classes to status codes.",
			},
		},
	},
	{
		ID:           "naming-conventions",
		Category:     "Naming",
		Question:     "What naming conventions apply to files and symbols?",
		Description:  "Names are the strongest signal an AI has about intent.",
		ApplicableTo: []string{"nextjs", "react-vite", "svelte", "vue-nuxt", "express"},
		Required:     true,
		Options: []Option{
			{
				ID:            "kebab-files",
				Label:         "kebab-case files, PascalCase components",
				Description:   "The dominant convention in the Next.js ecosystem.",
				Recommended:   true,
				GeneratedText: "**Naming**: Files are kebab-case (`login-form.tsx`, `use-cart.ts`); React components are PascalCase; hooks are camelCase starting with `use`. Database tables are snake_case plural; API routes are kebab-case plural nouns.",
			},
			{
				ID:            "pascal-files",
				Label:         "PascalCase component files",
				Description:   "Component file names match the component name exactly.",
				GeneratedText: "**Naming**: Component files are PascalCase matching their export (`LoginForm.tsx`); non-component modules are camelCase. Database tables are snake_case plural; API routes are kebab-case plural nouns.",
			},
		},
	},
}
