package catalog

// TechOption is one selectable technology in a category
type TechOption struct {
	ID          string
	Label       string
	Description string
}

// TechCategory groups tech options under a stack dimension
type TechCategory struct {
	ID      string
	Label   string
	Options []TechOption
}

// AppType describes the overall shape of the application
type AppType struct {
	ID          string
	Label       string
	Description string
}

var FrameworkOptions = []TechOption{
	{ID: "nextjs", Label: "Next.js", Description: "React framework with server-side rendering, API routes, and file-based routing"},
	{ID: "react-vite", Label: "React + Vite", Description: "Client-side React with fast Vite build tooling"},
	{ID: "python-fastapi", Label: "Python + FastAPI", Description: "High-performance Python API framework"},
	{ID: "python-django", Label: "Python + Django", Description: "Full-featured Python web framework"},
	{ID: "static", Label: "Static Site", Description: "HTML/CSS/JS site with optional static site generator"},
	{ID: "svelte", Label: "SvelteKit", Description: "Svelte framework with server-side rendering and routing"},
	{ID: "vue-nuxt", Label: "Vue + Nuxt", Description: "Vue framework with SSR and file-based routing"},
	{ID: "express", Label: "Node.js + Express", Description: "Minimal Node.js web framework for APIs"},
	{ID: "other", Label: "Other", Description: "A framework not listed here"},
}

var StylingOptions = []TechOption{
	{ID: "tailwind", Label: "Tailwind CSS", Description: "Utility-first CSS framework"},
	{ID: "css-modules", Label: "CSS Modules", Description: "Scoped CSS files per component"},
	{ID: "styled-components", Label: "Styled Components", Description: "CSS-in-JS with tagged template literals"},
	{ID: "sass", Label: "Sass/SCSS", Description: "CSS preprocessor with nesting and variables"},
	{ID: "plain-css", Label: "Plain CSS", Description: "Standard CSS without preprocessors"},
	{ID: "none", Label: "None / Backend only", Description: "No frontend styling needed"},
}

var DatabaseOptions = []TechOption{
	{ID: "supabase", Label: "Supabase", Description: "Open-source Firebase alternative with Postgres"},
	{ID: "firebase", Label: "Firebase", Description: "Google's real-time database and backend platform"},
	{ID: "postgresql", Label: "PostgreSQL", Description: "Advanced open-source relational database"},
	{ID: "mysql", Label: "MySQL", Description: "Popular open-source relational database"},
	{ID: "mongodb", Label: "MongoDB", Description: "Document-based NoSQL database"},
	{ID: "sqlite", Label: "SQLite", Description: "Lightweight embedded database"},
	{ID: "prisma", Label: "Prisma (ORM)", Description: "TypeScript ORM, pair with a database above"},
	{ID: "drizzle", Label: "Drizzle (ORM)", Description: "Lightweight TypeScript ORM"},
	{ID: "none", Label: "No Database", Description: "This project doesn't need a database"},
}

var AuthOptions = []TechOption{
	{ID: "supabase-auth", Label: "Supabase Auth", Description: "Built-in auth with Supabase"},
	{ID: "next-auth", Label: "NextAuth.js / Auth.js", Description: "Flexible authentication for Next.js"},
	{ID: "firebase-auth", Label: "Firebase Auth", Description: "Google's authentication service"},
	{ID: "clerk", Label: "Clerk", Description: "Drop-in user management and auth"},
	{ID: "custom", Label: "Custom Auth", Description: "Roll your own authentication"},
	{ID: "none", Label: "No Auth", Description: "No authentication needed"},
}

var DeploymentOptions = []TechOption{
	{ID: "vercel", Label: "Vercel", Description: "Optimized for Next.js, automatic deployments"},
	{ID: "netlify", Label: "Netlify", Description: "JAMstack hosting with CI/CD"},
	{ID: "railway", Label: "Railway", Description: "Simple cloud platform for apps and databases"},
	{ID: "render", Label: "Render", Description: "Cloud platform for web services"},
	{ID: "aws", Label: "AWS", Description: "Amazon Web Services"},
	{ID: "fly", Label: "Fly.io", Description: "Deploy app servers close to users globally"},
	{ID: "docker", Label: "Docker / Self-hosted", Description: "Container-based deployment"},
	{ID: "other", Label: "Other", Description: "A platform not listed here"},
}

var ComponentLibraryOptions = []TechOption{
	{ID: "shadcn", Label: "shadcn/ui", Description: "Copy-paste Radix-based components with Tailwind"},
	{ID: "material-ui", Label: "Material UI", Description: "Google's Material Design component library"},
	{ID: "chakra", Label: "Chakra UI", Description: "Accessible component library for React"},
	{ID: "ant-design", Label: "Ant Design", Description: "Enterprise-level UI component library"},
	{ID: "headless-ui", Label: "Headless UI", Description: "Unstyled, accessible components"},
	{ID: "none", Label: "None", Description: "No component library, custom components only"},
}

// TechCategories lists every stack dimension in display order
var TechCategories = []TechCategory{
	{ID: "framework", Label: "Framework", Options: FrameworkOptions},
	{ID: "styling", Label: "Styling", Options: StylingOptions},
	{ID: "database", Label: "Database", Options: DatabaseOptions},
	{ID: "auth", Label: "Authentication", Options: AuthOptions},
	{ID: "deployment", Label: "Deployment", Options: DeploymentOptions},
	{ID: "componentLibrary", Label: "Component Library", Options: ComponentLibraryOptions},
}

// AppTypes lists the supported application shapes
var AppTypes = []AppType{
	{ID: "web-app", Label: "Web Application", Description: "A full web app with frontend and potentially backend"},
	{ID: "mobile-app", Label: "Mobile App", Description: "Native or cross-platform mobile application"},
	{ID: "api", Label: "API / Backend Only", Description: "REST or GraphQL API without a frontend"},
	{ID: "static-site", Label: "Static Site", Description: "Marketing site, blog, or documentation"},
	{ID: "monorepo", Label: "Monorepo", Description: "Multiple packages in a single repository"},
	{ID: "cli", Label: "CLI Tool", Description: "Command-line application"},
	{ID: "library", Label: "Library / Package", Description: "Reusable code published as a package"},
}
