package profile

// SkillCategory groups skills the way the site renders them.
type SkillCategory string

const (
	CategoryLanguages  SkillCategory = "languages"
	CategoryFrameworks SkillCategory = "frameworks"
	CategoryTools      SkillCategory = "tools"
	CategoryCloud      SkillCategory = "cloud"
	CategoryDatabases  SkillCategory = "databases"
)

// Skill is a single chip in the skills section.
type Skill struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

// Experience is one entry of the work history timeline.
type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Period      string   `json:"period"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Education is one degree.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
	Honors      string `json:"honors,omitempty"`
}

// Certification is one completed course or credential.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Profile is the complete résumé shown on the site and used to ground chat answers.
type Profile struct {
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	Tagline        string          `json:"tagline"`
	Summary        string          `json:"summary"`
	Location       string          `json:"location"`
	Email          string          `json:"email"`
	LinkedIn       string          `json:"linkedin,omitempty"`
	GitHub         string          `json:"github,omitempty"`
	Skills         []Skill         `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
}

// Seed returns the résumé content published on the site.
func Seed() Profile {
	return Profile{
		Name:     "Dakota Radigan, MBA",
		Role:     "Senior Product Manager",
		Tagline:  "Shipping data-driven investment solutions with AI & technical fluency",
		Summary:  "Senior Product Manager with 5+ years shipping data-driven investment solutions and managing technical partnerships. Expert in validating client and operational pain points and translating them into functional specifications that drive measurable business impact. Combining deep investment operations knowledge with technical fluency (SQL, Python, AI) and a bias for action.",
		Location: "Seattle, WA",
		Email:    "dakotaradigan@gmail.com",
		LinkedIn: "https://linkedin.com/in/dakota-radigan",
		Skills: []Skill{
			// Product strategy
			{Name: "Product Launches", Category: CategoryFrameworks},
			{Name: "Roadmap Definition", Category: CategoryFrameworks},
			{Name: "GTM Strategy", Category: CategoryFrameworks},
			{Name: "OKR/KPI Development", Category: CategoryFrameworks},
			{Name: "User Research", Category: CategoryFrameworks},
			{Name: "Customer Journeys", Category: CategoryFrameworks},
			{Name: "Investment Operations", Category: CategoryFrameworks},

			// Technical
			{Name: "Generative AI (LLMs, RAG, Agents)", Category: CategoryTools},
			{Name: "Python", Category: CategoryLanguages},
			{Name: "SQL", Category: CategoryLanguages},
			{Name: "API Integrations", Category: CategoryTools},
			{Name: "Automation", Category: CategoryTools},
			{Name: "CRM Tools", Category: CategoryTools},

			// Leadership
			{Name: "Cross-Functional Leadership", Category: CategoryCloud},
			{Name: "Stakeholder Management", Category: CategoryCloud},
			{Name: "Executive Communication", Category: CategoryCloud},
			{Name: "Strategic Partnerships", Category: CategoryCloud},
			{Name: "Client Service", Category: CategoryCloud},
		},
		Experience: []Experience{
			{
				ID:          "exp-1",
				Company:     "Parametric Portfolio (Morgan Stanley)",
				Role:        "Vice President, Senior Product Manager",
				Period:      "Jan 2024 – Present",
				Location:    "Seattle, WA",
				Description: "Leading technical investment integrations and AI-powered product innovation.",
				Highlights: []string{
					"Led technical investment integration with Wells Fargo, delivering pilot 2 weeks early—securing $32M initial AUM and a $3B+ pipeline",
					"Launched new investment product MVP ahead of schedule; captured $75M AUM within 6 months",
					"Architected a RAG-based GenAI assistant projected to resolve ~3,500+ annual email inquiries",
					"Appointed firm-wide \"AI Champion,\" leading an 8-person task force; increased Copilot adoption by 60% in 2 months",
				},
			},
			{
				ID:          "exp-2",
				Company:     "Parametric Portfolio (Morgan Stanley)",
				Role:        "Vice President, Product Manager",
				Period:      "Jan 2023 – Jan 2024",
				Location:    "Seattle, WA",
				Description: "Drove scalability initiatives and enterprise partnerships.",
				Highlights: []string{
					"Awarded firm-wide \"Commitment to Excellence\" for saving 2,500+ operational hours annually",
					"Partnered with Sales on $200M+ in enterprise deals as technical SME",
					"Built SQL-based analytics framework increasing feature utilization by 20%",
					"Chaired cross-functional leadership council reducing decision cycle times from weeks to days",
				},
			},
			{
				ID:          "exp-3",
				Company:     "Parametric Portfolio (Morgan Stanley)",
				Role:        "Analyst, Product Management",
				Period:      "Jan 2021 – Jan 2023",
				Location:    "Seattle, WA",
				Description: "Scaled direct indexing suite and led digital onboarding initiatives.",
				Highlights: []string{
					"Launched 18 new benchmark strategies within 9 months, driving $100M+ in new AUM",
					"Wrote functional specifications for digital onboarding portal and led engineering rollout",
					"Engineered SQL reporting and heatmaps to diagnose bottlenecks across Sales, Client Service, and Ops",
				},
			},
			{
				ID:          "exp-4",
				Company:     "Parametric Portfolio (Morgan Stanley)",
				Role:        "Supervisor, Account Onboarding",
				Period:      "Jul 2019 – Jan 2021",
				Location:    "Seattle, WA",
				Description: "Led team overseeing strategic onboarding and workflow automation.",
				Highlights: []string{
					"Led a team of 11 overseeing strategic onboarding of $493M in assets (1,200 accounts)",
					"QA Lead for Engineering, launching two internal workflow tools that digitized manual tasks",
					"Built SQL-based rule systems and Excel models to validate complex logic, reducing errors",
				},
			},
		},
		Education: []Education{
			{ID: "edu-1", Institution: "Washington State University", Degree: "MBA", Field: "Finance", Year: "2021"},
			{ID: "edu-2", Institution: "Seattle University", Degree: "BA, Business Administration", Field: "Finance", Year: "2017"},
		},
		Certifications: []Certification{
			{ID: "cert-1", Name: "AI Product Management", Issuer: "Product Faculty (OpenAI-led)", Year: "2024"},
			{ID: "cert-2", Name: "PCEP – Certified Entry-Level Python Programmer", Issuer: "Python Institute", Year: "2024"},
			{ID: "cert-3", Name: "AI Fluency: Frameworks & Foundations", Issuer: "Anthropic", Year: "2024"},
			{ID: "cert-4", Name: "Introduction to Model Context Protocol", Issuer: "Anthropic", Year: "2024"},
			{ID: "cert-5", Name: "Using Python to Access Web Data & Databases", Issuer: "Coursera", Year: "2024"},
		},
	}
}
