package profile

// record is the canonical dataset. Data() hands out a pointer to it; nothing
// may write through that pointer after init.
var record = Record{
	Overview: Overview{
		Name:  "Aneeq Hassan",
		Title: "AI Software Engineer",
		Tagline: "Building intelligent systems that deliver meaningful impact. " +
			"Over 3 years of experience developing AI solutions and scalable applications.",
		YearsExperience: 3,
		Languages:       []string{"English", "French", "Spanish", "Arabic", "Urdu"},
	},

	Experience: []Experience{
		{
			ID:           "dayforce",
			Company:      "Dayforce",
			Role:         "AI Software Engineer",
			Duration:     "Sept 2025 - Present",
			Location:     "Toronto, ON",
			Technologies: []string{"LangGraph", "Python", "ChromaDB", "FastAPI", "LangChain", "RAG"},
			Achievements: []string{
				"Built QueryGPT, an internal agentic application for SQL generation across 50K+ tables",
				"Implemented RAG architecture with ChromaDB for semantic search",
				"Designed conversational AI workflows with LangGraph",
			},
			Current: true,
		},
		{
			ID:           "learning-mode",
			Company:      "Learning Mode AI",
			Role:         "Software Engineer Intern",
			Duration:     "May - Aug 2025",
			Location:     "Toronto, ON",
			Technologies: []string{"Go", "Redis", "OpenAI", "Microservices"},
			Achievements: []string{
				"Developed quiz microservices with real-time video synchronization",
				"Built high-performance backend services in Go",
				"Implemented Redis-based caching strategies",
			},
		},
		{
			ID:           "magnet",
			Company:      "Magnet Forensics",
			Role:         "Software Engineer Intern",
			Duration:     "Jan - Apr 2025",
			Location:     "Waterloo, ON",
			Technologies: []string{"C#", ".NET", "Enterprise Software"},
			Achievements: []string{
				"Created Fastrak, reducing specialized tool usage by 85%",
				"Built forensic analysis tools with .NET framework",
			},
		},
		{
			ID:           "annaly",
			Company:      "Annaly",
			Role:         "Software Engineer Intern",
			Duration:     "Feb - Aug 2024",
			Location:     "New York, NY",
			Technologies: []string{"Python", "ETL", "Data Pipelines"},
			Achievements: []string{
				"Implemented ETL notification system reducing incident response by 95%",
				"Performance optimizations cutting execution time by 50%",
			},
		},
		{
			ID:           "enbridge",
			Company:      "Enbridge",
			Role:         "Software Engineer Intern",
			Duration:     "June - Sept 2023",
			Location:     "Toronto, ON",
			Technologies: []string{"Power Apps", "SharePoint", "Automation"},
			Achievements: []string{
				"Built Power Apps tool improving inter-departmental communication by 75%",
			},
		},
		{
			ID:           "koho",
			Company:      "Koho Financial",
			Role:         "Software Engineer Intern",
			Duration:     "May 2022 - May 2023",
			Location:     "Toronto, ON",
			Technologies: []string{"Angular", "Go", "Google Pay API"},
			Achievements: []string{
				"Integrated Google Pay achieving 40% adoption and $2M in transactions",
				"Implemented state management reducing API calls by 60%",
				"Developed Angular/Go solutions for financial features",
			},
		},
		{
			ID:           "uoft-ta",
			Company:      "University of Toronto",
			Role:         "Teaching Assistant",
			Duration:     "Jan 2022 - May 2025",
			Location:     "Toronto, ON",
			Technologies: []string{"Python", "Education"},
			Achievements: []string{
				"Instructed 2,000+ students in Python programming",
				"Improved student grades by 47%",
			},
		},
	},

	Projects: []Project{
		{
			ID:   "mailflowai",
			Name: "MailflowAI",
			Description: "AI-powered 24/7 customer service automation that processes emails " +
				"and generates intelligent responses",
			TechStack: []string{"Python", "GCP", "Cloud Pub/Sub", "OpenAI", "Shopify GraphQL Admin API", "Gmail API"},
			Impact:    "Reduced monthly costs by $14K",
			Metrics:   "Response times from hours to minutes",
			Links:     &ProjectLinks{GitHub: "https://github.com/HassanA01/mailflowai"},
			Featured:  true,
		},
		{
			ID:   "b2w",
			Name: "B2W - UofT Hacks 12",
			Description: "Financial management platform with ML-powered spending predictions, " +
				"expense tracking, and personalized recommendations",
			TechStack: []string{"Next.js", "Express.js", "PostgreSQL", "Flask", "Databricks", "AWS", "scikit-learn"},
			Links:     &ProjectLinks{GitHub: "https://github.com/HassanA01/UofTHacks12"},
			Featured:  true,
		},
		{
			ID:   "bizreach",
			Name: "BizReach Marketplace",
			Description: "Full-stack marketplace connecting mobile businesses with clients, " +
				"with AI-powered gig description generator",
			TechStack: []string{"React", "Express", "OAuth", "Node.js", "Socket.io", "Firebase", "OpenAI"},
			Impact:    "Led team of 5 developers",
			Links:     &ProjectLinks{GitHub: "https://github.com/HassanA01/final-project-s23-cd-users-baddies"},
			Featured:  true,
		},
		{
			ID:   "myriad-cro",
			Name: "Myriad CRO Landing Page",
			Description: "Conversion-focused landing page with step-by-step processes, " +
				"expandable FAQs, and responsive design",
			TechStack: []string{"Next.js", "Shadcn", "Tailwind CSS", "Aceternity UI", "RadixUI", "Motion"},
			Links: &ProjectLinks{
				GitHub: "https://github.com/HassanA01/myriad-cro-website",
				Demo:   "https://myriadcro.com",
			},
			Featured: true,
		},
		{
			ID:          "iot-monitoring",
			Name:        "IoT Data Monitoring System",
			Description: "Manages 1+ million records with optimized retrieval using continuous aggregates",
			TechStack:   []string{"TypeScript", "TimescaleDB", "Grafana"},
			Links:       &ProjectLinks{GitHub: "https://github.com/HassanA01/IoT-Data-Monitoring-System"},
		},
		{
			ID:          "proxy-server",
			Name:        "Proxy Server",
			Description: "Caching mechanisms reducing data retrieval times by 50%, uses socket programming",
			TechStack:   []string{"Python"},
			Impact:      "50% faster data retrieval",
			Links:       &ProjectLinks{GitHub: "https://github.com/HassanA01/ProxyServer"},
		},
		{
			ID:          "delivery-service",
			Name:        "Delivery Service App",
			Description: "Delivery tracking system with event-driven architecture and order lifecycle simulation",
			TechStack:   []string{"React", "Bootstrap", "Python", "Redis", "FastAPI"},
			Links:       &ProjectLinks{GitHub: "https://github.com/HassanA01/DeliveryService"},
		},
		{
			ID:   "network-simulation",
			Name: "Network Simulation",
			Description: "Network application for retrieving and displaying web content, " +
				"focusing on socket programming and TCP/IP protocols",
			TechStack: []string{"C++"},
			Links: &ProjectLinks{
				GitHub: "https://github.com/HassanA01/networksimulation",
				Demo:   "https://networksimulation.dev",
			},
		},
	},

	Skills: []SkillCategory{
		{
			Category: "Languages",
			Skills: []Skill{
				{Name: "Python", Proficiency: Expert},
				{Name: "TypeScript", Proficiency: Expert},
				{Name: "JavaScript", Proficiency: Expert},
				{Name: "Go", Proficiency: Advanced},
				{Name: "C#", Proficiency: Advanced},
				{Name: "Java", Proficiency: Advanced},
				{Name: "C++", Proficiency: Intermediate},
				{Name: "C", Proficiency: Intermediate},
			},
		},
		{
			Category: "Frontend",
			Skills: []Skill{
				{Name: "React", Proficiency: Expert},
				{Name: "Next.js", Proficiency: Advanced},
				{Name: "Angular", Proficiency: Advanced},
				{Name: "Tailwind CSS", Proficiency: Expert},
			},
		},
		{
			Category: "Backend",
			Skills: []Skill{
				{Name: "FastAPI", Proficiency: Expert},
				{Name: "Flask", Proficiency: Advanced},
				{Name: "Express.js", Proficiency: Advanced},
				{Name: "Spring Boot", Proficiency: Advanced},
				{Name: "Node.js", Proficiency: Expert},
			},
		},
		{
			Category: "Databases",
			Skills: []Skill{
				{Name: "MongoDB", Proficiency: Advanced},
				{Name: "PostgreSQL", Proficiency: Advanced},
				{Name: "Firebase", Proficiency: Advanced},
				{Name: "TimescaleDB", Proficiency: Intermediate},
				{Name: "Redis", Proficiency: Advanced},
			},
		},
		{
			Category: "Cloud & DevOps",
			Skills: []Skill{
				{Name: "AWS", Proficiency: Advanced},
				{Name: "Docker", Proficiency: Advanced},
				{Name: "GCP", Proficiency: Advanced},
				{Name: "Grafana", Proficiency: Intermediate},
			},
		},
		{
			Category: "AI / ML",
			Skills: []Skill{
				{Name: "OpenAI", Proficiency: Expert},
				{Name: "LangChain", Proficiency: Expert},
				{Name: "LangGraph", Proficiency: Expert},
				{Name: "ChromaDB", Proficiency: Expert},
				{Name: "RAG", Proficiency: Expert},
				{Name: "scikit-learn", Proficiency: Intermediate},
			},
		},
	},

	Education: []Education{
		{
			Institution: "University of Toronto",
			Degree:      "Bachelor of Science",
			Field:       "Computer Science",
			Duration:    "2020 - 2025",
			Highlights: []string{
				"Teaching Assistant for 2,000+ students in Python",
				"Improved student grades by 47%",
			},
		},
	},

	Contact: Contact{
		Email:     "hassan.aneeq01@gmail.com",
		GitHub:    "https://github.com/hassana01",
		LinkedIn:  "https://linkedin.com/in/hassana01",
		Portfolio: "https://aneeqhassan.com",
	},

	Hobbies: []string{"Soccer", "Gaming", "Travel", "Fitness", "Food & Culinary Exploration"},

	Recommendations: []Recommendation{
		{
			ID:      "rec-1",
			Author:  "Jane Smith",
			Role:    "Senior Engineering Manager",
			Company: "Dayforce",
			Text: "Aneeq consistently delivers beyond expectations. His ability to architect " +
				"complex AI systems while keeping code clean and maintainable is rare for " +
				"someone at his career stage.",
			LinkedIn: "https://linkedin.com/in/janesmith",
		},
		{
			ID:      "rec-2",
			Author:  "John Doe",
			Role:    "Staff Engineer",
			Company: "Koho Financial",
			Text: "Working with Aneeq was a pleasure. He took ownership of the Google Pay " +
				"integration end-to-end and drove it to $2M in transactions with minimal oversight.",
		},
		{
			ID:      "rec-3",
			Author:  "Alex Chen",
			Role:    "Engineering Lead",
			Company: "Learning Mode AI",
			Text: "Aneeq ramped up on our Go microservices stack incredibly fast and shipped " +
				"production-quality features in his first week. Strong communicator and team player.",
			LinkedIn: "https://linkedin.com/in/alexchen",
		},
	},
}
