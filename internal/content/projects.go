// Package content holds the portfolio pages' data and the contact form.
package content

import "slices"

// Project is one portfolio entry.
type Project struct {
	ID          string
	Title       string
	Description string
	Href        string
	TechStack   []string
}

var projects = []Project{
	{
		ID:          "1",
		Title:       "E-commerce Storefront",
		Description: "A modern e-commerce platform built with Next.js and Stripe for seamless payments.",
		Href:        "https://example.com/ecommerce",
		TechStack:   []string{"Next.js", "React", "Tailwind CSS", "Stripe"},
	},
	{
		ID:          "2",
		Title:       "AI Chatbot Interface",
		Description: "An interactive AI chatbot interface powered by a custom NLP model.",
		Href:        "https://example.com/chatbot",
		TechStack:   []string{"Python", "Flask", "React", "TypeScript"},
	},
	{
		ID:          "3",
		Title:       "Task Management App",
		Description: "A full-stack task management application with user authentication and real-time updates.",
		Href:        "https://example.com/task-app",
		TechStack:   []string{"Node.js", "Express", "MongoDB", "React"},
	},
	{
		ID:          "4",
		Title:       "Portfolio Website V2",
		Description: "The second iteration of my personal portfolio, focusing on advanced animations and modern design.",
		Href:        "https://example.com/portfolio-v2",
		TechStack:   []string{"Next.js", "Framer Motion", "Tailwind CSS"},
	},
	{
		ID:          "5",
		Title:       "Mobile Game Prototype",
		Description: "A simple mobile game prototype developed with React Native and Expo.",
		Href:        "https://example.com/mobile-game",
		TechStack:   []string{"React Native", "Expo", "JavaScript"},
	},
}

// Projects returns every project in display order. The result is a copy.
func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.TechStack = slices.Clone(p.TechStack)
		out[i] = p
	}
	return out
}

// ProjectByID looks a project up by its ID.
func ProjectByID(id string) (Project, bool) {
	i := slices.IndexFunc(projects, func(p Project) bool { return p.ID == id })
	if i < 0 {
		return Project{}, false
	}
	p := projects[i]
	p.TechStack = slices.Clone(p.TechStack)
	return p, true
}

// Link is a labelled external address.
type Link struct {
	Label string
	Href  string
}

// HeroContent is the landing page copy.
type HeroContent struct {
	Name    string
	Roles   []string
	Tagline string
	Links   []Link
}

// Hero returns the landing page copy. Roles rotate in the headline.
func Hero() HeroContent {
	return HeroContent{
		Name: "Mukesh Kumar",
		Roles: []string{
			"React Native Developer",
			"Frontend Engineer",
			"Backend Developer",
			"Full Stack Web & Mobile Developer",
		},
		Tagline: "Passionate about building intuitive and performant mobile applications. Let's create something amazing together.",
		Links: []Link{
			{Label: "LinkedIn", Href: "https://linkedin.com/in/yourprofile"},
			{Label: "GitHub", Href: "https://github.com/yourprofile"},
			{Label: "Email", Href: "mailto:your.email@example.com"},
		},
	}
}

// AboutContent is the about page copy.
type AboutContent struct {
	Paragraphs []string
	TechStack  []string
}

func About() AboutContent {
	return AboutContent{
		Paragraphs: []string{
			"Hi, I'm Mukesh Kumar, a passionate full stack developer with 2.5+ years of work experience and a strong focus on mobile app development using React Native. I've built and deployed real-world projects like fantasy sports apps, admin dashboards, and location-based systems using technologies like Node.js, Express, MongoDB, and AWS.",
			"I love turning complex requirements into scalable, clean, and user-friendly apps. Whether it's a frontend in React or a backend API with TypeScript, I care deeply about performance, clean architecture, and a great user experience.",
		},
		TechStack: []string{"React Native", "TypeScript", "ReactJs", "NextJs", "NodeJs", "ExpressJs", "MongoDB", "AWS", "GitHub"},
	}
}

// Page is a top level route of the site.
type Page struct {
	Route string
	Title string
}

// Pages returns the site's routes in navigation order. The first is the
// landing page.
func Pages() []Page {
	return []Page{
		{Route: "/", Title: "Home"},
		{Route: "/about", Title: "About"},
		{Route: "/projects", Title: "Projects"},
		{Route: "/contact", Title: "Contact"},
	}
}
