// Package rounds builds the company-size-specific sequence of predicted
// interview rounds with per-round rationale and focus tags.
package rounds

import (
	"fmt"
	"strings"

	"github.com/jonathan/placement-readiness/internal/types"
)

// template is an interview round before numbering. Titles here never carry a
// "Round N:" prefix; the prefix is derived from list position at finalize
// time so conditionally spliced rounds renumber correctly.
type template struct {
	title       string
	roundType   types.RoundType
	description string
	rationale   string
	focus       []string
}

// Engine dispatches on company size to one of three round generators.
type Engine struct{}

// NewEngine returns a round-mapping engine.
func NewEngine() *Engine {
	return &Engine{}
}

// MapRounds produces the ordered round list for a company profile and
// extracted skill set. Earliest rounds are the broadest filters.
func (e *Engine) MapRounds(profile types.CompanyProfile, skills types.SkillSet) []types.InterviewRound {
	var templates []template
	switch profile.Size {
	case types.SizeEnterprise:
		templates = enterpriseRounds(skills)
	case types.SizeMidsize:
		templates = midsizeRounds(skills)
	default:
		templates = startupRounds(skills)
	}
	return finalize(templates)
}

// finalize derives "Round N: title" from each template's 1-based position.
func finalize(templates []template) []types.InterviewRound {
	rounds := make([]types.InterviewRound, len(templates))
	for i, t := range templates {
		rounds[i] = types.InterviewRound{
			Title:       fmt.Sprintf("Round %d: %s", i+1, t.title),
			Type:        t.roundType,
			Description: t.description,
			Rationale:   t.rationale,
			FocusAreas:  t.focus,
		}
	}
	return rounds
}

// hasLike reports whether any extracted skill contains the query,
// case-insensitively. Round templates use this looser containment test;
// content generators use exact canonical membership.
func hasLike(skills types.SkillSet, query string) bool {
	q := strings.ToLower(query)
	for _, skill := range skills.All() {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}

// filterSkills returns the extracted skills that appear in the allow list,
// preserving extraction order.
func filterSkills(skills types.SkillSet, allowed ...string) []string {
	allowedSet := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		allowedSet[a] = true
	}
	var out []string
	for _, skill := range skills.All() {
		if allowedSet[skill] {
			out = append(out, skill)
		}
	}
	return out
}

func enterpriseRounds(skills types.SkillSet) []template {
	hasDSA := hasLike(skills, "DSA")
	hasCoreCS := skills.HasCategory(types.CategoryCoreCS)
	hasWeb := skills.HasCategory(types.CategoryWeb)

	online := template{
		title:     "Online Assessment",
		roundType: types.RoundOnline,
		rationale: "Companies use this to filter a large applicant pool quickly. Strong DSA fundamentals and speed are key differentiators at this stage.",
	}
	if hasDSA {
		online.description = "Timed online test covering DSA problems, aptitude, and logical reasoning. Expect 2–3 coding questions with time constraints."
		online.focus = []string{"DSA", "Aptitude", "Time Management"}
	} else {
		online.description = "Online aptitude test with MCQs on core CS, logical reasoning, and basic programming."
		online.focus = []string{"Aptitude", "Logical Reasoning", "Basic CS"}
	}

	coding := "fundamental coding challenges"
	if hasDSA {
		coding = "medium-hard DSA problems"
	}
	topics := "data structures and algorithms"
	if hasCoreCS {
		topics = "OS, DBMS, and Networks"
	}
	technical := template{
		title:       "Technical Interview — DSA & Core CS",
		roundType:   types.RoundTechnical,
		description: fmt.Sprintf("Live coding round focused on %s. Expect questions on %s.", coding, topics),
		rationale:   "This round tests your depth of understanding. Interviewers evaluate not just correctness but your approach, communication, and ability to optimize.",
	}
	if hasCoreCS {
		technical.focus = []string{"DSA", "OS", "DBMS", "Networks", "Problem Solving"}
	} else {
		technical.focus = []string{"DSA", "Problem Solving", "Code Quality"}
	}

	project := template{
		title:     "Technical Interview — Projects & Stack",
		roundType: types.RoundProject,
		rationale: "This round validates that you can apply knowledge to real-world scenarios. Showing depth in your own projects demonstrates genuine engineering ability.",
	}
	if hasWeb {
		project.description = "Deep dive into your projects and tech stack. Expect questions on frontend/backend architecture, API design, and deployment."
		project.focus = append(filterSkills(skills, "React", "Node.js", "Express", "Next.js"), "System Design", "Architecture")
	} else {
		project.description = "Deep dive into your projects and tech stack. Be prepared to walk through your most impactful project end-to-end."
		project.focus = []string{"Projects", "Tech Stack", "Problem Solving"}
	}

	hr := template{
		title:       "HR / Managerial",
		roundType:   types.RoundHR,
		description: "Behavioral interview assessing cultural fit, communication, and career motivation. Uses STAR method for situational questions.",
		rationale:   "Technical skill alone is not enough. Companies want to ensure you can collaborate, handle pressure, and align with their values and mission.",
		focus:       []string{"Communication", "Teamwork", "Leadership", "Motivation"},
	}

	return []template{online, technical, project, hr}
}

func midsizeRounds(skills types.SkillSet) []template {
	hasDSA := hasLike(skills, "DSA")
	hasWeb := skills.HasCategory(types.CategoryWeb)

	challenge := template{
		title:     "Coding Challenge",
		roundType: types.RoundOnline,
		rationale: "Mid-size companies balance between structured assessment and practical evaluation. They want to see clean, working code under reasonable time.",
	}
	if hasDSA {
		challenge.description = "DSA-focused coding test with 2–3 problems of increasing difficulty. May include a take-home component."
		challenge.focus = []string{"DSA", "Clean Code", "Efficiency"}
	} else {
		challenge.description = "Practical coding challenge emphasizing clean code and problem-solving. May include a take-home component."
		challenge.focus = []string{"Problem Solving", "Clean Code", "Logic"}
	}

	deepDive := template{
		title:     "Technical Deep Dive",
		roundType: types.RoundTechnical,
		rationale: "This evaluates both breadth and depth. Mid-size companies value engineers who can own features end-to-end and make sound technical decisions.",
	}
	if hasWeb {
		deepDive.description = "In-depth discussion on your tech expertise. Expect system design questions and architecture discussions for fullstack roles."
		deepDive.focus = append(filterSkills(skills, "React", "Node.js", "SQL", "MongoDB"), "System Design")
	} else {
		deepDive.description = "In-depth discussion on your tech expertise. Focus on core concepts and how you apply them in practice."
		deepDive.focus = []string{"Core Concepts", "System Thinking", "Architecture"}
	}

	culture := template{
		title:       "Project & Culture Fit",
		roundType:   types.RoundProject,
		description: "Mixed round covering project walkthrough, team collaboration scenarios, and alignment with company culture and values.",
		rationale:   "In smaller teams, every hire significantly impacts culture. Companies assess whether you take ownership and communicate proactively.",
		focus:       []string{"Projects", "Ownership", "Culture Fit", "Communication"},
	}

	templates := []template{challenge, deepDive, culture}

	// An extra infrastructure round is spliced in before culture fit when the
	// JD signals Cloud/DevOps or Testing responsibilities.
	if skills.HasCategory(types.CategoryCloud) || skills.HasCategory(types.CategoryTesting) {
		devops := template{
			title:       "DevOps & Infrastructure",
			roundType:   types.RoundTechnical,
			description: "Discussion of deployment pipelines, infrastructure decisions, monitoring, and testing strategies.",
			rationale:   "Mid-size companies often expect engineers to manage their own infrastructure. Showing DevOps awareness is a strong differentiator.",
			focus:       filterSkills(skills, "Docker", "Kubernetes", "AWS", "CI/CD", "Linux", "Jest", "Cypress"),
		}
		templates = append(templates[:2], append([]template{devops}, templates[2:]...)...)
	}

	return templates
}

func startupRounds(skills types.SkillSet) []template {
	hasWeb := skills.HasCategory(types.CategoryWeb)
	hasReact := hasLike(skills, "React")

	practical := template{
		title:     "Practical Coding",
		roundType: types.RoundOnline,
		rationale: "Startups prioritize engineers who can deliver working solutions fast. This round tests your ability to write production-quality code under practical constraints.",
	}
	if hasWeb {
		practical.description = "Build a small feature or component — startups want to see you write real, shippable code."
		practical.focus = filterSkills(skills, "React", "Node.js", "JavaScript", "TypeScript", "Python")
	} else {
		practical.description = "Coding exercise focused on real-world problem solving rather than competitive programming."
		practical.focus = []string{"Practical Coding", "Problem Solving", "Speed"}
	}

	system := template{
		title:     "System & Architecture Discussion",
		roundType: types.RoundTechnical,
		rationale: "Startups need versatile thinkers. This round checks if you can reason about systems holistically, not just write isolated functions.",
	}
	if hasReact {
		system.description = "Discussion about how you would design or improve a system. May include frontend architecture, state management, and API integration design."
		system.focus = []string{"Frontend Architecture", "API Design", "State Management"}
	} else {
		system.description = "Discussion about how you would design or improve a system. Focus on trade-offs, scalability thinking, and practical decisions."
		system.focus = []string{"System Design", "Trade-offs", "Scalability"}
	}

	founder := template{
		title:       "Founder / Culture Fit",
		roundType:   types.RoundHR,
		description: "Informal conversation with the founder or team lead about your motivation, working style, and alignment with the startup mission.",
		rationale:   "In a startup, every team member shapes the culture. Founders want to ensure you are self-driven, adaptable, and genuinely excited about the problem space.",
		focus:       []string{"Motivation", "Adaptability", "Initiative", "Culture Fit"},
	}

	return []template{practical, system, founder}
}
