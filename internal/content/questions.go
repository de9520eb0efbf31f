package content

import (
	"github.com/jonathan/placement-readiness/internal/types"
)

// questionCount is the exact number of questions every analysis produces.
const questionCount = 10

// questionRule ties one question to the canonical skill that triggers it.
type questionRule struct {
	skill    string
	question string
}

// skillQuestions is the fixed priority order in which skill-triggered
// questions are collected. One question per recognized skill.
func skillQuestions() []questionRule {
	return []questionRule{
		{skill: "SQL", question: "Explain database indexing — when does it help and when can it hurt performance?"},
		{skill: "React", question: "Compare useState, useReducer, and external state managers like Redux. When would you choose each?"},
		{skill: "DSA", question: "How would you optimize search in a sorted dataset? Walk me through the approach."},
		{skill: "Node.js", question: "Explain the Node.js event loop. How does it handle I/O-bound vs CPU-bound tasks?"},
		{skill: "Python", question: "What are Python decorators? Give a real-world example of when you would use one."},
		{skill: "Java", question: "Explain the difference between HashMap and ConcurrentHashMap. When is thread safety critical?"},
		{skill: "JavaScript", question: "What is the difference between var, let, and const? Explain hoisting and the temporal dead zone."},
		{skill: "TypeScript", question: "How does TypeScript improve code quality? Explain generics with a practical example."},
		{skill: "MongoDB", question: "When would you choose MongoDB over a relational database? Discuss data modeling differences."},
		{skill: "PostgreSQL", question: "Explain PostgreSQL MVCC and how it handles concurrent transactions."},
		{skill: "MySQL", question: "What is the difference between InnoDB and MyISAM storage engines?"},
		{skill: "Docker", question: "Explain the difference between a Docker image and a container. How do layers work?"},
		{skill: "Kubernetes", question: "What is a Kubernetes pod? How does it differ from a deployment?"},
		{skill: "AWS", question: "Compare EC2, Lambda, and ECS. When would you use each for a web application?"},
		{skill: "Redis", question: "How would you use Redis for caching in a web application? Discuss eviction policies."},
		{skill: "GraphQL", question: "Compare REST and GraphQL. What are the trade-offs of each approach?"},
		{skill: "Next.js", question: "Explain SSR vs SSG vs ISR in Next.js. When would you use each strategy?"},
		{skill: "Express", question: "How does middleware work in Express? Design a simple auth middleware."},
		{skill: "OOP", question: "Explain the SOLID principles with examples from a project you have built."},
		{skill: "DBMS", question: "Walk me through normalization from 1NF to BCNF with a real table example."},
		{skill: "OS", question: "Explain the difference between a process and a thread. What is a deadlock and how do you prevent it?"},
		{skill: "Networks", question: "Describe what happens from the moment you type a URL into a browser until the page loads."},
		{skill: "C++", question: "Explain RAII in C++. How does it relate to smart pointers?"},
		{skill: "Go", question: "How do goroutines differ from OS threads? Explain channels for concurrency."},
		{skill: "Selenium", question: "How do you handle dynamic elements and waits in Selenium test automation?"},
		{skill: "Cypress", question: "What makes Cypress different from Selenium? Discuss its architecture."},
		{skill: "REST", question: "Design a RESTful API for a todo app. What HTTP methods and status codes would you use?"},
		{skill: "CI/CD", question: "Walk me through your ideal CI/CD pipeline. What tools and stages would you include?"},
		{skill: "Linux", question: "How would you debug a production server issue using only the Linux command line?"},
	}
}

// universalQuestions pad the bank when fewer than 10 skill-triggered
// questions accumulate.
func universalQuestions() []string {
	return []string{
		"What is your approach to debugging a complex issue you have never seen before?",
		"Describe a project you are most proud of. What technical decisions did you make and why?",
		"How do you handle disagreements with a teammate about a technical approach?",
		"Explain the concept of time complexity. Analyze the complexity of a nested loop.",
		"What is the difference between a stack and a queue? Give real-world use cases.",
		"How do you ensure code quality in a team environment?",
		"Explain caching — where can you implement it in a typical web application?",
		"What is version control? Describe your Git workflow.",
		"How would you design a URL shortening service like bit.ly?",
		"What are microservices? Compare with monolithic architecture.",
	}
}

// GenerateQuestions returns exactly 10 unique likely interview questions:
// skill-triggered questions in priority order first, padded from the
// universal list, truncated when more than 10 accumulate.
func GenerateQuestions(skills types.SkillSet) []string {
	questions := make([]string, 0, questionCount)
	seen := make(map[string]bool)

	for _, rule := range skillQuestions() {
		if skills.Has(rule.skill) && !seen[rule.question] {
			questions = append(questions, rule.question)
			seen[rule.question] = true
		}
	}

	for _, q := range universalQuestions() {
		if len(questions) >= questionCount {
			break
		}
		if !seen[q] {
			questions = append(questions, q)
			seen[q] = true
		}
	}

	if len(questions) > questionCount {
		questions = questions[:questionCount]
	}
	return questions
}
