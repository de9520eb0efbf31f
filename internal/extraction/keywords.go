package extraction

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/placement-readiness/internal/schemas"
	"github.com/jonathan/placement-readiness/internal/types"
)

// KeywordEntry maps one raw keyword to its category and canonical display
// name. The keyword table is configuration data, not derived at runtime.
type KeywordEntry struct {
	Keyword   string         `json:"keyword"`
	Category  types.Category `json:"category"`
	Canonical string         `json:"canonical"`
}

// DefaultKeywordTable returns the built-in keyword table. Entry order is
// meaningful: it fixes the first-seen order of skills within a category.
func DefaultKeywordTable() []KeywordEntry {
	return []KeywordEntry{
		// Core CS
		{Keyword: "dsa", Category: types.CategoryCoreCS, Canonical: "DSA"},
		{Keyword: "data structures", Category: types.CategoryCoreCS, Canonical: "DSA"},
		{Keyword: "algorithms", Category: types.CategoryCoreCS, Canonical: "DSA"},
		{Keyword: "oop", Category: types.CategoryCoreCS, Canonical: "OOP"},
		{Keyword: "object oriented", Category: types.CategoryCoreCS, Canonical: "OOP"},
		{Keyword: "dbms", Category: types.CategoryCoreCS, Canonical: "DBMS"},
		{Keyword: "database management", Category: types.CategoryCoreCS, Canonical: "DBMS"},
		{Keyword: "os", Category: types.CategoryCoreCS, Canonical: "OS"},
		{Keyword: "operating system", Category: types.CategoryCoreCS, Canonical: "OS"},
		{Keyword: "networks", Category: types.CategoryCoreCS, Canonical: "Networks"},
		{Keyword: "computer networks", Category: types.CategoryCoreCS, Canonical: "Networks"},
		{Keyword: "networking", Category: types.CategoryCoreCS, Canonical: "Networks"},

		// Languages
		{Keyword: "java", Category: types.CategoryLanguages, Canonical: "Java"},
		{Keyword: "python", Category: types.CategoryLanguages, Canonical: "Python"},
		{Keyword: "javascript", Category: types.CategoryLanguages, Canonical: "JavaScript"},
		{Keyword: "typescript", Category: types.CategoryLanguages, Canonical: "TypeScript"},
		{Keyword: "c++", Category: types.CategoryLanguages, Canonical: "C++"},
		{Keyword: "c#", Category: types.CategoryLanguages, Canonical: "C#"},
		{Keyword: "golang", Category: types.CategoryLanguages, Canonical: "Go"},
		{Keyword: "go lang", Category: types.CategoryLanguages, Canonical: "Go"},
		{Keyword: "rust", Category: types.CategoryLanguages, Canonical: "Rust"},
		{Keyword: "kotlin", Category: types.CategoryLanguages, Canonical: "Kotlin"},
		{Keyword: "swift", Category: types.CategoryLanguages, Canonical: "Swift"},

		// Web
		{Keyword: "react", Category: types.CategoryWeb, Canonical: "React"},
		{Keyword: "reactjs", Category: types.CategoryWeb, Canonical: "React"},
		{Keyword: "react.js", Category: types.CategoryWeb, Canonical: "React"},
		{Keyword: "next.js", Category: types.CategoryWeb, Canonical: "Next.js"},
		{Keyword: "nextjs", Category: types.CategoryWeb, Canonical: "Next.js"},
		{Keyword: "node.js", Category: types.CategoryWeb, Canonical: "Node.js"},
		{Keyword: "nodejs", Category: types.CategoryWeb, Canonical: "Node.js"},
		{Keyword: "express", Category: types.CategoryWeb, Canonical: "Express"},
		{Keyword: "expressjs", Category: types.CategoryWeb, Canonical: "Express"},
		{Keyword: "rest", Category: types.CategoryWeb, Canonical: "REST"},
		{Keyword: "restful", Category: types.CategoryWeb, Canonical: "REST"},
		{Keyword: "graphql", Category: types.CategoryWeb, Canonical: "GraphQL"},
		{Keyword: "angular", Category: types.CategoryWeb, Canonical: "Angular"},
		{Keyword: "vue", Category: types.CategoryWeb, Canonical: "Vue"},
		{Keyword: "html", Category: types.CategoryWeb, Canonical: "HTML"},
		{Keyword: "css", Category: types.CategoryWeb, Canonical: "CSS"},
		{Keyword: "tailwind", Category: types.CategoryWeb, Canonical: "Tailwind CSS"},

		// Data
		{Keyword: "sql", Category: types.CategoryData, Canonical: "SQL"},
		{Keyword: "mongodb", Category: types.CategoryData, Canonical: "MongoDB"},
		{Keyword: "postgresql", Category: types.CategoryData, Canonical: "PostgreSQL"},
		{Keyword: "mysql", Category: types.CategoryData, Canonical: "MySQL"},
		{Keyword: "redis", Category: types.CategoryData, Canonical: "Redis"},
		{Keyword: "elasticsearch", Category: types.CategoryData, Canonical: "Elasticsearch"},
		{Keyword: "firebase", Category: types.CategoryData, Canonical: "Firebase"},
		{Keyword: "dynamodb", Category: types.CategoryData, Canonical: "DynamoDB"},
		{Keyword: "nosql", Category: types.CategoryData, Canonical: "NoSQL"},

		// Cloud/DevOps
		{Keyword: "aws", Category: types.CategoryCloud, Canonical: "AWS"},
		{Keyword: "azure", Category: types.CategoryCloud, Canonical: "Azure"},
		{Keyword: "gcp", Category: types.CategoryCloud, Canonical: "GCP"},
		{Keyword: "google cloud", Category: types.CategoryCloud, Canonical: "GCP"},
		{Keyword: "docker", Category: types.CategoryCloud, Canonical: "Docker"},
		{Keyword: "kubernetes", Category: types.CategoryCloud, Canonical: "Kubernetes"},
		{Keyword: "k8s", Category: types.CategoryCloud, Canonical: "Kubernetes"},
		{Keyword: "ci/cd", Category: types.CategoryCloud, Canonical: "CI/CD"},
		{Keyword: "cicd", Category: types.CategoryCloud, Canonical: "CI/CD"},
		{Keyword: "linux", Category: types.CategoryCloud, Canonical: "Linux"},
		{Keyword: "terraform", Category: types.CategoryCloud, Canonical: "Terraform"},
		{Keyword: "jenkins", Category: types.CategoryCloud, Canonical: "Jenkins"},
		{Keyword: "github actions", Category: types.CategoryCloud, Canonical: "GitHub Actions"},

		// Testing
		{Keyword: "selenium", Category: types.CategoryTesting, Canonical: "Selenium"},
		{Keyword: "cypress", Category: types.CategoryTesting, Canonical: "Cypress"},
		{Keyword: "playwright", Category: types.CategoryTesting, Canonical: "Playwright"},
		{Keyword: "junit", Category: types.CategoryTesting, Canonical: "JUnit"},
		{Keyword: "pytest", Category: types.CategoryTesting, Canonical: "PyTest"},
		{Keyword: "jest", Category: types.CategoryTesting, Canonical: "Jest"},
		{Keyword: "mocha", Category: types.CategoryTesting, Canonical: "Mocha"},
		{Keyword: "testing", Category: types.CategoryTesting, Canonical: "Testing"},
		{Keyword: "unit test", Category: types.CategoryTesting, Canonical: "Unit Testing"},
		{Keyword: "integration test", Category: types.CategoryTesting, Canonical: "Integration Testing"},
		{Keyword: "e2e", Category: types.CategoryTesting, Canonical: "E2E Testing"},
	}
}

// FallbackSkills is substituted as the Other bucket when extraction finds
// nothing at all. Downstream components see it as if it were extracted.
func FallbackSkills() []string {
	return []string{"Communication", "Problem solving", "Basic coding", "Projects"}
}

// LoadKeywordTable reads a keyword table from a JSON file, validating it
// against the embedded schema before decoding.
func LoadKeywordTable(path string) ([]KeywordEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword table %s: %w", path, err)
	}

	if err := schemas.ValidateKeywordTable(data); err != nil {
		return nil, fmt.Errorf("keyword table %s: %w", path, err)
	}

	var entries []KeywordEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse keyword table %s: %w", path, err)
	}

	for i, e := range entries {
		if !types.ValidCategory(e.Category) {
			return nil, fmt.Errorf("keyword table %s: entry %d has unknown category %q", path, i, e.Category)
		}
	}

	return entries, nil
}
