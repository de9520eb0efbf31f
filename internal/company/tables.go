package company

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/placement-readiness/internal/schemas"
)

// IndustryEntry maps a known company name to its industry. Entries are
// ordered; the first bidirectional substring match wins.
type IndustryEntry struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

// Table holds the classifier's lookup data. It is static configuration,
// injected into the classifier rather than baked into the matching logic.
type Table struct {
	Enterprise []string        `json:"enterprise"`
	Midsize    []string        `json:"midsize"`
	Industries []IndustryEntry `json:"industries"`
}

// DefaultTable returns the built-in company database.
func DefaultTable() Table {
	return Table{
		Enterprise: []string{
			"amazon", "google", "microsoft", "apple", "meta", "facebook", "netflix",
			"infosys", "tcs", "wipro", "hcl", "cognizant", "accenture", "capgemini",
			"deloitte", "ibm", "oracle", "sap", "salesforce", "adobe", "intel",
			"cisco", "qualcomm", "samsung", "lg", "sony", "dell", "hp", "lenovo",
			"walmart", "jpmorgan", "goldman sachs", "morgan stanley", "barclays",
			"hsbc", "visa", "mastercard", "paypal", "uber", "lyft", "airbnb",
			"twitter", "linkedin", "snap", "spotify", "zoom", "slack",
			"vmware", "atlassian", "servicenow", "workday", "snowflake",
			"palantir", "databricks", "stripe", "square", "block",
			"tech mahindra", "mindtree", "ltimindtree", "mphasis", "persistent",
			"juspay", "phonepe", "paytm", "razorpay", "cred", "meesho",
			"flipkart", "swiggy", "zomato", "ola", "byju", "unacademy",
			"boeing", "lockheed", "general electric", "ge", "siemens",
			"reliance", "tata", "mahindra", "bajaj",
		},
		Midsize: []string{
			"freshworks", "zoho", "postman", "browserstack", "hasura",
			"cleartax", "chargebee", "druva", "icertis", "innovaccer",
			"sprinklr", "moengage", "leadsquared", "yellowai", "darwinbox",
			"notion", "figma", "vercel", "supabase", "retool",
			"twilio", "sendgrid", "contentful", "algolia",
		},
		Industries: []IndustryEntry{
			{Name: "amazon", Industry: "E-Commerce & Cloud"},
			{Name: "google", Industry: "Search & Cloud"},
			{Name: "microsoft", Industry: "Software & Cloud"},
			{Name: "apple", Industry: "Consumer Electronics"},
			{Name: "meta", Industry: "Social Media"},
			{Name: "facebook", Industry: "Social Media"},
			{Name: "netflix", Industry: "Streaming & Entertainment"},
			{Name: "infosys", Industry: "IT Consulting"},
			{Name: "tcs", Industry: "IT Consulting"},
			{Name: "wipro", Industry: "IT Consulting"},
			{Name: "hcl", Industry: "IT Services"},
			{Name: "cognizant", Industry: "IT Consulting"},
			{Name: "accenture", Industry: "Consulting & IT"},
			{Name: "capgemini", Industry: "IT Consulting"},
			{Name: "deloitte", Industry: "Consulting"},
			{Name: "ibm", Industry: "Enterprise Software"},
			{Name: "oracle", Industry: "Enterprise Software"},
			{Name: "sap", Industry: "Enterprise Software"},
			{Name: "salesforce", Industry: "CRM & Cloud"},
			{Name: "adobe", Industry: "Creative Software"},
			{Name: "intel", Industry: "Semiconductors"},
			{Name: "cisco", Industry: "Networking"},
			{Name: "qualcomm", Industry: "Semiconductors"},
			{Name: "samsung", Industry: "Electronics"},
			{Name: "walmart", Industry: "Retail & E-Commerce"},
			{Name: "jpmorgan", Industry: "Investment Banking"},
			{Name: "goldman sachs", Industry: "Investment Banking"},
			{Name: "morgan stanley", Industry: "Investment Banking"},
			{Name: "visa", Industry: "Fintech"},
			{Name: "mastercard", Industry: "Fintech"},
			{Name: "paypal", Industry: "Fintech"},
			{Name: "uber", Industry: "Ride-hailing & Logistics"},
			{Name: "airbnb", Industry: "Travel & Hospitality"},
			{Name: "flipkart", Industry: "E-Commerce"},
			{Name: "swiggy", Industry: "Food Delivery"},
			{Name: "zomato", Industry: "Food & Delivery"},
			{Name: "phonepe", Industry: "Fintech"},
			{Name: "paytm", Industry: "Fintech"},
			{Name: "razorpay", Industry: "Fintech"},
			{Name: "cred", Industry: "Fintech"},
			{Name: "freshworks", Industry: "SaaS"},
			{Name: "zoho", Industry: "SaaS"},
			{Name: "postman", Industry: "Developer Tools"},
			{Name: "browserstack", Industry: "Developer Tools"},
			{Name: "stripe", Industry: "Fintech"},
			{Name: "spotify", Industry: "Music Streaming"},
			{Name: "slack", Industry: "Productivity"},
			{Name: "zoom", Industry: "Video Communication"},
			{Name: "atlassian", Industry: "Developer Tools"},
			{Name: "boeing", Industry: "Aerospace & Defense"},
			{Name: "reliance", Industry: "Conglomerate"},
			{Name: "tata", Industry: "Conglomerate"},
		},
	}
}

// LoadTable reads a company table from a JSON file, validating it against
// the embedded schema before decoding.
func LoadTable(path string) (Table, error) {
	var table Table

	data, err := os.ReadFile(path)
	if err != nil {
		return table, fmt.Errorf("failed to read company table %s: %w", path, err)
	}

	if err := schemas.ValidateCompanyTable(data); err != nil {
		return table, fmt.Errorf("company table %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &table); err != nil {
		return table, fmt.Errorf("failed to parse company table %s: %w", path, err)
	}

	return table, nil
}
