package types

// SizeClass classifies a company by headcount band.
type SizeClass string

// Size classes drive round mapping and hiring-focus templates.
const (
	SizeEnterprise SizeClass = "Enterprise"
	SizeMidsize    SizeClass = "Mid-size"
	SizeStartup    SizeClass = "Startup"
)

// Label returns the human-readable headcount band for a size class.
func (s SizeClass) Label() string {
	switch s {
	case SizeEnterprise:
		return "Enterprise (2000+)"
	case SizeMidsize:
		return "Mid-size (200–2000)"
	default:
		return "Startup (<200)"
	}
}

// CompanyProfile is the classifier's view of a company name.
type CompanyProfile struct {
	Name      string    `json:"name"`
	Size      SizeClass `json:"size"`
	SizeLabel string    `json:"size_label"`
	Industry  string    `json:"industry"`
}

// HiringFocus describes what a company of a given size class tends to screen
// for. It is a static, input-independent template used for display.
type HiringFocus struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}
