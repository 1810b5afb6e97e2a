package recipe2doc

// Output format names, used as directory names in the output layout.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatLaTeX    = "latex"
	FormatPDF      = "pdf"
	FormatJSON     = "json"
)

// DefaultTime is the sentinel used when a recipe declares no time: line.
const DefaultTime = "N/A"

// FallbackTitle is rendered when a recipe declares no title: line.
const FallbackTitle = "Recipe Title"

// commentsHeading labels the trailing comments section in every format.
const commentsHeading = "Comments"

// Stage is a named phase of a recipe with its ordered list of steps.
type Stage struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

// Recipe is the normalized record produced by parsing one recipe file.
// It is fully populated by a single parse pass and never mutated afterwards:
// ingredients, stages, and comments keep first-seen order with duplicates
// suppressed.
type Recipe struct {
	Title       string   `json:"title"`
	Time        string   `json:"time"`
	Ingredients []string `json:"ingredients"`
	Stages      []Stage  `json:"stages"`
	Comments    []string `json:"comments"`
}

// NewRecipe returns an empty record with default field values.
func NewRecipe() *Recipe {
	return &Recipe{
		Time:        DefaultTime,
		Ingredients: []string{},
		Stages:      []Stage{},
		Comments:    []string{},
	}
}

// StageSteps returns the steps recorded for the named stage and whether the
// stage exists.
func (r *Recipe) StageSteps(name string) ([]string, bool) {
	for _, s := range r.Stages {
		if s.Name == name {
			return s.Steps, true
		}
	}
	return nil, false
}

// Input contains conversion parameters for Service.Convert.
type Input struct {
	RecipeText string // tagged recipe text (required)
}

// ConvertResult holds the rendered document and the parsed record.
type ConvertResult struct {
	Output    []byte
	Extension string
	Recipe    *Recipe
}
