package domain

// Draft is a reference legislative document open for public comment.
// Drafts are static reference data loaded at startup and never mutated.
type Draft struct {
	ID            int    `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	Category      string `json:"category" yaml:"category"`
	Description   string `json:"description" yaml:"description"`
	DocumentURL   string `json:"documentUrl" yaml:"documentUrl"`
	PublishedDate string `json:"publishedDate" yaml:"publishedDate"`
}
