package recipe2doc

import "errors"

// Sentinel errors for library operations.
var (
	ErrRecipeNotFound = errors.New("recipe file not found")
	ErrEmptyRecipe    = errors.New("recipe text cannot be empty")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrJSONExport     = errors.New("JSON export failed")
)
