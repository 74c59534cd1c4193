// Package domain holds translator types shared across layers
package domain

// TranslateInput is the single externally consumed request
type TranslateInput struct {
	Text string `json:"text" validate:"required,notblank"`
}

// Result pairs the classified source language label with the final
// English text shown to the caller
type Result struct {
	Language    string `json:"language"`
	Translation string `json:"translation"`
}
