package domain

// FileValidationResult is the per-request outcome of the intake validator.
// Every validation path yields a complete result, including the success path.
// It is never persisted.
type FileValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	FileHash string   `json:"file_hash,omitempty"`
}

// FirstError returns the first recorded error, or an empty string when the
// result is valid. Checks short-circuit, so there is at most one.
func (r *FileValidationResult) FirstError() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}
