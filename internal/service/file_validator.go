package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"doc-intake-server/internal/domain"
)

// acceptedExtensions is the intake allow-list. txt documents exist in the
// schema but are not accepted through this pipeline yet.
var acceptedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
}

var acceptedMIMETypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// magicNumbers maps a claimed extension to the byte signature the buffer must
// open with. A mismatch means the file was renamed to spoof its type.
var magicNumbers = map[string][]byte{
	"pdf":  {0x25, 0x50, 0x44, 0x46}, // %PDF
	"docx": {0x50, 0x4B, 0x03, 0x04}, // ZIP local-file header
}

// FileValidator inspects a raw upload buffer plus its claimed filename and
// MIME type. Checks run in a fixed order and short-circuit on the first
// failure; every path returns a complete result.
type FileValidator struct {
	maxFileSize int64
}

// NewFileValidator creates a validator with the given size cap in bytes.
func NewFileValidator(maxFileSize int64) domain.FileValidator {
	return &FileValidator{maxFileSize: maxFileSize}
}

// Validate runs the intake checks: size, emptiness, extension, declared MIME
// type, binary signature. On success the result carries the buffer's SHA-256.
func (v *FileValidator) Validate(buffer []byte, filename, mimeType string) *domain.FileValidationResult {
	result := &domain.FileValidationResult{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}

	if int64(len(buffer)) > v.maxFileSize {
		return v.fail(result, fmt.Sprintf("File size %d exceeds maximum %d bytes", len(buffer), v.maxFileSize))
	}

	if len(buffer) == 0 {
		return v.fail(result, "File is empty")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" || !acceptedExtensions[ext] {
		return v.fail(result, fmt.Sprintf("Invalid file type: extension %q is not supported. Only PDF and DOCX files are accepted.", ext))
	}

	if !acceptedMIMETypes[mimeType] {
		return v.fail(result, fmt.Sprintf("Invalid file type: MIME type %q is not supported. Only PDF and DOCX files are accepted.", mimeType))
	}

	if !matchesMagicNumber(buffer, ext) {
		return v.fail(result, "File content does not match extension (possible file disguise attack)")
	}

	sum := sha256.Sum256(buffer)
	result.FileHash = hex.EncodeToString(sum[:])
	return result
}

func (v *FileValidator) fail(result *domain.FileValidationResult, reason string) *domain.FileValidationResult {
	result.IsValid = false
	result.Errors = append(result.Errors, reason)
	return result
}

// matchesMagicNumber reports whether the buffer's leading bytes carry the
// signature for the claimed extension.
func matchesMagicNumber(buffer []byte, ext string) bool {
	magic, ok := magicNumbers[ext]
	if !ok {
		return false
	}
	if len(buffer) < len(magic) {
		return false
	}
	return bytes.Equal(buffer[:len(magic)], magic)
}
