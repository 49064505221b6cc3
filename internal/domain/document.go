package domain

import "time"

// FileType is the closed set of file type tags a stored document can carry.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeTXT  FileType = "txt"
)

// PlaceholderUserID scopes every persistence and listing call while the user
// system is not implemented. Identity is always threaded explicitly through
// operation inputs so a real session mechanism can replace this constant
// without touching the core contracts.
// TODO: remove once Supabase Auth is wired in.
const PlaceholderUserID = "mvp-demo-user"

// Document represents a stored artifact owned by a user. Content is immutable
// once stored; there is no edit endpoint.
type Document struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	FileType  FileType  `json:"file_type"`
	Content   string    `json:"content"`
	CharCount int       `json:"char_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentInsert is the persistence record built by the upload flow. It
// excludes the fields the backend generates (id, created_at, updated_at).
// CharCount must equal the length of Content at time of write.
type DocumentInsert struct {
	UserID    string   `json:"user_id"`
	Name      string   `json:"name"`
	FileType  FileType `json:"file_type"`
	Content   string   `json:"content"`
	CharCount int      `json:"char_count"`
}

// DocumentSummary is the listing projection: everything except the full content.
type DocumentSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	FileType  FileType  `json:"file_type"`
	CharCount int       `json:"char_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UploadedDocument is the payload returned after a successful upload. Preview
// holds the first 300 characters of the extracted text, ellipsis-terminated
// when truncated.
type UploadedDocument struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	FileType  FileType  `json:"fileType"`
	CharCount int       `json:"charCount"`
	Pages     int       `json:"pages"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
}

// FileUpload carries one raw uploaded file through the intake pipeline.
// MIMEType is the client-declared content type and is treated as untrusted.
type FileUpload struct {
	Filename string
	MIMEType string
	Size     int64
	Data     []byte
}

// PDFMetadata is advisory document metadata. A zero value means the document
// could not be loaded for metadata purposes; that is never a blocking error.
type PDFMetadata struct {
	Pages  int    `json:"pages"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}
