package report

import "errors"

// Sentinel errors the HTTP layer maps to status codes. A rejected
// off-domain query is not an error; it produces a normal refusal
// response.
var (
	ErrInvalidFileType   = errors.New("invalid file type, please upload a PDF file")
	ErrNoText            = errors.New("no text could be extracted from the PDF")
	ErrEmptyQuery        = errors.New("no query provided")
	ErrNoRelevantContext = errors.New("no relevant information found in the uploaded documents")
)
