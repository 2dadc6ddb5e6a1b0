package apperrors

import (
	"net/http"
)

// --- Uploads ---

// ErrMissingImageOrText - в форме нет файла image или поля text.
var ErrMissingImageOrText = New(
	CodeMissingField,
	"Missing image or text",
	http.StatusBadRequest,
)

// ErrInvalidFilename - имя файла пустое после очистки (только при upload.sanitize_filenames).
var ErrInvalidFilename = New(
	CodeValidationFailed,
	"Invalid filename",
	http.StatusBadRequest,
)
