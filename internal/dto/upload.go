package dto

import "mime/multipart"

const UploadSuccessMessage = "Text and image received successfully"

// UploadRequest is the multipart form posted to POST /.
type UploadRequest struct {
	Image *multipart.FileHeader
	Text  string
}

type UploadResponse struct {
	Message string `json:"message" example:"Text and image received successfully"`
}
