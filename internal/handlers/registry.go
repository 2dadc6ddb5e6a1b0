package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	UploadHandler *UploadHandler
}
