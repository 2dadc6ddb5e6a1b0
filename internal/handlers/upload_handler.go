package handlers

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"accura_backend/internal/config"
	"accura_backend/internal/dto"
	"accura_backend/internal/imageprocessor"
	"accura_backend/internal/logger"
	"accura_backend/internal/storage"
	"accura_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// ============================================
// UPLOAD HANDLER
// ============================================

type UploadOptions struct {
	MaxMemory         int64 // multipart bytes kept in memory before spilling to temp files
	SanitizeFilenames bool
	ThumbnailSize     int   // 0 disables thumbnails
	MaxPixels         int64 // images with more pixels are never decoded
}

type UploadHandler struct {
	*BaseHandler
	storage   storage.Storage
	processor *imageprocessor.Processor
	opts      UploadOptions
}

func NewUploadHandler(base *BaseHandler, store storage.Storage, processor *imageprocessor.Processor, opts UploadOptions) *UploadHandler {
	if opts.MaxMemory <= 0 {
		opts.MaxMemory = 32 << 20
	}
	if opts.MaxPixels <= 0 {
		opts.MaxPixels = config.DefaultMaxPixels
	}
	return &UploadHandler{
		BaseHandler: base,
		storage:     store,
		processor:   processor,
		opts:        opts,
	}
}

// ============================================
// ROUTES
// ============================================

func (h *UploadHandler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/", h.ReceiveData)
}

// ============================================
// HANDLERS
// ============================================

// ReceiveData stores the posted image and logs the posted text.
//
// @Summary  Receive text and image
// @Accept   multipart/form-data
// @Produce  json
// @Param    image formData file   true "Image file"
// @Param    text  formData string true "Text"
// @Success  200 {object} dto.UploadResponse
// @Failure  400 {object} apperrors.ErrorResponse
// @Router   / [post]
func (h *UploadHandler) ReceiveData(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.bindUploadRequest(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	path, err := h.storagePath(req.Image.Filename)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	file, err := req.Image.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.StorageError(err))
		return
	}
	defer file.Close()

	if exists, err := h.storage.Exists(ctx, path); err != nil {
		logger.CtxWarn(ctx, "Failed to check for existing image", "path", path, "error", err)
	} else if exists {
		logger.CtxDebug(ctx, "Overwriting existing image", "path", h.storage.Location(path))
	}

	if err := h.storage.Save(ctx, path, file, contentType(req.Image, file)); err != nil {
		h.HandleServiceError(c, apperrors.StorageError(err))
		return
	}

	logger.CtxInfo(ctx, "Received text", "text", req.Text)
	logger.CtxInfo(ctx, "Image saved", "path", h.storage.Location(path))

	h.inspectImage(ctx, file, path)

	c.JSON(http.StatusOK, dto.UploadResponse{Message: dto.UploadSuccessMessage})
}

// bindUploadRequest returns ErrMissingImageOrText when the image part or the
// text field is absent. An empty text value counts as present.
func (h *UploadHandler) bindUploadRequest(c *gin.Context) (*dto.UploadRequest, error) {
	if err := c.Request.ParseMultipartForm(h.opts.MaxMemory); err != nil {
		// Temp file spill failed: the body was fine, the disk was not.
		// Non-multipart and malformed bodies fall through as missing fields.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, apperrors.StorageError(err)
		}
	}

	image, err := c.FormFile("image")
	if err != nil {
		return nil, apperrors.ErrMissingImageOrText
	}

	text, ok := c.GetPostForm("text")
	if !ok {
		return nil, apperrors.ErrMissingImageOrText
	}

	return &dto.UploadRequest{Image: image, Text: text}, nil
}

// storagePath returns the client filename verbatim unless sanitising is on.
func (h *UploadHandler) storagePath(filename string) (string, error) {
	if !h.opts.SanitizeFilenames {
		return filename, nil
	}

	name := filepath.Base(filepath.Clean("/" + filepath.ToSlash(filename)))
	if name == "/" || name == "." || name == ".." {
		return "", apperrors.ErrInvalidFilename
	}
	return name, nil
}

// contentType prefers the part header and sniffs the bytes otherwise.
// file is rewound before returning.
func contentType(header *multipart.FileHeader, file multipart.File) string {
	if ct := header.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}

	mtype, err := mimetype.DetectReader(file)
	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil || err != nil {
		return "application/octet-stream"
	}
	return mtype.String()
}

// inspectImage writes a thumbnail when enabled. The header is checked first so
// that a small file declaring huge dimensions is never fully decoded.
// Nothing here affects the response.
func (h *UploadHandler) inspectImage(ctx context.Context, file multipart.File, path string) {
	if h.opts.ThumbnailSize <= 0 || h.processor == nil {
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return
	}
	width, height, format, err := imageprocessor.Dimensions(file)
	if err != nil {
		logger.CtxDebug(ctx, "Uploaded file is not a decodable image", "path", path, "error", err)
		return
	}
	logger.CtxDebug(ctx, "Image info", "width", width, "height", height, "format", format)

	if int64(width)*int64(height) > h.opts.MaxPixels {
		logger.CtxWarn(ctx, "Image too large for thumbnail", "path", path,
			"width", width, "height", height, "max_pixels", h.opts.MaxPixels)
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return
	}
	thumb, thumbFormat, err := h.processor.Thumbnail(file, h.opts.ThumbnailSize)
	if err != nil {
		logger.CtxWarn(ctx, "Failed to build thumbnail", "path", path, "error", err)
		return
	}

	thumbPath := imageprocessor.ThumbnailPath(path, thumbFormat)
	if err := h.storage.Save(ctx, thumbPath, thumb, "image/"+thumbFormat); err != nil {
		logger.CtxWarn(ctx, "Failed to save thumbnail", "path", thumbPath, "error", err)
		return
	}
	logger.CtxInfo(ctx, "Thumbnail saved", "path", h.storage.Location(thumbPath))
}
