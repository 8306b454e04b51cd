package property

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/pkg"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/query"
)

// PropertyHandler handles REST API requests for the property resource.
// Create and Update accept either a JSON body or a multipart form carrying
// the propertyData/addressData/valuesData JSON fields plus document files.
type PropertyHandler struct {
	svc            domain.PropertyService
	maxUploadBytes int64
}

// NewPropertyHandler creates a new PropertyHandler with the given service
// and per-file upload size cap.
func NewPropertyHandler(svc domain.PropertyService, maxUploadBytes int64) *PropertyHandler {
	return &PropertyHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// Create handles POST /api/v1/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	req, uploads, ok := h.bindRequest(c)
	if !ok {
		return
	}

	property, err := h.svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	docs, failed, err := h.svc.AttachDocuments(c.Request.Context(), property.ID, uploads)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	property.Documents = docs

	c.JSON(http.StatusCreated, pkg.Response{
		Success: true,
		Data:    property,
		Errors:  uploadFailures(failed),
	})
}

// Get handles GET /api/v1/properties/:id.
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	property, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, property)
}

// List handles GET /api/v1/properties.
func (h *PropertyHandler) List(c *gin.Context) {
	params := query.ParseListParams(c, propertySchema.DefaultLimit)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Filters handles GET /api/v1/properties/filters.
func (h *PropertyHandler) Filters(c *gin.Context) {
	pkg.Success(c, propertySchema.Describe())
}

// Update handles PUT /api/v1/properties/:id.
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	req, uploads, ok := h.bindRequest(c)
	if !ok {
		return
	}

	property, err := h.svc.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	_, failed, err := h.svc.AttachDocuments(c.Request.Context(), property.ID, uploads)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if len(uploads) > 0 {
		// Reload so the response carries the freshly attached documents.
		property, err = h.svc.Get(c.Request.Context(), id)
		if err != nil {
			pkg.Error(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, pkg.Response{
		Success: true,
		Data:    property,
		Errors:  uploadFailures(failed),
	})
}

// AttachDocuments handles POST /api/v1/properties/:id/documents.
func (h *PropertyHandler) AttachDocuments(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	uploads, ok := h.bindFiles(c)
	if !ok {
		return
	}
	if len(uploads) == 0 {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "no files provided", nil))
		return
	}

	docs, failed, err := h.svc.AttachDocuments(c.Request.Context(), id, uploads)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Success: true,
		Data:    docs,
		Errors:  uploadFailures(failed),
	})
}

// Delete handles DELETE /api/v1/properties/:id.
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Message(c, "property deleted")
}

// Restore handles PATCH /api/v1/properties/:id/restore.
func (h *PropertyHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	property, err := h.svc.Restore(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, property)
}

// bindRequest decodes the property payload from either a JSON body or a
// multipart form, returning any document files along with it. On failure a
// 400 has already been written.
func (h *PropertyHandler) bindRequest(c *gin.Context) (*PropertyRequest, []domain.DocumentUpload, bool) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var req PropertyRequest
		if !pkg.BindAndValidate(c, &req) {
			return nil, nil, false
		}
		return &req, nil, true
	}

	var req PropertyRequest
	if err := json.Unmarshal([]byte(c.PostForm("propertyData")), &req); err != nil {
		pkg.ValidationFailed(c, []string{"propertyData: invalid JSON"})
		return nil, nil, false
	}
	if raw := c.PostForm("addressData"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Addresses); err != nil {
			pkg.ValidationFailed(c, []string{"addressData: invalid JSON"})
			return nil, nil, false
		}
	}
	if raw := c.PostForm("valuesData"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Values); err != nil {
			pkg.ValidationFailed(c, []string{"valuesData: invalid JSON"})
			return nil, nil, false
		}
	}

	if err := binding.Validator.ValidateStruct(&req); err != nil {
		pkg.ValidationFailed(c, pkg.ValidationMessages(err, &req))
		return nil, nil, false
	}

	uploads, ok := h.bindFiles(c)
	if !ok {
		return nil, nil, false
	}
	return &req, uploads, true
}

// bindFiles reads the "files" part of a multipart form into memory, rejecting
// files over the configured size cap.
func (h *PropertyHandler) bindFiles(c *gin.Context) ([]domain.DocumentUpload, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		pkg.ValidationFailed(c, []string{"files: invalid multipart form"})
		return nil, false
	}

	var uploads []domain.DocumentUpload
	for _, fh := range form.File["files"] {
		if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
			pkg.ValidationFailed(c, []string{fmt.Sprintf("files: %s exceeds the size limit", fh.Filename)})
			return nil, false
		}
		data, err := readFile(fh)
		if err != nil {
			pkg.ValidationFailed(c, []string{fmt.Sprintf("files: could not read %s", fh.Filename)})
			return nil, false
		}
		uploads = append(uploads, domain.DocumentUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, true
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// uploadFailures converts failed upload names into response error entries.
func uploadFailures(failed []string) []string {
	if len(failed) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(failed))
	for _, name := range failed {
		msgs = append(msgs, "upload failed: "+name)
	}
	return msgs
}
