package handler

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/campus-security-backend-go/internal/faceapi"
	"github.com/jengzang/campus-security-backend-go/internal/service"
	"github.com/jengzang/campus-security-backend-go/pkg/response"
)

// FaceHandler handles HTTP requests relayed to the external face
// recognition/database service
type FaceHandler struct {
	faceService *service.FaceService
}

// NewFaceHandler creates a new face handler
func NewFaceHandler(faceService *service.FaceService) *FaceHandler {
	return &FaceHandler{
		faceService: faceService,
	}
}

// Process handles POST /api/v1/face-recognition/process
func (h *FaceHandler) Process(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid multipart form: "+err.Error())
		return
	}

	files, err := readFormFiles(form.File["files"])
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(files) == 0 {
		response.BadRequest(c, "No files provided under field 'files'")
		return
	}

	// Never fails: the service falls back to demo results when the
	// external backend is unreachable
	summary := h.faceService.Process(c.Request.Context(), files)
	response.Success(c, summary)
}

// AddPerson handles POST /api/v1/face-database/add-person
func (h *FaceHandler) AddPerson(c *gin.Context) {
	personID := c.PostForm("person_id")
	if personID == "" {
		response.BadRequest(c, "person_id is required")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid multipart form: "+err.Error())
		return
	}

	images, err := readFormFiles(form.File["images"])
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(images) == 0 {
		response.BadRequest(c, "No images provided under field 'images'")
		return
	}

	result, err := h.faceService.AddPerson(c.Request.Context(), personID, images)
	if err != nil {
		response.BadGateway(c, err.Error())
		return
	}

	response.Success(c, result)
}

// DetectDuplicates handles POST /api/v1/face-database/detect-duplicates
func (h *FaceHandler) DetectDuplicates(c *gin.Context) {
	report, err := h.faceService.DetectDuplicates(c.Request.Context())
	if err != nil {
		response.BadGateway(c, err.Error())
		return
	}

	response.Success(c, report)
}

// readFormFiles loads uploaded parts into memory for relay
func readFormFiles(headers []*multipart.FileHeader) ([]faceapi.File, error) {
	files := make([]faceapi.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, faceapi.File{Name: fh.Filename, Data: data})
	}
	return files, nil
}
