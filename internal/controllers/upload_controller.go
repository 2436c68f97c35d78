package controllers

import (
	"net/http"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/dtos"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/services"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

type UploadController struct {
	svc *services.UploadService
}

func NewUploadController(svc *services.UploadService) *UploadController {
	return &UploadController{svc: svc}
}

// POST /api/upload — multipart form, field "file".
func (c *UploadController) UploadFile(w http.ResponseWriter, r *http.Request) {
	// Allow a little slack over the documented limit so the service
	// can reject oversize files with a clean 400 instead of a broken
	// multipart read.
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadSize+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "No file provided in the 'file' form field")
		return
	}
	defer file.Close()

	url, err := c.svc.Upload(r.Context(), file, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.UploadResponse{Success: true, URL: url})
}
