package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/config"
	"tourly/internal/services"
	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

const (
	uploadFormField = "files"
	// Room for part headers and extra form fields on top of the files.
	multipartOverhead = 64 << 10
)

type UploadController struct {
	uploadService services.UploadServiceInterface
	maxBodyBytes  int64
}

func NewUploadController(uploadService services.UploadServiceInterface, cfg config.UploadConfig) *UploadController {
	return &UploadController{
		uploadService: uploadService,
		maxBodyBytes:  services.MaxUploadFiles*cfg.MaxFileBytes + multipartOverhead,
	}
}

// UploadImages godoc
// @Summary Upload listing images
// @Description Uploads one to five images in a single batch. Either every image is stored or none is.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Images"
// @Success 200 {array} response_models.ImageDescriptor
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /upload [post]
func (u *UploadController) UploadImages(c *gin.Context, identity auth.Identity) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, u.maxBodyBytes)
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{
				Error:   "Upload exceeds the size limit",
				Code:    string(utils.KindValidation),
				Field:   uploadFormField,
				TraceID: c.GetString("trace_id"),
			})
			return
		}
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{
			Error:   "A multipart form with files is required",
			Code:    string(utils.KindValidation),
			Field:   uploadFormField,
			TraceID: c.GetString("trace_id"),
		})
		return
	}

	images, err := u.uploadService.Upload(c.Request.Context(), identity, form.File[uploadFormField])
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, images)
}
