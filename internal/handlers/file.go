// internal/handlers/file.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sintacc/sintacc-backend/internal/services"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

var allowedFileTypes = map[string]bool{
	"products":   true,
	"recipes":    true,
	"promotions": true,
}

type FileHandler struct {
	fileService *services.FileService
}

func NewFileHandler(fileService *services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// POST /files/upload (multipart: file, type)
func (h *FileHandler) Upload(c *gin.Context) {
	fileType := c.DefaultPostForm("type", "products")
	if !allowedFileTypes[fileType] {
		utils.BadRequestResponse(c, "Tipo de archivo desconocido: "+fileType, nil)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "Falta el archivo en el campo 'file'", err.Error())
		return
	}
	defer file.Close()

	result, err := h.fileService.Upload(file, header, fileType)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}
