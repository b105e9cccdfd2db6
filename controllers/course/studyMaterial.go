package courseController

import (
	"log"
	"strings"

	"padho/database"
	"padho/middleware"
	"padho/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetStudyMaterials(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.StudyMaterial{})

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(tags) LIKE ?", needle, needle)
	}

	var materials []models.StudyMaterial
	if err := db.Find(&materials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch study materials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study materials fetched successfully.", materials)
}

func UploadStudyMaterial(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	reqData, ok := c.Locals("validatedMaterial").(*struct {
		Title            string   `json:"title"`
		FileURL          string   `json:"file_url"`
		Category         string   `json:"category"`
		Tags             []string `json:"tags"`
		Chapter          string   `json:"chapter"`
		PreviewAvailable bool     `json:"preview_available"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	material := models.StudyMaterial{
		ID:               uuid.NewString(),
		Title:            reqData.Title,
		FileURL:          reqData.FileURL,
		Category:         reqData.Category,
		Tags:             toJSONList(reqData.Tags),
		Chapter:          reqData.Chapter,
		UploadedBy:       user.ID,
		PreviewAvailable: reqData.PreviewAvailable,
	}

	if err := database.Database.Db.Create(&material).Error; err != nil {
		log.Printf("Error creating study material: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload study material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Study material uploaded successfully.", material)
}

// DownloadStudyMaterial returns the record and bumps its download counter.
func DownloadStudyMaterial(c *fiber.Ctx) error {
	db := database.Database.Db

	var material models.StudyMaterial
	if err := db.Where("id = ?", c.Params("id")).First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	if err := db.Model(&material).UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error; err != nil {
		log.Printf("Error updating download count: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material fetched successfully.", material)
}
