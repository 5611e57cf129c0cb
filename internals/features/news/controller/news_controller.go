package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"riseacademy_backend/internals/constants"
	"riseacademy_backend/internals/features/news/dto"
	"riseacademy_backend/internals/features/news/model"
	helper "riseacademy_backend/internals/helpers"
)

type NewsController struct {
	DB *gorm.DB
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db}
}

func jsonFallback(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"message":  message,
		"data":     data,
		"fallback": true,
	})
}

func clampLimit(c *fiber.Ctx, def, max int) int {
	limit := c.QueryInt("limit", def)
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return limit
}

// GET /api/public/news
// Published rows newest first; serves the static dataset on error or
// when nothing is published yet.
func (ctrl *NewsController) PublicList(c *fiber.Ctx) error {
	limit := clampLimit(c, 3, 20)

	var rows []model.NewsEventModel
	err := ctrl.DB.
		Where("news_event_is_published = ?", true).
		Order("news_event_published_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		log.Println("[WARNING] public news query failed, serving fallback:", err)
		return jsonFallback(c, "news", fallbackNews)
	}
	if len(rows) == 0 {
		return jsonFallback(c, "news", fallbackNews)
	}
	return helper.JsonOK(c, "news", dto.ToNewsEventResponses(rows))
}

// GET /api/public/news/:id
func (ctrl *NewsController) PublicDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "News item not found")
	}

	var row model.NewsEventModel
	if err := ctrl.DB.
		Where("news_event_id = ? AND news_event_is_published = ?", id, true).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "News item not found")
		}
		log.Println("[ERROR] public news detail failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "news item", dto.ToNewsEventResponse(&row))
}

// GET /api/public/events/upcoming
func (ctrl *NewsController) PublicUpcomingEvents(c *fiber.Ctx) error {
	limit := clampLimit(c, 4, 20)

	var rows []model.NewsEventModel
	err := ctrl.DB.
		Where("news_event_is_published = ? AND news_event_category = ?", true, constants.CategoryEvent).
		Order("news_event_event_date ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		log.Println("[WARNING] upcoming events query failed, serving fallback:", err)
		return jsonFallback(c, "upcoming events", fallbackEvents)
	}
	if len(rows) == 0 {
		return jsonFallback(c, "upcoming events", fallbackEvents)
	}
	return helper.JsonOK(c, "upcoming events", dto.ToNewsEventResponses(rows))
}

// GET /api/a/news
func (ctrl *NewsController) AdminList(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.NewsEventModel{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] news count failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var rows []model.NewsEventModel
	if err := ctrl.DB.
		Order("news_event_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] news list failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonList(c, "news", dto.ToNewsEventResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// POST /api/a/news
func (ctrl *NewsController) Create(c *fiber.Ctx) error {
	var req dto.CreateNewsEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	row := req.ToModel()
	if err := ctrl.DB.Create(row).Error; err != nil {
		log.Println("[ERROR] news create failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create news item")
	}
	return helper.JsonCreated(c, "news item created", dto.ToNewsEventResponse(row))
}

// PATCH /api/a/news/:id
func (ctrl *NewsController) Update(c *fiber.Ctx) error {
	var req dto.UpdateNewsEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	row, err := ctrl.find(c)
	if row == nil {
		return err
	}

	req.ApplyToModel(row)

	// Select("*") so cleared event fields and published_at reach the DB.
	if err := ctrl.DB.Model(row).Select("*").
		Omit("news_event_id", "news_event_created_at").
		Updates(row).Error; err != nil {
		log.Println("[ERROR] news update failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update news item")
	}
	return helper.JsonUpdated(c, "news item updated", dto.ToNewsEventResponse(row))
}

// DELETE /api/a/news/:id
func (ctrl *NewsController) Delete(c *fiber.Ctx) error {
	row, err := ctrl.find(c)
	if row == nil {
		return err
	}
	if err := ctrl.DB.Delete(row).Error; err != nil {
		log.Println("[ERROR] news delete failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonDeleted(c, "news item deleted", fiber.Map{"id": row.NewsEventID.String()})
}

func (ctrl *NewsController) find(c *fiber.Ctx) (*model.NewsEventModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid news ID")
	}
	var row model.NewsEventModel
	if err := ctrl.DB.Where("news_event_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "News item not found")
		}
		log.Println("[ERROR] news lookup failed:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return &row, nil
}
