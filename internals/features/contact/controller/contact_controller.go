package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"riseacademy_backend/internals/features/contact/dto"
	"riseacademy_backend/internals/features/contact/model"
	"riseacademy_backend/internals/features/contact/service"
	helper "riseacademy_backend/internals/helpers"
)

type ContactController struct {
	DB       *gorm.DB
	Notifier service.Notifier
}

func NewContactController(db *gorm.DB, notifier service.Notifier) *ContactController {
	return &ContactController{DB: db, Notifier: notifier}
}

// POST /api/public/contact
// Inserts the inquiry, then notifies the admissions inbox in the background.
// Notification failure is logged and never surfaced to the caller.
func (ctrl *ContactController) Create(c *fiber.Ctx) error {
	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	sub := req.ToModel()
	if err := ctrl.DB.Create(sub).Error; err != nil {
		log.Println("[ERROR] contact insert failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not save your inquiry")
	}

	go func(s model.ContactSubmissionModel) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := ctrl.Notifier.NotifyNewInquiry(ctx, &s); err != nil {
			log.Println("[WARNING] inquiry notification failed:", err)
		}
	}(*sub)

	return helper.JsonCreated(c, "inquiry received", dto.ToContactResponse(sub))
}

// GET /api/a/contacts
func (ctrl *ContactController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ContactSubmissionModel{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] contact count failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var rows []model.ContactSubmissionModel
	if err := ctrl.DB.
		Order("contact_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] contact list failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonList(c, "contacts", dto.ToContactResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/contacts/:id
// Pure read. The client issues the explicit mark-read call separately.
func (ctrl *ContactController) GetByID(c *fiber.Ctx) error {
	sub, err := ctrl.find(c)
	if sub == nil {
		return err
	}
	return helper.JsonOK(c, "contact", dto.ToContactResponse(sub))
}

// POST /api/a/contacts/:id/read
// Idempotent mark-as-read; repeated calls keep is_read true.
func (ctrl *ContactController) MarkRead(c *fiber.Ctx) error {
	sub, err := ctrl.find(c)
	if sub == nil {
		return err
	}
	if !sub.ContactIsRead {
		if err := ctrl.DB.Model(sub).Update("contact_is_read", true).Error; err != nil {
			log.Println("[ERROR] contact mark-read failed:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		sub.ContactIsRead = true
	}
	return helper.JsonUpdated(c, "contact marked as read", dto.ToContactResponse(sub))
}

// PATCH /api/a/contacts/:id/read  body {"is_read": bool}
func (ctrl *ContactController) SetRead(c *fiber.Ctx) error {
	var req dto.UpdateReadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	sub, err := ctrl.find(c)
	if sub == nil {
		return err
	}
	if err := ctrl.DB.Model(sub).Update("contact_is_read", *req.IsRead).Error; err != nil {
		log.Println("[ERROR] contact set-read failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	sub.ContactIsRead = *req.IsRead
	return helper.JsonUpdated(c, "contact updated", dto.ToContactResponse(sub))
}

// DELETE /api/a/contacts/:id
func (ctrl *ContactController) Delete(c *fiber.Ctx) error {
	sub, err := ctrl.find(c)
	if sub == nil {
		return err
	}
	if err := ctrl.DB.Delete(sub).Error; err != nil {
		log.Println("[ERROR] contact delete failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonDeleted(c, "contact deleted", fiber.Map{"id": sub.ContactID.String()})
}

func (ctrl *ContactController) find(c *fiber.Ctx) (*model.ContactSubmissionModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid contact ID")
	}
	var sub model.ContactSubmissionModel
	if err := ctrl.DB.Where("contact_id = ?", id).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Contact not found")
		}
		log.Println("[ERROR] contact lookup failed:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return &sub, nil
}
