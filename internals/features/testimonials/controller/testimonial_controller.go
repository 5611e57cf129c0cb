package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"riseacademy_backend/internals/features/testimonials/dto"
	"riseacademy_backend/internals/features/testimonials/model"
	helper "riseacademy_backend/internals/helpers"
)

type TestimonialController struct {
	DB *gorm.DB
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{DB: db}
}

// Static dataset served when the store errors or has no approved rows yet.
var fallbackTestimonials = []dto.TestimonialResponse{
	{
		ID:        "1",
		Quote:     "Rise Academy transformed my daughter's approach to learning. The teachers genuinely care about each student's success and go above and beyond to help them achieve their goals.",
		Name:      "Sarah Mitchell",
		Role:      "Parent of Class of 2024",
		AvatarURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200&q=80",
		Rating:    5,
	},
	{
		ID:        "2",
		Quote:     "The IB program at Rise prepared me exceptionally well for university. I graduated with the skills, confidence, and global perspective needed to succeed at an Ivy League institution.",
		Name:      "James Chen",
		Role:      "Alumni, Class of 2022",
		AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&q=80",
		Rating:    5,
	},
	{
		ID:        "3",
		Quote:     "As an educator for 20 years, I can say that Rise's commitment to innovation while maintaining academic rigor is unparalleled. It's a privilege to be part of this community.",
		Name:      "Dr. Emily Rodriguez",
		Role:      "Science Department Head",
		AvatarURL: "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=200&q=80",
		Rating:    5,
	},
}

// GET /api/public/testimonials
// Approved rows newest first. ?featured=true narrows to featured.
// Serves the static dataset on error or when none are approved yet.
func (ctrl *TestimonialController) PublicList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	q := ctrl.DB.Where("testimonial_is_approved = ?", true)
	if c.QueryBool("featured", false) {
		q = q.Where("testimonial_is_featured = ?", true)
	}

	var rows []model.TestimonialModel
	err := q.Order("testimonial_created_at DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		log.Println("[WARNING] public testimonials query failed, serving fallback:", err)
		return jsonFallback(c, "testimonials", fallbackTestimonials)
	}
	if len(rows) == 0 {
		return jsonFallback(c, "testimonials", fallbackTestimonials)
	}
	return helper.JsonOK(c, "testimonials", dto.ToTestimonialResponses(rows))
}

func jsonFallback(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"message":  message,
		"data":     data,
		"fallback": true,
	})
}

// GET /api/a/testimonials
func (ctrl *TestimonialController) AdminList(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.TestimonialModel{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] testimonial count failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var rows []model.TestimonialModel
	if err := ctrl.DB.
		Order("testimonial_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] testimonial list failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonList(c, "testimonials", dto.ToTestimonialResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// POST /api/a/testimonials
func (ctrl *TestimonialController) Create(c *fiber.Ctx) error {
	var req dto.CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	row := req.ToModel()
	if err := ctrl.DB.Create(row).Error; err != nil {
		log.Println("[ERROR] testimonial create failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create testimonial")
	}
	return helper.JsonCreated(c, "testimonial created", dto.ToTestimonialResponse(row))
}

// PATCH /api/a/testimonials/:id
func (ctrl *TestimonialController) Update(c *fiber.Ctx) error {
	var req dto.UpdateTestimonialRequest
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

	if err := ctrl.DB.Model(row).Select("*").
		Omit("testimonial_id", "testimonial_created_at").
		Updates(row).Error; err != nil {
		log.Println("[ERROR] testimonial update failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update testimonial")
	}
	return helper.JsonUpdated(c, "testimonial updated", dto.ToTestimonialResponse(row))
}

// DELETE /api/a/testimonials/:id
func (ctrl *TestimonialController) Delete(c *fiber.Ctx) error {
	row, err := ctrl.find(c)
	if row == nil {
		return err
	}
	if err := ctrl.DB.Delete(row).Error; err != nil {
		log.Println("[ERROR] testimonial delete failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonDeleted(c, "testimonial deleted", fiber.Map{"id": row.TestimonialID.String()})
}

func (ctrl *TestimonialController) find(c *fiber.Ctx) (*model.TestimonialModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid testimonial ID")
	}
	var row model.TestimonialModel
	if err := ctrl.DB.Where("testimonial_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Testimonial not found")
		}
		log.Println("[ERROR] testimonial lookup failed:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return &row, nil
}
