package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/models"
	"github.com/crestview/estates-api/internal/pagination"
	"github.com/crestview/estates-api/internal/repository"
	"github.com/crestview/estates-api/internal/services"
)

const leadPageSize = 20

// EnquiryHandler handles enquiry HTTP requests.
type EnquiryHandler struct {
	service services.EnquiryService
}

// NewEnquiryHandler creates a new EnquiryHandler instance.
func NewEnquiryHandler(service services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

// EnquiryRequest is the public enquiry submission payload.
type EnquiryRequest struct {
	Name       string  `json:"name" binding:"required,max=100"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      *string `json:"phone" binding:"omitempty,inmobile"`
	Message    string  `json:"message" binding:"required,min=10,max=1000"`
	Type       string  `json:"type" binding:"required,oneof=general property callback"`
	PropertyID *int64  `json:"propertyId" binding:"omitempty,gte=1"`
}

// Create handles POST /enquiries.
func (h *EnquiryHandler) Create(c *gin.Context) {
	var req EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	enquiry := &models.Enquiry{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Type:       models.EnquiryType(req.Type),
		PropertyID: req.PropertyID,
	}
	if err := h.service.Create(c.Request.Context(), enquiry); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, enquiry, "Enquiry submitted")
}

// List handles GET /admin/enquiries.
func (h *EnquiryHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"), leadPageSize)
	filter := repository.EnquiryFilter{
		Search: c.Query("search"),
		Type:   c.Query("type"),
	}

	enquiries, page, err := h.service.List(c.Request.Context(), filter, params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondList(c, enquiries, page)
}

// Delete handles DELETE /admin/enquiries/:id.
func (h *EnquiryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid enquiry id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, nil, "Enquiry deleted")
}

// CareerHandler handles career application HTTP requests.
type CareerHandler struct {
	service services.CareerService
}

// NewCareerHandler creates a new CareerHandler instance.
func NewCareerHandler(service services.CareerService) *CareerHandler {
	return &CareerHandler{service: service}
}

// CareerRequest is the public job application payload. ReferralOther
// is required when ReferralSource is OTHER.
type CareerRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Email          string  `json:"email" binding:"required,email"`
	WhatsappNumber string  `json:"whatsappNumber" binding:"required,inmobile"`
	ReferralSource string  `json:"referralSource" binding:"required,oneof=LINKEDIN INSTAGRAM FRIEND WEBSITE OTHER"`
	ReferralOther  *string `json:"referralOther" binding:"omitempty,max=200"`
	ResumeLink     string  `json:"resumeLink" binding:"required,resumelink"`
}

// Create handles POST /career.
func (h *CareerHandler) Create(c *gin.Context) {
	var req CareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	application := &models.CareerApplication{
		Name:           req.Name,
		Email:          req.Email,
		WhatsappNumber: req.WhatsappNumber,
		ReferralSource: models.ReferralSource(req.ReferralSource),
		ReferralOther:  req.ReferralOther,
		ResumeLink:     req.ResumeLink,
	}
	if err := h.service.Create(c.Request.Context(), application); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, application, "Application submitted")
}

// List handles GET /admin/career.
func (h *CareerHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"), leadPageSize)
	filter := repository.CareerFilter{
		Search:         c.Query("search"),
		ReferralSource: c.Query("referralSource"),
	}

	apps, page, err := h.service.List(c.Request.Context(), filter, params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondList(c, apps, page)
}

// Delete handles DELETE /admin/career/:id.
func (h *CareerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid application id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, nil, "Application deleted")
}

// TACHandler handles TAC registration HTTP requests.
type TACHandler struct {
	service services.TACService
}

// NewTACHandler creates a new TACHandler instance.
func NewTACHandler(service services.TACService) *TACHandler {
	return &TACHandler{service: service}
}

// TACRequest is the public TAC registration payload.
type TACRequest struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   string  `json:"phone" binding:"required,inmobile"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

// Create handles POST /tac-registration.
func (h *TACHandler) Create(c *gin.Context) {
	var req TACRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	reg := &models.TACRegistration{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.service.Create(c.Request.Context(), reg); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, reg, "Registration submitted")
}

// List handles GET /admin/tac-registrations.
func (h *TACHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"), leadPageSize)
	filter := repository.TACFilter{Search: c.Query("search")}

	regs, page, err := h.service.List(c.Request.Context(), filter, params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondList(c, regs, page)
}

// Delete handles DELETE /admin/tac-registrations/:id.
func (h *TACHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid registration id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, nil, "Registration deleted")
}
