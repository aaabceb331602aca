package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"crystalis-cms/internal/domain"
	"crystalis-cms/internal/service"
)

// ContentHandler expone las colecciones de contenido del sitio: lecturas
// públicas con sobre {data: ...} y escrituras de admin con sobre
// {success, data, message}.
type ContentHandler struct {
	logger  *zap.Logger
	content *service.ContentService
}

func NewContentHandler(logger *zap.Logger, content *service.ContentService) *ContentHandler {
	return &ContentHandler{
		logger:  logger,
		content: content,
	}
}

type deleteRequest struct {
	ID string `json:"id" binding:"required"`
}

func (h *ContentHandler) actor(c *gin.Context) string {
	claims, ok := GetAuthClaims(c)
	if !ok {
		return ""
	}
	if claims.Name != "" {
		return claims.Name
	}
	return claims.Email
}

func (h *ContentHandler) writeFailure(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, pgx.ErrNoRows):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "not found"})
	default:
		h.logger.Error(what+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not " + what})
	}
}

func (h *ContentHandler) writeItem(c *gin.Context, item any, err error, what string) {
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "not found"})
		default:
			h.logger.Error(what+" failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not " + what})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (h *ContentHandler) writeList(c *gin.Context, items any, err error, what string) {
	if err != nil {
		h.logger.Error(what+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not " + what})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// --- Blogs ---

func (h *ContentHandler) ListBlogs(c *gin.Context) {
	items, err := h.content.ListBlogs(c.Request.Context())
	h.writeList(c, items, err, "list blogs")
}

func (h *ContentHandler) GetBlog(c *gin.Context) {
	item, err := h.content.GetBlog(c.Request.Context(), c.Param("id"))
	h.writeItem(c, item, err, "get blog")
}

func (h *ContentHandler) CreateBlog(c *gin.Context) {
	var blog domain.Blog
	if err := c.ShouldBindJSON(&blog); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	created, err := h.content.CreateBlog(c.Request.Context(), h.actor(c), blog)
	if err != nil {
		h.writeFailure(c, err, "create blog")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *ContentHandler) UpdateBlog(c *gin.Context) {
	var blog domain.Blog
	if err := c.ShouldBindJSON(&blog); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	updated, err := h.content.UpdateBlog(c.Request.Context(), h.actor(c), blog)
	if err != nil {
		h.writeFailure(c, err, "update blog")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *ContentHandler) DeleteBlog(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	if err := h.content.DeleteBlog(c.Request.Context(), h.actor(c), req.ID); err != nil {
		h.writeFailure(c, err, "delete blog")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- News ---

func (h *ContentHandler) ListNews(c *gin.Context) {
	items, err := h.content.ListNews(c.Request.Context())
	h.writeList(c, items, err, "list news")
}

func (h *ContentHandler) GetNewsItem(c *gin.Context) {
	item, err := h.content.GetNewsItem(c.Request.Context(), c.Param("id"))
	h.writeItem(c, item, err, "get news item")
}

func (h *ContentHandler) CreateNews(c *gin.Context) {
	var item domain.NewsItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	created, err := h.content.CreateNews(c.Request.Context(), h.actor(c), item)
	if err != nil {
		h.writeFailure(c, err, "create news")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *ContentHandler) UpdateNews(c *gin.Context) {
	var item domain.NewsItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	updated, err := h.content.UpdateNews(c.Request.Context(), h.actor(c), item)
	if err != nil {
		h.writeFailure(c, err, "update news")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *ContentHandler) DeleteNews(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	if err := h.content.DeleteNews(c.Request.Context(), h.actor(c), req.ID); err != nil {
		h.writeFailure(c, err, "delete news")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Events ---

func (h *ContentHandler) ListEvents(c *gin.Context) {
	items, err := h.content.ListEvents(c.Request.Context())
	h.writeList(c, items, err, "list events")
}

func (h *ContentHandler) GetEvent(c *gin.Context) {
	item, err := h.content.GetEvent(c.Request.Context(), c.Param("id"))
	h.writeItem(c, item, err, "get event")
}

func (h *ContentHandler) CreateEvent(c *gin.Context) {
	var event domain.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	created, err := h.content.CreateEvent(c.Request.Context(), h.actor(c), event)
	if err != nil {
		h.writeFailure(c, err, "create event")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *ContentHandler) UpdateEvent(c *gin.Context) {
	var event domain.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	updated, err := h.content.UpdateEvent(c.Request.Context(), h.actor(c), event)
	if err != nil {
		h.writeFailure(c, err, "update event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *ContentHandler) DeleteEvent(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	if err := h.content.DeleteEvent(c.Request.Context(), h.actor(c), req.ID); err != nil {
		h.writeFailure(c, err, "delete event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Careers ---

func (h *ContentHandler) ListCareers(c *gin.Context) {
	items, err := h.content.ListCareers(c.Request.Context())
	h.writeList(c, items, err, "list careers")
}

func (h *ContentHandler) GetCareer(c *gin.Context) {
	item, err := h.content.GetCareer(c.Request.Context(), c.Param("id"))
	h.writeItem(c, item, err, "get career")
}

func (h *ContentHandler) CreateCareer(c *gin.Context) {
	var career domain.Career
	if err := c.ShouldBindJSON(&career); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	created, err := h.content.CreateCareer(c.Request.Context(), h.actor(c), career)
	if err != nil {
		h.writeFailure(c, err, "create career")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *ContentHandler) UpdateCareer(c *gin.Context) {
	var career domain.Career
	if err := c.ShouldBindJSON(&career); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	updated, err := h.content.UpdateCareer(c.Request.Context(), h.actor(c), career)
	if err != nil {
		h.writeFailure(c, err, "update career")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *ContentHandler) DeleteCareer(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	if err := h.content.DeleteCareer(c.Request.Context(), h.actor(c), req.ID); err != nil {
		h.writeFailure(c, err, "delete career")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Partners ---

func (h *ContentHandler) ListPartners(c *gin.Context) {
	items, err := h.content.ListPartners(c.Request.Context())
	h.writeList(c, items, err, "list partners")
}

func (h *ContentHandler) GetPartner(c *gin.Context) {
	item, err := h.content.GetPartner(c.Request.Context(), c.Param("id"))
	h.writeItem(c, item, err, "get partner")
}

func (h *ContentHandler) CreatePartner(c *gin.Context) {
	var partner domain.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	created, err := h.content.CreatePartner(c.Request.Context(), h.actor(c), partner)
	if err != nil {
		h.writeFailure(c, err, "create partner")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *ContentHandler) UpdatePartner(c *gin.Context) {
	var partner domain.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	updated, err := h.content.UpdatePartner(c.Request.Context(), h.actor(c), partner)
	if err != nil {
		h.writeFailure(c, err, "update partner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *ContentHandler) DeletePartner(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	if err := h.content.DeletePartner(c.Request.Context(), h.actor(c), req.ID); err != nil {
		h.writeFailure(c, err, "delete partner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Team ---

func (h *ContentHandler) ListTeam(c *gin.Context) {
	items, err := h.content.ListTeam(c.Request.Context())
	h.writeList(c, items, err, "list team")
}

func (h *ContentHandler) GetTeamMember(c *gin.Context) {
	item, err := h.content.GetTeamMember(c.Request.Context(), c.Param("id"))
	h.writeItem(c, item, err, "get team member")
}

func (h *ContentHandler) CreateTeamMember(c *gin.Context) {
	var member domain.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	created, err := h.content.CreateTeamMember(c.Request.Context(), h.actor(c), member)
	if err != nil {
		h.writeFailure(c, err, "create team member")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *ContentHandler) UpdateTeamMember(c *gin.Context) {
	var member domain.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	updated, err := h.content.UpdateTeamMember(c.Request.Context(), h.actor(c), member)
	if err != nil {
		h.writeFailure(c, err, "update team member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *ContentHandler) DeleteTeamMember(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	if err := h.content.DeleteTeamMember(c.Request.Context(), h.actor(c), req.ID); err != nil {
		h.writeFailure(c, err, "delete team member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Testimonials ---

func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	items, err := h.content.ListTestimonials(c.Request.Context())
	h.writeList(c, items, err, "list testimonials")
}

func (h *ContentHandler) GetTestimonial(c *gin.Context) {
	item, err := h.content.GetTestimonial(c.Request.Context(), c.Param("id"))
	h.writeItem(c, item, err, "get testimonial")
}

func (h *ContentHandler) CreateTestimonial(c *gin.Context) {
	var testimonial domain.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	created, err := h.content.CreateTestimonial(c.Request.Context(), h.actor(c), testimonial)
	if err != nil {
		h.writeFailure(c, err, "create testimonial")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *ContentHandler) UpdateTestimonial(c *gin.Context) {
	var testimonial domain.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	updated, err := h.content.UpdateTestimonial(c.Request.Context(), h.actor(c), testimonial)
	if err != nil {
		h.writeFailure(c, err, "update testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *ContentHandler) DeleteTestimonial(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	if err := h.content.DeleteTestimonial(c.Request.Context(), h.actor(c), req.ID); err != nil {
		h.writeFailure(c, err, "delete testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Contact inquiries ---

func (h *ContentHandler) ListInquiries(c *gin.Context) {
	items, err := h.content.ListInquiries(c.Request.Context())
	h.writeList(c, items, err, "list inquiries")
}

func (h *ContentHandler) GetInquiry(c *gin.Context) {
	item, err := h.content.GetInquiry(c.Request.Context(), c.Param("id"))
	h.writeItem(c, item, err, "get inquiry")
}

// SubmitInquiry maneja POST /contact-us-details desde el formulario público.
func (h *ContentHandler) SubmitInquiry(c *gin.Context) {
	var inquiry domain.ContactInquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	created, err := h.content.SubmitInquiry(c.Request.Context(), inquiry)
	if err != nil {
		h.writeFailure(c, err, "submit inquiry")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *ContentHandler) UpdateInquiry(c *gin.Context) {
	var inquiry domain.ContactInquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	updated, err := h.content.UpdateInquiry(c.Request.Context(), h.actor(c), inquiry)
	if err != nil {
		h.writeFailure(c, err, "update inquiry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *ContentHandler) DeleteInquiry(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	if err := h.content.DeleteInquiry(c.Request.Context(), h.actor(c), req.ID); err != nil {
		h.writeFailure(c, err, "delete inquiry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
