package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"crystalis-cms/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
//
// Las lecturas públicas de contenido van sin autenticación y responden con
// el sobre {data: ...}; las escrituras comparten el path de la colección
// pero exigen bearer token y responden {success, data, message}.
func NewRouter(
	logger *zap.Logger,
	tokens *service.AuthTokenService,
	authH *AuthHandler,
	contentH *ContentHandler,
	dashH *DashboardHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	requireAuth := BearerAuthMiddleware(tokens)

	// Lecturas públicas del sitio.
	r.GET("/blogs", contentH.ListBlogs)
	r.GET("/blogs/:id", contentH.GetBlog)
	r.GET("/news", contentH.ListNews)
	r.GET("/news/:id", contentH.GetNewsItem)
	r.GET("/events", contentH.ListEvents)
	r.GET("/events/:id", contentH.GetEvent)
	r.GET("/careers", contentH.ListCareers)
	r.GET("/careers/:id", contentH.GetCareer)
	r.GET("/partners", contentH.ListPartners)
	r.GET("/partners/:id", contentH.GetPartner)
	r.GET("/team", contentH.ListTeam)
	r.GET("/team/:id", contentH.GetTeamMember)
	r.GET("/testimonials", contentH.ListTestimonials)
	r.GET("/testimonials/:id", contentH.GetTestimonial)
	r.GET("/contact-us-details", contentH.ListInquiries)
	r.GET("/contact-us-details/:id", contentH.GetInquiry)
	r.POST("/contact-us-details", contentH.SubmitInquiry)

	// Sesión del panel.
	r.POST("/admin/auth/login", authH.Login)
	r.GET("/admin/auth/verify", requireAuth, authH.Verify)
	r.POST("/auth/logout", requireAuth, authH.Logout)

	// Escrituras de contenido, solo con sesión.
	writes := r.Group("/", requireAuth)
	writes.POST("/blogs", contentH.CreateBlog)
	writes.PUT("/blogs", contentH.UpdateBlog)
	writes.DELETE("/blogs", contentH.DeleteBlog)
	writes.POST("/news", contentH.CreateNews)
	writes.PUT("/news", contentH.UpdateNews)
	writes.DELETE("/news", contentH.DeleteNews)
	writes.POST("/events", contentH.CreateEvent)
	writes.PUT("/events", contentH.UpdateEvent)
	writes.DELETE("/events", contentH.DeleteEvent)
	writes.POST("/careers", contentH.CreateCareer)
	writes.PUT("/careers", contentH.UpdateCareer)
	writes.DELETE("/careers", contentH.DeleteCareer)
	writes.POST("/partners", contentH.CreatePartner)
	writes.PUT("/partners", contentH.UpdatePartner)
	writes.DELETE("/partners", contentH.DeletePartner)
	writes.POST("/team", contentH.CreateTeamMember)
	writes.PUT("/team", contentH.UpdateTeamMember)
	writes.DELETE("/team", contentH.DeleteTeamMember)
	writes.POST("/testimonials", contentH.CreateTestimonial)
	writes.PUT("/testimonials", contentH.UpdateTestimonial)
	writes.DELETE("/testimonials", contentH.DeleteTestimonial)
	writes.PUT("/contact-us-details", contentH.UpdateInquiry)
	writes.DELETE("/contact-us-details", contentH.DeleteInquiry)

	// Dashboard del panel.
	dashboard := r.Group("/admin/dashboard", requireAuth)
	dashboard.GET("/stats", dashH.Stats)
	dashboard.GET("/activities", dashH.Activities)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
