package router

import (
	"hospital-records-api/internal/config"
	"hospital-records-api/internal/handler"
	"hospital-records-api/internal/middleware"
	"hospital-records-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Handlers groups the resource handlers wired into the route table
type Handlers struct {
	Auth     *handler.AuthHandler
	Hospital *handler.HospitalHandler
}

// Route is one entry of the route table mounted under the API prefix
type Route struct {
	Method     string
	Path       string
	Middleware []gin.HandlerFunc
	Handler    gin.HandlerFunc
}

// Routes builds the route table. Authorization policy is decided here:
// every mutating hospital route requires authentication, and creation
// additionally requires the admin role when configured.
func Routes(cfg *config.Config, h Handlers) []Route {
	protect := middleware.AuthMiddleware()

	createMiddleware := []gin.HandlerFunc{protect}
	if cfg.Policy.AdminOnlyCreate {
		createMiddleware = append(createMiddleware, middleware.RequireAdmin())
	}

	return []Route{
		{Method: "POST", Path: "/auth/register", Handler: h.Auth.Register},
		{Method: "POST", Path: "/auth/login", Handler: h.Auth.Login},
		{Method: "GET", Path: "/auth/me", Middleware: []gin.HandlerFunc{protect}, Handler: h.Auth.Me},

		{Method: "POST", Path: "/hospitals/create", Middleware: createMiddleware, Handler: h.Hospital.CreateHospital},
		{Method: "GET", Path: "/hospitals", Handler: h.Hospital.GetHospitals},
		{Method: "PUT", Path: "/hospitals/update", Middleware: []gin.HandlerFunc{protect}, Handler: h.Hospital.UpdateHospital},
		{Method: "POST", Path: "/hospitals/details", Middleware: []gin.HandlerFunc{protect}, Handler: h.Hospital.AddHospitalDetails},
		{Method: "DELETE", Path: "/hospitals/delete", Middleware: []gin.HandlerFunc{protect}, Handler: h.Hospital.DeleteHospital},
	}
}

// New assembles the gin engine with CORS, the health check and the
// versioned route table
func New(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORS(cfg))

	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-records-api",
		})
	})

	api := r.Group("/api/v1")
	for _, route := range Routes(cfg, h) {
		chain := append(append([]gin.HandlerFunc{}, route.Middleware...), route.Handler)
		api.Handle(route.Method, route.Path, chain...)
	}

	return r
}
