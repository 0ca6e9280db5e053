package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sibaq/festival-api/docs"
	v1 "github.com/sibaq/festival-api/internal/api/handler/v1"
	"github.com/sibaq/festival-api/internal/api/middleware"
	"github.com/sibaq/festival-api/internal/config"
	"github.com/sibaq/festival-api/internal/repository"
	"github.com/sibaq/festival-api/internal/repository/dao"
	"github.com/sibaq/festival-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	candidateRepo := repository.NewCandidateRepository(dao.NewCandidateDAO(db))
	programRepo := repository.NewProgramRepository(dao.NewProgramDAO(db))
	darsRepo := repository.NewDarsRepository(dao.NewDarsDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))

	authHandler := v1.NewAuthHandler(conf.API, service.NewAuthService(userRepo))
	candidateHandler := v1.NewCandidateHandler(service.NewCandidateService(candidateRepo))
	programHandler := v1.NewProgramHandler(service.NewProgramService(programRepo, candidateRepo))
	darsHandler := v1.NewDarsHandler(service.NewDarsService(darsRepo, candidateRepo))
	adminHandler := v1.NewAdminHandler(
		service.NewStatisticsService(candidateRepo, programRepo, darsRepo),
		service.NewExportService(candidateRepo, programRepo),
		service.NewImportService(candidateRepo, darsRepo),
	)

	s.MountHandlers(authHandler, candidateHandler, programHandler, darsHandler, adminHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	candidateHandler *v1.CandidateHandler,
	programHandler *v1.ProgramHandler,
	darsHandler *v1.DarsHandler,
	adminHandler *v1.AdminHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.GET("/candidates", candidateHandler.HandleListPublic)
		public.GET("/dars", darsHandler.HandleAggregatePublic)
		public.GET("/programs", programHandler.HandleAggregatePublic)
	}

	auth := s.Router.Group(basePath)
	{
		loginLimiter := middleware.NewLoginLimiter()
		auth.POST("/auth/login", loginLimiter.Limit(), authHandler.HandleLogin)
		auth.POST("/auth/logout", authHandler.HandleLogout)
	}

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)
	admin := s.Router.Group(basePath+"/admin", authenticator.RequireAdmin())
	{
		admin.GET("/candidates", candidateHandler.HandleListAdmin)
		admin.GET("/candidates/:candidateID", candidateHandler.HandleGet)
		admin.POST("/candidates", candidateHandler.HandleCreate)
		admin.PUT("/candidates/:candidateID", candidateHandler.HandleUpdate)
		admin.DELETE("/candidates/:candidateID", candidateHandler.HandleDelete)

		admin.GET("/programs", programHandler.HandleListAdmin)
		admin.POST("/programs", programHandler.HandleCreate)
		admin.PUT("/programs/:programID", programHandler.HandleUpdate)
		admin.DELETE("/programs/:programID", programHandler.HandleDelete)

		admin.GET("/dars", darsHandler.HandleListAdmin)
		admin.POST("/dars", darsHandler.HandleCreate)
		admin.PUT("/dars/:darsID", darsHandler.HandleUpdate)
		admin.DELETE("/dars/:darsID", darsHandler.HandleDelete)

		admin.GET("/statistics", adminHandler.HandleStatistics)
		admin.GET("/export", adminHandler.HandleExport)
		admin.POST("/import-data", adminHandler.HandleImport)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Festival Management API"
	docs.SwaggerInfo.Description = "Candidate, program and dars management for the festival."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
