package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"festivalapi/docs"
	v1 "festivalapi/internal/api/handler/v1"
	"festivalapi/internal/api/middleware"
	"festivalapi/internal/config"
	"festivalapi/internal/repository"
	"festivalapi/internal/repository/dao"
	"festivalapi/internal/service"
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

	authHandler := s.initAuthHandler(db)
	festivalHandler := s.initFestivalHandler(db)
	s.MountHandlers(authHandler, festivalHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(s.Config.API, repo)
	uSvc := service.NewUserService(repo)
	handler := v1.NewAuthHandler(svc, uSvc)

	return handler
}

func (s *Server) initFestivalHandler(db *gorm.DB) *v1.FestivalHandler {
	festivalDAO := dao.NewFestivalDAO(db)
	repo := repository.NewFestivalRepository(festivalDAO)
	svc := service.NewFestivalService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewFestivalHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, festivalHandler *v1.FestivalHandler) {
	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, s.Config.API.JWTAlgorithm)

	auth := s.Router.Group("/auth")
	{
		auth.POST("/create_user", authHandler.HandleCreateUser)
		auth.POST("/token", authHandler.HandleToken)
		auth.GET("/is_authorized", authenticator.VerifyJWT(), authHandler.HandleIsAuthorized)
	}

	// Reads are public; writes require a valid, non-disabled user.
	festivals := s.Router.Group("/festivals")
	{
		festivals.GET("/", festivalHandler.HandleListFestivals)
		festivals.GET("/:festivalID", festivalHandler.HandleGetFestival)

		protected := festivals.Group("", authenticator.VerifyJWT())
		{
			protected.POST("/", festivalHandler.HandleCreateFestival)
			protected.PUT("/:festivalID", festivalHandler.HandleUpdateFestival)
			protected.DELETE("/:festivalID", festivalHandler.HandleDeleteFestival)
		}
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.Title = "Festival API"
	docs.SwaggerInfo.Description = "CRUD API over the cleaned French festivals dataset."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
