package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmw "marketing_site/internal/middleware"
	httprouters "marketing_site/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m          *http.ServeMux
	log        *slog.Logger
	e          *echo.Echo
	routers    *httprouters.Routers
	host       string
	port       string
	token      string
	uploadsDir string
}

func New(log *slog.Logger, token, host, port, uploadsDir string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(token))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("10M"))
	e.Use(appmw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Info("statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:          mux,
		log:        log,
		e:          e,
		routers:    routers,
		host:       host,
		port:       port,
		token:      token,
		uploadsDir: uploadsDir,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// BuildRouters registers every route. Public reads need no auth; every
// mutating route sits behind the JWT middleware plus an admin role check.
// A few endpoints answer on two paths: the short canonical one and the
// original path older clients were built against (refresh-token,
// contact/info, contact/send, per-resource upload).
func (s *Server) BuildRouters() {
	s.e.Static("/uploads", s.uploadsDir)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.e.Group("/api")
	{
		api.GET("/sections", s.routers.GetSections)
		api.GET("/sections/type/:type", s.routers.GetSectionByType)
		api.GET("/articles", s.routers.ListArticles)
		api.GET("/articles/slug/:slug", s.routers.GetArticleBySlug)
		api.GET("/articles/:id", s.routers.GetArticle)
		api.GET("/contact", s.routers.GetContact)
		api.GET("/contact/info", s.routers.GetContact)
		api.POST("/contact/message", s.routers.SendContactMessage)
		api.POST("/contact/send", s.routers.SendContactMessage)

		auth := api.Group("/auth")
		{
			auth.POST("/login", s.routers.Login)
			auth.POST("/refresh", s.routers.Refresh)
			auth.POST("/refresh-token", s.routers.Refresh)
			auth.POST("/logout", s.routers.Logout)

			authed := auth.Group("")
			authed.Use(s.jwtMiddleware())
			authed.GET("/me", s.routers.Me)
			authed.POST("/register", s.routers.Register, httprouters.AdminOnly)
		}

		admin := api.Group("/admin")
		admin.Use(s.jwtMiddleware(), httprouters.AdminOnly)
		{
			admin.GET("/sections", s.routers.ListAllSections)
			admin.GET("/sections/:id", s.routers.GetSection)
			admin.POST("/sections", s.routers.CreateSection)
			admin.PUT("/sections/:id", s.routers.UpdateSection)
			admin.PUT("/sections/:id/content", s.routers.UpsertSectionContent)
			admin.DELETE("/sections/:id", s.routers.DeleteSection)

			admin.GET("/articles", s.routers.ListAllArticles)
			admin.POST("/articles", s.routers.CreateArticle)
			admin.PUT("/articles/:id", s.routers.UpdateArticle)
			admin.PUT("/articles/:id/content", s.routers.UpsertArticleContent)
			admin.DELETE("/articles/:id", s.routers.DeleteArticle)

			admin.PUT("/contact", s.routers.UpdateContact)
			admin.PUT("/contact/info", s.routers.UpdateContact)
			admin.POST("/upload", s.routers.Upload)
			admin.POST("/sections/upload", s.routers.Upload)
			admin.POST("/articles/upload", s.routers.Upload)
		}
	}
}

func (s *Server) jwtMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(s.token),
	})
}
