package server

import (
	"context"
	"net/http"

	"libraryhub/internal/auth"
	"libraryhub/internal/booking"
	"libraryhub/internal/config"
	"libraryhub/internal/email"
	"libraryhub/internal/game"
	"libraryhub/internal/room"
	"libraryhub/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userRepo := user.NewRepository(db)
	roomRepo := room.NewRepository(db)
	gameRepo := game.NewRepository(db)
	bookingRepo := booking.NewRepository(db)

	roomService := room.NewService(roomRepo)
	gameService := game.NewService(gameRepo)
	bookingService := booking.NewService(bookingRepo, roomRepo, gameRepo, userRepo, emailService)

	userHandler := user.NewHandler(userRepo, cfg.JWTSecret)
	roomHandler := room.NewHandler(roomService)
	gameHandler := game.NewHandler(gameService)
	bookingHandler := booking.NewHandler(bookingService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/rooms", roomHandler.ListRooms)
		protected.GET("/rooms/:roomID", roomHandler.GetRoom)
		protected.GET("/games", gameHandler.ListGames)
		protected.GET("/resources/:resourceType/:resourceID/schedule", bookingHandler.ResourceSchedule)
		protected.POST("/bookings", bookingHandler.CreateRequest)
		protected.GET("/bookings", bookingHandler.ListMyRequests)
		protected.POST("/bookings/:requestID/cancel", bookingHandler.Cancel)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/rooms", roomHandler.CreateRoom)
		admin.PUT("/rooms/:roomID", roomHandler.UpdateRoom)
		admin.POST("/games", gameHandler.CreateGame)
		admin.PATCH("/games/:gameID/availability", gameHandler.SetAvailability)
		admin.GET("/bookings/pending", bookingHandler.ListPending)
		admin.POST("/bookings/:requestID/approve", bookingHandler.Approve)
		admin.POST("/bookings/:requestID/reject", bookingHandler.Reject)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.srv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Router exposes the engine for handler-level tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
