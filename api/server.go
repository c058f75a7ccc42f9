package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/geoshield-inc/geoshield-api/logmodule"
	"github.com/geoshield-inc/geoshield-api/realtime"
	"github.com/geoshield-inc/geoshield-api/store"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/geoshield-inc/geoshield-api/store GeoShieldCore
//go:generate mockgen -destination=mocks/mock_broadcaster.go -package=mocks github.com/geoshield-inc/geoshield-api/realtime Broadcaster

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

const DefaultBasePath = "/api"

// Options holds the settings of the http server
type Options struct {
	BasePath      string
	ClientOrigins []string
	Language      string
	Version       string
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.GeoShieldCore

	// Realtime channel. broadcaster publishes mutations, hub serves the
	// websocket sessions.
	broadcaster realtime.Broadcaster
	hub         *realtime.Hub

	// mu serializes each mutation with its broadcast so that sessions see
	// events in the order the store applied them
	mu sync.Mutex

	scope tally.Scope

	options Options
}

// NewServer new instance of server
func NewServer(core store.GeoShieldCore, hub *realtime.Hub, scope tally.Scope, options Options) *Server {
	if scope == nil {
		scope = tally.NoopScope
	}

	s := &Server{
		store:   core,
		hub:     hub,
		scope:   scope.SubScope("api"),
		options: options,
	}
	if hub != nil {
		s.broadcaster = hub
	}

	return s
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.setupRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(s.corsConfig()))

	basePath := s.options.BasePath
	if basePath == "" {
		basePath = DefaultBasePath
	}

	apiRoute := r.Group(basePath)
	apiRoute.Use(logmodule.Ginrus("API"))
	{
		apiRoute.GET("/stats", s.overview)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.GET("", s.listRequests)
		requestRoute.POST("", s.askForHelp)
		requestRoute.PUT("/:requestID", s.updateHelp)
	}

	safeZoneRoute := apiRoute.Group("/safe-zones")
	{
		safeZoneRoute.GET("", s.listSafeZones)
		safeZoneRoute.PUT("/:zoneID", s.updateSafeZone)
	}

	apiRoute.GET("/users", s.listUsers)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/signup", s.signup)
		authRoute.POST("/login", s.login)
	}

	verifyRoute := apiRoute.Group("/verify")
	{
		verifyRoute.POST("/send-code", s.sendVerificationCode)
		verifyRoute.POST("/verify-code", s.verifyCode)
	}

	apiRoute.POST("/check-in", s.checkIn)

	messageRoute := apiRoute.Group("/messages")
	{
		messageRoute.POST("", s.sendMessage)
		messageRoute.GET("/:userID", s.listMessages)
		messageRoute.PUT("/:messageID/read", s.markMessageRead)
	}

	alertRoute := apiRoute.Group("/alerts")
	{
		alertRoute.POST("/send", s.sendAlert)
		alertRoute.POST("/forward", s.forwardAlert)
	}

	socketRoute := r.Group("/socket")
	socketRoute.Use(logmodule.Ginrus("Socket"))
	{
		socketRoute.GET("", s.socket)
	}

	r.GET("/healthz", s.healthz)

	return r
}

func (s *Server) corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(s.options.ClientOrigins) == 0 {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = s.options.ClientOrigins
	}

	return config
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// publish hands the result of a mutation to the realtime channel
func (s *Server) publish(event string, payload interface{}) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.Broadcast(event, payload)
}

func (s *Server) counter(name string) tally.Counter {
	if s.scope == nil {
		return tally.NoopScope.Counter(name)
	}
	return s.scope.Counter(name)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": s.options.Version,
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
