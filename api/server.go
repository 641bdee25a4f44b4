package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openepi/mpox-analytics-api/logmodule"
	"github.com/openepi/mpox-analytics-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.AnalyticsCore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	background *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:         store.NewAnalyticsStore(ormDB, mongoStore),
		jwtPrivateKey: jwtKey,
		background:    background,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
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

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)

	datasetRoute := apiRoute.Group("/datasets")
	datasetRoute.Use(s.authMiddleware())
	{
		datasetRoute.POST("", s.uploadDataset)
		datasetRoute.GET("", s.listDatasets)
		datasetRoute.GET("/current", s.currentDataset)
	}

	readRoute := apiRoute.Group("")
	readRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		readRoute.GET("/summary", s.summary)
		readRoute.GET("/countries", s.countries)
		readRoute.GET("/countries/:country", s.countryDetail)
		readRoute.GET("/clades", s.clades)
		readRoute.GET("/clades/matrix", s.cladeMatrix)
		readRoute.GET("/timeseries", s.timeseries)
		readRoute.GET("/vaccination", s.vaccination)
		readRoute.GET("/workforce", s.workforce)
		readRoute.GET("/geography", s.geography)
		readRoute.GET("/priorities", s.priorities)
		readRoute.GET("/scoreboard", s.scoreboard)
		readRoute.GET("/recommendations", s.recommendations)
		readRoute.GET("/filters", s.filterOptions)
		readRoute.GET("/quality", s.quality)
	}

	chartRoute := r.Group("/charts")
	chartRoute.Use(logmodule.Ginrus("Chart"))
	chartRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.chart")))
	{
		chartRoute.GET("/timeseries", s.timeseriesChart)
		chartRoute.GET("/vaccination", s.vaccinationChart)
		chartRoute.GET("/map", s.mapChart)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "Mpox Analytics 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
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
