package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/plazza-health/catalogue-go/cmd/internal/config"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/catalogue"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/ingest"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/onboarding"
	"github.com/plazza-health/catalogue-go/cmd/pkg/logging"
)

type Server struct {
	store             db.Store
	router            *gin.Engine
	logger            *logging.Logger
	ingestService     *ingest.Service
	onboardingService *onboarding.Service
	catalogueService  *catalogue.Service
	config            *config.Config
}

func NewServer(
	store db.Store,
	logger *logging.Logger,
	ingestService *ingest.Service,
	onboardingService *onboarding.Service,
	catalogueService *catalogue.Service,
	cfg *config.Config,
) *Server {
	server := &Server{
		store:             store,
		logger:            logger,
		ingestService:     ingestService,
		onboardingService: onboardingService,
		catalogueService:  catalogueService,
		config:            cfg,
	}
	router := gin.Default()

	// Настройка CORS
	corsConfig := cors.DefaultConfig()
	if cfg.IsDebug != nil && *cfg.IsDebug {
		// В режиме отладки - локальные origins дашборда
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	} else {
		if len(cfg.CORS.AllowedOrigins) > 0 {
			corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
		} else {
			// В production CORS origins должны быть явно настроены
			logger.Warn("CORS allowed_origins not configured in production - using restrictive default")
			corsConfig.AllowOrigins = []string{}
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS", "PATCH", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Disposition"}
	router.Use(cors.New(corsConfig))

	router.GET("/home", server.HomeHandler)
	router.GET("/api/stats", server.getStatsHandler)

	v1 := router.Group("/api/v1")
	{
		// Загрузки CSV — server-to-server (дашборд ходит через свой бекенд).
		// Только service-auth, без пользовательских сессий.
		// Rate limiting — защита на случай компрометации API ключа.
		uploads := v1.Group("/")
		uploads.Use(ServiceBearerAuthMiddleware("catalogue-uploader", cfg.Ingest.ServiceToken))
		uploads.Use(ServiceRateLimitMiddleware(10, 20)) // 10 req/s, burst 20
		{
			uploads.POST("/catalogue/upload-csv", server.uploadCatalogueCSVHandler)

			// Три стадии первичной загрузки
			uploads.POST("/onboarding/metadata-csv", server.uploadMetadataCSVHandler)
			uploads.POST("/onboarding/distributor-csv", server.uploadDistributorCSVHandler)
			uploads.POST("/onboarding/mapping-csv", server.uploadMappingCSVHandler)
		}

		v1.GET("/catalogue/products/:product_id", server.getProductHandler)
		v1.PATCH("/catalogue/products/:product_id", server.updateProductHandler)
		v1.DELETE("/catalogue/products/:product_id", server.deleteProductHandler)
	}

	server.router = router
	return server
}

// Handler отдает собранный роутер. Сервер поднимается снаружи через
// http.Server, чтобы у процесса был рабочий graceful shutdown.
func (s *Server) Handler() http.Handler {
	return s.router
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
