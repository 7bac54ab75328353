package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "reparo_pro/docs" // This will be auto-generated
	"reparo_pro/internal/adapter/http/handlers"
	"reparo_pro/internal/adapter/persistence/repository"
	"reparo_pro/internal/database"
	"reparo_pro/internal/infrastructure/ai"
	databaseinfra "reparo_pro/internal/infrastructure/database"
	"reparo_pro/internal/usecase"
	"reparo_pro/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	var (
		quoteRepo interfaces.IQuoteRepository
		userRepo  interfaces.IUserRepository
	)
	if repository.IsStorageMock() {
		log.Printf("[storage] mock mode enabled, using in-memory repositories")
		quoteRepo = repository.NewQuoteMemoryRepository()
		userRepo = repository.NewUserMemoryRepository()
	} else {
		ddb := databaseinfra.ConnectDynamoDB()
		if os.Getenv("DYNAMODB_ENDPOINT") != "" {
			databaseinfra.EnsureTables(context.Background(), ddb)
		}
		quoteRepo = repository.NewQuoteDynamoRepository(ddb)
		userRepo = repository.NewUserDynamoRepository(ddb)
	}

	database.SeedDefaultAdmin(userRepo)

	var suggestionProvider interfaces.ISuggestionProvider
	gemini, err := ai.NewGeminiGateway(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Gemini gateway not configured: %v", err)
	} else {
		suggestionProvider = gemini
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	partUseCase := usecase.NewDamagedPartUseCase(quoteUseCase, suggestionProvider)
	userUseCase := usecase.NewUserUseCase(userRepo)

	authHandler := handlers.NewAuthHandler(userUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	partHandler := handlers.NewPartHandler(partUseCase)
	portalHandler := handlers.NewPortalHandler(quoteUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, authHandler, quoteHandler, partHandler, portalHandler, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	// The customer portal frontend is served from another origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
}
