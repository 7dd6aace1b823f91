package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sakhisetu/skillbridge-backend/internal/config"
	"github.com/sakhisetu/skillbridge-backend/internal/domain/fiber/handler"
	"github.com/sakhisetu/skillbridge-backend/internal/matching"
	"github.com/sakhisetu/skillbridge-backend/internal/middleware"
	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"github.com/sakhisetu/skillbridge-backend/internal/repository"
	"github.com/sakhisetu/skillbridge-backend/internal/service"
	"github.com/sakhisetu/skillbridge-backend/internal/usecase"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	barterRepo := repository.NewBarterRepository(db)
	requestRepo := repository.NewBarterRequestRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	roadmapRepo := repository.NewRoadmapRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)

	engine := matching.NewEngine(matching.DefaultSynonymGroups(), matching.DefaultCareerCourses())

	inference := service.NewInferenceService()
	inference.Warmup(ctx)

	gemini, err := service.NewGeminiService(ctx)
	if err != nil {
		log.Fatal(err)
	}

	interviewUc := usecase.NewInterviewUsecase(inference)
	matchingUc := usecase.NewMatchingUsecase(jobRepo, barterRepo, engine)
	userUc := usecase.NewUserUsecase(userRepo, barterRepo, ratingRepo)
	barterUc := usecase.NewBarterUsecase(barterRepo, requestRepo)
	learningUc := usecase.NewLearningUsecase(courseRepo, roadmapRepo, interviewRepo, engine)

	handler.NewAIHandler(interviewUc, gemini).RegisterRoutes(app)
	handler.NewMatchHandler(matchingUc).RegisterRoutes(app)
	handler.NewUserHandler(userUc).RegisterRoutes(app)
	handler.NewBarterHandler(barterUc).RegisterRoutes(app)
	handler.NewLearningHandler(learningUc).RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Kolkata",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.Course{},
		&model.RoadmapEntry{},
		&model.BarterOffer{},
		&model.BarterRequest{},
		&model.Rating{},
		&model.InterviewResult{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
