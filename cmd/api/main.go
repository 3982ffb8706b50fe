package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"guesthouse/internal/config"
	"guesthouse/internal/database"
	"guesthouse/internal/middleware"
	"guesthouse/internal/modules/catalog"
	"guesthouse/internal/modules/guesthouse"
	"guesthouse/internal/modules/reservation"
	"guesthouse/internal/modules/review"
	"guesthouse/internal/modules/user"
	jwtsvc "guesthouse/internal/pkg/jwt"
	"guesthouse/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			log.Fatal(err)
		}
	}

	repos := repository.New(db)
	uow := repository.NewUnitOfWork(db)
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	userService := user.NewService(repos, uow, j)
	userHandler := user.NewHandler(userService)

	guesthouseService := guesthouse.NewService(repos, uow)
	guesthouseHandler := guesthouse.NewHandler(guesthouseService)

	catalogService := catalog.NewService(repos)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(repos, uow)
	reservationHandler := reservation.NewHandler(reservationService)

	reviewService := review.NewService(repos, uow)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.Identity(j))

	// public
	userHandler.RegisterRoutes(&r.RouterGroup)
	catalogHandler.RegisterRoutes(&r.RouterGroup)

	// protected
	protected := r.Group("/")
	protected.Use(middleware.RequireUser())
	{
		userHandler.RegisterProtectedRoutes(protected)
		guesthouseHandler.RegisterRoutes(protected)
		reservationHandler.RegisterRoutes(protected)
		reviewHandler.RegisterRoutes(protected)
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
