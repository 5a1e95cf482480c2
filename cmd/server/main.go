package main

import (
	"context"
	"fmt"
	"log"

	"portfolio-api/adapters/event"
	httpAdapter "portfolio-api/adapters/http"
	"portfolio-api/adapters/media_storage"
	"portfolio-api/adapters/persistence"
	"portfolio-api/internal/application/ordering"
	authUC "portfolio-api/internal/application/usecase/auth"
	certificationUC "portfolio-api/internal/application/usecase/certification"
	contactinfoUC "portfolio-api/internal/application/usecase/contactinfo"
	cvUC "portfolio-api/internal/application/usecase/cv"
	educationUC "portfolio-api/internal/application/usecase/education"
	experienceUC "portfolio-api/internal/application/usecase/experience"
	languageUC "portfolio-api/internal/application/usecase/language"
	messageUC "portfolio-api/internal/application/usecase/message"
	proglangUC "portfolio-api/internal/application/usecase/proglang"
	profileUC "portfolio-api/internal/application/usecase/profile"
	projectUC "portfolio-api/internal/application/usecase/project"
	skillUC "portfolio-api/internal/application/usecase/skill"
	socialUC "portfolio-api/internal/application/usecase/social"
	toolUC "portfolio-api/internal/application/usecase/tool"
	trainingUC "portfolio-api/internal/application/usecase/training"
	"portfolio-api/internal/config"
	"portfolio-api/pkg/auth"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	tracerProvider, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
	if err != nil {
		log.Fatalf("FATAL: cannot init tracing: %v", err)
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Printf("WARN: tracer shutdown: %v", err)
		}
	}()

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	toolRepo := persistence.NewPostgresToolRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	trainingRepo := persistence.NewPostgresTrainingRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	certificationRepo := persistence.NewPostgresCertificationRepo(dbPool, appLogger)
	languageRepo := persistence.NewPostgresLanguageRepo(dbPool, appLogger)
	proglangRepo := persistence.NewPostgresProgrammingLanguageRepo(dbPool, appLogger)
	socialRepo := persistence.NewPostgresSocialRepo(dbPool, appLogger)
	contactInfoRepo := persistence.NewPostgresContactInfoRepo(dbPool, appLogger)
	messageRepo := persistence.NewPostgresMessageRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize uploader: %v", err)
	}
	cvCache := persistence.NewRedisCVCache(redisClient, cfg.Redis.CVTTL)
	locks := ordering.NewLocks()

	children := map[string]profileUC.Counter{
		"skills":                skillRepo,
		"tools":                 toolRepo,
		"experiences":           experienceRepo,
		"education":             educationRepo,
		"trainings":             trainingRepo,
		"projects":              projectRepo,
		"certifications":        certificationRepo,
		"languages":             languageRepo,
		"programming_languages": proglangRepo,
		"social_networks":       socialRepo,
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, children, uploader, cvCache, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, locks, cvCache, appLogger)
	toolUseCase := toolUC.NewToolUseCase(toolRepo, locks, cvCache, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, locks, cvCache, appLogger)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo, locks, cvCache, appLogger)
	trainingUseCase := trainingUC.NewTrainingUseCase(trainingRepo, locks, cvCache, appLogger)
	projectUseCase := projectUC.NewProjectUseCase(projectRepo, locks, cvCache, appLogger)
	certificationUseCase := certificationUC.NewCertificationUseCase(certificationRepo, locks, cvCache, appLogger)
	languageUseCase := languageUC.NewLanguageUseCase(languageRepo, locks, cvCache, appLogger)
	proglangUseCase := proglangUC.NewProgrammingLanguageUseCase(proglangRepo, locks, cvCache, appLogger)
	socialUseCase := socialUC.NewSocialNetworkUseCase(socialRepo, locks, cvCache, appLogger)
	contactInfoUseCase := contactinfoUC.NewContactInfoUseCase(contactInfoRepo, cvCache, appLogger)
	messageUseCase := messageUC.NewMessageUseCase(messageRepo, kafkaClient, appLogger)
	cvUseCase := cvUC.NewCVUseCase(cvUC.Repos{
		Profile:        profileRepo,
		ContactInfo:    contactInfoRepo,
		Skills:         skillRepo,
		Tools:          toolRepo,
		Experience:     experienceRepo,
		Education:      educationRepo,
		Training:       trainingRepo,
		Projects:       projectRepo,
		Certifications: certificationRepo,
		Languages:      languageRepo,
		ProgLangs:      proglangRepo,
		Socials:        socialRepo,
	}, cvCache, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Auth:          httpAdapter.NewAuthHandler(loginUseCase),
		Profile:       httpAdapter.NewProfileHandler(profileUseCase),
		Skill:         httpAdapter.NewSkillHandler(skillUseCase),
		Tool:          httpAdapter.NewToolHandler(toolUseCase),
		Experience:    httpAdapter.NewExperienceHandler(experienceUseCase),
		Education:     httpAdapter.NewEducationHandler(educationUseCase),
		Training:      httpAdapter.NewTrainingHandler(trainingUseCase),
		Project:       httpAdapter.NewProjectHandler(projectUseCase),
		Certification: httpAdapter.NewCertificationHandler(certificationUseCase),
		Language:      httpAdapter.NewLanguageHandler(languageUseCase),
		ProgLang:      httpAdapter.NewProgrammingLanguageHandler(proglangUseCase),
		Social:        httpAdapter.NewSocialNetworkHandler(socialUseCase),
		ContactInfo:   httpAdapter.NewContactInfoHandler(contactInfoUseCase),
		Message:       httpAdapter.NewMessageHandler(messageUseCase),
		CV:            httpAdapter.NewCVHandler(cvUseCase),
	}

	router := httpAdapter.NewRouter(handlers, jwtSvc, profileRepo)

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
