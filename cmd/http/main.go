package main

import (
	"context"
	"navigator-service/internal/app/config"
	"navigator-service/internal/app/delivery/http/middlewares"
	"navigator-service/internal/app/delivery/http/routers"
	"navigator-service/internal/app/drivers/database"
	"navigator-service/internal/app/drivers/logger"
	"navigator-service/internal/app/services/core/checklist"
	"navigator-service/internal/app/services/core/eligibility"
	"navigator-service/internal/app/services/core/financial"
	"navigator-service/internal/app/services/core/navigation"
	"navigator-service/internal/app/services/core/pathway"
	"navigator-service/internal/app/services/core/patients"
	"navigator-service/internal/app/services/core/session"
	checklistRegistry "navigator-service/internal/app/services/registry/checklists"
	financialRegistry "navigator-service/internal/app/services/registry/financial"
	patientRegistry "navigator-service/internal/app/services/registry/patients"
	questionnaireRegistry "navigator-service/internal/app/services/registry/questionnaires"
	referralRegistry "navigator-service/internal/app/services/registry/referrals"
	"navigator-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	lifecycleLog := logger.NewLogrusLogger(internalConfig)
	zapLog := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		lifecycleLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			lifecycleLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		lifecycleLog.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		lifecycleLog.Fatalf("Cleanup failed: %v", err)
	}

	lifecycleLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	registryBaseUrl := bootstrap.InternalConfig.Registry.BaseUrl

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Registry clients
	patientClient := patientRegistry.NewPatientRegistryClient(registryBaseUrl, bootstrap.Logger)
	questionnaireClient := questionnaireRegistry.NewQuestionnaireRegistryClient(registryBaseUrl, bootstrap.Logger)
	checklistClient := checklistRegistry.NewChecklistRegistryClient(registryBaseUrl, bootstrap.Logger)
	financialClient := financialRegistry.NewFinancialRegistryClient(registryBaseUrl, bootstrap.Logger)
	referralClient := referralRegistry.NewReferralRegistryClient(registryBaseUrl, bootstrap.Logger)

	// Session
	sessionService := session.NewSessionService(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)
	sessionController := session.NewSessionController(bootstrap.Logger, sessionService)

	// Patient
	patientUsecase := patients.NewPatientUsecase(bootstrap.Logger, patientClient)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Navigation
	navigationStateStore := navigation.NewNavigationStateStore(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.App.NavigationStateTTLInHour)*time.Hour,
	)
	navigationUsecase := navigation.NewNavigationUsecase(
		bootstrap.Logger,
		navigationStateStore,
		sessionService,
		patientUsecase,
		patientClient,
		checklistClient,
		financialClient,
	)
	navigationController := navigation.NewNavigationController(bootstrap.Logger, navigationUsecase)

	// Eligibility
	eligibilityUsecase := eligibility.NewEligibilityUsecase(bootstrap.Logger, questionnaireClient, navigationUsecase)
	eligibilityController := eligibility.NewEligibilityController(bootstrap.Logger, eligibilityUsecase)

	// Checklist
	checklistUsecase := checklist.NewChecklistUsecase(bootstrap.Logger, checklistClient)
	checklistController := checklist.NewChecklistController(bootstrap.Logger, checklistUsecase)

	// Financial
	autosaveCoordinator := financial.NewAutosaveCoordinator(
		bootstrap.Logger,
		financialClient,
		time.Duration(bootstrap.InternalConfig.App.AutosaveDebounceInMillis)*time.Millisecond,
		time.Duration(bootstrap.InternalConfig.App.RegistryTimeoutInSeconds)*time.Second,
	)
	bootstrap.AutosaveStop = autosaveCoordinator.Stop
	financialUsecase := financial.NewFinancialUsecase(
		bootstrap.Logger,
		financialClient,
		navigationStateStore,
		navigationUsecase,
		autosaveCoordinator,
	)
	financialController := financial.NewFinancialController(bootstrap.Logger, financialUsecase)

	// Pathway
	pathwayUsecase := pathway.NewPathwayUsecase(bootstrap.Logger, questionnaireClient, referralClient, checklistClient)
	pathwayController := pathway.NewPathwayController(bootstrap.Logger, pathwayUsecase)

	// Middlewares
	middlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		SessionService: sessionService,
		InternalConfig: bootstrap.InternalConfig,
	}
	sessionMintLimiter := newSessionMintLimiter(bootstrap)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		sessionMintLimiter,
		sessionController,
		navigationController,
		patientController,
		eligibilityController,
		checklistController,
		financialController,
		pathwayController,
	)
}

func newSessionMintLimiter(bootstrap *config.Bootstrap) *middlewares.RateLimiter {
	return middlewares.NewRateLimiter(
		bootstrap.Logger,
		bootstrap.InternalConfig.App.SessionMintPerMinute,
		time.Minute,
		time.Duration(bootstrap.InternalConfig.App.SessionMintBlockInMinute)*time.Minute,
	)
}
