package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/Bramtheking/rentalsystemproj/internal/app"
	"github.com/Bramtheking/rentalsystemproj/internal/config"
	"github.com/Bramtheking/rentalsystemproj/internal/controllers"
	"github.com/Bramtheking/rentalsystemproj/internal/middleware"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
	"github.com/Bramtheking/rentalsystemproj/internal/routes"
	"github.com/Bramtheking/rentalsystemproj/internal/services"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

const reminderScanTimeout = 5 * time.Minute

func main() {
	utils.InitLogger(os.Getenv("APP_NAME"))
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize service:", err)
	}
	defer application.Close()

	// Repositories
	userRepo := repositories.NewUserRepository(application.DB)
	unitRepo := repositories.NewUnitRepository(application.DB)
	tenantRepo := repositories.NewTenantRepository(application.DB)
	historyRepo := repositories.NewTenantHistoryRepository(application.DB)
	paymentRepo := repositories.NewPaymentRepository(application.DB)
	reminderRepo := repositories.NewPaymentReminderRepository(application.DB)
	damageRepo := repositories.NewDamageReportRepository(application.DB)
	seqRepo := repositories.NewSequenceRepository(application.DB)

	// Services
	idGen := services.NewIDGenService(seqRepo)
	synchronizer := services.NewOccupancySynchronizer()
	userService := services.NewUserService(userRepo)
	tenantService := services.NewTenantService(application.DB, tenantRepo, unitRepo, historyRepo, idGen, synchronizer)
	unitService := services.NewUnitService(application.DB, unitRepo, tenantRepo)
	paymentService := services.NewPaymentService(application.DB, paymentRepo, tenantRepo, unitRepo, idGen)
	damageService := services.NewDamageService(damageRepo, unitRepo)
	reminderService := services.NewReminderService(paymentRepo, reminderRepo, tenantRepo, cfg)
	reportService := services.NewReportService(paymentRepo, unitRepo, tenantRepo, historyRepo)

	if cfg.SeedDemoData {
		if err := app.SeedDemoData(context.Background(), userRepo, unitRepo, tenantService, paymentService); err != nil {
			utils.Logger.Fatal("Failed to seed demo data:", err)
		}
	}

	// Controllers
	healthController := controllers.NewHealthController(application)
	usersController := controllers.NewUsersController(userService)
	unitsController := controllers.NewUnitsController(unitService)
	tenantsController := controllers.NewTenantsController(tenantService)
	paymentsController := controllers.NewPaymentsController(paymentService)
	damageController := controllers.NewDamageReportsController(damageService)
	reportsController := controllers.NewReportsController(reportService)
	notificationsController := controllers.NewNotificationsController(reminderService)

	// Router setup
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	// Secured routes
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.IdPPublicKey, cfg.IdPIssuer, userService))

	secured.HandleFunc(routes.Me, usersController.GetProfileHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Me, usersController.UpdateProfileHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.UsersSync, usersController.SyncUserHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.UnitsBase, unitsController.CreateUnitHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.UnitsBase, unitsController.ListUnitsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UnitsSearch, unitsController.SearchUnitsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UnitsStats, unitsController.UnitStatsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UnitsByID, unitsController.GetUnitHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UnitsByID, unitsController.UpdateUnitHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.UnitsByID, unitsController.DeleteUnitHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.TenantsBase, tenantsController.CreateTenantHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.TenantsBase, tenantsController.ListTenantsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantsSearch, tenantsController.SearchTenantsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantsStats, tenantsController.TenantStatsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantsAvailableUnits, tenantsController.AvailableUnitsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantsByID, tenantsController.GetTenantHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantsByID, tenantsController.UpdateTenantHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.TenantsByID, tenantsController.DeleteTenantHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.TenantsHistory, tenantsController.TenantHistoryHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantsMoveIn, tenantsController.MoveInHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.TenantsMoveOut, tenantsController.MoveOutHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.PaymentsBase, paymentsController.CreatePaymentHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaymentsBase, paymentsController.ListPaymentsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentsSearch, paymentsController.SearchPaymentsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentsStats, paymentsController.PaymentStatsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentsStatsMonthly, paymentsController.MonthlyStatsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentsOverdue, paymentsController.OverduePaymentsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentsTenantUnits, paymentsController.TenantUnitsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentsByID, paymentsController.GetPaymentHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentsByID, paymentsController.UpdatePaymentHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.PaymentsByID, paymentsController.DeletePaymentHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.PaymentsComplete, paymentsController.CompletePaymentHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.DamageReportsBase, damageController.CreateDamageReportHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.DamageReportsBase, damageController.ListDamageReportsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.DamageReportsSearch, damageController.SearchDamageReportsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.DamageReportsStats, damageController.DamageStatsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.DamageReportsByID, damageController.GetDamageReportHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.DamageReportsByID, damageController.UpdateDamageReportHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.DamageReportsByID, damageController.DeleteDamageReportHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.DamageReportsRepair, damageController.RecordRepairHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.ReportsPayments, reportsController.PaymentsReportHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ReportsOccupancy, reportsController.OccupancyReportHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.NotificationsReminders, notificationsController.ListRemindersHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.NotificationsRemindersScan, notificationsController.TriggerScanHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.NotificationsSMS, notificationsController.SendSMSHandler).Methods(http.MethodPost)

	// Cron job setup
	c := cron.New(cron.WithLocation(time.UTC))
	_, err = c.AddFunc(cfg.ReminderCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reminderScanTimeout)
		defer cancel()
		utils.Logger.Info("Starting payment reminder cron job...")
		if err := reminderService.ScanAndNotify(ctx); err != nil {
			utils.Logger.WithError(err).Error("Failed to run payment reminder scan")
		}
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule payment reminder cron")
	}
	c.Start()
	utils.Logger.Info("Scheduled payment reminder cron job")

	allowedOrigins := []string{cfg.AppUrl}
	if !cfg.CORSHighSecurity {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000")
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Service failed to start:", err)
	}
}
