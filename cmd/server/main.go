package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"coursepay_relay/internal/audit"
	"coursepay_relay/internal/catalog"
	"coursepay_relay/internal/config"
	"coursepay_relay/internal/handlers"
	appMiddleware "coursepay_relay/internal/middleware"
	"coursepay_relay/internal/services"
	"coursepay_relay/internal/signature"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := config.Load()

	logger := newLogger(cfg.AppEnv)
	defer logger.Sync()

	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		logger.Warn("Razorpay credentials not set, gateway calls will fail")
	}

	// The catalog is required: refuse to start without it.
	courses, err := catalog.Load(cfg.CourseCatalogPath)
	if err != nil {
		log.Fatalf("Failed to load course catalog: %v", err)
	}
	logger.Info("course catalog loaded",
		zap.String("path", cfg.CourseCatalogPath),
		zap.Int("courses", courses.Len()),
	)

	auditLog, err := audit.NewFileLog(cfg.AuditLogDir)
	if err != nil {
		log.Fatalf("Failed to open audit log streams: %v", err)
	}
	defer auditLog.Close()

	verifier := signature.NewVerifier(cfg.RazorpayKeySecret)
	gateway := services.NewRazorpayService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	reconciler := services.NewReconciler(verifier, gateway, auditLog, cfg.SuccessURL, cfg.FailureURL)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler

	// Initialize handlers
	paymentHandler := handlers.NewPaymentHandler(courses, gateway, verifier, reconciler, auditLog, logger)
	phoneHandler := handlers.NewPhoneHandler(logger)

	// Health check
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "CoursePay relay is running")
	})

	// Payment routes
	e.POST("/create_order", paymentHandler.CreateOrder)
	e.POST("/verify_payment", paymentHandler.VerifyPayment)
	e.POST("/payment_callback", paymentHandler.PaymentCallback)
	e.POST("/verify_phone", phoneHandler.VerifyPhone)

	logger.Info("server starting", zap.String("port", cfg.Port))
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("Failed to build logger: %v", err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return logger
}
