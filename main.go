package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"finance-manager-be/config"
	"finance-manager-be/database"
	"finance-manager-be/handlers"
	"finance-manager-be/middleware"
	"finance-manager-be/models"
	"finance-manager-be/notifier"
	"finance-manager-be/repositories"
	"finance-manager-be/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	log.Info("connected to database")

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	incomeRepo := repositories.NewIncomeRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	reminderRepo := repositories.NewReminderRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := services.NewUserService(userRepo, accountRepo, log)
	budgetService := services.NewBudgetService(budgetRepo, db, log)
	transactionService := services.NewTransactionService(transactionRepo, log)
	incomeService := services.NewIncomeService(incomeRepo, log)
	expenseService := services.NewExpenseService(expenseRepo, incomeRepo, log)
	goalService := services.NewGoalService(goalRepo, log)
	reminderService := services.NewReminderService(reminderRepo, log)
	taxService := services.NewTaxService()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	transferHandler := handlers.NewTransferHandler(budgetService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	goalHandler := handlers.NewGoalHandler(goalService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	taxHandler := handlers.NewTaxHandler(taxService)
	insightsHandler := handlers.NewInsightsHandler(db, cfg.GeminiAPIKey, log)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public routes
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/tax/calculate", taxHandler.Calculate)

	// Everything below requires a valid bearer token.
	api.Use(middleware.Auth(cfg.JWTSecret))

	budget := api.Group("/budget")
	budget.Get("/", budgetHandler.List)
	budget.Post("/", budgetHandler.Create)
	budget.Delete("/:id", budgetHandler.Delete)
	budget.Get("/needs", budgetHandler.ListBucket(models.BucketNeeds))
	budget.Get("/wants", budgetHandler.ListBucket(models.BucketWants))
	budget.Get("/savings", budgetHandler.ListBucket(models.BucketSavings))
	budget.Post("/submitNeeds", budgetHandler.SubmitBucket(models.BucketNeeds))
	budget.Post("/submitWants", budgetHandler.SubmitBucket(models.BucketWants))
	budget.Post("/submitSavings", budgetHandler.SubmitBucket(models.BucketSavings))
	budget.Get("/totals", budgetHandler.Totals)
	budget.Get("/:id", budgetHandler.Get)
	budget.Post("/transfer", transferHandler.Transfer)
	api.Post("/transfer", transferHandler.Transfer)

	transaction := api.Group("/transaction")
	transaction.Get("/", transactionHandler.List)
	transaction.Post("/", transactionHandler.Create)
	transaction.Put("/:id", transactionHandler.Update)
	transaction.Delete("/:id", transactionHandler.Delete)

	income := api.Group("/income")
	income.Get("/", incomeHandler.List)
	income.Get("/total", incomeHandler.Total)
	income.Get("/:id", incomeHandler.Get)
	income.Post("/", incomeHandler.Create)
	income.Put("/:id", incomeHandler.Update)
	income.Delete("/:id", incomeHandler.Delete)

	expense := api.Group("/expense")
	expense.Get("/", expenseHandler.List)
	expense.Get("/summary", expenseHandler.Summary)
	expense.Post("/", expenseHandler.Create)
	expense.Put("/:id", expenseHandler.Update)
	expense.Delete("/:id", expenseHandler.Delete)

	goal := api.Group("/goal")
	goal.Get("/", goalHandler.List)
	goal.Post("/", goalHandler.Create)
	goal.Put("/:id", goalHandler.Update)
	goal.Delete("/:id", goalHandler.Delete)
	goal.Get("/:id/recommendations", goalHandler.Recommendations)

	reminder := api.Group("/reminder")
	reminder.Get("/", reminderHandler.List)
	reminder.Get("/upcoming", reminderHandler.Upcoming)
	reminder.Post("/", reminderHandler.Create)
	reminder.Put("/:id", reminderHandler.Update)
	reminder.Delete("/:id", reminderHandler.Delete)

	user := api.Group("/user")
	user.Get("/me", userHandler.Me)
	user.Put("/me", userHandler.UpdateMe)
	user.Delete("/:id", userHandler.Delete)

	account := api.Group("/account")
	account.Get("/", userHandler.ListAccounts)
	account.Post("/", userHandler.CreateAccount)

	api.Get("/insights/transactions", insightsHandler.AnalyzeTransactions)

	// Reminder sweep
	var publisher *notifier.Publisher
	if cfg.AMQPURL != "" {
		publisher, err = notifier.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			log.Error("AMQP connection failed, falling back to log-only notifications", "error", err)
		} else {
			defer publisher.Close()
		}
	}
	sweep := notifier.NewReminderNotifier(userRepo, reminderRepo, publisher, cfg.SweepInterval, cfg.SweepLookahead, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweep.Run(ctx)

	log.Info("starting server", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
