package main

import (
	"log"
	"os"
	"time"

	"github.com/AyanAhmed30/Logistix-sub000/handlers/agents"
	"github.com/AyanAhmed30/Logistix-sub000/handlers/auth"
	"github.com/AyanAhmed30/Logistix-sub000/handlers/consoles"
	"github.com/AyanAhmed30/Logistix-sub000/handlers/customers"
	"github.com/AyanAhmed30/Logistix-sub000/handlers/invoices"
	"github.com/AyanAhmed30/Logistix-sub000/handlers/leads"
	"github.com/AyanAhmed30/Logistix-sub000/handlers/orders"
	"github.com/AyanAhmed30/Logistix-sub000/migrations"
	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/seed"
	"github.com/AyanAhmed30/Logistix-sub000/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	if secret := os.Getenv("JWT_SECRET"); secret == "" {
		log.Fatal("JWT_SECRET is not set in the environment")
	} else {
		utils.JwtSecret = []byte(secret)
	}

	r := gin.Default()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()

	migrations.MigrateSequences()
	migrations.MigrateAuth()
	migrations.MigrateFreight()
	migrations.MigrateCRM()
	migrations.MigrateDocuments()

	if err := seed.SeedAdminUser(); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	r.GET("/", auth.RootRedirect)
	r.GET("/login", auth.LoginGate)
	r.POST("/login", auth.Login)
	r.POST("/logout", auth.AuthMiddleware(), auth.Logout)

	// Back office: admins plus capability-gated sales agents.
	admin := r.Group("/admin")
	admin.Use(auth.AuthMiddleware(), auth.RequireRole(models.RoleAdmin, models.RoleSalesAgent))
	{
		admin.GET("/dashboard", auth.AdminDashboard)
		orders.RegisterOrdersRoutes(admin)
		consoles.RegisterConsolesRoutes(admin)
		customers.RegisterCustomersRoutes(admin)
		leads.RegisterLeadsRoutes(admin)
		agents.RegisterAgentsRoutes(admin)
		invoices.RegisterInvoicesRoutes(admin)
		invoices.RegisterPackingListsRoutes(admin)
	}

	// Customer portal: own data only.
	user := r.Group("/user")
	user.Use(auth.AuthMiddleware(), auth.RequireRole(models.RoleUser))
	{
		user.GET("/dashboard", auth.UserDashboard)
		orders.RegisterUserOrdersRoutes(user)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
