package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/config"
	"github.com/sahilchouksey/studystack-api/database"
	"github.com/sahilchouksey/studystack-api/handlers"
	auth_handlers "github.com/sahilchouksey/studystack-api/handlers/auth"
	branch_handlers "github.com/sahilchouksey/studystack-api/handlers/branch"
	content_handlers "github.com/sahilchouksey/studystack-api/handlers/content"
	regulation_handlers "github.com/sahilchouksey/studystack-api/handlers/regulation"
	subject_handlers "github.com/sahilchouksey/studystack-api/handlers/subject"
	unit_handlers "github.com/sahilchouksey/studystack-api/handlers/unit"
	university_handlers "github.com/sahilchouksey/studystack-api/handlers/university"
	upload_handlers "github.com/sahilchouksey/studystack-api/handlers/upload"
	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/services/uploadstore"
	"github.com/sahilchouksey/studystack-api/utils/auth"
	"github.com/sahilchouksey/studystack-api/utils/cache"
	"github.com/sahilchouksey/studystack-api/utils/middleware"
	"gorm.io/gorm"
)

const tokenExpiry = 24 * time.Hour

func SetupRoutes(app *fiber.App, store database.Storage, getEnv *config.EnviornmentVariable, uploads *uploadstore.LocalStore) {
	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "studystack-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: tokenExpiry,
		Issuer: jwtIssuer,
	})

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Brute force protection is best effort: without Redis, login simply
	// runs unprotected (teacher-visible warning only).
	var bruteForceProtection *middleware.BruteForceProtection
	if getEnv.REDIS_URL != "" {
		redisCache, err := cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
		} else {
			bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
		}
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection, tokenExpiry)
	universityHandler := university_handlers.NewUniversityHandler(db)
	regulationHandler := regulation_handlers.NewRegulationHandler(db)
	branchHandler := branch_handlers.NewBranchHandler(db)
	subjectHandler := subject_handlers.NewSubjectHandler(db)
	unitHandler := unit_handlers.NewUnitHandler(db)
	contentHandler := content_handlers.NewContentHandler(db)
	uploadHandler := upload_handlers.NewUploadHandler(uploads)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,
		RateLimitWindow:   1 * time.Minute,
	})

	// Health check endpoint (public)
	app.Get("/ping", handlers.HandleCheckHealth(store))

	// Static serving of uploaded files
	app.Static(uploadstore.URLPrefix, uploads.Dir())

	// Auth routes (public)
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", authHandler.Register)
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Admin routes: admin role required, every write is audited
	adminGroup := app.Group("/api/admin", authMiddleware.Protect(model.RoleAdmin))
	adminGroup.Post("/universities", middleware.AdminAuditLog(db, "create", "universities"), universityHandler.CreateUniversity)
	adminGroup.Post("/regulations", middleware.AdminAuditLog(db, "create", "regulations"), regulationHandler.CreateRegulation)
	adminGroup.Post("/branches", middleware.AdminAuditLog(db, "create", "branches"), branchHandler.CreateBranch)
	adminGroup.Post("/subjects", middleware.AdminAuditLog(db, "create", "subjects"), subjectHandler.CreateSubject)
	adminGroup.Post("/units", middleware.AdminAuditLog(db, "create", "units"), unitHandler.CreateUnit)
	adminGroup.Delete("/universities/:id", middleware.AdminAuditLog(db, "delete", "universities"), universityHandler.DeleteUniversity)
	adminGroup.Delete("/regulations/:id", middleware.AdminAuditLog(db, "delete", "regulations"), regulationHandler.DeleteRegulation)
	adminGroup.Delete("/branches/:id", middleware.AdminAuditLog(db, "delete", "branches"), branchHandler.DeleteBranch)
	adminGroup.Delete("/subjects/:id", middleware.AdminAuditLog(db, "delete", "subjects"), subjectHandler.DeleteSubject)
	adminGroup.Delete("/units/:id", middleware.AdminAuditLog(db, "delete", "units"), unitHandler.DeleteUnit)

	// Public read routes
	publicGroup := app.Group("/api/public")
	publicGroup.Get("/universities", universityHandler.ListUniversities)
	publicGroup.Get("/regulations/:universityId", regulationHandler.ListByUniversity)
	publicGroup.Get("/branches/:regulationId", branchHandler.ListByRegulation)
	publicGroup.Get("/subjects/:branchId", subjectHandler.ListByBranch)
	publicGroup.Get("/units/:subjectId", unitHandler.ListBySubject)
	publicGroup.Get("/unit-details/:unitId", unitHandler.GetUnitDetails)

	// Teacher routes: teacher role required
	teacherGroup := app.Group("/api/teacher", authMiddleware.Protect(model.RoleTeacher))
	teacherGroup.Post("/upload-pdf-file", uploadHandler.UploadPDF)
	teacherGroup.Post("/content", contentHandler.CreateContent)
	teacherGroup.Get("/content/by-unit/:unitId", contentHandler.ListByUnit)
	teacherGroup.Delete("/content/:contentId", contentHandler.DeleteContent)
}
