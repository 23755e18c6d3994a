package main

import (
	"fmt"
	"net/http"

	"github.com/vitalis-care/vitalis-backend-go/internal/config"
	appHTTP "github.com/vitalis-care/vitalis-backend-go/internal/handler/http"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/database"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/jwt"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/soc"
	"github.com/vitalis-care/vitalis-backend-go/internal/repository/postgresql"
	absenceService "github.com/vitalis-care/vitalis-backend-go/internal/service/absence"
	apiconfigService "github.com/vitalis-care/vitalis-backend-go/internal/service/apiconfig"
	authService "github.com/vitalis-care/vitalis-backend-go/internal/service/auth"
	employeeService "github.com/vitalis-care/vitalis-backend-go/internal/service/employee"
	synclogService "github.com/vitalis-care/vitalis-backend-go/internal/service/synclog"
	userService "github.com/vitalis-care/vitalis-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	configRepo := postgresql.NewConfigRepository(db)
	syncLogRepo := postgresql.NewSyncLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	socClient := soc.NewClient(cfg.SOC)

	handlers := appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authService.NewAuthService(userRepo, jwtService)),
		User:     appHTTP.NewUserHandler(userService.NewUserService(userRepo)),
		Employee: appHTTP.NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo, companyRepo, configRepo, syncLogRepo, socClient)),
		Absence:  appHTTP.NewAbsenceHandler(absenceService.NewAbsenceService(absenceRepo, employeeRepo, configRepo, syncLogRepo, socClient, cfg.Stats.MinimumWage)),
		SyncLog:  appHTTP.NewSyncLogHandler(synclogService.NewSyncLogService(syncLogRepo)),
		Config:   appHTTP.NewConfigHandler(apiconfigService.NewConfigService(configRepo)),
	}

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
