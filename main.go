package main

import (
	"fmt"
	"log"
	"os"

	_ "care_calendar/docs"
	"care_calendar/internal/auth"
	"care_calendar/internal/handlers"
	"care_calendar/internal/models"
	"care_calendar/internal/storage"
	"care_calendar/internal/tasks"
	"care_calendar/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						Календарь ухода за проживающими
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.InitTimezone()
	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(&models.User{}, &models.CalendarDate{}, &models.Resident{}, &models.ScheduleType{}, &models.Schedule{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	storage.InitRedis()

	tasks.InitScheduler()
	tasks.EnsureUpcomingCalendarDates()

	go ws.HubInstance.Run()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handlers.Login)
		authGroup.POST("/register", handlers.Register)
		authGroup.POST("/refresh", handlers.RefreshToken)
	}

	api := r.Group("/api", auth.AuthMiddleware())
	{
		api.GET("/schedules/monthly", handlers.GetMonthlySchedulesHandler)
		api.GET("/schedules", handlers.ListSchedulesHandler)
		api.POST("/schedules", handlers.CreateScheduleHandler)
		api.GET("/schedules/:id", handlers.GetScheduleHandler)
		api.PUT("/schedules/:id", handlers.UpdateScheduleHandler)
		api.DELETE("/schedules/:id", handlers.DeleteScheduleHandler)

		api.GET("/residents", handlers.ListResidentsHandler)
		api.POST("/residents", handlers.CreateResidentHandler)
		api.GET("/residents/:id", handlers.GetResidentHandler)
		api.PUT("/residents/:id", handlers.UpdateResidentHandler)
		api.DELETE("/residents/:id", handlers.DeleteResidentHandler)

		api.GET("/schedule-types", handlers.ListScheduleTypesHandler)
		api.POST("/schedule-types", handlers.CreateScheduleTypeHandler)
		api.GET("/schedule-types/:id", handlers.GetScheduleTypeHandler)
		api.PUT("/schedule-types/:id", handlers.UpdateScheduleTypeHandler)
		api.DELETE("/schedule-types/:id", handlers.DeleteScheduleTypeHandler)
	}

	calendarWS := r.Group("/api/calendar")
	{
		calendarWS.GET("/:month/ws", ws.CalendarWebSocketHandler)
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
