package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-riegopanel/auth"
	"go-riegopanel/cache"
	"go-riegopanel/client"
	"go-riegopanel/config"
	"go-riegopanel/controllers"
	"go-riegopanel/middleware"
	"go-riegopanel/models"
)

// SetupRouter 配置所有路由
func SetupRouter(cfg *config.Config, api *client.Client, log *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	guard := auth.NewGuard(log)
	group := cache.New(cfg.CacheTTL)

	// 创建控制器实例
	authController := controllers.NewAuthController(api, cfg.CookieName)
	farmController := controllers.NewFarmController(api, group)
	equipmentController := controllers.NewEquipmentController(api, group)
	userController := controllers.NewUserController(api)
	taskController := controllers.NewTaskController(api)
	weatherController := controllers.NewWeatherController(api, group)
	calendarController := controllers.NewCalendarController(api, group)
	auditController := controllers.NewAuditController(api)

	// 公共路由
	public := r.Group("/")
	{
		public.POST("/api/auth/login", authController.Login)
		public.POST("/api/auth/logout", authController.Logout)
	}

	// 操作员和管理员均可访问的区域
	operator := r.Group("/api", middleware.Guarded(guard, cfg.CookieName, models.RoleAdmin, models.RoleOperator))
	{
		operator.GET("/auth/me", authController.Me)

		operator.GET("/farms", farmController.ListFarms)
		operator.GET("/farms/:farmId", farmController.GetFarm)
		operator.GET("/farms/:farmId/sectors", farmController.ListSectors)

		operator.GET("/farms/:farmId/calendar", calendarController.Monthly)

		operator.GET("/farms/:farmId/tasks", taskController.ListTasks)
		operator.POST("/farms/:farmId/tasks", taskController.CreateTask)
		operator.PUT("/farms/:farmId/tasks/:taskId", taskController.UpdateTask)
		operator.POST("/farms/:farmId/tasks/:taskId/complete", taskController.CompleteTask)

		operator.GET("/farms/:farmId/weather/current", weatherController.Current)
		operator.GET("/farms/:farmId/weather/forecast", weatherController.Forecast)
	}

	// 仅管理员可访问的区域
	admin := r.Group("/api/admin", middleware.Guarded(guard, cfg.CookieName, models.RoleAdmin))
	{
		admin.POST("/farms", farmController.CreateFarm)
		admin.PUT("/farms/:farmId", farmController.UpdateFarm)
		admin.DELETE("/farms/:farmId", farmController.DeleteFarm)
		admin.POST("/farms/:farmId/sectors", farmController.CreateSector)
		admin.PUT("/farms/:farmId/sectors/:sectorId", farmController.UpdateSector)
		admin.DELETE("/farms/:farmId/sectors/:sectorId", farmController.DeleteSector)

		admin.GET("/equipment", equipmentController.ListEquipment)
		admin.POST("/equipment", equipmentController.CreateEquipment)
		admin.PUT("/equipment/:equipmentId", equipmentController.UpdateEquipment)
		admin.DELETE("/equipment/:equipmentId", equipmentController.DeleteEquipment)

		admin.GET("/farms/:farmId/water-sources", equipmentController.ListWaterSources)
		admin.POST("/farms/:farmId/water-sources", equipmentController.CreateWaterSource)
		admin.PUT("/farms/:farmId/water-sources/:sourceId", equipmentController.UpdateWaterSource)
		admin.DELETE("/farms/:farmId/water-sources/:sourceId", equipmentController.DeleteWaterSource)

		admin.GET("/users", userController.ListUsers)
		admin.POST("/users", userController.CreateUser)
		admin.PUT("/users/:userId", userController.UpdateUser)
		admin.DELETE("/users/:userId", userController.DeleteUser)

		admin.GET("/audit", auditController.History)
		admin.GET("/farms/:farmId/reports/monthly", auditController.MonthlyReport)

		admin.DELETE("/farms/:farmId/tasks/:taskId", taskController.DeleteTask)
	}

	return r
}
