package router

import (
	"time"

	"barbershop/api"
	"barbershop/config"
	_ "barbershop/docs"
	"barbershop/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录），登录接口带限流
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		}

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户自身
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			// 菜单按角色过滤
			menuHandler := api.NewMenuHandler()
			authorized.GET("/menus", menuHandler.List)

			// 价目表查询对所有登录用户开放（录入交易的下拉选项需要）
			barberHandler := api.NewBarberHandler()
			serviceHandler := api.NewServiceHandler()
			productHandler := api.NewProductHandler()
			authorized.GET("/barbers", barberHandler.List)
			authorized.GET("/services", serviceHandler.List)
			authorized.GET("/products", productHandler.List)

			// 交易录入与记录（收银员只能看到自己录入的）
			transactionHandler := api.NewTransactionHandler()
			authorized.POST("/transactions", transactionHandler.Create)
			authorized.GET("/transactions", transactionHandler.List)

			// 仅老板可用的管理功能
			owner := authorized.Group("")
			owner.Use(middleware.OwnerOnly())
			{
				owner.POST("/barbers", barberHandler.Create)
				owner.PUT("/barbers/:id", barberHandler.Update)
				owner.DELETE("/barbers/:id", barberHandler.Delete)

				owner.POST("/services", serviceHandler.Create)
				owner.PUT("/services/:id", serviceHandler.Update)
				owner.DELETE("/services/:id", serviceHandler.Delete)

				owner.POST("/products", productHandler.Create)
				owner.PUT("/products/:id", productHandler.Update)
				owner.DELETE("/products/:id", productHandler.Delete)

				// 仪表盘
				dashboardHandler := api.NewDashboardHandler()
				owner.GET("/dashboard", dashboardHandler.GetStats)

				// 工资报表
				reportHandler := api.NewReportHandler(cfg)
				owner.GET("/reports/earnings", reportHandler.GetEarnings)
				owner.POST("/reports/email", reportHandler.SendEarningsEmail)

				// 导出
				exportHandler := api.NewExportHandler()
				owner.GET("/export/csv", exportHandler.ExportCSV)
				owner.GET("/export/excel", exportHandler.ExportExcel)

				// 账号管理
				userHandler := api.NewUserHandler()
				owner.GET("/users", userHandler.List)
				owner.POST("/users", userHandler.Create)
				owner.PUT("/users/:id/password", userHandler.ResetPassword)
				owner.DELETE("/users/:id", userHandler.Delete)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
