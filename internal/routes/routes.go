package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Shruthi-d-official/WareHouse/internal/authz"
	"github.com/Shruthi-d-official/WareHouse/internal/handlers"
	"github.com/Shruthi-d-official/WareHouse/internal/middleware"
	"github.com/Shruthi-d-official/WareHouse/internal/services"
)

func SetupRoutes(
	r *gin.Engine,
	tokens *services.TokenService,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	vendorHandler *handlers.VendorHandler,
	teamLeaderHandler *handlers.TeamLeaderHandler,
	countingHandler *handlers.CountingHandler,
) *gin.Engine {

	// ---- public
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/send-otp", authHandler.SendOTP)
		auth.POST("/verify-otp", authHandler.VerifyOTP)
	}

	// ---- protected
	api := r.Group("/api", middleware.AuthMiddleware(tokens))

	admin := api.Group("/admin", middleware.RequireRoles(authz.RoleAdmin))
	{
		admin.POST("/vendors", adminHandler.CreateVendor)
	}

	vendor := api.Group("/vendor", middleware.RequireRoles(authz.RoleVendor))
	{
		vendor.POST("/team-leaders", vendorHandler.CreateTeamLeader)
		vendor.POST("/approve-team-leader", vendorHandler.ApproveTeamLeader)
	}

	teamLeader := api.Group("/team-leader", middleware.RequireRoles(authz.RoleTeamLeader))
	{
		teamLeader.POST("/workers", teamLeaderHandler.CreateWorker)
		teamLeader.POST("/approve-worker", teamLeaderHandler.ApproveWorker)
	}

	counting := api.Group("/counting")
	{
		counting.GET("/bins", countingHandler.GetBins)

		workerOnly := counting.Group("", middleware.RequireRoles(authz.RoleWorker))
		{
			workerOnly.POST("/start", countingHandler.StartCounting)
			workerOnly.POST("/entry", countingHandler.AddEntry)
			workerOnly.POST("/end", countingHandler.EndCounting)
		}
	}

	return r
}
