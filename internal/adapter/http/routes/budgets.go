package routes

import (
	"tripbudget/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets = "/budgets"
)

func addBudgetRoutes(
	rg *gin.RouterGroup,
	budgetHandler *handlers.BudgetHandler,
	reconstructionHandler *handlers.ReconstructionHandler,
	approvalHandler *handlers.ApprovalHandler,
	depositHandler *handlers.DepositHandler,
) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:budget_id", budgetHandler.GetBudget)

		budgets.POST("/:budget_id/reconstructions", reconstructionHandler.ApplyReconstruction)
		budgets.GET("/:budget_id/reconstructions", reconstructionHandler.GetReconstructionHistory)

		budgets.POST("/:budget_id/approval/transitions", approvalHandler.Transition)
		budgets.GET("/:budget_id/approval/history", approvalHandler.GetApprovalHistory)

		budgets.POST("/:budget_id/deposits", depositHandler.CreateDeposit)
		budgets.GET("/:budget_id/deposits", depositHandler.ListDeposits)
	}
}
