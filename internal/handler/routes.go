package handler

import (
	"github.com/finza/finza-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes. authMiddleware may be nil, in
// which case the API is served without authentication (single-user
// local setups).
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, monthHandler *MonthHandler, transactionHandler *TransactionHandler, expenseHandler *ExpenseHandler, billHandler *BillHandler, dashboardHandler *DashboardHandler, receiptHandler *ReceiptHandler) {
	// API version 1
	api := e.Group("/api/v1")
	if authMiddleware != nil {
		api.Use(authMiddleware.Authenticate())
	}

	// Month routes
	months := api.Group("/months")
	months.GET("", monthHandler.ListMonths)
	months.GET("/:month", monthHandler.GetMonth)
	months.GET("/:month/summary", monthHandler.GetSummary)
	months.GET("/:month/totals", monthHandler.GetTotals)
	months.GET("/:month/calendar", monthHandler.GetCalendar)

	// Fixed expense, variable expense and tax routes
	months.GET("/:month/fixed-expenses", expenseHandler.ListFixedExpenses)
	months.POST("/:month/fixed-expenses", expenseHandler.CreateFixedExpense)
	months.DELETE("/:month/fixed-expenses/:id", expenseHandler.DeleteFixedExpense)
	months.GET("/:month/variable-expenses", expenseHandler.ListVariableExpenses)
	months.POST("/:month/variable-expenses", expenseHandler.CreateVariableExpense)
	months.DELETE("/:month/variable-expenses/:id", expenseHandler.DeleteVariableExpense)
	months.GET("/:month/taxes", expenseHandler.ListTaxes)
	months.POST("/:month/taxes", expenseHandler.CreateTax)
	months.DELETE("/:month/taxes/:id", expenseHandler.DeleteTax)

	// Day and transaction routes
	days := api.Group("/days")
	days.GET("/:date", transactionHandler.GetDay)
	days.POST("/:date/transactions", transactionHandler.CreateTransaction)
	days.PUT("/:date/transactions/:id", transactionHandler.UpdateTransaction)
	days.DELETE("/:date/transactions/:id", transactionHandler.DeleteTransaction)
	days.POST("/:date/transactions/:id/receipt", receiptHandler.UploadReceipt)
	days.GET("/:date/transactions/:id/receipt", receiptHandler.GetReceiptURLs)
	days.DELETE("/:date/transactions/:id/receipt", receiptHandler.DeleteReceipt)

	// Bill routes
	bills := api.Group("/bills")
	bills.GET("", billHandler.ListBills)
	bills.POST("", billHandler.CreateBill)
	bills.PATCH("/:id/toggle-status", billHandler.ToggleBillStatus)
	bills.DELETE("/:id", billHandler.DeleteBill)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
}
