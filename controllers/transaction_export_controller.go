package controllers

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
)

// salesReportWindow resolves a period query param into a [start, end] range.
func salesReportWindow(period string) (time.Time, time.Time, bool) {
	now := time.Now()
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		return start, end, true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		start := end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return start, end, true
	case "month":
		start := now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		end := now.Add(24 * time.Hour)
		return start, end, true
	}
	return time.Time{}, time.Time{}, false
}

type salesSummary struct {
	TotalAttempts int
	TotalPaid     int
	TotalFailed   int
	TotalPending  int
	GrossRevenue  int
	TotalBuyers   int
}

func summarizeTransactions(transactions []models.Transaction) salesSummary {
	var summary salesSummary
	buyerSet := make(map[string]bool)
	for _, t := range transactions {
		summary.TotalAttempts++
		switch t.Status {
		case models.TransactionStatusPaid:
			summary.TotalPaid++
			summary.GrossRevenue += t.Price
			buyerSet[strings.ToLower(t.BuyerEmail)] = true
		case models.TransactionStatusFailed:
			summary.TotalFailed++
		default:
			summary.TotalPending++
		}
	}
	summary.TotalBuyers = len(buyerSet)
	return summary
}

// Admin: Download sales report as Excel
func DownloadSalesReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadSalesReportExcel called")

	period := c.DefaultQuery("period", "day")
	utils.LogDebug("Generating Excel report for period: %s", period)

	startDate, endDate, ok := salesReportWindow(period)
	if !ok {
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var transactions []models.Transaction
	if err := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("Product").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions: %v", err)
		utils.InternalServerError(c, "Failed to fetch transactions", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d transactions for Excel report", len(transactions))

	summary := summarizeTransactions(transactions)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(utils.AppName + " - Sales Report")
	periodRow := sheet.AddRow()
	periodRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	headers := []string{"Transaction ID", "Product", "Buyer Email", "Buyer Name", "Date", "Amount", "Payment Method", "Status"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, t := range transactions {
		row := sheet.AddRow()
		row.AddCell().SetString(t.ID)
		row.AddCell().SetString(t.Product.Title)
		row.AddCell().SetString(t.BuyerEmail)
		row.AddCell().SetString(t.BuyerName)
		row.AddCell().SetString(t.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(t.Price)
		row.AddCell().SetString(t.PaymentMethod)
		row.AddCell().SetString(t.Status)
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Attempts", fmt.Sprintf("%d", summary.TotalAttempts)},
		{"Paid", fmt.Sprintf("%d", summary.TotalPaid)},
		{"Failed", fmt.Sprintf("%d", summary.TotalFailed)},
		{"Pending", fmt.Sprintf("%d", summary.TotalPending)},
		{"Unique Buyers", fmt.Sprintf("%d", summary.TotalBuyers)},
		{"Gross Revenue", utils.FormatRupiah(summary.GrossRevenue)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated Excel report for period %s", period)
}

// Admin: Download sales report as PDF
func DownloadSalesReportPDF(c *gin.Context) {
	utils.LogInfo("DownloadSalesReportPDF called")

	period := c.DefaultQuery("period", "day")
	utils.LogDebug("Generating PDF report for period: %s", period)

	startDate, endDate, ok := salesReportWindow(period)
	if !ok {
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var transactions []models.Transaction
	if err := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("Product").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions: %v", err)
		utils.InternalServerError(c, "Failed to fetch transactions", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d transactions for PDF report", len(transactions))

	summary := summarizeTransactions(transactions)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, utils.AppName+" - Sales Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Period: "+strings.ToUpper(period)+" | "+startDate.Format("2006-01-02")+" to "+endDate.Format("2006-01-02"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(65, 8, "Transaction ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(55, 8, "Product", "1", 0, "C", false, 0, "")
	pdf.CellFormat(55, 8, "Buyer Email", "1", 0, "C", false, 0, "")
	pdf.CellFormat(32, 8, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(32, 8, "Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(28, 8, "Status", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, t := range transactions {
		pdf.CellFormat(65, 8, t.ID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 8, t.Product.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 8, t.BuyerEmail, "1", 0, "L", false, 0, "")
		pdf.CellFormat(32, 8, t.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(32, 8, utils.FormatRupiah(t.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 8, t.Status, "1", 1, "C", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	summaryLines := []string{
		fmt.Sprintf("Total Attempts: %d", summary.TotalAttempts),
		fmt.Sprintf("Paid: %d | Failed: %d | Pending: %d", summary.TotalPaid, summary.TotalFailed, summary.TotalPending),
		fmt.Sprintf("Unique Buyers: %d", summary.TotalBuyers),
		"Gross Revenue: " + utils.FormatRupiah(summary.GrossRevenue),
	}
	for _, line := range summaryLines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales_report_%s.pdf", period))
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	c.Data(200, "application/pdf", buf.Bytes())
	utils.LogInfo("Successfully generated PDF report for period %s", period)
}

// Admin: Download a single transaction invoice as PDF
func DownloadTransactionInvoice(c *gin.Context) {
	utils.LogInfo("DownloadTransactionInvoice called")

	var transaction models.Transaction
	if err := config.DB.Preload("Product").Where("id = ?", c.Param("id")).First(&transaction).Error; err != nil {
		utils.LogError("Transaction not found for invoice: %s", c.Param("id"))
		utils.NotFound(c, "Transaction not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.AppName)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(100, 8, "Digital products storefront")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(100, 8, "Transaction ID: "+transaction.ID)
	pdf.Ln(7)
	pdf.Cell(100, 8, "Date: "+transaction.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(7)
	pdf.Cell(50, 8, "Status: "+transaction.Status)
	if transaction.PaymentMethod != "" {
		pdf.Cell(60, 8, "Payment Method: "+transaction.PaymentMethod)
	}
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	if transaction.BuyerName != "" {
		pdf.Cell(100, 8, transaction.BuyerName)
		pdf.Ln(7)
	}
	pdf.Cell(100, 8, transaction.BuyerEmail)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 8, "Product", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(120, 8, transaction.Product.Title, "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, utils.FormatRupiah(transaction.Price), "1", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 10, "Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 10, utils.FormatRupiah(transaction.Price), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 10, "Thank you for your purchase!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to write invoice PDF: %v", err)
		utils.InternalServerError(c, "Failed to write invoice PDF", err.Error())
		return
	}
	c.Header("Content-Disposition", "attachment; filename=invoice_"+transaction.ID+".pdf")
	c.Data(200, "application/pdf", buf.Bytes())
	utils.LogInfo("Successfully generated invoice for transaction %s", transaction.ID)
}
