package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors         int
	CheckoutsStarted    int
	GatewayFailures     int
	CallbacksReceived   int
	SignatureFailures   int
	TransactionsPaid    int
	TransactionsFailed  int
	DuplicateDeliveries int
	EmailFailures       int
	BuyerActivities     map[string]int
	ErrorPatterns       map[string]int
}

func main() {
	// Get today's date for log file names
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	// Initialize stats
	stats := &LogStats{
		BuyerActivities: make(map[string]int),
		ErrorPatterns:   make(map[string]int),
	}

	// Analyze error logs
	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)

	// Analyze info logs
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	// Print report
	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		// Count gateway creation failures
		if strings.Contains(line, "Gateway payment creation failed") {
			stats.GatewayFailures++
		}

		// Count rejected callback signatures
		if strings.Contains(line, "Callback signature verification failed") {
			stats.SignatureFailures++
		}

		// Count notification failures
		if strings.Contains(line, "Failed to send invoice email") ||
			strings.Contains(line, "Failed to send admin sale alert") {
			stats.EmailFailures++
		}

		// Extract error patterns
		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "Checkout called") {
			stats.CheckoutsStarted++
		}

		if strings.Contains(line, "HandleOYCallback called") {
			stats.CallbacksReceived++
		}

		if strings.Contains(line, "moved to PAID") {
			stats.TransactionsPaid++
		}
		if strings.Contains(line, "moved to FAILED") {
			stats.TransactionsFailed++
		}

		// Redelivered callbacks short-circuit with a skip message
		if strings.Contains(line, "skipping") {
			stats.DuplicateDeliveries++
		}

		if strings.Contains(line, "Invoice email sent to") {
			extractBuyerActivity(line, stats)
		}
	}
}

func extractBuyerActivity(line string, stats *LogStats) {
	// Extract email from log line
	emailRegex := regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	if email := emailRegex.FindString(line); email != "" {
		stats.BuyerActivities[email]++
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	// Extract the main error message
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Checkout Statistics:")
	fmt.Printf("   Checkouts Started: %d\n", stats.CheckoutsStarted)
	fmt.Printf("   Gateway Failures: %d\n", stats.GatewayFailures)

	fmt.Println("\n2. Callback Statistics:")
	fmt.Printf("   Callbacks Received: %d\n", stats.CallbacksReceived)
	fmt.Printf("   Signature Rejections: %d\n", stats.SignatureFailures)
	fmt.Printf("   Duplicate Deliveries: %d\n", stats.DuplicateDeliveries)
	fmt.Printf("   Transactions Paid: %d\n", stats.TransactionsPaid)
	fmt.Printf("   Transactions Failed: %d\n", stats.TransactionsFailed)

	fmt.Println("\n3. Notification Statistics:")
	fmt.Printf("   Email Failures: %d\n", stats.EmailFailures)

	fmt.Println("\n4. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n5. Most Active Buyers:")
	printTopBuyers(stats.BuyerActivities, 5)

	fmt.Println("\n6. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopBuyers(buyers map[string]int, limit int) {
	type buyerActivity struct {
		email string
		count int
	}

	var activities []buyerActivity
	for email, count := range buyers {
		activities = append(activities, buyerActivity{email, count})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].count > activities[j].count
	})

	for i, activity := range activities {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d purchases\n", activity.email, activity.count)
	}
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		error string
		count int
	}

	var errorList []errorCount
	for err, count := range errors {
		errorList = append(errorList, errorCount{err, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, err := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", err.error, err.count)
	}
}
