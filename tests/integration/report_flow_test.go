package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

// seedReportData creates a category with one income and two expenses dated now,
// returning the category ID.
func seedReportData(t *testing.T, app *testApp, token string) string {
	t.Helper()
	incomeCategory := app.createCategory(t, token, "Salary", "income")
	expenseCategory := app.createCategory(t, token, "Dining", "expense")

	rec := app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"income","amount":300000,"description":"Paycheck"}`, incomeCategory), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed income failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"expense","amount":4500,"description":"Lunch"}`, expenseCategory), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed expense failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"expense","amount":5500,"description":"Dinner"}`, expenseCategory), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed expense failed: %d %s", rec.Code, rec.Body.String())
	}
	return expenseCategory
}

func TestReportFlow_MonthlyReport(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "monthly@test.com", "password123")
	seedReportData(t, app, token)

	now := time.Now()
	rec := app.request("GET",
		fmt.Sprintf("/api/v1/reports/monthly?year=%d&month=%d", now.Year(), int(now.Month())), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	result := parseJSON(t, rec)
	report := result["report"].(map[string]interface{})
	summary := report["summary"].(map[string]interface{})
	if summary["total_income"].(float64) != 300000 {
		t.Errorf("expected income 300000, got %v", summary["total_income"])
	}
	if summary["total_expense"].(float64) != 10000 {
		t.Errorf("expected expense 10000, got %v", summary["total_expense"])
	}
	if summary["balance"].(float64) != 290000 {
		t.Errorf("expected balance 290000, got %v", summary["balance"])
	}
	if summary["transaction_count"].(float64) != 3 {
		t.Errorf("expected 3 transactions, got %v", summary["transaction_count"])
	}

	breakdown := report["category_breakdown"].([]interface{})
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 breakdown entries, got %d", len(breakdown))
	}
}

func TestReportFlow_BudgetStatusReport(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "status@test.com", "password123")
	categoryID := app.createCategory(t, token, "Entertainment", "expense")

	// A $100.00 budget with the default 80% threshold.
	rec := app.request("POST", "/api/v1/budgets",
		fmt.Sprintf(`{"category_id":%q,"name":"Fun Money","amount":10000,"period":"monthly",%s}`, categoryID, budgetWindow()), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create budget failed: %d %s", rec.Code, rec.Body.String())
	}

	// Spend $85.00 to cross the warning threshold.
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"expense","amount":8500}`, categoryID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/reports/budgets", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	budgets := parseJSON(t, rec)["budgets"].([]interface{})
	if len(budgets) != 1 {
		t.Fatalf("expected 1 budget entry, got %d", len(budgets))
	}
	entry := budgets[0].(map[string]interface{})
	if entry["status"] != "warning" {
		t.Errorf("expected status warning, got %v", entry["status"])
	}
	if entry["spent"].(float64) != 8500 {
		t.Errorf("expected spent 8500, got %v", entry["spent"])
	}

	// Push past the limit and confirm the status flips to exceeded.
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"expense","amount":2000}`, categoryID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/reports/budgets", "", token)
	budgets = parseJSON(t, rec)["budgets"].([]interface{})
	entry = budgets[0].(map[string]interface{})
	if entry["status"] != "exceeded" {
		t.Errorf("expected status exceeded, got %v", entry["status"])
	}
}

func TestReportFlow_TrendReport(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "trend@test.com", "password123")
	seedReportData(t, app, token)

	rec := app.request("GET", "/api/v1/reports/trends?months=3", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	trends := parseJSON(t, rec)["trends"].([]interface{})
	if len(trends) != 3 {
		t.Fatalf("expected 3 trend points, got %d", len(trends))
	}

	// The last point is the current month and carries the seeded totals.
	last := trends[2].(map[string]interface{})
	if last["income"].(float64) != 300000 {
		t.Errorf("expected income 300000 in current month, got %v", last["income"])
	}
	if last["expense"].(float64) != 10000 {
		t.Errorf("expected expense 10000 in current month, got %v", last["expense"])
	}
}

func TestExportFlow_TransactionsCSV(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "export@test.com", "password123")
	seedReportData(t, app, token)

	rec := app.request("GET", "/api/v1/export/transactions?format=csv", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["format"] != "csv" {
		t.Errorf("expected format csv, got %v", result["format"])
	}
	if result["count"].(float64) != 3 {
		t.Errorf("expected 3 records, got %v", result["count"])
	}
	data := result["data"].(string)
	if !strings.HasPrefix(data, "ID,Date,Type,Category,Amount,Description,Created At") {
		t.Errorf("unexpected CSV header: %q", strings.SplitN(data, "\n", 2)[0])
	}
	if !strings.Contains(data, "Paycheck") {
		t.Error("expected CSV to contain the seeded income description")
	}
}

func TestExportFlow_FullData(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "full@test.com", "password123")
	categoryID := seedReportData(t, app, token)

	rec := app.request("POST", "/api/v1/budgets",
		fmt.Sprintf(`{"category_id":%q,"name":"Dining Out","amount":20000,"period":"monthly",%s}`, categoryID, budgetWindow()), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create budget failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/export/all", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	stats := result["stats"].(map[string]interface{})
	if stats["transaction_count"].(float64) != 3 {
		t.Errorf("expected 3 transactions, got %v", stats["transaction_count"])
	}
	if stats["budget_count"].(float64) != 1 {
		t.Errorf("expected 1 budget, got %v", stats["budget_count"])
	}
	if stats["category_count"].(float64) != 2 {
		t.Errorf("expected 2 categories, got %v", stats["category_count"])
	}
	user := result["user"].(map[string]interface{})
	if user["email"] != "full@test.com" {
		t.Errorf("expected exporting user's email, got %v", user["email"])
	}
}
