package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

// budgetWindow returns a JSON fragment for a budget window around now.
func budgetWindow() string {
	now := time.Now()
	start := now.AddDate(0, 0, -7).Format(time.RFC3339)
	end := now.AddDate(0, 0, 7).Format(time.RFC3339)
	return fmt.Sprintf(`"start_date":%q,"end_date":%q`, start, end)
}

func TestBudgetFlow_SpendTracking(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "budget@test.com", "password123")
	categoryID := app.createCategory(t, token, "Groceries", "expense")

	// Step 1: Create a $500.00 monthly budget.
	rec := app.request("POST", "/api/v1/budgets",
		fmt.Sprintf(`{"category_id":%q,"name":"Monthly Groceries","amount":50000,"period":"monthly",%s}`, categoryID, budgetWindow()), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	budget := result["budget"].(map[string]interface{})
	budgetID := budget["id"].(string)

	// Step 2: Record two expenses in the category.
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"expense","amount":12000,"description":"Weekly shop"}`, categoryID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"expense","amount":8000,"description":"Top-up"}`, categoryID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 3: Budget view reflects the spend: 20000 spent, 30000 remaining, 40%.
	rec = app.request("GET", "/api/v1/budgets/"+budgetID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	budget = result["budget"].(map[string]interface{})
	if budget["spent"].(float64) != 20000 {
		t.Errorf("expected spent 20000, got %v", budget["spent"])
	}
	if budget["remaining"].(float64) != 30000 {
		t.Errorf("expected remaining 30000, got %v", budget["remaining"])
	}
	if budget["percentage"].(float64) != 40 {
		t.Errorf("expected percentage 40, got %v", budget["percentage"])
	}

	// Step 4: Income in the same category does not move the budget.
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"income","amount":99999}`, categoryID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/budgets/"+budgetID, "", token)
	result = parseJSON(t, rec)
	budget = result["budget"].(map[string]interface{})
	if budget["spent"].(float64) != 20000 {
		t.Errorf("expected spent unchanged at 20000, got %v", budget["spent"])
	}
}

func TestBudgetFlow_CategoryDeletionGuards(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "guards@test.com", "password123")
	categoryID := app.createCategory(t, token, "Protected", "expense")

	rec := app.request("POST", "/api/v1/budgets",
		fmt.Sprintf(`{"category_id":%q,"name":"Guard","amount":1000,"period":"weekly",%s}`, categoryID, budgetWindow()), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	budgetID := result["budget"].(map[string]interface{})["id"].(string)

	// Deleting the category while a budget references it fails.
	rec = app.request("DELETE", "/api/v1/categories/"+categoryID, "", token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	// After removing the budget, deletion succeeds.
	rec = app.request("DELETE", "/api/v1/budgets/"+budgetID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("DELETE", "/api/v1/categories/"+categoryID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBudgetFlow_UserScoping(t *testing.T) {
	app := setupApp(t)
	token1, _ := app.registerUser(t, "owner@test.com", "password123")
	token2, _ := app.registerUser(t, "intruder@test.com", "password123")
	categoryID := app.createCategory(t, token1, "Private", "expense")

	rec := app.request("POST", "/api/v1/budgets",
		fmt.Sprintf(`{"category_id":%q,"name":"Mine","amount":1000,"period":"monthly",%s}`, categoryID, budgetWindow()), token1)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	budgetID := parseJSON(t, rec)["budget"].(map[string]interface{})["id"].(string)

	// Another user cannot see or delete the budget.
	rec = app.request("GET", "/api/v1/budgets/"+budgetID, "", token2)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for cross-user read, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/api/v1/budgets/"+budgetID, "", token2)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for cross-user delete, got %d", rec.Code)
	}
}
