package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// ApiClient handles API requests to the Bakeshop API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("BAKESHOP_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
	}
}

// CheckHealth checks if the API is up and running
func (c *ApiClient) CheckHealth() (bool, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("API health check failed with status code: %d", resp.StatusCode)
	}

	return true, nil
}

// Receipt represents a stored purchase receipt
type Receipt struct {
	ID      uint          `json:"ID"`
	Vendor  string        `json:"vendor"`
	Amount  string        `json:"amount"`
	Method  string        `json:"method"`
	Date    string        `json:"date"`
	Invoice string        `json:"invoice"`
	Items   []ReceiptItem `json:"items"`
}

// ReceiptItem represents one purchased line item
type ReceiptItem struct {
	Name  string `json:"name"`
	Size  string `json:"size"`
	Price string `json:"price"`
}

// Ingredient represents a price catalog entry with derived unit prices
type Ingredient struct {
	ID              uint     `json:"ID"`
	Name            string   `json:"name"`
	Size            string   `json:"size"`
	Price           float64  `json:"price"`
	Cups            float64  `json:"cups"`
	CupPrice        *float64 `json:"cupPrice"`
	TablespoonPrice *float64 `json:"tablespoonPrice"`
	TeaspoonPrice   *float64 `json:"teaspoonPrice"`
}

// Recipe represents a recipe with its cached pricing
type Recipe struct {
	ID               uint         `json:"ID"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Items            []RecipeItem `json:"items"`
	MaterialCost     float64      `json:"materialCost"`
	RetailCost       float64      `json:"retailCost"`
	StorePrice       float64      `json:"storePrice"`
	NumCookies       int          `json:"numCookies"`
	CookiesPerTray   int          `json:"cookiesPerTray"`
	TraysMade        float64      `json:"traysMade"`
	RemainingCookies int          `json:"remainingCookies"`
}

// RecipeItem represents one ingredient line of a recipe
type RecipeItem struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

// Report represents a filtered receipt report
type Report struct {
	Vendor   string    `json:"vendor"`
	Range    string    `json:"range"`
	Receipts []Receipt `json:"receipts"`
	Total    float64   `json:"total"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
	Vendors  []string  `json:"vendors"`
}

// IngestSummary reports a catalog rebuild outcome
type IngestSummary struct {
	Inserted  int `json:"inserted"`
	Replaced  int `json:"replaced"`
	Discarded int `json:"discarded"`
}

func (c *ApiClient) get(path string, out interface{}) error {
	resp, err := c.httpClient.Get(c.BaseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s failed: %s", path, string(body))
	}
	return json.Unmarshal(body, out)
}

func (c *ApiClient) post(path string, in, out interface{}) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return err
		}
	}

	req, err := http.NewRequest("POST", c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("POST %s failed: %s", path, string(body))
	}
	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}

// GetReceipts retrieves all stored receipts
func (c *ApiClient) GetReceipts() ([]Receipt, error) {
	var receipts []Receipt
	if err := c.get("/api/v1/receipts", &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

// CreateReceipt stores a new receipt
func (c *ApiClient) CreateReceipt(receipt map[string]string) (*Receipt, error) {
	var created Receipt
	if err := c.post("/api/v1/receipts", receipt, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetIngredients retrieves the price catalog
func (c *ApiClient) GetIngredients() ([]Ingredient, error) {
	var ingredients []Ingredient
	if err := c.get("/api/v1/ingredients", &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

// RefreshIngredients rebuilds the price catalog from stored receipts
func (c *ApiClient) RefreshIngredients() (*IngestSummary, error) {
	var summary IngestSummary
	if err := c.post("/api/v1/ingredients/refresh", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetRecipes retrieves all recipes
func (c *ApiClient) GetRecipes() ([]Recipe, error) {
	var recipes []Recipe
	if err := c.get("/api/v1/recipes", &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetReport retrieves a receipt report for the given vendor and range
func (c *ApiClient) GetReport(vendor, rng, date string) (*Report, error) {
	q := url.Values{}
	if vendor != "" {
		q.Set("vendor", vendor)
	}
	if rng != "" {
		q.Set("range", rng)
	}
	if date != "" {
		q.Set("date", date)
	}

	var report Report
	if err := c.get("/api/v1/reports?"+q.Encode(), &report); err != nil {
		return nil, err
	}
	return &report, nil
}
