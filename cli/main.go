package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// Model defines the application state
type Model struct {
	mainMenu       list.Model
	ingredientView table.Model
	receiptList    list.Model
	recipeList     list.Model
	recipeDetail   Recipe
	report         *Report
	spinner        spinner.Model
	client         *ApiClient
	currentView    string
	status         string
	error          string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// Initialize the model
func initialModel() Model {
	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Initialize main menu items
	items := []list.Item{
		item{title: "Receipts", desc: "Browse stored purchase receipts"},
		item{title: "Ingredients", desc: "View the price catalog with per-unit prices"},
		item{title: "Recipes", desc: "View recipes and their computed prices"},
		item{title: "Weekly Report", desc: "Receipts and spend for the current week"},
		item{title: "Exit", desc: "Exit the application"},
	}

	// Initialize main menu
	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "Bakeshop CLI"

	// Initialize ingredient table
	columns := []table.Column{
		{Title: "Ingredient", Width: 20},
		{Title: "Package", Width: 14},
		{Title: "Price", Width: 8},
		{Title: "Per Cup", Width: 8},
		{Title: "Per Tbsp", Width: 8},
	}
	ingredientTable := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	// Initialize list views
	receiptList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	receiptList.Title = "Receipts"
	recipeList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	recipeList.Title = "Recipes"

	return Model{
		mainMenu:       mainMenu,
		ingredientView: ingredientTable,
		receiptList:    receiptList,
		recipeList:     recipeList,
		spinner:        s,
		client:         NewApiClient(),
		currentView:    "main",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if m.currentView == "main" {
				selected, ok := m.mainMenu.SelectedItem().(item)
				if ok {
					switch selected.title {
					case "Exit":
						return m, tea.Quit
					case "Receipts":
						m.currentView = "receipts"
						return m, fetchReceipts(m.client)
					case "Ingredients":
						m.currentView = "ingredients"
						return m, fetchIngredients(m.client)
					case "Recipes":
						m.currentView = "recipes"
						return m, fetchRecipes(m.client)
					case "Weekly Report":
						m.currentView = "report"
						return m, fetchReport(m.client)
					}
				}
			} else if m.currentView == "recipes" {
				if selected, ok := m.recipeList.SelectedItem().(recipeItem); ok {
					m.currentView = "recipe_detail"
					m.recipeDetail = selected.recipe
				}
			} else if m.currentView == "recipe_detail" {
				m.currentView = "recipes"
			}
		case "esc":
			if m.currentView == "recipe_detail" {
				m.currentView = "recipes"
			} else if m.currentView != "main" {
				m.currentView = "main"
				m.error = ""
				m.status = ""
			}
		case "r":
			if m.currentView == "ingredients" {
				return m, refreshCatalog(m.client)
			}
		}
	case receiptsMsg:
		m.receiptList.SetItems(convertReceiptsToItems(msg.receipts))
		return m, nil
	case ingredientsMsg:
		m.ingredientView.SetRows(convertIngredientsToRows(msg.ingredients))
		return m, nil
	case recipesMsg:
		m.recipeList.SetItems(convertRecipesToItems(msg.recipes))
		return m, nil
	case reportMsg:
		m.report = msg.report
		return m, nil
	case refreshedMsg:
		m.status = successStyle.Render(fmt.Sprintf(
			"Catalog rebuilt: %d inserted, %d replaced, %d discarded",
			msg.summary.Inserted, msg.summary.Replaced, msg.summary.Discarded))
		return m, fetchIngredients(m.client)
	case errorMsg:
		m.error = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "ingredients":
		m.ingredientView, cmd = m.ingredientView.Update(msg)
	case "receipts":
		m.receiptList, cmd = m.receiptList.Update(msg)
	case "recipes":
		m.recipeList, cmd = m.recipeList.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View())
	case "ingredients":
		help := "\nPress 'r' to rebuild the catalog from receipts, 'esc' to go back\n"
		if m.status != "" {
			help += m.status + "\n"
		}
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(titleStyle.Render("Price Catalog") + "\n\n" + m.ingredientView.View() + help)
	case "receipts":
		help := "\nPress 'esc' to go back\n"
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(titleStyle.Render("Receipts") + "\n\n" + m.receiptList.View() + help)
	case "recipes":
		help := "\nPress 'enter' to view pricing details, 'esc' to go back\n"
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(titleStyle.Render("Recipes") + "\n\n" + m.recipeList.View() + help)
	case "recipe_detail":
		return docStyle.Render(recipeDetailView(m.recipeDetail))
	case "report":
		if m.error != "" {
			return docStyle.Render(errorStyle.Render(m.error) + "\nPress 'esc' to go back")
		}
		return docStyle.Render(reportView(m.report))
	default:
		return "Loading..."
	}
}

// Custom message types for the tea.Model
type receiptsMsg struct {
	receipts []Receipt
}

type ingredientsMsg struct {
	ingredients []Ingredient
}

type recipesMsg struct {
	recipes []Recipe
}

type reportMsg struct {
	report *Report
}

type refreshedMsg struct {
	summary IngestSummary
}

type errorMsg struct {
	err string
}

// recipeItem represents a recipe in the list
type recipeItem struct {
	recipe Recipe
}

func (i recipeItem) Title() string { return i.recipe.Name }
func (i recipeItem) Description() string {
	return fmt.Sprintf("material $%.2f - retail $%.2f - store $%.2f",
		i.recipe.MaterialCost, i.recipe.RetailCost, i.recipe.StorePrice)
}
func (i recipeItem) FilterValue() string { return i.recipe.Name }

// fetchReceipts retrieves receipts from the API
func fetchReceipts(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		receipts, err := client.GetReceipts()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching receipts: %v", err)}
		}
		return receiptsMsg{receipts: receipts}
	}
}

// fetchIngredients retrieves the price catalog from the API
func fetchIngredients(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		ingredients, err := client.GetIngredients()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching ingredients: %v", err)}
		}
		return ingredientsMsg{ingredients: ingredients}
	}
}

// fetchRecipes retrieves recipes from the API
func fetchRecipes(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		recipes, err := client.GetRecipes()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching recipes: %v", err)}
		}
		return recipesMsg{recipes: recipes}
	}
}

// fetchReport retrieves the current weekly report
func fetchReport(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		report, err := client.GetReport("", "weekly", "")
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching report: %v", err)}
		}
		return reportMsg{report: report}
	}
}

// refreshCatalog triggers a catalog rebuild
func refreshCatalog(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		summary, err := client.RefreshIngredients()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error rebuilding catalog: %v", err)}
		}
		return refreshedMsg{summary: *summary}
	}
}

// convertReceiptsToItems converts API receipts to list items
func convertReceiptsToItems(receipts []Receipt) []list.Item {
	items := make([]list.Item, len(receipts))
	for i, receipt := range receipts {
		items[i] = item{
			title: fmt.Sprintf("%s - $%s (%s)", receipt.Vendor, receipt.Amount, receipt.Date),
			desc:  fmt.Sprintf("%d items - %s - invoice %s", len(receipt.Items), receipt.Method, receipt.Invoice),
		}
	}
	return items
}

// convertIngredientsToRows converts catalog entries to table rows
func convertIngredientsToRows(ingredients []Ingredient) []table.Row {
	rows := make([]table.Row, len(ingredients))
	for i, ing := range ingredients {
		rows[i] = table.Row{
			ing.Name,
			ing.Size,
			fmt.Sprintf("%.2f", ing.Price),
			formatUnitPrice(ing.CupPrice),
			formatUnitPrice(ing.TablespoonPrice),
		}
	}
	return rows
}

func formatUnitPrice(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", *p)
}

// convertRecipesToItems converts API recipes to list items
func convertRecipesToItems(recipes []Recipe) []list.Item {
	items := make([]list.Item, len(recipes))
	for i, recipe := range recipes {
		items[i] = recipeItem{recipe: recipe}
	}
	return items
}

// recipeDetailView creates a detailed view of a recipe's pricing
func recipeDetailView(recipe Recipe) string {
	view := titleStyle.Render(recipe.Name) + "\n\n"
	if recipe.Description != "" {
		view += recipe.Description + "\n\n"
	}
	view += fmt.Sprintf("Material Cost: $%.2f\n", recipe.MaterialCost)
	view += fmt.Sprintf("Retail Price:  $%.2f\n", recipe.RetailCost)
	view += fmt.Sprintf("Store Price:   $%.2f\n", recipe.StorePrice)
	view += fmt.Sprintf("Batch: %d cookies, %d per tray (%.0f trays, %d left over)\n",
		recipe.NumCookies, recipe.CookiesPerTray, recipe.TraysMade, recipe.RemainingCookies)

	view += "\nIngredients:\n"
	for i, ing := range recipe.Items {
		view += fmt.Sprintf("%d. %s: %s\n", i+1, ing.Name, ing.Size)
	}

	view += "\nPress 'enter' or 'esc' to go back to the list"
	return view
}

// reportView renders a weekly spend report
func reportView(report *Report) string {
	if report == nil {
		return "Loading..."
	}

	view := titleStyle.Render("Weekly Report") + "\n\n"
	if report.Start != "" {
		view += fmt.Sprintf("Window: %s to %s\n", report.Start, report.End)
	}
	view += fmt.Sprintf("Total spend: $%.2f across %d receipts\n", report.Total, len(report.Receipts))

	view += "\nReceipts:\n"
	if len(report.Receipts) == 0 {
		view += "No receipts in this window\n"
	}
	for i, receipt := range report.Receipts {
		view += fmt.Sprintf("%d. %s - $%s (%s)\n", i+1, receipt.Vendor, receipt.Amount, receipt.Date)
	}

	view += "\nPress 'esc' to go back"
	return view
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
