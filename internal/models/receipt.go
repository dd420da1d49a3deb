package models

import (
	"encoding/json"
	"strings"

	"github.com/jinzhu/gorm"
)

// Receipt is a purchase receipt as entered by the operator. Amount and
// Date stay free-text the way they were entered; ItemsJSON carries the
// structured line items parsed out of the receipt body.
type Receipt struct {
	gorm.Model
	Vendor    string `json:"vendor"`
	Amount    string `json:"amount"`
	Method    string `json:"method"`
	Date      string `json:"date"`
	Invoice   string `json:"invoice"`
	ItemsJSON string `json:"-" gorm:"type:text"`
	ImageURL  string `json:"imageUrl"`
	// Transient fields (ignored by GORM)
	Items []ReceiptItem `json:"items" gorm:"-"`
}

// TableName sets the table name for Receipt
func (Receipt) TableName() string {
	return "receipts"
}

// ReceiptItem is one purchased line item. Price stays a string because
// it is user-entered; it is parsed to a decimal at catalog ingestion.
type ReceiptItem struct {
	Name  string `json:"name"`
	Size  string `json:"size"`
	Price string `json:"price"`
}

// GetItems returns the deserialized line items
func (r *Receipt) GetItems() ([]ReceiptItem, error) {
	if len(r.Items) > 0 {
		return r.Items, nil
	}
	var items []ReceiptItem
	if r.ItemsJSON == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(r.ItemsJSON), &items); err != nil {
		return nil, err
	}
	r.Items = items
	return items, nil
}

// SetItems serializes the line items for storage
func (r *Receipt) SetItems(items []ReceiptItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	r.ItemsJSON = string(data)
	r.Items = items
	return nil
}

// ParseItemLines splits free-form receipt text into line items. Each
// line has the shape "Name: Size: Price"; missing parts stay empty and
// blank lines are dropped.
func ParseItemLines(text string) []ReceiptItem {
	var items []ReceiptItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 3)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		item := ReceiptItem{Name: parts[0]}
		if len(parts) > 1 {
			item.Size = parts[1]
		}
		if len(parts) > 2 {
			item.Price = parts[2]
		}
		items = append(items, item)
	}
	return items
}
