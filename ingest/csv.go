// Package ingest reads the sales CSV into normalized records at startup.
package ingest

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"sales-dashboard/models"
)

// Load reads the CSV at path and returns the normalized record set. A
// missing file is not an error: it logs a warning and returns an empty
// dataset so the service starts in a valid zero-record state.
func Load(path string) ([]models.SalesRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("CSV file not found at %s, using empty dataset", path)
			return []models.SalesRecord{}, nil
		}
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", path, err)
	}
	if len(rows) == 0 {
		return []models.SalesRecord{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = normalizeFieldName(name)
	}

	records := make([]models.SalesRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, normalizeRow(header, row))
	}
	return records, nil
}

// normalizeRow maps one CSV row onto the record schema, applying the
// parse-or-null coercion rules for numeric and date fields.
func normalizeRow(header, row []string) models.SalesRecord {
	var r models.SalesRecord
	for i, value := range row {
		if i >= len(header) {
			break
		}
		value = strings.TrimSpace(value)
		switch header[i] {
		case "transactionId":
			r.TransactionID = value
		case "customerId":
			r.CustomerID = value
		case "customerName":
			r.CustomerName = value
		case "phoneNumber":
			r.PhoneNumber = value
		case "customerRegion":
			r.CustomerRegion = value
		case "gender":
			r.Gender = value
		case "age":
			r.Age = parseAge(value)
		case "productCategory":
			r.ProductCategory = value
		case "tags":
			r.Tags = parseTags(value)
		case "quantity":
			r.Quantity = parseNumber(value)
		case "pricePerUnit":
			r.PricePerUnit = parseNumber(value)
		case "discountPercentage":
			r.DiscountPercentage = parseNumber(value)
		case "totalAmount":
			r.TotalAmount = parseNumber(value)
		case "finalAmount":
			r.FinalAmount = parseNumber(value)
		case "paymentMethod":
			r.PaymentMethod = value
		case "date":
			r.Date = parseDate(value)
		}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return r
}

// normalizeFieldName converts a CSV header like "Customer Name" to the
// camelCase key "customerName".
func normalizeFieldName(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	var b strings.Builder
	for i, word := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(word))
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, b.String())
	return cleaned
}

func parseNumber(value string) *float64 {
	if value == "" {
		return nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &n
}

func parseAge(value string) *int {
	n := parseNumber(value)
	if n == nil {
		return nil
	}
	age := int(*n)
	return &age
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func parseTags(value string) []string {
	tags := []string{}
	for _, tag := range strings.Split(value, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
