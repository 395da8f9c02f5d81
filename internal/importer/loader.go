package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"foodshare-backend/internal/claim"
	"foodshare-backend/internal/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type Table string

const (
	TableProviders    Table = "providers"
	TableReceivers    Table = "receivers"
	TableFoodListings Table = "food_listings"
	TableClaims       Table = "claims"
)

// Tables in load order. Each table is loaded independently; there is no
// transaction spanning the batch (a best-effort import, not a migration).
var Tables = []Table{TableProviders, TableReceivers, TableFoodListings, TableClaims}

// ReadRows parses the uploaded file into raw rows. XLSX workbooks are read
// from their first sheet, everything else is treated as CSV.
func ReadRows(filename string, r io.Reader) ([][]string, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		wb, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("workbook could not be read: %w", err)
		}
		defer wb.Close()

		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		return wb.GetRows(sheets[0])
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr.ReadAll()
}

// Load replaces the entire contents of table with the given rows (header
// row first). Parse or validation errors abort before anything is written;
// the delete and insert then run in one transaction, so a single table is
// replaced wholesale or not at all.
func Load(db *gorm.DB, table Table, rows [][]string) (int, error) {
	if len(rows) == 0 {
		return 0, &models.ValidationError{Field: "file", Reason: "is empty"}
	}
	h := indexHeader(rows[0])
	data := rows[1:]

	switch table {
	case TableProviders:
		recs, err := parseProviders(h, data)
		if err != nil {
			return 0, err
		}
		return len(recs), replaceAll(db, &models.Provider{}, recs, len(recs))
	case TableReceivers:
		recs, err := parseReceivers(h, data)
		if err != nil {
			return 0, err
		}
		return len(recs), replaceAll(db, &models.Receiver{}, recs, len(recs))
	case TableFoodListings:
		recs, err := parseFoodListings(h, data)
		if err != nil {
			return 0, err
		}
		return len(recs), replaceAll(db, &models.FoodListing{}, recs, len(recs))
	case TableClaims:
		recs, err := parseClaims(h, data)
		if err != nil {
			return 0, err
		}
		return len(recs), replaceAll(db, &models.Claim{}, recs, len(recs))
	}
	return 0, fmt.Errorf("unknown table %q", table)
}

func replaceAll(db *gorm.DB, model any, recs any, n int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		return tx.CreateInBatches(recs, 200).Error
	})
}

// ---- header / cell helpers ----

type header map[string]int

func indexHeader(cols []string) header {
	h := header{}
	for i, c := range cols {
		h[strings.ToLower(strings.TrimSpace(c))] = i
	}
	return h
}

// cell returns the first matching column's trimmed value. Column names are
// matched case-insensitively so the original exports (Provider_ID, Name,
// ...) and plain lowercase headers both work.
func (h header) cell(row []string, names ...string) string {
	for _, n := range names {
		if i, ok := h[n]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
	}
	return ""
}

func parseID(s string) (uint, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// parseRef treats blank and 0 as "no reference".
func parseRef(s string) (*uint, error) {
	id, err := parseID(s)
	if err != nil || id == 0 {
		return nil, err
	}
	return &id, nil
}

// ---- per-table row parsers ----

func parseProviders(h header, rows [][]string) ([]models.Provider, error) {
	recs := make([]models.Provider, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		id, err := parseID(h.cell(row, "provider_id", "id"))
		if err != nil {
			return nil, rowErr(i, "provider_id", "must be a number")
		}
		name := h.cell(row, "name")
		if name == "" {
			return nil, rowErr(i, "name", "is required")
		}
		recs = append(recs, models.Provider{
			ID:      id,
			Name:    name,
			Type:    h.cell(row, "type"),
			Address: h.cell(row, "address"),
			City:    h.cell(row, "city"),
			Contact: h.cell(row, "contact"),
		})
	}
	return recs, nil
}

func parseReceivers(h header, rows [][]string) ([]models.Receiver, error) {
	recs := make([]models.Receiver, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		id, err := parseID(h.cell(row, "receiver_id", "id"))
		if err != nil {
			return nil, rowErr(i, "receiver_id", "must be a number")
		}
		name := h.cell(row, "name")
		if name == "" {
			return nil, rowErr(i, "name", "is required")
		}
		recs = append(recs, models.Receiver{
			ID:      id,
			Name:    name,
			Type:    h.cell(row, "type"),
			City:    h.cell(row, "city"),
			Contact: h.cell(row, "contact"),
		})
	}
	return recs, nil
}

func parseFoodListings(h header, rows [][]string) ([]models.FoodListing, error) {
	recs := make([]models.FoodListing, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		id, err := parseID(h.cell(row, "food_id", "id"))
		if err != nil {
			return nil, rowErr(i, "food_id", "must be a number")
		}
		name := h.cell(row, "food_name", "name")
		if name == "" {
			return nil, rowErr(i, "food_name", "is required")
		}

		qty := 0
		if s := h.cell(row, "quantity"); s != "" {
			qty, err = strconv.Atoi(s)
			if err != nil {
				return nil, rowErr(i, "quantity", "must be a number")
			}
		}
		if qty < 0 {
			return nil, rowErr(i, "quantity", "must not be negative")
		}

		var expiry *time.Time
		if s := h.cell(row, "expiry_date"); s != "" {
			t, err := time.Parse("2006-01-02", s)
			if err != nil {
				return nil, rowErr(i, "expiry_date", "must be YYYY-MM-DD")
			}
			expiry = &t
		}

		providerID, err := parseRef(h.cell(row, "provider_id"))
		if err != nil {
			return nil, rowErr(i, "provider_id", "must be a number")
		}

		recs = append(recs, models.FoodListing{
			ID:           id,
			Name:         name,
			Quantity:     qty,
			ExpiryDate:   expiry,
			ProviderID:   providerID,
			ProviderType: h.cell(row, "provider_type"),
			Location:     h.cell(row, "location"),
			FoodType:     h.cell(row, "food_type"),
			MealType:     h.cell(row, "meal_type"),
		})
	}
	return recs, nil
}

func parseClaims(h header, rows [][]string) ([]models.Claim, error) {
	now := time.Now()
	recs := make([]models.Claim, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		id, err := parseID(h.cell(row, "claim_id", "id"))
		if err != nil {
			return nil, rowErr(i, "claim_id", "must be a number")
		}

		status := models.ClaimStatus(h.cell(row, "status"))
		if !status.Valid() {
			return nil, rowErr(i, "status", "must be Pending, Completed or Cancelled")
		}

		ts, err := claim.NormalizeTimestamp(h.cell(row, "timestamp"), now)
		if err != nil {
			return nil, rowErr(i, "timestamp", "must be ISO-8601")
		}

		foodID, err := parseRef(h.cell(row, "food_id"))
		if err != nil {
			return nil, rowErr(i, "food_id", "must be a number")
		}
		receiverID, err := parseRef(h.cell(row, "receiver_id"))
		if err != nil {
			return nil, rowErr(i, "receiver_id", "must be a number")
		}

		recs = append(recs, models.Claim{
			ID:         id,
			FoodID:     foodID,
			ReceiverID: receiverID,
			Status:     status,
			Timestamp:  ts,
		})
	}
	return recs, nil
}

// rowErr labels the failing data row (1-based, header excluded).
func rowErr(i int, field, reason string) error {
	return &models.ValidationError{
		Field:  fmt.Sprintf("row %d: %s", i+1, field),
		Reason: reason,
	}
}
