// Package ingest loads the schema store from external CSV sources.
// Parsing is separate from persistence so the row validation is
// testable without a database.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"gorm.io/gorm"

	"inventory-analytics-service/internal/model"
)

// RowError reports a rejected CSV row with its 1-based line number
type RowError struct {
	Row int    `json:"row"`
	Err string `json:"error"`
}

// Result summarizes a bulk load
type Result struct {
	Table   string     `json:"table"`
	Loaded  int        `json:"loaded"`
	Skipped bool       `json:"skipped"`
	Errors  []RowError `json:"errors,omitempty"`
}

// records reads a whole CSV document and maps header names to columns
type records struct {
	cols map[string]int
	rows [][]string
}

func readAll(r io.Reader) (*records, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("empty csv document")
	}
	cols := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		cols[name] = i
	}
	return &records{cols: cols, rows: all[1:]}, nil
}

func (r *records) get(row []string, col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (r *records) getInt(row []string, col string) (int, error) {
	s := r.get(row, col)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not an integer", col, s)
	}
	return v, nil
}

func (r *records) getUint(row []string, col string) (uint, error) {
	v, err := r.getInt(row, col)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("column %s: not a valid id", col)
	}
	return uint(v), nil
}

func (r *records) getFloat(row []string, col string) (float64, error) {
	s := r.get(row, col)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a number", col, s)
	}
	return v, nil
}

func (r *records) getBool(row []string, col string) bool {
	s := r.get(row, col)
	if s == "" {
		return true
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return true
	}
	return v
}

func (r *records) getDate(row []string, col string) *time.Time {
	s := r.get(row, col)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// ParseCategories parses category rows, reporting rejected lines
func ParseCategories(r io.Reader) ([]model.Category, []RowError, error) {
	recs, err := readAll(r)
	if err != nil {
		return nil, nil, err
	}
	var out []model.Category
	var errs []RowError
	for i, row := range recs.rows {
		margin, err := recs.getFloat(row, "average_margin")
		if err != nil {
			errs = append(errs, RowError{Row: i + 2, Err: err.Error()})
			continue
		}
		name := recs.get(row, "name")
		if name == "" {
			errs = append(errs, RowError{Row: i + 2, Err: "name is required"})
			continue
		}
		out = append(out, model.Category{
			Name:          name,
			Description:   recs.get(row, "description"),
			AverageMargin: margin,
			IsActive:      recs.getBool(row, "is_active"),
		})
	}
	return out, errs, nil
}

// ParseSuppliers parses supplier rows, reporting rejected lines
func ParseSuppliers(r io.Reader) ([]model.Supplier, []RowError, error) {
	recs, err := readAll(r)
	if err != nil {
		return nil, nil, err
	}
	var out []model.Supplier
	var errs []RowError
	for i, row := range recs.rows {
		name := recs.get(row, "name")
		if name == "" {
			errs = append(errs, RowError{Row: i + 2, Err: "name is required"})
			continue
		}
		leadDays, err := recs.getInt(row, "delivery_lead_days")
		if err != nil {
			errs = append(errs, RowError{Row: i + 2, Err: err.Error()})
			continue
		}
		rating, err := recs.getFloat(row, "rating")
		if err != nil {
			errs = append(errs, RowError{Row: i + 2, Err: err.Error()})
			continue
		}
		out = append(out, model.Supplier{
			Name:             name,
			ContactPerson:    recs.get(row, "contact_person"),
			Phone:            recs.get(row, "phone"),
			Email:            recs.get(row, "email"),
			City:             recs.get(row, "city"),
			DeliveryLeadDays: leadDays,
			Rating:           rating,
			IsActive:         recs.getBool(row, "is_active"),
		})
	}
	return out, errs, nil
}

// ParseLocations parses location rows, reporting rejected lines
func ParseLocations(r io.Reader) ([]model.Location, []RowError, error) {
	recs, err := readAll(r)
	if err != nil {
		return nil, nil, err
	}
	var out []model.Location
	var errs []RowError
	for i, row := range recs.rows {
		section := recs.get(row, "section")
		if section == "" {
			errs = append(errs, RowError{Row: i + 2, Err: "section is required"})
			continue
		}
		level, err := recs.getInt(row, "level")
		if err != nil {
			errs = append(errs, RowError{Row: i + 2, Err: err.Error()})
			continue
		}
		capacity, err := recs.getInt(row, "max_capacity")
		if err != nil {
			errs = append(errs, RowError{Row: i + 2, Err: err.Error()})
			continue
		}
		out = append(out, model.Location{
			Section:     section,
			Aisle:       recs.get(row, "aisle"),
			Shelf:       recs.get(row, "shelf"),
			Level:       level,
			MaxCapacity: capacity,
			Description: recs.get(row, "description"),
		})
	}
	return out, errs, nil
}

// productRow keeps the CSV line number with the parsed product so
// later referential checks can report the right line
type productRow struct {
	line    int
	product model.Product
}

func parseProductRows(r io.Reader) ([]productRow, []RowError, error) {
	recs, err := readAll(r)
	if err != nil {
		return nil, nil, err
	}
	var out []productRow
	var errs []RowError
	for i, row := range recs.rows {
		p, err := parseProductRow(recs, row)
		if err != nil {
			errs = append(errs, RowError{Row: i + 2, Err: err.Error()})
			continue
		}
		out = append(out, productRow{line: i + 2, product: p})
	}
	return out, errs, nil
}

// ParseProducts parses product rows and enforces the stock and pricing
// invariants per row
func ParseProducts(r io.Reader) ([]model.Product, []RowError, error) {
	parsed, errs, err := parseProductRows(r)
	if err != nil {
		return nil, nil, err
	}
	out := make([]model.Product, 0, len(parsed))
	for _, row := range parsed {
		out = append(out, row.product)
	}
	return out, errs, nil
}

func parseProductRow(recs *records, row []string) (model.Product, error) {
	var p model.Product
	var err error

	p.Name = recs.get(row, "name")
	p.Description = recs.get(row, "description")
	p.Brand = recs.get(row, "brand")
	p.Unit = recs.get(row, "unit")

	if p.CategoryID, err = recs.getUint(row, "category_id"); err != nil {
		return p, err
	}
	if p.SupplierID, err = recs.getUint(row, "supplier_id"); err != nil {
		return p, err
	}
	if locStr := recs.get(row, "location_id"); locStr != "" {
		loc, err := recs.getUint(row, "location_id")
		if err != nil {
			return p, err
		}
		p.LocationID = &loc
	}

	if p.StockCurrent, err = recs.getInt(row, "stock_current"); err != nil {
		return p, err
	}
	if p.StockMinimum, err = recs.getInt(row, "stock_minimum"); err != nil {
		return p, err
	}
	if p.ReorderPoint, err = recs.getInt(row, "reorder_point"); err != nil {
		return p, err
	}
	if p.StockMaximum, err = recs.getInt(row, "stock_maximum"); err != nil {
		return p, err
	}
	if p.UnitCost, err = recs.getFloat(row, "unit_cost"); err != nil {
		return p, err
	}
	if p.SalePrice, err = recs.getFloat(row, "sale_price"); err != nil {
		return p, err
	}
	if p.SalesCurrentMonth, err = recs.getInt(row, "sales_current_month"); err != nil {
		return p, err
	}
	if p.SalesPriorMonth, err = recs.getInt(row, "sales_prior_month"); err != nil {
		return p, err
	}
	if p.SalesQuarter, err = recs.getInt(row, "sales_quarter"); err != nil {
		return p, err
	}
	if p.SalesYear, err = recs.getInt(row, "sales_year"); err != nil {
		return p, err
	}

	p.LastPurchaseAt = recs.getDate(row, "last_purchase_at")
	p.LastSaleAt = recs.getDate(row, "last_sale_at")
	p.ExpiresAt = recs.getDate(row, "expires_at")
	p.IsActive = recs.getBool(row, "is_active")

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// LoadCategories parses and persists categories. An already-populated
// table is skipped unless force is set.
func LoadCategories(db *gorm.DB, r io.Reader, force bool) (*Result, error) {
	result := &Result{Table: "categories"}
	if skip, err := tableHasRows(db, &model.Category{}, force); err != nil {
		return nil, err
	} else if skip {
		result.Skipped = true
		return result, nil
	}

	rows, rowErrs, err := ParseCategories(r)
	if err != nil {
		return nil, err
	}
	result.Errors = rowErrs
	if len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			return nil, err
		}
	}
	result.Loaded = len(rows)
	return result, nil
}

// LoadSuppliers parses and persists suppliers
func LoadSuppliers(db *gorm.DB, r io.Reader, force bool) (*Result, error) {
	result := &Result{Table: "suppliers"}
	if skip, err := tableHasRows(db, &model.Supplier{}, force); err != nil {
		return nil, err
	} else if skip {
		result.Skipped = true
		return result, nil
	}

	rows, rowErrs, err := ParseSuppliers(r)
	if err != nil {
		return nil, err
	}
	result.Errors = rowErrs
	if len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			return nil, err
		}
	}
	result.Loaded = len(rows)
	return result, nil
}

// LoadLocations parses and persists locations
func LoadLocations(db *gorm.DB, r io.Reader, force bool) (*Result, error) {
	result := &Result{Table: "locations"}
	if skip, err := tableHasRows(db, &model.Location{}, force); err != nil {
		return nil, err
	} else if skip {
		result.Skipped = true
		return result, nil
	}

	rows, rowErrs, err := ParseLocations(r)
	if err != nil {
		return nil, err
	}
	result.Errors = rowErrs
	if len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			return nil, err
		}
	}
	result.Loaded = len(rows)
	return result, nil
}

// LoadProducts parses and persists products, validating category,
// supplier and location references against the existing tables
func LoadProducts(db *gorm.DB, r io.Reader, force bool) (*Result, error) {
	result := &Result{Table: "products"}
	if skip, err := tableHasRows(db, &model.Product{}, force); err != nil {
		return nil, err
	} else if skip {
		result.Skipped = true
		return result, nil
	}

	rows, rowErrs, err := parseProductRows(r)
	if err != nil {
		return nil, err
	}
	result.Errors = rowErrs

	categories, err := existingIDs(db, &model.Category{})
	if err != nil {
		return nil, err
	}
	suppliers, err := existingIDs(db, &model.Supplier{})
	if err != nil {
		return nil, err
	}
	locations, err := existingIDs(db, &model.Location{})
	if err != nil {
		return nil, err
	}

	accepted := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		if err := checkReferences(row.product, categories, suppliers, locations); err != nil {
			result.Errors = append(result.Errors, RowError{Row: row.line, Err: err.Error()})
			continue
		}
		accepted = append(accepted, row.product)
	}

	if len(accepted) > 0 {
		if err := db.Create(&accepted).Error; err != nil {
			return nil, err
		}
	}
	result.Loaded = len(accepted)
	return result, nil
}

func checkReferences(p model.Product, categories, suppliers, locations map[uint]bool) error {
	if !categories[p.CategoryID] {
		return &model.ConstraintError{Entity: "category", ID: p.CategoryID}
	}
	if !suppliers[p.SupplierID] {
		return &model.ConstraintError{Entity: "supplier", ID: p.SupplierID}
	}
	if p.LocationID != nil && !locations[*p.LocationID] {
		return &model.ConstraintError{Entity: "location", ID: *p.LocationID}
	}
	return nil
}

func tableHasRows(db *gorm.DB, entity interface{}, force bool) (bool, error) {
	if force {
		return false, nil
	}
	var count int64
	if err := db.Model(entity).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func existingIDs(db *gorm.DB, entity interface{}) (map[uint]bool, error) {
	var ids []uint
	if err := db.Model(entity).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
