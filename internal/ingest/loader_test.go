package ingest

import (
	"strings"
	"testing"
)

func TestParseCategories(t *testing.T) {
	csv := `name,description,average_margin
Lácteos,Leche y derivados,28.5
Bebidas,,15
,falta el nombre,10
`
	rows, rowErrs, err := ParseCategories(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCategories failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Lácteos" || rows[0].AverageMargin != 28.5 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if !rows[1].IsActive {
		t.Error("is_active should default to true")
	}
	if len(rowErrs) != 1 {
		t.Fatalf("expected 1 rejected row, got %d", len(rowErrs))
	}
	if rowErrs[0].Row != 4 {
		t.Errorf("rejected row number = %d, want 4 (1-based with header)", rowErrs[0].Row)
	}
}

func TestParseSuppliers(t *testing.T) {
	csv := `name,contact_person,delivery_lead_days,rating
Distribuidora Norte,Ana Gómez,3,4.5
Mayorista Central,Luis Pérez,no-es-numero,4.0
`
	rows, rowErrs, err := ParseSuppliers(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseSuppliers failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].DeliveryLeadDays != 3 || rows[0].Rating != 4.5 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if len(rowErrs) != 1 || rowErrs[0].Row != 3 {
		t.Errorf("expected row 3 rejected, got %+v", rowErrs)
	}
}

func TestParseProductsValidatesInvariants(t *testing.T) {
	csv := `name,category_id,supplier_id,stock_current,stock_minimum,reorder_point,stock_maximum,unit_cost,sale_price
Aceite de Oliva 1L,1,1,20,5,10,50,800,1200
Inválido Negativo,1,1,-3,5,10,50,100,150
Mínimo Sobre Reorden,1,1,20,15,10,50,100,150
`
	rows, rowErrs, err := ParseProducts(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseProducts failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 valid row, got %d", len(rows))
	}
	if rows[0].Name != "Aceite de Oliva 1L" || rows[0].StockCurrent != 20 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if len(rowErrs) != 2 {
		t.Fatalf("expected 2 rejected rows, got %d", len(rowErrs))
	}
	if rowErrs[0].Row != 3 || rowErrs[1].Row != 4 {
		t.Errorf("rejected rows = %d and %d, want 3 and 4", rowErrs[0].Row, rowErrs[1].Row)
	}
}

func TestParseProductsOptionalColumns(t *testing.T) {
	csv := `name,category_id,supplier_id,location_id,stock_current,stock_minimum,reorder_point,stock_maximum,unit_cost,sale_price,last_sale_at
Yerba Mate 500g,2,1,7,30,5,15,60,950,1400,2026-07-15
Sin Ubicación,2,1,,10,2,4,20,100,180,
`
	rows, rowErrs, err := ParseProducts(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseProducts failed: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected rejections: %+v", rowErrs)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0].LocationID == nil || *rows[0].LocationID != 7 {
		t.Errorf("location = %v, want 7", rows[0].LocationID)
	}
	if rows[0].LastSaleAt == nil || rows[0].LastSaleAt.Format("2006-01-02") != "2026-07-15" {
		t.Errorf("last sale = %v, want 2026-07-15", rows[0].LastSaleAt)
	}
	if rows[1].LocationID != nil {
		t.Errorf("empty location column should parse as nil, got %v", *rows[1].LocationID)
	}
	if rows[1].LastSaleAt != nil {
		t.Error("empty date column should parse as nil")
	}
}

func TestParseLocationsRowNumbers(t *testing.T) {
	csv := `section,aisle,shelf,level,max_capacity
A,1,3,2,100
B,2,1,alto,50
`
	rows, rowErrs, err := ParseLocations(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseLocations failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Section != "A" || rows[0].Level != 2 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if len(rowErrs) != 1 || rowErrs[0].Row != 3 {
		t.Errorf("expected row 3 rejected, got %+v", rowErrs)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	if _, _, err := ParseCategories(strings.NewReader("")); err == nil {
		t.Error("expected an error for an empty document")
	}
}
