package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sumashijiru045-dot/pos-app/internal/application/event"
	"github.com/sumashijiru045-dot/pos-app/internal/application/state"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/enum"
	domainRepo "github.com/sumashijiru045-dot/pos-app/internal/domain/repository"
	"github.com/sumashijiru045-dot/pos-app/internal/infrastructure/blobstore"
	"github.com/sumashijiru045-dot/pos-app/internal/infrastructure/repository"
)

func i64(v int64) *int64 { return &v }

func newExportService(t *testing.T, orders []entity.Order) *ExportService {
	t.Helper()
	store := blobstore.NewMemoryStore()
	if orders != nil {
		data, err := json.Marshal(orders)
		if err != nil {
			t.Fatal(err)
		}
		if err := store.Put(context.Background(), domainRepo.KeyOrders, data); err != nil {
			t.Fatal(err)
		}
	}
	st := state.New(repository.NewSnapshotRepository(store), event.NopSink{})
	st.Load(context.Background())
	return NewExportService(st)
}

func day(d int, hour int) time.Time {
	return time.Date(2026, 1, d, hour, 0, 0, 0, time.Local)
}

func TestBuildTablesGroupsByDate(t *testing.T) {
	orders := []entity.Order{
		{ID: "c", CreatedAt: day(16, 9), Subtotal: 20000, Total: i64(20000),
			PaymentMethod: enum.PaymentMethodQR, Status: enum.OrderStatusClosed},
		{ID: "b", CreatedAt: day(15, 14), Subtotal: 30000, Total: i64(30000),
			PaymentMethod: enum.PaymentMethodQR, Status: enum.OrderStatusClosed},
		{ID: "a", CreatedAt: day(15, 9), Subtotal: 50000, Total: i64(45000),
			PaymentMethod: enum.PaymentMethodCash, Status: enum.OrderStatusClosed,
			CashReceived: 50000, Change: 5000, KipCashAmount: 50000},
		// Open and Void orders never reach the report.
		{ID: "open", CreatedAt: day(15, 10), Subtotal: 10000, Status: enum.OrderStatusOpen},
		{ID: "void", CreatedAt: day(15, 11), Subtotal: 10000, Status: enum.OrderStatusVoid},
	}
	tables := newExportService(t, orders).BuildTables()

	if len(tables.Daily) != 2 {
		t.Fatalf("daily rows = %d, want 2", len(tables.Daily))
	}
	d15, d16 := tables.Daily[0], tables.Daily[1]
	if d15.Date != "2026-01-15" || d16.Date != "2026-01-16" {
		t.Errorf("dates not ascending: %s, %s", d15.Date, d16.Date)
	}
	if d15.Cash != 45000 || d15.QR != 30000 || d15.Total != 75000 {
		t.Errorf("day 15 = %+v", d15)
	}
	if d16.Cash != 0 || d16.QR != 20000 || d16.Total != 20000 {
		t.Errorf("day 16 = %+v", d16)
	}

	if len(tables.Orders) != 3 {
		t.Errorf("orders log rows = %d, want 3 (closed only)", len(tables.Orders))
	}
}

func TestBuildTablesCashFlow(t *testing.T) {
	orders := []entity.Order{
		{ID: "a", CreatedAt: day(15, 9), Subtotal: 300000, Total: i64(300000),
			PaymentMethod: enum.PaymentMethodCash, Status: enum.OrderStatusClosed,
			CashReceived: 305000, Change: 5000, KipCashAmount: 55000,
			FxAmount: 10, FxRate: 25000, FxCurrency: enum.FxCurrencyUSD},
		{ID: "b", CreatedAt: day(15, 12), Subtotal: 70000, Total: i64(70000),
			PaymentMethod: enum.PaymentMethodCash, Status: enum.OrderStatusClosed,
			CashReceived: 70000, KipCashAmount: 0,
			FxAmount: 100, FxRate: 700, FxCurrency: enum.FxCurrencyTHB},
		// QR orders carry no physical cash.
		{ID: "q", CreatedAt: day(15, 13), Subtotal: 20000, Total: i64(20000),
			PaymentMethod: enum.PaymentMethodQR, Status: enum.OrderStatusClosed},
	}
	tables := newExportService(t, orders).BuildTables()

	if len(tables.CashFlow) != 1 {
		t.Fatalf("cash flow rows = %d", len(tables.CashFlow))
	}
	f := tables.CashFlow[0]
	if f.KipIn != 55000 || f.KipOut != 5000 || f.KipNet != 50000 {
		t.Errorf("kip flow = %+v", f)
	}
	if f.USDIn != 10 || f.THBIn != 100 {
		t.Errorf("fx flow = %+v", f)
	}
}

func TestBuildTablesPlaceholderRows(t *testing.T) {
	tables := newExportService(t, nil).BuildTables()
	if len(tables.Daily) != 1 || tables.Daily[0] != (DailySummaryRow{}) {
		t.Errorf("daily placeholder = %+v", tables.Daily)
	}
	if len(tables.CashFlow) != 1 || tables.CashFlow[0] != (CashFlowRow{}) {
		t.Errorf("cash flow placeholder = %+v", tables.CashFlow)
	}
	if len(tables.Orders) != 1 || tables.Orders[0] != (OrderLogRow{}) {
		t.Errorf("orders placeholder = %+v", tables.Orders)
	}
}

func TestFlattenOrderBlanksCashForQR(t *testing.T) {
	o := entity.Order{
		ID: "q", CreatedAt: day(15, 9), Subtotal: 20000, Total: i64(20000),
		PaymentMethod: enum.PaymentMethodQR, Status: enum.OrderStatusClosed,
		Items: []entity.CartLine{
			{MenuItem: entity.MenuItem{ID: "a", Name: "Hot latte", Price: 10000}, Qty: 2},
		},
	}
	row := flattenOrder(&o)
	if row.CashReceived != "" || row.Change != "" || row.KipCash != "" {
		t.Errorf("QR order must have blank cash fields: %+v", row)
	}
	if row.Items != "Hot latte x2 (10000)" {
		t.Errorf("items = %q", row.Items)
	}
	if row.PaymentMethod != "QR" || row.Status != "Closed" {
		t.Errorf("row = %+v", row)
	}
}

func TestFlattenOrderKeepsCashRecordedBeforeQRSwitch(t *testing.T) {
	// Cash keyed in before the method was flipped to QR still shows the
	// recorded drawer movement in the log.
	o := entity.Order{
		ID: "s", CreatedAt: day(15, 9), Subtotal: 30000, Total: i64(30000),
		PaymentMethod: enum.PaymentMethodQR, Status: enum.OrderStatusClosed,
		CashReceived: 30000, KipCashAmount: 30000,
	}
	row := flattenOrder(&o)
	if row.CashReceived != "30000" || row.KipCash != "30000" || row.Change != "0" {
		t.Errorf("recorded cash must survive a method switch: %+v", row)
	}
	if row.PaymentMethod != "QR" {
		t.Errorf("method = %q", row.PaymentMethod)
	}
}

func TestFlattenOrderCashWithFx(t *testing.T) {
	o := entity.Order{
		ID: "a", CreatedAt: day(15, 9), Subtotal: 300000, Total: i64(300000),
		PaymentMethod: enum.PaymentMethodCash, Status: enum.OrderStatusClosed,
		CashReceived: 305000, Change: 5000, KipCashAmount: 55000,
		FxAmount: 10, FxRate: 25000, FxCurrency: enum.FxCurrencyUSD,
	}
	row := flattenOrder(&o)
	if row.CashReceived != "305000" || row.Change != "5000" || row.KipCash != "55000" {
		t.Errorf("cash fields = %+v", row)
	}
	if row.FxCurrency != "USD" || row.FxAmount != "10" || row.FxRate != "25000" {
		t.Errorf("fx fields = %+v", row)
	}
}

func TestExportFilename(t *testing.T) {
	svc := newExportService(t, nil)
	svc.now = func() time.Time { return time.Date(2026, 1, 15, 18, 0, 0, 0, time.Local) }
	if got := svc.Filename(); got != "pos_ledger_20260115.xlsx" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestWriteWorkbookProducesSpreadsheet(t *testing.T) {
	orders := []entity.Order{
		{ID: "a", CreatedAt: day(15, 9), Subtotal: 50000, Total: i64(50000),
			PaymentMethod: enum.PaymentMethodCash, Status: enum.OrderStatusClosed,
			CashReceived: 50000, KipCashAmount: 50000},
	}
	data, err := newExportService(t, orders).WriteWorkbook()
	if err != nil {
		t.Fatal(err)
	}
	// xlsx is a zip container.
	if len(data) < 4 || !strings.HasPrefix(string(data[:2]), "PK") {
		t.Errorf("output does not look like an xlsx archive (%d bytes)", len(data))
	}
}
