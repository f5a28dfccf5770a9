package service

import (
	"sort"
	"strconv"
	"time"

	"github.com/sumashijiru045-dot/pos-app/internal/application/state"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/enum"
	"github.com/sumashijiru045-dot/pos-app/pkg/apperror"
	"github.com/sumashijiru045-dot/pos-app/pkg/orderid"
	"github.com/xuri/excelize/v2"
)

// ExportService folds the ledger's Closed orders into the three report
// tables and encodes them as a spreadsheet. The fold is pure; it never
// mutates the ledger.
type ExportService struct {
	state *state.AppState
	now   func() time.Time
}

// NewExportService creates a new export service
func NewExportService(st *state.AppState) *ExportService {
	return &ExportService{state: st, now: time.Now}
}

// DailySummaryRow is a per-date settlement summary.
type DailySummaryRow struct {
	Date  string `json:"date"`
	Cash  int64  `json:"cash"`
	QR    int64  `json:"qr"`
	Total int64  `json:"total"`
}

// CashFlowRow tracks physical domestic cash in/out plus foreign cash taken,
// per date, for Cash-settled orders only.
type CashFlowRow struct {
	Date   string  `json:"date"`
	KipIn  int64   `json:"kip_in"`
	KipOut int64   `json:"kip_out"`
	KipNet int64   `json:"kip_net"`
	USDIn  float64 `json:"usd_in"`
	THBIn  float64 `json:"thb_in"`
}

// OrderLogRow is the flattened audit projection of one closed order. Cash
// fields are blank, not zero, for orders that never saw cash tender.
type OrderLogRow struct {
	OrderID       string `json:"order_id"`
	OrderDatetime string `json:"order_datetime"`
	Items         string `json:"items"`
	PaymentMethod string `json:"payment_method"`
	Subtotal      int64  `json:"subtotal"`
	Discount      int64  `json:"discount"`
	Total         int64  `json:"total"`
	CashReceived  string `json:"cash_received"`
	Change        string `json:"change"`
	KipCash       string `json:"kip_cash"`
	FxCurrency    string `json:"fx_currency"`
	FxAmount      string `json:"fx_amount"`
	FxRate        string `json:"fx_rate"`
	Status        string `json:"status"`
	Note          string `json:"note"`
}

// Tables holds the three report tables in sheet order.
type Tables struct {
	Daily    []DailySummaryRow `json:"daily_summary"`
	CashFlow []CashFlowRow     `json:"cash_flow"`
	Orders   []OrderLogRow     `json:"orders_log"`
}

// BuildTables reduces the Closed orders, grouped by local calendar date of
// creation. Date keys are sorted ascending; within a date, ledger order is
// preserved. Empty tables get exactly one zero/blank placeholder row so the
// output schema is stable even with no closed orders.
func (s *ExportService) BuildTables() Tables {
	type dailyAgg struct {
		cash, qr, total int64
	}
	type flowAgg struct {
		kipIn, kipOut, kipNet int64
		usdIn, thbIn          float64
	}

	byDate := make(map[string]*dailyAgg)
	flowByDate := make(map[string]*flowAgg)
	var orderRows []OrderLogRow

	for _, o := range s.state.Orders() {
		if o.Status != enum.OrderStatusClosed {
			continue
		}
		key := o.CreatedAt.Local().Format("2006-01-02")
		day := byDate[key]
		if day == nil {
			day = &dailyAgg{}
			byDate[key] = day
		}
		flow := flowByDate[key]
		if flow == nil {
			flow = &flowAgg{}
			flowByDate[key] = flow
		}

		net := o.PaymentBasis()
		switch o.PaymentMethod {
		case enum.PaymentMethodCash:
			day.cash += net
		case enum.PaymentMethodQR:
			day.qr += net
		}
		day.total += net

		if o.PaymentMethod == enum.PaymentMethodCash {
			kipIn := clampKip(o.KipCashAmount)
			kipOut := clampKip(o.Change)
			flow.kipIn += kipIn
			flow.kipOut += kipOut
			flow.kipNet += kipIn - kipOut
			fx := o.FxAmount
			if fx < 0 {
				fx = 0
			}
			switch o.FxCurrency {
			case enum.FxCurrencyUSD:
				flow.usdIn += fx
			case enum.FxCurrencyTHB:
				flow.thbIn += fx
			}
		}

		orderRows = append(orderRows, flattenOrder(&o))
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var daily []DailySummaryRow
	var cashFlow []CashFlowRow
	for _, d := range dates {
		v := byDate[d]
		daily = append(daily, DailySummaryRow{Date: d, Cash: v.cash, QR: v.qr, Total: v.total})
		f := flowByDate[d]
		cashFlow = append(cashFlow, CashFlowRow{Date: d, KipIn: f.kipIn, KipOut: f.kipOut, KipNet: f.kipNet, USDIn: f.usdIn, THBIn: f.thbIn})
	}

	if len(daily) == 0 {
		daily = []DailySummaryRow{{}}
	}
	if len(cashFlow) == 0 {
		cashFlow = []CashFlowRow{{}}
	}
	if len(orderRows) == 0 {
		orderRows = []OrderLogRow{{}}
	}

	return Tables{Daily: daily, CashFlow: cashFlow, Orders: orderRows}
}

func clampKip(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func flattenOrder(o *entity.Order) OrderLogRow {
	row := OrderLogRow{
		OrderID:       o.ID,
		OrderDatetime: o.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		Items:         itemsSummary(o.Items),
		PaymentMethod: o.PaymentMethod.String(),
		Subtotal:      o.Subtotal,
		Discount:      o.DiscountAmount,
		Total:         o.PaymentBasis(),
		FxCurrency:    o.FxCurrency.String(),
		Status:        o.Status.String(),
		Note:          o.Note,
	}
	// Cash columns follow the recorded tender, not the final method: an
	// order whose cash was keyed in before switching to QR still exports
	// what the drawer saw.
	cashRecorded := o.PaymentMethod == enum.PaymentMethodCash ||
		o.CashReceived != 0 || o.Change != 0 || o.KipCashAmount != 0
	if cashRecorded {
		row.CashReceived = strconv.FormatInt(o.CashReceived, 10)
		row.Change = strconv.FormatInt(o.Change, 10)
		row.KipCash = strconv.FormatInt(o.KipCashAmount, 10)
	}
	if o.FxCurrency != enum.FxCurrencyNone {
		row.FxAmount = strconv.FormatFloat(o.FxAmount, 'f', -1, 64)
		row.FxRate = strconv.FormatFloat(o.FxRate, 'f', -1, 64)
	}
	return row
}

func itemsSummary(items []entity.CartLine) string {
	s := ""
	for i, l := range items {
		if i > 0 {
			s += ", "
		}
		s += l.Name + " x" + strconv.Itoa(l.Qty) + " (" + strconv.FormatInt(l.Price, 10) + ")"
	}
	return s
}

// Filename returns the download name for today's export.
func (s *ExportService) Filename() string {
	return "pos_ledger_" + orderid.DatePrefix(s.now()) + ".xlsx"
}

// WriteWorkbook encodes the tables into an xlsx workbook. Encoding is tried
// twice; a second failure is surfaced as an ExportFailure for this attempt
// only, the ledger is untouched either way.
func (s *ExportService) WriteWorkbook() ([]byte, error) {
	tables := s.BuildTables()
	data, err := encodeWorkbook(&tables)
	if err == nil {
		return data, nil
	}
	data, err = encodeWorkbook(&tables)
	if err != nil {
		return nil, apperror.NewExportFailure("Export failed: " + err.Error())
	}
	return data, nil
}

func encodeWorkbook(t *Tables) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "DailySummary"); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "DailySummary", []interface{}{"Date", "Cash", "QR", "Total"}, len(t.Daily), func(i int) []interface{} {
		r := t.Daily[i]
		return []interface{}{r.Date, r.Cash, r.QR, r.Total}
	}); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("CashFlow"); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "CashFlow", []interface{}{"Date", "KipIn", "KipOut", "KipNet", "USDIn", "THBIn"}, len(t.CashFlow), func(i int) []interface{} {
		r := t.CashFlow[i]
		return []interface{}{r.Date, r.KipIn, r.KipOut, r.KipNet, r.USDIn, r.THBIn}
	}); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("OrdersLog"); err != nil {
		return nil, err
	}
	header := []interface{}{"OrderID", "OrderDatetime", "Items", "PaymentMethod", "Subtotal", "Discount", "Total", "CashReceived", "Change", "KipCash", "FxCurrency", "FxAmount", "FxRate", "Status", "Note"}
	if err := writeSheet(f, "OrdersLog", header, len(t.Orders), func(i int) []interface{} {
		r := t.Orders[i]
		return []interface{}{r.OrderID, r.OrderDatetime, r.Items, r.PaymentMethod, r.Subtotal, r.Discount, r.Total, r.CashReceived, r.Change, r.KipCash, r.FxCurrency, r.FxAmount, r.FxRate, r.Status, r.Note}
	}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, n int, row func(i int) []interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row(i)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
