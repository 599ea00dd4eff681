package sim

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"inventory-game/internal/model"
)

// LedgerHeader is the column order of the exported table. Keep it stable;
// downstream spreadsheets key on these names.
var LedgerHeader = []string{
	"period",
	"order_qty",
	"demand",
	"begin_inventory",
	"available_inventory",
	"fulfilled",
	"unmet",
	"end_inventory",
	"outcome",
	"purchase_cost",
	"holding_cost",
	"shortage_cost",
	"period_cost",
	"cumulative_cost",
}

func WriteLedgerCSV(path string, ledger []model.PeriodRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeLedgerCSV(f, ledger)
}

// EncodeLedgerCSV streams the ledger as CSV, one row per period.
func EncodeLedgerCSV(out io.Writer, ledger []model.PeriodRecord) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write(LedgerHeader); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Period),
			fmtFloat(r.OrderQty),
			fmtFloat(r.Demand),
			fmtFloat(r.BeginInventory),
			fmtFloat(r.AvailableInventory),
			fmtFloat(r.Fulfilled),
			fmtFloat(r.Unmet),
			fmtFloat(r.EndInventory),
			string(r.Outcome),
			fmtFloat(r.PurchaseCost),
			fmtFloat(r.HoldingCost),
			fmtFloat(r.ShortageCost),
			fmtFloat(r.PeriodCost),
			fmtFloat(r.CumulativeCost),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
