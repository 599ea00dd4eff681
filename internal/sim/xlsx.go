package sim

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"inventory-game/internal/model"
)

// LedgerXLSX renders the run as a workbook: a summary sheet with the game
// parameters and totals, and a ledger sheet with one row per period.
func LedgerXLSX(params model.GameParams, ledger []model.PeriodRecord) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	ledgerSheet := "ledger"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(ledgerSheet); err != nil {
		return nil, err
	}

	totalCost := 0.0
	totalUnmet := 0.0
	if n := len(ledger); n > 0 {
		totalCost = ledger[n-1].CumulativeCost
	}
	for _, r := range ledger {
		totalUnmet += r.Unmet
	}

	_ = f.SetCellValue(summarySheet, "A1", "Inventory Game Results")
	_ = f.SetCellValue(summarySheet, "A3", "Horizon (periods)")
	_ = f.SetCellValue(summarySheet, "B3", params.Horizon)
	_ = f.SetCellValue(summarySheet, "A4", "Unit Cost")
	_ = f.SetCellValue(summarySheet, "B4", params.UnitCost)
	_ = f.SetCellValue(summarySheet, "A5", "Annual Holding Rate (%)")
	_ = f.SetCellValue(summarySheet, "B5", params.AnnualHoldingRatePct)
	_ = f.SetCellValue(summarySheet, "A6", "Shortage Penalty / Unit")
	_ = f.SetCellValue(summarySheet, "B6", params.ShortagePenaltyPerUnit)
	_ = f.SetCellValue(summarySheet, "A7", "Daily Holding Cost")
	_ = f.SetCellValue(summarySheet, "B7", params.DailyHoldingCost())
	_ = f.SetCellValue(summarySheet, "A9", "Periods Played")
	_ = f.SetCellValue(summarySheet, "B9", len(ledger))
	_ = f.SetCellValue(summarySheet, "A10", "Total Cost")
	_ = f.SetCellValue(summarySheet, "B10", totalCost)
	_ = f.SetCellValue(summarySheet, "A11", "Total Unmet Demand")
	_ = f.SetCellValue(summarySheet, "B11", totalUnmet)

	for i, name := range LedgerHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(ledgerSheet, cell, name)
	}
	for i, r := range ledger {
		row := i + 2
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", row), r.Period)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("B%d", row), r.OrderQty)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("C%d", row), r.Demand)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("D%d", row), r.BeginInventory)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("E%d", row), r.AvailableInventory)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("F%d", row), r.Fulfilled)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("G%d", row), r.Unmet)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("H%d", row), r.EndInventory)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("I%d", row), string(r.Outcome))
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("J%d", row), r.PurchaseCost)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("K%d", row), r.HoldingCost)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("L%d", row), r.ShortageCost)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("M%d", row), r.PeriodCost)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("N%d", row), r.CumulativeCost)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
