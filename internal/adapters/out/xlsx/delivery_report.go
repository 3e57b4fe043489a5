// Package xlsx renders the daily delivery report as an Excel workbook.
package xlsx

import (
	"bytes"
	"fmt"

	"flowerdelivery/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

// SheetName is the only sheet of the report.
const SheetName = "배송"

var reportHeaders = []string{
	"주문번호", "상태", "정산", "상호", "도매처", "주소", "연락처", "박스", "배송비", "비고",
}

// DeliveryReport renders deliveries of one day, one row per delivery and a fee total row.
type DeliveryReport struct{}

func NewDeliveryReport() DeliveryReport {
	return DeliveryReport{}
}

// Render returns the workbook bytes. date is the YYMMDD prefix shown in the title cell.
func (DeliveryReport) Render(date string, views []queries.DeliveryView) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	if err := f.SetCellValue(SheetName, "A1", fmt.Sprintf("%s 배송 내역", date)); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for i, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err = f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, err
		}
	}
	if err = f.SetCellStyle(SheetName, "A2", "J2", headerStyle); err != nil {
		return nil, err
	}

	row := 3
	for _, v := range views {
		values := []any{
			v.ID, v.Status.String(), v.SettlementLabel, v.BusinessName, v.Wholesaler,
			v.RecipientAddress, v.RecipientPhone, v.BoxCount, v.Fee, v.Notes,
		}
		if err = f.SetSheetRow(SheetName, fmt.Sprintf("A%d", row), &values); err != nil {
			return nil, err
		}
		row++
	}

	if err = f.SetCellValue(SheetName, fmt.Sprintf("H%d", row), "합계"); err != nil {
		return nil, err
	}
	if err = f.SetCellValue(SheetName, fmt.Sprintf("I%d", row), feeTotal(views)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func feeTotal(views []queries.DeliveryView) int {
	total := 0
	for _, v := range views {
		total += v.Fee
	}
	return total
}
