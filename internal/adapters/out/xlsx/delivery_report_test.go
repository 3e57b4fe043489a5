package xlsx_test

import (
	"bytes"
	"testing"

	"flowerdelivery/internal/adapters/out/xlsx"
	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func openReport(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, name string) string {
	t.Helper()
	v, err := f.GetCellValue(xlsx.SheetName, name)
	require.NoError(t, err)
	return v
}

func TestDeliveryReport_Render(t *testing.T) {
	views := []queries.DeliveryView{
		{
			ID:               "240101-001",
			Status:           delivery.StatusPickedUp,
			SettlementLabel:  "착불",
			BusinessName:     "MSS Flower",
			Wholesaler:       "양재꽃시장",
			RecipientAddress: "용인시 기흥구 중부대로 184",
			RecipientPhone:   "010-1234-5678",
			BoxCount:         2,
			Fee:              15000,
			Notes:            "오전 배송",
		},
		{
			ID:              "240101-002",
			Status:          delivery.StatusSettled,
			SettlementLabel: "선불",
			BusinessName:    "가든브리즈",
			BoxCount:        1,
			Fee:             7000,
		},
	}

	data, err := xlsx.NewDeliveryReport().Render("240101", views)
	require.NoError(t, err)
	f := openReport(t, data)

	assert.Equal(t, []string{xlsx.SheetName}, f.GetSheetList())
	assert.Equal(t, "240101 배송 내역", cell(t, f, "A1"))
	assert.Equal(t, "주문번호", cell(t, f, "A2"))
	assert.Equal(t, "비고", cell(t, f, "J2"))

	assert.Equal(t, "240101-001", cell(t, f, "A3"))
	assert.Equal(t, "PICKED_UP", cell(t, f, "B3"))
	assert.Equal(t, "착불", cell(t, f, "C3"))
	assert.Equal(t, "용인시 기흥구 중부대로 184", cell(t, f, "F3"))
	assert.Equal(t, "2", cell(t, f, "H3"))
	assert.Equal(t, "15000", cell(t, f, "I3"))
	assert.Equal(t, "240101-002", cell(t, f, "A4"))

	assert.Equal(t, "합계", cell(t, f, "H5"))
	assert.Equal(t, "22000", cell(t, f, "I5"))
}

func TestDeliveryReport_RenderEmptyDay(t *testing.T) {
	data, err := xlsx.NewDeliveryReport().Render("240102", nil)
	require.NoError(t, err)
	f := openReport(t, data)

	assert.Equal(t, "합계", cell(t, f, "H3"))
	assert.Equal(t, "0", cell(t, f, "I3"))
}
