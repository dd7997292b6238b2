package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectColumns_ChineseHeaders(t *testing.T) {
	headers := []string{"客戶編號", "購買日期", "購買品項", "數量(盒)", "金額", "通路"}

	m := DetectColumns(headers)

	assert.Equal(t, Mapping{
		FieldOrderDate:   "購買日期",
		FieldCustomerID:  "客戶編號",
		FieldAmount:      "金額",
		FieldProductName: "購買品項",
		FieldChannel:     "通路",
	}, m)
	assert.Empty(t, m.Missing())
}

func TestDetectColumns_EnglishHeadersIgnoreCaseAndSpaces(t *testing.T) {
	headers := []string{"\ufeffOrder Date", " CUSTOMER_ID ", "Amount", "Product_Service", "Channel"}

	m := DetectColumns(headers)

	assert.Equal(t, "\ufeffOrder Date", m[FieldOrderDate])
	assert.Equal(t, " CUSTOMER_ID ", m[FieldCustomerID])
	assert.Equal(t, "Amount", m[FieldAmount])
	assert.Equal(t, "Product_Service", m[FieldProductName])
	assert.Equal(t, "Channel", m[FieldChannel])
}

func TestDetectColumns_MissingRequired(t *testing.T) {
	m := DetectColumns([]string{"date", "note"})

	assert.Equal(t, "date", m[FieldOrderDate])
	assert.Equal(t, []string{FieldCustomerID, FieldAmount}, m.Missing())
}

func TestMapping_MergeAndRestrict(t *testing.T) {
	headers := []string{"Buyer", "When", "Paid", "Amount"}
	detected := DetectColumns(headers)

	merged := detected.Merge(Mapping{
		FieldCustomerID: "buyer",
		FieldOrderDate:  "When",
		FieldAmount:     "Paid",
		"unknown":       "x",
		FieldChannel:    "",
	}).Restrict(headers)

	assert.Equal(t, Mapping{
		FieldCustomerID: "Buyer",
		FieldOrderDate:  "When",
		FieldAmount:     "Paid",
	}, merged)
}

func TestMapping_RestrictDropsUnknownHeaders(t *testing.T) {
	m := Mapping{FieldAmount: "Total", FieldChannel: "Shop"}.Restrict([]string{"total"})

	assert.Equal(t, Mapping{FieldAmount: "total"}, m)
}
