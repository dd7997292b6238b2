package csvfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	in := "\xEF\xBB\xBF客戶編號,購買日期,金額,通路\n" +
		"C1,2024/01/05,\"1,200\",EC\n" +
		"\n" +
		",,,\n" +
		"C2,2024/01/20,800\n"

	sheet, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"客戶編號", "購買日期", "金額", "通路"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, []string{"C1", "2024/01/05", "1,200", "EC"}, sheet.Rows[0])
	assert.Equal(t, []string{"C2", "2024/01/20", "800"}, sheet.Rows[1])
}

func TestRead_HeaderOnly(t *testing.T) {
	sheet, err := Read(strings.NewReader("Order_Date,Customer_ID,Amount\n"))
	require.NoError(t, err)

	assert.Len(t, sheet.Headers, 3)
	assert.Empty(t, sheet.Rows)
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestRead_LazyQuotes(t *testing.T) {
	sheet, err := Read(strings.NewReader("customer_id,product_name\nC1,12\" Cake\n"))
	require.NoError(t, err)

	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, `12" Cake`, sheet.Rows[0][1])
}
