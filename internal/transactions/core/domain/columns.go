package domain

import (
	"strings"
)

// Canonical column names of the transactions table that an import maps onto.
const (
	FieldOrderDate   = "order_date"
	FieldCustomerID  = "customer_id"
	FieldAmount      = "amount"
	FieldProductName = "product_name"
	FieldChannel     = "channel"
)

// Fields lists every canonical field; the first three are required.
var Fields = []string{FieldOrderDate, FieldCustomerID, FieldAmount, FieldProductName, FieldChannel}

var requiredFields = []string{FieldOrderDate, FieldCustomerID, FieldAmount}

// headerAliases are compared after normalizeHeader.
var headerAliases = map[string][]string{
	FieldOrderDate:   {"order_date", "orderdate", "date", "purchase_date", "transaction_date", "購買日期", "訂單日期", "交易日期", "日期"},
	FieldCustomerID:  {"customer_id", "customerid", "customer", "client_id", "member_id", "email", "客戶編號", "會員編號", "客戶", "顧客編號"},
	FieldAmount:      {"amount", "total", "revenue", "price", "sales", "金額", "訂單金額", "總金額", "消費金額"},
	FieldProductName: {"product_name", "product_service", "product", "item", "sku", "購買品項", "商品名稱", "品項", "產品"},
	FieldChannel:     {"channel", "source", "platform", "通路", "銷售通路", "渠道"},
}

// Mapping maps a canonical field to the CSV header that holds it.
type Mapping map[string]string

// Missing returns the required fields that have no header.
func (m Mapping) Missing() []string {
	var out []string
	for _, f := range requiredFields {
		if strings.TrimSpace(m[f]) == "" {
			out = append(out, f)
		}
	}
	return out
}

// Merge overlays explicit entries on m. Unknown fields and empty headers in
// override are ignored.
func (m Mapping) Merge(override Mapping) Mapping {
	out := make(Mapping, len(Fields))
	for k, v := range m {
		out[k] = v
	}
	for _, f := range Fields {
		if h := strings.TrimSpace(override[f]); h != "" {
			out[f] = h
		}
	}
	return out
}

// Restrict drops entries whose header is not present in headers, matching
// case- and space-insensitively and rewriting to the exact header text.
func (m Mapping) Restrict(headers []string) Mapping {
	byNorm := make(map[string]string, len(headers))
	for _, h := range headers {
		byNorm[normalizeHeader(h)] = h
	}
	out := make(Mapping, len(m))
	for f, h := range m {
		if exact, ok := byNorm[normalizeHeader(h)]; ok {
			out[f] = exact
		}
	}
	return out
}

// DetectColumns guesses the mapping from header names alone. Each header is
// used for at most one field; earlier aliases win.
func DetectColumns(headers []string) Mapping {
	byNorm := make(map[string]string, len(headers))
	for _, h := range headers {
		n := normalizeHeader(h)
		if _, dup := byNorm[n]; !dup {
			byNorm[n] = h
		}
	}

	m := make(Mapping, len(Fields))
	used := make(map[string]bool, len(headers))
	for _, f := range Fields {
		for _, alias := range headerAliases[f] {
			h, ok := byNorm[normalizeHeader(alias)]
			if ok && !used[h] {
				m[f] = h
				used[h] = true
				break
			}
		}
	}
	return m
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "_", "-", "_", "\u3000", "_").Replace(h)
	return h
}
