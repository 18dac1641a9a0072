package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/txfilter/pkg/transaction"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// RenderTransactions writes one row per transaction, in order.
func RenderTransactions(w io.Writer, txs []transaction.Transaction) {
	table := newTable(w, "ID", "Issuer", "Type", "Lines", "Total")
	for _, t := range txs {
		table.Append([]string{
			t.ID(),
			t.Issuer(),
			t.Type().String(),
			strconv.Itoa(len(t.Chargelines())),
			t.TotalAmount().String(),
		})
	}
	table.SetFooter([]string{"", "", "", strconv.Itoa(len(txs)), transaction.Total(txs).String()})
	table.Render()
}

// Render writes r as a summary followed by the per issuer table.
func Render(w io.Writer, r Report) {
	summary := newTable(w, "Metric", "Value")
	summary.AppendBulk([][]string{
		{"Transactions", strconv.Itoa(r.Count)},
		{"Total amount", r.Total.String()},
		{"Buy", strconv.Itoa(r.Buys)},
		{"Not buy", strconv.Itoa(r.Others)},
		{fmt.Sprintf("Issuers below %s", r.Threshold), strings.Join(r.BySize[transaction.Small], ", ")},
		{fmt.Sprintf("Issuers from %s", r.Threshold), strings.Join(r.BySize[transaction.Big], ", ")},
	})
	if r.HasTax {
		summary.Append([]string{"Average tax %", strconv.Itoa(r.AverageTax)})
	}
	summary.Render()

	issuers := newTable(w, "Issuer", "Transactions", "Largest")
	for _, s := range r.Issuers {
		issuers.Append([]string{s.Issuer, strconv.Itoa(s.Count), s.Largest.String()})
	}
	issuers.Render()
}
