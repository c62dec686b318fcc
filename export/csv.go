package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/harwatch/hardiff/delta"
)

// WriteCSV writes the ranked rows as CSV to w, one row per reported
// URL, no index column.
func WriteCSV(w io.Writer, rows []delta.Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"url", "total_before", "total_after", "delta_total",
		"delta_blocked", "delta_dns", "delta_connect",
		"delta_send", "delta_wait", "delta_receive",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.URL,
			ftoa(row.TotalBefore),
			ftoa(row.TotalAfter),
			ftoa(row.DeltaTotal),
			ftoa(row.DeltaBlocked),
			ftoa(row.DeltaDNS),
			ftoa(row.DeltaConnect),
			ftoa(row.DeltaSend),
			ftoa(row.DeltaWait),
			ftoa(row.DeltaReceive),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
