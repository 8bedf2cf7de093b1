package sailor

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

func WriteRunsCSVFile(path string, runs []Run) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteRunsCSV(f, runs)
}

// WriteRunsCSV writes the per-walk ledger with a header row.
func WriteRunsCSV(out io.Writer, runs []Run) error {
	w := csv.NewWriter(out)

	header := []string{
		"index",
		"final_position",
		"steps",
		"died",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range runs {
		row := []string{
			strconv.Itoa(r.Index),
			strconv.Itoa(r.FinalPosition),
			strconv.Itoa(r.Steps),
			strconv.FormatBool(r.Died),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
