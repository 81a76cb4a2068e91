// Package catalog scans the local cache of per-ticker price-series files
// and derives a latest-price view per ticker.
package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Series files follow the Yahoo Finance CSV layout: a header row, then
// data rows with the closing price at column index 4.
const (
	seriesExt   = ".csv"
	closeColumn = 4
)

// StockInfo is the derived view of one cached ticker: the latest closing
// price and its change versus the prior observation. A ticker whose series
// has fewer than two parsable prices keeps all derived fields at zero.
type StockInfo struct {
	Ticker    string
	Price     float64
	Change    float64
	PctChange float64
}

// Scan enumerates dir and returns one StockInfo per recognised series file,
// in directory enumeration order (not guaranteed sorted). The scan is
// stateless: callers re-run it every tick. An unreadable directory yields
// an empty catalog.
func Scan(dir string) []StockInfo {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var stocks []StockInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), seriesExt) {
			continue
		}
		ticker := strings.TrimSuffix(e.Name(), seriesExt)
		stocks = append(stocks, readSeries(filepath.Join(dir, e.Name()), ticker))
	}
	return stocks
}

// readSeries parses one series file and derives the StockInfo for ticker.
// Rows that fail to parse are skipped; the ticker is still listed even
// when no usable data remains.
func readSeries(path, ticker string) StockInfo {
	info := StockInfo{Ticker: ticker}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var closes []float64
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if first {
			first = false // header row
			continue
		}
		if len(row) <= closeColumn {
			continue
		}
		if v, err := strconv.ParseFloat(row[closeColumn], 64); err == nil {
			closes = append(closes, v)
		}
	}

	if len(closes) < 2 {
		return info
	}

	last := closes[len(closes)-1]
	prev := closes[len(closes)-2]
	info.Price = last
	info.Change = last - prev
	if prev != 0 {
		info.PctChange = info.Change / prev * 100
	}
	return info
}
