// Package eurostat fetches HICP monthly index series from the Eurostat
// statistics API, so monthly documents can be annotated with official
// inflation index values.
package eurostat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/silvio-dacol/matapan"
)

// DefaultDataset is the Eurostat HICP monthly index dataset (2015 = 100).
const DefaultDataset = "prc_hicp_midx"

// statisticsURL is the Eurostat dissemination API endpoint. The response is
// a JSON-stat 2.0 object: values are indexed by position, and the time
// dimension maps period labels ("2025-07") to those positions.
const statisticsURL = "https://ec.europa.eu/eurostat/api/dissemination/statistics/1.0/data/%s?format=JSON&unit=I15&coicop=CP00&geo=%s&sinceTimePeriod=%s"

// seriesURL builds the statistics request address. The geo code comes
// straight from a user flag, so it is query-escaped: a malformed code then
// yields a clean API error instead of a mangled query.
func seriesURL(geo string, since matapan.Month) string {
	return fmt.Sprintf(statisticsURL, DefaultDataset, url.QueryEscape(geo), since)
}

// Fetch downloads the all-items HICP series for a geo code (e.g. "EA20",
// "NL") starting at the given month, and returns it keyed by month.
func Fetch(geo string, since matapan.Month) (map[matapan.Month]float64, error) {
	addr := seriesURL(geo, since)
	log.Println("Downloading from Eurostat:", addr)

	resp, err := http.Get(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to download from Eurostat for geo %s: %w", geo, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download from Eurostat for geo %s: received status %s", geo, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return parseSeries(bytes.NewReader(body))
}

// parseSeries decodes a JSON-stat statistics response into a month-keyed
// series.
func parseSeries(r io.Reader) (map[matapan.Month]float64, error) {
	var jobj any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("failed to decode statistics response: %w", err)
	}

	jindex, err := jsonpath.Get("$.dimension.time.category.index", jobj)
	if err != nil {
		return nil, fmt.Errorf("no time dimension in statistics response: %w", err)
	}
	index, ok := jindex.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected time dimension shape %T", jindex)
	}

	jvalues, err := jsonpath.Get("$.value", jobj)
	if err != nil {
		return nil, fmt.Errorf("no values in statistics response: %w", err)
	}
	values, ok := jvalues.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected values shape %T", jvalues)
	}

	series := make(map[matapan.Month]float64, len(index))
	for label, jpos := range index {
		month, err := matapan.ParseMonth(label)
		if err != nil {
			// Quarterly or annual labels can appear in mixed datasets.
			continue
		}
		pos, ok := jpos.(float64)
		if !ok {
			return nil, fmt.Errorf("unexpected index position %v for period %q", jpos, label)
		}
		jval, ok := values[fmt.Sprintf("%.0f", pos)]
		if !ok {
			continue // value not published yet for that period
		}
		val, ok := jval.(float64)
		if !ok {
			return nil, fmt.Errorf("unexpected value %v for period %q", jval, label)
		}
		series[month] = val
	}

	if len(series) == 0 {
		return nil, fmt.Errorf("statistics response contains no monthly values")
	}
	return series, nil
}
