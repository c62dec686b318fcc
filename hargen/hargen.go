// Package hargen generates matched before/after HAR capture pairs
// with seeded random timings, so the comparison pipeline can be
// exercised without real browser recordings.
package hargen

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/pb33f/harhar"
)

// PairOptions configures capture pair generation.
type PairOptions struct {
	// EntryCount is the number of URLs in each capture.
	EntryCount int

	// Seed for the random source, 0 means use the current time.
	Seed int64

	// Host used in generated URLs.
	Host string

	// RegressionRatio is the fraction of URLs deliberately slowed in
	// the after capture (0..1).
	RegressionRatio float64

	// DriftPercent is the maximum random per-phase drift applied to
	// every after entry, regressed or not (0..1).
	DriftPercent float64
}

// DefaultPairOptions provides sensible defaults.
var DefaultPairOptions = PairOptions{
	EntryCount:      25,
	Host:            "api.example.com",
	RegressionRatio: 0.3,
	DriftPercent:    0.1,
}

// PairResult describes a generated capture pair.
type PairResult struct {
	BeforePath   string
	AfterPath    string
	TotalEntries int

	// Regressed lists the URLs that were deliberately slowed.
	Regressed []string
}

// GeneratePair writes a before and an after capture to the given
// paths. The after capture holds the same URL set with drifted
// timings, a subset of which is regressed hard enough to rank.
func GeneratePair(beforePath, afterPath string, opts PairOptions) (*PairResult, error) {
	if opts.EntryCount <= 0 {
		opts.EntryCount = DefaultPairOptions.EntryCount
	}
	if opts.Host == "" {
		opts.Host = DefaultPairOptions.Host
	}
	if opts.RegressionRatio <= 0 {
		opts.RegressionRatio = DefaultPairOptions.RegressionRatio
	}
	if opts.DriftPercent <= 0 {
		opts.DriftPercent = DefaultPairOptions.DriftPercent
	}

	// local rng, never the global one
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	before := baseEntries(opts, rng)
	after, regressed := driftEntries(before, opts, rng)

	if err := writeHAR(beforePath, harDocument(before)); err != nil {
		return nil, err
	}
	if err := writeHAR(afterPath, harDocument(after)); err != nil {
		return nil, err
	}

	return &PairResult{
		BeforePath:   beforePath,
		AfterPath:    afterPath,
		TotalEntries: opts.EntryCount,
		Regressed:    regressed,
	}, nil
}

var resourceNames = []string{
	"users", "posts", "comments", "sessions", "assets", "search",
	"orders", "products", "events", "metrics",
}

func baseEntries(opts PairOptions, rng *rand.Rand) []harhar.Entry {
	entries := make([]harhar.Entry, 0, opts.EntryCount)
	start := time.Now().Add(-time.Hour)

	for i := 0; i < opts.EntryCount; i++ {
		name := resourceNames[i%len(resourceNames)]
		url := fmt.Sprintf("https://%s/api/%s/%d", opts.Host, name, i)

		timings := harhar.Timings{
			Blocked: round1(rng.Float64() * 10),
			DNS:     round1(rng.Float64() * 20),
			Connect: round1(rng.Float64() * 40),
			Send:    round1(rng.Float64() * 5),
			Wait:    round1(20 + rng.Float64()*200),
			Receive: round1(rng.Float64() * 60),
		}

		// reused connections report dns/connect as -1, the HAR
		// convention for "not measured"
		if i%5 == 4 {
			timings.DNS = -1
			timings.Connect = -1
		}

		status, statusText := 200, "OK"
		if i%10 == 9 {
			status, statusText = 404, "Not Found"
		}

		entries = append(entries, harhar.Entry{
			Start: start.Add(time.Duration(i) * time.Second).Format(time.RFC3339),
			Time:  totalOf(timings),
			Request: harhar.Request{
				Method:      "GET",
				URL:         url,
				HTTPVersion: "HTTP/1.1",
			},
			Response: harhar.Response{
				StatusCode:  status,
				StatusText:  statusText,
				HTTPVersion: "HTTP/1.1",
			},
			Timings: timings,
		})
	}

	return entries
}

// driftEntries clones the base entries with small random timing drift
// and slows a subset down hard enough to show up in the ranking.
func driftEntries(base []harhar.Entry, opts PairOptions, rng *rand.Rand) ([]harhar.Entry, []string) {
	after := make([]harhar.Entry, len(base))
	var regressed []string

	regressEvery := int(1 / opts.RegressionRatio)
	if regressEvery < 1 {
		regressEvery = 1
	}

	for i, entry := range base {
		t := entry.Timings
		t.Blocked = drift(t.Blocked, opts.DriftPercent, rng)
		t.Send = drift(t.Send, opts.DriftPercent, rng)
		t.Wait = drift(t.Wait, opts.DriftPercent, rng)
		t.Receive = drift(t.Receive, opts.DriftPercent, rng)

		if i%regressEvery == 0 {
			t.Wait = round1(t.Wait*2 + 50)
			regressed = append(regressed, entry.Request.URL)
		}

		entry.Timings = t
		entry.Time = totalOf(t)
		after[i] = entry
	}

	return after, regressed
}

// drift shifts a non-negative phase value by up to ±pct, never below 0.
func drift(v, pct float64, rng *rand.Rand) float64 {
	if v < 0 {
		return v
	}
	shifted := v * (1 + (rng.Float64()*2-1)*pct)
	if shifted < 0 {
		shifted = 0
	}
	return round1(shifted)
}

func totalOf(t harhar.Timings) float64 {
	total := 0.0
	for _, v := range []float64{t.Blocked, t.DNS, t.Connect, t.Send, t.Wait, t.Receive} {
		if v >= 0 {
			total += v
		}
	}
	return round1(total)
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func harDocument(entries []harhar.Entry) *harhar.HAR {
	return &harhar.HAR{
		Log: harhar.Log{
			Version: "1.2",
			Creator: harhar.Creator{
				Name:    "hargen",
				Version: "1.0.0",
			},
			Entries: entries,
		},
	}
}

func writeHAR(path string, har *harhar.HAR) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(har); err != nil {
		return fmt.Errorf("failed to write har: %w", err)
	}

	return nil
}
