// Command benchmark load-tests the gallery API. It fires a configurable
// number of browse requests at the server, cycling through a set of filter
// shapes, and reports latency percentiles per endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

// Config holds the benchmark run parameters
type Config struct {
	BaseURL     string
	Requests    int
	Concurrency int
	Timeout     time.Duration
	ReportPath  string
}

// sample is one completed request
type sample struct {
	endpoint string
	latency  time.Duration
	status   int
	err      error
}

// endpointStats aggregates samples for one endpoint
type endpointStats struct {
	Endpoint  string
	Latencies []time.Duration
	Passed    int
	Failed    int
}

// requestShapes are the query mixes the benchmark cycles through. The first
// entry is explore mode; the rest exercise the filtered pipeline.
var requestShapes = []string{
	"/api/v1/coins",
	"/api/v1/coins?country_id=1",
	"/api/v1/coins?search=lira",
	"/api/v1/coins?owned=owned",
	"/api/v1/coins?country_id=1&sort=price_desc",
	"/api/v1/metadata",
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, finishing in-flight requests...")
		cancel()
	}()

	fmt.Printf("Benchmarking %s (%d requests, concurrency %d)\n\n", cfg.BaseURL, cfg.Requests, cfg.Concurrency)

	start := time.Now()
	samples := run(ctx, cfg)
	elapsed := time.Since(start)

	stats := aggregate(samples)
	printStats(stats, len(samples), elapsed)

	if cfg.ReportPath != "" {
		if err := writeMarkdownReport(cfg.ReportPath, stats, len(samples), elapsed); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nReport written to %s\n", cfg.ReportPath)
	}
}

func parseFlags() *Config {
	var cfg Config

	defaults := &BenchmarkConfig{BaseURL: defaultBaseURL}
	if loaded, err := LoadConfig(GetDefaultConfigPath()); err == nil {
		defaults = loaded
	}

	flag.StringVar(&cfg.BaseURL, "url", defaults.BaseURL, "Base URL of the gallery API")
	flag.IntVar(&cfg.Requests, "n", 100, "Total number of requests")
	flag.IntVar(&cfg.Concurrency, "c", 8, "Number of concurrent workers")
	flag.DurationVar(&cfg.Timeout, "timeout", 30*time.Second, "Per-request timeout")
	flag.StringVar(&cfg.ReportPath, "report", "", "Write a markdown report to this path")
	save := flag.Bool("save", false, "Save the base URL as the default")
	flag.Parse()

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if *save {
		if err := SaveConfig(GetDefaultConfigPath(), &BenchmarkConfig{BaseURL: cfg.BaseURL}); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save config: %v\n", err)
		}
	}

	return &cfg
}

func run(ctx context.Context, cfg *Config) []sample {
	client := &http.Client{Timeout: cfg.Timeout}

	jobs := make(chan string)
	results := make(chan sample, cfg.Requests)

	var wg sync.WaitGroup
	for range cfg.Concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for endpoint := range jobs {
				results <- fire(ctx, client, cfg.BaseURL, endpoint)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < cfg.Requests; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- requestShapes[i%len(requestShapes)]:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var samples []sample
	for s := range results {
		samples = append(samples, s)
	}
	return samples
}

func fire(ctx context.Context, client *http.Client, baseURL, endpoint string) sample {
	s := sample{endpoint: endpoint}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+endpoint, nil)
	if err != nil {
		s.err = err
		return s
	}

	start := time.Now()
	resp, err := client.Do(req)
	s.latency = time.Since(start)
	if err != nil {
		s.err = err
		return s
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	s.status = resp.StatusCode
	return s
}

func aggregate(samples []sample) []*endpointStats {
	byEndpoint := make(map[string]*endpointStats)
	for _, s := range samples {
		stats, ok := byEndpoint[s.endpoint]
		if !ok {
			stats = &endpointStats{Endpoint: s.endpoint}
			byEndpoint[s.endpoint] = stats
		}
		if s.err != nil || s.status >= 400 {
			stats.Failed++
			continue
		}
		stats.Passed++
		stats.Latencies = append(stats.Latencies, s.latency)
	}

	out := make([]*endpointStats, 0, len(byEndpoint))
	for _, stats := range byEndpoint {
		sort.Slice(stats.Latencies, func(i, j int) bool {
			return stats.Latencies[i] < stats.Latencies[j]
		})
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Endpoint < out[j].Endpoint })
	return out
}

// percentile returns the p-th percentile of sorted latencies
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)-1) * p)
	return sorted[idx]
}

func printStats(stats []*endpointStats, total int, elapsed time.Duration) {
	fmt.Printf("Completed %d requests in %s (%s)\n\n", total, formatDuration(elapsed), formatRate(total, elapsed))

	for _, s := range stats {
		fmt.Printf("%s %s\n", statusEmoji(s.Passed, s.Failed), s.Endpoint)
		fmt.Printf("   passed: %d  failed: %d  (%s ok)\n", s.Passed, s.Failed, percentageString(s.Passed, s.Passed+s.Failed))
		if len(s.Latencies) > 0 {
			fmt.Printf("   p50: %s  p95: %s  p99: %s  max: %s\n",
				formatDuration(percentile(s.Latencies, 0.50)),
				formatDuration(percentile(s.Latencies, 0.95)),
				formatDuration(percentile(s.Latencies, 0.99)),
				formatDuration(s.Latencies[len(s.Latencies)-1]),
			)
		}
		fmt.Println()
	}
}

func writeMarkdownReport(path string, stats []*endpointStats, total int, elapsed time.Duration) error {
	var b strings.Builder

	b.WriteString("# Gallery API Benchmark\n\n")
	b.WriteString(fmt.Sprintf("- Requests: %d\n", total))
	b.WriteString(fmt.Sprintf("- Duration: %s\n", formatDuration(elapsed)))
	b.WriteString(fmt.Sprintf("- Throughput: %s\n\n", formatRate(total, elapsed)))

	b.WriteString("| Endpoint | Passed | Failed | p50 | p95 | p99 |\n")
	b.WriteString("|----------|--------|--------|-----|-----|-----|\n")
	for _, s := range stats {
		b.WriteString(fmt.Sprintf("| `%s` | %d | %d | %s | %s | %s |\n",
			s.Endpoint, s.Passed, s.Failed,
			formatDuration(percentile(s.Latencies, 0.50)),
			formatDuration(percentile(s.Latencies, 0.95)),
			formatDuration(percentile(s.Latencies, 0.99)),
		))
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}
