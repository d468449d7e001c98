package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Config holds the benchmark settings
var (
	targetURL   string
	concurrency int
	duration    time.Duration
	workload    string
)

// Metrics
var (
	totalRequests uint64
	success200    uint64
	fail404       uint64
	failOther     uint64
)

var userIDs = []string{"user-maria", "user-ahmad", "user-liza"}

var currencies = []string{"USD", "SGD", "PHP", "MYR", "IDR", "THB", "VND"}

func init() {
	flag.StringVar(&targetURL, "url", "http://localhost:8080", "API Base URL")
	flag.IntVar(&concurrency, "workers", 10, "Number of concurrent workers")
	flag.DurationVar(&duration, "duration", 30*time.Second, "Test duration")
	flag.StringVar(&workload, "workload", "balance", "Workload type: balance | timeline | mixed")
}

func main() {
	flag.Parse()
	log.Printf("Starting Benchmark: %s | Workers: %d | Duration: %s", workload, concurrency, duration)

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go worker(&wg, start)
	}

	wg.Wait()
	printResults(time.Since(start))
}

func worker(wg *sync.WaitGroup, start time.Time) {
	defer wg.Done()
	client := &http.Client{Timeout: 5 * time.Second}

	for time.Since(start) < duration {
		resp, err := client.Get(generateURL())
		if err != nil {
			atomic.AddUint64(&failOther, 1)
			continue
		}

		atomic.AddUint64(&totalRequests, 1)
		switch resp.StatusCode {
		case 200:
			atomic.AddUint64(&success200, 1)
		case 404:
			atomic.AddUint64(&fail404, 1)
		default:
			atomic.AddUint64(&failOther, 1)
		}
		resp.Body.Close()
	}
}

func generateURL() string {
	user := userIDs[rand.Intn(len(userIDs))]

	kind := workload
	if kind == "mixed" {
		if rand.Float32() < 0.5 {
			kind = "balance"
		} else {
			kind = "timeline"
		}
	}

	if kind == "timeline" {
		// Exercise the filter path on a slice of requests.
		if rand.Float32() < 0.3 {
			currency := currencies[rand.Intn(len(currencies))]
			return fmt.Sprintf("%s/api/v1/users/%s/transactions?currency=%s", targetURL, user, currency)
		}
		return fmt.Sprintf("%s/api/v1/users/%s/transactions", targetURL, user)
	}

	if rand.Float32() < 0.3 {
		currency := currencies[rand.Intn(len(currencies))]
		return fmt.Sprintf("%s/api/v1/users/%s/balance?homeCurrency=%s", targetURL, user, currency)
	}
	return fmt.Sprintf("%s/api/v1/users/%s/balance", targetURL, user)
}

func printResults(d time.Duration) {
	total := atomic.LoadUint64(&totalRequests)
	s200 := atomic.LoadUint64(&success200)
	f404 := atomic.LoadUint64(&fail404)
	fErr := atomic.LoadUint64(&failOther)

	tps := float64(total) / d.Seconds()

	results := map[string]interface{}{
		"workload":       workload,
		"duration_sec":   d.Seconds(),
		"total_requests": total,
		"throughput_tps": tps,
		"success_ok":     s200,
		"not_found":      f404,
		"errors":         fErr,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(results)

	// Also save to file
	filename := fmt.Sprintf("results_%s.json", workload)
	file, _ := os.Create(filename)
	defer file.Close()
	json.NewEncoder(file).Encode(results)
}
