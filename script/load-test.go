package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// CreditCardPayload is the request body for creating a credit card method
type CreditCardPayload struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	UserID         int    `json:"user_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	CardNumber     string `json:"card_number"`
	ExpiryMonth    int    `json:"expiry_month"`
	ExpiryYear     int    `json:"expiry_year"`
	SecurityCode   string `json:"security_code"`
	BillingAddress string `json:"billing_address"`
	ZipCode        string `json:"zip_code"`
}

// PayPalPayload is the request body for creating a PayPal method
type PayPalPayload struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
}

// SetDefaultPayload is the request body for promoting a method to default
type SetDefaultPayload struct {
	UserID int `json:"user_id"`
}

// CreatedMethod captures the id of a created method so it can be promoted later
type CreatedMethod struct {
	ID     uint64 `json:"id"`
	UserID uint64 `json:"user_id"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Scenario     string
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userIDsStr := flag.String("u", "1,2,3", "Comma-separated list of user IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var userIDs []int
	for _, idStr := range strings.Split(*userIDsStr, ",") {
		var id int
		if _, err := fmt.Sscanf(idStr, "%d", &id); err == nil && id > 0 {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []int{1}
	}

	fmt.Printf("Load testing API across %d users: %v\n", len(userIDs), userIDs)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	// Created method ids shared across workers so set-default has targets
	created := &createdPool{}

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, userIDs, created, jobs, results)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	go func() {
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ScenarioStats[result.Scenario]++
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

// createdPool tracks methods created during the run
type createdPool struct {
	methods []CreatedMethod
	lock    sync.Mutex
}

func (p *createdPool) add(m CreatedMethod) {
	p.lock.Lock()
	p.methods = append(p.methods, m)
	p.lock.Unlock()
}

func (p *createdPool) random() (CreatedMethod, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if len(p.methods) == 0 {
		return CreatedMethod{}, false
	}
	return p.methods[rand.Intn(len(p.methods))], true
}

func worker(id int, baseURL string, delayMs int, userIDs []int,
	created *createdPool, jobs <-chan int, results chan<- TestResult) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		userID := userIDs[rand.Intn(len(userIDs))]

		// Mix creates with set-default promotions once targets exist
		var result TestResult
		switch rand.Intn(3) {
		case 0:
			result = createCreditCard(client, baseURL, id, jobID, userID, created)
		case 1:
			result = createPayPal(client, baseURL, id, jobID, userID, created)
		default:
			target, ok := created.random()
			if !ok {
				result = createPayPal(client, baseURL, id, jobID, userID, created)
			} else {
				result = setDefault(client, baseURL, target)
			}
		}

		results <- result
	}
}

func createCreditCard(client *http.Client, baseURL string, workerID, jobID, userID int, created *createdPool) TestResult {
	payload := CreditCardPayload{
		Name:           fmt.Sprintf("Load Card %d-%d", workerID, jobID),
		Type:           "CREDIT_CARD",
		UserID:         userID,
		FirstName:      "Load",
		LastName:       "Tester",
		CardNumber:     fmt.Sprintf("4%015d", rand.Intn(1000000000)),
		ExpiryMonth:    rand.Intn(12) + 1,
		ExpiryYear:     2025 + rand.Intn(10),
		SecurityCode:   fmt.Sprintf("%03d", rand.Intn(1000)),
		BillingAddress: "1 Load Test Way",
		ZipCode:        fmt.Sprintf("%05d", rand.Intn(100000)),
	}
	return postJSON(client, baseURL+"/payment-methods", "Create Credit Card", payload, created)
}

func createPayPal(client *http.Client, baseURL string, workerID, jobID, userID int, created *createdPool) TestResult {
	payload := PayPalPayload{
		Name:   fmt.Sprintf("Load PayPal %d-%d", workerID, jobID),
		Type:   "PAYPAL",
		UserID: userID,
		Email:  fmt.Sprintf("load-%d-%d@example.com", workerID, jobID),
	}
	return postJSON(client, baseURL+"/payment-methods", "Create PayPal", payload, created)
}

func setDefault(client *http.Client, baseURL string, target CreatedMethod) TestResult {
	url := fmt.Sprintf("%s/payment-methods/%d/set-default", baseURL, target.ID)
	return postJSON(client, url, "Set Default", SetDefaultPayload{UserID: int(target.UserID)}, nil)
}

func postJSON(client *http.Client, url, scenario string, payload any, created *createdPool) TestResult {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return TestResult{Success: false, Scenario: scenario, Error: err}
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return TestResult{Success: false, Scenario: scenario, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err := client.Do(req)
	responseTime := time.Since(startTime)

	result := TestResult{
		ResponseTime: responseTime,
		Scenario:     scenario,
	}

	if err != nil {
		result.Success = false
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		return result
	}

	if created != nil {
		var method CreatedMethod
		if err := json.NewDecoder(resp.Body).Decode(&method); err == nil && method.ID > 0 {
			created.add(method)
		}
	}

	return result
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)
		sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were successful)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	totalScenarios := 0
	for _, count := range stats.ScenarioStats {
		totalScenarios += count
	}
	for scenario, count := range stats.ScenarioStats {
		if count > 0 {
			fmt.Printf("%-20s: %d requests (%.1f%%)\n", scenario, count,
				float64(count)/float64(totalScenarios)*100)
		}
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
}
