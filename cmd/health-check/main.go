// Package main provides a standalone health check command for the Diet Partner service
// This command can be used for Docker health checks, monitoring scripts, and debugging
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dietpartner/v2/internal/infrastructure/ai/backend"
	"github.com/dietpartner/v2/internal/infrastructure/config"
	"github.com/dietpartner/v2/pkg/healthcheck"
	"github.com/dietpartner/v2/pkg/logger"
)

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
	exitCodeError   = 2
)

// Options holds command-line configuration
type Options struct {
	URL            string
	Timeout        time.Duration
	Verbose        bool
	OutputFormat   string
	ExpectedStatus string
	RetryCount     int
	RetryDelay     time.Duration
	ConfigPath     string
	LocalCheck     bool
}

func main() {
	opts := parseFlags()

	if opts.LocalCheck {
		os.Exit(runLocalHealthCheck(opts, os.Stdout))
	}
	os.Exit(runRemoteHealthCheck(opts, os.Stdout))
}

// parseFlags parses command-line flags
func parseFlags() Options {
	opts := Options{}

	flag.StringVar(&opts.URL, "url", "", "Probe URL (e.g. http://localhost:3000/health or /recommend for the AI backend)")
	flag.DurationVar(&opts.Timeout, "timeout", 10*time.Second, "Request timeout")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Verbose output")
	flag.StringVar(&opts.OutputFormat, "format", "text", "Output format: text, json, compact")
	flag.StringVar(&opts.ExpectedStatus, "expect", "healthy", "Expected status: healthy, backend_offline")
	flag.IntVar(&opts.RetryCount, "retry", 0, "Number of retries on failure")
	flag.DurationVar(&opts.RetryDelay, "retry-delay", 1*time.Second, "Delay between retries")
	flag.StringVar(&opts.ConfigPath, "config", "", "Configuration file path")
	flag.BoolVar(&opts.LocalCheck, "local", false, "Probe the AI backend directly instead of the running service")

	flag.Parse()

	if opts.URL == "" && !opts.LocalCheck {
		opts.URL = os.Getenv("HEALTH_CHECK_URL")
	}
	if opts.URL == "" {
		opts.URL = "http://localhost:3000/health"
	}

	return opts
}

// runRemoteHealthCheck probes a running service over HTTP
func runRemoteHealthCheck(opts Options, out io.Writer) int {
	client := &http.Client{Timeout: opts.Timeout}

	var lastError error
	for attempt := 0; attempt <= opts.RetryCount; attempt++ {
		if attempt > 0 {
			if opts.Verbose {
				fmt.Fprintf(out, "Retrying in %v... (attempt %d/%d)\n", opts.RetryDelay, attempt, opts.RetryCount)
			}
			time.Sleep(opts.RetryDelay)
		}

		resp, err := client.Get(opts.URL)
		if err != nil {
			lastError = err
			if opts.Verbose {
				fmt.Fprintf(out, "Request failed: %v\n", err)
			}
			continue
		}

		return handleResponse(resp, opts, out)
	}

	fmt.Fprintf(out, "Health check failed after %d attempts: %v\n", opts.RetryCount+1, lastError)
	return exitCodeError
}

// runLocalHealthCheck probes the configured AI backend without the service
func runLocalHealthCheck(opts Options, out io.Writer) int {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(out, "Failed to load configuration: %v\n", err)
		return exitCodeError
	}

	log, _, err := logger.New(logger.Config{Level: "warn", Format: "json"})
	if err != nil {
		fmt.Fprintf(out, "Failed to create logger: %v\n", err)
		return exitCodeError
	}

	client := backend.NewClient(backend.Config{
		BaseURL:    cfg.Backend.URL,
		HealthPath: cfg.Backend.HealthPath,
		Timeout:    opts.Timeout,
	}, log)

	hc := healthcheck.New(cfg.App.Version, log)
	hc.SetTimeout(opts.Timeout)
	hc.Register("backend", healthcheck.NewPingChecker(client.HealthCheck))

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	return outputResult(hc.Check(ctx), opts, out)
}

// handleResponse decodes the probe body
func handleResponse(resp *http.Response, opts Options, out io.Writer) int {
	defer resp.Body.Close()

	var response map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		fmt.Fprintf(out, "Failed to decode response: %v\n", err)
		return exitCodeError
	}

	return outputResult(response, opts, out)
}

// outputResult prints the result and maps its status onto an exit code
func outputResult(result interface{}, opts Options, out io.Writer) int {
	status := extractStatus(result)

	switch opts.OutputFormat {
	case "json":
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(out, string(data))
	case "compact":
		data, _ := json.Marshal(result)
		fmt.Fprintln(out, string(data))
	default:
		outputText(result, opts.Verbose, out)
	}

	if status == opts.ExpectedStatus {
		return exitCodeSuccess
	}
	return exitCodeFailure
}

// extractStatus reads the status of either a probe body or a local check
func extractStatus(result interface{}) string {
	switch r := result.(type) {
	case healthcheck.Response:
		return string(r.Status)
	case map[string]interface{}:
		if status, ok := r["status"].(string); ok {
			return status
		}
	}
	return string(healthcheck.StatusUnhealthy)
}

// outputText prints the result for humans
func outputText(result interface{}, verbose bool, out io.Writer) {
	switch r := result.(type) {
	case healthcheck.Response:
		fmt.Fprintf(out, "Status: %s\n", r.Status)
		fmt.Fprintf(out, "Version: %s\n", r.Version)
		fmt.Fprintf(out, "Duration: %dms\n", r.TotalDuration.Milliseconds())

		if verbose {
			for _, check := range r.Checks {
				fmt.Fprintf(out, "  %s: %s", check.Name, check.Status)
				if check.Message != "" {
					fmt.Fprintf(out, " (%s)", check.Message)
				}
				fmt.Fprintf(out, " [%dms]\n", check.Duration.Milliseconds())
			}
		}

	case map[string]interface{}:
		fmt.Fprintf(out, "Status: %s\n", extractStatus(r))
		if verbose {
			data, _ := json.MarshalIndent(r, "", "  ")
			fmt.Fprintln(out, string(data))
		}
	}
}
