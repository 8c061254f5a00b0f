package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

var (
	defaultPrompts = []string{
		"ordering workflow",
		"user registration with email confirmation",
		"library management system entities",
		"product launch plan",
	}

	endpoints = []string{
		"/v1/ai/text-to-diagram/generate",
		"/v1/ai/mindmap/generate",
		"/v1/ai/mindmap/markup/generate",
	}
)

func main() {
	backend := flag.String("backend", "http://localhost:8080", "backend base URL")
	promptsFile := flag.String("prompts", "", "file with one prompt per line")
	flag.Parse()

	prompts := defaultPrompts
	if *promptsFile != "" {
		var err error
		prompts, err = readPrompts(*promptsFile)
		if err != nil {
			log.Fatalf("read prompts: %v", err)
		}
	}

	ctx := context.Background()
	client := &http.Client{}

	var results []BenchResult
	for _, endpoint := range endpoints {
		for _, prompt := range prompts {
			res := benchmarkPrompt(ctx, client, *backend+endpoint, endpoint, prompt)
			if res.Err != nil {
				log.Println("ERR:", res.Endpoint, res.Err)
			} else {
				log.Printf("OK %s %q %v", res.Endpoint, res.Prompt, res.Duration)
			}
			results = append(results, res)
		}
	}

	printMarkdown(os.Stdout, results)
}

func readPrompts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var prompts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			prompts = append(prompts, line)
		}
	}
	return prompts, scanner.Err()
}

func benchmarkPrompt(ctx context.Context, client *http.Client, url, endpoint, prompt string) BenchResult {
	start := time.Now()
	resp, err := send(ctx, client, url, GenerateRequest{Prompt: prompt})

	return BenchResult{
		Prompt:   prompt,
		Endpoint: endpoint,
		Duration: time.Since(start),
		Size:     len(resp.GeneratedResponse),
		Err:      err,
	}
}

func send(ctx context.Context, client *http.Client, url string, req GenerateRequest) (GenerateResponse, error) {
	var out GenerateResponse

	body, err := sonic.Marshal(req)
	if err != nil {
		return out, fmt.Errorf("marshal req: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(httpReq)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, err
	}
	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := sonic.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("unmarshal resp: %w", err)
	}
	return out, nil
}

func aggregate(results []BenchResult) map[string]Agg {
	m := map[string]Agg{}
	for _, r := range results {
		a := m[r.Endpoint]
		if r.Err != nil {
			a.Errors++
			m[r.Endpoint] = a
			continue
		}
		a.Count++
		a.TotalBytes += r.Size
		a.Total += r.Duration
		m[r.Endpoint] = a
	}
	return m
}

func printMarkdown(w io.Writer, results []BenchResult) {
	fmt.Fprintln(w, "\n## Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Endpoint | Requests | Errors | Avg Time | Total Time | Avg Result Size |")
	fmt.Fprintln(w, "|----------|----------|--------|----------|------------|-----------------|")

	agg := aggregate(results)

	names := make([]string, 0, len(agg))
	for name := range agg {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a := agg[name]
		var avg time.Duration
		var avgSize int
		if a.Count > 0 {
			avg = a.Total / time.Duration(a.Count)
			avgSize = a.TotalBytes / a.Count
		}
		fmt.Fprintf(w, "| %s | %d | %d | %v | %v | %d B |\n",
			name,
			a.Count,
			a.Errors,
			avg.Round(time.Millisecond),
			a.Total.Round(time.Millisecond),
			avgSize,
		)
	}
}
