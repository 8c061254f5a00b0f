package main

import "time"

type GenerateRequest struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language,omitempty"`
}

type GenerateResponse struct {
	GeneratedResponse string `json:"generatedResponse"`
}

type BenchResult struct {
	Prompt   string
	Endpoint string
	Duration time.Duration
	Size     int
	Err      error
}

type Agg struct {
	Count      int
	Errors     int
	Total      time.Duration
	TotalBytes int
}
