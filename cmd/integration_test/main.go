package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/agentgenesis/api/internal/models"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of a running agentgen API")
	task := flag.String("task", "An agent that translates English text to French", "Task description to send")
	flag.Parse()

	// 1. Wait for the server to come up
	client := &http.Client{Timeout: 5 * time.Second}
	var err error
	for i := 0; i < 10; i++ {
		var resp *http.Response
		resp, err = client.Get(*baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			break
		}
		log.Printf("Waiting for server... %v", err)
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatalf("Server not reachable after retries: %v", err)
	}

	// 2. Call the generation endpoint
	log.Println("Calling generation endpoint...")
	jsonBody, _ := json.Marshal(models.GenerateAgentRequest{TaskDescription: *task})
	req, _ := http.NewRequest(http.MethodPost, *baseURL+"/api/v1/agents/generate", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Generation runs a model call; allow well beyond the server's own timeout.
	client.Timeout = 2 * time.Minute
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		log.Fatalf("Expected 200 OK, got %d. Body: %s", resp.StatusCode, buf.String())
	}

	// 3. Verify the response shape
	var out models.GenerateAgentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Fatalf("Failed to decode response: %v", err)
	}
	if err := checkResponse(out); err != nil {
		log.Fatalf("Invalid response: %v", err)
	}

	log.Printf("Generation %s (%s, %dms):\n%s", out.GenerationID, out.Model, out.LatencyMs, out.Code)
	log.Println("SUCCESS: Verified generation endpoint")
}

// checkResponse validates the fields every successful generation carries.
// The code itself may contain fences when the reply was passed through verbatim.
func checkResponse(out models.GenerateAgentResponse) error {
	if strings.TrimSpace(out.Code) == "" {
		return errors.New("response carried no code")
	}
	if out.Language != models.Language {
		return errors.New("unexpected language " + out.Language)
	}
	if out.Model == "" {
		return errors.New("response carried no model")
	}
	return nil
}
