package ai

import (
	"testing"
	"time"

	"github.com/Shrinivas-go/ats-backend/internal/config"

	"google.golang.org/genai"
)

func TestCircuitBreakerConfigurationMapping(t *testing.T) {
	// Test that configuration values are properly applied to circuit breakers

	customConfig := &config.AIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      10,
			Interval:         120 * time.Second,
			Timeout:          90 * time.Second,
			MinRequests:      5,
			FailureThreshold: 0.8,
		},
	}

	cb := NewAICircuitBreaker("Elaborate", customConfig, nil)

	// Verify circuit breaker was created with custom configuration
	if cb == nil {
		t.Fatal("Circuit breaker should not be nil")
	}

	stats := cb.GetStats()
	if stats == nil {
		t.Fatal("Circuit breaker stats should not be nil")
	}

	// Check that the circuit breaker has the expected operation type in its name
	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("Circuit breaker name not found")
	}

	expectedName := "AI-Elaborate"
	if name != expectedName {
		t.Errorf("Expected circuit breaker name '%s', got '%s'", expectedName, name)
	}

	// Verify it's in closed state initially
	state, ok := stats["state"].(string)
	if !ok {
		t.Fatal("Circuit breaker state not found")
	}
	if state != "closed" {
		t.Errorf("Expected initial state 'closed', got '%s'", state)
	}

	// Verify it's enabled
	enabled, ok := stats["enabled"].(bool)
	if !ok {
		t.Fatal("Circuit breaker enabled status not found")
	}
	if !enabled {
		t.Error("Circuit breaker should be enabled")
	}

	if !cb.IsHealthy() {
		t.Error("Circuit breaker should be healthy initially")
	}
}

func TestModelCircuitBreakerIndependentFromOperations(t *testing.T) {
	cfg := &config.AIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}

	opCB := NewAICircuitBreaker("Elaborate", cfg, nil)
	modelCB := NewModelCircuitBreaker("Elaborate", cfg, nil)

	if opCB == nil || modelCB == nil {
		t.Fatal("Both circuit breakers should be created when enabled")
	}

	opName, _ := opCB.GetStats()["name"].(string)
	modelName, _ := modelCB.GetModelStats()["name"].(string)

	if opName != "AI-Elaborate" {
		t.Errorf("Expected operation breaker name 'AI-Elaborate', got '%s'", opName)
	}
	if modelName != "AI-Model-Elaborate" {
		t.Errorf("Expected model breaker name 'AI-Model-Elaborate', got '%s'", modelName)
	}

	if !modelCB.IsModelHealthy() {
		t.Error("Model circuit breaker should be healthy initially")
	}
}

func TestCircuitBreakerDisabled(t *testing.T) {
	// Test that circuit breaker returns nil when disabled

	disabledConfig := &config.AIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled: false, // Disabled
		},
	}

	cb := NewAICircuitBreaker("Disabled", disabledConfig, nil)

	// Should return nil when disabled
	if cb != nil {
		t.Fatal("Circuit breaker should be nil when disabled")
	}

	// A nil breaker still executes the function directly
	if _, err := cb.Execute(func() (*genai.GenerateContentResponse, error) { return nil, nil }); err != nil {
		t.Errorf("Nil breaker should pass through, got error: %v", err)
	}

	if !cb.IsHealthy() {
		t.Error("Nil breaker should report healthy")
	}
}
