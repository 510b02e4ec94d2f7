package providers

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

type stubGateway struct {
	name  string
	reply string
	err   error
	calls int
}

func (s *stubGateway) Name() string {
	return s.name
}

func (s *stubGateway) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	s.calls++
	if s.err != nil {
		return "", &ProviderError{Provider: s.name, Err: s.err}
	}
	return s.reply, nil
}

func TestNewOrchestratorOrdering(t *testing.T) {
	claude := &stubGateway{name: ClaudeProviderName}
	openai := &stubGateway{name: OpenAIProviderName}

	tests := []struct {
		name     string
		primary  string
		gateways []Gateway
		expected []string
	}{
		{
			name:     "claude primary",
			primary:  ClaudeProviderName,
			gateways: []Gateway{claude, openai},
			expected: []string{ClaudeProviderName, OpenAIProviderName},
		},
		{
			name:     "openai primary reorders chain",
			primary:  OpenAIProviderName,
			gateways: []Gateway{claude, openai},
			expected: []string{OpenAIProviderName, ClaudeProviderName},
		},
		{
			name:     "primary not constructed falls back to secondary order",
			primary:  ClaudeProviderName,
			gateways: []Gateway{openai},
			expected: []string{OpenAIProviderName},
		},
		{
			name:     "duplicates suppressed",
			primary:  ClaudeProviderName,
			gateways: []Gateway{claude, claude, openai},
			expected: []string{ClaudeProviderName, OpenAIProviderName},
		},
		{
			name:     "nil gateways ignored",
			primary:  OpenAIProviderName,
			gateways: []Gateway{nil, openai},
			expected: []string{OpenAIProviderName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orch, err := NewOrchestrator(tt.primary, tt.gateways...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(orch.Providers(), tt.expected) {
				t.Errorf("expected order %v, got %v", tt.expected, orch.Providers())
			}
		})
	}
}

func TestNewOrchestratorNoGateways(t *testing.T) {
	_, err := NewOrchestrator(ClaudeProviderName)
	if !errors.Is(err, ErrNoProviderAvailable) {
		t.Fatalf("expected ErrNoProviderAvailable, got %v", err)
	}

	_, err = NewOrchestrator(ClaudeProviderName, nil)
	if !errors.Is(err, ErrNoProviderAvailable) {
		t.Fatalf("expected ErrNoProviderAvailable for nil-only gateways, got %v", err)
	}
}

func TestExecuteFallsBackToNextGateway(t *testing.T) {
	failing := &stubGateway{name: ClaudeProviderName, err: fmt.Errorf("rate limited")}
	healthy := &stubGateway{name: OpenAIProviderName, reply: "ok"}

	orch, err := NewOrchestrator(ClaudeProviderName, failing, healthy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, provider, err := orch.GenerateText(context.Background(), "test generation", "prompt", 100, 0.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "ok" {
		t.Errorf("expected reply from healthy gateway, got %q", raw)
	}
	if provider != OpenAIProviderName {
		t.Errorf("expected provider %q, got %q", OpenAIProviderName, provider)
	}
	if failing.calls != 1 {
		t.Errorf("expected exactly one attempt on failing gateway, got %d", failing.calls)
	}
}

func TestExecuteFirstSuccessStopsChain(t *testing.T) {
	first := &stubGateway{name: ClaudeProviderName, reply: "first"}
	second := &stubGateway{name: OpenAIProviderName, reply: "second"}

	orch, _ := NewOrchestrator(ClaudeProviderName, first, second)

	raw, provider, err := orch.GenerateText(context.Background(), "test generation", "prompt", 100, 0.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "first" || provider != ClaudeProviderName {
		t.Errorf("expected first gateway to serve, got %q from %q", raw, provider)
	}
	if second.calls != 0 {
		t.Errorf("second gateway should not be called after a success, got %d calls", second.calls)
	}
}

func TestExecuteAllGatewaysFail(t *testing.T) {
	errA := fmt.Errorf("auth failure")
	errB := fmt.Errorf("network failure")
	a := &stubGateway{name: ClaudeProviderName, err: errA}
	b := &stubGateway{name: OpenAIProviderName, err: errB}

	orch, _ := NewOrchestrator(ClaudeProviderName, a, b)

	_, _, err := orch.GenerateText(context.Background(), "test generation", "prompt", 100, 0.7)

	var allFailed *AllProvidersFailedError
	if !errors.As(err, &allFailed) {
		t.Fatalf("expected AllProvidersFailedError, got %v", err)
	}
	if !errors.Is(err, errB) {
		t.Errorf("expected the last gateway's error to be wrapped, got %v", allFailed.LastErr)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("expected exactly one attempt per gateway, got %d and %d", a.calls, b.calls)
	}
}

func TestExecuteStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	first := &stubGateway{name: ClaudeProviderName, err: fmt.Errorf("slow call interrupted")}
	second := &stubGateway{name: OpenAIProviderName, reply: "never reached"}

	orch, _ := NewOrchestrator(ClaudeProviderName, first, second)

	_, err := orch.Execute(ctx, "test generation", func(ctx context.Context, gw Gateway) error {
		cancel()
		_, err := gw.Generate(ctx, "prompt", 100, 0.7)
		return err
	})
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if second.calls != 0 {
		t.Errorf("chain should stop once the context is cancelled, second gateway got %d calls", second.calls)
	}
}
