package providers

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// ErrNoProviderAvailable is returned at construction when no gateway passed
// its credential check. This is a fatal configuration error, not a runtime
// fallback case.
var ErrNoProviderAvailable = errors.New("no AI provider available: configure ANTHROPIC_API_KEY or OPENAI_API_KEY")

// AllProvidersFailedError reports that every gateway in the chain failed for
// one operation. It wraps the last underlying error.
type AllProvidersFailedError struct {
	Operation string
	LastErr   error
}

func (e *AllProvidersFailedError) Error() string {
	return fmt.Sprintf("all AI providers failed for %s: %v", e.Operation, e.LastErr)
}

func (e *AllProvidersFailedError) Unwrap() error {
	return e.LastErr
}

// secondaryOrder fixes the position of any available gateway that was not
// chosen as primary.
var secondaryOrder = []string{ClaudeProviderName, OpenAIProviderName}

// Orchestrator holds the ordered gateway chain, built once at startup. Per
// call the chain is walked strictly sequentially: each gateway gets exactly
// one attempt, the first success wins, and only exhaustion of the whole chain
// fails the call. Transient and permanent errors are treated identically.
type Orchestrator struct {
	gateways []Gateway
}

// NewOrchestrator orders the constructed gateways primary-first, then the
// fixed secondary order, then anything else in the order given. Duplicates
// and nil entries are suppressed.
func NewOrchestrator(primary string, gateways ...Gateway) (*Orchestrator, error) {
	byName := make(map[string]Gateway, len(gateways))
	for _, gw := range gateways {
		if gw != nil {
			byName[gw.Name()] = gw
		}
	}

	ordered := make([]Gateway, 0, len(byName))
	take := func(name string) {
		if gw, ok := byName[name]; ok {
			ordered = append(ordered, gw)
			delete(byName, name)
		}
	}

	take(primary)
	for _, name := range secondaryOrder {
		take(name)
	}
	for _, gw := range gateways {
		if gw != nil {
			take(gw.Name())
		}
	}

	if len(ordered) == 0 {
		return nil, ErrNoProviderAvailable
	}

	return &Orchestrator{gateways: ordered}, nil
}

// Execute walks the gateway chain for the named operation, invoking fn once
// per gateway until it returns nil, and returns the name of the gateway that
// served the call. Every attempt's failure is logged and swallowed so the
// next gateway can be tried; a cancelled context stops the walk immediately.
func (o *Orchestrator) Execute(ctx context.Context, operation string, fn func(ctx context.Context, gw Gateway) error) (string, error) {
	var lastErr error

	for _, gw := range o.gateways {
		log.Printf("[INFO] Attempting %s with provider %s", operation, gw.Name())

		err := fn(ctx, gw)
		if err == nil {
			return gw.Name(), nil
		}

		lastErr = err
		log.Printf("[ERROR] Provider %s failed during %s: %v", gw.Name(), operation, err)

		if ctx.Err() != nil {
			break
		}
	}

	return "", &AllProvidersFailedError{Operation: operation, LastErr: lastErr}
}

// GenerateText runs the generic text-generation primitive through the chain
// and returns the raw reply plus the provider that served it.
func (o *Orchestrator) GenerateText(ctx context.Context, operation, prompt string, maxTokens int, temperature float64) (string, string, error) {
	var raw string

	provider, err := o.Execute(ctx, operation, func(ctx context.Context, gw Gateway) error {
		text, err := gw.Generate(ctx, prompt, maxTokens, temperature)
		if err != nil {
			return err
		}
		raw = text
		return nil
	})
	if err != nil {
		return "", "", err
	}

	return raw, provider, nil
}

// Providers returns the chain order by gateway name, primary first.
func (o *Orchestrator) Providers() []string {
	names := make([]string, len(o.gateways))
	for i, gw := range o.gateways {
		names[i] = gw.Name()
	}
	return names
}

// Has reports whether a gateway with the given name is in the chain.
func (o *Orchestrator) Has(name string) bool {
	for _, gw := range o.gateways {
		if gw.Name() == name {
			return true
		}
	}
	return false
}
