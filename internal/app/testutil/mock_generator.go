package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"meeting-insights/internal/app/llm"
)

// MockGenerator is a testify mock of llm.Generator
type MockGenerator struct {
	mock.Mock
}

// NewMockGenerator creates a MockGenerator bound to t
func NewMockGenerator(t *testing.T) *MockGenerator {
	m := &MockGenerator{}
	m.Test(t)
	return m
}

// Generate implements llm.Generator
func (m *MockGenerator) Generate(ctx context.Context, req *llm.Request) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// OnFlow sets an expectation for calls made by the named flow
func (m *MockGenerator) OnFlow(name string) *mock.Call {
	return m.On("Generate", mock.Anything, ForFlow(name))
}

// ForFlow matches an *llm.Request by flow name
func ForFlow(name string) interface{} {
	return mock.MatchedBy(func(req *llm.Request) bool {
		return req != nil && req.Name == name
	})
}

// WaitForCancel is a Run function that blocks until the call's context is done.
func WaitForCancel(args mock.Arguments) {
	ctx := args.Get(0).(context.Context)
	<-ctx.Done()
}
