package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "meeting-insights/internal/app/errors"
)

func TestRegistry(t *testing.T) {
	Register("Stub", func(cfg ProviderConfig) (Generator, error) {
		return GeneratorFunc(func(ctx context.Context, req *Request) ([]byte, error) {
			return []byte(`{"model":"` + cfg.Model + `"}`), nil
		}), nil
	})
	Register("broken", func(cfg ProviderConfig) (Generator, error) {
		return nil, errors.New("missing key")
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		gen, err := New(ProviderConfig{Provider: "STUB", Model: "m1"})
		require.NoError(t, err)

		out, err := gen.Generate(context.Background(), &Request{Name: "test"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"model":"m1"}`, string(out))
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New(ProviderConfig{Provider: "nope"})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))
		assert.Contains(t, err.Error(), "stub")
	})

	t.Run("creator error", func(t *testing.T) {
		_, err := New(ProviderConfig{Provider: "broken"})
		assert.ErrorContains(t, err, "create broken generator: missing key")
	})

	assert.Contains(t, Registered(), "stub")
}

func TestObjectSchemaRequiresAllProperties(t *testing.T) {
	s := Object(map[string]*Schema{
		"summary":     String("s"),
		"actionItems": ArrayOf(String("item"), "items"),
	})

	assert.Equal(t, TypeObject, s.Type)
	assert.Equal(t, []string{"actionItems", "summary"}, s.Required)
	assert.Equal(t, TypeString, s.Properties["actionItems"].Items.Type)
}
