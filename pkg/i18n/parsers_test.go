package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kwcheck/pkg/i18n"
)

func TestParsers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parser  i18n.Parser
		content string
	}{
		{"yaml", i18n.NewYAMLParser(), "en:\n  greeting: Hello\n"},
		{"json", i18n.NewJSONParser(), `{"en": {"greeting": "Hello"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.parser.Parse(context.Background(), []byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, map[string]map[string]any{"en": {"greeting": "Hello"}}, data)
		})
	}
}

func TestParsers_Errors(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := i18n.NewYAMLParser().Parse(ctx, []byte("en: {}"))
	assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	_, err = i18n.NewJSONParser().Parse(ctx, []byte("{}"))
	assert.ErrorIs(t, err, i18n.ErrJSONParsingCancelled)

	_, err = i18n.NewYAMLParser().Parse(context.Background(), []byte("en: [unclosed"))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	_, err = i18n.NewJSONParser().Parse(context.Background(), []byte("{"))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

	_, err = i18n.NewYAMLParser().Parse(context.Background(), []byte("en: just a string\n"))
	assert.ErrorIs(t, err, i18n.ErrInvalidTranslation)
	_, err = i18n.NewJSONParser().Parse(context.Background(), []byte(`{"en": 1}`))
	assert.ErrorIs(t, err, i18n.ErrInvalidTranslation)
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.yml"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("en.JSON"))
	assert.Nil(t, i18n.NewParserForFile("en.toml"))

	assert.True(t, i18n.NewYAMLParser().SupportsFileExtension(".YAML"))
	assert.False(t, i18n.NewYAMLParser().SupportsFileExtension("json"))
	assert.True(t, i18n.NewJSONParser().SupportsFileExtension(".json"))
}
