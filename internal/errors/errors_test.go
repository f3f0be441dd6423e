package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrState,
		ErrScript,
		ErrUI,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .statable.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "state error",
			code:       ErrState,
			message:    "Unknown state \"spun\"",
			suggestion: "Use one of: spinning, paused, stopped",
		},
		{
			name:       "script error",
			code:       ErrScript,
			message:    "Step 2 has an invalid duration",
			suggestion: "Use a duration like 500ms or 2s",
		},
		{
			name:       "ui error",
			code:       ErrUI,
			message:    "Demo needs a terminal",
			suggestion: "Run 'statable script' instead",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid configuration", "Check .statable.yaml syntax"),
			expectedParts: []string{
				"Invalid configuration",
				"Check .statable.yaml syntax",
			},
		},
		{
			name: "error with failure symbol",
			err:  New(ErrState, "Unknown state", "Try again"),
			expectedParts: []string{
				"✗",
				"Unknown state",
			},
		},
		{
			name: "error without suggestion",
			err:  New(ErrScript, "Empty script", ""),
			expectedParts: []string{
				"Empty script",
			},
			notExpected: []string{
				"\n\n  \n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part, "output should contain %q", part)
			}

			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part, "output should not contain %q", part)
			}
		})
	}
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Create .statable.yaml file")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Failed to load config", wrapped.Message)
	assert.Equal(t, "Create .statable.yaml file", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Cause)
	assert.Contains(t, wrapped.Error(), "file not found")
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrScript, "Script error", "")

	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, cause, wrapped.Unwrap())

	var sErr *Error
	require.True(t, errors.As(wrapped, &sErr))
	assert.Equal(t, ErrScript, sErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrState))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("yaml: line 3: mapping values are not allowed"),
		ErrConfig,
		"Failed to read config file",
		"Check the file is valid YAML",
	)

	lines := strings.Split(err.Error(), "\n")

	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "✗"), "First line should start with failure symbol")
	assert.Contains(t, lines[0], "Failed to read config file")
}
