package tracing

import (
	"context"
	"errors"
	"testing"

	"cv-parser/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMaskPII(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"J", "*"},
		{"Al", "A*"},
		{"Ann", "A*n"},
		{"John", "J**n"},
		{"jane.doe@example.com", "ja****************om"},
		{"+919876543210", "+9*********10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskPII(tt.in), "MaskPII(%q)", tt.in)
	}
}

func TestMaskOptional(t *testing.T) {
	assert.Equal(t, "", MaskOptional(nil))
	v := "John Smith"
	assert.Equal(t, "Jo******th", MaskOptional(&v))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "abc", TruncateString("abcdef", 3))
	assert.Equal(t, "abc...hij", TruncateString("abcdefghij", 9))
}

func TestSafeAttributeValue(t *testing.T) {
	assert.Equal(t, "ja****************om", SafeAttributeValue("profile.email", "jane.doe@example.com", 100))
	assert.Equal(t, "a...e", SafeAttributeValue("file", "abcde12345e", 5))
}

func TestRecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	_, span := tp.Tracer("test").Start(context.Background(), "ProcessFile")

	RecordError(span, errors.New("broken xref table"), ErrorTypeExtraction)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("error.type", string(ErrorTypeExtraction)))
	require.Len(t, spans[0].Events(), 1, "RecordError 应该添加 exception 事件")
}

func TestRecordErrorNilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordError(nil, errors.New("x"), ErrorTypeIO)
		RecordHTTPError(nil, nil, 500)
	})
}

func TestInitProviderDisabled(t *testing.T) {
	shutdown, err := InitProvider(context.Background(), config.TracingConfig{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
