package world

import (
	"context"
	"math/rand"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestBuildRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	d := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(42)))
	if err := d.Build(context.Background()); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != "dungeon.build" {
		t.Errorf("Span name = %q", span.Name())
	}

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if got := attrs["dungeon.room_count"].AsInt64(); got != int64(len(d.Rooms())) {
		t.Errorf("room_count = %d, want %d", got, len(d.Rooms()))
	}
	if got := attrs["player.x"].AsInt64(); got != int64(d.PlayerPos().X) {
		t.Errorf("player.x = %d, want %d", got, d.PlayerPos().X)
	}
}
