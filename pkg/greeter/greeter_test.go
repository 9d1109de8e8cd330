package greeter

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{
			name: "returns hello world message",
			arg:  "World",
			want: "Hello, World!",
		},
		{
			name: "returns hello message for arbitrary name",
			arg:  "Gopher",
			want: "Hello, Gopher!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Greeting(tt.arg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFarewell(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{
			name: "returns goodbye alice message",
			arg:  "Alice",
			want: "Goodbye, Alice!",
		},
		{
			name: "returns goodbye message for arbitrary name",
			arg:  "Bob",
			want: "Goodbye, Bob!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Farewell(tt.arg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentTime(t *testing.T) {
	g := New(nil)
	got := g.CurrentTime()
	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`), got)
}

func TestCurrentTimeFixedClock(t *testing.T) {
	g := New(nil)
	g.Now = func() time.Time {
		return time.Date(2025, 1, 2, 9, 5, 7, 0, time.Local)
	}
	assert.Equal(t, "09:05:07", g.CurrentTime())
}

func TestRunSequence(t *testing.T) {
	var buf bytes.Buffer
	g := New(&buf)
	g.Now = func() time.Time {
		return time.Date(2025, 1, 2, 23, 59, 1, 0, time.Local)
	}

	g.Run("World", "Alice")

	want := "Hello, World!\n23:59:01\nGoodbye, Alice!\n"
	assert.Equal(t, want, buf.String())
}
