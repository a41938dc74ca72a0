package str_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-types/str"
)

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"createdAt":     "created_at",
		"HelloWorldFoo": "hello_world_foo",
		"id":            "id",
		"":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, str.ToSnakeCase(in), in)
	}
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "helloWorldFoo", str.ToCamelCase("hello_world_foo", false))
	assert.Equal(t, "HelloWorldFoo", str.ToCamelCase("hello_world_foo", true))
	assert.Equal(t, "hello_World", str.ToCamelCase("hello_World", false))
	assert.Equal(t, "", str.ToCamelCase("", true))
}

func TestSnakeCamelRoundTrip(t *testing.T) {
	for _, s := range []string{"userId", "createdAtUtc", "name"} {
		assert.Equal(t, s, str.ToCamelCase(str.ToSnakeCase(s), false))
	}
}

func TestStripPolish(t *testing.T) {
	tests := map[string]string{
		"Zażółć gęślą jaźń":         "zazolc-gesla-jazn",
		"ŚĆÓŃŁĘŹŻ":                  "sconlezz",
		"  Hello / World__Foo!! ":   "hello-world-foo",
		"multi   space\tand\nlines": "multi-space-and-lines",
		"---":                       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, str.StripPolish(in), in)
	}
}

func TestShortenText(t *testing.T) {
	assert.Equal(t, "abcdef", str.ShortenText("abc&nbsp;def", 100))
	assert.Equal(t, "żółwi...", str.ShortenText("żółwie są wolne", 5))
	assert.Equal(t, "short", str.ShortenText("short", 5))

	long := make([]byte, 120)
	for i := range long {
		long[i] = 'a'
	}
	got := str.ShortenText(string(long), 0)
	assert.Len(t, got, str.DefaultShortenLength+3)
}

func TestToDelimitedLowerCase(t *testing.T) {
	assert.Equal(t, "hello world-2-", str.ToDelimitedLowerCase("Hello World_2!", "-"))
	assert.Equal(t, "___w", str.ToDelimitedLowerCase("Żółw", "_"))
	assert.Equal(t, "ab", str.ToDelimitedLowerCase("a.b", ""))
}
