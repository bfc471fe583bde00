package driver

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEndToEndScripts snapshots the rendered stdout of a handful of small
// programs exercising arithmetic, control flow, closures and the JSON
// built-ins together, the way a fixture-style test would for a larger
// language test suite.
func TestEndToEndScripts(t *testing.T) {
	scripts := []struct {
		name   string
		source string
	}{
		{
			name: "fizzbuzz",
			source: `FOR i = 1 TO 16 THEN
  IF i % 15 == 0 THEN PRINT("FizzBuzz")
  ELIF i % 3 == 0 THEN PRINT("Fizz")
  ELIF i % 5 == 0 THEN PRINT("Buzz")
  ELSE PRINT(i)
  END`,
		},
		{
			name: "closures",
			source: `VAR makeGreeter = FUNC(greeting)
  RETURN FUNC(name) -> greeting + ", " + name
END
VAR hello = makeGreeter("Hello")
VAR hi = makeGreeter("Hi")
PRINT(hello("Ada"))
PRINT(hi("Grace"))`,
		},
		{
			name: "json_roundtrip",
			source: `VAR data = [1, 2, [3, "four"]]
PRINT(JSON_ENCODE(data))
PRINT(JSON_DECODE(JSON_ENCODE(data)))`,
		},
	}

	for _, s := range scripts {
		t.Run(s.name, func(t *testing.T) {
			var buf bytes.Buffer
			d := New(WithIO(&buf, strings.NewReader("")))
			if _, err := d.Run("<test>", s.source); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_stdout", s.name), buf.String())
		})
	}
}
