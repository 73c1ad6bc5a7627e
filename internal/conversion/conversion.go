// Package conversion demonstrates converting between types: constructor
// functions, conversion methods, fallible conversions and string parsing.
package conversion

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/marcodamonte/basics/internal/runner"
)

// Group returns the conversion demos in presentation order.
func Group() runner.Group {
	return runner.Group{
		Name: "conversion",
		Demos: []runner.Demo{
			{Name: "from_into", Run: FromInto},
			{Name: "try_from_into", Run: TryFromInto},
			{Name: "convert_to_parse_from_string", Run: ParseFromString},
		},
	}
}

// ── Infallible conversion ────────────────────────────────────────────────────

// Number wraps an int32.
type Number struct {
	Value int32
}

// NumberFrom builds a Number from a plain integer.
func NumberFrom(v int32) Number { return Number{Value: v} }

// Int32 is a named integer that knows how to turn itself into a Number.
type Int32 int32

func (i Int32) Into() Number { return NumberFrom(int32(i)) }

// FromInto converts in both directions: a constructor on the target type
// and a method on the source type.
func FromInto(w io.Writer) {
	num := NumberFrom(30)
	fmt.Fprintf(w, "My number is %+v\n", num)

	integer := Int32(5)
	num = integer.Into()
	fmt.Fprintf(w, "My number is %+v\n", num)
}

// ── Fallible conversion ──────────────────────────────────────────────────────

// ErrNotEven is returned when converting an odd integer to EvenNumber.
var ErrNotEven = errors.New("not an even number")

// EvenNumber holds only even values when built through TryEvenNumber.
type EvenNumber int32

// TryEvenNumber succeeds only for even input.
func TryEvenNumber(v int32) Result[EvenNumber] {
	if v%2 == 0 {
		return Ok(EvenNumber(v))
	}
	return Err[EvenNumber](ErrNotEven)
}

func (i Int32) TryInto() Result[EvenNumber] { return TryEvenNumber(int32(i)) }

// TryFromInto checks the expected outcome of each conversion locally. A
// mismatch is reported on w and never leaves the demo.
func TryFromInto(w io.Writer) {
	expect(w, "TryEvenNumber(8)", TryEvenNumber(8), Ok(EvenNumber(8)))
	expect(w, "TryEvenNumber(5)", TryEvenNumber(5), Err[EvenNumber](ErrNotEven))

	expect(w, "Int32(8).TryInto()", Int32(8).TryInto(), Ok(EvenNumber(8)))
	expect(w, "Int32(5).TryInto()", Int32(5).TryInto(), Err[EvenNumber](ErrNotEven))
}

func expect(w io.Writer, label string, got, want Result[EvenNumber]) {
	verdict := "ok"
	if got.Value != want.Value || !errors.Is(got.Err, want.Err) {
		verdict = "MISMATCH"
	}
	fmt.Fprintf(w, "%s = %v ... %s\n", label, got, verdict)
}

// ── Strings ──────────────────────────────────────────────────────────────────

type Circle struct {
	Radius int32
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle of radius %d", c.Radius)
}

// ParseFromString formats values with fmt.Stringer and strconv, then parses
// integers back out of strings.
func ParseFromString(w io.Writer) {
	circle := Circle{Radius: 6}
	fmt.Fprintln(w, circle.String())
	fmt.Fprintf(w, "to_string() : %s\n", strconv.Itoa(int(circle.Radius)))

	parsed, err := strconv.Atoi("5")
	if err != nil {
		fmt.Fprintf(w, "parse failed: %v\n", err)
		return
	}
	turboParsed, err := strconv.ParseInt("10", 10, 32)
	if err != nil {
		fmt.Fprintf(w, "parse failed: %v\n", err)
		return
	}

	sum := int32(parsed) + int32(turboParsed)
	fmt.Fprintf(w, "Sum: %d\n", sum)
}
