package customtypes

import (
	"fmt"
	"io"
)

// ── Sum type: sealed interface + one struct per variant ─────────────────────
// The unexported method keeps other packages from adding variants, so a type
// switch over the five cases below is exhaustive.

type WebEvent interface {
	isWebEvent()
}

type (
	PageLoad   struct{}
	PageUnload struct{}
	KeyPress   struct{ Key rune }
	Paste      struct{ Text string }
	Click      struct{ X, Y int64 }
)

func (PageLoad) isWebEvent()   {}
func (PageUnload) isWebEvent() {}
func (KeyPress) isWebEvent()   {}
func (Paste) isWebEvent()      {}
func (Click) isWebEvent()      {}

// Inspect describes an event, unpacking each variant's payload. A nil event
// is reported as "no event".
func Inspect(event WebEvent) string {
	switch e := event.(type) {
	case nil:
		return "no event"
	case PageLoad:
		return "page loaded"
	case PageUnload:
		return "page unloaded"
	case KeyPress:
		return fmt.Sprintf("pressed '%c'.", e.Key)
	case Paste:
		return fmt.Sprintf("pasted %q.", e.Text)
	case Click:
		return fmt.Sprintf("clicked at x=%d, y=%d.", e.X, e.Y)
	default:
		panic(fmt.Sprintf("unknown web event %T", event))
	}
}

// Enum inspects one event of each variant.
func Enum(w io.Writer) {
	events := []WebEvent{
		KeyPress{Key: 'x'},
		Paste{Text: "my text"},
		Click{X: 20, Y: 80},
		PageLoad{},
		PageUnload{},
	}
	for _, e := range events {
		fmt.Fprintln(w, Inspect(e))
	}
}

// ── Named constants and aliases ──────────────────────────────────────────────

type Status int

const (
	Rich Status = iota
	Poor
)

type Work int

const (
	Civilian Work = iota
	Soldier
)

type VeryVerboseEnumOfThingsToDoWithNumbers int

const (
	Add VeryVerboseEnumOfThingsToDoWithNumbers = iota
	Subtract
)

func (op VeryVerboseEnumOfThingsToDoWithNumbers) String() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	}
	return fmt.Sprintf("VeryVerboseEnumOfThingsToDoWithNumbers(%d)", int(op))
}

// Run applies the operation to x and y.
func (op VeryVerboseEnumOfThingsToDoWithNumbers) Run(x, y int32) int32 {
	if op == Subtract {
		return x - y
	}
	return x + y
}

// Operations is an alias: the same type under a shorter name.
type Operations = VeryVerboseEnumOfThingsToDoWithNumbers

// EnumUse switches over named constants and refers to a type through its
// alias.
func EnumUse(w io.Writer) {
	status := Poor
	work := Civilian

	switch status {
	case Rich:
		fmt.Fprintln(w, "The rich have lots of money!")
	case Poor:
		fmt.Fprintln(w, "The poor have no money...")
	}

	switch work {
	case Civilian:
		fmt.Fprintln(w, "Civilians work!")
	case Soldier:
		fmt.Fprintln(w, "Soldiers fight!")
	}

	var x Operations = Add
	fmt.Fprintf(w, "%v\n", x)

	fmt.Fprintln(w, VeryVerboseEnumOfThingsToDoWithNumbers.Run(Add, 1, 2))
}

// ── Discriminants ────────────────────────────────────────────────────────────

// Number has implicit discriminants counting up from zero.
type Number int32

const (
	Zero Number = iota
	One
	Two
)

// Color has explicit discriminants.
type Color int32

const (
	Red   Color = 0xff0000
	Green Color = 0x00ff00
	Blue  Color = 0x0000ff
)

// EnumC prints enum values as their integer discriminants.
func EnumC(w io.Writer) {
	fmt.Fprintf(w, "zero is %d\n", int32(Zero))
	fmt.Fprintf(w, "one is %d\n", int32(One))
	fmt.Fprintf(w, "two is %d\n", int32(Two))

	fmt.Fprintf(w, "roses are #%06x\n", int32(Red))
	fmt.Fprintf(w, "violets are #%06x\n", int32(Blue))
	fmt.Fprintf(w, "green are #%06x\n", int32(Green))
}
