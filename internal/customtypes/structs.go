package customtypes

import (
	"fmt"
	"io"
)

type Person struct {
	Name string
	Age  uint8
}

// Unit carries no data; its zero value is its only value.
type Unit struct{}

// Pair has positional fields in spirit; Go names them anyway.
type Pair struct {
	A int32
	B float32
}

type Point struct {
	X, Y float32
}

// Rectangle reuses Point as a field type.
type Rectangle struct {
	TopLeft     Point
	BottomRight Point
}

// Structs builds, copies and unpacks struct values.
func Structs(w io.Writer) {
	name := "Peter"
	age := uint8(27)
	peter := Person{Name: name, Age: age}

	fmt.Fprintf(w, "%+v\n", peter)

	point := Point{X: 10.3, Y: 0.4}
	fmt.Fprintf(w, "point coordinates: (%v, %v)\n", point.X, point.Y)

	// Copy the struct, then override one field.
	bottomRight := point
	bottomRight.X = 5.2
	fmt.Fprintf(w, "second point: (%v, %v)\n", bottomRight.X, bottomRight.Y)

	leftEdge, topEdge := point.X, point.Y
	_ = Rectangle{
		TopLeft:     Point{X: leftEdge, Y: topEdge},
		BottomRight: bottomRight,
	}

	_ = Unit{}

	pair := Pair{1, 0.1}
	fmt.Fprintf(w, "pair contains %v and %v\n", pair.A, pair.B)

	integer, decimal := pair.A, pair.B
	fmt.Fprintf(w, "pair contains %v and %v\n", integer, decimal)
}
