package customtypes

import (
	"fmt"
	"io"
)

// List is a singly linked list of uint32: either Cons, holding a value and a
// pointer to the rest, or Nil, the end marker.
type List interface {
	Len() int
	String() string
}

type Cons struct {
	Head uint32
	Tail List
}

type Nil struct{}

// NewList returns an empty list.
func NewList() List { return Nil{} }

// Prepend returns a new list with elem at the front. l is shared, not copied;
// a nil l counts as Nil.
func Prepend(l List, elem uint32) List {
	if l == nil {
		l = Nil{}
	}
	return &Cons{Head: elem, Tail: l}
}

func (c *Cons) Len() int { return 1 + c.Tail.Len() }
func (Nil) Len() int     { return 0 }

func (c *Cons) String() string { return fmt.Sprintf("%d, %s", c.Head, c.Tail.String()) }
func (Nil) String() string     { return "Nil" }

// EnumLinkedList builds a three element list by prepending.
func EnumLinkedList(w io.Writer) {
	list := NewList()

	list = Prepend(list, 1)
	list = Prepend(list, 2)
	list = Prepend(list, 3)

	fmt.Fprintf(w, "linked list has length: %d\n", list.Len())
	fmt.Fprintln(w, list.String())
}
