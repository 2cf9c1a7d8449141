package people

import (
	"fmt"
	"io"
)

// Printable is anything that can emit a line of output.
type Printable interface {
	Print(msg string)
}

// ConsolePrinter writes each message on its own line.
type ConsolePrinter struct {
	w io.Writer
}

func NewConsolePrinter(w io.Writer) *ConsolePrinter {
	return &ConsolePrinter{w: w}
}

func (c *ConsolePrinter) Print(msg string) {
	fmt.Fprintln(c.w, msg)
}

// Demo prints the details of a sample student and instructor followed by
// their introductions.
func Demo(p Printable) {
	roster := []Person{
		NewStudent("Ian", 24, "Software Engineering"),
		NewInstructor("Dr. Smith", 45, "Computer Science"),
	}

	for _, person := range roster {
		p.Print(person.Details())
	}

	p.Print("")
	p.Print("Polymorphism Demo:")
	for _, person := range roster {
		p.Print(person.Introduce())
	}
}
