// Package people models students and instructors as one tagged Person type.
//
// A Person is immutable once constructed. Behaviour that differs between kinds
// (Introduce, Details) switches on the Kind tag instead of relying on
// embedding or interfaces per kind.
package people

import "fmt"

// Kind tags which variant a Person is.
type Kind int

const (
	KindStudent Kind = iota + 1
	KindInstructor
)

func (k Kind) String() string {
	switch k {
	case KindStudent:
		return "student"
	case KindInstructor:
		return "instructor"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Person holds the fields shared by every kind plus the payload of its own
// variant. Course is only meaningful for students and Department only for
// instructors.
type Person struct {
	kind       Kind
	name       string
	age        int
	course     string
	department string
}

func NewStudent(name string, age int, course string) Person {
	return Person{kind: KindStudent, name: name, age: age, course: course}
}

func NewInstructor(name string, age int, department string) Person {
	return Person{kind: KindInstructor, name: name, age: age, department: department}
}

func (p Person) Kind() Kind         { return p.kind }
func (p Person) Name() string       { return p.name }
func (p Person) Age() int           { return p.age }
func (p Person) Course() string     { return p.course }
func (p Person) Department() string { return p.department }

// Introduce returns a greeting. Students mention their course; everyone else
// gives their name and age.
func (p Person) Introduce() string {
	switch p.kind {
	case KindStudent:
		return fmt.Sprintf("Hi, I'm %s, studying %s.", p.name, p.course)
	default:
		return fmt.Sprintf("Hi, I'm %s and I'm %d years old.", p.name, p.age)
	}
}

// Details returns a one-line summary that is distinct for every kind.
func (p Person) Details() string {
	switch p.kind {
	case KindStudent:
		return fmt.Sprintf("Student: %s, Age: %d, Course: %s", p.name, p.age, p.course)
	case KindInstructor:
		return fmt.Sprintf("Instructor: %s, Age: %d, Department: %s", p.name, p.age, p.department)
	default:
		panic(fmt.Sprintf("people: Details called on unknown %s", p.kind))
	}
}
