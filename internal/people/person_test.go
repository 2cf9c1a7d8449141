package people

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerson(t *testing.T) {
	tests := []struct {
		name          string
		person        Person
		wantKind      Kind
		wantIntroduce string
		wantDetails   string
	}{
		{
			name:          "student mentions course",
			person:        NewStudent("Ian", 24, "Software Engineering"),
			wantKind:      KindStudent,
			wantIntroduce: "Hi, I'm Ian, studying Software Engineering.",
			wantDetails:   "Student: Ian, Age: 24, Course: Software Engineering",
		},
		{
			name:          "instructor uses the default greeting",
			person:        NewInstructor("Dr. Smith", 45, "Computer Science"),
			wantKind:      KindInstructor,
			wantIntroduce: "Hi, I'm Dr. Smith and I'm 45 years old.",
			wantDetails:   "Instructor: Dr. Smith, Age: 45, Department: Computer Science",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.person.Kind())
			assert.Equal(t, tt.wantIntroduce, tt.person.Introduce())
			assert.Equal(t, tt.wantDetails, tt.person.Details())
		})
	}
}

func TestPerson_VariantPayload(t *testing.T) {
	s := NewStudent("Ian", 24, "Software Engineering")
	assert.Equal(t, "Ian", s.Name())
	assert.Equal(t, 24, s.Age())
	assert.Equal(t, "Software Engineering", s.Course())
	assert.Empty(t, s.Department())

	i := NewInstructor("Dr. Smith", 45, "Computer Science")
	assert.Equal(t, "Computer Science", i.Department())
	assert.Empty(t, i.Course())
}

func TestPerson_DetailsUnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() { _ = Person{name: "x"}.Details() })
	assert.Equal(t, "Hi, I'm x and I'm 0 years old.", Person{name: "x"}.Introduce())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	Demo(NewConsolePrinter(&buf))

	want := "Student: Ian, Age: 24, Course: Software Engineering\n" +
		"Instructor: Dr. Smith, Age: 45, Department: Computer Science\n" +
		"\n" +
		"Polymorphism Demo:\n" +
		"Hi, I'm Ian, studying Software Engineering.\n" +
		"Hi, I'm Dr. Smith and I'm 45 years old.\n"
	assert.Equal(t, want, buf.String())
}
