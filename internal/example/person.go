// Package example declares the structures used by cmd/fieldmap.
package example

import "github.com/signadot/fieldmap"

type Person2 struct {
	Name      string
	Age       int
	Money     float64
	Telphones []string
}

var person2Fields = fieldmap.Struct(
	fieldmap.F("name", func(p *Person2) *string { return &p.Name }, fieldmap.String[string]()),
	fieldmap.F("age", func(p *Person2) *int { return &p.Age }, fieldmap.Int[int]()),
	fieldmap.F("telphones", func(p *Person2) *[]string { return &p.Telphones },
		fieldmap.Slice(fieldmap.String[string]())),
	fieldmap.F("money", func(p *Person2) *float64 { return &p.Money }, fieldmap.Float[float64]()),
).Defaults(NewPerson2)

func (Person2) FieldSet() *fieldmap.FieldSet[Person2] { return person2Fields }

func NewPerson2() Person2 {
	return Person2{Age: 100, Money: 3.1415926}
}

type Person struct {
	Name          string
	Age           int
	Telphones     []string
	Relationships map[string]Person2
}

var personFields = fieldmap.Struct(
	fieldmap.F("name", func(p *Person) *string { return &p.Name }, fieldmap.String[string]()),
	fieldmap.F("age", func(p *Person) *int { return &p.Age }, fieldmap.Int[int]()),
	fieldmap.F("telphones", func(p *Person) *[]string { return &p.Telphones },
		fieldmap.Slice(fieldmap.String[string]())),
	fieldmap.F("relationships", func(p *Person) *map[string]Person2 { return &p.Relationships },
		fieldmap.Map(fieldmap.StringKey[string](), person2Fields)),
).Defaults(NewPerson)

func (Person) FieldSet() *fieldmap.FieldSet[Person] { return personFields }

func NewPerson() Person {
	return Person{Age: 100}
}

// DemoPerson is the person cmd/fieldmap works with when given no input.
func DemoPerson() Person {
	p := NewPerson()
	p.Name = "name"
	p.Telphones = []string{"123", "456", "789"}

	father := NewPerson2()
	father.Name = "父亲"
	father.Telphones = []string{"abc", "efg", "xyz"}

	mother := NewPerson2()
	mother.Name = "母亲"
	mother.Telphones = []string{"111", "222", "333"}

	p.Relationships = map[string]Person2{
		"father": father,
		"mother": mother,
	}
	return p
}
