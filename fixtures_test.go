package reflective

import (
	"errors"
	"fmt"

	"github.com/a-peyrard/reflective/decorator"
)

type (
	Greeter interface {
		Greet(name string) (string, error)
	}

	Address struct {
		Street string
		City   string
	}

	Person struct {
		Name    string
		Age     int
		Address *Address
		Tags    map[string]string
		greeter Greeter
		secret  string
	}

	Jedi struct {
		Person
		Rank string
	}

	politeGreeter struct {
		calls int
	}

	spyGreeter struct {
		greeted []string
	}

	greeterProxy struct {
		invoker decorator.Invoker
	}
)

var errUnknownPerson = errors.New("unknown person")

func init() {
	decorator.RegisterProxy[Greeter](func(invoker decorator.Invoker) Greeter {
		return &greeterProxy{invoker: invoker}
	})
}

func (p *greeterProxy) Greet(name string) (string, error) {
	out := p.invoker.Invoke("Greet", name)
	return decorator.Out[string](out, 0), decorator.Out[error](out, 1)
}

func (g *politeGreeter) Greet(name string) (string, error) {
	g.calls++
	if name == "" {
		return "", errUnknownPerson
	}
	return "Hello " + name, nil
}

func (s *spyGreeter) Greet(name string) (string, error) {
	s.greeted = append(s.greeted, name)
	return "spied " + name, nil
}

func (p Person) Describe() string {
	return fmt.Sprintf("%s (%d)", p.Name, p.Age)
}

func (p *Person) Birthday() {
	p.Age++
}

func (p *Person) Rename(name string) (string, error) {
	if name == "" {
		return p.Name, errors.New("empty name")
	}
	previous := p.Name
	p.Name = name
	return previous, nil
}

func (p *Person) Explode() string {
	panic("boom")
}

func (p *Person) Join(separator string, parts ...string) string {
	result := p.Name
	for _, part := range parts {
		result += separator + part
	}
	return result
}

func NewJedi(name string, rank string) *Jedi {
	return &Jedi{Person: Person{Name: name}, Rank: rank}
}

func NewFallenJedi(name string) (*Jedi, error) {
	if name == "Anakin" {
		return nil, errors.New("turned to the dark side")
	}
	return &Jedi{Person: Person{Name: name}, Rank: "knight"}, nil
}

func NewPanickingJedi() *Jedi {
	panic("order 66")
}
