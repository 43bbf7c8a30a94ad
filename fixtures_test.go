package fieldmap

type member struct {
	Name   string
	Age    int
	Phones []string
	Score  float64
}

var memberFields = Struct(
	F("name", func(m *member) *string { return &m.Name }, String[string]()),
	F("age", func(m *member) *int { return &m.Age }, Int[int]()),
	F("phones", func(m *member) *[]string { return &m.Phones }, Slice(String[string]())),
	F("score", func(m *member) *float64 { return &m.Score }, Float[float64]()),
).Defaults(func() member { return member{Age: 100, Score: 3.1415926} })

func (member) FieldSet() *FieldSet[member] { return memberFields }

type team struct {
	Title   string
	Lead    member
	Members map[string]member
	Active  bool
}

var teamFields = Struct(
	F("title", func(t *team) *string { return &t.Title }, String[string]()),
	F("lead", func(t *team) *member { return &t.Lead }, memberFields),
	F("members", func(t *team) *map[string]member { return &t.Members },
		Map(StringKey[string](), memberFields)),
	F("active", func(t *team) *bool { return &t.Active }, Bool[bool]()),
)

func (team) FieldSet() *FieldSet[team] { return teamFields }

func sampleTeam() team {
	return team{
		Title: "core",
		Lead:  member{Name: "lily", Age: 18, Phones: []string{"123", "456"}, Score: 9.5},
		Members: map[string]member{
			"father": {Name: "tom", Age: 48, Phones: []string{"111"}, Score: 1},
			"mother": {Name: "ann", Age: 46, Phones: []string{}, Score: 2.25},
		},
		Active: true,
	}
}
