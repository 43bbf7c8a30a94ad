package example

//go:generate go run github.com/signadot/fieldmap/cmd/fieldmap-gen -dir .

type Priority int

const (
	LowPriority Priority = iota
	NormalPriority
	HighPriority
)

// Contact is an address book entry. Its field set is generated.
//
//fieldmap:generate
type Contact struct {
	Name     string            `fieldmap:"name"`
	Emails   []string          `fieldmap:"emails"`
	Labels   map[string]string `fieldmap:"labels"`
	Priority Priority          `fieldmap:"priority"`
	Verified bool              `fieldmap:"verified"`
	Seen     map[int64]bool    `fieldmap:"seen"`
	Owner    Person2           `fieldmap:"owner"`

	// Notes are local only.
	Notes string
}
