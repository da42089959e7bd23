package entities

// Pattern describes a design pattern from the catalog.
type Pattern struct {
	Slug     string // e.g. "abstract-factory"
	Name     string // e.g. "Abstract Factory"
	Category string // creational, structural or behavioral
}

// Category groups patterns of the same kind.
type Category struct {
	Slug      string
	Patterns  int // patterns in the category
	Questions int // questions over all patterns of the category
}
