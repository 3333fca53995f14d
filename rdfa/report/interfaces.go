package report

// Node is any element of the report tree: a Report, a Group or an Entry.
// Viewers use it to walk the model without knowing the concrete kinds.
type Node interface {
	Children() []Node
}

// Walker visits the nodes of a report depth-first, parents before children.
type Walker interface {
	Walk(fn func(node Node, depth int) error) error
}

// Sizer exposes the byte aggregates shared by groups and reports.
type Sizer interface {
	Size() int64
	SpaceToSave() int64
}

var (
	_ Node   = Entry{}
	_ Node   = (*Group)(nil)
	_ Node   = (*Report)(nil)
	_ Sizer  = (*Group)(nil)
	_ Sizer  = (*Report)(nil)
	_ Walker = (*Report)(nil)
)
