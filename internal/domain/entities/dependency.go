package entities

// DependencyGroup is the section of the manifest a dependency is declared in.
type DependencyGroup string

const (
	GroupRuntime DependencyGroup = "runtime"
	GroupDevTest DependencyGroup = "dev_test"
)

// DependencySpec is a single package declaration.
type DependencySpec struct {
	Name       string          `yaml:"name"`
	Constraint string          `yaml:"version"`
	Comment    string          `yaml:"comment"` // rendered as a "# ..." line above the declaration
	Group      DependencyGroup `yaml:"-"`
}

// DependencyTable keeps declarations per group in first-registration order.
// Declaring a name twice in the same group overwrites the earlier entry in place.
type DependencyTable struct {
	order map[DependencyGroup][]string
	specs map[DependencyGroup]map[string]DependencySpec
}

// NewDependencyTable creates an empty table.
func NewDependencyTable() *DependencyTable {
	return &DependencyTable{
		order: make(map[DependencyGroup][]string),
		specs: make(map[DependencyGroup]map[string]DependencySpec),
	}
}

// Declare appends or overwrites an entry.
func (t *DependencyTable) Declare(spec DependencySpec) {
	if spec.Group == "" {
		spec.Group = GroupRuntime
	}
	group, ok := t.specs[spec.Group]
	if !ok {
		group = make(map[string]DependencySpec)
		t.specs[spec.Group] = group
	}
	if _, exists := group[spec.Name]; !exists {
		t.order[spec.Group] = append(t.order[spec.Group], spec.Name)
	}
	group[spec.Name] = spec
}

// Group returns the declarations of one group in insertion order.
func (t *DependencyTable) Group(group DependencyGroup) []DependencySpec {
	names := t.order[group]
	result := make([]DependencySpec, 0, len(names))
	for _, name := range names {
		result = append(result, t.specs[group][name])
	}
	return result
}

// Len returns the number of declarations across all groups.
func (t *DependencyTable) Len() int {
	total := 0
	for _, names := range t.order {
		total += len(names)
	}
	return total
}

// Clone returns an independent copy of the table.
func (t *DependencyTable) Clone() *DependencyTable {
	clone := NewDependencyTable()
	for _, group := range []DependencyGroup{GroupRuntime, GroupDevTest} {
		for _, spec := range t.Group(group) {
			clone.Declare(spec)
		}
	}
	return clone
}
