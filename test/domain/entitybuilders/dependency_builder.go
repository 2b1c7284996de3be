//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependency declarations with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name       string
	constraint string
	comment    string
	group      entities.DependencyGroup
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-gem",
		constraint:  "~> 1.0",
		group:       entities.GroupRuntime,
	}
}

// WithName sets the gem name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithConstraint sets the version constraint.
func (b *DependencyBuilder) WithConstraint(constraint string) *DependencyBuilder {
	b.constraint = constraint
	return b
}

// WithComment sets the comment rendered above the declaration.
func (b *DependencyBuilder) WithComment(comment string) *DependencyBuilder {
	b.comment = comment
	return b
}

// WithGroup sets the manifest group.
func (b *DependencyBuilder) WithGroup(group entities.DependencyGroup) *DependencyBuilder {
	b.group = group
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.DependencySpec {
	return entities.DependencySpec{
		Name:       b.name,
		Constraint: b.constraint,
		Comment:    b.comment,
		Group:      b.group,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-gem"
	b.constraint = "~> 1.0"
	b.comment = ""
	b.group = entities.GroupRuntime
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		constraint:  b.constraint,
		comment:     b.comment,
		group:       b.group,
	}
}
