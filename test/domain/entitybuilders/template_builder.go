//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// TemplateBuilder helps create small templates for orchestrator tests.
type TemplateBuilder struct {
	*testkit.BaseBuilder
	name          string
	requiredRange string
	manifestPath  string
	dependencies  []entities.DependencySpec
	preparation   []entities.PipelineStep
	steps         []entities.PipelineStep
	followUps     []string
}

// NewTemplateBuilder creates a template builder with an empty recipe on the Gemfile.
func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		name:          "test-template",
		requiredRange: "~> 6.0.0",
		manifestPath:  "Gemfile",
	}
}

// WithName sets the template name.
func (b *TemplateBuilder) WithName(name string) *TemplateBuilder {
	b.name = name
	return b
}

// WithRequiredRange sets the required framework version range.
func (b *TemplateBuilder) WithRequiredRange(expr string) *TemplateBuilder {
	b.requiredRange = expr
	return b
}

// WithDependency declares one more dependency.
func (b *TemplateBuilder) WithDependency(spec entities.DependencySpec) *TemplateBuilder {
	b.dependencies = append(b.dependencies, spec)
	return b
}

// WithPreparation appends a step run before the manifest flush.
func (b *TemplateBuilder) WithPreparation(step entities.PipelineStep) *TemplateBuilder {
	b.preparation = append(b.preparation, step)
	return b
}

// WithStep appends a step run after the manifest flush.
func (b *TemplateBuilder) WithStep(step entities.PipelineStep) *TemplateBuilder {
	b.steps = append(b.steps, step)
	return b
}

// WithFollowUp appends a follow-up line for the summary.
func (b *TemplateBuilder) WithFollowUp(line string) *TemplateBuilder {
	b.followUps = append(b.followUps, line)
	return b
}

// Build creates the template (satisfies testkit.Builder interface).
func (b *TemplateBuilder) Build() interface{} {
	return b.BuildTemplate()
}

// BuildTemplate creates the template with a concrete return type.
func (b *TemplateBuilder) BuildTemplate() *entities.Template {
	table := entities.NewDependencyTable()
	for _, spec := range b.dependencies {
		table.Declare(spec)
	}
	return &entities.Template{
		Name:          b.name,
		RequiredRange: b.requiredRange,
		ManifestPath:  b.manifestPath,
		Dependencies:  table,
		Preparation:   append([]entities.PipelineStep(nil), b.preparation...),
		Steps:         append([]entities.PipelineStep(nil), b.steps...),
		FollowUps:     append([]string(nil), b.followUps...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *TemplateBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-template"
	b.requiredRange = "~> 6.0.0"
	b.manifestPath = "Gemfile"
	b.dependencies = nil
	b.preparation = nil
	b.steps = nil
	b.followUps = nil
	return b
}

// Clone creates a deep copy of the TemplateBuilder.
func (b *TemplateBuilder) Clone() testkit.Builder {
	return &TemplateBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:          b.name,
		requiredRange: b.requiredRange,
		manifestPath:  b.manifestPath,
		dependencies:  append([]entities.DependencySpec(nil), b.dependencies...),
		preparation:   append([]entities.PipelineStep(nil), b.preparation...),
		steps:         append([]entities.PipelineStep(nil), b.steps...),
		followUps:     append([]string(nil), b.followUps...),
	}
}
