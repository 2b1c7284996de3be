package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

// Plan is the interface for the plan command.
type Plan interface {
	Execute(ctx context.Context, settings *entities.Settings, w io.Writer) error
}

// PlanCommand prints the ordered steps of a template without touching any project.
type PlanCommand struct {
	templates repositories.TemplateRepository
}

// NewPlanCommand creates a new PlanCommand.
func NewPlanCommand(templates repositories.TemplateRepository) *PlanCommand {
	return &PlanCommand{templates: templates}
}

// Execute writes the plan of settings.Template to w.
func (it *PlanCommand) Execute(_ context.Context, settings *entities.Settings, w io.Writer) error {
	base, err := it.templates.Get(settings.Template)
	if err != nil {
		return err
	}
	template := settings.Customize(base)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template %s: %s\n", template.Name, template.Description))
	sb.WriteString(fmt.Sprintf("Requires Rails %s\n\n", template.RequiredRange))

	number := 1
	for _, step := range template.Preparation {
		writeStep(&sb, number, step)
		number++
	}

	sb.WriteString(fmt.Sprintf("%2d. %s\n", number, declareStepName))
	for _, group := range []entities.DependencyGroup{entities.GroupRuntime, entities.GroupDevTest} {
		for _, spec := range template.Dependencies.Group(group) {
			sb.WriteString(fmt.Sprintf("      - [%s] %s %s\n", group, spec.Name, spec.Constraint))
		}
	}
	number++

	for _, step := range template.Steps {
		writeStep(&sb, number, step)
		number++
	}

	sb.WriteString(fmt.Sprintf("%2d. finalize (git init, add, commit unless SKIP_GIT)\n", number))

	_, err = io.WriteString(w, sb.String())
	return err
}

func writeStep(sb *strings.Builder, number int, step entities.PipelineStep) {
	sb.WriteString(fmt.Sprintf("%2d. %s\n", number, step.Name))
	for _, action := range step.Actions {
		sb.WriteString("      - " + action.Describe() + "\n")
		if edits, ok := action.(entities.EditFiles); ok {
			for _, edit := range edits.Edits {
				for _, op := range edit.Operations {
					sb.WriteString(fmt.Sprintf("          %s: %s\n", edit.Target, op.Describe()))
				}
			}
		}
	}
}
