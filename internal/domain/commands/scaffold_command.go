package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

const declareStepName = "declare_dependencies"

// Scaffold is the interface for the scaffold command.
type Scaffold interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ScaffoldOptions) (*ScaffoldResult, error)
}

// ScaffoldOptions holds runtime options for a single run.
type ScaffoldOptions struct {
	ProjectDir     string
	AppName        string
	SkipVCS        bool // CLI override, OR-ed with SKIP_GIT
	AcceptDefaults bool // answer every prompt with its default
}

// ScaffoldResult describes a finished (or aborted) run.
type ScaffoldResult struct {
	Template string
	States   []entities.PipelineState
	Commit   entities.CommitAttempt
}

// ScaffoldCommand is the pipeline orchestrator:
// version guard -> preparation -> dependency declaration -> steps -> finalizer.
type ScaffoldCommand struct {
	templates  repositories.TemplateRepository
	workspaces repositories.WorkspaceRepository
	prompt     repositories.PromptRepository
	out        io.Writer
}

// NewScaffoldCommand creates a new ScaffoldCommand.
func NewScaffoldCommand(
	templates repositories.TemplateRepository,
	workspaces repositories.WorkspaceRepository,
	prompt repositories.PromptRepository,
	out io.Writer,
) *ScaffoldCommand {
	return &ScaffoldCommand{
		templates:  templates,
		workspaces: workspaces,
		prompt:     prompt,
		out:        out,
	}
}

// Execute runs the whole template against opts.ProjectDir. Every error before the
// finalizer aborts the run and leaves the tree as the failing step left it.
func (it *ScaffoldCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ScaffoldOptions,
) (*ScaffoldResult, error) {
	base, err := it.templates.Get(settings.Template)
	if err != nil {
		return nil, err
	}
	template := settings.Customize(base)

	workspace, err := it.workspaces.Open(opts.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open project %q: %w", opts.ProjectDir, err)
	}

	prompt := it.prompt
	if opts.AcceptDefaults || settings.Environment.AssumeYes {
		prompt = defaultAnswers{}
	}

	machine := entities.NewPipelineMachine()
	result := &ScaffoldResult{Template: template.Name}
	defer func() { result.States = machine.History() }()

	logger.Infof("Applying template %q to %s", template.Name, workspace.Project.Root())

	if guardErr := NewVersionGuard(workspace.Framework, prompt).Check(ctx, template.RequiredRange); guardErr != nil {
		if errors.Is(guardErr, entities.ErrVersionMismatch) {
			_ = machine.Advance(entities.StateAborted)
		}
		return result, guardErr
	}
	if err = machine.Advance(entities.StateVersionChecked); err != nil {
		return result, err
	}

	runner := newStepRunner(workspace, prompt, template.Dependencies)

	declaration := append(append([]entities.PipelineStep(nil), template.Preparation...), entities.PipelineStep{
		Name:    declareStepName,
		Actions: []entities.Action{entities.FlushManifest{Path: template.ManifestPath}},
	})
	if err = it.runSteps(ctx, runner, declaration); err != nil {
		return result, err
	}
	if err = machine.Advance(entities.StateDependenciesDeclared); err != nil {
		return result, err
	}

	if err = it.runSteps(ctx, runner, template.Steps); err != nil {
		return result, err
	}
	if err = machine.Advance(entities.StateGeneratorsAndEditsApplied); err != nil {
		return result, err
	}

	appName := opts.AppName
	if appName == "" {
		appName = settings.AppName
	}
	commit, err := NewFinalizer(workspace.VCS, it.out).Finalize(ctx, FinalizeOptions{
		SkipVCS:       opts.SkipVCS || settings.Environment.SkipVCS(),
		CommitMessage: settings.CommitMessage,
		Summary: entities.Summary{
			AppName:      appName,
			Dependencies: template.Dependencies,
			FollowUps:    template.FollowUps,
		},
	})
	result.Commit = commit
	if err != nil {
		return result, err
	}
	if err = machine.Advance(entities.StateFinalized); err != nil {
		return result, err
	}

	return result, machine.Advance(entities.StateDone)
}

func (it *ScaffoldCommand) runSteps(ctx context.Context, runner *stepRunner, steps []entities.PipelineStep) error {
	for _, step := range steps {
		if err := runner.run(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

// defaultAnswers answers every confirmation with its default.
type defaultAnswers struct{}

func (defaultAnswers) Confirm(_ context.Context, question string, defaultYes bool) (bool, error) {
	logger.Infof("%s (answering %v)", question, defaultYes)
	return defaultYes, nil
}
