package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

// stepRunner executes pipeline steps against one workspace. It owns the results of
// captured generator invocations so later steps can target the files they created.
type stepRunner struct {
	workspace    *repositories.Workspace
	prompt       repositories.PromptRepository
	dependencies *entities.DependencyTable
	captured     map[string]entities.GeneratorResult
}

func newStepRunner(
	workspace *repositories.Workspace,
	prompt repositories.PromptRepository,
	dependencies *entities.DependencyTable,
) *stepRunner {
	return &stepRunner{
		workspace:    workspace,
		prompt:       prompt,
		dependencies: dependencies,
		captured:     make(map[string]entities.GeneratorResult),
	}
}

// run executes every action of step in order and stops at the first error.
func (r *stepRunner) run(ctx context.Context, step entities.PipelineStep) error {
	logger.Infof("[%s] running %d action(s)", step.Name, len(step.Actions))
	for _, action := range step.Actions {
		logger.Debugf("[%s] %s", step.Name, action.Describe())
		if err := r.apply(ctx, step.Name, action); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
	}
	return nil
}

func (r *stepRunner) apply(ctx context.Context, stepName string, action entities.Action) error {
	switch a := action.(type) {
	case entities.StopPreloader:
		if err := r.workspace.Framework.StopPreloader(ctx); err != nil {
			logger.Warnf("[%s] could not stop preloader: %v", stepName, err)
		}
		return nil
	case entities.FlushManifest:
		return r.flushManifest(ctx, a)
	case entities.InvokeGenerator:
		return r.generate(ctx, stepName, a)
	case entities.RunTask:
		return r.workspace.Framework.RunTask(ctx, a.Task, a.Args...)
	case entities.AddPackage:
		return r.workspace.Packages.AddJavaScriptPackage(ctx, a.Package)
	case entities.EditFiles:
		for _, edit := range a.Edits {
			if err := r.editFile(stepName, edit); err != nil {
				return err
			}
		}
		return nil
	case entities.ConfirmRemoval:
		return r.confirmRemoval(ctx, stepName, a)
	default:
		return fmt.Errorf("unsupported action %T", action)
	}
}

func (r *stepRunner) flushManifest(ctx context.Context, action entities.FlushManifest) error {
	content, err := r.workspace.Project.ReadFile(action.Path)
	if err != nil {
		return err
	}
	if err = r.workspace.Project.WriteFile(action.Path, entities.RenderManifest(content, r.dependencies)); err != nil {
		return err
	}
	return r.workspace.Packages.ResolveManifest(ctx)
}

func (r *stepRunner) generate(ctx context.Context, stepName string, action entities.InvokeGenerator) error {
	result, err := r.workspace.Framework.Generate(ctx, action.Name, action.Args...)
	if err != nil {
		return err
	}
	logger.Debugf("[%s] %s created %v", stepName, action.Name, result.Created)
	if action.Capture != "" {
		r.captured[action.Capture] = result
	}
	return nil
}

// editFile applies all operations of edit in a single read-modify-write pass.
// Nothing is written when any operation fails.
func (r *stepRunner) editFile(stepName string, edit entities.FileEdit) error {
	path, err := edit.Target.Resolve(r.captured)
	if err != nil {
		return err
	}

	content, err := r.workspace.Project.ReadFile(path)
	if err != nil {
		return err
	}

	updated, err := entities.ApplyOperations(path, content, edit.Operations)
	if err != nil {
		return err
	}
	if updated == content {
		logger.Debugf("[%s] %s unchanged", stepName, path)
		return nil
	}
	return r.workspace.Project.WriteFile(path, updated)
}

func (r *stepRunner) confirmRemoval(ctx context.Context, stepName string, action entities.ConfirmRemoval) error {
	if !r.workspace.Project.Exists(action.Path) {
		logger.Debugf("[%s] %s does not exist, nothing to remove", stepName, action.Path)
		return nil
	}

	remove, err := r.prompt.Confirm(ctx, action.Question, action.Default)
	if err != nil {
		return err
	}
	if !remove {
		logger.Infof("[%s] keeping %s", stepName, action.Path)
		return nil
	}
	return r.workspace.Project.RemoveAll(action.Path)
}
