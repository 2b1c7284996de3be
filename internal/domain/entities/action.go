package entities

import (
	"fmt"
	"strings"
)

// Action is one unit of work inside a PipelineStep. The orchestrator dispatches on
// the concrete type; actions carry data only.
type Action interface {
	Describe() string
}

// StopPreloader stops the framework's application preloader. Failure is tolerated.
type StopPreloader struct{}

func (StopPreloader) Describe() string { return "stop application preloader" }

// FlushManifest writes the declared dependency table into the manifest and resolves it.
type FlushManifest struct {
	Path string
}

func (a FlushManifest) Describe() string { return "declare dependencies in " + a.Path }

// InvokeGenerator runs a named framework generator. When Capture is set the files it
// reports are stored under that key for later GeneratedFile targets.
type InvokeGenerator struct {
	Name    string
	Args    []string
	Capture string
}

func (a InvokeGenerator) Describe() string {
	return strings.TrimSpace("generate " + a.Name + " " + strings.Join(a.Args, " "))
}

// RunTask runs a named framework task.
type RunTask struct {
	Task string
	Args []string
}

func (a RunTask) Describe() string {
	return strings.TrimSpace("task " + a.Task + " " + strings.Join(a.Args, " "))
}

// AddPackage adds a front-end package through the JavaScript package manager.
type AddPackage struct {
	Package string
}

func (a AddPackage) Describe() string { return "add package " + a.Package }

// EditFiles applies each FileEdit in order, one read-modify-write pass per file.
type EditFiles struct {
	Edits []FileEdit
}

func (a EditFiles) Describe() string {
	targets := make([]string, 0, len(a.Edits))
	for _, edit := range a.Edits {
		targets = append(targets, fmt.Sprintf("%s (%d op)", edit.Target, len(edit.Operations)))
	}
	return "edit " + strings.Join(targets, ", ")
}

// ConfirmRemoval asks Question and removes Path when the answer is yes.
type ConfirmRemoval struct {
	Path     string
	Question string
	Default  bool
}

func (a ConfirmRemoval) Describe() string {
	def := "y/N"
	if a.Default {
		def = "Y/n"
	}
	return fmt.Sprintf("ask %q [%s], remove %s", a.Question, def, a.Path)
}

// PipelineStep is a named group of actions executed strictly in declaration order.
type PipelineStep struct {
	Name    string
	Actions []Action
}
