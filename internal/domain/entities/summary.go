package entities

import (
	"fmt"
	"io"
	"strings"
)

// Summary is the report printed once a run has finished.
type Summary struct {
	AppName      string
	Dependencies *DependencyTable
	FollowUps    []string
	Commit       CommitAttempt
}

// WriteSummary prints the fixed-format report.
func WriteSummary(w io.Writer, summary Summary) error {
	var sb strings.Builder

	sb.WriteString("---\n\n")
	sb.WriteString("App successfully created!\n\n")

	if summary.Dependencies != nil {
		writeGroup(&sb, "Gems installed:", summary.Dependencies.Group(GroupRuntime))
		writeGroup(&sb, "Development and test gems installed:", summary.Dependencies.Group(GroupDevTest))
	}

	sb.WriteString("To get started with your new app:\n")
	sb.WriteString(fmt.Sprintf("  - cd %s\n", summary.AppName))
	for _, step := range summary.FollowUps {
		sb.WriteString("  - " + strings.ReplaceAll(step, "%s", summary.AppName) + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeGroup(sb *strings.Builder, title string, specs []DependencySpec) {
	if len(specs) == 0 {
		return
	}
	sb.WriteString(title + "\n")
	for _, spec := range specs {
		sb.WriteString("  - " + spec.Name + "\n")
	}
	sb.WriteString("\n")
}
