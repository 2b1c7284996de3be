package entities

import (
	"fmt"
	"strings"
)

const devTestGroupHeader = "group :development, :test do"

// RenderManifest appends the table to the manifest content: runtime entries as plain
// declarations, then the dev/test entries inside one grouped block. An empty table
// returns the content unchanged.
func RenderManifest(content string, table *DependencyTable) string {
	if table == nil || table.Len() == 0 {
		return content
	}

	var sb strings.Builder
	sb.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		sb.WriteString("\n")
	}

	for _, spec := range table.Group(GroupRuntime) {
		writeDeclaration(&sb, spec, "")
	}

	devTest := table.Group(GroupDevTest)
	if len(devTest) > 0 {
		sb.WriteString("\n")
		sb.WriteString(devTestGroupHeader + "\n")
		for _, spec := range devTest {
			writeDeclaration(&sb, spec, "  ")
		}
		sb.WriteString("end\n")
	}

	return sb.String()
}

func writeDeclaration(sb *strings.Builder, spec DependencySpec, indent string) {
	if spec.Comment != "" {
		sb.WriteString(fmt.Sprintf("%s# %s\n", indent, spec.Comment))
	}
	if spec.Constraint == "" {
		sb.WriteString(fmt.Sprintf("%sgem %q\n", indent, spec.Name))
		return
	}
	sb.WriteString(fmt.Sprintf("%sgem %q, %q\n", indent, spec.Name, spec.Constraint))
}
