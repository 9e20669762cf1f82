package project

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// pyprojectDoc decodes just the uv workspace table out of pyproject.toml.
type pyprojectDoc struct {
	Tool struct {
		UV struct {
			Workspace struct {
				Members []string `toml:"members"`
			} `toml:"workspace"`
		} `toml:"uv"`
	} `toml:"tool"`
}

// workspacePattern matches the [tool.uv.workspace] header and its members
// array, so the array can be spliced without disturbing the rest of the
// manifest's formatting.
var workspacePattern = regexp.MustCompile(`(?s)(\[tool\.uv\.workspace\]\s*)(?:members\s*=\s*\[[^\]]*\])?`)

// AddWorkspaceMember adds member to the tool.uv.workspace.members list of
// the pyproject.toml at path, keeping the list sorted. The manifest is
// parsed to read the current members and rewritten by splicing only the
// workspace section, so unrelated formatting is preserved. Adding an
// existing member is a no-op.
func AddWorkspaceMember(path, member string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var doc pyprojectDoc
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	members := doc.Tool.UV.Workspace.Members
	if slices.Contains(members, member) {
		return nil
	}
	members = append(members, member)
	slices.Sort(members)

	updated := spliceWorkspaceMembers(string(raw), members)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// RewriteWorkspaceMember updates casts/<oldName> references in the
// pyproject.toml at path after a normalize rename. A missing file is a
// no-op.
func RewriteWorkspaceMember(path, oldName, newName string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	content := strings.ReplaceAll(string(raw), "casts/"+oldName, "casts/"+newName)
	if content == string(raw) {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// spliceWorkspaceMembers replaces the members array inside the
// [tool.uv.workspace] table, appending the whole table when absent.
func spliceWorkspaceMembers(content string, members []string) string {
	lines := make([]string, len(members))
	for i, m := range members {
		lines[i] = fmt.Sprintf("    %q", m)
	}
	section := "members = [\n" + strings.Join(lines, ",\n") + "\n]"

	if strings.Contains(content, "[tool.uv.workspace]") {
		replaced := false
		return workspacePattern.ReplaceAllStringFunc(content, func(m string) string {
			if replaced {
				return m
			}
			replaced = true
			sub := workspacePattern.FindStringSubmatch(m)
			return sub[1] + section
		})
	}
	return strings.TrimRight(content, "\n") + "\n\n[tool.uv.workspace]\n" + section + "\n"
}
