package integrations

import "sort"

// ToolName identifies a supported AI tool integration.
type ToolName string

const (
	Claude   ToolName = "claude"
	Cline    ToolName = "cline"
	Codex    ToolName = "codex"
	Cursor   ToolName = "cursor"
	Gemini   ToolName = "gemini"
	Kimi     ToolName = "kimi"
	OpenCode ToolName = "opencode"
	Windsurf ToolName = "windsurf"
)

// ToolConfig describes where a tool keeps its project-level configuration.
type ToolConfig struct {
	DisplayName string
	Container   string
}

// toolRegistry maps each tool to its container directory.
var toolRegistry = map[ToolName]ToolConfig{
	Claude:   {DisplayName: "Claude Code", Container: ".claude"},
	Cline:    {DisplayName: "Cline", Container: ".cline"},
	Codex:    {DisplayName: "Codex CLI", Container: ".codex"},
	Cursor:   {DisplayName: "Cursor", Container: ".cursor"},
	Gemini:   {DisplayName: "Gemini CLI", Container: ".gemini"},
	Kimi:     {DisplayName: "Kimi Code CLI", Container: ".kimi"},
	OpenCode: {DisplayName: "OpenCode", Container: ".opencode"},
	Windsurf: {DisplayName: "Windsurf", Container: ".windsurf"},
}

// AllTools returns all supported tool names in a stable order.
func AllTools() []ToolName {
	tools := make([]ToolName, 0, len(toolRegistry))
	for name := range toolRegistry {
		tools = append(tools, name)
	}
	sort.Slice(tools, func(i, j int) bool {
		return toolRegistry[tools[i]].Container < toolRegistry[tools[j]].Container
	})
	return tools
}

// DefaultContainers returns the container directories of every supported
// tool, sorted so runs produce the same output order.
func DefaultContainers() []string {
	tools := AllTools()
	containers := make([]string, 0, len(tools))
	for _, t := range tools {
		containers = append(containers, toolRegistry[t].Container)
	}
	return containers
}

// Lookup returns the registry entry for a tool.
func Lookup(name ToolName) (ToolConfig, bool) {
	cfg, ok := toolRegistry[name]
	return cfg, ok
}

// ToolForContainer returns the tool that owns container, if it is a known one.
func ToolForContainer(container string) (ToolName, bool) {
	for name, cfg := range toolRegistry {
		if cfg.Container == container {
			return name, true
		}
	}
	return "", false
}
