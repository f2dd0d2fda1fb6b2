package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "linkskills" {
		t.Errorf("CLIName() = %q, want %q", got, "linkskills")
	}
	if got := ConfigFile(); got != ".linkskills.yaml" {
		t.Errorf("ConfigFile() = %q, want %q", got, ".linkskills.yaml")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("link_name"); got != "LINKSKILLS_LINK_NAME" {
		t.Errorf("EnvVar(link_name) = %q", got)
	}
}
