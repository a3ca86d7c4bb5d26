package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildDataDefaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	assert.Contains(t, out, "Build version: N/A")
	assert.Contains(t, out, "Build date: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

func TestPrintBuildDataInjected(t *testing.T) {
	buildVersion = "v1.2.0"
	buildDate = "2026-08-28"
	buildCommit = "abc123"
	defer func() { buildVersion, buildDate, buildCommit = "", "", "" }()

	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	assert.Contains(t, out, "Build version: v1.2.0")
	assert.Contains(t, out, "Build date: 2026-08-28")
	assert.Contains(t, out, "Build commit: abc123")
}
