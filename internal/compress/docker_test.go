package compress_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cxproxy/cx/internal/compress"
)

func newDocker() *compress.Docker {
	return compress.NewDocker(compress.DefaultLimits())
}

// =============================================================================
// PS
// =============================================================================

func TestDockerPs_Empty(t *testing.T) {
	assert.Equal(t, "[docker ps] no containers", newDocker().Compress("", "ps"))
}

func TestDockerPs_Containers(t *testing.T) {
	raw := "CONTAINER ID   IMAGE     COMMAND   STATUS\n" +
		"abc123         nginx     nginx     Up 2 hours\n" +
		"def456         redis     redis     Up 5 min\n"
	result := newDocker().Compress(raw, "ps")

	assert.Contains(t, result, "[containers: 2]")
	assert.Contains(t, result, "CONTAINER ID")
	assert.Contains(t, result, "abc123")
	assert.Contains(t, result, "def456")
}

func TestDockerPs_HeaderOnly(t *testing.T) {
	result := newDocker().Compress("CONTAINER ID   IMAGE     COMMAND   STATUS\n", "ps")

	assert.Contains(t, result, "[containers: 0]")
	assert.Contains(t, result, "CONTAINER ID")
}

func TestDockerPs_ManyContainersCapped(t *testing.T) {
	var b strings.Builder
	b.WriteString("HEADER\n")
	for i := 0; i < 35; i++ {
		fmt.Fprintf(&b, "container_%d  image  cmd  Up\n", i)
	}
	result := newDocker().Compress(b.String(), "ps")

	assert.Contains(t, result, "[containers: 35]")
	assert.Contains(t, result, "… +5 more")
	assert.Contains(t, result, "container_0")
	assert.Contains(t, result, "container_29")
	assert.NotContains(t, result, "container_34")
}

// =============================================================================
// IMAGES
// =============================================================================

func TestDockerImages_Empty(t *testing.T) {
	assert.Equal(t, "[docker images] none", newDocker().Compress("", "images"))
}

func TestDockerImages_Table(t *testing.T) {
	raw := "REPOSITORY   TAG       IMAGE ID       SIZE\n" +
		"nginx        latest    abc123         150MB\n" +
		"redis        7.0       def456         120MB\n"
	result := newDocker().Compress(raw, "images")

	assert.Contains(t, result, "[images: 2]")
	assert.Contains(t, result, "REPOSITORY")
	assert.Contains(t, result, "nginx")
	assert.Contains(t, result, "redis")
}

// =============================================================================
// LOGS
// =============================================================================

func TestDockerLogs_DedupsRepeats(t *testing.T) {
	raw := "[INFO] Starting server\n" +
		"[INFO] Request handled\n" +
		"[INFO] Request handled\n" +
		"[INFO] Request handled\n" +
		"[INFO] Shutting down\n"
	result := newDocker().Compress(raw, "logs")

	assert.Contains(t, result, "Request handled  (×3)")
	assert.Contains(t, result, "Starting server")
	assert.Contains(t, result, "Shutting down")
}

func TestDockerLogs_EmptyStaysEmpty(t *testing.T) {
	assert.Equal(t, "", newDocker().Compress("", "logs"))
}

// =============================================================================
// INSPECT
// =============================================================================

func TestDockerInspect_Container(t *testing.T) {
	raw := `[{"Id":"abc123def4567890","Name":"/web","Config":{"Image":"nginx:latest"},"State":{"Status":"running"}}]`
	result := newDocker().Compress(raw, "inspect")

	assert.Contains(t, result, "[inspect: 1 objects]")
	assert.Contains(t, result, "id=abc123def456")
	assert.Contains(t, result, "name=web")
	assert.Contains(t, result, "image=nginx:latest")
	assert.Contains(t, result, "state=running")
}

func TestDockerInspect_Image(t *testing.T) {
	raw := `[{"Id":"sha256:aaa","RepoTags":["nginx:latest"]}]`
	result := newDocker().Compress(raw, "inspect")

	assert.Contains(t, result, "tag=nginx:latest")
}

func TestDockerInspect_EmptyArray(t *testing.T) {
	assert.Equal(t, "[inspect] empty", newDocker().Compress("[]", "inspect"))
}

func TestDockerInspect_NotJSONFallsBack(t *testing.T) {
	result := newDocker().Compress("Error: No such object: nope", "inspect")

	assert.Contains(t, result, "No such object")
}

// =============================================================================
// DISPATCH
// =============================================================================

func TestDocker_UnknownSubTruncates(t *testing.T) {
	result := newDocker().Compress("some docker output", "network")

	assert.Contains(t, result, "some docker output")
}

func TestDocker_EmptySubTruncates(t *testing.T) {
	result := newDocker().Compress("fallback", "")

	assert.Contains(t, result, "fallback")
}
