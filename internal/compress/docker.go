package compress

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Docker compresses docker command output.
type Docker struct {
	limits Limits
	subs   map[string]subFunc
}

// NewDocker creates a docker compressor with the given limits.
func NewDocker(limits Limits) *Docker {
	d := &Docker{limits: limits.orDefault()}
	d.subs = map[string]subFunc{
		"ps":      d.ps,
		"images":  d.images,
		"logs":    d.limits.DedupLines,
		"inspect": d.inspect,
	}
	return d
}

// Compress implements Compressor.
func (d *Docker) Compress(raw, sub string) string {
	if fn, ok := d.subs[sub]; ok {
		return fn(raw)
	}
	return d.limits.Truncate(raw)
}

// ps keeps the header row and caps the container rows.
func (d *Docker) ps(raw string) string {
	return d.table(raw, "containers", "[docker ps] no containers")
}

// images keeps the header row and caps the image rows.
func (d *Docker) images(raw string) string {
	return d.table(raw, "images", "[docker images] none")
}

// table compresses header-plus-rows output: total count, header, first
// 30 data rows, overflow marker.
func (d *Docker) table(raw, label, emptyMsg string) string {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return emptyMsg
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s: %d]\n", label, len(lines)-1)
	fmt.Fprintf(&b, "%s\n", lines[0])
	rows := lines[1:]
	n := len(rows)
	if n > 30 {
		n = 30
	}
	for _, line := range rows[:n] {
		fmt.Fprintf(&b, "%s\n", line)
	}
	if len(rows) > 30 {
		fmt.Fprintf(&b, "  … +%d more\n", len(rows)-30)
	}
	return b.String()
}

// inspect reduces `docker inspect` JSON to one line per object: id, name,
// image and state when present. Non-JSON input falls back to truncation.
func (d *Docker) inspect(raw string) string {
	parsed := gjson.Parse(strings.TrimSpace(raw))
	if !parsed.IsArray() {
		return d.limits.Truncate(raw)
	}

	objects := parsed.Array()
	if len(objects) == 0 {
		return "[inspect] empty"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[inspect: %d objects]\n", len(objects))
	for _, obj := range objects {
		var parts []string
		if id := obj.Get("Id"); id.Exists() {
			short := id.String()
			if len(short) > 12 {
				short = short[:12]
			}
			parts = append(parts, fmt.Sprintf("id=%s", short))
		}
		if name := obj.Get("Name"); name.Exists() {
			parts = append(parts, fmt.Sprintf("name=%s", strings.TrimPrefix(name.String(), "/")))
		}
		if repo := obj.Get("RepoTags.0"); repo.Exists() {
			parts = append(parts, fmt.Sprintf("tag=%s", repo.String()))
		}
		if image := obj.Get("Config.Image"); image.Exists() {
			parts = append(parts, fmt.Sprintf("image=%s", image.String()))
		}
		if status := obj.Get("State.Status"); status.Exists() {
			parts = append(parts, fmt.Sprintf("state=%s", status.String()))
		}
		if len(parts) == 0 {
			parts = append(parts, "(no recognized fields)")
		}
		fmt.Fprintf(&b, "  %s\n", strings.Join(parts, " "))
	}
	return b.String()
}
