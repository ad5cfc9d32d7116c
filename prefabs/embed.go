package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed sequences/*.yaml
var SequencesFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// LoadScript reads an input script, preferring prefabs/scripts on disk so
// edits are picked up without a rebuild.
func LoadScript(name string) ([]byte, error) {
	clean := cleanSubPath("scripts", name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// LoadSequence reads a scripted input sequence, disk first.
func LoadSequence(name string) ([]byte, error) {
	clean := cleanSubPath("sequences", name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return SequencesFS.ReadFile(clean)
}

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

// cleanSubPath normalises name to "<dir>/<file>" whether or not it already
// carries the prefabs/ or <dir>/ prefix.
func cleanSubPath(dir, name string) string {
	if name == "" {
		return ""
	}

	s := filepath.ToSlash(name)

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, dir+"/"); ok {
		s = after
	}

	return dir + "/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
