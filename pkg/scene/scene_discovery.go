package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`                 // Unique identifier, accepted by Create
	DisplayName string `json:"displayName"`        // UI display name
	Description string `json:"description"`        // Optional description
	Type        string `json:"type"`               // "builtin" or "json"
	FilePath    string `json:"filePath,omitempty"` // Path to the JSON file (json type only)
}

var builtinInfo = []SceneInfo{
	{ID: "basic", Description: "Three matte spheres in red, green and blue"},
	{ID: "default", Description: "Shiny reflective spheres on a giant yellow sphere"},
	{ID: "mirrors", Description: "A sphere between two facing mirrors"},
	{ID: "plane", Description: "Spheres on a reflective ground plane under a blue sky"},
}

// Create returns the scene identified by name: a built-in scene ID, a path
// to a .json file, or the name of a .json file inside dir
func Create(name, dir string) (*Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty scene name", ErrUnknownScene)
	}
	if build, ok := builtins[name]; ok {
		return build(), nil
	}

	path := name
	if !strings.HasSuffix(path, ".json") {
		path = filepath.Join(dir, name+".json")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScene, name)
	}
	return LoadFile(path)
}

// ListScenes returns the built-in scenes followed by the JSON scenes found in
// dir, sorted by display name. A missing dir yields only the built-ins.
func ListScenes(dir string) ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinInfo))
	for _, info := range builtinInfo {
		info.DisplayName = titleCase(info.ID)
		info.Type = "builtin"
		scenes = append(scenes, info)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var found []SceneInfo
	for _, path := range files {
		found = append(found, parseMetadata(path))
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].DisplayName < found[j].DisplayName
	})

	return append(scenes, found...), nil
}

// parseMetadata reads the name and description of a JSON scene, falling back
// to the file name when the file cannot be read
func parseMetadata(path string) SceneInfo {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := SceneInfo{
		ID:          base,
		DisplayName: titleCase(base),
		Type:        "json",
		FilePath:    path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return info
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return info
	}
	if header.Name != "" {
		info.DisplayName = header.Name
	}
	info.Description = header.Description
	return info
}

// titleCase converts a filename-style string to title case
// e.g., "two-mirrors" -> "Two Mirrors"
func titleCase(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}
