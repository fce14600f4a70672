package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/aiwynns/ideafactory/internal/home"
)

// Issue records one validation problem in a workspace file.
type Issue struct {
	File    string
	Kind    Kind
	Message string
}

// CheckWorkspace validates the front matter of every markdown document in
// the workspace. Files that fail to parse at all are reported as issues,
// not errors; the returned error covers only filesystem problems.
func (v *Validator) CheckWorkspace(h *home.Dir) ([]Issue, error) {
	var issues []Issue

	for _, loc := range home.Locations {
		found, err := v.checkDir(h.LocationPath(loc), KindBatch)
		if err != nil {
			return nil, err
		}
		issues = append(issues, found...)
	}

	found, err := v.checkDir(h.StoriesPath(), KindStory)
	if err != nil {
		return nil, err
	}
	issues = append(issues, found...)

	sort.Slice(issues, func(i, j int) bool { return issues[i].File < issues[j].File })
	return issues, nil
}

// CheckFile validates a single document's front matter.
func (v *Validator) CheckFile(path string, kind Kind) *Issue {
	f, err := os.Open(path)
	if err != nil {
		return &Issue{File: path, Kind: kind, Message: fmt.Sprintf("cannot open: %v", err)}
	}
	defer f.Close()

	var fm map[string]any
	if _, err := frontmatter.Parse(f, &fm); err != nil {
		return &Issue{File: path, Kind: kind, Message: fmt.Sprintf("front matter parse failed: %v", err)}
	}
	if fm == nil {
		return &Issue{File: path, Kind: kind, Message: "missing front matter"}
	}

	if err := v.Validate(kind, fm); err != nil {
		return &Issue{File: path, Kind: kind, Message: err.Error()}
	}
	return nil
}

func (v *Validator) checkDir(dir string, kind Kind) ([]Issue, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var issues []Issue
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		if issue := v.CheckFile(filepath.Join(dir, entry.Name()), kind); issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues, nil
}
