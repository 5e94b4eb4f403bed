// Package fixtures provides the seed data of the record store.
package fixtures

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"go-jobboard-backend/internal/domain"

	"github.com/goccy/go-json"
)

//go:embed data/*.json
var embedded embed.FS

// Set is one snapshot of every collection
type Set struct {
	Jobs          []domain.Job
	Companies     []domain.Company
	Applications  []domain.Application
	Candidates    []domain.Candidate
	Notifications []domain.Notification
}

// Load reads the fixtures from dir, or the embedded defaults when dir is
// empty. Every collection file must be present.
func Load(dir string) (*Set, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys)
}

func LoadFS(fsys fs.FS) (*Set, error) {
	set := &Set{}
	files := []struct {
		name string
		dst  any
	}{
		{"jobs.json", &set.Jobs},
		{"companies.json", &set.Companies},
		{"applications.json", &set.Applications},
		{"candidates.json", &set.Candidates},
		{"notifications.json", &set.Notifications},
	}
	for _, f := range files {
		raw, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, fmt.Errorf("fixtures: read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return nil, fmt.Errorf("fixtures: decode %s: %w", f.name, err)
		}
	}
	return set, nil
}

// MustLoad is Load for tests and the embedded defaults
func MustLoad() *Set {
	set, err := Load("")
	if err != nil {
		panic(err)
	}
	return set
}
