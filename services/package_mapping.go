package services

import (
	"encoding/json"
	"fmt"
)

// PackageSpec is one spec of a package group. Electrical and mechanical files
// list plain strings; plumbing lists {code, title} objects.
type PackageSpec struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Text  string `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PackageSpec) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = PackageSpec{Text: s}
		return nil
	}
	type plain PackageSpec
	var obj plain
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("package spec must be a string or {code, title}: %w", err)
	}
	*p = PackageSpec(obj)
	return nil
}

// String renders the spec as displayed and exported.
func (p PackageSpec) String() string {
	if p.Text != "" || (p.Code == "" && p.Title == "") {
		return p.Text
	}
	return p.Code + " - " + p.Title
}

// PackageGroup is a package group and its specs.
type PackageGroup struct {
	Name  string
	Specs []PackageSpec
}

// PackageMappings holds the package groups of every discipline, in file order.
type PackageMappings struct {
	Groups map[Discipline][]PackageGroup
}

// NewPackageMappings returns an empty, valid mapping.
func NewPackageMappings() *PackageMappings {
	return &PackageMappings{Groups: make(map[Discipline][]PackageGroup)}
}

// ParsePackageMapping decodes one {discipline}_package.txt file.
func ParsePackageMapping(data []byte) ([]PackageGroup, error) {
	entries, err := decodeOrderedObject(StripCodeFence(data))
	if err != nil {
		return nil, fmt.Errorf("parse package mapping: %w", err)
	}
	groups := make([]PackageGroup, 0, len(entries))
	for _, e := range entries {
		var specs []PackageSpec
		if err := json.Unmarshal(e.Value, &specs); err != nil {
			return nil, fmt.Errorf("parse package group %q: %w", e.Key, err)
		}
		groups = append(groups, PackageGroup{Name: e.Key, Specs: specs})
	}
	return groups, nil
}

// packageFilePrefix maps a discipline to its package file prefix.
func packageFilePrefix(d Discipline) string {
	switch d {
	case DisciplineElectrical:
		return "elec"
	case DisciplineMechanical:
		return "mech"
	}
	return string(d)
}
