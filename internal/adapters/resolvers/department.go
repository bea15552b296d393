package resolvers

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// DepartmentResolverAdapter resolves user-supplied department references.
// A reference is either an 0x address, an exact registered name, or a
// partial name matched fuzzily against the registry. Ambiguous partial
// matches are disambiguated interactively; in non-interactive mode
// ambiguity is an error.
type DepartmentResolverAdapter struct {
	config      *config.RuntimeConfig
	departments usecase.DepartmentReader
}

// NewDepartmentResolverAdapter creates a new department resolver.
func NewDepartmentResolverAdapter(cfg *config.RuntimeConfig, departments usecase.DepartmentReader) *DepartmentResolverAdapter {
	return &DepartmentResolverAdapter{config: cfg, departments: departments}
}

// ResolveDepartment resolves ref to a registered department.
func (r *DepartmentResolverAdapter) ResolveDepartment(ctx context.Context, ref string) (*models.Department, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty department reference", domain.ErrNotFound)
	}

	if common.IsHexAddress(ref) {
		return r.departments.GetDepartment(ctx, common.HexToAddress(ref))
	}

	all, err := r.departments.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	// Exact name match wins over any fuzzy candidates.
	for _, dept := range all {
		if strings.EqualFold(dept.Name, ref) {
			return dept, nil
		}
	}

	matches := fuzzyMatch(ref, all)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: no department matching %q", domain.ErrNotFound, ref)
	case 1:
		return matches[0], nil
	}

	if r.config.NonInteractive {
		return nil, fmt.Errorf("department reference %q is ambiguous (%s)", ref, joinNames(matches))
	}
	return r.selectDepartment(matches)
}

func fuzzyMatch(ref string, all []*models.Department) []*models.Department {
	names := make([]string, len(all))
	for i, dept := range all {
		names[i] = dept.Name
	}

	results := fuzzy.Find(strings.ToLower(ref), lowered(names))
	matches := make([]*models.Department, 0, len(results))
	for _, res := range results {
		matches = append(matches, all[res.Index])
	}
	return matches
}

func lowered(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.ToLower(name)
	}
	return out
}

func (r *DepartmentResolverAdapter) selectDepartment(matches []*models.Department) (*models.Department, error) {
	options := make([]string, len(matches))
	for i, dept := range matches {
		name := color.New(color.FgWhite, color.Bold).Sprint(dept.Name)
		addr := color.New(color.FgBlue).Sprint(dept.Address.Hex())
		options[i] = fmt.Sprintf("%s (%s)", name, addr)
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
	}

	prompt := promptui.Select{
		Label:     "Select department",
		Items:     options,
		Templates: templates,
		Size:      10,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return matches[index], nil
}

func joinNames(departments []*models.Department) string {
	names := make([]string, len(departments))
	for i, dept := range departments {
		names[i] = dept.Name
	}
	return strings.Join(names, ", ")
}

var _ usecase.DepartmentResolver = (*DepartmentResolverAdapter)(nil)
