package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// DepartmentsRenderer renders department listings and detail views
type DepartmentsRenderer struct {
	out    io.Writer
	symbol string
	json   bool
}

// NewDepartmentsRenderer creates a new departments renderer
func NewDepartmentsRenderer(out io.Writer, symbol string, asJSON bool) *DepartmentsRenderer {
	return &DepartmentsRenderer{out: out, symbol: symbol, json: asJSON}
}

// RenderList renders the department list
func (r *DepartmentsRenderer) RenderList(result *usecase.DepartmentListResult) error {
	if r.json {
		return json.NewEncoder(r.out).Encode(result.Departments)
	}

	if len(result.Departments) == 0 {
		fmt.Fprintln(r.out, "No departments registered")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Address", "Budget", "Spent", "Remaining", "Projects", "Status"})

	for _, dept := range result.Departments {
		status := activeStyle.Sprint("active")
		if !dept.IsActive {
			status = inactiveStyle.Sprint("inactive")
		}
		t.AppendRow(table.Row{
			nameStyle.Sprint(dept.Name),
			addressStyle.Sprint(dept.Address.Hex()),
			formatNative(dept.Budget, r.symbol),
			formatNative(dept.Spent, r.symbol),
			formatNative(dept.Remaining(), r.symbol),
			dept.ActiveProjects,
			status,
		})
	}
	t.Render()

	fmt.Fprintf(r.out, "\n%d departments (%d active), total budget %s, total spent %s\n",
		result.Summary.Total, result.Summary.Active,
		formatNative(result.Summary.TotalBudget, r.symbol),
		formatNative(result.Summary.TotalSpent, r.symbol))
	return nil
}

// RenderDetail renders one department record
func (r *DepartmentsRenderer) RenderDetail(result *usecase.ShowDepartmentResult) error {
	if r.json {
		return json.NewEncoder(r.out).Encode(result.Department)
	}

	dept := result.Department
	fmt.Fprintf(r.out, "%s\n", headerStyle.Sprint(dept.Name))
	fmt.Fprintf(r.out, "  Address:         %s\n", dept.Address.Hex())
	fmt.Fprintf(r.out, "  Head:            %s\n", dept.Head.Hex())
	if dept.LogoURI != "" {
		fmt.Fprintf(r.out, "  Logo:            %s\n", dept.LogoURI)
	}
	fmt.Fprintf(r.out, "  Budget:          %s\n", formatNative(dept.Budget, r.symbol))
	fmt.Fprintf(r.out, "  Spent:           %s\n", formatNative(dept.Spent, r.symbol))
	fmt.Fprintf(r.out, "  Remaining:       %s\n", formatNative(result.Remaining, r.symbol))
	fmt.Fprintf(r.out, "  Efficiency:      %d%%\n", dept.Efficiency)
	fmt.Fprintf(r.out, "  Active projects: %d\n", dept.ActiveProjects)
	if dept.IsActive {
		fmt.Fprintf(r.out, "  Status:          %s\n", activeStyle.Sprint("active"))
	} else {
		fmt.Fprintf(r.out, "  Status:          %s\n", inactiveStyle.Sprint("inactive"))
	}
	return nil
}
