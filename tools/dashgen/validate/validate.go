// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metric names.
package validate

import (
	"encoding/json"
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/jadehome/seller-console/tools/dashgen/rules"
)

// Result collects validation findings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// panelJSON is the subset of the Grafana panel model that carries queries.
// Rows nest their panels.
type panelJSON struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Targets []struct {
		Expr string `json:"expr"`
	} `json:"targets"`
	Panels []panelJSON `json:"panels"`
}

// Dashboard validates every Prometheus target of dash.
func Dashboard(dash *dashboard.Dashboard, known map[string]bool) *Result {
	res := &Result{}

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}
	var model struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &model); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}

	for i := range model.Panels {
		checkPanel(res, &model.Panels[i], known)
	}
	return res
}

func checkPanel(res *Result, p *panelJSON, known map[string]bool) {
	if p.Type == "row" {
		for i := range p.Panels {
			checkPanel(res, &p.Panels[i], known)
		}
		return
	}

	title := p.Title
	if title == "" {
		title = "<untitled>"
	}
	if len(p.Targets) == 0 {
		res.warnf("panel %q has no targets", title)
	}
	for _, t := range p.Targets {
		if t.Expr == "" {
			res.warnf("panel %q has a target without a PromQL expression", title)
			continue
		}
		checkExpr(res, "panel "+title, t.Expr, known)
	}
}

// Rules validates every rule expression in cr. Recording rules defined in
// cr count as known for the alert expressions that follow them.
func Rules(cr rules.PrometheusRule, known map[string]bool) *Result {
	res := &Result{}
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %s: rule without record or alert name", g.Name)
			}
			checkExpr(res, "rule "+name, r.Expr, known)
		}
	}
	return res
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if ok && vs.Name != "" && !known[vs.Name] {
			res.errorf("%s: unknown metric %q", where, vs.Name)
		}
		return nil
	})
}
