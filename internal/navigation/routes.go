// Package navigation maps dashboard routes to page titles and menu entries.
// The mapping is pure; callers pass the current fragment explicitly.
package navigation

import "strings"

type Route string

const (
	Dashboard   Route = "dashboard"
	Employees   Route = "funcionarios"
	TimeRecords Route = "pontos"
	TimeBank    Route = "banco-horas"
	Requests    Route = "solicitacoes"
	Reports     Route = "relatorios"
	Settings    Route = "configuracoes"
	AuditLogs   Route = "logs"
)

const fallbackTitle = "Dashboard"

type routeInfo struct {
	label string
	title string
}

var order = []Route{Dashboard, Employees, TimeRecords, TimeBank, Requests, Reports, Settings, AuditLogs}

var routes = map[Route]routeInfo{
	Dashboard:   {label: "Dashboard", title: "Visão Geral"},
	Employees:   {label: "Funcionários", title: "Gestão de Funcionários"},
	TimeRecords: {label: "Registros de Ponto", title: "Registros de Ponto"},
	TimeBank:    {label: "Banco de Horas", title: "Banco de Horas"},
	Requests:    {label: "Solicitações", title: "Solicitações e Justificativas"},
	Reports:     {label: "Relatórios", title: "Relatórios e Exportação"},
	Settings:    {label: "Configurações", title: "Configurações do Sistema"},
	AuditLogs:   {label: "Logs de Auditoria", title: "Logs e Auditoria"},
}

// MenuEntry is one sidebar item
type MenuEntry struct {
	Route  Route  `json:"route"`
	Href   string `json:"href"`
	Label  string `json:"label"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// ParseRoute accepts "#name" or "name". Empty and unknown fragments resolve
// to the dashboard.
func ParseRoute(fragment string) Route {
	name := strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	r := Route(name)
	if _, ok := routes[r]; !ok {
		return Dashboard
	}
	return r
}

// Valid reports whether r is a known route
func (r Route) Valid() bool {
	_, ok := routes[r]
	return ok
}

// Href returns the fragment link for r
func (r Route) Href() string {
	return "#" + string(r)
}

// Title returns the page title shown in the header
func Title(r Route) string {
	if info, ok := routes[r]; ok {
		return info.title
	}
	return fallbackTitle
}

// Menu returns the sidebar entries in display order with current marked active
func Menu(current Route) []MenuEntry {
	entries := make([]MenuEntry, 0, len(order))
	for _, r := range order {
		info := routes[r]
		entries = append(entries, MenuEntry{
			Route:  r,
			Href:   r.Href(),
			Label:  info.label,
			Title:  info.title,
			Active: r == current,
		})
	}
	return entries
}
