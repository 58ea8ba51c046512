package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoute(t *testing.T) {
	assert.Equal(t, TimeBank, ParseRoute("#banco-horas"))
	assert.Equal(t, TimeRecords, ParseRoute("pontos"))
	assert.Equal(t, Dashboard, ParseRoute(""))
	assert.Equal(t, Dashboard, ParseRoute("#"))
	assert.Equal(t, Dashboard, ParseRoute("#nao-existe"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Visão Geral", Title(Dashboard))
	assert.Equal(t, "Solicitações e Justificativas", Title(Requests))
	assert.Equal(t, "Logs e Auditoria", Title(AuditLogs))
	assert.Equal(t, "Dashboard", Title(Route("desconhecida")))
}

func TestMenu(t *testing.T) {
	menu := Menu(ParseRoute("#logs"))

	assert.Len(t, menu, 8)
	assert.Equal(t, Dashboard, menu[0].Route)
	assert.Equal(t, "#dashboard", menu[0].Href)

	active := 0
	for _, e := range menu {
		if e.Active {
			active++
			assert.Equal(t, AuditLogs, e.Route)
		}
	}
	assert.Equal(t, 1, active)
}

func TestRouteValid(t *testing.T) {
	assert.True(t, Settings.Valid())
	assert.False(t, Route("x").Valid())
}
