package models

// DashboardData is the aggregate returned by the get-dashboard-data edge function
type DashboardData struct {
	TotalFuncionarios     int `json:"totalFuncionarios"`
	PontosHoje            int `json:"pontosHoje"`
	AusentesHoje          int `json:"ausentesHoje"`
	HorasExtrasMes        int `json:"horasExtrasMes"`
	HorasNegativasMes     int `json:"horasNegativasMes"`
	SolicitacoesPendentes int `json:"solicitacoesPendentes"`
}

// WeeklyHours is one point of the weekly hours chart
type WeeklyHours struct {
	Name  string `json:"name"`
	Horas int    `json:"horas"`
}

// StatusCount is one line of the workforce status breakdown
type StatusCount struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Subtext string `json:"subtext"`
}

// DashboardView is everything the overview page renders
type DashboardView struct {
	Metrics DashboardData `json:"metrics"`
	Weekly  []WeeklyHours `json:"weekly"`
	Status  []StatusCount `json:"status"`
	Demo    bool          `json:"demo"`
}
