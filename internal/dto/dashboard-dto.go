package dto

import "agenda-concretagem/pkg/agenda"

type DashboardDTO struct {
	Proximas   []ConcretagemDTO         `json:"proximas"`
	Conflitos  []agenda.ConflitoRecurso `json:"conflitos"`
	Capacidade []CapacidadeDTO          `json:"capacidade"`
	Totais     DashboardTotaisDTO       `json:"totais"`
}

type DashboardTotaisDTO struct {
	Agendadas   int     `json:"agendadas"`
	Confirmadas int     `json:"confirmadas"`
	VolumeM3    float64 `json:"volume_m3"`
}
