package entities

import (
	"github.com/aarondl/null/v8"

	"agenda-concretagem/pkg/types"
)

// Concretagem é um agendamento de serviço numa obra. Data e hora são
// gravadas como texto ("YYYY-MM-DD" / "HH:MM"), sem fuso, interpretadas
// no fuso configurado da aplicação.
type Concretagem struct {
	ID     int64      `json:"id"`
	ObraID null.Int64 `json:"obra_id"`

	TipoServico string `json:"tipo_servico"`
	Data        string `json:"data"`
	HoraInicio  string `json:"hora_inicio"`
	DuracaoMin  int    `json:"duracao_min"`

	VolumeM3 float64      `json:"volume_m3"`
	FckMpa   null.Float64 `json:"fck_mpa"`
	SlumpMm  null.Float64 `json:"slump_mm"`
	SlumpTxt null.String  `json:"slump_txt"`

	Usina    null.String `json:"usina"`
	Bomba    string      `json:"bomba"`
	Equipe   string      `json:"equipe"`
	ColabQtd int         `json:"colab_qtd"`

	// Estimativas persistidas para estabilidade de exibição/auditoria;
	// nunca recalculadas automaticamente depois da criação.
	CapCaminhaoM3  null.Float64 `json:"cap_caminhao_m3"`
	CpsPorCaminhao null.Int     `json:"cps_por_caminhao"`
	CaminhoesEst   null.Int     `json:"caminhoes_est"`
	FormasEst      null.Int     `json:"formas_est"`

	Status      string      `json:"status"`
	Observacoes null.String `json:"observacoes"`
	CriadoPor   null.String `json:"criado_por"`
	AlteradoPor null.String `json:"alterado_por"`

	types.BaseEntity
}
