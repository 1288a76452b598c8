package dto

import "agenda-concretagem/pkg/agenda"

type CreateConcretagemDTO struct {
	ObraID      *int64 `json:"obra_id" validate:"omitempty,gt=0"`
	TipoServico string `json:"tipo_servico" validate:"required"`
	Data        string `json:"data" validate:"required,data_format"`
	HoraInicio  string `json:"hora_inicio" validate:"required,hora_format"`

	// ausente: pré-preenchida pela heurística de duração padrão
	DuracaoMin *int     `json:"duracao_min,omitempty" validate:"omitempty,gte=0"`
	VolumeM3   *float64 `json:"volume_m3,omitempty" validate:"omitempty,gte=0"`
	FckMpa     *float64 `json:"fck_mpa,omitempty" validate:"omitempty,gte=0"`
	Slump      *string  `json:"slump,omitempty"`

	Usina    *string `json:"usina,omitempty"`
	Bomba    *string `json:"bomba,omitempty"`
	Equipe   *string `json:"equipe,omitempty"`
	ColabQtd *int    `json:"colab_qtd,omitempty" validate:"omitempty,gte=1"`

	CapCaminhaoM3  *float64 `json:"cap_caminhao_m3,omitempty" validate:"omitempty,gt=0"`
	CpsPorCaminhao *int     `json:"cps_por_caminhao,omitempty" validate:"omitempty,gte=1"`

	Status      *string `json:"status,omitempty" validate:"omitempty,status_agenda"`
	Observacoes *string `json:"observacoes,omitempty"`
}

type UpdateConcretagemDTO struct {
	ObraID      *int64  `json:"obra_id,omitempty" validate:"omitempty,gt=0"`
	TipoServico *string `json:"tipo_servico,omitempty"`
	Data        *string `json:"data,omitempty" validate:"omitempty,data_format"`
	HoraInicio  *string `json:"hora_inicio,omitempty" validate:"omitempty,hora_format"`
	DuracaoMin  *int    `json:"duracao_min,omitempty" validate:"omitempty,gte=0"`

	VolumeM3 *float64 `json:"volume_m3,omitempty" validate:"omitempty,gte=0"`
	FckMpa   *float64 `json:"fck_mpa,omitempty" validate:"omitempty,gte=0"`
	Slump    *string  `json:"slump,omitempty"`

	Usina    *string `json:"usina,omitempty"`
	Bomba    *string `json:"bomba,omitempty"`
	Equipe   *string `json:"equipe,omitempty"`
	ColabQtd *int    `json:"colab_qtd,omitempty" validate:"omitempty,gte=1"`

	CapCaminhaoM3  *float64 `json:"cap_caminhao_m3,omitempty" validate:"omitempty,gt=0"`
	CpsPorCaminhao *int     `json:"cps_por_caminhao,omitempty" validate:"omitempty,gte=1"`

	Status      *string `json:"status,omitempty" validate:"omitempty,status_agenda"`
	Observacoes *string `json:"observacoes,omitempty"`
}

// ConcretagemDTO é a linha de agenda devolvida para listagens e consultas,
// já com os campos da obra achatados e a hora de término calculada.
type ConcretagemDTO struct {
	ID          int64  `json:"id"`
	ObraID      *int64 `json:"obra_id,omitempty"`
	Obra        string `json:"obra"`
	Cliente     string `json:"cliente,omitempty"`
	Cidade      string `json:"cidade,omitempty"`
	Responsavel string `json:"responsavel,omitempty"`

	TipoServico string `json:"tipo_servico"`
	Data        string `json:"data"`
	HoraInicio  string `json:"hora_inicio"`
	HoraFim     string `json:"hora_fim"`
	DuracaoMin  int    `json:"duracao_min"`

	VolumeM3 float64  `json:"volume_m3"`
	FckMpa   *float64 `json:"fck_mpa,omitempty"`
	SlumpMm  *float64 `json:"slump_mm,omitempty"`
	SlumpTxt string   `json:"slump_txt,omitempty"`

	Usina    string `json:"usina,omitempty"`
	Bomba    string `json:"bomba"`
	Equipe   string `json:"equipe"`
	ColabQtd int    `json:"colab_qtd"`

	CapCaminhaoM3  *float64 `json:"cap_caminhao_m3,omitempty"`
	CpsPorCaminhao *int     `json:"cps_por_caminhao,omitempty"`
	CaminhoesEst   int      `json:"caminhoes_est"`
	FormasEst      int      `json:"formas_est"`

	Status      string `json:"status"`
	Observacoes string `json:"observacoes,omitempty"`
	CriadoPor   string `json:"criado_por,omitempty"`
	AlteradoPor string `json:"alterado_por,omitempty"`
	CriadoEm    string `json:"criado_em,omitempty"`
}

// SalvarConcretagemRespostaDTO acompanha cada criação/edição com os avisos
// consultivos: conflitos encontrados e projeção de capacidade do dia.
// A gravação acontece mesmo com conflito; a decisão é da interface.
type SalvarConcretagemRespostaDTO struct {
	Concretagem ConcretagemDTO    `json:"concretagem"`
	Conflitos   []agenda.Conflito `json:"conflitos"`
	Capacidade  CapacidadeDTO     `json:"capacidade"`
}

type ConsultaConflitoDTO struct {
	Data       string `json:"data" validate:"required,data_format"`
	HoraInicio string `json:"hora_inicio" validate:"required,hora_format"`
	DuracaoMin int    `json:"duracao_min" validate:"gte=0"`
	Bomba      string `json:"bomba"`
	Equipe     string `json:"equipe"`
	IgnorarID  *int64 `json:"ignorar_id,omitempty"`
}

type ExclusaoRespostaDTO struct {
	HardDeleted bool `json:"hard_deleted"`
}

// EstimativaDTO alimenta as estimativas ao vivo do formulário.
type EstimativaDTO struct {
	VolumeM3       float64 `json:"volume_m3"`
	CapCaminhaoM3  float64 `json:"cap_caminhao_m3"`
	CpsPorCaminhao int     `json:"cps_por_caminhao"`
}

type EstimativaRespostaDTO struct {
	CaminhoesEst     int    `json:"caminhoes_est"`
	FormasEst        int    `json:"formas_est"`
	DuracaoPadraoMin int    `json:"duracao_padrao_min"`
	VolumeFormatado  string `json:"volume_formatado"`
}
