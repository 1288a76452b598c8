package dto

type CapacidadeEquipeDTO struct {
	Capacidade int `json:"capacidade" validate:"required,gte=1"`
}

// CapacidadeDTO resume a ocupação de colaboradores de um dia. Quando a
// consulta ao banco falha, Indisponivel marca o valor como não confiável
// em vez de esconder a falha atrás de um zero.
type CapacidadeDTO struct {
	Data         string `json:"data"`
	Comprometido int    `json:"comprometido"`
	Capacidade   int    `json:"capacidade"`
	Projetado    int    `json:"projetado,omitempty"`
	Acima        bool   `json:"acima"`
	Indisponivel bool   `json:"indisponivel,omitempty"`
}
