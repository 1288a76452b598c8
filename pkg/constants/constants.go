package constants

// --- STATUS DOS AGENDAMENTOS (ordem fixa de exibição) ---
const (
	StatusAgendado   = "Agendado"
	StatusAguardando = "Aguardando"
	StatusConfirmado = "Confirmado"
	StatusExecucao   = "Execucao"
	StatusConcluido  = "Concluido"
	StatusCancelado  = "Cancelado"
)

var Status = []string{
	StatusAgendado,
	StatusAguardando,
	StatusConfirmado,
	StatusExecucao,
	StatusConcluido,
	StatusCancelado,
}

// Status que ainda contam para conflitos e capacidade
var StatusAtivos = []string{
	StatusAgendado,
	StatusAguardando,
	StatusConfirmado,
	StatusExecucao,
}

// Status finais
var StatusFinais = []string{
	StatusConcluido,
	StatusCancelado,
}

func IsStatusFinal(s string) bool {
	for _, f := range StatusFinais {
		if s == f {
			return true
		}
	}
	return false
}

// --- TIPOS DE SERVIÇO ---
const ServicoConcretagem = "Concretagem"

var TiposServico = []string{
	ServicoConcretagem,
	"Ensaio de Solo",
	"Coleta de Solo",
	"Arrancamento",
	"Coleta de Blocos",
	"Coleta de Prismas",
}

func IsTipoServicoValido(t string) bool {
	for _, s := range TiposServico {
		if s == t {
			return true
		}
	}
	return false
}

// --- AÇÕES DE HISTÓRICO ---
const (
	AcaoCreate         = "CREATE"
	AcaoUpdate         = "UPDATE"
	AcaoDelete         = "DELETE"
	AcaoCancelFallback = "CANCEL_FALLBACK"
)

const (
	EntidadeConcretagens = "concretagens"
	EntidadeObras        = "obras"
)

// --- CONFIG ---
const (
	ChaveCapacidadeEquipe = "team_capacity"
	// chave antiga, mantida em espelho para bancos legados
	ChaveCapacidadeLegada  = "capacidade_colaboradores"
	CapacidadePadraoEquipe = 12
)

// --- PADRÕES DE ESTIMATIVA ---
const (
	CpsPorCaminhaoPadrao = 6
	DuracaoMinimaMin     = 15
)

// --- PERFIS DE USUÁRIO ---
const (
	PerfilAdmin = "admin"
	PerfilUser  = "user"
)
