package errors

import "fmt"

var (
	// JWT e tokens
	ErrMetodoAssinaturaInvalido = fmt.Errorf("método de assinatura do token inválido")
	ErrTokenInvalido            = fmt.Errorf("token inválido")
	ErrTokenExpirado            = fmt.Errorf("token expirado")
	ErrTokenNaoEhAccess         = fmt.Errorf("token não é um access token")

	// Autorização
	ErrCabecalhoAuthVazio    = fmt.Errorf("cabeçalho de autorização ausente")
	ErrCabecalhoAuthInvalido = fmt.Errorf("formato do cabeçalho de autorização inválido")
	ErrCredenciaisInvalidas  = fmt.Errorf("credenciais inválidas")
	ErrNaoAutorizado         = fmt.Errorf("não autorizado")
	ErrAcessoNegado          = fmt.Errorf("acesso negado")
	ErrUsuarioInativo        = fmt.Errorf("usuário desativado")

	// Contexto
	ErrUsuarioNaoEncontradoNoContexto = fmt.Errorf("usuário não encontrado no contexto da requisição")

	// Gerais
	ErrNotFound   = fmt.Errorf("registro não encontrado")
	ErrBadRequest = fmt.Errorf("requisição inválida")
	ErrConflict   = fmt.Errorf("registro duplicado")

	// Consulta externa de CNPJ
	ErrCNPJNaoEncontrado = fmt.Errorf("CNPJ não encontrado nos provedores consultados")

	// Capacidade: leitura agregada indisponível (falha de consulta)
	ErrCapacidadeIndisponivel = fmt.Errorf("não foi possível apurar os colaboradores comprometidos")
)

// Erro de entrada inválida com mensagem própria (vira 400 na borda HTTP).
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
