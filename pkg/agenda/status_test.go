package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizarStatus(t *testing.T) {
	assert.Equal(t, "execucao", NormalizarStatus("Execução"))
	assert.Equal(t, "execucao", NormalizarStatus("  EXECUCAO "))
	assert.Equal(t, "concluido", NormalizarStatus("Concluído"))
	assert.Equal(t, "agendado", NormalizarStatus("Agendado"))
}

func TestStatusComprometido(t *testing.T) {
	// grafia acentuada e sem acento contam igual
	assert.True(t, StatusComprometido("Execução"))
	assert.True(t, StatusComprometido("Execucao"))
	assert.True(t, StatusComprometido("Agendado"))
	assert.True(t, StatusComprometido("aguardando"))
	assert.True(t, StatusComprometido("CONFIRMADO"))

	assert.False(t, StatusComprometido("Concluido"))
	assert.False(t, StatusComprometido("Concluído"))
	assert.False(t, StatusComprometido("Cancelado"))
	assert.False(t, StatusComprometido(""))
}

func TestStatusCancelado(t *testing.T) {
	assert.True(t, StatusCancelado("Cancelado"))
	assert.True(t, StatusCancelado("cancelada"))
	assert.True(t, StatusCancelado("Cancelado pelo cliente"))
	assert.False(t, StatusCancelado("Agendado"))
	assert.False(t, StatusCancelado(""))
}

func TestStatusEncerrado(t *testing.T) {
	assert.True(t, StatusEncerrado("Cancelado"))
	assert.True(t, StatusEncerrado("Concluido"))
	assert.True(t, StatusEncerrado("Concluído"))
	assert.False(t, StatusEncerrado("Execução"))
	assert.False(t, StatusEncerrado("Agendado"))
	assert.False(t, StatusEncerrado(""))
}
