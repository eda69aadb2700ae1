package calculo

import "errors"

// Erros de validação do módulo de cálculo. São detectados antes de qualquer
// mutação e devolvidos diretamente ao chamador.
var (
	ErrArgumentoInvalido = errors.New("argumento inválido: valores negativos não são permitidos")
	ErrValorInvalido     = errors.New("valor de pagamento inválido")
	ErrValorExcedeSaldo  = errors.New("valor do pagamento excede o saldo devedor")
	ErrCampoObrigatorio  = errors.New("campo obrigatório ausente")
)
