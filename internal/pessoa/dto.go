// internal/pessoa/dto.go
package pessoa

// CadastroCompletoRequest agrupa pessoa, contato e endereço em um único POST.
type CadastroCompletoRequest struct {
	Pessoa   Pessoa          `json:"pessoa"`
	Contato  *PessoaContato  `json:"contato,omitempty"`
	Endereco *PessoaEndereco `json:"endereco,omitempty"`
}

// CadastroCompletoResponse devolve a pessoa criada e os avisos das etapas
// seguintes que falharam. A criação é best-effort: contato e endereço não
// desfazem a pessoa já gravada.
type CadastroCompletoResponse struct {
	Pessoa Pessoa   `json:"pessoa"`
	Avisos []string `json:"avisos,omitempty"`
}
