package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/controlepessoal/api-cobrancas/internal/auth"
	"github.com/controlepessoal/api-cobrancas/internal/cep"
	"github.com/controlepessoal/api-cobrancas/internal/cobranca"
	"github.com/controlepessoal/api-cobrancas/internal/dashboard"
	"github.com/controlepessoal/api-cobrancas/internal/notificacao"
	"github.com/controlepessoal/api-cobrancas/internal/parcelamento"
	"github.com/controlepessoal/api-cobrancas/internal/pessoa"
	"github.com/controlepessoal/api-cobrancas/internal/usuario"
	"github.com/controlepessoal/api-cobrancas/internal/utils/cache"
	"github.com/controlepessoal/api-cobrancas/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := conn.AutoMigrate(
		&usuario.Usuario{},
		&auth.RefreshToken{},
		&pessoa.Pessoa{},
		&pessoa.PessoaContato{},
		&pessoa.PessoaEndereco{},
		&cobranca.Cobranca{},
		&cobranca.PessoaCobrancaHistorico{},
		&parcelamento.PessoaParcelamento{},
		&parcelamento.PessoaParcelamentoDetalhe{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	cobrancaRepo := cobranca.NewRepository(conn)

	// Handlers
	usuarioHandler := usuario.NewHandler(conn)
	pessoaHandler := pessoa.NewHandler(conn)
	cobrancaHandler := cobranca.NewHandler(cobrancaRepo)
	parcelamentoHandler := parcelamento.NewHandler(parcelamento.NewRepository(conn))
	dashboardHandler := dashboard.NewHandler(conn, cobrancaRepo, cache.NovoCliente())
	cepHandler := cep.NewHandler(cep.NewClient())
	notificacaoHandler := notificacao.NewHandler()

	// Router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Rotas públicas
	api.HandleFunc("/Autenticacao/login", usuarioHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(conn)).Methods("POST")
	api.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(conn)).Methods("POST")

	// Rotas protegidas
	protegido := api.NewRoute().Subrouter()
	protegido.Use(auth.MiddlewareAutenticacao)

	// Usuários
	protegido.HandleFunc("/Usuario", usuarioHandler.CriarUsuario).Methods("POST")
	protegido.HandleFunc("/Usuario/me", usuarioHandler.Me).Methods("GET")
	protegido.HandleFunc("/Usuario/redefinir-senha", usuarioHandler.RedefinirSenha).Methods("POST")
	protegido.HandleFunc("/Usuario/senha-temporaria", usuarioHandler.GerarSenhaTemporaria).Methods("POST")

	// Pessoas
	protegido.HandleFunc("/Pessoa", pessoaHandler.CriarPessoa).Methods("POST")
	protegido.HandleFunc("/Pessoa/cadastro-completo", pessoaHandler.CadastroCompleto).Methods("POST")
	protegido.HandleFunc("/Pessoa", pessoaHandler.ListarPessoas).Methods("GET")
	protegido.HandleFunc("/Pessoa/{id}", pessoaHandler.BuscarPorID).Methods("GET")
	protegido.HandleFunc("/Pessoa/{id}", pessoaHandler.AtualizarPessoa).Methods("PUT")
	protegido.HandleFunc("/Pessoa/{id}", pessoaHandler.DeletarPessoa).Methods("DELETE")
	protegido.HandleFunc("/PessoaContato", pessoaHandler.CriarContato).Methods("POST")
	protegido.HandleFunc("/PessoaEndereco", pessoaHandler.CriarEndereco).Methods("POST")

	// Cobranças
	protegido.HandleFunc("/Cobranca", cobrancaHandler.Criar).Methods("POST")
	protegido.HandleFunc("/Cobranca", cobrancaHandler.Listar).Methods("GET")
	protegido.HandleFunc("/Cobranca/cronograma", cobrancaHandler.Cronograma).Methods("POST")
	protegido.HandleFunc("/Cobranca/pessoa/{codigoPessoa}", cobrancaHandler.ListarPorPessoa).Methods("GET")
	protegido.HandleFunc("/Cobranca/{id}", cobrancaHandler.BuscarPorID).Methods("GET")
	protegido.HandleFunc("/Cobranca/{id}", cobrancaHandler.Atualizar).Methods("PUT")
	protegido.HandleFunc("/Cobranca/{id}", cobrancaHandler.Deletar).Methods("DELETE")
	protegido.HandleFunc("/Cobranca/{id}/pagamentos", cobrancaHandler.AbaterPagamento).Methods("POST")
	protegido.HandleFunc("/Cobranca/{id}/historico", cobrancaHandler.Historico).Methods("GET")
	protegido.HandleFunc("/Cobranca/{id}/finalizar", cobrancaHandler.Finalizar).Methods("POST")
	protegido.HandleFunc("/Cobranca/{id}/cancelar", cobrancaHandler.Cancelar).Methods("POST")

	// Parcelamentos
	protegido.HandleFunc("/PessoaParcelamento", parcelamentoHandler.Criar).Methods("POST")
	protegido.HandleFunc("/PessoaParcelamento", parcelamentoHandler.Listar).Methods("GET")
	protegido.HandleFunc("/PessoaParcelamento/detalhe", parcelamentoHandler.CriarDetalhe).Methods("POST")
	protegido.HandleFunc("/PessoaParcelamento/detalhe/{id}", parcelamentoHandler.AtualizarDetalhe).Methods("PUT")
	protegido.HandleFunc("/PessoaParcelamento/pessoa/{codigoPessoa}", parcelamentoHandler.ListarPorPessoa).Methods("GET")
	protegido.HandleFunc("/PessoaParcelamento/{id}", parcelamentoHandler.BuscarPorID).Methods("GET")
	protegido.HandleFunc("/PessoaParcelamento/{id}", parcelamentoHandler.Atualizar).Methods("PUT")
	protegido.HandleFunc("/PessoaParcelamento/{id}", parcelamentoHandler.Deletar).Methods("DELETE")
	protegido.HandleFunc("/PessoaParcelamento/{id}/detalhes", parcelamentoHandler.ListarDetalhes).Methods("GET")

	// Dashboard
	protegido.HandleFunc("/Dashboard/resumo", dashboardHandler.Resumo).Methods("GET")

	// CEP
	protegido.HandleFunc("/Cep/{cep}", cepHandler.Buscar).Methods("GET")

	// Notificação (alerta de documento duplicado sob demanda)
	protegido.HandleFunc("/notificar", notificacaoHandler.EnviarAlerta).Methods("POST")

	origem := os.Getenv("CORS_ORIGIN")
	if origem == "" {
		origem = "*"
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origem},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
