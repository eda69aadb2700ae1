// internal/dashboard/handler.go
package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/controlepessoal/api-cobrancas/internal/cobranca"
	"github.com/controlepessoal/api-cobrancas/internal/pessoa"
	"github.com/controlepessoal/api-cobrancas/internal/utils/cache"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	chaveResumo = "dashboard:resumo"
	ttlResumo   = 60 * time.Second
)

type Handler struct {
	DB        *gorm.DB
	Cobrancas *cobranca.Repository
	Cache     *redis.Client
}

func NewHandler(db *gorm.DB, cobrancas *cobranca.Repository, cacheClient *redis.Client) *Handler {
	return &Handler{DB: db, Cobrancas: cobrancas, Cache: cacheClient}
}

// Resumo devolve o painel consolidado. O resultado fica em cache por um
// minuto; como o status depende do dia e não da hora, o TTL curto não muda
// a classificação.
// GET /Dashboard/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if body, ok := cache.Obter(ctx, h.Cache, chaveResumo); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
		return
	}

	cobrancas, err := h.Cobrancas.ListAll()
	if err != nil {
		http.Error(w, "erro ao montar o resumo", http.StatusInternalServerError)
		return
	}

	resumo := MontarResumo(cobrancas, time.Now())
	if err := h.DB.Model(&pessoa.Pessoa{}).
		Where("excluido = ?", false).
		Count(&resumo.TotalPessoas).Error; err != nil {
		http.Error(w, "erro ao montar o resumo", http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(resumo)
	if err != nil {
		http.Error(w, "erro ao montar o resumo", http.StatusInternalServerError)
		return
	}

	cache.Guardar(ctx, h.Cache, chaveResumo, body, ttlResumo)

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
