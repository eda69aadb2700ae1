// internal/utils/cache/redis.go
package cache

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NovoCliente cria o cliente Redis a partir das variáveis de ambiente.
// REDIS_ADDR vazio desabilita o cache (retorna nil) e a aplicação segue
// direto ao banco.
func NovoCliente() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	dbIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			dbIndex = i
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbIndex,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis indisponível, cache desabilitado: %v", err)
		return nil
	}
	return client
}

// Obter lê uma chave; retorna false quando o cache está desabilitado ou a
// chave não existe.
func Obter(ctx context.Context, client *redis.Client, chave string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	val, err := client.Get(ctx, chave).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Guardar grava uma chave com TTL; silencioso quando o cache está desabilitado.
func Guardar(ctx context.Context, client *redis.Client, chave string, valor []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	if err := client.Set(ctx, chave, valor, ttl).Err(); err != nil {
		log.Printf("Erro ao gravar cache %s: %v", chave, err)
	}
}
