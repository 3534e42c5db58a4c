// internal/core/estoque/service.go
package estoque

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/allex-sso/almoxpro-sub000/internal/domain"
	"go.uber.org/zap"
)

// Service orquestra o ciclo de sincronização: busca os feeds do perfil em
// paralelo, extrai os registros tipados, reconcilia e publica o snapshot.
type Service interface {
	Sincronizar(ctx context.Context, perfil domain.Perfil) domain.Snapshot
	Snapshot() domain.Snapshot
}

type service struct {
	buscador BuscadorCSV
	logger   *zap.Logger

	mu    sync.RWMutex
	atual domain.Snapshot
}

// NewService cria o serviço de sincronização do almoxarifado.
func NewService(buscador BuscadorCSV, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{buscador: buscador, logger: logger}
}

// Índices fixos dos feeds de um perfil dentro do ciclo.
const (
	feedEstoque = iota
	feedEntradas
	feedSaidas
	feedOrdens
	totalFeeds
)

var nomesFeeds = [totalFeeds]string{"estoque", "entradas", "saidas", "ordens"}

// Sincronizar executa um ciclo completo. Não retorna erro: cada feed que
// falhar (rede, HTML no lugar do CSV, cabeçalho irreconhecível) contribui
// com uma lista vazia e o restante segue. O snapshot resultante substitui o
// anterior de uma vez só.
func (s *service) Sincronizar(ctx context.Context, perfil domain.Perfil) domain.Snapshot {
	textos := s.buscarFeeds(ctx, perfil)

	itens := ExtrairItens(textos[feedEstoque])
	entradas := ExtrairMovimentos(textos[feedEntradas], domain.TipoEntrada)
	saidas := ExtrairMovimentos(textos[feedSaidas], domain.TipoSaida)
	ordens := ExtrairOrdens(textos[feedOrdens])

	itens, movimentos := reconciliar(itens, entradas, saidas)

	snap := domain.Snapshot{
		Itens:            itens,
		Movimentos:       movimentos,
		Ordens:           ordens,
		GeradoEm:         time.Now(),
		FalhaComunicacao: strings.TrimSpace(perfil.URLEstoque) != "" && len(itens) == 0,
	}

	s.mu.Lock()
	s.atual = snap
	s.mu.Unlock()

	s.logger.Info("sincronização concluída",
		zap.String("perfil", perfil.Nome),
		zap.Int("itens", len(snap.Itens)),
		zap.Int("movimentos", len(snap.Movimentos)),
		zap.Int("ordens", len(snap.Ordens)),
		zap.Bool("falha_comunicacao", snap.FalhaComunicacao))

	return snap
}

// buscarFeeds dispara as buscas configuradas em paralelo e espera todas
// assentarem. A falha de um feed não bloqueia nem corrompe os demais.
func (s *service) buscarFeeds(ctx context.Context, perfil domain.Perfil) [totalFeeds]string {
	enderecos := [totalFeeds]string{
		feedEstoque:  perfil.URLEstoque,
		feedEntradas: perfil.URLEntradas,
		feedSaidas:   perfil.URLSaidas,
		feedOrdens:   perfil.URLOrdens,
	}

	var textos [totalFeeds]string
	var wg sync.WaitGroup
	for i, endereco := range enderecos {
		if strings.TrimSpace(endereco) == "" {
			continue
		}
		wg.Add(1)
		go func(i int, endereco string) {
			defer wg.Done()
			texto, err := s.buscador.BuscarCSV(ctx, endereco)
			if err != nil {
				s.logger.Warn("falha ao buscar feed",
					zap.String("feed", nomesFeeds[i]),
					zap.Error(err))
				return
			}
			textos[i] = texto
		}(i, endereco)
	}
	wg.Wait()
	return textos
}

// Snapshot devolve o último snapshot publicado (vazio antes da primeira
// sincronização).
func (s *service) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.atual
}
