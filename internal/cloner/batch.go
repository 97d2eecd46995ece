package cloner

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"revclone/internal/observability"
)

// Request é a entrada de um batch: o shipping profile da conta de destino
// e as referências cruas na ordem em que o usuário as forneceu.
type Request struct {
	ShippingProfileID int
	References        []string
}

// Batch roda o pipeline item a item, sempre em sequência. O delay fixo
// entre itens é o mecanismo de rate limit, não há paralelismo.
type Batch struct {
	Fetcher   Fetcher
	Publisher *Publisher

	// Pausa incondicional depois de cada item, inclusive o último.
	ItemDelay time.Duration

	// OnProgress recebe (concluídos, total) depois de cada item.
	OnProgress func(done, total int)
}

// SplitReferences quebra a entrada do usuário por vírgula ou quebra de
// linha, descartando espaços e entradas em branco.
func SplitReferences(raw string) []string {
	parts := strings.Split(strings.ReplaceAll(raw, "\n", ","), ",")
	var refs []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			refs = append(refs, p)
		}
	}
	return refs
}

// Run produz um Outcome por referência não vazia, na ordem de entrada.
// Duplicatas são processadas e reportadas de forma independente. Falha de
// um item nunca derruba o batch: cada passo converte o próprio erro em
// Outcome e o próximo item segue normalmente.
func (b *Batch) Run(req Request) []Outcome {
	var refs []string
	for _, r := range req.References {
		if r = strings.TrimSpace(r); r != "" {
			refs = append(refs, r)
		}
	}

	if len(refs) == 0 {
		log.Println("Batch vazio, nada a processar")
		return nil
	}

	runID := uuid.New().String()
	log.Printf("[Batch %s] Iniciando clonagem de %d itens", runID, len(refs))

	outcomes := make([]Outcome, 0, len(refs))
	for i, ref := range refs {
		out := b.processOne(ref, req.ShippingProfileID)
		outcomes = append(outcomes, out)

		observability.ItemsTotal.WithLabelValues(string(out.Status)).Inc()
		observability.BatchProgress.Set(float64(i+1) / float64(len(refs)))
		if b.OnProgress != nil {
			b.OnProgress(i+1, len(refs))
		}

		log.Printf("[Batch %s] %d/%d %s: %s", runID, i+1, len(refs), out.Status, ref)

		// Respeita o rate limit da API antes do próximo item.
		time.Sleep(b.ItemDelay)
	}

	log.Printf("[Batch %s] Finalizado", runID)
	return outcomes
}

func (b *Batch) processOne(ref string, shippingProfileID int) Outcome {
	out := Outcome{Reference: ref}

	id, ok := ExtractListingID(ref)
	if !ok {
		out.Status = StatusParseFailed
		out.Message = "referência sem id de anúncio (esperado item/<número>)"
		return out
	}
	out.ListingID = id

	src, err := b.Fetcher.FetchListing(id)
	if err != nil {
		out.Status = StatusFetchFailed
		out.Message = err.Error()
		return out
	}

	payload := BuildPayload(src, shippingProfileID)

	newID, err := b.Publisher.CreateAndPublish(payload)
	out.NewID = newID
	if err != nil {
		if newID != "" {
			out.Status = StatusPublishFailed
		} else {
			out.Status = StatusCreateFailed
		}
		out.Message = err.Error()
		return out
	}

	out.Status = StatusSucceeded
	out.Message = "publicado como " + newID
	return out
}
