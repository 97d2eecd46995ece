package listingcache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"revclone/internal/reverb"
)

type stubFetcher struct {
	calls int
	src   *reverb.SourceListing
}

func (s *stubFetcher) FetchListing(id string) (*reverb.SourceListing, error) {
	s.calls++
	return s.src, nil
}

// Primeiro fetch vai na API e grava no Redis; o segundo do mesmo id sai do
// cache sem tocar a API.
func TestCachedFetcherMissThenHit(t *testing.T) {
	mr := miniredis.RunT(t)

	stub := &stubFetcher{src: &reverb.SourceListing{
		Title: "Gibson SG",
		Price: reverb.Price{Amount: "800.00", Currency: "USD"},
	}}
	c := &CachedFetcher{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		Next:   stub,
	}

	first, err := c.FetchListing("321")
	if err != nil {
		t.Fatalf("erro inesperado no miss: %v", err)
	}
	if !mr.Exists(keyPrefix + "321") {
		t.Error("miss deveria gravar o anúncio no Redis")
	}

	second, err := c.FetchListing("321")
	if err != nil {
		t.Fatalf("erro inesperado no hit: %v", err)
	}

	if stub.calls != 1 {
		t.Errorf("API chamada %d vezes, esperado 1 (segunda leitura via cache)", stub.calls)
	}
	if first.Title != second.Title || second.Price.Amount != "800.00" {
		t.Errorf("hit devolveu anúncio diferente: %+v vs %+v", first, second)
	}
}

// Redis fora do ar não pode derrubar o fetch: o cache degrada para a API.
func TestCachedFetcherDegradesWithoutRedis(t *testing.T) {
	stub := &stubFetcher{src: &reverb.SourceListing{Title: "Fender"}}
	c := &CachedFetcher{
		Client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}),
		Next:   stub,
	}

	src, err := c.FetchListing("123")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if src.Title != "Fender" {
		t.Errorf("listing = %+v", src)
	}
	if stub.calls != 1 {
		t.Errorf("fetch real chamado %d vezes, esperado 1", stub.calls)
	}
}
