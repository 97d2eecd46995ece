package cloner

import (
	"encoding/json"
	"fmt"
	"net/http"

	"revclone/internal/reverb"
)

// Fetcher busca o anúncio de origem. A implementação padrão vai direto na
// API; cmd/cloner pode envolvê-la com o cache de listagens quando houver
// Redis configurado.
type Fetcher interface {
	FetchListing(id string) (*reverb.SourceListing, error)
}

type APIFetcher struct {
	Client *reverb.Client
}

// FetchListing faz GET /listings/{id}. Qualquer status fora de 200, erro de
// transporte ou corpo ilegível vira uma única falha de fetch, sem retry.
func (f *APIFetcher) FetchListing(id string) (*reverb.SourceListing, error) {
	resp, err := f.Client.Do(http.MethodGet, "/listings/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverb status %d for listing %s", resp.StatusCode, id)
	}

	var src reverb.SourceListing
	if err := json.NewDecoder(resp.Body).Decode(&src); err != nil {
		return nil, fmt.Errorf("failed to decode listing %s: %w", id, err)
	}

	return &src, nil
}
