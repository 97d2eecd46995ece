package cloner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"revclone/internal/reverb"
)

// Publisher cria o anúncio como rascunho e o publica em seguida.
// PublishDelay é a pausa fixa entre criar e publicar, enquanto o Reverb
// indexa o novo id (zero nos testes).
type Publisher struct {
	Client       *reverb.Client
	PublishDelay time.Duration
}

// CreateAndPublish executa as duas fases para um payload. Retornos:
// id vazio + erro quando a criação falhou; id preenchido + erro quando
// criou mas não publicou (o rascunho fica no ar para publicação manual);
// id + nil quando deu tudo certo.
func (p *Publisher) CreateAndPublish(payload reverb.ClonePayload) (string, error) {
	resp, err := p.Client.Do(http.MethodPost, "/listings", payload)
	if err != nil {
		return "", fmt.Errorf("creation request failed: %w", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != 200 && resp.StatusCode != 201 && resp.StatusCode != 202 {
		return "", fmt.Errorf("creation failed: %d - %s", resp.StatusCode, body)
	}

	newID := extractNewID(body)
	if newID == "" {
		return "", fmt.Errorf("creation response without listing id: %s", body)
	}

	// Pausa para o Reverb registrar o novo id antes do publish.
	time.Sleep(p.PublishDelay)

	pubResp, err := p.Client.Do(http.MethodPut, "/listings/"+newID, map[string]bool{"publish": true})
	if err != nil {
		return newID, fmt.Errorf("created %s but publish request failed: %w", newID, err)
	}
	pubBody, _ := io.ReadAll(pubResp.Body)
	pubResp.Body.Close()

	if pubResp.StatusCode < 200 || pubResp.StatusCode >= 300 {
		return newID, fmt.Errorf("created %s but failed to publish: %s", newID, pubBody)
	}

	return newID, nil
}

// O id do anúncio recém-criado pode vir no topo da resposta ou aninhado em
// "listing", dependendo do endpoint. As estratégias são tentadas em ordem e
// a primeira que encontrar algo vence.
var idExtractors = []func(map[string]any) any{
	func(m map[string]any) any { return m["id"] },
	func(m map[string]any) any {
		if listing, ok := m["listing"].(map[string]any); ok {
			return listing["id"]
		}
		return nil
	},
}

func extractNewID(body []byte) string {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return ""
	}

	for _, extract := range idExtractors {
		switch v := extract(m).(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}
