package cloner

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"revclone/internal/reverb"
)

// Fator fixo de remarcação: o anúncio clonado sai por 35% do preço de origem.
const priceFactor = 0.35

// Moeda forçada no destino. Atenção: não há conversão cambial, apenas troca
// de rótulo; quem precisar de valores corretos entre moedas deve converter
// antes.
const targetCurrency = "EUR"

// BuildPayload monta o corpo de criação a partir do anúncio de origem.
// Função pura: mesma origem e mesmo shipping profile produzem sempre o
// mesmo payload. Preço ilegível degrada para 0.00 em vez de falhar o item.
func BuildPayload(src *reverb.SourceListing, shippingProfileID int) reverb.ClonePayload {
	// ParseFloat aceita "NaN" e "Inf"; qualquer valor que não seja um
	// número finito não negativo degrada para 0.00.
	amount := strings.ReplaceAll(src.Price.Amount, ",", "")
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		if src.Price.Amount != "" && err != nil {
			log.Printf("[BuildPayload] preço ilegível %q, usando 0.00", src.Price.Amount)
		}
		value = 0
	}

	payload := reverb.ClonePayload{
		Make:              src.Make,
		Model:             src.Model,
		Title:             src.Title,
		Description:       src.Description,
		Finish:            src.Finish,
		Year:              src.Year,
		Handmade:          src.Handmade,
		OffersEnabled:     false,
		ShippingProfileID: shippingProfileID,
		Price: reverb.Price{
			Amount:   fmt.Sprintf("%.2f", value*priceFactor),
			Currency: targetCurrency,
		},
		UpcDoesNotApply: true,
	}

	// Só a primeira categoria interessa; sem categoria o campo fica de fora.
	if len(src.Categories) > 0 {
		payload.Categories = []reverb.CategoryRef{{UUID: src.Categories[0].UUID}}
	}
	if src.Condition != nil {
		payload.Condition = &reverb.ConditionRef{UUID: src.Condition.UUID}
	}

	photos := []string{}
	for _, p := range src.Photos {
		if url := resolvePhotoURL(p); url != "" {
			photos = append(photos, url)
		}
	}
	payload.Photos = photos

	return payload
}

// resolvePhotoURL prefere o recorte grande e cai para a imagem cheia;
// foto sem nenhum dos dois links é descartada.
func resolvePhotoURL(p reverb.Photo) string {
	if link, ok := p.Links["large_crop"]; ok && link.Href != "" {
		return link.Href
	}
	if link, ok := p.Links["full"]; ok && link.Href != "" {
		return link.Href
	}
	return ""
}
