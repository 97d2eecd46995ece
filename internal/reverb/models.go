package reverb

type Price struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type CategoryRef struct {
	UUID string `json:"uuid"`
}

type ConditionRef struct {
	UUID string `json:"uuid"`
}

type PhotoLink struct {
	Href string `json:"href"`
}

// Photo expõe os links nomeados de imagem ("large_crop", "full", ...)
// dentro do bloco HAL "_links".
type Photo struct {
	Links map[string]PhotoLink `json:"_links"`
}

// SourceListing é o registro bruto devolvido por GET /listings/{id}.
// Somente leitura, buscado uma vez por item.
type SourceListing struct {
	Make        string        `json:"make"`
	Model       string        `json:"model"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Finish      string        `json:"finish"`
	Year        string        `json:"year"`
	Handmade    bool          `json:"handmade"`
	Price       Price         `json:"price"`
	Categories  []CategoryRef `json:"categories"`
	Condition   *ConditionRef `json:"condition"`
	Photos      []Photo       `json:"photos"`
}

// ClonePayload é o corpo de POST /listings para a conta de destino.
// Categories e Condition são omitidos quando ausentes na origem; uma
// lista vazia não é aceita pela API.
type ClonePayload struct {
	Make              string        `json:"make"`
	Model             string        `json:"model"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Finish            string        `json:"finish"`
	Year              string        `json:"year"`
	Handmade          bool          `json:"handmade"`
	OffersEnabled     bool          `json:"offers_enabled"`
	ShippingProfileID int           `json:"shipping_profile_id"`
	Price             Price         `json:"price"`
	UpcDoesNotApply   bool          `json:"upc_does_not_apply"`
	Categories        []CategoryRef `json:"categories,omitempty"`
	Condition         *ConditionRef `json:"condition,omitempty"`
	Photos            []string      `json:"photos"`
}
